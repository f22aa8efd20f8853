/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"errors"
)

var (
	ErrTTYRequired        = errors.New("a terminal is required for this command")
	ErrFailedToInitScreen = errors.New("failed to initialize screen")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrNoInput            = errors.New("no input lines")
	ErrPatternRequired    = errors.New("--pattern is required when reading rows from stdin")
	ErrMissingStylesheet  = errors.New("stylesheet name or path required")
	ErrInvalidFlag        = errors.New("invalid flag value")
)
