/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package colorparser

import "errors"

var (
	ErrStylesheetNotFound = errors.New("stylesheet not found")
	ErrUndefinedStyle     = errors.New("style referenced but no stylesheet is loaded")
	ErrInvalidStyle       = errors.New("style not defined in stylesheet")
	ErrParentNotSet       = errors.New("color parser has no parent widget")
)
