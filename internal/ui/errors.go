/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import "errors"

var (
	ErrNoScreen         = errors.New("ncurses screen is not available")
	ErrTerminalTooSmall = errors.New("terminal too small for ncurses window")
	ErrUnboundKey       = errors.New("key is not bound")
)
