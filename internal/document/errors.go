/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package document

import "errors"

var (
	ErrMissingContentType = errors.New("document has no content type")
	ErrRowOutOfRange      = errors.New("row index out of range")
)
