/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package chunk

import (
	"errors"
)

var (
	ErrTypeMismatch = errors.New("chunk line elements must be chunks")
)
