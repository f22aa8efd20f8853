/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package markup

import (
	"errors"
)

var (
	ErrUnknownContentType = errors.New("unknown content type")
)
