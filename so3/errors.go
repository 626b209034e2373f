// SPDX-License-Identifier: MIT

package so3

import (
	"errors"
	"fmt"
)

// ErrNotRotation is returned by FromMatrixChecked when the input is not
// orthonormal with determinant +1 within the requested tolerance.
var ErrNotRotation = errors.New("so3: matrix is not a rotation")

// so3Errorf wraps err with an operation tag.
func so3Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
