// SPDX-License-Identifier: MIT

package cmtm

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveOrder is returned when a block matrix of order ≤ 0 is requested.
	ErrNonPositiveOrder = errors.New("cmtm: requested order must be positive")

	// ErrOrderExceeded is returned when the requested order is larger than the
	// number of derivative levels the CMTM carries.
	ErrOrderExceeded = errors.New("cmtm: requested order exceeds available derivatives")

	// ErrUnsupportedDimension is returned for tangent dimensions other than 3 and 6.
	ErrUnsupportedDimension = errors.New("cmtm: unsupported dimension")

	// ErrBaseShape is returned by New when the base matrix is not D×D.
	ErrBaseShape = errors.New("cmtm: base matrix has wrong shape")
)

// cmtmErrorf wraps err with an operation tag, preserving it for errors.Is.
func cmtmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
