// SPDX-License-Identifier: MIT

package array

import "fmt"

// ValidateNotNil returns ErrNilArray for a nil descriptor.
func ValidateNotNil(a *Array) error {
	if a == nil {
		return ErrNilArray
	}

	return nil
}

// ValidateDims checks rank ≤ MaxDims and non-negative extents.
func ValidateDims(dims []int) error {
	if len(dims) > MaxDims {
		return fmt.Errorf("%w: rank %d > %d", ErrRankOverflow, len(dims), MaxDims)
	}
	for i, d := range dims {
		if d < 0 {
			return fmt.Errorf("%w: dimension %d has extent %d", ErrBadShape, i, d)
		}
	}

	return nil
}
