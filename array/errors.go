// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// Every message is prefixed with "array: ..."; callers match with errors.Is.

package array

import "errors"

var (
	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("array: nil array")

	// ErrBadShape indicates a negative extent or an element count that does
	// not match the supplied values.
	ErrBadShape = errors.New("array: invalid shape")

	// ErrRankOverflow indicates a rank above MaxDims.
	ErrRankOverflow = errors.New("array: rank exceeds maximum")

	// ErrOutOfRange indicates a coordinate outside the array bounds.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrKindMismatch indicates an access with a type that does not match
	// the array kind.
	ErrKindMismatch = errors.New("array: kind mismatch")

	// ErrAllocation is returned by a Provider that cannot satisfy a request.
	ErrAllocation = errors.New("array: allocation failed")

	// ErrNotContiguous indicates an operation that requires owned
	// contiguous storage was applied to a view.
	ErrNotContiguous = errors.New("array: storage is not contiguous")
)
