// SPDX-License-Identifier: MIT
// Package loop: sentinel error set.
//
// Resolver errors are detected inside Resolve (or NextPass) before any
// Iterator exists and before any allocation, so a failing call leaves no
// partial side effects. Errors carry the offending argument (source index,
// axis value) as context; match them with errors.Is.

package loop

import (
	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/pkg/errors"
)

var (
	// ErrNoSources indicates a request without any source array.
	ErrNoSources = errors.New("loop: no source arrays")

	// ErrShapeMismatch indicates a source dimension that disagrees with the
	// reference array under the active matching policy.
	ErrShapeMismatch = errors.New("loop: shape mismatch")

	// ErrAxisOutOfRange indicates an axis outside [0, rank) of the reference array.
	ErrAxisOutOfRange = errors.New("loop: axis out of range")

	// ErrDuplicateAxis indicates a repeated axis under WithUniqueAxes.
	ErrDuplicateAxis = errors.New("loop: duplicate axis")

	// ErrTooManyAxes indicates more than one axis under WithOneAxis.
	ErrTooManyAxes = errors.New("loop: only one axis allowed")
)

// Errors shared with the packages that detect them.
var (
	// ErrRankOverflow aliases array.ErrRankOverflow.
	ErrRankOverflow = array.ErrRankOverflow

	// ErrAllocation aliases array.ErrAllocation; providers return it unchanged.
	ErrAllocation = array.ErrAllocation

	// ErrUnsupportedKindCombination aliases kind.ErrUnsupportedKindCombination.
	ErrUnsupportedKindCombination = kind.ErrUnsupportedKindCombination
)
