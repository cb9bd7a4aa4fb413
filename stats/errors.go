// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.
//
// Routines wrap these (and the engine's sentinels) with the operation name,
// so callers match them with errors.Is.

package stats

import "errors"

var (
	// ErrEmptyReduction indicates a reduction over a zero-length block where
	// the routine has no defined value (means, variances, extremes).
	ErrEmptyReduction = errors.New("stats: empty reduction")

	// ErrNotReal indicates a routine that requires real input received
	// complex or string elements.
	ErrNotReal = errors.New("stats: input is not real")

	// ErrNotNumeric indicates string elements passed to a numeric routine.
	ErrNotNumeric = errors.New("stats: input is not numeric")

	// ErrBadWidth indicates a smoothing width below 1.
	ErrBadWidth = errors.New("stats: invalid window width")
)
