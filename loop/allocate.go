// SPDX-License-Identifier: MIT
// Package loop: result allocator.
//
// The allocator asks the provider for fresh zeroed storage, unless one of the
// disposable sources can be handed back relabeled to the result kind. Reuse is
// an optimization: a routine that reads each element before writing the same
// position observes identical results with or without it.

package loop

import (
	"slices"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/pkg/errors"
)

// Allocate returns a target of shape dims and kind k. Each disposable
// candidate is tried in order; the first owned contiguous numeric array with
// the same dims and element size is relabeled and returned with reused=true.
// Otherwise p allocates, and its error is returned with context
// (errors.Is(err, ErrAllocation) holds for provider failures).
func Allocate(p array.Provider, dims []int, k kind.Kind, disposable ...*array.Array) (a *array.Array, reused bool, err error) {
	if err = array.ValidateDims(dims); err != nil {
		return nil, false, errors.WithMessagef(err, "allocate %s%v", k, dims)
	}
	for _, src := range disposable {
		if r := relabelable(src, dims, k); r != nil {
			return r, true, nil
		}
	}
	a, err = p.Allocate(dims, k)
	if err != nil {
		return nil, false, errors.WithMessagef(err, "allocate %s%v", k, dims)
	}

	return a, false, nil
}

// relabelable returns src relabeled to k when its storage can serve as the target.
func relabelable(src *array.Array, dims []int, k kind.Kind) *array.Array {
	if src == nil || src.IsView() || src.Offset() != 0 || !src.IsContiguous() {
		return nil
	}
	if !slices.Equal(src.Dims(), dims) {
		return nil
	}
	r, err := src.Relabel(k)
	if err != nil {
		return nil
	}

	return r
}
