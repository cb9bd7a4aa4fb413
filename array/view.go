// SPDX-License-Identifier: MIT
// Package array: views, relabeling and copies.
//
// Views share storage with their base and keep the base strides; mutations
// through a view are visible in the base. Relabel hands the same storage back
// under a new kind of equal element size. Clone always materializes an owned
// contiguous copy.

package array

import (
	"fmt"

	"github.com/katalvlaran/lux/kind"
)

// View returns a window of extents starting at origin that shares storage with a.
//
// Errors:
//   - ErrOutOfRange when origin/extents do not fit inside a.
func (a *Array) View(origin, extents []int) (*Array, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if len(origin) != len(a.dims) || len(extents) != len(a.dims) {
		return nil, fmt.Errorf("%w: view rank %d/%d on rank %d", ErrOutOfRange, len(origin), len(extents), len(a.dims))
	}
	off := a.offset
	for i := range a.dims {
		if origin[i] < 0 || extents[i] < 0 || origin[i]+extents[i] > a.dims[i] {
			return nil, fmt.Errorf("%w: dimension %d window [%d,+%d) of %d",
				ErrOutOfRange, i, origin[i], extents[i], a.dims[i])
		}
		off += origin[i] * a.strides[i]
	}

	return &Array{
		dims:    append([]int(nil), extents...),
		strides: append([]int(nil), a.strides...),
		offset:  off,
		kind:    a.kind,
		data:    a.data,
		strs:    a.strs,
		view:    true,
	}, nil
}

// Reshape returns a view of a contiguous array with new dims of equal element count.
func (a *Array) Reshape(dims ...int) (*Array, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateDims(dims); err != nil {
		return nil, err
	}
	if !a.IsContiguous() {
		return nil, ErrNotContiguous
	}
	if Count(dims) != a.Len() {
		return nil, fmt.Errorf("%w: reshape %v to %v", ErrBadShape, a.dims, dims)
	}

	return &Array{
		dims:    append([]int(nil), dims...),
		strides: ContiguousStrides(dims),
		offset:  a.offset,
		kind:    a.kind,
		data:    a.data,
		strs:    a.strs,
		view:    true,
	}, nil
}

// Relabel returns a descriptor that owns a's storage under kind k.
// Element values are not converted; the caller overwrites them.
//
// Errors:
//   - ErrNotContiguous when a is a view or not contiguous.
//   - ErrKindMismatch when k is not numeric or its element size differs.
func (a *Array) Relabel(k kind.Kind) (*Array, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if a.view || !a.IsContiguous() || a.offset != 0 {
		return nil, ErrNotContiguous
	}
	if !k.IsNumeric() || !a.kind.IsNumeric() || k.Size() != a.kind.Size() {
		return nil, fmt.Errorf("%w: relabel %s as %s", ErrKindMismatch, a.kind, k)
	}

	return &Array{
		dims:    append([]int(nil), a.dims...),
		strides: append([]int(nil), a.strides...),
		kind:    k,
		data:    a.data,
	}, nil
}

// Clone returns an owned contiguous copy of a.
func (a *Array) Clone() *Array {
	out, _ := New(a.kind, a.dims...) // dims already validated
	if a.kind == kind.String {
		i := 0
		a.walk(func(off int) {
			out.strs[i] = a.strs[off]
			i++
		})

		return out
	}
	size := a.kind.Size()
	i := 0
	a.walk(func(off int) {
		copy(out.data[i*size:(i+1)*size], a.data[off*size:(off+1)*size])
		i++
	})

	return out
}

// Equal reports whether a and b have the same kind, dims and element values.
func Equal(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || len(a.dims) != len(b.dims) {
		return false
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] {
			return false
		}
	}
	ca, cb := a.Clone(), b.Clone()
	if a.kind == kind.String {
		for i := range ca.strs {
			if ca.strs[i] != cb.strs[i] {
				return false
			}
		}

		return true
	}

	return string(ca.data) == string(cb.data)
}
