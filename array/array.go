// SPDX-License-Identifier: MIT
// Package array: construction and shape queries.
//
// Purpose:
//   - Build owned arrays with first-dimension-fastest contiguous layout.
//   - Answer shape/kind/stride queries without copying internal slices.

package array

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/lux/kind"
)

// New returns a zero-initialized owned array of kind k with the given dims.
// No dims yields a rank-0 (scalar) array holding one element.
//
// Errors:
//   - ErrBadShape for a negative extent or an invalid kind.
//   - ErrRankOverflow when len(dims) > MaxDims.
func New(k kind.Kind, dims ...int) (*Array, error) {
	if err := ValidateDims(dims); err != nil {
		return nil, err
	}
	if !k.Valid() {
		return nil, fmt.Errorf("%w: kind %s", ErrBadShape, k)
	}

	a := &Array{
		dims:    append([]int(nil), dims...),
		strides: ContiguousStrides(dims),
		kind:    k,
	}
	n := Count(dims)
	if k == kind.String {
		a.strs = make([]string, n)
	} else {
		a.data = alignedBytes(n * k.Size())
	}

	return a, nil
}

// FromSlice copies values into a new owned array of the matching kind.
// Without dims the result is rank-1 of len(values).
func FromSlice[T Element](values []T, dims ...int) (*Array, error) {
	if len(dims) == 0 {
		dims = []int{len(values)}
	}
	a, err := New(KindOf[T](), dims...)
	if err != nil {
		return nil, err
	}
	if Count(dims) != len(values) {
		return nil, fmt.Errorf("%w: %d values for dims %v", ErrBadShape, len(values), dims)
	}
	copy(Values[T](a), values)

	return a, nil
}

// FromStrings copies values into a new String array.
func FromStrings(values []string, dims ...int) (*Array, error) {
	if len(dims) == 0 {
		dims = []int{len(values)}
	}
	a, err := New(kind.String, dims...)
	if err != nil {
		return nil, err
	}
	if Count(dims) != len(values) {
		return nil, fmt.Errorf("%w: %d values for dims %v", ErrBadShape, len(values), dims)
	}
	copy(a.strs, values)

	return a, nil
}

// Scalar returns a rank-0 array holding v.
func Scalar[T Element](v T) *Array {
	a, _ := New(KindOf[T]()) // rank 0 never fails validation
	Values[T](a)[0] = v

	return a
}

// Kind returns the element kind.
func (a *Array) Kind() kind.Kind { return a.kind }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.dims) }

// Dims returns a copy of the extents.
func (a *Array) Dims() []int { return append([]int(nil), a.dims...) }

// Dim returns extent i, or 1 for i ≥ Rank (trailing dimensions are unit).
func (a *Array) Dim(i int) int {
	if i >= len(a.dims) {
		return 1
	}

	return a.dims[i]
}

// Len returns the number of elements (1 for a scalar).
func (a *Array) Len() int { return Count(a.dims) }

// Strides returns a copy of the per-dimension element strides.
func (a *Array) Strides() []int { return append([]int(nil), a.strides...) }

// Stride returns the element stride of dimension i (0 beyond the rank).
func (a *Array) Stride(i int) int {
	if i >= len(a.strides) {
		return 0
	}

	return a.strides[i]
}

// ByteStrides returns the per-dimension strides in bytes.
func (a *Array) ByteStrides() []int {
	out := make([]int, len(a.strides))
	for i, s := range a.strides {
		out[i] = s * a.kind.Size()
	}

	return out
}

// Offset returns the element offset of the first element in the backing storage.
func (a *Array) Offset() int { return a.offset }

// IsView reports whether the descriptor borrows its storage.
func (a *Array) IsView() bool { return a.view }

// IsContiguous reports whether the strides match the contiguous layout of dims.
func (a *Array) IsContiguous() bool {
	want := 1
	for i, d := range a.dims {
		if d > 1 && a.strides[i] != want {
			return false
		}
		want *= d
	}

	return true
}

// Bytes returns the raw numeric backing storage (nil for String arrays).
func (a *Array) Bytes() []byte { return a.data }

// String implements fmt.Stringer with kind and shape only.
func (a *Array) String() string {
	if a == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s%v", a.kind, a.dims)
}

// Count returns the element count of dims (1 for no dims).
func Count(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}

	return n
}

// ContiguousStrides returns first-dimension-fastest element strides for dims.
func ContiguousStrides(dims []int) []int {
	strides := make([]int, len(dims))
	step := 1
	for i, d := range dims {
		strides[i] = step
		step *= d
	}

	return strides
}

// alignedBytes returns n zeroed bytes backed by 8-byte aligned words.
func alignedBytes(n int) []byte {
	if n == 0 {
		return nil
	}
	words := make([]uint64, (n+7)/8)

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}
