// SPDX-License-Identifier: MIT
// Package array: typed element access.
//
// Purpose:
//   - Reinterpret the byte buffer as a typed slice once per call (Values).
//   - Build per-kind accessors once per call so inner loops carry no kind switch
//     (RealReader, IntReader, ComplexReader and the matching writers).
//   - Offer coordinate-based At/Set for tests and drivers.
//
// All typed slices span the whole backing storage and are indexed by element
// offset, i.e. a.Offset() + Σ coord[i]·a.Stride(i).

package array

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/lux/kind"
)

// Values returns the backing storage of a as []T.
// It panics with ErrKindMismatch when T does not back a.Kind(): callers
// dispatch on the kind first, so a mismatch is a programming error.
func Values[T Element](a *Array) []T {
	if k := KindOf[T](); k != a.kind {
		panic(fmt.Errorf("%w: %s array viewed as %s", ErrKindMismatch, a.kind, k))
	}
	size := a.kind.Size()
	if len(a.data) < size {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(a.data))), len(a.data)/size)
}

// Strings returns the backing storage of a String array.
func Strings(a *Array) []string {
	if a.kind != kind.String {
		panic(fmt.Errorf("%w: %s array viewed as string", ErrKindMismatch, a.kind))
	}

	return a.strs
}

// Index returns the element offset of coords.
func (a *Array) Index(coords ...int) (int, error) {
	if len(coords) != len(a.dims) {
		return 0, fmt.Errorf("%w: %d coordinates for rank %d", ErrOutOfRange, len(coords), len(a.dims))
	}
	off := a.offset
	for i, c := range coords {
		if c < 0 || c >= a.dims[i] {
			return 0, fmt.Errorf("%w: coordinate %d = %d, extent %d", ErrOutOfRange, i, c, a.dims[i])
		}
		off += c * a.strides[i]
	}

	return off, nil
}

// ---------- accessor builders ----------

func realReader[T Real](s []T) func(int) float64 {
	return func(i int) float64 { return float64(s[i]) }
}

func intReader[T Integer](s []T) func(int) int64 {
	return func(i int) int64 { return int64(s[i]) }
}

func realAsComplex[T Real](s []T) func(int) complex128 {
	return func(i int) complex128 { return complex(float64(s[i]), 0) }
}

func complexReader[T Complex](s []T) func(int) complex128 {
	return func(i int) complex128 { return complex128(s[i]) }
}

func realWriter[T Real](s []T) func(int, float64) {
	return func(i int, v float64) { s[i] = T(v) }
}

func intWriter[T Real](s []T) func(int, int64) {
	return func(i int, v int64) { s[i] = T(v) }
}

func complexWriter[T Complex](s []T) func(int, complex128) {
	return func(i int, v complex128) { s[i] = T(v) }
}

// RealReader returns an accessor reading element offset i of a real array as float64.
func RealReader(a *Array) (func(int) float64, error) {
	switch a.kind {
	case kind.Int8:
		return realReader(Values[int8](a)), nil
	case kind.Int16:
		return realReader(Values[int16](a)), nil
	case kind.Int32:
		return realReader(Values[int32](a)), nil
	case kind.Int64:
		return realReader(Values[int64](a)), nil
	case kind.Float32:
		return realReader(Values[float32](a)), nil
	case kind.Float64:
		return realReader(Values[float64](a)), nil
	}

	return nil, fmt.Errorf("%w: %s is not real", ErrKindMismatch, a.kind)
}

// IntReader returns an accessor reading element offset i of an integer array as int64.
func IntReader(a *Array) (func(int) int64, error) {
	switch a.kind {
	case kind.Int8:
		return intReader(Values[int8](a)), nil
	case kind.Int16:
		return intReader(Values[int16](a)), nil
	case kind.Int32:
		return intReader(Values[int32](a)), nil
	case kind.Int64:
		return intReader(Values[int64](a)), nil
	}

	return nil, fmt.Errorf("%w: %s is not an integer kind", ErrKindMismatch, a.kind)
}

// ComplexReader returns an accessor reading any numeric array as complex128.
func ComplexReader(a *Array) (func(int) complex128, error) {
	switch a.kind {
	case kind.Int8:
		return realAsComplex(Values[int8](a)), nil
	case kind.Int16:
		return realAsComplex(Values[int16](a)), nil
	case kind.Int32:
		return realAsComplex(Values[int32](a)), nil
	case kind.Int64:
		return realAsComplex(Values[int64](a)), nil
	case kind.Float32:
		return realAsComplex(Values[float32](a)), nil
	case kind.Float64:
		return realAsComplex(Values[float64](a)), nil
	case kind.Complex64:
		return complexReader(Values[complex64](a)), nil
	case kind.Complex128:
		return complexReader(Values[complex128](a)), nil
	}

	return nil, fmt.Errorf("%w: %s is not numeric", ErrKindMismatch, a.kind)
}

// RealWriter returns an accessor storing float64 into a real array.
// Integer targets truncate toward zero.
func RealWriter(a *Array) (func(int, float64), error) {
	switch a.kind {
	case kind.Int8:
		return realWriter(Values[int8](a)), nil
	case kind.Int16:
		return realWriter(Values[int16](a)), nil
	case kind.Int32:
		return realWriter(Values[int32](a)), nil
	case kind.Int64:
		return realWriter(Values[int64](a)), nil
	case kind.Float32:
		return realWriter(Values[float32](a)), nil
	case kind.Float64:
		return realWriter(Values[float64](a)), nil
	}

	return nil, fmt.Errorf("%w: %s is not real", ErrKindMismatch, a.kind)
}

// IntWriter returns an accessor storing int64 into a real array.
func IntWriter(a *Array) (func(int, int64), error) {
	switch a.kind {
	case kind.Int8:
		return intWriter(Values[int8](a)), nil
	case kind.Int16:
		return intWriter(Values[int16](a)), nil
	case kind.Int32:
		return intWriter(Values[int32](a)), nil
	case kind.Int64:
		return intWriter(Values[int64](a)), nil
	case kind.Float32:
		return intWriter(Values[float32](a)), nil
	case kind.Float64:
		return intWriter(Values[float64](a)), nil
	}

	return nil, fmt.Errorf("%w: %s is not real", ErrKindMismatch, a.kind)
}

// ComplexWriter returns an accessor storing complex128 into a complex array.
func ComplexWriter(a *Array) (func(int, complex128), error) {
	switch a.kind {
	case kind.Complex64:
		return complexWriter(Values[complex64](a)), nil
	case kind.Complex128:
		return complexWriter(Values[complex128](a)), nil
	}

	return nil, fmt.Errorf("%w: %s is not complex", ErrKindMismatch, a.kind)
}

// ---------- coordinate access ----------

// At returns the real element at coords as float64.
func (a *Array) At(coords ...int) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, err
	}
	off, err := a.Index(coords...)
	if err != nil {
		return 0, err
	}
	read, err := RealReader(a)
	if err != nil {
		return 0, err
	}

	return read(off), nil
}

// ComplexAt returns the numeric element at coords as complex128.
func (a *Array) ComplexAt(coords ...int) (complex128, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, err
	}
	off, err := a.Index(coords...)
	if err != nil {
		return 0, err
	}
	read, err := ComplexReader(a)
	if err != nil {
		return 0, err
	}

	return read(off), nil
}

// Set stores v at coords of a real array.
func (a *Array) Set(v float64, coords ...int) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	off, err := a.Index(coords...)
	if err != nil {
		return err
	}
	write, err := RealWriter(a)
	if err != nil {
		return err
	}
	write(off, v)

	return nil
}

// Float64s returns the elements of a real array in first-dimension-fastest order.
func (a *Array) Float64s() ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	read, err := RealReader(a)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, a.Len())
	a.walk(func(off int) { out = append(out, read(off)) })

	return out, nil
}

// Complex128s returns the elements of a numeric array in first-dimension-fastest order.
func (a *Array) Complex128s() ([]complex128, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	read, err := ComplexReader(a)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, 0, a.Len())
	a.walk(func(off int) { out = append(out, read(off)) })

	return out, nil
}

// walk calls fn with every element offset in first-dimension-fastest order.
func (a *Array) walk(fn func(off int)) {
	n := a.Len()
	if n == 0 {
		return
	}
	var coords [MaxDims]int
	off := a.offset
	for k := 0; k < n; k++ {
		fn(off)
		for d := range a.dims {
			coords[d]++
			off += a.strides[d]
			if coords[d] < a.dims[d] {
				break
			}
			off -= coords[d] * a.strides[d]
			coords[d] = 0
		}
	}
}
