// SPDX-License-Identifier: MIT

package array

import "github.com/katalvlaran/lux/kind"

// MaxDims is the maximum rank of any array.
const MaxDims = 8

// Element is the set of Go types backing the numeric kinds.
type Element interface {
	int8 | int16 | int32 | int64 | float32 | float64 | complex64 | complex128
}

// Integer is the set of signed integer element types.
type Integer interface {
	int8 | int16 | int32 | int64
}

// Float is the set of real floating-point element types.
type Float interface {
	float32 | float64
}

// Real is the set of real element types.
type Real interface {
	Integer | Float
}

// Complex is the set of complex element types.
type Complex interface {
	complex64 | complex128
}

// Array is a dynamically typed, dynamically dimensioned array descriptor.
//   - dims are the extents, first dimension varying fastest.
//   - strides are per-dimension steps in elements; offset is the element
//     offset of coordinate (0,…,0) inside the backing storage.
//   - data backs numeric kinds (8-byte aligned); strs backs String.
//   - view marks borrowed storage: the descriptor does not own its buffer.
type Array struct {
	dims    []int
	strides []int
	offset  int
	kind    kind.Kind
	data    []byte
	strs    []string
	view    bool
}

// Provider is the storage factory used by the loop engine.
// Implementations decide the allocation strategy; the engine never frees.
type Provider interface {
	// Allocate returns a zero-initialized owned array of the given shape and kind.
	Allocate(dims []int, k kind.Kind) (*Array, error)
}

// KindOf returns the kind backing Go element type T.
func KindOf[T Element]() kind.Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return kind.Int8
	case int16:
		return kind.Int16
	case int32:
		return kind.Int32
	case int64:
		return kind.Int64
	case float32:
		return kind.Float32
	case float64:
		return kind.Float64
	case complex64:
		return kind.Complex64
	default:
		return kind.Complex128
	}
}
