// Package array provides the array descriptor consumed by the lux loop engine.
//
// An Array is a shape (ordered dimension extents, rank ≤ MaxDims), an element
// kind and storage. Storage is either owned (contiguous, first dimension
// fastest, so stride[i] = dims[0]·…·dims[i-1]) or borrowed through a View
// with independent per-dimension strides.
//
// Numeric storage is a byte buffer with a known element size; typed access is
// obtained once per call through Values[T] or the Reader/Writer builders and
// indexed by element offset:
//
//	a, _ := array.FromSlice([]int32{1, 2, 3, 4, 5, 6}, 2, 3)
//	v := array.Values[int32](a)
//	v[a.Offset()+1*a.Stride(0)+2*a.Stride(1)] // element (1,2) == 6
//
// Allocation goes through a Provider, so callers can plug in accounting or
// limits; Heap is the default provider.
package array
