// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/stretchr/testify/require"
)

// TestNew_ContiguousLayout checks stride[i] = Π dims[0..i) and zeroed storage.
func TestNew_ContiguousLayout(t *testing.T) {
	a, err := array.New(kind.Int16, 4, 3, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 12}, a.Strides())
	require.Equal(t, []int{2, 8, 24}, a.ByteStrides())
	require.Equal(t, 24, a.Len())
	require.Equal(t, 3, a.Rank())
	require.True(t, a.IsContiguous())
	require.False(t, a.IsView())
	require.Len(t, a.Bytes(), 48)
	for _, v := range array.Values[int16](a) {
		require.Zero(t, v)
	}
}

func TestNew_InvalidShapes(t *testing.T) {
	_, err := array.New(kind.Float32, 3, -1)
	require.ErrorIs(t, err, array.ErrBadShape)

	_, err = array.New(kind.Float32, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	require.ErrorIs(t, err, array.ErrRankOverflow)

	_, err = array.New(kind.Invalid, 2)
	require.ErrorIs(t, err, array.ErrBadShape)

	_, err = array.FromSlice([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, array.ErrBadShape)
}

func TestScalar(t *testing.T) {
	s := array.Scalar(2.5)
	require.Equal(t, 0, s.Rank())
	require.Equal(t, 1, s.Len())
	v, err := s.At()
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.Equal(t, 1, s.Dim(3), "dimensions beyond the rank are unit")
}

// TestFromSlice_FirstDimensionFastest verifies coordinate → offset mapping.
func TestFromSlice_FirstDimensionFastest(t *testing.T) {
	a, err := array.FromSlice([]int32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	v, err = a.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = a.At(0)
	require.ErrorIs(t, err, array.ErrOutOfRange)
}

func TestView_SharesStorage(t *testing.T) {
	a, err := array.FromSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 4, 3)
	require.NoError(t, err)

	w, err := a.View([]int{1, 1}, []int{2, 2})
	require.NoError(t, err)
	require.True(t, w.IsView())
	require.Equal(t, []int{2, 2}, w.Dims())
	require.Equal(t, 5, w.Offset())
	require.False(t, w.IsContiguous())

	got, err := w.Float64s()
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{5, 6, 9, 10}, got); diff != "" {
		t.Fatalf("view values (-want +got):\n%s", diff)
	}

	require.NoError(t, w.Set(-1, 1, 1))
	v, err := a.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, -1.0, v, "write through view is visible in base")

	_, err = a.View([]int{3, 0}, []int{2, 1})
	require.ErrorIs(t, err, array.ErrOutOfRange)

	c := w.Clone()
	require.False(t, c.IsView())
	require.True(t, c.IsContiguous())
	require.True(t, array.Equal(c, w))
}

func TestReshapeAndRelabel(t *testing.T) {
	a, err := array.FromSlice([]int32{1, 2, 3, 4, 5, 6}, 6)
	require.NoError(t, err)

	r, err := a.Reshape(3, 2)
	require.NoError(t, err)
	v, err := r.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = a.Reshape(4, 2)
	require.ErrorIs(t, err, array.ErrBadShape)

	f, err := a.Relabel(kind.Float32)
	require.NoError(t, err)
	require.Equal(t, kind.Float32, f.Kind())
	require.Equal(t, []int{6}, f.Dims())

	_, err = a.Relabel(kind.Float64)
	require.ErrorIs(t, err, array.ErrKindMismatch)

	_, err = r.Relabel(kind.Float32)
	require.ErrorIs(t, err, array.ErrNotContiguous)
}

func TestReadersAndWriters(t *testing.T) {
	a, err := array.FromSlice([]int8{-3, 7}, 2)
	require.NoError(t, err)

	ri, err := array.IntReader(a)
	require.NoError(t, err)
	require.Equal(t, int64(-3), ri(0))

	rc, err := array.ComplexReader(a)
	require.NoError(t, err)
	require.Equal(t, complex(7, 0), rc(1))

	_, err = array.ComplexWriter(a)
	require.ErrorIs(t, err, array.ErrKindMismatch)

	c, err := array.FromSlice([]complex64{1 + 2i}, 1)
	require.NoError(t, err)
	_, err = array.RealReader(c)
	require.ErrorIs(t, err, array.ErrKindMismatch)
	wc, err := array.ComplexWriter(c)
	require.NoError(t, err)
	wc(0, 3-4i)
	z, err := c.ComplexAt(0)
	require.NoError(t, err)
	require.Equal(t, complex(3, -4), z)

	s, err := array.FromStrings([]string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, array.Strings(s))
	_, err = array.RealReader(s)
	require.ErrorIs(t, err, array.ErrKindMismatch)
	require.Panics(t, func() { array.Values[float64](s) })
}

func TestBudgetProvider(t *testing.T) {
	b := array.NewBudget(64)

	a, err := b.Allocate([]int{4}, kind.Float64)
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())
	require.Equal(t, 32, b.Used())

	_, err = b.Allocate([]int{5}, kind.Float64)
	require.ErrorIs(t, err, array.ErrAllocation)
	require.Equal(t, 32, b.Used(), "failed request allocates nothing")
	require.Equal(t, 1, b.Allocations())

	h, err := array.Heap{}.Allocate([]int{2, 2}, kind.Complex128)
	require.NoError(t, err)
	require.Len(t, h.Bytes(), 64)
}

func TestEqual(t *testing.T) {
	a, _ := array.FromSlice([]float32{1, 2, 3, 4}, 2, 2)
	b, _ := array.FromSlice([]float32{1, 2, 3, 4}, 2, 2)
	c, _ := array.FromSlice([]float32{1, 2, 3, 4}, 4)
	d, _ := array.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.True(t, array.Equal(a, b))
	require.False(t, array.Equal(a, c))
	require.False(t, array.Equal(a, d))
	require.True(t, array.Equal(nil, nil))
	require.False(t, array.Equal(a, nil))
}
