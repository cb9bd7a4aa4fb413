// SPDX-License-Identifier: MIT
// Package loop_test contains fixtures shared by the engine tests.

package loop_test

import (
	"testing"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/loop"
	"github.com/stretchr/testify/require"
)

// seq returns an int32 array of the given dims holding 1..N in storage order.
func seq(t *testing.T, dims ...int) *array.Array {
	t.Helper()
	n := array.Count(dims)
	vals := make([]int32, n)
	for i := range vals {
		vals[i] = int32(i + 1)
	}
	a, err := array.FromSlice(vals, dims...)
	require.NoError(t, err)

	return a
}

// zeros returns a float64 array of the given dims.
func zeros(t *testing.T, dims ...int) *array.Array {
	t.Helper()
	a, err := array.FromSlice(make([]float64, array.Count(dims)), dims...)
	require.NoError(t, err)

	return a
}

// reduceSum sums source 0 over each block with Iterator.Next and writes the
// sums into the float64 view of the target, returning them in order.
func reduceSum(t *testing.T, l *loop.Loop) []float64 {
	t.Helper()
	read, err := array.RealReader(l.Sources()[0])
	require.NoError(t, err)
	write, err := array.RealWriter(l.Target())
	require.NoError(t, err)

	g := l.Iterators()
	src, trg := g[0], g[len(g)-1]
	nb, rank := l.NumAxes(), l.ResultRank()
	if l.Count() == 0 {
		return nil
	}
	for {
		s := 0.0
		d := 0
		for {
			s += read(src.Offset())
			if d = src.Next(); d >= nb {
				break
			}
		}
		write(trg.Offset(), s)
		trg.Advance()
		if d == nb+rank {
			break
		}
	}
	out, err := l.Target().Float64s()
	require.NoError(t, err)

	return out
}
