// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/katalvlaran/lux/array"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// sample is a 4×3 matrix stored first-dimension-fastest.
var sample = []float64{2.5, -1, 4, 8, 0.5, 3, 7, -2, 1.25, 6, 9, -4}

func matrix(t *testing.T, vals []float64, dims ...int) *array.Array {
	t.Helper()
	a, err := array.FromSlice(vals, dims...)
	require.NoError(t, err)

	return a
}

// lines splits a rank-2 first-dimension-fastest buffer into the lines
// along axis, in result order.
func lines(vals []float64, rows, cols, axis int) [][]float64 {
	var out [][]float64
	if axis == 1 {
		for i := 0; i < rows; i++ {
			line := make([]float64, cols)
			for j := range line {
				line[j] = vals[i+rows*j]
			}
			out = append(out, line)
		}

		return out
	}
	for j := 0; j < cols; j++ {
		out = append(out, append([]float64(nil), vals[rows*j:rows*(j+1)]...))
	}

	return out
}

func values(t *testing.T, a *array.Array) []float64 {
	t.Helper()
	out, err := a.Float64s()
	require.NoError(t, err)

	return out
}
