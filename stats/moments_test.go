// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/katalvlaran/lux/loop"
	"github.com/katalvlaran/lux/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestVariance_AgainstGonum(t *testing.T) {
	x := matrix(t, sample, 4, 3)
	tests := []struct {
		name   string
		run    func(*array.Array, []int, ...stats.Option) (*array.Array, error)
		opts   []stats.Option
		oracle func([]float64) float64
	}{
		{"sample variance", stats.Variance, nil, func(v []float64) float64 { return stat.Variance(v, nil) }},
		{"population variance", stats.Variance, []stats.Option{stats.WithPopulation()}, func(v []float64) float64 { return stat.PopVariance(v, nil) }},
		{"sample sdev", stats.SDev, nil, func(v []float64) float64 { return stat.StdDev(v, nil) }},
		{"population sdev", stats.SDev, []stats.Option{stats.WithPopulation()}, func(v []float64) float64 { return stat.PopStdDev(v, nil) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, axis := range []int{0, 1} {
				got, err := tc.run(x, []int{axis}, tc.opts...)
				require.NoError(t, err)
				var want []float64
				for _, line := range lines(sample, 4, 3, axis) {
					want = append(want, tc.oracle(line))
				}
				assert.True(t, floats.EqualApprox(want, values(t, got), tol), "axis %d: %v vs %v", axis, want, values(t, got))
			}
			all, err := tc.run(x, nil, tc.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tc.oracle(sample), values(t, all)[0], tol)
		})
	}
}

func TestVariance_Kinds(t *testing.T) {
	x, err := array.FromSlice([]int32{1, 2, 3, 4})
	require.NoError(t, err)
	got, err := stats.Variance(x, nil)
	require.NoError(t, err)
	assert.Equal(t, kind.Float32, got.Kind())
	assert.InDelta(t, 5.0/3, values(t, got)[0], 1e-6)

	c, err := array.FromSlice([]complex64{1 + 1i, 3 + 3i})
	require.NoError(t, err)
	got, err = stats.Variance(c, nil)
	require.NoError(t, err)
	assert.Equal(t, kind.Float32, got.Kind(), "complex input gives a real result")
	assert.InDelta(t, 4.0, values(t, got)[0], 1e-6)

	got, err = stats.SDev(c, nil, stats.WithDouble())
	require.NoError(t, err)
	assert.Equal(t, kind.Float64, got.Kind())
	assert.InDelta(t, 2.0, values(t, got)[0], tol)
}

func TestVariance_EdgeCases(t *testing.T) {
	one := matrix(t, []float64{3})
	got, err := stats.Variance(one, nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(values(t, got)[0]), "sample variance of one element")

	got, err = stats.Variance(one, nil, stats.WithPopulation())
	require.NoError(t, err)
	assert.Equal(t, 0.0, values(t, got)[0])

	withNaN := matrix(t, []float64{1, math.NaN(), 3})
	got, err = stats.Variance(withNaN, nil, stats.WithOmitNaN())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, values(t, got)[0], tol)

	allNaN := matrix(t, []float64{math.NaN(), math.NaN()})
	for name, run := range map[string]func(*array.Array, []int, ...stats.Option) (*array.Array, error){
		"variance": stats.Variance,
		"sdev":     stats.SDev,
	} {
		for _, pop := range []bool{false, true} {
			opts := []stats.Option{stats.WithOmitNaN()}
			if pop {
				opts = append(opts, stats.WithPopulation())
			}
			got, err = run(allNaN, nil, opts...)
			require.NoError(t, err)
			assert.True(t, math.IsNaN(values(t, got)[0]), "%s of only omitted NaNs (population=%v)", name, pop)
		}
	}

	s, err := array.FromStrings([]string{"a", "b"})
	require.NoError(t, err)
	_, err = stats.SDev(s, nil)
	require.ErrorIs(t, err, stats.ErrNotNumeric)

	e, err := array.New(kind.Float64, 2, 0)
	require.NoError(t, err)
	_, err = stats.Variance(e, []int{1})
	require.ErrorIs(t, err, stats.ErrEmptyReduction)
}

// TestVariance_Scalar reduces a rank-0 array: one block of one element.
func TestVariance_Scalar(t *testing.T) {
	got, err := stats.Variance(array.Scalar(2.0), nil, stats.WithPopulation())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Rank())
	assert.Equal(t, []float64{0}, values(t, got))
}

func TestWeightedMean(t *testing.T) {
	x := matrix(t, sample, 4, 3)
	wv := []float64{1, 2, 3}
	w := matrix(t, wv, 1, 3)

	got, err := stats.WeightedMean(x, w, []int{1})
	require.NoError(t, err)
	var want []float64
	for _, line := range lines(sample, 4, 3, 1) {
		want = append(want, stat.Mean(line, wv))
	}
	assert.True(t, floats.EqualApprox(want, values(t, got), tol))

	full := matrix(t, []float64{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3}, 4, 3)
	same, err := stats.WeightedMean(x, full, []int{1})
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(values(t, got), values(t, same), tol))

	_, err = stats.WeightedMean(x, matrix(t, []float64{1, 2}, 1, 2), []int{1})
	require.ErrorIs(t, err, loop.ErrShapeMismatch)
}

func TestWeightedMean_OmitNaN(t *testing.T) {
	x := matrix(t, []float64{1, math.NaN(), 4})
	w := matrix(t, []float64{1, 5, 3})
	got, err := stats.WeightedMean(x, w, nil, stats.WithOmitNaN())
	require.NoError(t, err)
	assert.InDelta(t, 13.0/4, values(t, got)[0], tol)
}

func TestCovarianceCorrelation(t *testing.T) {
	x := matrix(t, sample, 4, 3)
	yv := make([]float64, len(sample))
	for i, v := range sample {
		yv[i] = 0.5*v*v - float64(i)
	}
	y := matrix(t, yv, 4, 3)

	for _, axis := range []int{0, 1} {
		cov, err := stats.Covariance(x, y, []int{axis})
		require.NoError(t, err)
		corr, err := stats.Correlation(x, y, []int{axis})
		require.NoError(t, err)

		xs, ys := lines(sample, 4, 3, axis), lines(yv, 4, 3, axis)
		for i := range xs {
			assert.InDelta(t, stat.Covariance(xs[i], ys[i], nil), values(t, cov)[i], tol, "axis %d line %d", axis, i)
			assert.InDelta(t, stat.Correlation(xs[i], ys[i], nil), values(t, corr)[i], tol, "axis %d line %d", axis, i)
		}
	}

	self, err := stats.Correlation(x, x, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, values(t, self)[0], tol)

	pop, err := stats.Covariance(x, x, nil, stats.WithPopulation())
	require.NoError(t, err)
	assert.InDelta(t, stat.PopVariance(sample, nil), values(t, pop)[0], tol)
}

func TestCovariance_Errors(t *testing.T) {
	x := matrix(t, sample, 4, 3)
	_, err := stats.Covariance(x, matrix(t, sample[:4], 4, 1), []int{0})
	require.ErrorIs(t, err, loop.ErrShapeMismatch, "no broadcasting for paired samples")

	allNaN := matrix(t, []float64{math.NaN(), math.NaN()})
	cov, err := stats.Covariance(allNaN, allNaN, nil, stats.WithOmitNaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(values(t, cov)[0]), "covariance of only omitted NaNs")
	cov, err = stats.Covariance(allNaN, allNaN, nil, stats.WithOmitNaN(), stats.WithPopulation())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(values(t, cov)[0]))
	corr, err := stats.Correlation(allNaN, allNaN, nil, stats.WithOmitNaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(values(t, corr)[0]))

	c, err := array.FromSlice([]complex128{1, 2})
	require.NoError(t, err)
	_, err = stats.Correlation(c, c, nil)
	require.ErrorIs(t, err, stats.ErrNotReal)

	flat := matrix(t, []float64{2, 2, 2})
	got, err := stats.Correlation(flat, matrix(t, []float64{1, 2, 3}), nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(values(t, got)[0]))
}
