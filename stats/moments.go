// SPDX-License-Identifier: MIT
// Package stats: second moments and weighted averages.
//
// Exposed API:
//   - Variance(x, axes)        -> sample (or population) variance
//   - SDev(x, axes)            -> square root of Variance
//   - WeightedMean(x, w, axes) -> Σw·x / Σw, weights broadcast over x
//   - Covariance(x, y, axes)   -> sample (or population) covariance
//   - Correlation(x, y, axes)  -> Pearson correlation coefficient
//
// Implementation:
//   - Two passes per block. The first computes the mean; the block start is
//     saved before it and restored for the second, which sums squared
//     deviations. This avoids the cancellation of the one-pass Σx² − n·mean².

package stats

import (
	"math"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/katalvlaran/lux/loop"
)

const (
	opVariance     = "Variance"
	opSDev         = "SDev"
	opWeightedMean = "WeightedMean"
	opCovariance   = "Covariance"
	opCorrelation  = "Correlation"
)

// Variance returns the variance of x over axes, dividing by n-1 (or n with
// WithPopulation). Complex input yields the variance of |x - mean| in the
// real kind of the promoted result. A block of one element yields NaN for
// the sample variance.
//
// Errors:
//   - ErrNotNumeric for string input.
//   - ErrEmptyReduction for a zero-length block.
func Variance(x *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	return variance(opVariance, x, axes, gatherOptions(opts...), false)
}

// SDev returns the standard deviation of x over axes. See Variance.
func SDev(x *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	return variance(opSDev, x, axes, gatherOptions(opts...), true)
}

func variance(op string, x *array.Array, axes []int, o Options, root bool) (*array.Array, error) {
	if err := requireNumeric(x); err != nil {
		return nil, statsErrorf(op, err)
	}
	k := o.resultKind(kind.Promote(x.Kind(), kind.Float32)).RealPart()
	l, err := loop.Resolve([]*array.Array{x}, axes, o.reduction(loop.WithResultKind(k))...)
	if err != nil {
		return nil, statsErrorf(op, err)
	}
	if err = requireBlock(l); err != nil {
		return nil, statsErrorf(op, err)
	}
	if x.Kind().IsComplex() {
		err = secondMoment[complex128](l, o, root)
	} else {
		err = secondMoment[float64](l, o, root)
	}
	if err != nil {
		return nil, statsErrorf(op, err)
	}

	return l.Target(), nil
}

func secondMoment[T float64 | complex128](l *loop.Loop, o Options, root bool) error {
	read, err := readerOf[T](l.Sources()[0])
	if err != nil {
		return err
	}
	write, err := array.RealWriter(l.Target())
	if err != nil {
		return err
	}
	g := l.Iterators()
	src, trg := g[0], g[1]
	nb := l.NumAxes()
	for n := l.Count(); n > 0; n-- {
		snap := src.Save()
		var s T
		cnt := 0
		for {
			if v := read(src.Offset()); !o.omitNaN || !isNaN(v) {
				s += v
				cnt++
			}
			if src.Next() >= nb {
				break
			}
		}
		src.Restore(snap)

		mean := div(s, float64(cnt))
		ss := 0.0
		for {
			if v := read(src.Offset()); !o.omitNaN || !isNaN(v) {
				ss += abs2(v - mean)
			}
			if src.Next() >= nb {
				break
			}
		}
		v := moment(ss, cnt, o.population)
		if root {
			v = math.Sqrt(v)
		}
		write(trg.Offset(), v)
		trg.Advance()
	}

	return nil
}

// moment divides a sum of squared (or cross) deviations over cnt elements
// by its degrees of freedom. Without a positive divisor there is no
// estimate and the result is NaN.
func moment(ss float64, cnt int, population bool) float64 {
	d := cnt - 1
	if population {
		d = cnt
	}
	if d <= 0 {
		return math.NaN()
	}

	return ss / float64(d)
}

// WeightedMean returns Σ w·x / Σ w over axes. The weights may have extent 1
// on any dimension (or fewer dimensions), in which case they repeat along x.
// With WithOmitNaN a pair is skipped when either member is NaN.
//
// Errors:
//   - ErrNotNumeric for string input.
//   - ErrShapeMismatch when w neither matches nor broadcasts to x.
//   - ErrEmptyReduction for a zero-length block.
func WeightedMean(x, w *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	o := gatherOptions(opts...)
	if err := requireNumeric(x, w); err != nil {
		return nil, statsErrorf(opWeightedMean, err)
	}
	l, err := loop.Resolve([]*array.Array{x, w}, axes,
		o.reduction(loop.WithSingletonBroadcast(), loop.WithFloorKind(kind.Float32))...)
	if err != nil {
		return nil, statsErrorf(opWeightedMean, err)
	}
	if err = requireBlock(l); err != nil {
		return nil, statsErrorf(opWeightedMean, err)
	}
	if l.Kind().IsComplex() {
		err = weighted[complex128](l, o.omitNaN)
	} else {
		err = weighted[float64](l, o.omitNaN)
	}
	if err != nil {
		return nil, statsErrorf(opWeightedMean, err)
	}

	return l.Target(), nil
}

func weighted[T float64 | complex128](l *loop.Loop, omitNaN bool) error {
	src := l.Sources()
	rx, err := readerOf[T](src[0])
	if err != nil {
		return err
	}
	rw, err := readerOf[T](src[1])
	if err != nil {
		return err
	}
	write, err := writerOf[T](l.Target())
	if err != nil {
		return err
	}
	g := l.Iterators()
	in, trg := g[:2], g[2]
	nb := l.NumAxes()
	for n := l.Count(); n > 0; n-- {
		var sw, swx T
		for {
			v, wt := rx(in[0].Offset()), rw(in[1].Offset())
			if !omitNaN || (!isNaN(v) && !isNaN(wt)) {
				sw += wt
				swx += wt * v
			}
			if in.Next() >= nb {
				break
			}
		}
		write(trg.Offset(), swx/sw)
		trg.Advance()
	}

	return nil
}

// Covariance returns the covariance of x and y over axes, dividing by n-1
// (or n with WithPopulation). x and y must have identical shapes.
//
// Errors:
//   - ErrNotReal for complex or string input.
//   - ErrShapeMismatch for different shapes.
//   - ErrEmptyReduction for a zero-length block.
func Covariance(x, y *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	return comoment(opCovariance, x, y, axes, gatherOptions(opts...), false)
}

// Correlation returns the Pearson correlation coefficient of x and y over
// axes. A block where either input is constant yields NaN. See Covariance.
func Correlation(x, y *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	return comoment(opCorrelation, x, y, axes, gatherOptions(opts...), true)
}

func comoment(op string, x, y *array.Array, axes []int, o Options, corr bool) (*array.Array, error) {
	if err := requireReal(x, y); err != nil {
		return nil, statsErrorf(op, err)
	}
	l, err := loop.Resolve([]*array.Array{x, y}, axes, o.reduction(loop.WithFloorKind(kind.Float32))...)
	if err != nil {
		return nil, statsErrorf(op, err)
	}
	if err = requireBlock(l); err != nil {
		return nil, statsErrorf(op, err)
	}
	rx, err := array.RealReader(x)
	if err != nil {
		return nil, statsErrorf(op, err)
	}
	ry, err := array.RealReader(y)
	if err != nil {
		return nil, statsErrorf(op, err)
	}
	write, err := array.RealWriter(l.Target())
	if err != nil {
		return nil, statsErrorf(op, err)
	}

	g := l.Iterators()
	in, trg := g[:2], g[2]
	nb := l.NumAxes()
	keep := func(a, b float64) bool { return !o.omitNaN || (!math.IsNaN(a) && !math.IsNaN(b)) }
	for n := l.Count(); n > 0; n-- {
		snap := in.Save()
		var sx, sy float64
		cnt := 0
		for {
			if a, b := rx(in[0].Offset()), ry(in[1].Offset()); keep(a, b) {
				sx += a
				sy += b
				cnt++
			}
			if in.Next() >= nb {
				break
			}
		}
		in.Restore(snap)

		mx, my := sx/float64(cnt), sy/float64(cnt)
		var sxy, sxx, syy float64
		for {
			if a, b := rx(in[0].Offset()), ry(in[1].Offset()); keep(a, b) {
				dx, dy := a-mx, b-my
				sxy += dx * dy
				sxx += dx * dx
				syy += dy * dy
			}
			if in.Next() >= nb {
				break
			}
		}
		var v float64
		if corr {
			v = sxy / math.Sqrt(sxx*syy)
		} else {
			v = moment(sxy, cnt, o.population)
		}
		write(trg.Offset(), v)
		trg.Advance()
	}

	return l.Target(), nil
}
