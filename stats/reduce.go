// SPDX-License-Identifier: MIT
// Package stats: block reductions.
//
// Exposed API:
//   - Total(x, axes)  -> sum over axes
//   - Mean(x, axes)   -> arithmetic mean over axes
//   - Min(x, axes)    -> smallest element over axes (real input)
//   - Max(x, axes)    -> largest element over axes (real input)
//
// Determinism:
//   - Each block is summed in storage order of its loop axes, first listed
//     axis fastest; results are bit-for-bit reproducible.

package stats

import (
	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/katalvlaran/lux/loop"
)

const (
	opTotal = "Total"
	opMean  = "Mean"
	opMin   = "Min"
	opMax   = "Max"
)

// Total returns the sum of x over axes (nil = every element).
// Integer input is summed exactly in Int64; other kinds keep their kind.
//
// Errors:
//   - ErrNotNumeric for string input.
//   - Engine errors (ErrAxisOutOfRange, ErrAllocation, ...).
//
// Complexity:
//   - Time O(x.Len()), Space O(result).
func Total(x *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	o := gatherOptions(opts...)
	if err := requireNumeric(x); err != nil {
		return nil, statsErrorf(opTotal, err)
	}
	l, err := loop.Resolve([]*array.Array{x}, axes, o.reduction(loop.WithFloorKind(kind.Int64))...)
	if err != nil {
		return nil, statsErrorf(opTotal, err)
	}
	err = dispatch(l.Kind(),
		func() error { return sum[int64](l, false, false) },
		func() error { return sum[float64](l, o.omitNaN, false) },
		func() error { return sum[complex128](l, o.omitNaN, false) },
	)
	if err != nil {
		return nil, statsErrorf(opTotal, err)
	}

	return l.Target(), nil
}

// Mean returns the arithmetic mean of x over axes. The result is at least
// Float32; complex input gives a complex mean. With WithOmitNaN the divisor
// counts only the non-NaN elements.
//
// Errors:
//   - ErrEmptyReduction for a zero-length block.
//   - ErrNotNumeric for string input.
func Mean(x *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	o := gatherOptions(opts...)
	if err := requireNumeric(x); err != nil {
		return nil, statsErrorf(opMean, err)
	}
	l, err := loop.Resolve([]*array.Array{x}, axes, o.reduction(loop.WithFloorKind(kind.Float32))...)
	if err != nil {
		return nil, statsErrorf(opMean, err)
	}
	if err = requireBlock(l); err != nil {
		return nil, statsErrorf(opMean, err)
	}
	err = dispatch(l.Kind(),
		func() error { return sum[float64](l, o.omitNaN, true) },
		func() error { return sum[float64](l, o.omitNaN, true) },
		func() error { return sum[complex128](l, o.omitNaN, true) },
	)
	if err != nil {
		return nil, statsErrorf(opMean, err)
	}

	return l.Target(), nil
}

// sum writes the block sums (or means) of source 0 into the target.
func sum[T number](l *loop.Loop, omitNaN, mean bool) error {
	p, err := newPair[T](l)
	if err != nil {
		return err
	}
	g := l.Iterators()
	src, trg := g[0], g[1]
	for n := l.Count(); n > 0; n-- {
		var s T
		cnt := 0
		for off := range src.Block().Offsets() {
			v := p.read(src.Offset() + off)
			if omitNaN && isNaN(v) {
				continue
			}
			s += v
			cnt++
		}
		if mean {
			if cnt == 0 {
				s = nan[T]()
			} else {
				s = div(s, float64(cnt))
			}
		}
		p.write(trg.Offset(), s)
		g.Advance()
	}

	return nil
}

// Min returns the smallest element of x over axes, in the kind of x
// (double precision with WithDouble). NaN propagates unless WithOmitNaN.
//
// Errors:
//   - ErrNotReal for complex or string input.
//   - ErrEmptyReduction for a zero-length block.
func Min(x *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	return extreme(opMin, x, axes, gatherOptions(opts...), false)
}

// Max returns the largest element of x over axes. See Min.
func Max(x *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	return extreme(opMax, x, axes, gatherOptions(opts...), true)
}

func extreme(op string, x *array.Array, axes []int, o Options, largest bool) (*array.Array, error) {
	if err := requireReal(x); err != nil {
		return nil, statsErrorf(op, err)
	}
	l, err := loop.Resolve([]*array.Array{x}, axes, o.reduction(loop.WithResultKind(o.resultKind(x.Kind())))...)
	if err != nil {
		return nil, statsErrorf(op, err)
	}
	if err = requireBlock(l); err != nil {
		return nil, statsErrorf(op, err)
	}
	if x.Kind().IsInteger() && l.Kind().IsInteger() {
		err = pick(l, largest, false, func(a, b int64) bool { return a < b })
	} else {
		err = pick(l, largest, o.omitNaN, func(a, b float64) bool { return a < b })
	}
	if err != nil {
		return nil, statsErrorf(op, err)
	}

	return l.Target(), nil
}

// pick writes the block minimum (or maximum) of source 0 into the target.
// A NaN element makes the block result NaN unless omitNaN; a block of only
// omitted NaNs yields NaN.
func pick[T int64 | float64](l *loop.Loop, largest, omitNaN bool, less func(a, b T) bool) error {
	p, err := newPair[T](l)
	if err != nil {
		return err
	}
	better := less
	if largest {
		better = func(a, b T) bool { return less(b, a) }
	}
	g := l.Iterators()
	src, trg := g[0], g[1]
	for n := l.Count(); n > 0; n-- {
		var best T
		have, poisoned := false, false
		for off := range src.Block().Offsets() {
			v := p.read(src.Offset() + off)
			if isNaN(v) {
				if omitNaN {
					continue
				}
				best, poisoned = v, true

				break
			}
			if !have || better(v, best) {
				best, have = v, true
			}
		}
		if !have && !poisoned {
			best = nan[T]()
		}
		p.write(trg.Offset(), best)
		g.Advance()
	}

	return nil
}
