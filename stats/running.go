// SPDX-License-Identifier: MIT
// Package stats: same-shape routines along one axis.
//
// Exposed API:
//   - RunSum(x, axes)        -> running (cumulative) sum
//   - Smooth(x, axes, width) -> centered boxcar average
//
// Both accept at most one axis; a nil axis list treats x as one flattened
// vector in storage order. With WithInPlace the result may reuse the
// storage of x.

package stats

import (
	"slices"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/katalvlaran/lux/loop"
	"github.com/pkg/errors"
)

const (
	opRunSum = "RunSum"
	opSmooth = "Smooth"
)

// RunSum returns the running sum of x along one axis: element i holds the
// sum of elements 0..i of its line. Integer input accumulates in Int64.
//
// Errors:
//   - ErrNotNumeric for string input.
//   - loop.ErrTooManyAxes for more than one axis.
func RunSum(x *array.Array, axes []int, opts ...Option) (*array.Array, error) {
	o := gatherOptions(opts...)
	if err := requireNumeric(x); err != nil {
		return nil, statsErrorf(opRunSum, err)
	}
	l, err := loop.Resolve([]*array.Array{x}, axes, o.elementwise(loop.WithFloorKind(kind.Int64))...)
	if err != nil {
		return nil, statsErrorf(opRunSum, err)
	}
	err = dispatch(l.Kind(),
		func() error { return running[int64](l, false) },
		func() error { return running[float64](l, o.omitNaN) },
		func() error { return running[complex128](l, o.omitNaN) },
	)
	if err != nil {
		return nil, statsErrorf(opRunSum, err)
	}

	return l.Target(), nil
}

// running walks source and target together element by element and restarts
// the accumulator at every line boundary.
func running[T number](l *loop.Loop, omitNaN bool) error {
	p, err := newPair[T](l)
	if err != nil {
		return err
	}
	if l.Count() == 0 || l.BlockLen() == 0 {
		return nil
	}
	g := l.Iterators()
	src, trg := g[0], g[1]
	nb := l.NumAxes()
	end := nb + l.ResultRank()
	var s T
	for {
		if v := p.read(src.Offset()); !omitNaN || !isNaN(v) {
			s += v
		}
		p.write(trg.Offset(), s)
		d := g.Next()
		if d == end {
			return nil
		}
		if d >= nb {
			s = 0
		}
	}
}

// Smooth returns the boxcar average of x with the given window width along
// one axis. The window of element i covers [i-(width-1)/2, i+width/2]. Near
// the edges the window is truncated to the line (WithPartialWidth, default)
// or the element is copied unchanged (WithFullWidth). The result is at least
// Float32.
//
// Errors:
//   - ErrBadWidth for width < 1.
//   - ErrNotNumeric for string input.
//   - loop.ErrTooManyAxes for more than one axis.
func Smooth(x *array.Array, axes []int, width int, opts ...Option) (*array.Array, error) {
	o := gatherOptions(opts...)
	if width < 1 {
		return nil, statsErrorf(opSmooth, errors.Wrapf(ErrBadWidth, "width %d", width))
	}
	if err := requireNumeric(x); err != nil {
		return nil, statsErrorf(opSmooth, err)
	}
	l, err := loop.Resolve([]*array.Array{x}, axes, o.elementwise(loop.WithFloorKind(kind.Float32))...)
	if err != nil {
		return nil, statsErrorf(opSmooth, err)
	}
	if l.Kind().IsComplex() {
		err = boxcar[complex128](l, width, o.partial)
	} else {
		err = boxcar[float64](l, width, o.partial)
	}
	if err != nil {
		return nil, statsErrorf(opSmooth, err)
	}

	return l.Target(), nil
}

// boxcar smooths each line through a prefix-sum table. The line is buffered
// first, so the target may share storage with the source.
func boxcar[T float64 | complex128](l *loop.Loop, width int, partial bool) error {
	p, err := newPair[T](l)
	if err != nil {
		return err
	}
	g := l.Iterators()
	src, trg := g[0], g[1]
	srcOffs := slices.Collect(src.Block().Offsets())
	trgOffs := slices.Collect(trg.Block().Offsets())
	m := len(srcOffs)
	line := make([]T, m)
	prefix := make([]T, m+1)
	left := (width - 1) / 2
	for n := l.Count(); n > 0; n-- {
		for i, off := range srcOffs {
			line[i] = p.read(src.Offset() + off)
			prefix[i+1] = prefix[i] + line[i]
		}
		for i := range m {
			start, stop := i-left, i-left+width
			if start < 0 || stop > m {
				if !partial {
					p.write(trg.Offset()+trgOffs[i], line[i])

					continue
				}
				start, stop = max(start, 0), min(stop, m)
			}
			p.write(trg.Offset()+trgOffs[i], div(prefix[stop]-prefix[start], float64(stop-start)))
		}
		g.Advance()
	}

	return nil
}
