// SPDX-License-Identifier: MIT
// Package loop: axis & shape resolver.
//
// Purpose:
//   - Turn (sources, axis list, policy) into a Loop: loop axes, result dims,
//     per-array strides reordered loop-axes-first, result kind and target.
//
// Implementation (Resolve):
//   - Stage 1: validate sources and pick the reference (largest rank, first wins).
//   - Stage 2: normalize the axis list under the absent/unique/one-axis policies.
//   - Stage 3: split into passes (one block pass, or one pass per axis).
//   - Stage 4: resolve the first pass: match every source, derive strides and
//     result dims, promote the kind.
//   - Stage 5: allocate the target (last, so failures leave nothing behind).
//
// Determinism:
//   - Axis order follows the caller's list; result dims follow the reference order.

package loop

import (
	"slices"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Loop is a resolved loop request (one pass at a time).
type Loop struct {
	opts    Options
	sources []*array.Array
	ref     int

	axes    []int   // loop axes of the current pass, reference indexing
	pending [][]int // axes of the remaining passes
	pass    int

	outerIdx   []int // reference dims kept as result dims, in order
	outerDims  []int
	resultDims []int
	blocks     []Block // per source, then target
	outer      [][]int // per source, then target: strides along outerIdx
	kind       kind.Kind
	target     *array.Array
	reused     bool
}

// Resolve validates a loop request and allocates its target.
// axes == nil means no axis argument was given.
//
// Errors:
//   - ErrNoSources, array.ErrNilArray (wrapped with the source index).
//   - ErrAxisOutOfRange, ErrDuplicateAxis, ErrTooManyAxes.
//   - ErrShapeMismatch, ErrRankOverflow, ErrUnsupportedKindCombination.
//   - ErrAllocation from the provider, unchanged apart from context.
func Resolve(sources []*array.Array, axes []int, opts ...Option) (*Loop, error) {
	o := gatherOptions(opts...)
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	ref := 0
	for i, s := range sources {
		if s == nil {
			return nil, errors.Wrapf(array.ErrNilArray, "source %d", i)
		}
		if s.Rank() > array.MaxDims {
			return nil, errors.Wrapf(ErrRankOverflow, "source %d has rank %d", i, s.Rank())
		}
		if s.Rank() > sources[ref].Rank() {
			ref = i
		}
	}

	list, whole, err := normalizeAxes(axes, sources[ref].Rank(), &o)
	if err != nil {
		return nil, err
	}

	l := &Loop{
		opts:    o,
		sources: slices.Clone(sources),
		ref:     ref,
	}
	switch {
	case whole || o.block || len(list) <= 1:
		l.axes = list
	default:
		l.axes = list[:1]
		for _, a := range list[1:] {
			l.pending = append(l.pending, []int{a})
		}
	}

	k, err := resultKind(sources, &o)
	if err != nil {
		return nil, err
	}
	l.kind = k
	if err = l.resolvePass(); err != nil {
		return nil, err
	}
	if err = l.allocate(o.disposable); err != nil {
		return nil, err
	}

	return l, nil
}

// normalizeAxes applies the axis policies to the caller's list.
// It reports whole=true when the reference is swept as one rank-1 block.
func normalizeAxes(axes []int, rank int, o *Options) (list []int, whole bool, err error) {
	if o.negativeWhole && slices.ContainsFunc(axes, func(a int) bool { return a < 0 }) {
		return lo.Range(rank), true, nil
	}
	if axes == nil {
		switch o.absent {
		case AllAxes:
			axes = lo.Range(rank)
		case EachRow:
			if rank == 0 {
				return nil, false, errors.Wrap(ErrAxisOutOfRange, "axis 0 of a scalar")
			}
			axes = []int{0}
		default:
			return lo.Range(rank), true, nil
		}
	}
	for _, a := range axes {
		if a < 0 || a >= rank {
			return nil, false, errors.Wrapf(ErrAxisOutOfRange, "axis %d for rank %d", a, rank)
		}
	}
	if dup := lo.FindDuplicates(axes); len(dup) > 0 {
		if o.unique {
			return nil, false, errors.Wrapf(ErrDuplicateAxis, "axis %d", dup[0])
		}
		axes = lo.Uniq(axes)
	}
	if o.oneAxis && len(axes) > 1 {
		return nil, false, errors.Wrapf(ErrTooManyAxes, "%d axes given", len(axes))
	}

	return slices.Clone(axes), false, nil
}

// resultKind promotes the source kinds under the kind policy.
func resultKind(sources []*array.Array, o *Options) (kind.Kind, error) {
	if o.resultKind.Valid() {
		return o.resultKind, nil
	}
	k := sources[0].Kind()
	for i, s := range sources[1:] {
		j, err := kind.Join(k, s.Kind())
		if err != nil {
			return kind.Invalid, errors.WithMessagef(err, "source %d", i+1)
		}
		k = j
	}
	if o.floorKind.Valid() {
		j, err := kind.Join(k, o.floorKind)
		if err != nil {
			return kind.Invalid, errors.WithMessage(err, "result floor")
		}
		k = j
	}

	return kind.PromoteFlags(k, o.flags), nil
}

// resolvePass computes strides, blocks and result dims for l.axes.
func (l *Loop) resolvePass() error {
	ref := l.sources[l.ref]
	refDims := ref.Dims()
	rank := len(refDims)

	l.outerIdx = nil
	for d := 0; d < rank; d++ {
		if !slices.Contains(l.axes, d) {
			l.outerIdx = append(l.outerIdx, d)
		}
	}
	l.outerDims = make([]int, len(l.outerIdx))
	for i, d := range l.outerIdx {
		l.outerDims[i] = refDims[d]
	}

	switch l.opts.shape {
	case Compress:
		l.resultDims = slices.Clone(l.outerDims)
	case KeepDims:
		l.resultDims = slices.Clone(refDims)
		for _, a := range l.axes {
			l.resultDims[a] = 1
		}
	case SameDims:
		l.resultDims = slices.Clone(refDims)
	default:
		l.resultDims = nil
	}
	if len(l.resultDims) > array.MaxDims {
		return errors.Wrapf(ErrRankOverflow, "result rank %d", len(l.resultDims))
	}

	l.blocks = nil
	l.outer = nil
	for i, s := range l.sources {
		strides, err := matchStrides(s, refDims, l.opts.match)
		if err != nil {
			return errors.WithMessagef(err, "source %d", i)
		}
		l.appendLayout(refDims, strides)
	}

	return nil
}

// matchStrides returns the element strides of s along every reference dim,
// with 0 for dims that s repeats.
func matchStrides(s *array.Array, refDims []int, m Match) ([]int, error) {
	strides := make([]int, len(refDims))
	for d, e := range refDims {
		se := s.Dim(d)
		switch {
		case se == e:
			if e > 1 {
				strides[d] = s.Stride(d)
			}
		case se == 1 && m == SingletonBroadcast:
			// repeated along the reference extent
		default:
			return nil, errors.Wrapf(ErrShapeMismatch, "dimension %d: extent %d, reference %d", d, se, e)
		}
	}

	return strides, nil
}

// appendLayout records the block and outer strides of one array.
func (l *Loop) appendLayout(refDims, strides []int) {
	block := make(Block, len(l.axes))
	for i, a := range l.axes {
		block[i] = Step{Extent: refDims[a], Stride: strides[a]}
	}
	outer := make([]int, len(l.outerIdx))
	for i, d := range l.outerIdx {
		outer[i] = strides[d]
	}
	l.blocks = append(l.blocks, block)
	l.outer = append(l.outer, outer)
}

// targetStrides maps the target's contiguous strides onto reference dims.
func (l *Loop) targetStrides(refDims []int) []int {
	ts := array.ContiguousStrides(l.resultDims)
	strides := make([]int, len(refDims))
	switch l.opts.shape {
	case Compress:
		for i, d := range l.outerIdx {
			strides[d] = ts[i]
		}
	case KeepDims:
		copy(strides, ts)
		for _, a := range l.axes {
			strides[a] = 0
		}
	default:
		copy(strides, ts)
	}

	return strides
}

// allocate creates the target for the current pass and records its layout.
func (l *Loop) allocate(disposable []int) error {
	if l.opts.shape == NoResult {
		return nil
	}
	var candidates []*array.Array
	if l.opts.reuse {
		for _, i := range disposable {
			if i < len(l.sources) {
				candidates = append(candidates, l.sources[i])
			}
		}
	}
	t, reused, err := Allocate(l.opts.provider, l.resultDims, l.kind, candidates...)
	if err != nil {
		return err
	}
	l.target, l.reused = t, reused
	refDims := l.sources[l.ref].Dims()
	l.appendLayout(refDims, l.targetStrides(refDims))

	return nil
}

// NextPass moves a per-axis request to its next axis. The current target
// (if any) becomes the only source and a fresh target is allocated.
// It returns false, leaving the Loop unchanged, when no pass remains.
// On error the Loop is left at the pass it was on.
func (l *Loop) NextPass() (bool, error) {
	if len(l.pending) == 0 {
		return false, nil
	}
	prev := *l
	pending := l.pending[1:]
	if l.target != nil {
		if l.opts.shape == Compress {
			pending = reindex(pending, l.axes[0])
		}
		l.sources = []*array.Array{l.target}
		l.ref = 0
		l.target, l.reused = nil, false
	}
	l.axes = l.pending[0]
	l.pending = pending
	l.pass++
	if err := l.resolvePass(); err != nil {
		*l = prev
		return false, err
	}
	if err := l.allocate(nil); err != nil {
		*l = prev
		return false, err
	}

	return true, nil
}

// reindex returns copies of the pending axis lists with axes above the
// compressed axis shifted down by one.
func reindex(pending [][]int, done int) [][]int {
	out := make([][]int, len(pending))
	for i, p := range pending {
		out[i] = lo.Map(p, func(a int, _ int) int {
			if a > done {
				return a - 1
			}

			return a
		})
	}

	return out
}

// ---------- accessors ----------

// Axes returns the loop axes of the current pass (reference indexing).
func (l *Loop) Axes() []int { return slices.Clone(l.axes) }

// NumAxes returns the number of loop axes in the current pass.
func (l *Loop) NumAxes() int { return len(l.axes) }

// Pass returns the zero-based index of the current pass.
func (l *Loop) Pass() int { return l.pass }

// Passes returns the total number of passes of the request.
func (l *Loop) Passes() int { return l.pass + 1 + len(l.pending) }

// ResultDims returns the target shape of the current pass.
func (l *Loop) ResultDims() []int { return slices.Clone(l.resultDims) }

// ResultRank returns the number of result dimensions walked by Advance.
func (l *Loop) ResultRank() int { return len(l.outerDims) }

// Count returns the number of result tuples of the current pass.
func (l *Loop) Count() int { return array.Count(l.outerDims) }

// BlockLen returns the number of elements in one loop-axis block.
func (l *Loop) BlockLen() int { return l.blocks[l.ref].Len() }

// Kind returns the promoted result kind.
func (l *Loop) Kind() kind.Kind { return l.kind }

// Target returns the target of the current pass (nil under WithNoResult).
func (l *Loop) Target() *array.Array { return l.target }

// Reused reports whether the current target reuses a disposable source.
func (l *Loop) Reused() bool { return l.reused }

// Sources returns the sources of the current pass.
func (l *Loop) Sources() []*array.Array { return slices.Clone(l.sources) }

// Reference returns the index of the reference source.
func (l *Loop) Reference() int { return l.ref }

// Block returns the loop-axis steps of array i (sources first, then target).
func (l *Loop) Block(i int) Block { return l.blocks[i] }

// ResultStrides returns the element strides of array i along the result dims.
func (l *Loop) ResultStrides(i int) []int { return slices.Clone(l.outer[i]) }

// Strides returns the reordered element stride table of array i: loop axes
// first, then result dims.
func (l *Loop) Strides(i int) []int {
	out := make([]int, 0, len(l.blocks[i])+len(l.outer[i]))
	for _, s := range l.blocks[i] {
		out = append(out, s.Stride)
	}

	return append(out, l.outer[i]...)
}

// ByteStrides returns Strides(i) scaled by the element size of array i.
func (l *Loop) ByteStrides(i int) []int {
	size := l.array(i).Kind().Size()

	return lo.Map(l.Strides(i), func(s int, _ int) int { return s * size })
}

func (l *Loop) array(i int) *array.Array {
	if i < len(l.sources) {
		return l.sources[i]
	}

	return l.target
}

// Iterators returns one Iterator per source, in order, followed by one for
// the target when there is one.
func (l *Loop) Iterators() Group {
	n := len(l.blocks)
	g := make(Group, n)
	for i := 0; i < n; i++ {
		g[i] = newIterator(l.array(i), l.outerDims, l.outer[i], l.blocks[i])
	}

	return g
}
