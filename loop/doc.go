// Package loop is the multi-array strided traversal engine of lux.
//
// Given one or more source arrays, an optional axis list and a policy, Resolve
// decides which dimensions are iterated (loop axes) and which are kept
// (result dimensions), computes per-array strides with the loop axes first,
// checks that the sources match the reference array, promotes the element
// kind and allocates the target. Routines then walk every array in lockstep
// with Iterators.
//
// Typical reduction (sum along axis 1 of a float64 matrix):
//
//	l, err := loop.Resolve([]*array.Array{x}, []int{1}, loop.WithBlock())
//	if err != nil {
//		return nil, err
//	}
//	g := l.Iterators()
//	src, trg := g[0], g[1]
//	in, out := array.Values[float64](x), array.Values[float64](l.Target())
//	for n := l.Count(); n > 0; n-- {
//		var s float64
//		for off := range src.Block().Offsets() {
//			s += in[src.Offset()+off]
//		}
//		out[trg.Offset()] = s
//		g.Advance()
//	}
//	return l.Target(), nil
//
// Iterator.Next walks the block and the result dimensions together and
// reports the number of levels that rolled over, so a value ≥ NumAxes marks
// the end of one reduction. Save and Restore rewind an iterator to the start
// of a block for two-pass algorithms.
//
// Without WithBlock, a multi-axis request is processed one axis per pass;
// NextPass feeds the previous target back in as the source.
//
// The engine is strictly sequential and never logs; all validation errors are
// returned by Resolve before any Iterator exists.
package loop
