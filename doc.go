// Package lux is a small numeric-array toolkit built around one engine: a
// strided multi-array loop that every statistics routine shares.
//
// What is in the box?
//
//	• kind/  — the nine element kinds, their sizes and the promotion lattice
//	• array/ — array descriptors over aligned byte storage, views, typed access
//	           and storage providers (Heap, Budget)
//	• loop/  — the axis & shape resolver, strided iterators with Save/Restore,
//	           and the result allocator
//	• stats/ — Total, Mean, Min, Max, Variance, SDev, RunSum, Smooth,
//	           WeightedMean, Covariance, Correlation
//	• cmd/luxstat — a CLI driving the routines on YAML input
//
// Layout:
//
// Arrays store their first dimension fastest. A [4,3] array holding 1..12
// has rows (1 5 9), (2 6 10), (3 7 11) and (4 8 12):
//
//	      axis 1 →
//	a  │  1  5  9
//	x  │  2  6 10
//	i  │  3  7 11
//	s  ↓  4  8 12
//	0
//
// Summing along axis 1 resolves a Loop with result dims [4] and a block of
// extent 3, and yields 15 18 21 24.
//
// Everything is sequential and allocation-explicit: results come from an
// array.Provider, and routines may hand a disposable input's storage back as
// their result.
//
//	go get github.com/katalvlaran/lux
package lux
