// Package stats implements array statistics on top of the loop engine.
//
// Every routine is a thin shell around loop.Resolve: it picks the axis,
// matching and result-kind policies, dispatches once on the result kind and
// runs a tight typed inner loop over the resolved blocks.
//
// Reductions (Total, Mean, Min, Max, Variance, SDev, WeightedMean,
// Covariance, Correlation) sweep every listed axis as one block; a nil axis
// list reduces the whole array to a scalar. RunSum and Smooth keep the input
// shape and work along one axis (or the flattened array when none is given).
//
// Result kinds follow the promotion lattice of package kind:
//
//	Total          at least Int64 (integer sums are exact)
//	Mean, Smooth   at least Float32
//	Variance, SDev at least Float32, real part of a complex input
//	Min, Max       the source kind
//
// WithDouble raises every result to double precision.
//
// Errors are the engine's sentinels plus ErrEmptyReduction, ErrNotReal,
// ErrNotNumeric and ErrBadWidth, all matchable with errors.Is.
package stats
