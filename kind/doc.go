// Package kind is the element-kind registry of lux arrays.
//
// Every array carries exactly one Kind: a signed integer of 8, 16, 32 or 64
// bits, a single or double precision float, a single or double precision
// complex number, or a string reference. The package owns the per-kind size
// table and the promotion lattice used to pick the minimal common kind of two
// operands:
//
//	Int8 < Int16 < Int32 < Int64 < Float32 < Float64
//	Complex64 < Complex128
//
// A join that involves a complex kind yields the complex kind wide enough for
// the real join of both real parts, so Complex64 joined with Float64 is
// Complex128. String joins only with itself.
//
// Usage:
//
//	k := kind.Promote(kind.Int8, kind.Int32)          // Int32
//	f := kind.PromoteWithFloor(kind.Int16, kind.Float32) // Float32
//	d := kind.PromoteFlags(kind.Complex64, kind.ForceDouble) // Complex128
//
// Join is the checked variant: it returns ErrUnsupportedKindCombination
// instead of panicking and is what resolvers call before promoting.
package kind
