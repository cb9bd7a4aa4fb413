// SPDX-License-Identifier: MIT
// Package kind: promotion lattice.
//
// Purpose:
//   - Compute the minimal common kind of two operands (lattice join).
//   - Apply routine-level floors (at least Float32 for averages) and the
//     ForceDouble override.
//
// Determinism:
//   - Pure functions over a closed table; no state, no allocation.

package kind

import "fmt"

// Join returns the lattice join of a and b.
// Implementation:
//   - Stage 1: reject undefined kinds and string/numeric mixes.
//   - Stage 2: reals join by registry order.
//   - Stage 3: if either side is complex, widen the real join to its complex kind.
//
// Errors:
//   - ErrUnsupportedKindCombination for pairs without a join.
//
// Complexity:
//   - Time O(1), Space O(1).
func Join(a, b Kind) (Kind, error) {
	if !a.Valid() || !b.Valid() {
		return Invalid, fmt.Errorf("%w: %s and %s", ErrUnsupportedKindCombination, a, b)
	}
	if a == String || b == String {
		if a == b {
			return String, nil
		}

		return Invalid, fmt.Errorf("%w: %s and %s", ErrUnsupportedKindCombination, a, b)
	}

	ra, rb := a.RealPart(), b.RealPart()
	r := ra
	if rb > r {
		r = rb
	}
	if a.IsComplex() || b.IsComplex() {
		return r.ComplexOf(), nil
	}

	return r, nil
}

// Promote returns the join of a and b. Callers validate the pair first (see
// Join); an unsupported pair here is an internal invariant violation and
// panics with ErrUnsupportedKindCombination.
func Promote(a, b Kind) Kind {
	k, err := Join(a, b)
	if err != nil {
		panic(err)
	}

	return k
}

// PromoteWithFloor returns max(k, floor) in lattice order.
func PromoteWithFloor(k, floor Kind) Kind {
	return Promote(k, floor)
}

// PromoteFlags applies promotion overrides to k. String is returned unchanged.
func PromoteFlags(k Kind, f Flags) Kind {
	if k == String {
		return k
	}
	if f&FloorFloat != 0 {
		k = Promote(k, Float32)
	}
	if f&ForceDouble != 0 {
		k = Promote(k, Float64)
	}

	return k
}

// LessEq reports a ≤ b in lattice order. Incomparable pairs report false.
func LessEq(a, b Kind) bool {
	j, err := Join(a, b)

	return err == nil && j == b
}

// Less reports a < b in lattice order.
func Less(a, b Kind) bool { return a != b && LessEq(a, b) }
