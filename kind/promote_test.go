// SPDX-License-Identifier: MIT

package kind_test

import (
	"testing"

	"github.com/katalvlaran/lux/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numeric returns every numeric kind.
func numeric() []kind.Kind {
	var out []kind.Kind
	for _, k := range kind.All() {
		if k.IsNumeric() {
			out = append(out, k)
		}
	}

	return out
}

// TestPromote_KnownJoins checks the documented joins.
func TestPromote_KnownJoins(t *testing.T) {
	tests := []struct {
		a, b, want kind.Kind
	}{
		{kind.Int8, kind.Int32, kind.Int32},
		{kind.Float32, kind.Float64, kind.Float64},
		{kind.Complex64, kind.Float64, kind.Complex128},
		{kind.Int64, kind.Float32, kind.Float32},
		{kind.Int16, kind.Complex64, kind.Complex64},
		{kind.Complex64, kind.Complex128, kind.Complex128},
		{kind.String, kind.String, kind.String},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, kind.Promote(tc.a, tc.b), "%s ∨ %s", tc.a, tc.b)
	}
}

// TestPromote_LatticeLaws verifies commutativity, associativity and idempotence
// over every numeric triple.
func TestPromote_LatticeLaws(t *testing.T) {
	ks := numeric()
	for _, a := range ks {
		require.Equal(t, a, kind.Promote(a, a), "idempotent %s", a)
		for _, b := range ks {
			require.Equal(t, kind.Promote(a, b), kind.Promote(b, a), "commutative %s,%s", a, b)
			for _, c := range ks {
				left := kind.Promote(kind.Promote(a, b), c)
				right := kind.Promote(a, kind.Promote(b, c))
				require.Equal(t, left, right, "associative %s,%s,%s", a, b, c)
			}
		}
	}
}

// TestPromoteWithFloor_NeverBelowFloor checks the floor bound and that the
// result is also an upper bound of k.
func TestPromoteWithFloor_NeverBelowFloor(t *testing.T) {
	for _, k := range numeric() {
		for _, floor := range numeric() {
			got := kind.PromoteWithFloor(k, floor)
			assert.True(t, kind.LessEq(floor, got), "floor %s, k %s -> %s", floor, k, got)
			assert.True(t, kind.LessEq(k, got), "k %s, floor %s -> %s", k, floor, got)
		}
	}
}

func TestPromoteFlags(t *testing.T) {
	assert.Equal(t, kind.Float32, kind.PromoteFlags(kind.Int32, kind.FloorFloat))
	assert.Equal(t, kind.Float64, kind.PromoteFlags(kind.Int32, kind.ForceDouble))
	assert.Equal(t, kind.Complex128, kind.PromoteFlags(kind.Complex64, kind.ForceDouble))
	assert.Equal(t, kind.Float64, kind.PromoteFlags(kind.Float64, kind.FloorFloat))
	assert.Equal(t, kind.Int16, kind.PromoteFlags(kind.Int16, 0))
	assert.Equal(t, kind.String, kind.PromoteFlags(kind.String, kind.ForceDouble))
}

// TestJoin_Unsupported covers the pairs without a join.
func TestJoin_Unsupported(t *testing.T) {
	_, err := kind.Join(kind.String, kind.Int8)
	assert.ErrorIs(t, err, kind.ErrUnsupportedKindCombination)

	_, err = kind.Join(kind.Float64, kind.String)
	assert.ErrorIs(t, err, kind.ErrUnsupportedKindCombination)

	_, err = kind.Join(kind.Invalid, kind.Int8)
	assert.ErrorIs(t, err, kind.ErrUnsupportedKindCombination)

	assert.Panics(t, func() { kind.Promote(kind.String, kind.Complex64) })
}

func TestLess(t *testing.T) {
	assert.True(t, kind.Less(kind.Int8, kind.Int16))
	assert.True(t, kind.Less(kind.Int64, kind.Float32))
	assert.True(t, kind.Less(kind.Float32, kind.Complex64))
	assert.False(t, kind.Less(kind.Float64, kind.Complex64))
	assert.False(t, kind.Less(kind.Complex64, kind.Float64))
	assert.False(t, kind.Less(kind.Int8, kind.Int8))
	assert.False(t, kind.LessEq(kind.String, kind.Int8))
}
