// SPDX-License-Identifier: MIT

package kind_test

import (
	"testing"

	"github.com/katalvlaran/lux/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTable(t *testing.T) {
	sizes := map[kind.Kind]int{
		kind.Int8:       1,
		kind.Int16:      2,
		kind.Int32:      4,
		kind.Int64:      8,
		kind.Float32:    4,
		kind.Float64:    8,
		kind.Complex64:  8,
		kind.Complex128: 16,
	}
	for k, want := range sizes {
		assert.Equal(t, want, k.Size(), k.String())
		assert.Zero(t, want%k.Align(), "alignment of %s divides its size", k)
	}
	assert.Positive(t, kind.String.Size())
	assert.Zero(t, kind.Invalid.Size())
	assert.Len(t, kind.All(), 9)
}

func TestClassification(t *testing.T) {
	assert.True(t, kind.Int64.IsInteger())
	assert.False(t, kind.Int64.IsFloat())
	assert.True(t, kind.Float32.IsReal())
	assert.True(t, kind.Complex64.IsComplex())
	assert.False(t, kind.Complex64.IsReal())
	assert.False(t, kind.String.IsNumeric())

	assert.Equal(t, kind.Float32, kind.Complex64.RealPart())
	assert.Equal(t, kind.Float64, kind.Complex128.RealPart())
	assert.Equal(t, kind.Int16, kind.Int16.RealPart())
	assert.Equal(t, kind.Complex64, kind.Int64.ComplexOf())
	assert.Equal(t, kind.Complex128, kind.Float64.ComplexOf())
	assert.Equal(t, kind.Invalid, kind.String.ComplexOf())
}

func TestParse(t *testing.T) {
	for _, k := range kind.All() {
		got, err := kind.Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := kind.Parse(" Double ")
	require.NoError(t, err)
	assert.Equal(t, kind.Float64, got)

	got, err = kind.Parse("cfloat")
	require.NoError(t, err)
	assert.Equal(t, kind.Complex64, got)

	_, err = kind.Parse("quaternion")
	assert.ErrorIs(t, err, kind.ErrUnknownKind)
	assert.Equal(t, "kind(200)", kind.Kind(200).String())
}
