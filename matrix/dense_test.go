package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies shape validation on the zero
// constructor.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must error")
}

// TestDense_AtSetBounds verifies that out-of-range indices error instead of
// panicking.
func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = d.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, d.Set(1, 1, 42))
	v, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

// TestDense_SetNumericPolicy verifies that NaN and -Inf are rejected on Set
// while +Inf (the forbidden marker) is accepted.
func TestDense_SetNumericPolicy(t *testing.T) {
	d, err := matrix.NewDense(1, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	assert.NoError(t, d.Set(0, 0, matrix.Inf()), "+Inf marks a forbidden pairing")
}

// TestNewDenseFromRows covers ingestion: happy path, empty, ragged and
// NaN inputs.
func TestNewDenseFromRows(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 2, d.Cols())
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	d, err = matrix.NewDenseFromRows([][]float64{{1, matrix.Inf()}})
	require.NoError(t, err, "+Inf entries are admitted as forbidden markers")
	v, err = d.At(0, 1)
	require.NoError(t, err)
	assert.True(t, matrix.IsForbidden(v))
}

// TestDense_Clone verifies deep-copy semantics.
func TestDense_Clone(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}

// TestDense_String pins the debug rendering format.
func TestDense_String(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", d.String())
}

// TestIsForbidden verifies the structural forbidden check.
func TestIsForbidden(t *testing.T) {
	assert.True(t, matrix.IsForbidden(matrix.Inf()))
	assert.False(t, matrix.IsForbidden(math.MaxFloat64), "large finite costs are legitimate")
	assert.False(t, matrix.IsForbidden(0))
}
