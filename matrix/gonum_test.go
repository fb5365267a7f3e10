package matrix_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromGonum verifies value-faithful ingestion from a gonum mat.Dense.
func TestFromGonum(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, src.At(i, j), v)
		}
	}
}

// TestFromGonum_Nil verifies the nil-argument guard.
func TestFromGonum_Nil(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFromGonum_NumericPolicy verifies that NaN entries are rejected and
// +Inf entries survive as forbidden markers.
func TestFromGonum_NumericPolicy(t *testing.T) {
	_, err := matrix.FromGonum(mat.NewDense(1, 2, []float64{1, math.NaN()}))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	d, err := matrix.FromGonum(mat.NewDense(1, 2, []float64{1, math.Inf(1)}))
	require.NoError(t, err)
	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.True(t, matrix.IsForbidden(v))
}
