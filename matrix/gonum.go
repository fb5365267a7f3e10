// SPDX-License-Identifier: MIT

// Package matrix: gonum ingestion adapter.
// Callers that already hold their costs in a gonum mat.Matrix (e.g. built
// from sensor distances or model scores) can convert without reshaping into
// rows-of-slices first.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// FromGonum copies src into a new Dense, applying the same shape and numeric
// policy validation as NewDenseFromRows.
//
// Errors:
//   - ErrNilMatrix        — src is nil.
//   - ErrInvalidDimensions — src has zero rows or columns.
//   - ErrNaNInf           — a NaN or -Inf entry (wrapped with coordinates).
//
// Complexity: O(r*c) time and memory.
func FromGonum(src mat.Matrix) (*Dense, error) {
	// Validate the argument.
	if src == nil {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Copy under the numeric policy.
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := src.At(i, j)
			if !validValue(v) {
				return nil, denseErrorf("FromGonum", i, j, ErrNaNInf)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}
