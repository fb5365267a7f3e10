package hungarian_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hungarian"
	"github.com/stretchr/testify/require"
)

// bruteForceMin exhaustively computes the minimum total cost over every
// complete assignment of min(m,n) pairs, skipping forbidden (+Inf) entries.
// Returns +Inf when no complete assignment exists. Intended for n ≤ 6 only.
func bruteForceMin(costs [][]float64) float64 {
	m, n := len(costs), len(costs[0])
	if m > n {
		// Transpose so every row must be matched.
		t := make([][]float64, n)
		for j := 0; j < n; j++ {
			t[j] = make([]float64, m)
			for i := 0; i < m; i++ {
				t[j][i] = costs[i][j]
			}
		}
		costs, m, n = t, n, m
	}

	best := math.Inf(1)
	used := make([]bool, n)
	var rec func(row int, acc float64)
	rec = func(row int, acc float64) {
		if row == m {
			if acc < best {
				best = acc
			}

			return
		}
		for j := 0; j < n; j++ {
			if used[j] || math.IsInf(costs[row][j], 1) {
				continue
			}
			used[j] = true
			rec(row+1, acc+costs[row][j])
			used[j] = false
		}
	}
	rec(0, 0)

	return best
}

// requireValidAssignment checks the structural result invariants: row
// ordering, index bounds, injectivity of rows and columns, and that Cost
// equals the sum of the original entries at Pairs.
func requireValidAssignment(t *testing.T, costs [][]float64, res hungarian.Result) {
	t.Helper()

	m, n := len(costs), len(costs[0])
	rowSeen := make(map[int]bool, len(res.Pairs))
	colSeen := make(map[int]bool, len(res.Pairs))

	total := 0.0
	lastRow := -1
	for _, p := range res.Pairs {
		require.GreaterOrEqual(t, p.Row, 0)
		require.Less(t, p.Row, m, "row index must address the original matrix")
		require.GreaterOrEqual(t, p.Col, 0)
		require.Less(t, p.Col, n, "column index must address the original matrix")
		require.False(t, rowSeen[p.Row], "row %d matched twice", p.Row)
		require.False(t, colSeen[p.Col], "column %d matched twice", p.Col)
		rowSeen[p.Row] = true
		colSeen[p.Col] = true
		require.Greater(t, p.Row, lastRow, "pairs must be ordered by row")
		lastRow = p.Row
		total += costs[p.Row][p.Col]
	}
	require.InDelta(t, total, res.Cost, 1e-9, "Cost must be the sum of original entries at Pairs")
}
