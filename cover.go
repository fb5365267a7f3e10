// Package hungarian - reduction, zero-cover search and dual adjustment.
//
// This file holds the combinatorial core: the star/prime/cover state machine
// over the padded working matrix. Stars are the current partial matching,
// primes are augmentation candidates, covers mark rows/columns accounted for
// in the current pass. The state lives on the per-call solver; there is no
// package-level mutable state.
package hungarian

import (
	"fmt"
	"math"
)

// Zero-position marks in solver.marks.
const (
	markNone  byte = iota
	markStar       // tentatively matched zero
	markPrime      // candidate for augmentation
)

// reduceRows subtracts each row's minimum finite entry from the whole row.
// A row whose entries are all +Inf (every real pairing forbidden, no padding
// column) is left untouched: subtracting +Inf would poison the row with NaN.
// Postcondition: every row with a finite entry contains at least one exact
// zero, and no finite entry is negative.
// Complexity: O(n'²).
func (s *solver) reduceRows() {
	var (
		i, j    int
		rowMin  float64
		rowBase int
	)
	for i = 0; i < s.n; i++ {
		rowBase = i * s.n

		// Find the minimum; +Inf entries never win against a finite one.
		rowMin = s.work[rowBase]
		for j = 1; j < s.n; j++ {
			if s.work[rowBase+j] < rowMin {
				rowMin = s.work[rowBase+j]
			}
		}
		if math.IsInf(rowMin, 1) {
			continue // all-forbidden row, nothing to expose
		}

		// Subtract; x-x == 0 exactly in IEEE754, so a true zero appears.
		for j = 0; j < s.n; j++ {
			s.work[rowBase+j] -= rowMin
		}
	}
}

// reduceCols is the column counterpart of reduceRows.
// Postcondition: every column with a finite entry contains at least one zero.
// Complexity: O(n'²).
func (s *solver) reduceCols() {
	var (
		i, j   int
		colMin float64
	)
	for j = 0; j < s.n; j++ {
		colMin = s.work[j]
		for i = 1; i < s.n; i++ {
			if s.work[i*s.n+j] < colMin {
				colMin = s.work[i*s.n+j]
			}
		}
		if math.IsInf(colMin, 1) {
			continue // all-forbidden column
		}
		for i = 0; i < s.n; i++ {
			s.work[i*s.n+j] -= colMin
		}
	}
}

// starInitialZeros greedily stars zeros with no star in their row or column,
// seeding the matching before the augmenting cycle starts. Scan order is
// fixed (row-major), so results are deterministic under ties.
// Complexity: O(n'²).
func (s *solver) starInitialZeros() {
	colUsed := make([]bool, s.n)

	var i, j int
	for i = 0; i < s.n; i++ {
		for j = 0; j < s.n; j++ {
			if colUsed[j] || s.work[i*s.n+j] != 0 {
				continue
			}
			// One star per row: stop scanning this row after starring.
			s.marks[i*s.n+j] = markStar
			colUsed[j] = true

			break
		}
	}
}

// matchingComplete covers every column containing a starred zero and reports
// whether all n' columns are covered, i.e. the matching is complete.
// Covers are expected clear on entry (fresh solver, or reset by augment).
// Complexity: O(n'²).
func (s *solver) matchingComplete() bool {
	covered := 0
	for j := 0; j < s.n; j++ {
		if _, ok := s.starInCol(j); ok {
			s.colCovered[j] = true
			covered++
		}
	}

	return covered == s.n
}

// findAugmentingPath grows the matching by exactly one star, alternating
// between priming uncovered zeros and adjusting the dual when none remain:
//
//  1. Find an uncovered zero; if none exists, run dualAdjust to expose one.
//  2. Prime it. If its row holds a star, cover the row and uncover the
//     star's column, then continue scanning.
//  3. If its row holds no star, an augmenting path ends here: flip it via
//     augment and return.
//
// Returns ErrNoFeasibleAssignment when dualAdjust finds no finite θ.
// Each pass is O(n'²) examinations; a row is never re-examined after being
// covered within a pass.
func (s *solver) findAugmentingPath() error {
	for {
		row, col, ok := s.findUncoveredZero()
		if !ok {
			if err := s.dualAdjust(); err != nil {
				return err
			}

			continue
		}

		s.marks[row*s.n+col] = markPrime

		starCol, hasStar := s.starInRow(row)
		if hasStar {
			// Swap the covers: the star's column re-opens so its zero can
			// be reached by another row; this row is settled for the pass.
			s.rowCovered[row] = true
			s.colCovered[starCol] = false

			continue
		}

		// Starless primed zero: augmenting path found.
		s.augment(row, col)

		return nil
	}
}

// dualAdjust computes θ = min entry over uncovered rows × uncovered columns,
// subtracts θ from every uncovered row and adds θ to every covered column.
//
// Entry movement (uncovered row, uncovered col) −θ / (uncovered, covered) 0 /
// (covered, uncovered) 0 / (covered, covered) +θ keeps every entry ≥ 0: θ is
// the minimum of exactly the entries that decrease. At least one uncovered
// entry becomes zero, so the priming loop always progresses.
//
// θ = +Inf means every uncovered entry is forbidden: no complete assignment
// exists, surfaced as ErrNoFeasibleAssignment.
// Complexity: O(n'²).
func (s *solver) dualAdjust() error {
	// Stage 1 - minimum over the uncovered region.
	theta := math.Inf(1)
	var i, j int
	for i = 0; i < s.n; i++ {
		if s.rowCovered[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			if s.colCovered[j] {
				continue
			}
			if s.work[i*s.n+j] < theta {
				theta = s.work[i*s.n+j]
			}
		}
	}
	if math.IsInf(theta, 1) {
		return fmt.Errorf("uncovered entries are all forbidden: %w", ErrNoFeasibleAssignment)
	}

	// Stage 2 - subtract θ from every uncovered row (+Inf stays +Inf).
	for i = 0; i < s.n; i++ {
		if s.rowCovered[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			s.work[i*s.n+j] -= theta
		}
	}

	// Stage 3 - add θ to every covered column.
	for j = 0; j < s.n; j++ {
		if !s.colCovered[j] {
			continue
		}
		for i = 0; i < s.n; i++ {
			s.work[i*s.n+j] += theta
		}
	}

	return nil
}

// augment flips the alternating path that starts at the starless primed zero
// (row, col): star in the prime's column, prime in that star's row, and so on
// until a column without a star terminates the path. Every prime on the path
// becomes a star and every star becomes unmarked, growing the matching by
// one. All covers and primes are then reset for the next pass.
// Complexity: O(n'²) (each hop scans one row or column).
func (s *solver) augment(row, col int) {
	pathRows := []int{row}
	pathCols := []int{col}

	for {
		starRow, ok := s.starInCol(col)
		if !ok {
			break
		}
		// Star in the same column as the last prime.
		pathRows = append(pathRows, starRow)
		pathCols = append(pathCols, col)

		// Prime in the same row as that star; it exists because rows are
		// covered only after their zero was primed.
		primeCol, _ := s.primeInRow(starRow)
		pathRows = append(pathRows, starRow)
		pathCols = append(pathCols, primeCol)
		col = primeCol
	}

	// Flip the path: primes → stars, stars → unmarked.
	var idx int
	for k := range pathRows {
		idx = pathRows[k]*s.n + pathCols[k]
		if s.marks[idx] == markStar {
			s.marks[idx] = markNone
		} else {
			s.marks[idx] = markStar
		}
	}

	s.clearCoversAndPrimes()
}

// clearCoversAndPrimes resets all covers and erases prime marks, keeping
// stars, so the next pass starts from a clean cover state.
func (s *solver) clearCoversAndPrimes() {
	for i := 0; i < s.n; i++ {
		s.rowCovered[i] = false
		s.colCovered[i] = false
	}
	for idx := range s.marks {
		if s.marks[idx] == markPrime {
			s.marks[idx] = markNone
		}
	}
}

// findUncoveredZero returns the first zero (row-major) whose row and column
// are both uncovered.
func (s *solver) findUncoveredZero() (int, int, bool) {
	var i, j int
	for i = 0; i < s.n; i++ {
		if s.rowCovered[i] {
			continue
		}
		for j = 0; j < s.n; j++ {
			if s.colCovered[j] {
				continue
			}
			if s.work[i*s.n+j] == 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// starInRow returns the column of the starred zero in row i, if any.
func (s *solver) starInRow(i int) (int, bool) {
	for j := 0; j < s.n; j++ {
		if s.marks[i*s.n+j] == markStar {
			return j, true
		}
	}

	return 0, false
}

// starInCol returns the row of the starred zero in column j, if any.
func (s *solver) starInCol(j int) (int, bool) {
	for i := 0; i < s.n; i++ {
		if s.marks[i*s.n+j] == markStar {
			return i, true
		}
	}

	return 0, false
}

// primeInRow returns the column of the primed zero in row i, if any.
func (s *solver) primeInRow(i int) (int, bool) {
	for j := 0; j < s.n; j++ {
		if s.marks[i*s.n+j] == markPrime {
			return j, true
		}
	}

	return 0, false
}
