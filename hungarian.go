// Package hungarian - entry points, input validation and the solve driver.
//
// Solve / SolveMatrix validate the cost matrix, pad it square, run the
// reduction + zero-cover + dual-adjustment cycle (cover.go) and extract the
// optimal pairs against the original entries.
package hungarian

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hungarian/matrix"
)

// Solve computes a minimum-cost one-to-one assignment of rows to columns for
// an m×n cost table given as rows of slices.
//
// Contracts:
//   - costs must be non-empty and rectangular; every entry must be finite,
//     the configured sentinel, or +Inf when the sentinel is +Inf.
//   - Negative finite costs are valid input: row reduction shifts every
//     assignment's total by the same constant, so the argmin is unchanged.
//   - The input is only read; the solver works on a private padded copy.
//
// Returns min(m, n) pairs ordered by row (fewer in partial mode when
// forbidden entries exclude some rows) and the total of the original entries
// at those pairs.
//
// Errors: ErrInvalidDimension, ErrNonFiniteCost, ErrNoFeasibleAssignment,
// ErrInvalidSentinel.
//
// Complexity: O(n'³) time, O(n'²) memory, n' = max(m, n).
func Solve(costs [][]float64, opts Options) (Result, error) {
	// Stage 1 - shape and numeric-policy validation via the matrix package.
	d, err := matrix.NewDenseFromRows(costs)
	if err != nil {
		switch {
		case errors.Is(err, matrix.ErrNaNInf):
			return Result{}, fmt.Errorf("%w: %v", ErrNonFiniteCost, err)
		default:
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidDimension, err)
		}
	}

	// Stage 2 - delegate to the Matrix-interface entry point.
	return SolveMatrix(d, opts)
}

// SolveMatrix is Solve over the matrix.Matrix interface, so callers holding
// a matrix.Dense (including gonum-ingested ones via matrix.FromGonum) avoid
// an extra conversion to rows of slices.
//
// Contracts and errors are identical to Solve.
func SolveMatrix(m matrix.Matrix, opts Options) (Result, error) {
	// Stage 1 - options validation.
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Stage 2 - matrix shape validation.
	if m == nil {
		return Result{}, fmt.Errorf("nil matrix: %w", ErrInvalidDimension)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return Result{}, fmt.Errorf("%dx%d matrix: %w", rows, cols, ErrInvalidDimension)
	}

	// Stage 3 - build the padded working state and run the solve cycle.
	s, err := newSolver(m, opts)
	if err != nil {
		return Result{}, err
	}

	return s.run()
}

// solver owns the mutable per-call state: the padded working matrix and the
// star/prime/cover bookkeeping. One solver serves exactly one solve; nothing
// is shared across calls, so concurrent solves on different matrices are safe.
type solver struct {
	src  matrix.Matrix // original costs, read-only; used for final totals
	rows int           // original row count m
	cols int           // original column count n
	n    int           // working dimension n' = max(m, n)
	opts Options

	work       []float64 // n×n reduced-cost working matrix, row-major
	marks      []byte    // n×n star/prime marks, row-major
	rowCovered []bool
	colCovered []bool
}

// newSolver copies m into a zero-padded n'×n' working matrix.
// Real entries map as: sentinel → +Inf, anything else must be finite.
// Padding rows/columns keep cost 0, so they never bias the real-to-real
// optimum and padding matches are dropped at extraction.
//
// In partial mode the +Inf markers are then replaced by a finite surrogate
// that dominates twice the total magnitude of all real entries: the solve
// runs to completion, every assignment prefers dropping a forbidden pair
// over any real-cost trade, and the extractor strips the surrogate pairs.
// Strict mode keeps +Inf so infeasibility surfaces as an exhausted θ.
func newSolver(m matrix.Matrix, opts Options) (*solver, error) {
	rows, cols := m.Rows(), m.Cols()
	n := max(rows, cols)

	s := &solver{
		src:        m,
		rows:       rows,
		cols:       cols,
		n:          n,
		opts:       opts,
		work:       make([]float64, n*n),
		marks:      make([]byte, n*n),
		rowCovered: make([]bool, n),
		colCovered: make([]bool, n),
	}

	var (
		i, j   int
		v      float64
		err    error
		sumAbs float64 // total magnitude of real finite entries
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			switch {
			case v == opts.Forbidden:
				// Forbidden pairing: +Inf survives every reduction and dual
				// adjustment, so no zero (and no star) ever lands on it.
				s.work[i*n+j] = math.Inf(1)
			case math.IsNaN(v) || math.IsInf(v, 0):
				return nil, fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNonFiniteCost)
			default:
				s.work[i*n+j] = v
				sumAbs += math.Abs(v)
			}
		}
	}
	// Padding cells (i >= rows or j >= cols) stay at the zero value.

	if opts.AllowPartial {
		// Any surrogate > 2·sumAbs makes one forbidden pair costlier than
		// every possible real-cost difference combined.
		surrogate := 1 + 2*sumAbs
		if math.IsInf(surrogate, 1) {
			surrogate = math.MaxFloat64
		}
		for idx := range s.work {
			if math.IsInf(s.work[idx], 1) {
				s.work[idx] = surrogate
			}
		}
	}

	return s, nil
}

// run drives the phase cycle:
//
//  1. row + column reduction (initial dual-feasible solution),
//  2. greedy independent stars,
//  3. cover starred columns and test for completion,
//  4. prime / augment / dual-adjust until complete or infeasible,
//  5. extraction against the original matrix.
func (s *solver) run() (Result, error) {
	// Stage 1 - reduction: every line with a finite entry gains a zero.
	s.reduceRows()
	s.reduceCols()

	// Stage 2 - star a maximal set of independent zeros as the seed matching.
	s.starInitialZeros()

	// Stages 3-4 - grow the matching one augmenting path per iteration.
	// In partial mode every entry is finite (surrogate costs), so the loop
	// always completes; in strict mode an exhausted θ aborts the solve.
	for !s.matchingComplete() {
		if err := s.findAugmentingPath(); err != nil {
			return Result{}, err
		}
	}

	// Stage 5 - map stars back through the padding to original indices.
	return s.extract()
}

// extract walks the starred zeros and emits pairs restricted to real
// (non-padding) rows and columns, totalling the ORIGINAL entries.
// Pairs come out ordered by row because the scan is row-major.
func (s *solver) extract() (Result, error) {
	pairs := make([]Pair, 0, min(s.rows, s.cols))
	total := 0.0

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < s.rows; i++ {
		for j = 0; j < s.cols; j++ {
			if s.marks[i*s.n+j] != markStar {
				continue
			}
			if v, err = s.src.At(i, j); err != nil {
				return Result{}, err
			}
			// Partial mode completes the matching over surrogate costs, so
			// a star may sit on a forbidden pairing; strip it here. The
			// check is structural, never a magnitude comparison.
			if v == s.opts.Forbidden || matrix.IsForbidden(v) {
				continue
			}
			pairs = append(pairs, Pair{Row: i, Col: j})
			total += v
		}
	}

	return Result{Pairs: pairs, Cost: total}, nil
}
