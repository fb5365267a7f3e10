package hungarian

import "errors"

// Sentinel errors returned by Solve and SolveMatrix.
// Callers match them via errors.Is; detection sites may add context with
// fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidDimension is returned for a malformed input shape:
	// zero rows, zero columns, a nil matrix, or ragged rows.
	ErrInvalidDimension = errors.New("hungarian: cost matrix must be non-empty and rectangular")

	// ErrNonFiniteCost is returned when an entry is NaN, -Inf, or an
	// infinity that is not the configured forbidden sentinel.
	ErrNonFiniteCost = errors.New("hungarian: cost is NaN or infinite outside the forbidden sentinel")

	// ErrNoFeasibleAssignment is returned in strict mode when the forbidden
	// entries admit no complete assignment of size min(m, n).
	ErrNoFeasibleAssignment = errors.New("hungarian: forbidden pairs admit no complete assignment")

	// ErrInvalidSentinel is returned when Options.Forbidden is NaN or -Inf;
	// the sentinel must be +Inf or a finite value.
	ErrInvalidSentinel = errors.New("hungarian: forbidden sentinel must be +Inf or finite")
)

// Pair is one matched (row, column) position in the original matrix.
type Pair struct {
	Row int
	Col int
}

// Result holds the outcome of an assignment solve.
type Result struct {
	// Pairs is the optimal assignment, ordered by Row ascending.
	// Each original row and column index appears at most once.
	Pairs []Pair

	// Cost is the total of the ORIGINAL matrix entries at Pairs.
	// Reduction amounts applied internally never leak into this value.
	Cost float64
}
