package hungarian

import "math"

// Options configures a single solve.
//
// Fields:
//   - Forbidden    — sentinel value marking an infeasible pairing. Entries
//     equal to it are treated as +Inf internally. Defaults to +Inf itself;
//     a finite sentinel (e.g. math.MaxFloat64) is accepted for callers that
//     encode "impossible" as a large magic number.
//   - AllowPartial — when the forbidden entries rule out a complete
//     assignment, return the best partial assignment instead of failing
//     with ErrNoFeasibleAssignment.
//
// Example:
//
//	opts := hungarian.DefaultOptions()
//	opts.AllowPartial = true
//	res, err := hungarian.Solve(costs, opts)
type Options struct {
	Forbidden    float64
	AllowPartial bool
}

// DefaultOptions returns the canonical configuration: +Inf sentinel,
// strict (complete-assignment-or-error) mode.
func DefaultOptions() Options {
	return Options{Forbidden: math.Inf(1)}
}

// validate rejects sentinels that would corrupt comparisons.
// NaN never compares equal to anything; -Inf would invert minus-infinity
// semantics. Both are programmer errors surfaced as ErrInvalidSentinel.
func (o Options) validate() error {
	if math.IsNaN(o.Forbidden) || math.IsInf(o.Forbidden, -1) {
		return ErrInvalidSentinel
	}

	return nil
}
