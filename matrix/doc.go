// Package matrix provides the dense cost-matrix primitives consumed by the
// hungarian solver.
//
// The central type is Dense, a row-major flat-slice matrix of float64 costs.
// Ingestion constructors (NewDenseFromRows, FromGonum) validate shape and
// enforce the numeric policy: NaN and -Inf are rejected, while +Inf is
// admitted as the canonical marker for a forbidden (infeasible) row-column
// pairing. Structural checks via IsForbidden replace magic-number comparisons
// on "very large" costs.
//
// All public operations return sentinel errors (errors.go) instead of
// panicking; callers match them with errors.Is.
package matrix
