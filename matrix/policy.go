// SPDX-License-Identifier: MIT

// Package matrix: numeric policy for cost values.
// A cost is either a finite real number or the +Inf forbidden marker.
// NaN corrupts minimum-finding and -Inf would make totals unbounded, so both
// are rejected at ingestion and on Set.
package matrix

import "math"

// Inf returns the canonical forbidden-pairing marker, +Inf.
func Inf() float64 {
	return math.Inf(1)
}

// IsForbidden reports whether v marks a forbidden (infeasible) pairing.
func IsForbidden(v float64) bool {
	return math.IsInf(v, 1)
}

// validValue reports whether v satisfies the numeric policy:
// finite, or the +Inf forbidden marker.
func validValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, -1)
}
