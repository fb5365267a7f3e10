// Package hungarian solves the rectangular linear assignment problem:
// given an m×n cost matrix, pick a one-to-one assignment of rows to columns
// minimizing the total cost (Kuhn–Munkres, the "Hungarian" algorithm).
//
// 🚀 What is the assignment problem?
//
//	Match workers to jobs, trackers to detections, tasks to machines —
//	any bipartite pairing where each pair carries a cost and every row
//	and column may be used at most once. The solver is exact: no
//	heuristics, no convergence tolerance, the same matrix always yields
//	the same optimal result.
//
// ✨ Key features:
//   - rectangular inputs: m≠n is padded internally, min(m,n) pairs out
//   - forbidden pairings via a sentinel cost (+Inf by default, or any
//     finite value through Options.Forbidden), checked structurally
//   - strict mode (ErrNoFeasibleAssignment) or best partial assignment
//     (Options.AllowPartial) when forbidden pairs rule out completion
//   - negative finite costs are valid input
//   - reentrant: per-call state only, safe for concurrent solves
//   - gonum interop: ingest a mat.Matrix via matrix.FromGonum and solve it
//     with SolveMatrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hungarian"
//
//	costs := [][]float64{
//	  {4, 1, 3},
//	  {2, 0, 5},
//	  {3, 2, 2},
//	}
//	res, err := hungarian.Solve(costs, hungarian.DefaultOptions())
//	// res.Pairs == [{0 1} {1 0} {2 2}], res.Cost == 5
//
// Internally one mutable working matrix flows through sequential phases:
// square padding, row/column reduction, zero-cover search (stars, primes,
// covers) alternating with dual adjustment, then extraction of the starred
// positions against the original entries.
//
// Performance:
//
//   - Time:   O(n'³), n' = max(m, n)
//   - Memory: O(n'²)
//
// See examples in example_test.go.
package hungarian
