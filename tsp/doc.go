// SPDX-License-Identifier: MIT

// Package tsp provides a greedy Travelling Salesman solver that returns an
// open Hamiltonian path (not a cycle) over a symmetric distance matrix.
//
// The colour resolvers use it to order physical squares next to the synthetic
// reference squares they most resemble:
//
//   - SolvePath: greedy edge-joining (cheapest pair first, valency ≤ 2, no
//     premature cycles) followed by an optional best-improvement 2-opt pass.
//
//   - Complexity: O(n² log n) for candidate sorting, O(iter·n²) for refinement.
//
//   - Supports two fixed endpoints (valency 1) via Options.WithEndpoints.
//
//   - TwoOptPath: the refinement pass on its own, for callers that already
//     hold a path.
//
//   - PathCost / ValidatePath: shared helpers with strict sentinels.
//
// Distances must be finite and non-negative. Pairs that must never be adjacent
// are expressed with the Forbidden sentinel distance rather than +Inf, so the
// solver always returns a full path even when every alternative is exhausted.
//
// Use this package for small instances (n ≲ 300); it holds an n×n copy of the
// matrix and an n(n−1)/2 candidate list.
package tsp
