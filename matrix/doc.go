// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance matrices consumed by the tsp
// solver and the colour resolvers.
//
// The package is intentionally small:
//
//   - Matrix is the read/write surface shared by all solvers.
//   - Dense is a row-major, bounds-checked implementation backed by a flat slice.
//   - BuildSymmetric fills an n×n Dense from a pairwise distance function.
//   - ValidateSquare / ValidateSymmetric / ValidateFinite are the canonical guards.
//
// Matrices are best for the small, complete graphs this module works with
// (at most a few hundred nodes), where O(n²) memory is never a concern.
package matrix
