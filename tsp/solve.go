// SPDX-License-Identifier: MIT
// Package tsp - entry point.
//
// SolvePath validates the inputs, handles the trivial sizes, runs the greedy
// join and (optionally) the 2-opt refinement.
//
// Design principles:
//   - Deterministic: no randomness anywhere; equal inputs give equal paths.
//   - Strict sentinels: only errors from types.go.
//   - Stable cost: returned costs are rounded to 1e−9.
package tsp

import "github.com/katalvlaran/cubecolor/matrix"

// SolvePath returns a near-optimal Hamiltonian path over dist.
//
// Contracts:
//   - dist must be square, finite, non-negative and symmetric; nil means n == 0.
//   - n == 0 → empty path; n == 1 → [0]; n == 2 → [0 1] (or [1 0] when Start==1).
//   - With opts.FixedEndpoints, Path[0]==Start and Path[n−1]==End.
//   - With opts.Refine and free endpoints, the returned cost never exceeds the
//     cost of the identity ordering 0..n−1: refinement starts from whichever
//     of the greedy path and the identity ordering is cheaper.
//
// Complexity: O(n² log n) + O(iter·n²) when refining.
func SolvePath(dist matrix.Matrix, opts Options) (PathResult, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return PathResult{}, err
	}

	switch n {
	case 0:
		return PathResult{Path: []int{}}, nil
	case 1:
		return PathResult{Path: []int{0}}, nil
	}

	w := flatten(dist, n)
	if n == 2 {
		path := []int{0, 1}
		if opts.FixedEndpoints && opts.Start == 1 {
			path = []int{1, 0}
		}
		return PathResult{Path: path, Cost: round1e9(w[1])}, nil
	}

	path, err := greedyPath(w, n, opts)
	if err != nil {
		return PathResult{}, err
	}
	cost := pathCostFlat(w, n, path)

	if opts.Refine {
		if !opts.FixedEndpoints {
			id := identityPath(n)
			if c := pathCostFlat(w, n, id); c < cost {
				path, cost = id, c
			}
		}
		path, cost = refinePath(w, n, path, opts)
	}

	return PathResult{Path: path, Cost: cost}, nil
}

// identityPath returns [0, 1, …, n−1].
func identityPath(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
