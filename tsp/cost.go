// SPDX-License-Identifier: MIT
// Package tsp — cost utilities shared by the greedy join and the 2-opt pass.
//
// Design:
//   - Costs are sums over consecutive path vertices (no closing edge).
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time for a path of length n, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/cubecolor/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// PathCost returns the total distance along path.
// Errors: ErrInvalidPath when path is not a permutation of 0..n-1, plus the
// matrix sentinels surfaced by validateDistMatrix.
//
// Complexity: O(n²) validation + O(n) summation.
func PathCost(dist matrix.Matrix, path []int) (float64, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidatePath(path, n); err != nil {
		return 0, err
	}

	return pathCostFlat(flatten(dist, n), n, path), nil
}

// pathCostFlat sums w[path[i]*n+path[i+1]] over the path.
// Assumes a validated path.
func pathCostFlat(w []float64, n int, path []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		sum += w[path[i]*n+path[i+1]]
	}

	return round1e9(sum)
}

// flatten prefetches the matrix into a dense row-major buffer so hot loops
// avoid interface indirection. *matrix.Dense takes the copy fast-path.
// Assumes dist is a validated n×n matrix.
func flatten(dist matrix.Matrix, n int) []float64 {
	if d, ok := dist.(*matrix.Dense); ok {
		return d.Flat()
	}

	w := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w[i*n+j], _ = dist.At(i, j)
		}
	}

	return w
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
