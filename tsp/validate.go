// SPDX-License-Identifier: MIT
// Package tsp - validation utilities.
//
// This file contains small helpers that:
//  1. Validate Options (non-negative Eps / RefineMaxIters, endpoint sanity).
//  2. Validate distance matrices (shape, finiteness, negativity, symmetry).
//  3. Validate paths returned to or supplied by callers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"errors"

	"github.com/katalvlaran/cubecolor/matrix"
)

// symTol is the absolute tolerance for symmetry checks.
const symTol = 1e-9

// validateAll verifies Options + distance matrix and returns n (matrix order).
// A nil matrix is accepted and means n == 0.
//
// Complexity: O(n²).
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	if opts.Eps < 0 || opts.RefineMaxIters < 0 {
		return 0, ErrBadOptions
	}
	if dist == nil {
		if opts.FixedEndpoints {
			return 0, ErrEndpointOutOfRange
		}
		return 0, nil
	}

	n, err := validateDistMatrix(dist)
	if err != nil {
		return 0, err
	}

	if opts.FixedEndpoints {
		if opts.Start < 0 || opts.Start >= n || opts.End < 0 || opts.End >= n {
			return 0, ErrEndpointOutOfRange
		}
		if opts.Start == opts.End {
			return 0, ErrEndpointsEqual
		}
	}

	return n, nil
}

// validateDistMatrix checks shape, finiteness, non-negativity and symmetry.
// Shape, finiteness and symmetry go through the matrix validators; their
// sentinels are mapped onto this package's.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return 0, nil
		}
		return 0, ErrNonSquare
	}
	if err := matrix.ValidateFinite(dist); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return 0, ErrNonFinite
		}
		return 0, ErrNonSquare
	}

	var (
		n   = dist.Rows()
		i   int
		j   int
		v   float64
		err error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = dist.At(i, j); err != nil {
				return 0, ErrNonSquare
			}
			if v < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	if err = matrix.ValidateSymmetric(dist, symTol); err != nil {
		if errors.Is(err, matrix.ErrAsymmetry) {
			return 0, ErrAsymmetry
		}
		return 0, ErrNonSquare
	}

	return n, nil
}

// ValidatePath checks that path is a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func ValidatePath(path []int, n int) error {
	if len(path) != n {
		return ErrInvalidPath
	}

	seen := make([]bool, n)
	for _, v := range path {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidPath
		}
		seen[v] = true
	}

	return nil
}
