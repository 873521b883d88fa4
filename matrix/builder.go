// SPDX-License-Identifier: MIT
// Package matrix - constructors that fill a Dense from a callback.

package matrix

import "fmt"

// BuildSymmetric returns an n×n Dense where entry (i,j) and (j,i) both hold
// fn(i, j) for i<j, and the diagonal is zero. fn is invoked exactly once per
// unordered pair, in row-major order of the upper triangle, so callers may rely
// on a deterministic call sequence (useful for memoized metrics).
//
// Errors: ErrInvalidDimensions (n<=0), ErrNilFunc.
// Complexity: O(n²) time, O(n²) memory, n(n-1)/2 calls to fn.
func BuildSymmetric(n int, fn func(i, j int) float64) (*Dense, error) {
	if fn == nil {
		return nil, fmt.Errorf("BuildSymmetric: %w", ErrNilFunc)
	}
	d, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("BuildSymmetric: %w", err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = fn(i, j)
			d.data[i*n+j] = v
			d.data[j*n+i] = v
		}
	}

	return d, nil
}
