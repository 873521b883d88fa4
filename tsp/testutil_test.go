// SPDX-License-Identifier: MIT
// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cubecolor/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsCost is the comparison tolerance for rounded path costs.
	epsCost = 1e-9

	// seedDet is the deterministic seed for generated instances.
	seedDet = int64(42)
)

// euclid builds the Euclidean distance matrix over 2-D points.
func euclid(t *testing.T, pts [][2]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.BuildSymmetric(len(pts), func(i, j int) float64 {
		return math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
	})
	require.NoError(t, err)

	return d
}

// randomPoints returns n points in the unit square drawn from a seeded source.
func randomPoints(n int, seed int64) [][2]float64 {
	r := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Float64(), r.Float64()}
	}

	return pts
}

// identity returns [0..n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// dense builds a *matrix.Dense from a literal row slice.
func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			require.NoError(t, d.Set(i, j, rows[i][j]))
		}
	}

	return d
}
