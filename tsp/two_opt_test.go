// SPDX-License-Identifier: MIT
// Package tsp_test covers the 2-opt pass in isolation and the validation sentinels.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cubecolor/matrix"
	"github.com/katalvlaran/cubecolor/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoOptPath_RemovesCrossing(t *testing.T) {
	// Unit square visited diagonally: (0,0) → (1,1) → (1,0) → (0,1).
	d := euclid(t, [][2]float64{{0, 0}, {1, 1}, {1, 0}, {0, 1}})

	before, err := tsp.PathCost(d, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1+2*math.Sqrt2, before, epsCost)

	path, cost, err := tsp.TwoOptPath(d, []int{0, 1, 2, 3}, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)
	assert.InDelta(t, 3.0, cost, epsCost)
}

func TestTwoOptPath_KeepsEndpoints(t *testing.T) {
	d := euclid(t, randomPoints(12, seedDet))
	start := identity(12)
	opts := tsp.DefaultOptions().WithEndpoints(0, 11)

	path, cost, err := tsp.TwoOptPath(d, start, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 11, path[11])
	assert.Equal(t, identity(12), start, "input must not be mutated")

	idCost, err := tsp.PathCost(d, start)
	require.NoError(t, err)
	assert.LessOrEqual(t, cost, idCost+epsCost)

	_, _, err = tsp.TwoOptPath(d, []int{1, 0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, opts)
	require.ErrorIs(t, err, tsp.ErrInvalidPath)
}

func TestTwoOptPath_MaxIters(t *testing.T) {
	d := euclid(t, randomPoints(20, seedDet))
	base := identity(20)
	opts := tsp.DefaultOptions()
	opts.RefineMaxIters = 1

	one, oneCost, err := tsp.TwoOptPath(d, base, opts)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidatePath(one, 20))

	full, fullCost, err := tsp.TwoOptPath(d, base, tsp.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tsp.ValidatePath(full, 20))
	assert.LessOrEqual(t, fullCost, oneCost+epsCost)
}

func TestValidation_Sentinels(t *testing.T) {
	rect := dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}})
	_, err := tsp.SolvePath(rect, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	neg := dense(t, [][]float64{{0, -1}, {-1, 0}})
	_, err = tsp.SolvePath(neg, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)

	nan := dense(t, [][]float64{{0, math.NaN()}, {math.NaN(), 0}})
	_, err = tsp.SolvePath(nan, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonFinite)

	inf := dense(t, [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}})
	_, err = tsp.SolvePath(inf, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonFinite)

	asym := dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 4, 0}})
	_, err = tsp.SolvePath(asym, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrAsymmetry)

	ok := dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	_, err = tsp.SolvePath(ok, tsp.DefaultOptions().WithEndpoints(0, 3))
	require.ErrorIs(t, err, tsp.ErrEndpointOutOfRange)
	_, err = tsp.SolvePath(ok, tsp.DefaultOptions().WithEndpoints(1, 1))
	require.ErrorIs(t, err, tsp.ErrEndpointsEqual)

	bad := tsp.DefaultOptions()
	bad.Eps = -1
	_, err = tsp.SolvePath(ok, bad)
	require.ErrorIs(t, err, tsp.ErrBadOptions)

	_, err = tsp.PathCost(ok, []int{0, 0, 1})
	require.ErrorIs(t, err, tsp.ErrInvalidPath)
	_, err = tsp.PathCost(ok, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrInvalidPath)
}

// TestValidation_MatrixValidators covers the mapping of matrix validator
// failures onto tsp sentinels and the absolute symmetry tolerance.
func TestValidation_MatrixValidators(t *testing.T) {
	// NaN off the upper triangle is still caught
	lower := dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, math.NaN(), 0}})
	_, err := tsp.PathCost(lower, []int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrNonFinite)
	assert.NotErrorIs(t, err, matrix.ErrNaNInf)

	// a negative entry wins over asymmetry
	negAsym := dense(t, [][]float64{{0, -1}, {2, 0}})
	_, err = tsp.SolvePath(negAsym, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)

	nearly := dense(t, [][]float64{{0, 1}, {1 + 1e-12, 0}})
	res, err := tsp.SolvePath(nearly, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Path, 2)

	off := dense(t, [][]float64{{0, tsp.Forbidden}, {tsp.Forbidden + 1e-6, 0}})
	_, err = tsp.SolvePath(off, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrAsymmetry)
}
