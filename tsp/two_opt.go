// SPDX-License-Identifier: MIT
// Package tsp - 2-opt local search on an open path.
//
// TwoOptPath performs deterministic best-improvement 2-opt on a path.
//   - Interior move: remove (a,b)=(P[i−1],P[i]) and (c,d)=(P[k],P[k+1]),
//     reconnect as (a,c),(b,d) by reversing P[i..k].
//     Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), 1 ≤ i < k ≤ n−2.
//   - End moves (free endpoints only): reversing a prefix P[0..k] replaces
//     (P[k],P[k+1]) with (P[0],P[k+1]); reversing a suffix P[i..n−1] replaces
//     (P[i−1],P[i]) with (P[i−1],P[n−1]).
//
// Design:
//   - Every scan evaluates all moves and applies the single best one (Δ < −Eps).
//   - Fixed endpoints are never moved: end moves are disabled for them.
//   - Cost is recomputed from scratch at the end and stabilized via round1e9.
//
// Complexity:
//   - One scan: O(n²) candidate checks; each accepted move costs O(n).
//   - Overall: O(iter·n²).
package tsp

import "github.com/katalvlaran/cubecolor/matrix"

// TwoOptPath improves path with best-improvement 2-opt and returns the new
// path and its cost. The input slice is not modified.
//
// Errors: validation sentinels for dist/opts and ErrInvalidPath. When
// opts.FixedEndpoints is set, path must already start at Start and end at End.
func TwoOptPath(dist matrix.Matrix, path []int, opts Options) ([]int, float64, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidatePath(path, n); err != nil {
		return nil, 0, err
	}
	if opts.FixedEndpoints && (path[0] != opts.Start || path[n-1] != opts.End) {
		return nil, 0, ErrInvalidPath
	}

	best, cost := refinePath(flatten(dist, n), n, path, opts)

	return best, cost, nil
}

// refinePath is the allocation-light core of TwoOptPath over a flat buffer.
func refinePath(w []float64, n int, path []int, opts Options) ([]int, float64) {
	cur := make([]int, n)
	copy(cur, path)
	if n < 3 {
		return cur, pathCostFlat(w, n, cur)
	}

	at := func(u, v int) float64 { return w[u*n+v] }
	free := !opts.FixedEndpoints

	var (
		accepted     int
		i, k         int
		a, b, c, d   int
		wab, delta   float64
		bestDelta    float64
		bestI, bestK int
	)
	for opts.RefineMaxIters == 0 || accepted < opts.RefineMaxIters {
		bestDelta = -opts.Eps
		bestI, bestK = -1, -1

		// Interior exchanges.
		for i = 1; i <= n-3; i++ {
			a, b = cur[i-1], cur[i]
			wab = at(a, b)
			for k = i + 1; k <= n-2; k++ {
				c, d = cur[k], cur[k+1]
				delta = at(a, c) + at(b, d) - wab - at(c, d)
				if delta < bestDelta {
					bestDelta, bestI, bestK = delta, i, k
				}
			}
		}

		if free {
			// Prefix reversals P[0..k].
			for k = 1; k <= n-2; k++ {
				delta = at(cur[0], cur[k+1]) - at(cur[k], cur[k+1])
				if delta < bestDelta {
					bestDelta, bestI, bestK = delta, 0, k
				}
			}
			// Suffix reversals P[i..n-1].
			for i = 1; i <= n-2; i++ {
				delta = at(cur[i-1], cur[n-1]) - at(cur[i-1], cur[i])
				if delta < bestDelta {
					bestDelta, bestI, bestK = delta, i, n-1
				}
			}
		}

		if bestI < 0 {
			break
		}
		reverseInPlace(cur, bestI, bestK)
		accepted++
	}

	return cur, pathCostFlat(w, n, cur)
}

// reverseInPlace reverses s[i..k] inclusive.
func reverseInPlace(s []int, i, k int) {
	for i < k {
		s[i], s[k] = s[k], s[i]
		i++
		k--
	}
}
