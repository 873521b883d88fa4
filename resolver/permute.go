// SPDX-License-Identifier: MIT

package resolver

import "math"

// bestAssignment returns perm with perm[slot] = name index minimising
// Σ cost[slot][perm[slot]] over all permutations.
//
// Backtracking over slots in order, names tried in ascending index; a branch
// is cut once its partial sum reaches the best total. Ties keep the first
// permutation found in lexicographic order.
func bestAssignment(cost [][]float64) []int {
	var (
		n     = len(cost)
		best  = math.Inf(1)
		perm  = make([]int, n)
		out   = make([]int, n)
		used  = make([]bool, n)
		visit func(slot int, sum float64)
	)
	visit = func(slot int, sum float64) {
		if sum >= best {
			return
		}
		if slot == n {
			best = sum
			copy(out, perm)
			return
		}
		for k := 0; k < n; k++ {
			if used[k] {
				continue
			}
			used[k] = true
			perm[slot] = k
			visit(slot+1, sum+cost[slot][k])
			used[k] = false
		}
	}
	visit(0, 0)

	return out
}
