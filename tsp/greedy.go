// SPDX-License-Identifier: MIT
// Package tsp - greedy edge-joining construction of a Hamiltonian path.
//
// Algorithm:
//  1. Every vertex starts as its own 1-vertex segment with spare valency 2
//     (1 for a fixed endpoint).
//  2. All unordered pairs are sorted ascending by (distance, u, v).
//  3. The cheapest pair whose vertices both have spare valency and lie in
//     different segments is joined; segments are merged via union-find.
//     With fixed endpoints, a join that would connect the two endpoint
//     segments before every other vertex is attached is skipped.
//  4. Joining stops after n−1 edges; the path is read by walking from a
//     valency-1 vertex.
//
// Design:
//   - Deterministic: ties broken by (u, v) so equal matrices give equal paths.
//   - A skipped pair may become legal later (endpoint rule), so the candidate
//     list is rescanned until n−1 joins are made or a full scan makes no progress.
//
// Complexity: O(n² log n) sort, O(k·n²·α(n)) joins where k is the number of rescans
// (1 without fixed endpoints), O(n²) memory.
package tsp

import "sort"

// candidate is an unordered vertex pair with its distance.
type candidate struct {
	u, v int
	w    float64
}

// segments is a union-find over path segments; size tracks member counts.
type segments struct {
	parent []int
	size   []int
}

func newSegments(n int) *segments {
	s := &segments{parent: make([]int, n), size: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}

	return s
}

// find returns the segment root with path halving.
func (s *segments) find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}

	return x
}

// union merges two distinct roots, keeping the larger as the new root.
func (s *segments) union(a, b int) {
	if s.size[a] < s.size[b] {
		a, b = b, a
	}
	s.parent[b] = a
	s.size[a] += s.size[b]
}

// greedyPath builds the greedy path over the flat n×n buffer w.
// Assumes n ≥ 3 and validated options.
func greedyPath(w []float64, n int, opts Options) ([]int, error) {
	// Stage 1: valency budget.
	spare := make([]int, n)
	var i, j int
	for i = range spare {
		spare[i] = 2
	}
	if opts.FixedEndpoints {
		spare[opts.Start] = 1
		spare[opts.End] = 1
	}

	// Stage 2: candidate pairs sorted by distance, then by indices.
	cands := make([]candidate, 0, n*(n-1)/2)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			cands = append(cands, candidate{u: i, v: j, w: w[i*n+j]})
		}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].w != cands[b].w {
			return cands[a].w < cands[b].w
		}
		if cands[a].u != cands[b].u {
			return cands[a].u < cands[b].u
		}
		return cands[a].v < cands[b].v
	})

	// Stage 3: join cheapest legal pairs.
	var (
		segs   = newSegments(n)
		adj    = make([][]int, n)
		joined int
		ru, rv int
	)
	for joined < n-1 {
		progressed := false
		for _, c := range cands {
			if joined == n-1 {
				break
			}
			if spare[c.u] == 0 || spare[c.v] == 0 {
				continue
			}
			ru, rv = segs.find(c.u), segs.find(c.v)
			if ru == rv {
				continue
			}
			if opts.FixedEndpoints && closesEndpoints(segs, ru, rv, opts, n) {
				continue
			}

			adj[c.u] = append(adj[c.u], c.v)
			adj[c.v] = append(adj[c.v], c.u)
			spare[c.u]--
			spare[c.v]--
			segs.union(ru, rv)
			joined++
			progressed = true
		}
		if !progressed {
			return nil, ErrIncompletePath
		}
	}

	// Stage 4: walk from a valency-1 vertex.
	start := -1
	if opts.FixedEndpoints {
		start = opts.Start
	} else {
		for i = 0; i < n; i++ {
			if len(adj[i]) < 2 {
				start = i
				break
			}
		}
	}
	if start < 0 {
		return nil, ErrIncompletePath
	}

	return walk(adj, start, n)
}

// closesEndpoints reports whether merging roots ru and rv would join the two
// fixed-endpoint segments while some vertex is still unattached.
func closesEndpoints(segs *segments, ru, rv int, opts Options, n int) bool {
	rs, re := segs.find(opts.Start), segs.find(opts.End)
	if (ru == rs && rv == re) || (ru == re && rv == rs) {
		return segs.size[ru]+segs.size[rv] < n
	}

	return false
}

// walk follows the degree-≤2 adjacency lists from start.
func walk(adj [][]int, start, n int) ([]int, error) {
	path := make([]int, 0, n)
	prev, cur := -1, start
	for len(path) < n {
		path = append(path, cur)
		next := -1
		for _, nb := range adj[cur] {
			if nb != prev {
				next = nb
				break
			}
		}
		if next < 0 {
			break
		}
		prev, cur = cur, next
	}
	if len(path) != n {
		return nil, ErrIncompletePath
	}

	return path, nil
}
