// SPDX-License-Identifier: MIT

package resolver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubecolor/matrix"
	"github.com/katalvlaran/cubecolor/tsp"
)

// swapEps is the strict improvement threshold for swap passes.
const swapEps = 1e-9

// piece is a corner triple or edge pair in profile sticker order.
type piece []*Square

// resolveCorners pairs the 8 corner triples with the solved-cube targets.
func (c *Cube) resolveCorners() error {
	triples := c.profile.CornerTriples()
	phys := make([]piece, len(triples))
	for i, t := range triples {
		phys[i] = c.squaresAt(t[:])
	}
	targets, err := c.solvedTargets(phys)
	if err != nil {
		return err
	}

	return c.pairPieces("corners", phys, targets)
}

// resolveEdges runs one pairing per edge orbit.
func (c *Cube) resolveEdges() error {
	for o := 0; o < c.profile.Orbits; o++ {
		pairs := c.profile.EdgePairs(o)
		phys := make([]piece, len(pairs))
		for i, e := range pairs {
			phys[i] = c.squaresAt(e[:])
		}
		targets, err := c.solvedTargets(phys)
		if err != nil {
			return err
		}
		if err = c.pairPieces(fmt.Sprintf("edges orbit %d", o), phys, targets); err != nil {
			return err
		}
	}

	return nil
}

// solvedTargets paints the same slots of a virtual solved cube from the
// color box: every sticker shows the colour mapped to its own side.
func (c *Cube) solvedTargets(phys []piece) ([]piece, error) {
	colorOf := make(map[byte]ColorName, 6)
	for name, side := range c.sideOf {
		colorOf[byte(side)] = name
	}

	out := make([]piece, len(phys))
	for i, p := range phys {
		t := make(piece, len(p))
		for k, sq := range p {
			s, err := c.profile.SideOf(sq.position)
			if err != nil {
				return nil, err
			}
			name, ok := colorOf[byte(s.Name)]
			if !ok {
				return nil, fmt.Errorf("%w: no colour mapped to side %s", ErrInvalidState, s.Name)
			}
			t[k] = syntheticSquare(name, c.colorBox[name])
		}
		out[i] = t
	}

	return out, nil
}

// alignment returns the cheapest cyclic rotation r of b against a and its
// cost Σ dist(a[i], b[(i+r) mod k]). Ties keep the smallest r.
func (c *Cube) alignment(a, b piece) (float64, int) {
	var (
		k     = len(a)
		best  = math.Inf(1)
		bestR int
	)
	for r := 0; r < k; r++ {
		sum := 0.0
		for i := 0; i < k; i++ {
			sum += c.dist(a[i].lab, b[(i+r)%k].lab)
		}
		if sum < best {
			best, bestR = sum, r
		}
	}

	return best, bestR
}

// pairPieces assigns every physical piece the names of one target piece.
func (c *Cube) pairPieces(label string, phys, targets []piece) error {
	m := len(phys)
	if m == 0 {
		return nil
	}

	cost := make([][]float64, m)
	rot := make([][]int, m)
	for i := range phys {
		cost[i] = make([]float64, m)
		rot[i] = make([]int, m)
		for t := range targets {
			cost[i][t], rot[i][t] = c.alignment(phys[i], targets[t])
		}
	}

	dist, err := matrix.BuildSymmetric(2*m, func(i, j int) float64 {
		switch {
		case i >= m && j >= m:
			return tsp.Forbidden
		case i < m && j < m:
			d, _ := c.alignment(phys[i], phys[j])
			return d
		case i < m:
			return cost[i][j-m]
		default:
			return cost[j][i-m]
		}
	})
	if err != nil {
		return fmt.Errorf("resolver: %s matrix: %w", label, err)
	}
	res, err := tsp.SolvePath(dist, tsp.Options{Eps: tsp.DefaultEps})
	if err != nil {
		return fmt.Errorf("resolver: %s path: %w", label, err)
	}

	assign := walkPairs(res.Path, m)
	misaligned := fillGreedy(assign, cost)
	swaps := improveBySwaps(assign, cost)

	for i, p := range phys {
		t := assign[i]
		r := rot[i][t]
		for k, sq := range p {
			sq.colorName = targets[t][(k+r)%len(p)].colorName
		}
	}

	total := 0.0
	for i, t := range assign {
		total += cost[i][t]
	}
	c.logf("%s: %d pieces, %d re-paired, %d swaps, total %.3f", label, m, misaligned, swaps, total)
	if c.cfg.debug {
		for i, p := range phys {
			c.logf("%s: %v -> %v (%.3f)", label, positions(p), names(p), cost[i][assign[i]])
		}
	}

	return nil
}

// walkPairs reads the path two nodes at a time. Nodes < m are physical, the
// rest are targets; only mixed pairs are accepted. assign[i] = -1 marks a
// physical piece left unpaired.
func walkPairs(path []int, m int) []int {
	assign := make([]int, m)
	for i := range assign {
		assign[i] = -1
	}
	for i := 0; i+1 < len(path); i += 2 {
		a, b := path[i], path[i+1]
		if a >= m {
			a, b = b, a
		}
		if a < m && b >= m {
			assign[a] = b - m
		}
	}

	return assign
}

// fillGreedy gives each unpaired physical piece, in index order, the cheapest
// unused target. It returns how many pieces it had to place.
func fillGreedy(assign []int, cost [][]float64) int {
	used := make([]bool, len(assign))
	for _, t := range assign {
		if t >= 0 {
			used[t] = true
		}
	}

	placed := 0
	for i, t := range assign {
		if t >= 0 {
			continue
		}
		best := -1
		for u := range used {
			if !used[u] && (best < 0 || cost[i][u] < cost[i][best]) {
				best = u
			}
		}
		assign[i] = best
		used[best] = true
		placed++
	}

	return placed
}

// improveBySwaps exchanges the targets of two pieces while that strictly
// lowers the total cost. It returns the number of exchanges.
func improveBySwaps(assign []int, cost [][]float64) int {
	swaps := 0
	for improved := true; improved; {
		improved = false
		for i := 0; i < len(assign); i++ {
			for j := i + 1; j < len(assign); j++ {
				ti, tj := assign[i], assign[j]
				cur := cost[i][ti] + cost[j][tj]
				alt := cost[i][tj] + cost[j][ti]
				if alt < cur-swapEps {
					assign[i], assign[j] = tj, ti
					swaps++
					improved = true
				}
			}
		}
	}

	return swaps
}

func positions(p piece) []int {
	out := make([]int, len(p))
	for i, sq := range p {
		out[i] = sq.position
	}

	return out
}

func names(p piece) []ColorName {
	out := make([]ColorName, len(p))
	for i, sq := range p {
		out[i] = sq.colorName
	}

	return out
}
