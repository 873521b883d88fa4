// SPDX-License-Identifier: MIT

package resolver

import (
	"fmt"

	"github.com/katalvlaran/cubecolor/matrix"
	"github.com/katalvlaran/cubecolor/tsp"
)

// resolveCenters names every centre group on widths ≥ 4. The fixed middle
// centre of odd widths was named during calibration.
func (c *Cube) resolveCenters() error {
	for g, group := range c.profile.CenterGroups() {
		if err := c.resolveCenterGroup(g, c.squaresAt(group)); err != nil {
			return err
		}
	}

	return nil
}

func (c *Cube) resolveCenterGroup(g int, squares []*Square) error {
	dist, err := matrix.BuildSymmetric(len(squares), func(i, j int) float64 {
		return c.dist(squares[i].lab, squares[j].lab)
	})
	if err != nil {
		return fmt.Errorf("resolver: centre group %d matrix: %w", g, err)
	}
	res, err := tsp.SolvePath(dist, c.refineOptions())
	if err != nil {
		return fmt.Errorf("resolver: centre group %d path: %w", g, err)
	}

	ordered := make([]*Square, len(res.Path))
	for i, v := range res.Path {
		ordered[i] = squares[v]
	}
	buckets := chunk(ordered, 6)

	cost := make([][]float64, 6)
	for b, bucket := range buckets {
		cost[b] = make([]float64, 6)
		for k, name := range ColorNames {
			for _, sq := range bucket {
				cost[b][k] += c.dist(sq.lab, c.colorBox[name])
			}
		}
	}
	perm := bestAssignment(cost)
	for b, bucket := range buckets {
		for _, sq := range bucket {
			sq.colorName = ColorNames[perm[b]]
		}
	}

	swaps := c.swapCenterNames(squares)
	c.logf("centre group %d: %d squares, %d swaps", g, len(squares), swaps)

	return nil
}

// swapCenterNames exchanges the names of two squares while that strictly
// lowers their combined distance to the color box. Name counts are kept.
func (c *Cube) swapCenterNames(squares []*Square) int {
	d := func(sq *Square, name ColorName) float64 { return c.dist(sq.lab, c.colorBox[name]) }

	swaps := 0
	for improved := true; improved; {
		improved = false
		for i := 0; i < len(squares); i++ {
			for j := i + 1; j < len(squares); j++ {
				a, b := squares[i], squares[j]
				if a.colorName == b.colorName {
					continue
				}
				cur := d(a, a.colorName) + d(b, b.colorName)
				alt := d(a, b.colorName) + d(b, a.colorName)
				if alt < cur-swapEps {
					a.colorName, b.colorName = b.colorName, a.colorName
					swaps++
					improved = true
				}
			}
		}
	}

	return swaps
}
