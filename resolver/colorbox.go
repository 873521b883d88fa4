// SPDX-License-Identifier: MIT

package resolver

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cubecolor/lab"
	"github.com/katalvlaran/cubecolor/matrix"
	"github.com/katalvlaran/cubecolor/tsp"
)

// calibrate fills colorBox and sideOf.
func (c *Cube) calibrate() error {
	if c.profile.IsOdd() {
		c.calibrateOdd()
	} else if err := c.calibrateEven(); err != nil {
		return err
	}

	for _, name := range ColorNames {
		c.logf("color box %s = %s %s", name, c.colorBox[name], c.colorBox[name].Hex())
	}

	return nil
}

// calibrateOdd names the six fixed centres. Their names are final.
func (c *Cube) calibrateOdd() {
	centers := c.squaresAt(c.profile.DeadCenters())
	cost := make([][]float64, 6)
	for i, sq := range centers {
		cost[i] = make([]float64, 6)
		for k := range ColorNames {
			cost[i][k] = c.dist(sq.lab, bootstrap[k])
		}
	}
	perm := bestAssignment(cost)

	sides := c.profile.Sides()
	for i, sq := range centers {
		name := ColorNames[perm[i]]
		sq.colorName = name
		c.colorBox[name] = medianLab([]*Square{sq})
		c.sideOf[name] = sides[i].Name
	}
}

// calibrateEven groups the 24 corner stickers into six runs of four. Six
// bootstrap anchors join the TSP; two anchors are never adjacent.
func (c *Cube) calibrateEven() error {
	var corners []*Square
	for _, s := range c.profile.Sides() {
		corners = append(corners, c.squaresAt(s.CornerPositions)...)
	}
	m := len(corners)

	nodes := make([]lab.Lab, 0, m+6)
	for _, sq := range corners {
		nodes = append(nodes, sq.lab)
	}
	nodes = append(nodes, bootstrap[:]...)

	dist, err := matrix.BuildSymmetric(len(nodes), func(i, j int) float64 {
		if i >= m && j >= m {
			return tsp.Forbidden
		}
		return c.dist(nodes[i], nodes[j])
	})
	if err != nil {
		return fmt.Errorf("resolver: calibration matrix: %w", err)
	}
	res, err := tsp.SolvePath(dist, c.refineOptions())
	if err != nil {
		return fmt.Errorf("resolver: calibration path: %w", err)
	}

	ordered := make([]*Square, 0, m)
	for _, v := range res.Path {
		if v < m {
			ordered = append(ordered, corners[v])
		}
	}
	buckets := chunk(ordered, 6)

	cost := make([][]float64, 6)
	for b, bucket := range buckets {
		cost[b] = make([]float64, 6)
		for k := range ColorNames {
			for _, sq := range bucket {
				cost[b][k] += c.dist(sq.lab, bootstrap[k])
			}
		}
	}
	perm := bestAssignment(cost)
	for b, bucket := range buckets {
		c.colorBox[ColorNames[perm[b]]] = medianLab(bucket)
	}
	for name, side := range evenSides {
		c.sideOf[name] = side
	}

	return nil
}

func (c *Cube) refineOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.RefineMaxIters = c.cfg.refineIters

	return opts
}

// chunk splits s into k contiguous runs of equal length.
func chunk(s []*Square, k int) [][]*Square {
	size := len(s) / k
	out := make([][]*Square, k)
	for i := range out {
		out[i] = s[i*size : (i+1)*size]
	}

	return out
}

// medianLab is the Lab of the per-channel lower median RGB of squares.
func medianLab(squares []*Square) lab.Lab {
	var rgb [3]uint8
	vals := make([]float64, len(squares))
	for ch := 0; ch < 3; ch++ {
		for i, sq := range squares {
			vals[i] = float64(sq.rgb[ch])
		}
		sort.Float64s(vals)
		rgb[ch] = uint8(math.Round(stat.Quantile(0.5, stat.Empirical, vals, nil)))
	}

	return lab.FromRGB(rgb[0], rgb[1], rgb[2])
}
