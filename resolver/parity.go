// SPDX-License-Identifier: MIT

package resolver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubecolor/facelets"
)

// parities returns corner and edge permutation parity of the current sides.
func (c *Cube) parities() (corner, edge int, err error) {
	st := c.state()
	if corner, err = facelets.CornerParity(c.profile, st); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if edge, err = facelets.EdgeParity(c.profile, st, 0); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	return corner, edge, nil
}

// checkParity enforces corner parity == edge parity on a 3×3×3, applying at
// most one red/orange exchange between two edges.
func (c *Cube) checkParity() error {
	cp, ep, err := c.parities()
	if err != nil {
		return err
	}
	if cp == ep {
		return nil
	}
	c.logf("parity mismatch: corners %d, edges %d", cp, ep)
	if !c.cfg.parityCorrection {
		return fmt.Errorf("%w: corners %d, edges %d (correction disabled)", ErrParityUnresolved, cp, ep)
	}

	rd, or, ok := c.ambiguousRedOrange()
	if !ok {
		return fmt.Errorf("%w: no red/orange edge exchange available", ErrParityUnresolved)
	}
	rd.colorName, or.colorName = Orange, Red
	c.parityFixes++
	c.logf("parity fix: swapped red %d and orange %d", rd.position, or.position)
	if err = c.deriveSides(); err != nil {
		return err
	}

	if cp, ep, err = c.parities(); err != nil {
		return err
	}
	if cp != ep {
		return fmt.Errorf("%w: corners %d, edges %d after correction", ErrParityUnresolved, cp, ep)
	}

	return nil
}

// ambiguousRedOrange finds two edges (X,Rd) and (X,Or) sharing their other
// colour whose red and orange stickers are cheapest to exchange, measured
// against the color box. Exchanging them transposes two edge pieces.
func (c *Cube) ambiguousRedOrange() (rd, or *Square, ok bool) {
	type half struct {
		other ColorName
		sq    *Square
	}

	var reds, oranges []half
	for _, e := range c.profile.EdgePairs(0) {
		a, b := c.square(e[0]), c.square(e[1])
		for _, pr := range [][2]*Square{{a, b}, {b, a}} {
			switch pr[0].colorName {
			case Red:
				reds = append(reds, half{other: pr[1].colorName, sq: pr[0]})
			case Orange:
				oranges = append(oranges, half{other: pr[1].colorName, sq: pr[0]})
			}
		}
	}

	var (
		boxRd = c.colorBox[Red]
		boxOr = c.colorBox[Orange]
		best  = math.Inf(1)
	)
	for _, r := range reds {
		for _, o := range oranges {
			if r.other != o.other {
				continue
			}
			delta := c.dist(r.sq.lab, boxOr) + c.dist(o.sq.lab, boxRd) -
				c.dist(r.sq.lab, boxRd) - c.dist(o.sq.lab, boxOr)
			if delta < best {
				best, rd, or, ok = delta, r.sq, o.sq, true
			}
		}
	}

	return rd, or, ok
}
