// SPDX-License-Identifier: MIT

package resolver

import (
	"strings"

	"github.com/katalvlaran/cubecolor/facelets"
	"github.com/katalvlaran/cubecolor/geometry"
)

// Dump is the structured result of a resolution.
type Dump struct {
	Kociemba string                         `json:"kociemba"`
	Sides    map[geometry.SideName]SideDump `json:"sides"`
	Squares  map[int]SquareDump             `json:"squares"`
}

// SideDump describes the colour a side was mapped to.
type SideDump struct {
	ColorName ColorName `json:"colorName"`
	ColorHTML string    `json:"colorHTML"`
}

// SquareDump holds the final side of one position.
type SquareDump struct {
	FinalSide geometry.SideName `json:"finalSide"`
}

// state reads the current side letters; unmapped squares read as 0.
func (c *Cube) state() facelets.State {
	st := make(facelets.State, len(c.squares))
	for i, sq := range c.squares {
		st[i] = sq.sideName
	}

	return st
}

func (c *Cube) kociemba() string { return c.state().Kociemba(c.profile) }

// Kociemba returns the resolved facelets in URFDLB side order.
func (c *Cube) Kociemba() (string, error) {
	if !c.resolved {
		return "", ErrNotResolved
	}

	return c.kociemba(), nil
}

// State returns the resolved side of every position in scan order.
func (c *Cube) State() (facelets.State, error) {
	if !c.resolved {
		return nil, ErrNotResolved
	}

	return c.state(), nil
}

// Dump returns the structured result.
func (c *Cube) Dump() (Dump, error) {
	if !c.resolved {
		return Dump{}, ErrNotResolved
	}

	d := Dump{
		Kociemba: c.kociemba(),
		Sides:    make(map[geometry.SideName]SideDump, 6),
		Squares:  make(map[int]SquareDump, len(c.squares)),
	}
	for name, side := range c.sideOf {
		d.Sides[side] = SideDump{ColorName: name, ColorHTML: c.colorBox[name].Hex()}
	}
	for _, sq := range c.squares {
		d.Squares[sq.position] = SquareDump{FinalSide: sq.sideName}
	}

	return d, nil
}

// String renders the unfolded net of side letters ('.' when unmapped).
//
//	      U
//	  L   F   R   B
//	      D
func (c *Cube) String() string {
	var (
		n   = c.profile.Width
		sb  strings.Builder
		pad = strings.Repeat(" ", 2*n)
	)
	cell := func(side geometry.SideName, r, col int) byte {
		s := c.profile.Side(side)
		if l := c.squares[s.MinPos-1+r*n+col].sideName; l != 0 {
			return byte(l)
		}
		return '.'
	}
	row := func(sides []geometry.SideName, r int) {
		for si, side := range sides {
			if si > 0 {
				sb.WriteByte(' ')
			}
			for col := 0; col < n; col++ {
				if col > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteByte(cell(side, r, col))
			}
		}
		sb.WriteByte('\n')
	}

	for r := 0; r < n; r++ {
		sb.WriteString(pad)
		row([]geometry.SideName{geometry.U}, r)
	}
	for r := 0; r < n; r++ {
		row([]geometry.SideName{geometry.L, geometry.F, geometry.R, geometry.B}, r)
	}
	for r := 0; r < n; r++ {
		sb.WriteString(pad)
		row([]geometry.SideName{geometry.D}, r)
	}

	return sb.String()
}
