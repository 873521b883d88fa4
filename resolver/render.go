// SPDX-License-Identifier: MIT

package resolver

import (
	"github.com/katalvlaran/cubecolor/geometry"
	"github.com/katalvlaran/cubecolor/lab"
)

// Checkpoint stages, in pipeline order.
const (
	StageScan     = "scan"
	StageColorBox = "color-box"
	StageCorners  = "corners"
	StageCenters  = "centers"
	StageEdges    = "edges"
	StageFinal    = "final"
)

// Renderer receives a snapshot at every checkpoint. Render errors are logged
// and never abort a resolution.
type Renderer interface {
	Render(cp Checkpoint) error
}

// Checkpoint is a read-only snapshot of a resolution in progress.
type Checkpoint struct {
	Session  string
	Stage    string
	Width    int
	Squares  []SquareView
	ColorBox []BoxEntry
}

// SquareView is the rendered view of one square.
type SquareView struct {
	Position  int
	RGB       [3]uint8
	Lab       lab.Lab
	ColorName ColorName
	SideName  geometry.SideName
}

// BoxEntry is one calibrated reference colour.
type BoxEntry struct {
	Name ColorName
	Lab  lab.Lab
}

func (c *Cube) checkpoint(stage string) {
	if c.cfg.renderer == nil {
		return
	}

	cp := Checkpoint{
		Session: c.id,
		Stage:   stage,
		Width:   c.profile.Width,
		Squares: make([]SquareView, len(c.squares)),
	}
	for i, sq := range c.squares {
		cp.Squares[i] = SquareView{
			Position:  sq.position,
			RGB:       sq.rgb,
			Lab:       sq.lab,
			ColorName: sq.colorName,
			SideName:  sq.sideName,
		}
	}
	for _, name := range ColorNames {
		if l, ok := c.colorBox[name]; ok {
			cp.ColorBox = append(cp.ColorBox, BoxEntry{Name: name, Lab: l})
		}
	}
	if err := c.cfg.renderer.Render(cp); err != nil {
		c.logf("render %s: %v", stage, err)
	}
}
