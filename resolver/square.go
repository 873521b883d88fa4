// SPDX-License-Identifier: MIT

package resolver

import (
	"github.com/katalvlaran/cubecolor/geometry"
	"github.com/katalvlaran/cubecolor/lab"
)

// Scan maps 1-based positions (ULFRBD side order, row-major) to RGB samples.
type Scan map[int][3]uint8

// Square is one sticker. Position, RGB and Lab are fixed at construction.
type Square struct {
	position    int
	rgb         [3]uint8
	lab         lab.Lab
	colorName   ColorName
	sideName    geometry.SideName
	viaColorBox bool
}

func newSquare(pos int, rgb [3]uint8) *Square {
	return &Square{position: pos, rgb: rgb, lab: lab.FromRGB(rgb[0], rgb[1], rgb[2])}
}

// syntheticSquare is a reference square painted from the color box.
func syntheticSquare(name ColorName, l lab.Lab) *Square {
	return &Square{lab: l, colorName: name, viaColorBox: true}
}

// Position is 0 for synthetic squares.
func (s *Square) Position() int { return s.position }

func (s *Square) RGB() [3]uint8 { return s.rgb }

func (s *Square) Lab() lab.Lab { return s.lab }

func (s *Square) ColorName() ColorName { return s.colorName }

// SideName is 0 until the colour→side mapping has been applied.
func (s *Square) SideName() geometry.SideName { return s.sideName }

func (s *Square) ViaColorBox() bool { return s.viaColorBox }
