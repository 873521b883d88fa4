// SPDX-License-Identifier: MIT

package resolver

import (
	"github.com/katalvlaran/cubecolor/geometry"
	"github.com/katalvlaran/cubecolor/lab"
)

// ColorName is one of the six canonical sticker colour codes.
type ColorName string

// Canonical colour codes. None marks a square not yet named.
const (
	None   ColorName = ""
	White  ColorName = "Wh"
	Orange ColorName = "Or"
	Green  ColorName = "Gr"
	Red    ColorName = "Rd"
	Blue   ColorName = "Bu"
	Yellow ColorName = "Ye"
)

// ColorNames lists the codes in the fixed order used for slots, buckets and
// tie-breaking.
var ColorNames = [6]ColorName{White, Orange, Green, Red, Blue, Yellow}

// bootstrap holds textbook reference colours used only to name the buckets
// found during calibration.
var bootstrap = [6]lab.Lab{
	lab.MustHex("#FFFFFF"),
	lab.MustHex("#FF8C00"),
	lab.MustHex("#14694A"),
	lab.MustHex("#C91111"),
	lab.MustHex("#163967"),
	lab.MustHex("#FFFF00"),
}

// evenSides maps colours to sides for widths without fixed centres.
var evenSides = map[ColorName]geometry.SideName{
	White:  geometry.U,
	Orange: geometry.L,
	Green:  geometry.F,
	Red:    geometry.R,
	Blue:   geometry.B,
	Yellow: geometry.D,
}

// Bootstrap returns the reference colour used before calibration.
func Bootstrap(name ColorName) (lab.Lab, bool) {
	for i, n := range ColorNames {
		if n == name {
			return bootstrap[i], true
		}
	}

	return lab.Lab{}, false
}
