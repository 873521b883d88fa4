// SPDX-License-Identifier: MIT
// Package: cubecolor/builder
//
// palette.go — sticker colours and side→colour schemes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cubecolor/geometry"
)

// Scheme maps each side to the palette colour it shows when solved.
type Scheme map[geometry.SideName]string

// Colour names shared with the resolver.
const (
	White  = "Wh"
	Orange = "Or"
	Green  = "Gr"
	Red    = "Rd"
	Blue   = "Bu"
	Yellow = "Ye"
)

// DefaultPalette approximates stickers photographed under neutral light.
var DefaultPalette = map[string][3]uint8{
	White:  {235, 235, 230},
	Yellow: {235, 220, 40},
	Red:    {175, 25, 35},
	Orange: {245, 110, 25},
	Green:  {20, 150, 75},
	Blue:   {25, 75, 160},
}

// SchemeWhiteUp is the usual western scheme with white on top, green in front.
var SchemeWhiteUp = Scheme{
	geometry.U: White,
	geometry.L: Orange,
	geometry.F: Green,
	geometry.R: Red,
	geometry.B: Blue,
	geometry.D: Yellow,
}

// SchemeYellowUp is SchemeWhiteUp turned upside down about the F axis.
var SchemeYellowUp = Scheme{
	geometry.U: Yellow,
	geometry.L: Red,
	geometry.F: Green,
	geometry.R: Orange,
	geometry.B: Blue,
	geometry.D: White,
}

// validateScheme checks that s names six distinct colours known to palette.
func validateScheme(s Scheme, palette map[string][3]uint8) error {
	seen := make(map[string]bool, 6)
	for _, side := range geometry.ScanOrder {
		name, ok := s[side]
		if !ok {
			return fmt.Errorf("%w: side %s missing", ErrBadScheme, side)
		}
		if _, ok = palette[name]; !ok {
			return fmt.Errorf("%w: colour %q not in palette", ErrBadScheme, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: colour %q used twice", ErrBadScheme, name)
		}
		seen[name] = true
	}

	return nil
}
