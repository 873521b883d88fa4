// SPDX-License-Identifier: MIT

package lab

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// labScale converts go-colorful's unit Lab (L ∈ [0,1]) to the conventional
// CIE range (L ∈ [0,100]).
const labScale = 100.0

// Lab is a CIE L*a*b* coordinate in conventional units.
type Lab struct {
	L float64 `json:"L"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// FromRGB converts 8-bit sRGB to Lab (D65 reference white).
// Pure and deterministic.
func FromRGB(r, g, b uint8) Lab {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	l, a, bb := c.Lab()

	return Lab{L: l * labScale, A: a * labScale, B: bb * labScale}
}

// FromHex parses "#rrggbb" and converts it to Lab.
func FromHex(hex string) (Lab, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Lab{}, fmt.Errorf("lab: parse %q: %w", hex, err)
	}
	l, a, b := c.Lab()

	return Lab{L: l * labScale, A: a * labScale, B: b * labScale}, nil
}

// MustHex is FromHex for package-level tables; it panics on malformed input.
func MustHex(hex string) Lab {
	v, err := FromHex(hex)
	if err != nil {
		panic(err)
	}

	return v
}

// RGBHex renders an 8-bit triple as "#rrggbb".
func RGBHex(r, g, b uint8) string {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}.Hex()
}

// Hex renders the colour as "#rrggbb", clamping out-of-gamut values.
func (c Lab) Hex() string {
	return c.color().Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Lab) String() string {
	return fmt.Sprintf("Lab(%.2f, %.2f, %.2f)", c.L, c.A, c.B)
}
