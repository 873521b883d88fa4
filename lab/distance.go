// SPDX-License-Identifier: MIT
// Package lab - distance metrics.
//
// Both metrics delegate to go-colorful and rescale its unit-Lab results to
// conventional ΔE units. They are symmetric, non-negative and return 0 for
// identical inputs.

package lab

import colorful "github.com/lucasb-eyer/go-colorful"

// Metric is a colour distance function.
type Metric func(a, b Lab) float64

// color converts back to go-colorful's unit-scaled Lab. No clamping is done,
// so out-of-gamut reference colours keep their exact coordinates.
func (c Lab) color() colorful.Color {
	return colorful.Lab(c.L/labScale, c.A/labScale, c.B/labScale)
}

// Euclidean returns the straight-line distance in Lab space (ΔE*76).
func Euclidean(a, b Lab) float64 {
	return a.color().DistanceLab(b.color()) * labScale
}

// CIE2000 returns the CIEDE2000 colour difference (kL = kC = kH = 1).
// Zero-chroma inputs are handled by go-colorful, which drops the hue term
// when either chroma is zero.
func CIE2000(a, b Lab) float64 {
	return a.color().DistanceCIEDE2000(b.color()) * labScale
}
