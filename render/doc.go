// SPDX-License-Identifier: MIT

// Package render turns resolver checkpoints into an HTML debug dashboard.
//
// A Dashboard implements resolver.Renderer. Every checkpoint becomes one
// go-echarts scatter chart on the Lab a*/b* plane: one series per colour
// bucket drawn in that bucket's calibrated colour, plus the color box itself
// as large markers. The page is assembled only when it is written out, so a
// Dashboard can be attached to a resolution and flushed afterwards.
//
// The dashboard is write-only; nothing it records is read back by the
// resolver.
package render
