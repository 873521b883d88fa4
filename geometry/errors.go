// SPDX-License-Identifier: MIT

package geometry

import "errors"

var (
	// ErrUnsupportedWidth is returned for widths outside [MinWidth, MaxWidth].
	ErrUnsupportedWidth = errors.New("geometry: unsupported cube width")

	// ErrMalformedSquareCount is returned when a square count is not six equal
	// perfect squares.
	ErrMalformedSquareCount = errors.New("geometry: square count is not 6·N²")

	// ErrPositionOutOfRange is returned for positions outside 1..6N².
	ErrPositionOutOfRange = errors.New("geometry: position out of range")

	// ErrNoTableEntry is returned when a per-width table has no entry for a
	// position (e.g. asking for the wing partner of a corner).
	ErrNoTableEntry = errors.New("geometry: no table entry for position")
)
