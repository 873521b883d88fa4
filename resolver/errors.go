// SPDX-License-Identifier: MIT

package resolver

import (
	"errors"

	"github.com/katalvlaran/cubecolor/geometry"
)

var (
	// ErrMalformedScan is returned when the square count is not 6·N².
	ErrMalformedScan = errors.New("resolver: malformed scan")

	// ErrUnsupportedWidth is geometry's sentinel, re-exported for callers.
	ErrUnsupportedWidth = geometry.ErrUnsupportedWidth

	// ErrMissingPosition is returned when a position in 1..6N² has no sample.
	ErrMissingPosition = errors.New("resolver: scan is missing a position")

	// ErrParityUnresolved is returned when corner and edge parity still
	// disagree after the corrective swap.
	ErrParityUnresolved = errors.New("resolver: parity mismatch is not correctable")

	// ErrInvalidState is returned when a resolved cube cannot be read as a
	// permutation of its pieces (e.g. a square left without a colour).
	ErrInvalidState = errors.New("resolver: invalid cube state")

	// ErrNotResolved is returned by outputs requested before Resolve succeeded.
	ErrNotResolved = errors.New("resolver: cube not resolved")
)
