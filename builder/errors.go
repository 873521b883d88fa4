// SPDX-License-Identifier: MIT
// Package: cubecolor/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadMove indicates a move token that cannot be parsed or applied
// (unknown face, layer depth out of range, middle slice of an odd cube).
var ErrBadMove = errors.New("builder: bad move")

// ErrNeedRandSource indicates that noise or a random scramble was requested
// without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadScheme indicates a colour scheme that does not name six distinct
// palette colours, one per side.
var ErrBadScheme = errors.New("builder: invalid colour scheme")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
