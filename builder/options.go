// SPDX-License-Identifier: MIT
// Package: cubecolor/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// BuilderOption customizes scan generation by mutating a builderConfig
// instance before the scan is produced.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for noise and random scrambles.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoise sets the per-channel Gaussian noise sigma (>=0) added to every
// sticker. Panics if sigma < 0. Noise draws are seeded by c.rng.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithScheme sets which palette colour each side shows when solved.
// Panics on a nil or incomplete scheme.
func WithScheme(s Scheme) BuilderOption {
	if len(s) != 6 {
		panic("builder: WithScheme needs six sides")
	}
	cp := make(Scheme, 6)
	for side, name := range s {
		cp[side] = name
	}
	return func(c *builderConfig) {
		c.scheme = cp
	}
}

// WithPaletteHex overrides the RGB of one palette colour with a "#rrggbb"
// value. Panics on an unparsable hex string.
func WithPaletteHex(name, hex string) BuilderOption {
	col, err := colorful.Hex(hex)
	if err != nil {
		panic("builder: WithPaletteHex(" + hex + "): " + err.Error())
	}
	r, g, b := col.RGB255()
	return func(c *builderConfig) {
		c.palette[name] = [3]uint8{r, g, b}
	}
}

// WithTint blends every sticker towards a light colour by t ∈ [0,1] in Lab,
// imitating coloured ambient light. Panics on a bad hex or t outside [0,1].
func WithTint(hex string, t float64) BuilderOption {
	col, err := colorful.Hex(hex)
	if err != nil {
		panic("builder: WithTint(" + hex + "): " + err.Error())
	}
	if t < 0 || t > 1 {
		panic("builder: WithTint(t outside [0,1])")
	}
	return func(c *builderConfig) {
		c.tint = &col
		c.tintAmount = t
	}
}

// WithMoves sets an explicit scramble in move notation, e.g. "R U' 2F2".
// Parsing happens in Scrambled so bad tokens surface as ErrBadMove.
func WithMoves(seq string) BuilderOption {
	return func(c *builderConfig) {
		c.moves = seq
	}
}

// WithScramble requests n random turns drawn from c.rng (n >= 0).
// Panics if n < 0.
func WithScramble(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithScramble(n<0)")
	}
	return func(c *builderConfig) {
		c.randomTurns = n
	}
}
