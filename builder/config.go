// SPDX-License-Identifier: MIT
// Package: cubecolor/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil              (pure/deterministic unless seeded)
//   • scheme      = SchemeWhiteUp
//   • palette     = DefaultPalette
//   • noiseSigma  = 0.0
//   • tint        = none
//   • moves       = ""               (no scramble)

package builder

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// builderConfig aggregates all knobs used by the scan constructors.
type builderConfig struct {
	rng     *rand.Rand
	scheme  Scheme
	palette map[string][3]uint8

	noiseSigma float64
	tint       *colorful.Color
	tintAmount float64

	moves       string
	randomTurns int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scheme:  SchemeWhiteUp,
		palette: make(map[string][3]uint8, len(DefaultPalette)),
	}
	for name, rgb := range DefaultPalette {
		cfg.palette[name] = rgb
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
