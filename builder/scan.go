// SPDX-License-Identifier: MIT
// Package: cubecolor/builder
//
// scan.go — RGB scan generation.
//
// Pipeline per sticker: scheme colour → palette RGB → optional Lab blend
// towards the tint → optional Gaussian noise per channel → clamp to [0,255].

package builder

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/cubecolor/geometry"
)

const (
	methodSolved    = "Solved"
	methodScrambled = "Scrambled"
	methodScan      = "Scan"
)

// Solved returns the RGB scan of a solved cube.
func Solved(width int, opts ...BuilderOption) (map[int][3]uint8, error) {
	c, err := NewCube(width)
	if err != nil {
		return nil, builderErrorf(methodSolved, "%w", err)
	}

	return c.scan(newBuilderConfig(opts...))
}

// Scrambled applies WithMoves and then WithScramble random turns to a solved
// cube and returns its scan together with the cube for inspection.
func Scrambled(width int, opts ...BuilderOption) (map[int][3]uint8, *Cube, error) {
	c, err := NewCube(width)
	if err != nil {
		return nil, nil, builderErrorf(methodScrambled, "%w", err)
	}
	cfg := newBuilderConfig(opts...)

	moves, err := ParseMoves(cfg.moves)
	if err != nil {
		return nil, nil, builderErrorf(methodScrambled, "%w", err)
	}
	if cfg.randomTurns > 0 {
		if cfg.rng == nil {
			return nil, nil, builderErrorf(methodScrambled, "%w", ErrNeedRandSource)
		}
		moves = append(moves, RandomMoves(cfg.rng, width, cfg.randomTurns)...)
	}
	if err = c.Apply(moves); err != nil {
		return nil, nil, builderErrorf(methodScrambled, "%w", err)
	}

	scan, err := c.scan(cfg)
	if err != nil {
		return nil, nil, err
	}

	return scan, c, nil
}

// Scan renders the current state as RGB samples.
func (c *Cube) Scan(opts ...BuilderOption) (map[int][3]uint8, error) {
	return c.scan(newBuilderConfig(opts...))
}

// RandomMoves draws n turns that never touch an odd cube's middle slice.
func RandomMoves(rng *rand.Rand, width, n int) []Move {
	faces := []byte("ULFRBD")
	out := make([]Move, n)
	for i := range out {
		out[i] = Move{
			Face:    geometry.SideName(faces[rng.Intn(len(faces))]),
			Depth:   1 + rng.Intn(width/2),
			Quarter: 1 + rng.Intn(3),
		}
	}

	return out
}

func (c *Cube) scan(cfg builderConfig) (map[int][3]uint8, error) {
	if err := validateScheme(cfg.scheme, cfg.palette); err != nil {
		return nil, builderErrorf(methodScan, "%w", err)
	}
	if cfg.noiseSigma > 0 && cfg.rng == nil {
		return nil, builderErrorf(methodScan, "%w", ErrNeedRandSource)
	}

	out := make(map[int][3]uint8, len(c.state))
	for i, home := range c.state {
		rgb := cfg.palette[cfg.scheme[home]]
		if cfg.tint != nil {
			col := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
			rgb[0], rgb[1], rgb[2] = col.BlendLab(*cfg.tint, cfg.tintAmount).Clamped().RGB255()
		}
		if cfg.noiseSigma > 0 {
			for ch := range rgb {
				rgb[ch] = clampByte(float64(rgb[ch]) + cfg.rng.NormFloat64()*cfg.noiseSigma)
			}
		}
		out[i+1] = rgb
	}

	return out, nil
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}
