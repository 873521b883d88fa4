// SPDX-License-Identifier: MIT

package resolver

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/cubecolor/geometry"
	"github.com/katalvlaran/cubecolor/lab"
	"github.com/katalvlaran/cubecolor/monitoring"
)

// Cube is one resolution session: the scanned squares, the calibrated color
// box, the colour→side mapping and a private distance cache.
type Cube struct {
	id      string
	cfg     config
	logf    func(format string, v ...interface{})
	cache   *lab.Cache
	profile *geometry.Profile

	squares  []*Square // index = position-1
	colorBox map[ColorName]lab.Lab
	sideOf   map[ColorName]geometry.SideName

	parityFixes int
	resolved    bool
}

// New validates scan and builds an unresolved cube. Width is inferred from
// the number of samples; unsupported widths fail here before any work.
func New(scan Scan, opts ...Option) (*Cube, error) {
	n, err := geometry.WidthForSquares(len(scan))
	if err != nil {
		if errors.Is(err, geometry.ErrUnsupportedWidth) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedScan, err)
	}
	p, err := geometry.ForWidth(n)
	if err != nil {
		return nil, err
	}

	squares := make([]*Square, p.SquareCount())
	for pos := 1; pos <= len(squares); pos++ {
		rgb, ok := scan[pos]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMissingPosition, pos)
		}
		squares[pos-1] = newSquare(pos, rgb)
	}

	cfg := newConfig(opts...)
	id := uuid.NewString()

	return &Cube{
		id:       id,
		cfg:      cfg,
		logf:     monitoring.Prefixed(id[:8]),
		cache:    lab.NewCache(cfg.metric),
		profile:  p,
		squares:  squares,
		colorBox: make(map[ColorName]lab.Lab, 6),
		sideOf:   make(map[ColorName]geometry.SideName, 6),
	}, nil
}

// Resolve is New followed by Cube.Resolve.
func Resolve(scan Scan, opts ...Option) (*Cube, error) {
	c, err := New(scan, opts...)
	if err != nil {
		return nil, err
	}
	if err = c.Resolve(); err != nil {
		return nil, err
	}

	return c, nil
}

// Resolve runs the full pipeline. It either leaves every square named and
// mapped to a side or returns an error; there is no partial result.
func (c *Cube) Resolve() error {
	if c.resolved {
		return nil
	}
	c.checkpoint(StageScan)

	if err := c.calibrate(); err != nil {
		return err
	}
	c.checkpoint(StageColorBox)

	if err := c.resolveCorners(); err != nil {
		return err
	}
	c.checkpoint(StageCorners)

	if c.profile.Width >= 4 {
		if err := c.resolveCenters(); err != nil {
			return err
		}
		c.checkpoint(StageCenters)
	}

	if c.profile.Width >= 3 {
		if err := c.resolveEdges(); err != nil {
			return err
		}
		c.checkpoint(StageEdges)
	}

	if err := c.deriveSides(); err != nil {
		return err
	}
	if c.profile.Width == 3 {
		if err := c.checkParity(); err != nil {
			return err
		}
	}
	if c.cfg.validityCheck {
		c.validityCheck()
	}

	c.resolved = true
	c.checkpoint(StageFinal)
	hits, misses := c.cache.Stats()
	c.logf("resolved width %d: %s (cache %d hits, %d misses, %d parity fixes)",
		c.profile.Width, c.kociemba(), hits, misses, c.parityFixes)

	return nil
}

// deriveSides applies the colour→side mapping to every square.
func (c *Cube) deriveSides() error {
	for _, sq := range c.squares {
		side, ok := c.sideOf[sq.colorName]
		if !ok {
			return fmt.Errorf("%w: position %d has colour %q", ErrInvalidState, sq.position, sq.colorName)
		}
		sq.sideName = side
	}

	return nil
}

func (c *Cube) dist(a, b lab.Lab) float64 { return c.cache.Distance(a, b) }

func (c *Cube) square(pos int) *Square { return c.squares[pos-1] }

func (c *Cube) squaresAt(positions []int) []*Square {
	out := make([]*Square, len(positions))
	for i, pos := range positions {
		out[i] = c.squares[pos-1]
	}

	return out
}

// ID returns the session id used to prefix log lines.
func (c *Cube) ID() string { return c.id }

// Width returns N.
func (c *Cube) Width() int { return c.profile.Width }

// Profile returns the cube's geometry.
func (c *Cube) Profile() *geometry.Profile { return c.profile }

// Square returns the square at pos, or nil when pos is out of range.
func (c *Cube) Square(pos int) *Square {
	if pos < 1 || pos > len(c.squares) {
		return nil
	}

	return c.squares[pos-1]
}

// ColorBox returns a copy of the calibrated reference colours.
func (c *Cube) ColorBox() map[ColorName]lab.Lab {
	out := make(map[ColorName]lab.Lab, len(c.colorBox))
	for k, v := range c.colorBox {
		out[k] = v
	}

	return out
}

// SideOf returns the side a colour was mapped to.
func (c *Cube) SideOf(name ColorName) (geometry.SideName, bool) {
	s, ok := c.sideOf[name]

	return s, ok
}

// ParityCorrections returns how many corrective swaps were applied (0 or 1).
func (c *Cube) ParityCorrections() int { return c.parityFixes }
