// SPDX-License-Identifier: MIT
// Package: cubecolor/builder
//
// cube.go — N×N×N sticker simulator.
//
// Design:
//   • State is the home side of the sticker currently shown at each position,
//     so a solved cube reads as facelets.Solved.
//   • A turn rotates every sticker whose cubie lies in the turned layer by a
//     multiple of 90° about the layer axis. Coordinates are doubled and
//     centred (2c-(N-1)) so rotations stay in integers; the rotated
//     (cubie, normal) pair is mapped back to a position via geometry.Lookup.
//
// Complexity: O(N²) per turn (only layer stickers move).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cubecolor/facelets"
	"github.com/katalvlaran/cubecolor/geometry"
)

// Cube is a mutable sticker model. Not safe for concurrent mutation.
type Cube struct {
	p     *geometry.Profile
	state facelets.State
}

// NewCube returns a solved cube of the given width.
func NewCube(width int) (*Cube, error) {
	p, err := geometry.ForWidth(width)
	if err != nil {
		return nil, err
	}

	return &Cube{p: p, state: facelets.Solved(p)}, nil
}

// Profile returns the cube's geometry.
func (c *Cube) Profile() *geometry.Profile { return c.p }

// State returns a copy of the current facelet state.
func (c *Cube) State() facelets.State { return c.state.Clone() }

// Kociemba returns the current state in URFDLB order.
func (c *Cube) Kociemba() string { return c.state.Kociemba(c.p) }

// Apply turns every move in order, stopping at the first invalid one.
func (c *Cube) Apply(moves []Move) error {
	for _, m := range moves {
		if err := c.Turn(m); err != nil {
			return err
		}
	}

	return nil
}

// Turn applies one move.
func (c *Cube) Turn(m Move) error {
	n := c.p.Width
	if m.Depth < 1 || m.Depth > n || m.Quarter < 1 || m.Quarter > 3 {
		return fmt.Errorf("%w: %v on width %d", ErrBadMove, m, n)
	}

	axis, positive, err := faceAxis(m.Face)
	if err != nil {
		return err
	}
	layer := m.Depth - 1
	if positive {
		layer = n - m.Depth
	}
	if n%2 == 1 && layer == (n-1)/2 {
		return fmt.Errorf("%w: %v turns the middle slice", ErrBadMove, m)
	}

	// clockwise seen from the +axis face is -90° about +axis
	step := 1
	if positive {
		step = -1
	}
	k := ((step*m.Quarter)%4 + 4) % 4

	var (
		next = c.state.Clone()
		pos  int
	)
	for pos = 1; pos <= c.p.SquareCount(); pos++ {
		s, _ := c.p.Sticker(pos)
		if s.Cubie[axis] != layer {
			continue
		}
		d := geometry.Vec3{2*s.Cubie[0] - (n - 1), 2*s.Cubie[1] - (n - 1), 2*s.Cubie[2] - (n - 1)}
		nv := s.Normal
		for i := 0; i < k; i++ {
			d = rot90(d, axis)
			nv = rot90(nv, axis)
		}
		cubie := geometry.Vec3{(d[0] + n - 1) / 2, (d[1] + n - 1) / 2, (d[2] + n - 1) / 2}
		to, ok := c.p.Lookup(cubie, nv)
		if !ok {
			return fmt.Errorf("builder: no sticker at %v facing %v", cubie, nv)
		}
		next[to-1] = c.state[pos-1]
	}
	c.state = next

	return nil
}

func faceAxis(face geometry.SideName) (axis int, positive bool, err error) {
	switch face {
	case geometry.R:
		return 0, true, nil
	case geometry.L:
		return 0, false, nil
	case geometry.U:
		return 1, true, nil
	case geometry.D:
		return 1, false, nil
	case geometry.F:
		return 2, true, nil
	case geometry.B:
		return 2, false, nil
	}

	return 0, false, fmt.Errorf("%w: face %q", ErrBadMove, byte(face))
}

// rot90 rotates v by +90° about the given axis (right-hand rule).
func rot90(v geometry.Vec3, axis int) geometry.Vec3 {
	switch axis {
	case 0:
		return geometry.Vec3{v[0], -v[2], v[1]}
	case 1:
		return geometry.Vec3{v[2], v[1], -v[0]}
	}

	return geometry.Vec3{-v[1], v[0], v[2]}
}
