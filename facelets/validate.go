// SPDX-License-Identifier: MIT

package facelets

import (
	"fmt"

	"github.com/katalvlaran/cubecolor/geometry"
)

// Validate checks that st is a reachable state of p's cube.
// It returns the first problem found, wrapped with its location.
func Validate(p *geometry.Profile, st State) error {
	if len(st) != p.SquareCount() {
		return fmt.Errorf("%w: %d for width %d", ErrBadLength, len(st), p.Width)
	}
	if err := checkCounts(p, st); err != nil {
		return err
	}
	if err := checkCenters(p, st); err != nil {
		return err
	}
	if err := checkEdges(p, st); err != nil {
		return err
	}
	if err := checkCorners(p, st); err != nil {
		return err
	}
	if p.Width != 3 {
		return nil
	}

	if err := checkEdgeSet(p, st); err != nil {
		return err
	}
	cp, err := CornerParity(p, st)
	if err != nil {
		return err
	}
	ep, err := EdgeParity(p, st, 0)
	if err != nil {
		return err
	}
	if cp != ep {
		return fmt.Errorf("%w: corners %d, edges %d", ErrParity, cp, ep)
	}

	return nil
}

// ValidateKociemba parses and validates a URFDLB string.
func ValidateKociemba(s string) error {
	st, p, err := FromKociemba(s)
	if err != nil {
		return err
	}

	return Validate(p, st)
}

func checkCounts(p *geometry.Profile, st State) error {
	counts := make(map[geometry.SideName]int, 6)
	for i, s := range st {
		if !s.Valid() {
			return fmt.Errorf("%w: %q at position %d", ErrBadLetter, byte(s), i+1)
		}
		counts[s]++
	}
	want := p.Width * p.Width
	for _, name := range geometry.ScanOrder {
		if counts[name] != want {
			return fmt.Errorf("%w: %s appears %d times, want %d", ErrBadCount, name, counts[name], want)
		}
	}

	return nil
}

func checkCenters(p *geometry.Profile, st State) error {
	for i, pos := range p.DeadCenters() {
		if st[pos-1] != geometry.ScanOrder[i] {
			return fmt.Errorf("%w: position %d shows %s", ErrBadCenter, pos, st[pos-1])
		}
	}

	return nil
}

func checkEdges(p *geometry.Profile, st State) error {
	for o := 0; o < p.Orbits; o++ {
		for _, e := range p.EdgePairs(o) {
			a, b := st[e[0]-1], st[e[1]-1]
			if a == b || a.Opposite() == b {
				return fmt.Errorf("%w: positions %d/%d show %s%s", ErrBadEdge, e[0], e[1], a, b)
			}
		}
	}

	return nil
}

// checkCorners verifies every corner is a distinct real cubie (chirality
// included) and that the twist sum is 0 mod 3.
func checkCorners(p *geometry.Profile, st State) error {
	var (
		solved = Solved(p)
		shape  = make(map[string]string, 8) // code → cyclic letters starting at U/D
		seen   = make(map[string]bool, 8)
		twist  int
	)
	for _, t := range p.CornerTriples() {
		shape[PieceCode(solved, t[0], t[1], t[2])] = string([]byte{
			byte(solved[t[0]-1]), byte(solved[t[1]-1]), byte(solved[t[2]-1]),
		})
	}

	for _, t := range p.CornerTriples() {
		letters := [3]geometry.SideName{st[t[0]-1], st[t[1]-1], st[t[2]-1]}
		code := PieceCode(st, t[0], t[1], t[2])
		want, ok := shape[code]
		if !ok {
			return fmt.Errorf("%w: %v shows %s", ErrBadCorner, t, code)
		}
		if seen[code] {
			return fmt.Errorf("%w: %s appears twice", ErrBadCorner, code)
		}
		seen[code] = true

		k := -1
		for i, l := range letters {
			if l == geometry.U || l == geometry.D {
				k = i
			}
		}
		got := string([]byte{byte(letters[k]), byte(letters[(k+1)%3]), byte(letters[(k+2)%3])})
		if got != want {
			return fmt.Errorf("%w: %v is mirrored (%s)", ErrBadCorner, t, got)
		}
		twist += k
	}
	if twist%3 != 0 {
		return fmt.Errorf("%w: sum %d", ErrTwist, twist)
	}

	return nil
}

func checkEdgeSet(p *geometry.Profile, st State) error {
	var (
		want = make(map[string]bool, 12)
		seen = make(map[string]bool, 12)
		flip int
	)
	for _, code := range EdgeCodes(p, Solved(p), 0) {
		want[code] = true
	}
	for _, e := range p.EdgePairs(0) {
		code := PieceCode(st, e[0], e[1])
		if !want[code] || seen[code] {
			return fmt.Errorf("%w: %v shows %s", ErrBadEdge, e, code)
		}
		seen[code] = true
		if rank(st[e[0]-1]) > rank(st[e[1]-1]) {
			flip++
		}
	}
	if flip%2 != 0 {
		return fmt.Errorf("%w: sum %d", ErrFlip, flip)
	}

	return nil
}

// rank orders letters U/D before F/B before L/R, matching the primary
// sticker of a profile edge pair.
func rank(s geometry.SideName) int {
	switch s {
	case geometry.U, geometry.D:
		return 0
	case geometry.F, geometry.B:
		return 1
	}

	return 2
}
