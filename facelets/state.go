// SPDX-License-Identifier: MIT

package facelets

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cubecolor/geometry"
)

// State holds the final side letter of every position; index = position-1.
type State []geometry.SideName

// Solved returns the state in which every position shows its own side.
func Solved(p *geometry.Profile) State {
	st := make(State, p.SquareCount())
	for _, s := range p.Sides() {
		for pos := s.MinPos; pos <= s.MaxPos; pos++ {
			st[pos-1] = s.Name
		}
	}

	return st
}

// At returns the letter at a 1-based position.
func (st State) At(pos int) geometry.SideName { return st[pos-1] }

// Clone returns a deep copy.
func (st State) Clone() State { return append(State(nil), st...) }

// Kociemba renders st in URFDLB side order.
func (st State) Kociemba(p *geometry.Profile) string {
	var sb strings.Builder
	sb.Grow(len(st))
	for _, pos := range p.KociembaPositions() {
		sb.WriteByte(byte(st[pos-1]))
	}

	return sb.String()
}

// Scan renders st in ULFRBD (position) order.
func (st State) Scan() string {
	var sb strings.Builder
	sb.Grow(len(st))
	for _, s := range st {
		sb.WriteByte(byte(s))
	}

	return sb.String()
}

// FromKociemba parses a URFDLB string into a scan-order State.
func FromKociemba(s string) (State, *geometry.Profile, error) {
	n, err := geometry.WidthForSquares(len(s))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadLength, err)
	}
	p, err := geometry.ForWidth(n)
	if err != nil {
		return nil, nil, err
	}

	st := make(State, len(s))
	for i, pos := range p.KociembaPositions() {
		name := geometry.SideName(s[i])
		if !name.Valid() {
			return nil, nil, fmt.Errorf("%w: %q at %d", ErrBadLetter, s[i], i)
		}
		st[pos-1] = name
	}

	return st, p, nil
}

// ScanToKociemba reorders a ULFRBD string into URFDLB order.
func ScanToKociemba(s string) (string, error) {
	n, err := geometry.WidthForSquares(len(s))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadLength, err)
	}
	p, _ := geometry.ForWidth(n)
	st := make(State, len(s))
	for i := 0; i < len(s); i++ {
		st[i] = geometry.SideName(s[i])
	}

	return st.Kociemba(p), nil
}

// KociembaToScan reorders a URFDLB string into ULFRBD order.
func KociembaToScan(s string) (string, error) {
	st, _, err := FromKociemba(s)
	if err != nil {
		return "", err
	}

	return st.Scan(), nil
}
