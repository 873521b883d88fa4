// SPDX-License-Identifier: MIT
// Package: cubecolor/builder
//
// moves.go — move notation.
//
// Grammar (whitespace separated tokens):
//
//	token  = [depth] face [suffix]
//	depth  = "1".."N-1"   layer counted from the named face, default 1
//	face   = "U" | "L" | "F" | "R" | "B" | "D"
//	suffix = "'" (counter-clockwise) | "2" (half turn)
//
// Turns are clockwise as seen looking at the named face.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cubecolor/geometry"
)

// Move is one layer turn.
type Move struct {
	Face    geometry.SideName
	Depth   int // 1 = outer layer
	Quarter int // 1 = clockwise, 2 = half, 3 = counter-clockwise
}

// String renders m in the notation accepted by ParseMoves.
func (m Move) String() string {
	var sb strings.Builder
	if m.Depth > 1 {
		sb.WriteString(strconv.Itoa(m.Depth))
	}
	sb.WriteByte(byte(m.Face))
	switch m.Quarter {
	case 2:
		sb.WriteByte('2')
	case 3:
		sb.WriteByte('\'')
	}

	return sb.String()
}

// ParseMoves parses a whitespace separated move sequence.
func ParseMoves(seq string) ([]Move, error) {
	fields := strings.Fields(seq)
	out := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := parseMove(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

func parseMove(tok string) (Move, error) {
	var (
		m = Move{Depth: 1, Quarter: 1}
		i int
	)
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i > 0 {
		d, err := strconv.Atoi(tok[:i])
		if err != nil || d < 1 {
			return Move{}, fmt.Errorf("%w: %q", ErrBadMove, tok)
		}
		m.Depth = d
	}
	if i >= len(tok) {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, tok)
	}
	m.Face = geometry.SideName(tok[i])
	if !m.Face.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, tok)
	}
	switch tok[i+1:] {
	case "":
	case "'":
		m.Quarter = 3
	case "2":
		m.Quarter = 2
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, tok)
	}

	return m, nil
}
