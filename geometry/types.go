// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// SideName is one of the six face letters.
type SideName byte

// Face letters.
const (
	U SideName = 'U'
	L SideName = 'L'
	F SideName = 'F'
	R SideName = 'R'
	B SideName = 'B'
	D SideName = 'D'
)

// String implements fmt.Stringer.
func (s SideName) String() string { return string(rune(s)) }

// MarshalText encodes the letter, so SideName serializes as a JSON string
// and can key JSON objects.
func (s SideName) MarshalText() ([]byte, error) { return []byte{byte(s)}, nil }

// UnmarshalText accepts a single face letter.
func (s *SideName) UnmarshalText(b []byte) error {
	if len(b) != 1 || !SideName(b[0]).Valid() {
		return fmt.Errorf("geometry: bad side name %q", b)
	}
	*s = SideName(b[0])

	return nil
}

// Opposite returns the face across the cube; 0 for an unknown letter.
func (s SideName) Opposite() SideName {
	switch s {
	case U:
		return D
	case D:
		return U
	case L:
		return R
	case R:
		return L
	case F:
		return B
	case B:
		return F
	}

	return 0
}

// Valid reports whether s is one of the six face letters.
func (s SideName) Valid() bool { return s.Opposite() != 0 }

// ScanOrder is the side order of input positions.
var ScanOrder = [6]SideName{U, L, F, R, B, D}

// KociembaOrder is the side order of the emitted facelet string.
var KociembaOrder = [6]SideName{U, R, F, D, L, B}

// Supported widths.
const (
	MinWidth = 2
	MaxWidth = 7
)

// Kind classifies a square by the cubie it belongs to.
type Kind uint8

// Square kinds.
const (
	KindCorner Kind = iota + 1
	KindEdge
	KindCenter
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindEdge:
		return "edge"
	case KindCenter:
		return "center"
	}

	return "unknown"
}

// Vec3 is an integer 3-vector. Axes: x runs L→R, y runs D→U, z runs B→F.
type Vec3 [3]int

// Sticker is the static description of one position.
type Sticker struct {
	Position int
	Side     SideName
	Row, Col int
	Cubie    Vec3 // cubie coordinate, each axis in [0, N-1]
	Normal   Vec3 // outward unit normal of the sticker's face
	Kind     Kind
}

// Side holds one face's position range and classification lists.
type Side struct {
	Name   SideName
	Index  int // index in ScanOrder
	Width  int
	MinPos int
	MaxPos int

	// CornerPositions in row-major order (top-left, top-right, bottom-left, bottom-right).
	CornerPositions []int

	// Directional edge lists, corners excluded, each in increasing position order.
	EdgeNorth []int
	EdgeWest  []int
	EdgeSouth []int
	EdgeEast  []int

	// CenterPositions are the interior (non-border) positions.
	CenterPositions []int
}

// EdgePositions returns the four directional lists concatenated and sorted.
func (s *Side) EdgePositions() []int {
	out := make([]int, 0, 4*len(s.EdgeNorth))
	for p := s.MinPos; p <= s.MaxPos; p++ {
		if s.isEdge(p) {
			out = append(out, p)
		}
	}

	return out
}

// Contains reports whether pos lies on this side.
func (s *Side) Contains(pos int) bool { return pos >= s.MinPos && pos <= s.MaxPos }

func (s *Side) isEdge(pos int) bool {
	for _, list := range [][]int{s.EdgeNorth, s.EdgeWest, s.EdgeSouth, s.EdgeEast} {
		for _, p := range list {
			if p == pos {
				return true
			}
		}
	}

	return false
}
