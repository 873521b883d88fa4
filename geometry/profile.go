// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"sort"
)

// Profile is the immutable per-width table set.
type Profile struct {
	Width  int
	Orbits int // edge orbits per physical edge ring: ceil((N-2)/2)

	sides    [6]Side
	stickers []Sticker // index = position-1
	bySlot   map[[6]int]int

	cornerTriples [][3]int
	edgeOrbits    [][][2]int
	centerGroups  [][]int
	deadCenters   []int

	wingPartner map[int]int
	orbitID     map[int]int
}

var profiles = func() map[int]*Profile {
	out := make(map[int]*Profile, MaxWidth-MinWidth+1)
	for n := MinWidth; n <= MaxWidth; n++ {
		out[n] = buildProfile(n)
	}

	return out
}()

// ForWidth returns the profile for width n or ErrUnsupportedWidth.
func ForWidth(n int) (*Profile, error) {
	p, ok := profiles[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, n)
	}

	return p, nil
}

// WidthForSquares infers N from a total square count of 6·N².
func WidthForSquares(count int) (int, error) {
	if count <= 0 || count%6 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrMalformedSquareCount, count)
	}
	per := count / 6
	n := 1
	for n*n < per {
		n++
	}
	if n*n != per {
		return 0, fmt.Errorf("%w: %d", ErrMalformedSquareCount, count)
	}
	if n < MinWidth || n > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedWidth, n)
	}

	return n, nil
}

// SquareCount returns 6·N².
func (p *Profile) SquareCount() int { return len(p.stickers) }

// IsOdd reports whether the width is odd.
func (p *Profile) IsOdd() bool { return p.Width%2 == 1 }

// Sides returns the six sides in scan order.
func (p *Profile) Sides() []*Side {
	out := make([]*Side, 6)
	for i := range p.sides {
		out[i] = &p.sides[i]
	}

	return out
}

// Side returns the side with the given letter, or nil.
func (p *Profile) Side(name SideName) *Side {
	for i := range p.sides {
		if p.sides[i].Name == name {
			return &p.sides[i]
		}
	}

	return nil
}

// SideOf returns the side holding pos.
func (p *Profile) SideOf(pos int) (*Side, error) {
	if pos < 1 || pos > len(p.stickers) {
		return nil, fmt.Errorf("%w: %d", ErrPositionOutOfRange, pos)
	}

	return &p.sides[(pos-1)/(p.Width*p.Width)], nil
}

// Sticker returns the static description of pos.
func (p *Profile) Sticker(pos int) (Sticker, error) {
	if pos < 1 || pos > len(p.stickers) {
		return Sticker{}, fmt.Errorf("%w: %d", ErrPositionOutOfRange, pos)
	}

	return p.stickers[pos-1], nil
}

// Lookup returns the position of the sticker on cubie c facing normal n.
func (p *Profile) Lookup(c, n Vec3) (int, bool) {
	pos, ok := p.bySlot[[6]int{c[0], c[1], c[2], n[0], n[1], n[2]}]

	return pos, ok
}

// WingPartner returns the other sticker of the edge piece holding pos.
func (p *Profile) WingPartner(pos int) (int, error) {
	q, ok := p.wingPartner[pos]
	if !ok {
		return 0, fmt.Errorf("%w: wing partner of %d (width %d)", ErrNoTableEntry, pos, p.Width)
	}

	return q, nil
}

// OrbitID returns the edge orbit index of an edge position.
func (p *Profile) OrbitID(pos int) (int, error) {
	o, ok := p.orbitID[pos]
	if !ok {
		return 0, fmt.Errorf("%w: orbit of %d (width %d)", ErrNoTableEntry, pos, p.Width)
	}

	return o, nil
}

// IsMidgeOrbit reports whether orbit holds the middle edges of an odd cube.
func (p *Profile) IsMidgeOrbit(orbit int) bool {
	return p.IsOdd() && orbit == p.Orbits-1
}

// CornerTriples returns the 8 corner cubies. The first position of each
// triple is the U or D sticker; the other two follow in clockwise order
// seen from outside the corner. Triples are sorted by their first position,
// which fixes the canonical visiting order for every width:
// BLU, BRU, FLU, FRU, DFL, DFR, BDL, BDR.
func (p *Profile) CornerTriples() [][3]int { return append([][3]int(nil), p.cornerTriples...) }

// EdgePairs returns the edge pieces of one orbit (nil for an unknown orbit).
// The first position of each pair is the sticker on U/D, else on F/B. Pairs
// are sorted by their first position; on a 3×3×3 this visits
// BU, LU, RU, FU, FL, FR, BR, BL, DF, DL, DR, BD.
func (p *Profile) EdgePairs(orbit int) [][2]int {
	if orbit < 0 || orbit >= len(p.edgeOrbits) {
		return nil
	}

	return append([][2]int(nil), p.edgeOrbits[orbit]...)
}

// CenterGroups returns the rotation orbits of non-fixed centres; each group
// lists its positions side by side in scan order, 4 per side.
func (p *Profile) CenterGroups() [][]int {
	out := make([][]int, len(p.centerGroups))
	for i, g := range p.centerGroups {
		out[i] = append([]int(nil), g...)
	}

	return out
}

// DeadCenters returns the fixed middle centre of each side in scan order, or
// nil for even widths.
func (p *Profile) DeadCenters() []int { return append([]int(nil), p.deadCenters...) }

// KociembaPositions returns all positions in URFDLB side order.
func (p *Profile) KociembaPositions() []int {
	out := make([]int, 0, len(p.stickers))
	for _, name := range KociembaOrder {
		s := p.Side(name)
		for pos := s.MinPos; pos <= s.MaxPos; pos++ {
			out = append(out, pos)
		}
	}

	return out
}

// place maps (side, row, col) to a cubie coordinate and outward normal.
func place(side SideName, n, r, c int) (Vec3, Vec3) {
	m := n - 1
	switch side {
	case U:
		return Vec3{c, m, r}, Vec3{0, 1, 0}
	case L:
		return Vec3{0, m - r, c}, Vec3{-1, 0, 0}
	case F:
		return Vec3{c, m - r, m}, Vec3{0, 0, 1}
	case R:
		return Vec3{m, m - r, m - c}, Vec3{1, 0, 0}
	case B:
		return Vec3{m - c, m - r, 0}, Vec3{0, 0, -1}
	default: // D
		return Vec3{c, 0, m - r}, Vec3{0, -1, 0}
	}
}

func classify(cubie Vec3, n int) (Kind, int) {
	var (
		extreme int
		free    = -1
	)
	for _, v := range cubie {
		if v == 0 || v == n-1 {
			extreme++
		} else {
			free = v
		}
	}
	switch extreme {
	case 3:
		return KindCorner, -1
	case 2:
		return KindEdge, free
	}

	return KindCenter, -1
}

func buildProfile(n int) *Profile {
	p := &Profile{
		Width:       n,
		Orbits:      (n - 1) / 2,
		stickers:    make([]Sticker, 6*n*n),
		bySlot:      make(map[[6]int]int, 6*n*n),
		wingPartner: make(map[int]int),
		orbitID:     make(map[int]int),
	}

	cubies := make(map[Vec3][]int)
	for si, name := range ScanOrder {
		side := Side{
			Name:   name,
			Index:  si,
			Width:  n,
			MinPos: si*n*n + 1,
			MaxPos: (si + 1) * n * n,
		}
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				pos := si*n*n + r*n + c + 1
				cubie, normal := place(name, n, r, c)
				kind, _ := classify(cubie, n)
				p.stickers[pos-1] = Sticker{
					Position: pos, Side: name, Row: r, Col: c,
					Cubie: cubie, Normal: normal, Kind: kind,
				}
				p.bySlot[[6]int{cubie[0], cubie[1], cubie[2], normal[0], normal[1], normal[2]}] = pos
				cubies[cubie] = append(cubies[cubie], pos)

				border := r == 0 || r == n-1 || c == 0 || c == n-1
				switch {
				case (r == 0 || r == n-1) && (c == 0 || c == n-1):
					side.CornerPositions = append(side.CornerPositions, pos)
				case r == 0:
					side.EdgeNorth = append(side.EdgeNorth, pos)
				case r == n-1:
					side.EdgeSouth = append(side.EdgeSouth, pos)
				case c == 0:
					side.EdgeWest = append(side.EdgeWest, pos)
				case c == n-1:
					side.EdgeEast = append(side.EdgeEast, pos)
				case !border:
					side.CenterPositions = append(side.CenterPositions, pos)
				}
			}
		}
		p.sides[si] = side
	}

	p.edgeOrbits = make([][][2]int, p.Orbits)
	for cubie, members := range cubies {
		kind, free := classify(cubie, n)
		switch kind {
		case KindCorner:
			if len(members) != 3 {
				panic(fmt.Sprintf("geometry: corner cubie %v has %d stickers", cubie, len(members)))
			}
			p.cornerTriples = append(p.cornerTriples, p.orderCorner(members))
		case KindEdge:
			if len(members) != 2 {
				panic(fmt.Sprintf("geometry: edge cubie %v has %d stickers", cubie, len(members)))
			}
			pair := p.orderEdge(members)
			orbit := min(free-1, n-2-free)
			p.edgeOrbits[orbit] = append(p.edgeOrbits[orbit], pair)
			p.wingPartner[pair[0]] = pair[1]
			p.wingPartner[pair[1]] = pair[0]
			p.orbitID[pair[0]] = orbit
			p.orbitID[pair[1]] = orbit
		}
	}
	sort.Slice(p.cornerTriples, func(i, j int) bool { return p.cornerTriples[i][0] < p.cornerTriples[j][0] })
	for _, pairs := range p.edgeOrbits {
		sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	}

	if n%2 == 1 {
		mid := (n - 1) / 2
		for si := range ScanOrder {
			p.deadCenters = append(p.deadCenters, si*n*n+mid*n+mid+1)
		}
	}
	p.centerGroups = buildCenterGroups(n)

	return p
}

// orderCorner puts the U/D sticker first and orders the rest so that the
// normals form a right-handed triple.
func (p *Profile) orderCorner(members []int) [3]int {
	var first int
	rest := make([]int, 0, 2)
	for _, pos := range members {
		if p.stickers[pos-1].Normal[1] != 0 {
			first = pos
		} else {
			rest = append(rest, pos)
		}
	}
	n0 := p.stickers[first-1].Normal
	n1 := p.stickers[rest[0]-1].Normal
	n2 := p.stickers[rest[1]-1].Normal
	if det(n0, n1, n2) < 0 {
		rest[0], rest[1] = rest[1], rest[0]
	}

	return [3]int{first, rest[0], rest[1]}
}

// orderEdge puts the sticker on U/D first, else the one on F/B.
func (p *Profile) orderEdge(members []int) [2]int {
	a, b := members[0], members[1]
	if edgeRank(p.stickers[b-1].Normal) < edgeRank(p.stickers[a-1].Normal) {
		a, b = b, a
	}

	return [2]int{a, b}
}

func edgeRank(n Vec3) int {
	switch {
	case n[1] != 0:
		return 0
	case n[2] != 0:
		return 1
	}

	return 2
}

func det(a, b, c Vec3) int {
	return a[0]*(b[1]*c[2]-b[2]*c[1]) -
		a[1]*(b[0]*c[2]-b[2]*c[0]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
}

// buildCenterGroups partitions interior cells into quarter-turn orbits of a
// side, skipping the fixed middle of odd widths.
func buildCenterGroups(n int) [][]int {
	if n < 4 {
		return nil
	}

	var (
		seen   = make(map[[2]int]bool)
		groups [][]int
		mid    = -1
	)
	if n%2 == 1 {
		mid = (n - 1) / 2
	}
	for r := 1; r <= n-2; r++ {
		for c := 1; c <= n-2; c++ {
			if seen[[2]int{r, c}] || (r == mid && c == mid) {
				continue
			}
			cells := make([]int, 0, 4)
			rr, cc := r, c
			for k := 0; k < 4; k++ {
				seen[[2]int{rr, cc}] = true
				cells = append(cells, rr*n+cc)
				rr, cc = cc, n-1-rr
			}
			sort.Ints(cells)
			group := make([]int, 0, 24)
			for si := range ScanOrder {
				for _, cell := range cells {
					group = append(group, si*n*n+cell+1)
				}
			}
			groups = append(groups, group)
		}
	}

	return groups
}
