// SPDX-License-Identifier: MIT

package facelets

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cubecolor/geometry"
)

// PieceCode returns the letters shown at positions, sorted, e.g. "FRU".
func PieceCode(st State, positions ...int) string {
	b := make([]byte, len(positions))
	for i, pos := range positions {
		b[i] = byte(st[pos-1])
	}
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	return string(b)
}

// CornerCodes returns the code of every corner triple in profile order.
func CornerCodes(p *geometry.Profile, st State) []string {
	triples := p.CornerTriples()
	out := make([]string, len(triples))
	for i, t := range triples {
		out[i] = PieceCode(st, t[0], t[1], t[2])
	}

	return out
}

// EdgeCodes returns the code of every edge pair of one orbit in profile order.
func EdgeCodes(p *geometry.Profile, st State, orbit int) []string {
	pairs := p.EdgePairs(orbit)
	out := make([]string, len(pairs))
	for i, e := range pairs {
		out[i] = PieceCode(st, e[0], e[1])
	}

	return out
}

// SwapCount returns how many transpositions a selection sort performs to turn
// ref into got. got must be a permutation of ref.
func SwapCount(ref, got []string) (int, error) {
	if len(ref) != len(got) {
		return 0, fmt.Errorf("%w: length %d vs %d", ErrNotPermutation, len(got), len(ref))
	}

	var (
		work  = append([]string(nil), got...)
		swaps int
		i, j  int
	)
	for i = 0; i < len(ref); i++ {
		if work[i] == ref[i] {
			continue
		}
		for j = i + 1; j < len(work); j++ {
			if work[j] == ref[i] {
				break
			}
		}
		if j == len(work) {
			return 0, fmt.Errorf("%w: %q missing", ErrNotPermutation, ref[i])
		}
		work[i], work[j] = work[j], work[i]
		swaps++
	}

	return swaps, nil
}

// CornerParity returns the corner permutation parity (0 or 1) of st.
func CornerParity(p *geometry.Profile, st State) (int, error) {
	n, err := SwapCount(CornerCodes(p, Solved(p)), CornerCodes(p, st))
	if err != nil {
		return 0, fmt.Errorf("corners: %w", err)
	}

	return n % 2, nil
}

// EdgeParity returns the permutation parity (0 or 1) of one edge orbit.
func EdgeParity(p *geometry.Profile, st State, orbit int) (int, error) {
	n, err := SwapCount(EdgeCodes(p, Solved(p), orbit), EdgeCodes(p, st, orbit))
	if err != nil {
		return 0, fmt.Errorf("edges: %w", err)
	}

	return n % 2, nil
}
