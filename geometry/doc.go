// SPDX-License-Identifier: MIT

// Package geometry describes the static layout of an N×N×N cube (2 ≤ N ≤ 7).
//
// Positions are 1-based and run over six blocks of N² squares in scan order
// U, L, F, R, B, D; inside a side they increase row-major from the top-left
// corner of the usual unfolded net:
//
//	        U
//	    L   F   R   B
//	        D
//
// A Profile is selected once per width via ForWidth and holds everything the
// resolvers need: side ranges, corner/edge/centre classification, wing
// partners, edge orbit ids, corner triples, edge pairs per orbit and centre
// groups. Profiles are derived from a 3-D sticker model at package init and
// are immutable afterwards, so they may be shared between goroutines.
//
// Orbits: on widths ≥ 4 each physical edge hosts N−2 edge pieces arranged in
// ceil((N−2)/2) concentric rings counted from the corners. On odd widths the
// last ring holds the single middle edge ("midge") of each physical edge.
package geometry
