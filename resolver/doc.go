// SPDX-License-Identifier: MIT

// Package resolver turns one RGB scan of an N×N×N cube (2 ≤ N ≤ 7) into a
// physically valid facelet state.
//
// Pipeline (Cube.Resolve):
//
//	scan → color box → corners → centres → edges → sides → parity → validity
//
//   - Color box: six reference Lab colours learned from the scan itself.
//     Odd widths name the six fixed centres by the cheapest assignment
//     against bootstrap colours; even widths order the 24 corner stickers
//     with the greedy TSP (plus six bootstrap anchors that may not touch),
//     cut the order into six runs of four and name the runs the same way.
//     Each reference colour is the per-channel median of its members.
//   - Corners and edges: physical pieces are paired with the pieces of a
//     virtual solved cube painted from the color box. The pairing runs the TSP
//     over physical and virtual pieces using the cheapest rotation as the
//     distance, reads the path two nodes at a time, and then swaps partners
//     while the total strictly decreases. Edges run once per orbit.
//   - Centres (N ≥ 4): each rotation orbit of 24 centres is TSP-ordered, cut
//     into six runs of four and named by the cheapest assignment, followed by
//     the same swap pass on single stickers.
//   - Sides: odd widths map colours to sides through the fixed centres; even
//     widths use Wh→U Or→L Gr→F Rd→R Bu→B Ye→D.
//   - Parity (N = 3): corner and edge permutation parity must agree. On a
//     mismatch the most ambiguous red/orange edge exchange is applied once;
//     a second mismatch is fatal (ErrParityUnresolved). Widths 5 and 7 are
//     not parity-checked.
//
// A Cube owns its distance cache and session id, so independent cubes can be
// resolved concurrently. A single Cube is not safe for concurrent use.
package resolver
