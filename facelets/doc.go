// SPDX-License-Identifier: MIT

// Package facelets converts between the scan-order (ULFRBD) and Kociemba-order
// (URFDLB) facelet strings and checks that a resolved state is a reachable
// cube.
//
// Checks by width:
//
//	all widths   every face letter appears exactly N² times;
//	             no edge piece shows two equal or opposite letters;
//	             corner pieces show three distinct, mutually non-opposite letters
//	             and the eight corners are the eight distinct corner cubies.
//	width 3      additionally edge pieces are the twelve distinct edge cubies,
//	             total corner twist ≡ 0 (mod 3), total edge flip ≡ 0 (mod 2),
//	             and corner permutation parity equals edge permutation parity.
//
// Parity is computed with SwapCount, the number of transpositions a selection
// sort needs to turn a reference list of piece codes into the observed one.
package facelets
