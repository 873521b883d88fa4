// SPDX-License-Identifier: MIT

package facelets

import "errors"

var (
	// ErrBadLength is returned when a facelet string is not 6·N² long.
	ErrBadLength = errors.New("facelets: length is not 6·N²")

	// ErrBadLetter is returned for characters outside URFDLB.
	ErrBadLetter = errors.New("facelets: unknown face letter")

	// ErrBadCount is returned when a face letter does not appear N² times.
	ErrBadCount = errors.New("facelets: face letter count mismatch")

	// ErrBadEdge is returned for an edge piece that cannot exist.
	ErrBadEdge = errors.New("facelets: impossible edge piece")

	// ErrBadCorner is returned for a corner piece that cannot exist.
	ErrBadCorner = errors.New("facelets: impossible corner piece")

	// ErrBadCenter is returned when an odd cube's fixed centre does not show
	// its own face letter.
	ErrBadCenter = errors.New("facelets: fixed centre mismatch")

	// ErrTwist is returned when the corner twist sum is not 0 mod 3.
	ErrTwist = errors.New("facelets: corner twist")

	// ErrFlip is returned when the edge flip sum is not 0 mod 2.
	ErrFlip = errors.New("facelets: edge flip")

	// ErrParity is returned when corner and edge permutation parity differ.
	ErrParity = errors.New("facelets: permutation parity mismatch")

	// ErrNotPermutation is returned by SwapCount when the observed list is not
	// a permutation of the reference.
	ErrNotPermutation = errors.New("facelets: not a permutation of the reference")
)
