// SPDX-License-Identifier: MIT

// Package cubecolor turns raw RGB samples of every sticker of a Rubik's cube
// (2×2×2 up to 7×7×7) into the facelet string a solver consumes.
//
// 🚀 What does cubecolor do?
//
//	Given one RGB triple per sticker, cubecolor decides which of the six
//	colours each sticker shows and which side that colour belongs to:
//		• Calibration: a per-cube color box from corners (even) or fixed centres (odd)
//		• Corners, centres and edge orbits paired with an open-path TSP in CIE Lab
//		• Parity check and a single red/orange correction on 3×3×3
//		• Reachability check (counts, twist, flip, parity) logged per session
//		• Output as URFDLB facelets, a JSON dump or an unfolded net
//
// Under the hood, everything is organized under these subpackages:
//
//	geometry/   — per-width tables: sides, corners, edge orbits, centre groups
//	lab/        — sRGB→Lab conversion, CIE2000/Euclidean distance, memo cache
//	matrix/     — dense symmetric distance matrices
//	tsp/        — greedy open path with pinned endpoints + 2-opt refinement
//	facelets/   — side-letter states, parity and reachability validation
//	resolver/   — the colour resolution pipeline (Cube, Resolve)
//	builder/    — simulated cubes and synthetic scans for tests and tooling
//	render/     — go-echarts HTML dashboard of resolver checkpoints
//	config/     — JSON resolver configuration
//	monitoring/ — swappable package logger
//
// Quick start:
//
//	cube, err := resolver.Resolve(scan)
//	if err != nil { ... }
//	s, _ := cube.Kociemba() // "UUUUUUUUURRRRRRRRR..."
//
// The cubecolor command wraps the same pipeline for JSON scans on disk.
package cubecolor
