// Package builder produces deterministic synthetic cube scans for tests,
// examples and regression corpora.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, colour scheme, palette, noise, tint, moves.
//   - Sticker model:
//     – Cube:            an N×N×N sticker simulator over geometry coordinates;
//     Turn applies a quarter/half turn of any non-middle layer.
//     – Move, ParseMoves: "R", "U'", "F2", "2R" (second layer from R), "3L2".
//   - Scan generation:
//     – Solved:          every side monochrome in its scheme colour.
//     – Scrambled:       WithMoves sequence or WithScramble(n) random turns.
//     – (*Cube).Scan:    RGB per position with optional noise and tint.
//   - Colour schemes:
//     – SchemeWhiteUp:   U=Wh L=Or F=Gr R=Rd B=Bu D=Ye.
//     – SchemeYellowUp:  the same cube held upside down (z2).
//
// Guarantees:
//
//   - Determinism: identical options (including WithSeed) produce identical scans.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Runtime errors (bad width, bad move, missing RNG) are sentinels wrapped
//     with %w; callers branch with errors.Is.
//   - Middle slices of odd cubes cannot be turned, so fixed centres stay on
//     their own side and the expected facelet state is the home side of every
//     sticker.
package builder
