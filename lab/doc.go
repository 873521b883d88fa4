// SPDX-License-Identifier: MIT

// Package lab implements the perceptual colour machinery used to classify
// scanned squares.
//
//   - FromRGB converts an 8-bit sRGB triple to CIE L*a*b* (D65 white,
//     L ∈ [0,100]) through go-colorful's gamma-correct XYZ path.
//   - Euclidean is the cheap ΔE*76 approximation.
//   - CIE2000 is the full CIEDE2000 formula (kL = kC = kH = 1).
//   - Both delegate to go-colorful and report conventional ΔE units.
//   - Cache memoizes any Metric symmetrically. A Cache is owned by exactly one
//     resolution session and is NOT safe for concurrent use; create one per run.
package lab
