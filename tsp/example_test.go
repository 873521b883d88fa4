// SPDX-License-Identifier: MIT
package tsp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubecolor/matrix"
	"github.com/katalvlaran/cubecolor/tsp"
)

// ExampleSolvePath orders points scattered along a line.
func ExampleSolvePath() {
	xs := []float64{6, 0, 15, 1, 10, 3}
	dist, _ := matrix.BuildSymmetric(len(xs), func(i, j int) float64 {
		return math.Abs(xs[i] - xs[j])
	})

	res, err := tsp.SolvePath(dist, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [1 3 5 0 4 2] 15
}
