// SPDX-License-Identifier: MIT

package tsp

import "errors"

var (
	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrAsymmetry is returned when dist[i][j] and dist[j][i] disagree.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrNegativeWeight is returned for any negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNonFinite is returned for NaN or ±Inf distances.
	ErrNonFinite = errors.New("tsp: NaN or Inf distance")

	// ErrEndpointOutOfRange is returned when a fixed endpoint is not in [0..n-1].
	ErrEndpointOutOfRange = errors.New("tsp: endpoint out of range")

	// ErrEndpointsEqual is returned when both fixed endpoints name the same vertex.
	ErrEndpointsEqual = errors.New("tsp: endpoints must differ")

	// ErrInvalidPath is returned when a path is not a permutation of 0..n-1.
	ErrInvalidPath = errors.New("tsp: path is not a permutation")

	// ErrBadOptions is returned for negative Eps or RefineMaxIters.
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrIncompletePath signals the greedy join could not attach every vertex.
	// It is unreachable for valid inputs and exists to keep the solver panic-free.
	ErrIncompletePath = errors.New("tsp: greedy join did not produce a Hamiltonian path")
)

const (
	// DefaultEps is the strict improvement threshold for refinement (Δ < −Eps).
	DefaultEps = 1e-12

	// Forbidden is the sentinel distance for two vertices that must never be
	// adjacent in the result (e.g. two synthetic reference nodes).
	Forbidden = 9999.0
)

// Options configures SolvePath.
type Options struct {
	// Refine enables the best-improvement 2-opt pass after the greedy join.
	Refine bool

	// RefineMaxIters caps accepted refinement moves; 0 means "until local optimum".
	RefineMaxIters int

	// Eps is the acceptance tolerance: a move is applied only when Δ < −Eps.
	Eps float64

	// FixedEndpoints pins Start and End as the first and last path vertices.
	FixedEndpoints bool
	Start          int
	End            int
}

// DefaultOptions returns refinement enabled, unlimited iterations, DefaultEps
// and free endpoints.
func DefaultOptions() Options {
	return Options{Refine: true, Eps: DefaultEps}
}

// WithEndpoints returns a copy of o with both path endpoints pinned.
func (o Options) WithEndpoints(start, end int) Options {
	o.FixedEndpoints = true
	o.Start = start
	o.End = end

	return o
}

// PathResult holds the outcome of SolvePath.
type PathResult struct {
	// Path visits every vertex exactly once; len(Path) == n.
	Path []int

	// Cost is the sum of consecutive distances along Path, rounded to 1e-9.
	Cost float64
}
