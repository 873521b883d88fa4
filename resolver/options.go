// SPDX-License-Identifier: MIT

package resolver

import "github.com/katalvlaran/cubecolor/lab"

// Option customizes a Cube. Constructors panic on meaningless input.
type Option func(*config)

type config struct {
	metric           lab.Metric
	refineIters      int
	validityCheck    bool
	parityCorrection bool
	renderer         Renderer
	debug            bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		metric:           lab.CIE2000,
		validityCheck:    true,
		parityCorrection: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMetric selects the colour distance (default lab.CIE2000).
func WithMetric(m lab.Metric) Option {
	if m == nil {
		panic("resolver: WithMetric(nil)")
	}
	return func(c *config) { c.metric = m }
}

// WithRefineIters caps 2-opt moves in the calibration and centre orderings;
// 0 means run to a local optimum.
func WithRefineIters(n int) Option {
	if n < 0 {
		panic("resolver: WithRefineIters(n<0)")
	}
	return func(c *config) { c.refineIters = n }
}

// WithValidityCheck toggles the logged piece/parity cross-check (default on).
func WithValidityCheck(on bool) Option {
	return func(c *config) { c.validityCheck = on }
}

// WithParityCorrection toggles the single red/orange corrective swap on
// 3×3×3 parity mismatch (default on). When off a mismatch is fatal at once.
func WithParityCorrection(on bool) Option {
	return func(c *config) { c.parityCorrection = on }
}

// WithRenderer attaches a debug renderer that receives every checkpoint.
func WithRenderer(r Renderer) Option {
	if r == nil {
		panic("resolver: WithRenderer(nil)")
	}
	return func(c *config) { c.renderer = r }
}

// WithDebug logs the per-pass assignments.
func WithDebug(on bool) Option {
	return func(c *config) { c.debug = on }
}
