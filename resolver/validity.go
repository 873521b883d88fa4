// SPDX-License-Identifier: MIT

package resolver

import "github.com/katalvlaran/cubecolor/facelets"

// validityCheck logs, without failing, any reason the resolved state is not
// a reachable cube.
func (c *Cube) validityCheck() {
	if err := facelets.Validate(c.profile, c.state()); err != nil {
		c.logf("validity check: %v", err)
	}
}
