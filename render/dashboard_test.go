// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubecolor/builder"
	"github.com/katalvlaran/cubecolor/monitoring"
	"github.com/katalvlaran/cubecolor/render"
	"github.com/katalvlaran/cubecolor/resolver"
)

func TestDashboard_ResolverCheckpoints(t *testing.T) {
	monitoring.SetLogger(nil)

	scan, _, err := builder.Scrambled(4, builder.WithMoves("R 2U F2"))
	require.NoError(t, err)

	d := render.New("4x4 debug")
	_, err = resolver.Resolve(scan, resolver.WithRenderer(d))
	require.NoError(t, err)

	assert.Equal(t, []string{
		resolver.StageScan, resolver.StageColorBox, resolver.StageCorners,
		resolver.StageCenters, resolver.StageEdges, resolver.StageFinal,
	}, d.Stages())

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	html := buf.String()
	assert.Contains(t, html, "4x4 debug")
	assert.Contains(t, html, "color-box")
	assert.Contains(t, html, "unnamed")
	assert.Contains(t, html, "color box")
	assert.Contains(t, html, `"Wh"`)
}

func TestDashboard_RejectsEmptyCheckpoint(t *testing.T) {
	d := render.New("empty")
	err := d.Render(resolver.Checkpoint{Stage: "scan"})
	assert.Error(t, err)
	assert.Empty(t, d.Stages())
}

func TestDashboard_WriteFile(t *testing.T) {
	monitoring.SetLogger(nil)

	scan, err := builder.Solved(2)
	require.NoError(t, err)
	d := render.New("2x2")
	_, err = resolver.Resolve(scan, resolver.WithRenderer(d))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "debug.html")
	require.NoError(t, d.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<html")
	assert.Contains(t, string(raw), "final")
}
