// Package builder_test verifies the sticker simulator, move parsing and scan
// generation.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubecolor/builder"
	"github.com/katalvlaran/cubecolor/facelets"
	"github.com/katalvlaran/cubecolor/geometry"
)

func TestParseMoves(t *testing.T) {
	t.Parallel()

	moves, err := builder.ParseMoves("R U' F2 2L 3B'")
	require.NoError(t, err)
	require.Len(t, moves, 5)
	assert.Equal(t, builder.Move{Face: geometry.R, Depth: 1, Quarter: 1}, moves[0])
	assert.Equal(t, builder.Move{Face: geometry.U, Depth: 1, Quarter: 3}, moves[1])
	assert.Equal(t, builder.Move{Face: geometry.F, Depth: 1, Quarter: 2}, moves[2])
	assert.Equal(t, builder.Move{Face: geometry.L, Depth: 2, Quarter: 1}, moves[3])
	assert.Equal(t, "3B'", moves[4].String())

	for _, bad := range []string{"X", "R3", "2", "0R", "R''"} {
		_, err = builder.ParseMoves(bad)
		assert.ErrorIs(t, err, builder.ErrBadMove, bad)
	}
}

func TestCube_SingleTurns3x3(t *testing.T) {
	t.Parallel()

	tests := []struct {
		moves string
		want  string
	}{
		{"R", "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"},
		{"U", "UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB"},
		{"F", "UUUUUULLLURRURRURRFFFFFFFFFRRRDDDDDDLLDLLDLLDBBBBBBBBB"},
	}
	for _, tc := range tests {
		c, err := builder.NewCube(3)
		require.NoError(t, err)
		moves, err := builder.ParseMoves(tc.moves)
		require.NoError(t, err)
		require.NoError(t, c.Apply(moves))
		assert.Equal(t, tc.want, c.Kociemba(), tc.moves)
	}
}

func TestCube_InverseRestores(t *testing.T) {
	t.Parallel()

	for n := geometry.MinWidth; n <= geometry.MaxWidth; n++ {
		c, err := builder.NewCube(n)
		require.NoError(t, err)
		solved := c.Kociemba()

		moves, err := builder.ParseMoves("R U' F2 L D B'")
		require.NoError(t, err)
		require.NoError(t, c.Apply(moves))
		assert.NotEqual(t, solved, c.Kociemba())

		undo, _ := builder.ParseMoves("B D' L' F2 U R'")
		require.NoError(t, c.Apply(undo))
		assert.Equal(t, solved, c.Kociemba(), "width %d", n)
	}
}

func TestCube_SexyMoveOrderSix(t *testing.T) {
	t.Parallel()

	c, _ := builder.NewCube(3)
	moves, _ := builder.ParseMoves("R U R' U'")
	for i := 0; i < 6; i++ {
		require.NoError(t, c.Apply(moves))
	}
	assert.Equal(t, facelets.Solved(c.Profile()).Kociemba(c.Profile()), c.Kociemba())
}

func TestCube_InnerLayers(t *testing.T) {
	t.Parallel()

	c, _ := builder.NewCube(4)
	moves, _ := builder.ParseMoves("R 2U F2")
	require.NoError(t, c.Apply(moves))
	assert.Equal(t,
		"UUUFUUUFUUUFBDDDLRRRLBBBDRRRLRRRDFFFDFFFRRRRDFFFFUUUDDDBDDDBDDDBLLLRFFFRLLLULLLRUBBBLLLLUBBBUBBB",
		c.Kociemba())

	c3, _ := builder.NewCube(3)
	assert.ErrorIs(t, c3.Turn(builder.Move{Face: geometry.R, Depth: 2, Quarter: 1}), builder.ErrBadMove)
	assert.ErrorIs(t, c3.Turn(builder.Move{Face: geometry.R, Depth: 4, Quarter: 1}), builder.ErrBadMove)
}

func TestScrambled_ValidStates(t *testing.T) {
	t.Parallel()

	for n := geometry.MinWidth; n <= geometry.MaxWidth; n++ {
		for seed := int64(1); seed <= 5; seed++ {
			scan, c, err := builder.Scrambled(n, builder.WithSeed(seed), builder.WithScramble(30))
			require.NoError(t, err)
			assert.Len(t, scan, 6*n*n)
			require.NoError(t, facelets.Validate(c.Profile(), c.State()), "width %d seed %d", n, seed)
		}
	}
}

func TestScrambled_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := builder.Scrambled(3, builder.WithScramble(5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, _, err = builder.Scrambled(3, builder.WithMoves("R Q"))
	assert.ErrorIs(t, err, builder.ErrBadMove)

	_, _, err = builder.Scrambled(9)
	assert.ErrorIs(t, err, geometry.ErrUnsupportedWidth)

	_, err = builder.Solved(3, builder.WithNoise(2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	bad := builder.Scheme{
		geometry.U: builder.White, geometry.L: builder.White, geometry.F: builder.Green,
		geometry.R: builder.Red, geometry.B: builder.Blue, geometry.D: builder.Yellow,
	}
	_, err = builder.Solved(3, builder.WithScheme(bad))
	assert.ErrorIs(t, err, builder.ErrBadScheme)
}

func TestSolved_Colours(t *testing.T) {
	t.Parallel()

	scan, err := builder.Solved(2, builder.WithScheme(builder.SchemeYellowUp))
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultPalette[builder.Yellow], scan[1])
	assert.Equal(t, builder.DefaultPalette[builder.Red], scan[5])
	assert.Equal(t, builder.DefaultPalette[builder.White], scan[24])

	scan, err = builder.Solved(3, builder.WithPaletteHex(builder.White, "#ffffff"))
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{255, 255, 255}, scan[5])
}

func TestSolved_NoiseAndTintDeterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithNoise(6), builder.WithTint("#ffd27f", 0.15)}
	a, err := builder.Solved(4, opts...)
	require.NoError(t, err)
	b, err := builder.Solved(4, builder.WithSeed(7), builder.WithNoise(6), builder.WithTint("#ffd27f", 0.15))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	clean, _ := builder.Solved(4)
	assert.NotEqual(t, clean, a)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithNoise(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithScramble(-1) })
	assert.Panics(t, func() { builder.WithTint("nope", 0.5) })
	assert.Panics(t, func() { builder.WithTint("#ffffff", 2) })
	assert.Panics(t, func() { builder.WithPaletteHex(builder.Red, "#zz0000") })
	assert.Panics(t, func() { builder.WithScheme(builder.Scheme{}) })
}
