// SPDX-License-Identifier: MIT

package resolver_test

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubecolor/builder"
	"github.com/katalvlaran/cubecolor/facelets"
	"github.com/katalvlaran/cubecolor/geometry"
	"github.com/katalvlaran/cubecolor/lab"
	"github.com/katalvlaran/cubecolor/monitoring"
	"github.com/katalvlaran/cubecolor/resolver"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func kociemba(t *testing.T, c *resolver.Cube) string {
	t.Helper()
	s, err := c.Kociemba()
	require.NoError(t, err)

	return s
}

func TestResolve_SolvedAllWidths(t *testing.T) {
	for n := geometry.MinWidth; n <= geometry.MaxWidth; n++ {
		scan, err := builder.Solved(n)
		require.NoError(t, err)

		c, err := resolver.Resolve(scan)
		require.NoError(t, err, "width %d", n)

		p, _ := geometry.ForWidth(n)
		assert.Equal(t, facelets.Solved(p).Kociemba(p), kociemba(t, c), "width %d", n)
		assert.Zero(t, c.ParityCorrections())
	}
}

func TestResolve_Oracles(t *testing.T) {
	scan, err := builder.Solved(2, builder.WithScheme(builder.SchemeYellowUp))
	require.NoError(t, err)
	c, err := resolver.Resolve(scan)
	require.NoError(t, err)
	assert.Equal(t, "DDDDLLLLFFFFUUUURRRRBBBB", kociemba(t, c))

	scan, err = builder.Solved(3)
	require.NoError(t, err)
	c, err = resolver.Resolve(scan)
	require.NoError(t, err)
	assert.Equal(t, "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", kociemba(t, c))
}

// scrambleFixtures are recorded facelet strings for fixed move sequences.
var scrambleFixtures = []struct {
	width int
	moves string
	want  string
}{
	{3, "R U F' L2 D B R' U2",
		"DRDRUDRRBULLBRFBDLUULBFUFFRUUDDDFFFFLBBULLDBRBDFLBLURR"},
	{4, "R 2U F' 2L2 D B 2R' U2 F",
		"RUDRFBDUFRDUBUULFLLFBBBBBRRBRBFBLFFDLLBLRUULUFFUFDDFUUFUDDFLLFLUBRRDUFFDDLLDUBRLDBRDRDLBRURRRDLB"},
	{5, "R 2U F' 2L2 D B 2R' U2 2F L",
		"BURDRRBUDUBBUDUBLLFRDBRBRFFLLFDRBBBDURRBDDRRBFUFFBRLULUFBFUFFBFUFRLFUFFLLRUDDDDLFRRBLFDDFLFDDFLLFLLUUDUUBBLLFRBLLFRUFUUUBUUULDBDRLRDBLDRDBLDRURRBRDBLD"},
	{6, "R 2U 3F' 2L2 D 3B 2R' U2 3L",
		"FBRUDUFLBUDURBBRDRFBBRBRFBLUDUFRFUDULLFFLLUBDDBBRRDLRRRRDDRRRRDDRRFBFDFDUBUBFBRBURURFBRFRDFBRFRDFLUFUDLLUUULDDBLFDUURURUDDFLFDLFFLFBDDFLFDBBLLLBRRBDRRFFUUFDLLUULLLLUULLLLFULLUBUBFBFBFBUDLDLDFLULBLFBUDBDFBUUBBRBRDDDRR"},
	{7, "R 2U 3F' 2L2 D 3B 2R' U2 3L 2D'",
		"FBRUUDUFLBUUDURBBRRDRFBBUUDUFBBRRBRFBLUUDUFRFUUDULLFLFLLUBDBDBBRRDRLRRRRDRDRRRRDRDRRUUBBBRBFBFFDFDUBUBBFBRBURRURFBRFFRDFBUFFUDFBRFFRDRRDRDRRLLULUULDDBDLFDUURUURUDDFDLFDDDFDLFDLFFLLFBDDFDLFDBBLBLLBRRBRDRRFFUFUFDLLULULLLLULULLLLULULLFLUFFUDUBUBBFBFBFFBUDLDLLDFLULBBLFBUDBBDFBUDBBDFBLLFLULLRDDRDRR"},
}

func TestResolve_ScrambleFixtures(t *testing.T) {
	for _, fx := range scrambleFixtures {
		t.Run(fmt.Sprintf("%dx%d", fx.width, fx.width), func(t *testing.T) {
			scan, cube, err := builder.Scrambled(fx.width, builder.WithMoves(fx.moves))
			require.NoError(t, err)
			require.Equal(t, fx.want, cube.Kociemba())

			c, err := resolver.Resolve(scan)
			require.NoError(t, err)
			assert.Equal(t, fx.want, kociemba(t, c))

			noisy, err := cube.Scan(builder.WithSeed(int64(fx.width)), builder.WithNoise(6))
			require.NoError(t, err)
			c, err = resolver.Resolve(noisy)
			require.NoError(t, err)
			assert.Equal(t, fx.want, kociemba(t, c), "noisy")
		})
	}
}

func TestResolve_RandomScrambles(t *testing.T) {
	for n := geometry.MinWidth; n <= geometry.MaxWidth; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			scan, cube, err := builder.Scrambled(n,
				builder.WithSeed(seed*100+int64(n)), builder.WithScramble(25), builder.WithNoise(5))
			require.NoError(t, err)

			c, err := resolver.Resolve(scan)
			require.NoError(t, err, "width %d seed %d", n, seed)
			assert.Equal(t, cube.Kociemba(), kociemba(t, c), "width %d seed %d", n, seed)
		}
	}
}

func TestResolve_ParityCorpus3x3(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		scan, cube, err := builder.Scrambled(3, builder.WithSeed(seed), builder.WithScramble(30), builder.WithNoise(5))
		require.NoError(t, err)

		c, err := resolver.Resolve(scan)
		require.NoError(t, err, "seed %d", seed)
		st, err := c.State()
		require.NoError(t, err)

		cp, err := facelets.CornerParity(c.Profile(), st)
		require.NoError(t, err)
		ep, err := facelets.EdgeParity(c.Profile(), st, 0)
		require.NoError(t, err)
		assert.Equal(t, cp, ep, "seed %d", seed)
		assert.Equal(t, cube.Kociemba(), kociemba(t, c), "seed %d", seed)
	}
}

// ambiguousRedOrange returns a solved 3×3 scan whose UR red sticker (29)
// reads orange-ish and whose UL orange sticker (11) reads red-ish, so the
// edge pairing exchanges the two pieces.
func ambiguousRedOrange(t *testing.T) resolver.Scan {
	t.Helper()
	scan, err := builder.Solved(3)
	require.NoError(t, err)
	scan[29] = [3]uint8{235, 95, 28}
	scan[11] = [3]uint8{185, 40, 33}

	return scan
}

func TestResolve_ParityCorrection(t *testing.T) {
	c, err := resolver.Resolve(ambiguousRedOrange(t))
	require.NoError(t, err)
	assert.Equal(t, 1, c.ParityCorrections())
	assert.Equal(t, "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", kociemba(t, c))
	assert.Equal(t, resolver.Red, c.Square(29).ColorName())
	assert.Equal(t, resolver.Orange, c.Square(11).ColorName())
}

func TestResolve_ParityCorrectionDisabled(t *testing.T) {
	_, err := resolver.Resolve(ambiguousRedOrange(t), resolver.WithParityCorrection(false))
	assert.ErrorIs(t, err, resolver.ErrParityUnresolved)
}

func TestResolve_ValidityCheckLogsOnly(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	monitoring.SetLogger(func(format string, v ...interface{}) {
		mu.Lock()
		lines = append(lines, fmt.Sprintf(format, v...))
		mu.Unlock()
	})
	defer monitoring.SetLogger(nil)

	// twist the U/L/B corner of a 2×2 in place
	scan, err := builder.Solved(2)
	require.NoError(t, err)
	p, _ := geometry.ForWidth(2)
	tri := p.CornerTriples()[0]
	a, b, c := scan[tri[0]], scan[tri[1]], scan[tri[2]]
	scan[tri[0]], scan[tri[1]], scan[tri[2]] = c, a, b

	cube, err := resolver.Resolve(scan)
	require.NoError(t, err)
	st, _ := cube.State()
	assert.ErrorIs(t, facelets.Validate(p, st), facelets.ErrTwist)

	var found bool
	for _, l := range lines {
		if strings.Contains(l, "validity check") && strings.Contains(l, cube.ID()[:8]) {
			found = true
		}
	}
	assert.True(t, found, "expected a validity log line, got %v", lines)

	lines = nil
	_, err = resolver.Resolve(scan, resolver.WithValidityCheck(false))
	require.NoError(t, err)
	for _, l := range lines {
		assert.NotContains(t, l, "validity check")
	}
}

func TestNew_Errors(t *testing.T) {
	scan, _ := builder.Solved(3)

	short := resolver.Scan{}
	for pos := 1; pos <= 53; pos++ {
		short[pos] = scan[pos]
	}
	_, err := resolver.New(short)
	assert.ErrorIs(t, err, resolver.ErrMalformedScan)

	shifted := resolver.Scan{}
	for pos := 0; pos < 54; pos++ {
		shifted[pos] = [3]uint8{1, 2, 3}
	}
	_, err = resolver.New(shifted)
	assert.ErrorIs(t, err, resolver.ErrMissingPosition)

	big := resolver.Scan{}
	for pos := 1; pos <= 6*8*8; pos++ {
		big[pos] = [3]uint8{}
	}
	_, err = resolver.New(big)
	assert.ErrorIs(t, err, resolver.ErrUnsupportedWidth)
	assert.ErrorIs(t, err, geometry.ErrUnsupportedWidth)

	_, err = resolver.Resolve(resolver.Scan{})
	assert.ErrorIs(t, err, resolver.ErrMalformedScan)
}

func TestCube_OutputsBeforeResolve(t *testing.T) {
	scan, _ := builder.Solved(2)
	c, err := resolver.New(scan)
	require.NoError(t, err)

	_, err = c.Kociemba()
	assert.ErrorIs(t, err, resolver.ErrNotResolved)
	_, err = c.Dump()
	assert.ErrorIs(t, err, resolver.ErrNotResolved)
	_, err = c.State()
	assert.ErrorIs(t, err, resolver.ErrNotResolved)

	require.NoError(t, c.Resolve())
	require.NoError(t, c.Resolve(), "second call is a no-op")
}

func TestCube_Dump(t *testing.T) {
	scan, _ := builder.Solved(3)
	c, err := resolver.Resolve(scan)
	require.NoError(t, err)

	d, err := c.Dump()
	require.NoError(t, err)
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var got struct {
		Kociemba string `json:"kociemba"`
		Sides    map[string]struct {
			ColorName string `json:"colorName"`
			ColorHTML string `json:"colorHTML"`
		} `json:"sides"`
		Squares map[string]struct {
			FinalSide string `json:"finalSide"`
		} `json:"squares"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, kociemba(t, c), got.Kociemba)
	colours := make(map[string]string, 6)
	for side, sd := range got.Sides {
		colours[side] = sd.ColorName
		assert.Regexp(t, `^#[0-9a-f]{6}$`, sd.ColorHTML)
	}
	want := map[string]string{"U": "Wh", "L": "Or", "F": "Gr", "R": "Rd", "B": "Bu", "D": "Ye"}
	if diff := cmp.Diff(want, colours); diff != "" {
		t.Errorf("sides mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Squares, 54)
	assert.Equal(t, "U", got.Squares["1"].FinalSide)
	assert.Equal(t, "D", got.Squares["54"].FinalSide)
}

func TestCube_String(t *testing.T) {
	scan, _ := builder.Solved(2)
	c, err := resolver.Resolve(scan)
	require.NoError(t, err)

	want := "" +
		"    U U\n" +
		"    U U\n" +
		"L L F F R R B B\n" +
		"L L F F R R B B\n" +
		"    D D\n" +
		"    D D\n"
	assert.Equal(t, want, c.String())
}

func TestResolve_EuclideanMetric(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		scan, cube, err := builder.Scrambled(n, builder.WithMoves("R U' F2"))
		require.NoError(t, err)
		c, err := resolver.Resolve(scan, resolver.WithMetric(lab.Euclidean), resolver.WithRefineIters(50))
		require.NoError(t, err)
		assert.Equal(t, cube.Kociemba(), kociemba(t, c), "width %d", n)
	}
}

type recorder struct {
	stages []string
	boxes  []int
}

func (r *recorder) Render(cp resolver.Checkpoint) error {
	r.stages = append(r.stages, cp.Stage)
	r.boxes = append(r.boxes, len(cp.ColorBox))
	if cp.Stage == resolver.StageScan {
		return fmt.Errorf("disk full")
	}
	return nil
}

func TestResolve_Checkpoints(t *testing.T) {
	for _, tc := range []struct {
		width int
		want  []string
	}{
		{2, []string{"scan", "color-box", "corners", "final"}},
		{3, []string{"scan", "color-box", "corners", "edges", "final"}},
		{4, []string{"scan", "color-box", "corners", "centers", "edges", "final"}},
	} {
		scan, _ := builder.Solved(tc.width)
		rec := &recorder{}
		_, err := resolver.Resolve(scan, resolver.WithRenderer(rec), resolver.WithDebug(true))
		require.NoError(t, err, "render errors never abort")
		assert.Equal(t, tc.want, rec.stages)
		assert.Zero(t, rec.boxes[0])
		assert.Equal(t, 6, rec.boxes[len(rec.boxes)-1])
	}
}

func TestResolve_ConcurrentSessions(t *testing.T) {
	type result struct {
		id, got, want string
		err           error
	}

	var (
		wg  sync.WaitGroup
		out = make([]result, 12)
	)
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n := geometry.MinWidth + i%6
			scan, cube, err := builder.Scrambled(n, builder.WithSeed(int64(i)), builder.WithScramble(15))
			if err != nil {
				out[i].err = err
				return
			}
			c, err := resolver.Resolve(scan)
			if err != nil {
				out[i].err = err
				return
			}
			out[i].id = c.ID()
			out[i].got, out[i].err = c.Kociemba()
			out[i].want = cube.Kociemba()
		}(i)
	}
	wg.Wait()

	ids := make(map[string]bool)
	for i, r := range out {
		require.NoError(t, r.err, "run %d", i)
		assert.Equal(t, r.want, r.got, "run %d", i)
		ids[r.id] = true
	}
	assert.Len(t, ids, len(out))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { resolver.WithMetric(nil) })
	assert.Panics(t, func() { resolver.WithRefineIters(-1) })
	assert.Panics(t, func() { resolver.WithRenderer(nil) })
}

func TestBootstrap(t *testing.T) {
	l, ok := resolver.Bootstrap(resolver.White)
	require.True(t, ok)
	assert.InDelta(t, 100, l.L, 0.01)
	_, ok = resolver.Bootstrap("Pk")
	assert.False(t, ok)
}
