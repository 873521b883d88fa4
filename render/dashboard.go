// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/cubecolor/lab"
	"github.com/katalvlaran/cubecolor/monitoring"
	"github.com/katalvlaran/cubecolor/resolver"
)

// unnamedColor paints squares that have not been given a colour yet.
const unnamedColor = "#9e9e9e"

// axisPad is the a*/b* half-range; CIE a*/b* of sRGB stay within ±128.
const axisPad = 128.0

// Dashboard collects one chart per checkpoint. Safe for concurrent use.
type Dashboard struct {
	mu     sync.Mutex
	title  string
	charts []*charts.Scatter
	stages []string
}

var _ resolver.Renderer = (*Dashboard)(nil)

// New returns an empty dashboard whose page carries title.
func New(title string) *Dashboard {
	return &Dashboard{title: title}
}

// Render records cp as a scatter chart.
func (d *Dashboard) Render(cp resolver.Checkpoint) error {
	if len(cp.Squares) == 0 {
		return fmt.Errorf("render: checkpoint %q has no squares", cp.Stage)
	}
	sc := scatterFor(cp)

	d.mu.Lock()
	d.charts = append(d.charts, sc)
	d.stages = append(d.stages, cp.Stage)
	d.mu.Unlock()

	return nil
}

// Stages returns the recorded checkpoint stages in arrival order.
func (d *Dashboard) Stages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.stages...)
}

// WriteTo renders the page to w.
func (d *Dashboard) WriteTo(w io.Writer) (int64, error) {
	d.mu.Lock()
	page := components.NewPage()
	page.PageTitle = d.title
	for _, sc := range d.charts {
		page.AddCharts(sc)
	}
	d.mu.Unlock()

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return 0, fmt.Errorf("render: page: %w", err)
	}

	return buf.WriteTo(w)
}

// WriteFile renders the page into path, creating parent directories.
func (d *Dashboard) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	n, err := d.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	monitoring.Logf("render: wrote %d bytes to %s", n, path)

	return nil
}

func scatterFor(cp resolver.Checkpoint) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: cp.Stage, Width: "720px", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    cp.Stage,
			Subtitle: fmt.Sprintf("session=%s width=%d squares=%d", shortID(cp.Session), cp.Width, len(cp.Squares)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -axisPad, Max: axisPad, Name: "a*", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -axisPad, Max: axisPad, Name: "b*", NameLocation: "middle", NameGap: 30}),
	)

	box := make(map[resolver.ColorName]lab.Lab, len(cp.ColorBox))
	for _, e := range cp.ColorBox {
		box[e.Name] = e.Lab
	}

	buckets := make(map[resolver.ColorName][]opts.ScatterData, 7)
	for _, sq := range cp.Squares {
		buckets[sq.ColorName] = append(buckets[sq.ColorName], point(sq.Lab, sq.Position))
	}

	if pts := buckets[resolver.None]; len(pts) > 0 {
		sc.AddSeries("unnamed", pts,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: unnamedColor}))
	}
	for _, name := range resolver.ColorNames {
		pts := buckets[name]
		if len(pts) == 0 {
			continue
		}
		sc.AddSeries(string(name), pts,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: seriesColor(name, box)}))
	}

	if len(cp.ColorBox) > 0 {
		refs := make([]opts.ScatterData, 0, len(cp.ColorBox))
		for _, e := range cp.ColorBox {
			refs = append(refs, opts.ScatterData{Name: string(e.Name), Value: []interface{}{e.Lab.A, e.Lab.B, 0}})
		}
		sc.AddSeries("color box", refs,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 16}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000000"}))
	}

	return sc
}

func point(l lab.Lab, pos int) opts.ScatterData {
	return opts.ScatterData{Name: fmt.Sprintf("%d", pos), Value: []interface{}{l.A, l.B, pos}}
}

// seriesColor uses the calibrated colour when known, else the bootstrap one.
func seriesColor(name resolver.ColorName, box map[resolver.ColorName]lab.Lab) string {
	if l, ok := box[name]; ok {
		return l.Hex()
	}
	if l, ok := resolver.Bootstrap(name); ok {
		return l.Hex()
	}

	return unnamedColor
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
