// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalchart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/u-index/uindex-eval/evalfmt"
	"github.com/u-index/uindex-eval/evalproc"
)

// overlayColor is the semi-transparent black of the overlay bars.
var overlayColor = color.NRGBA{A: 0x4d}

const (
	figWidth    = 13 * vg.Inch
	panelHeight = vg.Length(3.5) * vg.Inch
	legendStrip = vg.Length(0.5) * vg.Inch
)

// Render composes the multi-panel figure for one dataset variant and
// writes it under cfg.OutDir as plot-<variant>.svg and/or .png.
//
// The table must already be normalized and grouped: its row order
// fixes the x-axis category order, and its distinct sketch labels fix
// the hue order.
func Render(variant string, t evalfmt.Table, cfg *Config) error {
	if len(t) == 0 {
		return fmt.Errorf("variant %s: no records to plot", variant)
	}

	cats, hues, cells := axes(t)

	legend := plot.NewLegend()
	legend.Top = true

	plots := make([]*plot.Plot, len(cfg.Panels))
	for pi, spec := range cfg.Panels {
		pl := plot.New()
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = pow2Ticks{}
		pl.Y.Label.Text = spec.YLabel
		pl.Add(&pow2Grid{
			Major: draw.LineStyle{Color: color.Gray{0xb0}, Width: vg.Points(0.5)},
			Minor: draw.LineStyle{Color: color.Gray{0xd8}, Width: vg.Points(0.2)},
		})

		for hi, hue := range hues {
			bars := &barGroup{
				values: cellValues(cells, cats, hue, spec.Primary),
				idx:    hi,
				groups: len(hues),
				color:  plotutil.Color(hi),
			}
			pl.Add(bars)
			if pi == 0 {
				legend.Add(hue, bars)
			}

			overlay := &barGroup{
				values: cellValues(cells, cats, hue, spec.Overlay),
				idx:    hi,
				groups: len(hues),
				color:  overlayColor,
			}
			pl.Add(overlay)
			if hi == 0 {
				// One representative swatch explains the
				// overlay series of this panel.
				pl.Legend.Add(spec.Caption, overlay)
				pl.Legend.Top = true
			}
		}

		pl.NominalX(cats...)
		pl.Y.Min, pl.Y.Max = spec.YMin, spec.YMax
		plots[pi] = pl
	}

	height := panelHeight*vg.Length(len(plots)) + legendStrip

	write := func(name string, can vg.CanvasWriterTo) error {
		dc := draw.New(can)
		panelsArea := draw.Crop(dc, 0, 0, legendStrip, 0)
		rows := make([][]*plot.Plot, len(plots))
		for i, pl := range plots {
			rows[i] = []*plot.Plot{pl}
		}
		tiles := draw.Tiles{Rows: len(plots), Cols: 1, PadY: vg.Points(12)}
		canvases := plot.Align(rows, tiles, panelsArea)
		for i, pl := range plots {
			pl.Draw(canvases[i][0])
		}
		legendArea := draw.Crop(dc, 0, 0, 0, legendStrip-(dc.Max.Y-dc.Min.Y))
		legend.Draw(legendArea)

		path := filepath.Join(cfg.OutDir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if _, err := can.WriteTo(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	if cfg.SVG {
		if err := write("plot-"+variant+".svg", vgsvg.New(figWidth, height)); err != nil {
			return err
		}
	}
	if cfg.PNG {
		can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(figWidth, height),
			vgimg.UseDPI(cfg.DPI),
			vgimg.UseBackgroundColor(color.White),
		)}
		if err := write("plot-"+variant+".png", can); err != nil {
			return err
		}
	}
	return nil
}

// axes extracts the x-axis categories (parameter labels, in table
// order) and hue series (sketch labels, in table order), and indexes
// the table by (category, hue). The first record of a cell wins, which
// is a no-op on grouped tables.
func axes(t evalfmt.Table) (cats, hues []string, cells map[[2]string]*evalfmt.Record) {
	cells = make(map[[2]string]*evalfmt.Record)
	seenCat := make(map[string]bool)
	seenHue := make(map[string]bool)
	for i := range t {
		r := &t[i]
		cat := evalproc.ParamLabel(r)
		hue := evalproc.SketchLabel(r)
		if !seenCat[cat] {
			seenCat[cat] = true
			cats = append(cats, cat)
		}
		if !seenHue[hue] {
			seenHue[hue] = true
			hues = append(hues, hue)
		}
		key := [2]string{cat, hue}
		if _, ok := cells[key]; !ok {
			cells[key] = r
		}
	}
	return cats, hues, cells
}

// cellValues extracts one metric for a hue series across all
// categories. Missing cells and absent metrics are NaN, which the bar
// plotter skips.
func cellValues(cells map[[2]string]*evalfmt.Record, cats []string, hue string, m evalproc.Metric) []float64 {
	vals := make([]float64, len(cats))
	for i, cat := range cats {
		vals[i] = math.NaN()
		if r, ok := cells[[2]string{cat, hue}]; ok {
			if v, ok := m.Value(r); ok {
				vals[i] = v
			}
		}
	}
	return vals
}

// A barGroup draws one hue series of a grouped-bar panel: one bar per
// category, offset within the category slot by the series index. Bars
// rise from the bottom of the plotting area rather than from y=0, so
// they are safe on logarithmic axes.
type barGroup struct {
	values []float64 // NaN marks a missing cell
	idx    int       // index of this series within the group
	groups int       // total series per category
	color  color.Color
}

// groupFraction is the share of a category slot occupied by bars; the
// rest is spacing between neighboring categories.
const groupFraction = 0.8

// Plot implements the plot.Plotter interface.
func (b *barGroup) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	slot := (trX(1) - trX(0)) * groupFraction / vg.Length(b.groups)
	offset := slot * vg.Length(float64(b.idx)-float64(b.groups-1)/2)
	width := slot * 0.9

	for i, v := range b.values {
		if math.IsNaN(v) {
			continue
		}
		x := trX(float64(i)) + offset
		if !c.ContainsX(x) {
			continue
		}
		bottom := c.Min.Y
		top := trY(v)
		if top > c.Max.Y {
			top = c.Max.Y
		}
		if top <= bottom {
			// The value is at or below the panel floor.
			continue
		}
		c.FillPolygon(b.color, []vg.Point{
			{X: x - width/2, Y: bottom},
			{X: x - width/2, Y: top},
			{X: x + width/2, Y: top},
			{X: x + width/2, Y: bottom},
		})
	}
}

// DataRange implements the plot.DataRanger interface. Only positive
// values participate in the y range, since panels are log-scaled; the
// fixed panel limits override the range anyway.
func (b *barGroup) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(b.values))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, v := range b.values {
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		ymin = math.Min(ymin, v)
		ymax = math.Max(ymax, v)
	}
	if ymin > ymax {
		ymin, ymax = 1, 1
	}
	return
}

// Thumbnail implements the plot.Thumbnailer interface, drawing a
// filled legend swatch.
func (b *barGroup) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(b.color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}

// pow2Ticks places a tick at every power of two, labeling even
// exponents. Odd exponents stay minor so wide panels do not crowd
// their axis.
type pow2Ticks struct{}

func (pow2Ticks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max <= min {
		return nil
	}
	var ticks []plot.Tick
	lo := int(math.Ceil(math.Log2(min) - 1e-9))
	hi := int(math.Floor(math.Log2(max) + 1e-9))
	for e := lo; e <= hi; e++ {
		t := plot.Tick{Value: math.Pow(2, float64(e))}
		if e%2 == 0 {
			t.Label = strconv.FormatFloat(t.Value, 'g', -1, 64)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// pow2Grid draws horizontal gridlines at every power of two within the
// y range: minor lines at every power, heavier lines at the labeled
// even exponents.
type pow2Grid struct {
	Major, Minor draw.LineStyle
}

// Plot implements the plot.Plotter interface.
func (g *pow2Grid) Plot(c draw.Canvas, plt *plot.Plot) {
	if plt.Y.Min <= 0 || plt.Y.Max <= plt.Y.Min {
		return
	}
	_, trY := plt.Transforms(&c)
	lo := int(math.Ceil(math.Log2(plt.Y.Min) - 1e-9))
	hi := int(math.Floor(math.Log2(plt.Y.Max) + 1e-9))
	for e := lo; e <= hi; e++ {
		y := trY(math.Pow(2, float64(e)))
		if !c.ContainsY(y) {
			continue
		}
		sty := g.Minor
		if e%2 == 0 {
			sty = g.Major
		}
		c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
	}
}
