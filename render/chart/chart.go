// Package chart renders user rankings as bar chart PNGs.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sonnes/gupshup/core"
)

// Renderer draws ranked-user bar charts.
type Renderer struct {
	Title string
	// YLabel labels the value axis. Defaults to "count".
	YLabel string
}

var barColor = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}

// Render draws counts as a vertical bar chart and writes it as PNG to w.
func (r *Renderer) Render(w io.Writer, counts []core.Pair) error {
	if len(counts) == 0 {
		return fmt.Errorf("bar chart: no users to draw")
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.Y.Label.Text = r.YLabel
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = "count"
	}

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = core.CleanName(c.Name)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = barColor

	p.Add(bars)
	p.NominalX(names...)

	wt, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	return nil
}
