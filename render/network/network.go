// Package network renders the reply graph as an interactive force-directed
// HTML page.
package network

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sonnes/gupshup/core"
)

// Renderer draws reply graphs as standalone ECharts pages.
type Renderer struct {
	Title string
}

// Render writes the graph as an interactive HTML page to w. Node size
// scales with interaction count; node colors run from red (busiest) to
// blue (quietest).
func (r *Renderer) Render(w io.Writer, g *core.ReplyGraph) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return fmt.Errorf("reply graph: no users to draw")
	}

	// Busiest users first, so they get the warm end of the ramp.
	ranked := make([]*core.Node, len(nodes))
	copy(ranked, nodes)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Interactions != ranked[j].Interactions {
			return ranked[i].Interactions > ranked[j].Interactions
		}
		return ranked[i].Name < ranked[j].Name
	})
	colors := redToBlue(len(ranked))
	colorOf := make(map[string]string, len(ranked))
	for i, n := range ranked {
		colorOf[n.Name] = colors[i]
	}

	gnodes := make([]opts.GraphNode, 0, len(nodes))
	for _, n := range nodes {
		gnodes = append(gnodes, opts.GraphNode{
			Name:       core.CleanName(n.Name),
			Value:      float32(n.Interactions + 1),
			SymbolSize: symbolSize(n.Interactions),
			ItemStyle:  &opts.ItemStyle{Color: colorOf[n.Name]},
		})
	}
	glinks := make([]opts.GraphLink, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		glinks = append(glinks, opts.GraphLink{
			Source: core.CleanName(e.A),
			Target: core.CleanName(e.B),
		})
	}

	title := r.Title
	if title == "" {
		title = "Reply graph"
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "95vh",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	graph.AddSeries("replies", gnodes, glinks,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Force: &opts.GraphForce{
				Repulsion:  8000,
				Gravity:    0.2,
				EdgeLength: 120,
			},
			Roam: opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)

	return graph.Render(w)
}

// redToBlue generates n hex colors spanning the red→blue spectrum, warmest
// first.
func redToBlue(n int) []string {
	colors := make([]string, n)
	for i := range n {
		red := 255 - (255*i)/n
		blue := (255 * i) / n
		colors[i] = fmt.Sprintf("#%02x00%02x", red, blue)
	}
	return colors
}

// symbolSize scales node size with interaction count, capped so hub users
// don't swallow the canvas.
func symbolSize(interactions int) float32 {
	s := 10 + 4*float32(interactions)
	if s > 60 {
		s = 60
	}
	return s
}
