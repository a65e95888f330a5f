// Package markdown renders reports as a plain Markdown document with GFM
// tables. The HTML renderer reuses it for the page body.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/sonnes/gupshup/core"
)

// Renderer renders a report to Markdown.
type Renderer struct{}

// New creates a Markdown Renderer.
func New() *Renderer {
	return &Renderer{}
}

const dateLayout = "Jan 2, 2006"

// Render writes the report as a Markdown document to w.
func (r *Renderer) Render(w io.Writer, rep *core.Report) error {
	var b strings.Builder

	title := rep.ChatName
	if title == "" {
		title = "Chat"
	}
	fmt.Fprintf(&b, "# %s — chat report\n\n", core.CleanName(title))

	writeOverview(&b, rep)

	limit := rep.Limit()
	writeRanking(&b, "Top users", "Messages", rep.Stats.TopUsers(limit))
	writeRanking(&b, "Top answerers", "Answers", rep.Stats.TopAnswerers(limit))
	writeRanking(&b, "Question answerers", "Questions answered", rep.Stats.TopQuestionAnswerers(limit))
	writeWords(&b, rep.Stats.Words.Top(limit))

	if rep.Graph != nil {
		writeGraph(&b, rep.Graph, limit)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeOverview(b *strings.Builder, rep *core.Report) {
	fmt.Fprintf(b, "- **Messages**: %d\n", rep.Stats.MessageCount)
	fmt.Fprintf(b, "- **Participants**: %d\n", rep.Stats.Users())
	fmt.Fprintf(b, "- **Words**: %d (%d distinct)\n", rep.Stats.Words.Total(), len(rep.Stats.Words))
	if !rep.From.IsZero() {
		fmt.Fprintf(b, "- **Period**: %s – %s\n", rep.From.Format(dateLayout), rep.To.Format(dateLayout))
	}
	if rep.ChatType != "" {
		fmt.Fprintf(b, "- **Chat type**: %s\n", rep.ChatType)
	}
	b.WriteString("\n")
}

func writeRanking(b *strings.Builder, heading, label string, pairs []core.Pair) {
	if len(pairs) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	fmt.Fprintf(b, "| # | User | %s |\n", label)
	b.WriteString("|---|------|---:|\n")
	for i, p := range pairs {
		fmt.Fprintf(b, "| %d | %s | %d |\n", i+1, core.CleanName(p.Name), p.Count)
	}
	b.WriteString("\n")
}

func writeWords(b *strings.Builder, words []core.Pair) {
	if len(words) == 0 {
		return
	}
	b.WriteString("## Top words\n\n")
	b.WriteString("| # | Word | Count |\n")
	b.WriteString("|---|------|------:|\n")
	for i, p := range words {
		fmt.Fprintf(b, "| %d | %s | %d |\n", i+1, p.Name, p.Count)
	}
	b.WriteString("\n")
}

func writeGraph(b *strings.Builder, g *core.ReplyGraph, limit int) {
	b.WriteString("## Reply graph\n\n")
	fmt.Fprintf(b, "%d users, %d reply relationships.\n\n", g.NodeCount(), g.EdgeCount())
	edges := g.Edges()
	rest := 0
	if limit > 0 && len(edges) > limit {
		rest = len(edges) - limit
		edges = edges[:limit]
	}
	for _, e := range edges {
		fmt.Fprintf(b, "- %s ↔ %s\n", core.CleanName(e.A), core.CleanName(e.B))
	}
	if rest > 0 {
		fmt.Fprintf(b, "- …and %d more\n", rest)
	}
	b.WriteString("\n")
}
