// Package terminal renders reports as ANSI-colored summary cards.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"

	"github.com/sonnes/gupshup/core"
)

const (
	defaultWidth = 100
	nameWidth    = 24
)

// Renderer pretty-prints a report to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the report as ANSI-colored cards to w.
func (r *Renderer) Render(w io.Writer, rep *core.Report) error {
	width := r.termWidth()
	limit := rep.Limit()

	writeHeader(w, rep)
	writeTotals(w, rep)

	writeRanking(w, "TOP USERS", rep.Stats.TopUsers(limit), width)
	writeRanking(w, "TOP ANSWERERS", rep.Stats.TopAnswerers(limit), width)
	writeRanking(w, "QUESTION ANSWERERS", rep.Stats.TopQuestionAnswerers(limit), width)
	writeWords(w, rep.Stats.Words.Top(limit))

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the chat metadata block.
func writeHeader(w io.Writer, rep *core.Report) {
	title := core.CleanName(rep.ChatName)
	if title == "" {
		title = "Chat report"
	}
	fmt.Fprintln(w, styleTitle.Render(title))

	var parts []string
	if rep.ChatType != "" {
		parts = append(parts, rep.ChatType)
	}
	if !rep.From.IsZero() {
		parts = append(parts, rep.From.Format("Jan 2, 2006")+" – "+rep.To.Format("Jan 2, 2006"))
		parts = append(parts, "last message "+core.RelativeTime(rep.To))
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, styleMeta.Render(strings.Join(parts, "  ")))
	}
}

// writeTotals renders the aggregate counters in two rows: values then labels.
func writeTotals(w io.Writer, rep *core.Report) {
	type stat struct {
		value int
		label string
	}
	stats := []stat{
		{rep.Stats.MessageCount, "MESSAGES"},
		{rep.Stats.Users(), "USERS"},
		{rep.Stats.Words.Total(), "WORDS"},
	}
	if rep.Graph != nil {
		stats = append(stats, stat{rep.Graph.EdgeCount(), "REPLY LINKS"})
	}

	var values, labels []string
	for _, s := range stats {
		formatted := formatNumber(s.value)
		colWidth := max(len(formatted), len(s.label))
		values = append(values, fmt.Sprintf("%*s", colWidth, formatted))
		labels = append(labels, fmt.Sprintf("%-*s", colWidth, s.label))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+styleStat.Render(strings.Join(values, "    ")))
	fmt.Fprintln(w, "  "+styleStatLabel.Render(strings.Join(labels, "    ")))
}

// writeRanking renders one ranked section as horizontal bars scaled to the
// largest count.
func writeRanking(w io.Writer, heading string, pairs []core.Pair, width int) {
	if len(pairs) == 0 {
		return
	}

	barWidth := width - nameWidth - 12
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth < 10 {
		barWidth = 10
	}
	maxCount := pairs[0].Count
	for _, p := range pairs {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSection.Render(heading))
	for _, p := range pairs {
		name := ansi.Truncate(core.CleanName(p.Name), nameWidth, "…")
		n := 1
		if maxCount > 0 {
			n = max(1, p.Count*barWidth/maxCount)
		}
		bar := styleBar.Render(strings.Repeat("█", n))
		fmt.Fprintf(w, "  %-*s %s %s\n", nameWidth, name, bar, styleCount.Render(formatNumber(p.Count)))
	}
}

// writeWords renders the most frequent words as a compact inline list.
func writeWords(w io.Writer, words []core.Pair) {
	if len(words) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSection.Render("TOP WORDS"))
	var parts []string
	for _, p := range words {
		parts = append(parts, styleWord.Render(p.Name)+styleCount.Render(fmt.Sprintf("(%d)", p.Count)))
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, "  "))
}

// formatNumber renders n with thousands separators, e.g. 12345 → "12,345".
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
