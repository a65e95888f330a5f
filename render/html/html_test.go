package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/gupshup/core"
	"github.com/sonnes/gupshup/tokenize"
)

func testReport(t *testing.T) *core.Report {
	t.Helper()
	chat := &core.Chat{
		Name: "standup",
		Messages: []core.Message{
			{ID: 1, Sender: "alice", Text: "blockers anyone?"},
			{ID: 2, Sender: "bob", Text: "nothing blocking today", ReplyToID: 1},
		},
	}
	stats := core.Aggregate(chat, tokenize.New())
	graph := core.BuildGraph(chat, 0)
	return core.NewReport(chat, stats, graph, 10)
}

func TestRender(t *testing.T) {
	var b strings.Builder
	require.NoError(t, New().Render(&b, testReport(t)))
	out := b.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>standup</title>")
	assert.Contains(t, out, "tailwindcss")
	// Markdown tables come through as HTML tables via GFM.
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.NotContains(t, out, "reply graph →", "no graph link unless configured")
}

func TestRenderGraphLink(t *testing.T) {
	r := New()
	r.GraphHref = "/graph"

	var b strings.Builder
	require.NoError(t, r.Render(&b, testReport(t)))
	assert.Contains(t, b.String(), `href="/graph"`)
}
