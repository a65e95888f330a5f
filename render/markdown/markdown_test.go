package markdown

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
		Name: "dev chat 🚀",
		Type: "private_group",
		Messages: []core.Message{
			{ID: 1, Sender: "alice", Text: "does anyone know gonum?"},
			{ID: 2, Sender: "bob", Text: "gonum works great", ReplyToID: 1},
			{ID: 3, Sender: "bob", Text: "gonum gonum gonum"},
		},
	}
	stats := core.Aggregate(chat, tokenize.New())
	graph := core.BuildGraph(chat, 0)
	return core.NewReport(chat, stats, graph, 5)
}

func TestRender(t *testing.T) {
	var b strings.Builder
	require.NoError(t, New().Render(&b, testReport(t)))
	out := b.String()

	assert.Contains(t, out, "# dev chat — chat report", "emoji stripped from title")
	assert.Contains(t, out, "**Messages**: 3")
	assert.Contains(t, out, "**Participants**: 2")
	assert.Contains(t, out, "## Top users")
	assert.Contains(t, out, "| 1 | bob | 2 |")
	assert.Contains(t, out, "## Question answerers")
	assert.Contains(t, out, "## Top words")
	assert.Contains(t, out, "| 1 | gonum | 5 |")
	assert.Contains(t, out, "## Reply graph")
	assert.Contains(t, out, "alice ↔ bob")
}

func TestRenderCapsEdgeList(t *testing.T) {
	chat := &core.Chat{
		Name: "busy chat",
		Messages: []core.Message{
			{ID: 1, Sender: "alice", Text: "morning all"},
			{ID: 2, Sender: "bob", Text: "morning", ReplyToID: 1},
			{ID: 3, Sender: "carol", Text: "hey", ReplyToID: 1},
			{ID: 4, Sender: "dave", Text: "hi", ReplyToID: 1},
			{ID: 5, Sender: "erin", Text: "hello", ReplyToID: 1},
		},
	}
	stats := core.Aggregate(chat, tokenize.New())
	graph := core.BuildGraph(chat, 0)
	rep := core.NewReport(chat, stats, graph, 2)

	var b strings.Builder
	require.NoError(t, New().Render(&b, rep))
	out := b.String()

	assert.Contains(t, out, "5 users, 4 reply relationships.")
	assert.Contains(t, out, "alice ↔ bob")
	assert.Contains(t, out, "alice ↔ carol")
	assert.NotContains(t, out, "alice ↔ dave")
	assert.Contains(t, out, "…and 2 more")
}

func TestRenderUntitled(t *testing.T) {
	rep := testReport(t)
	rep.ChatName = ""

	var b strings.Builder
	require.NoError(t, New().Render(&b, rep))
	assert.Contains(t, b.String(), "# Chat — chat report")
}
