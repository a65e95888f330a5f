package terminal

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
		Name: "weekend plans",
		Messages: []core.Message{
			{ID: 1, Sender: "alice", Text: "hiking tomorrow?"},
			{ID: 2, Sender: "bob", Text: "count me in for hiking", ReplyToID: 1},
		},
	}
	stats := core.Aggregate(chat, tokenize.New())
	graph := core.BuildGraph(chat, 0)
	return core.NewReport(chat, stats, graph, 10)
}

func TestRender(t *testing.T) {
	r := &Renderer{Width: 80}

	var b strings.Builder
	require.NoError(t, r.Render(&b, testReport(t)))
	out := b.String()

	assert.Contains(t, out, "weekend plans")
	assert.Contains(t, out, "MESSAGES")
	assert.Contains(t, out, "REPLY LINKS")
	assert.Contains(t, out, "TOP USERS")
	assert.Contains(t, out, "TOP ANSWERERS")
	assert.Contains(t, out, "QUESTION ANSWERERS")
	assert.Contains(t, out, "TOP WORDS")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "hiking")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}
