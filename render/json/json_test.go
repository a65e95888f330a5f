package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/gupshup/core"
	"github.com/sonnes/gupshup/tokenize"
)

func TestRender(t *testing.T) {
	chat := &core.Chat{
		Name: "dev chat",
		Messages: []core.Message{
			{ID: 1, Sender: "alice", Text: "shipping friday?"},
			{ID: 2, Sender: "bob", Text: "shipping monday", ReplyToID: 1},
		},
	}
	stats := core.Aggregate(chat, tokenize.New())
	rep := core.NewReport(chat, stats, core.BuildGraph(chat, 0), 10)

	var b bytes.Buffer
	require.NoError(t, New().Render(&b, rep))

	var decoded struct {
		ChatName string `json:"chat_name"`
		Stats    struct {
			MessageCount int `json:"message_count"`
		} `json:"stats"`
		Graph struct {
			Edges []core.Edge `json:"edges"`
		} `json:"graph"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &decoded))
	assert.Equal(t, "dev chat", decoded.ChatName)
	assert.Equal(t, 2, decoded.Stats.MessageCount)
	assert.Equal(t, []core.Edge{{A: "alice", B: "bob"}}, decoded.Graph.Edges)
}
