package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/gupshup/core"
)

func TestBuildGraph(t *testing.T) {
	// B replies to A's message; C replies to B's reply. Edges resolve to
	// the original senders: (B,A) and (C,B).
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "A", "launch when?", 0),
		msg(2, "B", "friday", 1),
		msg(3, "C", "which friday", 2),
	}}

	g := core.BuildGraph(chat, 0)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "edge lookup is order-independent")
	assert.True(t, g.HasEdge("B", "C"))
	assert.False(t, g.HasEdge("A", "C"))
}

func TestBuildGraphEndpointsAlwaysPresent(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "A", "one", 0),
		msg(2, "B", "two", 1),
		msg(3, "C", "three", 1),
		msg(4, "D", "four", 3),
	}}

	g := core.BuildGraph(chat, 0)
	for _, e := range g.Edges() {
		assert.True(t, g.HasNode(e.A), "endpoint %s missing", e.A)
		assert.True(t, g.HasNode(e.B), "endpoint %s missing", e.B)
	}
}

func TestBuildGraphUnknownReplyIgnored(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "A", "hello", 0),
		msg(2, "B", "replying to nothing", 42),
	}}

	g := core.BuildGraph(chat, 0)
	assert.Equal(t, 2, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestBuildGraphSelfReply(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "A", "thread start", 0),
		msg(2, "A", "continuing my own thought", 1),
	}}

	g := core.BuildGraph(chat, 0)
	assert.Zero(t, g.EdgeCount(), "self-replies add no edge")

	nodes := g.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, 2, nodes[0].Interactions, "self-reply still counts as interaction")
}

func TestBuildGraphDeduplicatesEdges(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "A", "ping", 0),
		msg(2, "B", "pong", 1),
		msg(3, "A", "re-pong", 2),
		msg(4, "B", "re-re-pong", 3),
	}}

	g := core.BuildGraph(chat, 0)
	assert.Equal(t, 1, g.EdgeCount(), "both directions collapse to one canonical edge")
	assert.Equal(t, []core.Edge{{A: "A", B: "B"}}, g.Edges())
}

func TestBuildGraphTopN(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "A", "one", 0),
		msg(2, "A", "two", 0),
		msg(3, "A", "three", 0),
		msg(4, "B", "reply", 1),
		msg(5, "C", "another reply", 2),
	}}

	g := core.BuildGraph(chat, 1)

	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode("A"), "most active user survives")
	assert.Zero(t, g.EdgeCount(), "edges touching excluded users are dropped")
}

func TestBuildGraphTopNTieBreak(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "zed", "hi", 0),
		msg(2, "amy", "hi", 0),
	}}

	g := core.BuildGraph(chat, 1)
	assert.True(t, g.HasNode("amy"))
	assert.False(t, g.HasNode("zed"))
}

func TestNewEdgeCanonical(t *testing.T) {
	assert.Equal(t, core.NewEdge("b", "a"), core.NewEdge("a", "b"))
	assert.Equal(t, core.Edge{A: "a", B: "b"}, core.NewEdge("b", "a"))
}

func TestReplyGraphMarshalJSON(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		msg(1, "A", "hello", 0),
		msg(2, "B", "hi", 1),
	}}

	data, err := json.Marshal(core.BuildGraph(chat, 0))
	require.NoError(t, err)

	var decoded struct {
		Nodes []core.Node `json:"nodes"`
		Edges []core.Edge `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Nodes, 2)
	assert.Equal(t, []core.Edge{{A: "A", B: "B"}}, decoded.Edges)
}
