package core

import (
	"encoding/json"
	"sort"
)

// Edge is an undirected reply relationship between two users, stored in
// canonical order (A <= B) so that (x,y) and (y,x) deduplicate to one key.
type Edge struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewEdge returns the canonical edge for the unordered pair {a, b}.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Node is one user in the reply graph.
type Node struct {
	Name     string `json:"name"`
	Messages int    `json:"messages"` // messages sent

	// Interactions counts replies sent plus replies received, used by
	// renderers for node sizing.
	Interactions int `json:"interactions"`
}

// ReplyGraph is an undirected graph of reply relationships between users.
// An edge denotes at least one reply between its endpoints; duplicates are
// not tracked beyond presence.
type ReplyGraph struct {
	nodes map[string]*Node
	edges map[Edge]struct{}
}

// BuildGraph derives the reply graph from a chat. A reply whose target id
// does not resolve to a known message adds no edge; self-replies add no
// edge. When topN > 0 the node set is restricted to the topN users by
// message count (ties broken by name) and edges touching excluded users are
// dropped.
func BuildGraph(chat *Chat, topN int) *ReplyGraph {
	g := &ReplyGraph{
		nodes: make(map[string]*Node),
		edges: make(map[Edge]struct{}),
	}

	sender := make(map[int64]string, len(chat.Messages))
	for _, m := range chat.Messages {
		g.node(m.Sender).Messages++
		sender[m.ID] = m.Sender
	}

	for _, m := range chat.Messages {
		if !m.IsReply() {
			continue
		}
		target, ok := sender[m.ReplyToID]
		if !ok {
			continue
		}
		g.node(m.Sender).Interactions++
		g.node(target).Interactions++
		if target == m.Sender {
			continue
		}
		g.edges[NewEdge(m.Sender, target)] = struct{}{}
	}

	if topN > 0 {
		g.restrict(topN)
	}
	return g
}

func (g *ReplyGraph) node(name string) *Node {
	n, ok := g.nodes[name]
	if !ok {
		n = &Node{Name: name}
		g.nodes[name] = n
	}
	return n
}

// restrict keeps only the topN nodes by message count and drops every edge
// touching an excluded node.
func (g *ReplyGraph) restrict(topN int) {
	counts := make(map[string]int, len(g.nodes))
	for name, n := range g.nodes {
		counts[name] = n.Messages
	}
	keep := make(map[string]bool, topN)
	for _, p := range rank(counts, topN) {
		keep[p.Name] = true
	}

	for name := range g.nodes {
		if !keep[name] {
			delete(g.nodes, name)
		}
	}
	for e := range g.edges {
		if !keep[e.A] || !keep[e.B] {
			delete(g.edges, e)
		}
	}
}

// Nodes returns the graph's nodes sorted by name.
func (g *ReplyGraph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes
}

// Edges returns the graph's edges sorted by endpoints.
func (g *ReplyGraph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// HasNode reports whether a user is present in the graph.
func (g *ReplyGraph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// HasEdge reports whether an edge exists between a and b, in either order.
func (g *ReplyGraph) HasEdge(a, b string) bool {
	_, ok := g.edges[NewEdge(a, b)]
	return ok
}

// NodeCount returns the number of nodes.
func (g *ReplyGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *ReplyGraph) EdgeCount() int { return len(g.edges) }

// graphJSON is the serialized form of ReplyGraph.
type graphJSON struct {
	Nodes []*Node `json:"nodes"`
	Edges []Edge  `json:"edges"`
}

// MarshalJSON serializes the graph as sorted node and edge lists.
func (g *ReplyGraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphJSON{Nodes: g.Nodes(), Edges: g.Edges()})
}
