package core

import "time"

// Report bundles chat metadata with computed statistics and the reply graph.
// It is the unit the report renderers consume.
type Report struct {
	ChatName    string    `json:"chat_name,omitempty"`
	ChatType    string    `json:"chat_type,omitempty"`
	From        time.Time `json:"from,omitempty"`
	To          time.Time `json:"to,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	TopN        int       `json:"top_n,omitempty"`

	Stats *Stats      `json:"stats"`
	Graph *ReplyGraph `json:"graph,omitempty"`
}

// NewReport assembles a report for a chat. topN is carried through so
// renderers size their rankings consistently; zero means the default.
func NewReport(chat *Chat, stats *Stats, graph *ReplyGraph, topN int) *Report {
	first, last := chat.Span()
	return &Report{
		ChatName:    chat.Name,
		ChatType:    chat.Type,
		From:        first,
		To:          last,
		GeneratedAt: time.Now(),
		TopN:        topN,
		Stats:       stats,
		Graph:       graph,
	}
}

// Limit returns the ranking size renderers should use: TopN when set,
// otherwise 10.
func (r *Report) Limit() int {
	if r.TopN > 0 {
		return r.TopN
	}
	return 10
}
