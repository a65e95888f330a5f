// Package core defines the normalized chat model — the typed representation
// of an exported chat history that the reader produces and all aggregation
// and rendering consume.
package core

import (
	"fmt"
	"time"
)

// Chat is the top-level container for one exported chat history.
type Chat struct {
	Name     string    `json:"name,omitempty"`
	Type     string    `json:"type,omitempty"` // "private_group", "public_supergroup", ...
	ID       int64     `json:"id,omitempty"`
	Messages []Message `json:"messages"`
}

// Message is a single chat message. Immutable once parsed.
type Message struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	SenderID  string    `json:"sender_id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Text      string    `json:"text"`
	ReplyToID int64     `json:"reply_to_id,omitempty"` // 0 when not a reply
}

// IsReply reports whether the message replies to another message.
func (m Message) IsReply() bool { return m.ReplyToID != 0 }

// Span returns the timestamps of the first and last dated messages.
// Both are zero when no message carries a timestamp.
func (c *Chat) Span() (first, last time.Time) {
	for _, m := range c.Messages {
		if m.Timestamp.IsZero() {
			continue
		}
		if first.IsZero() || m.Timestamp.Before(first) {
			first = m.Timestamp
		}
		if m.Timestamp.After(last) {
			last = m.Timestamp
		}
	}
	return first, last
}

// RelativeTime formats a time.Time as a human-readable relative string.
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
