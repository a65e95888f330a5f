// Package telegram reads Telegram Desktop chat exports (result.json).
package telegram

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sonnes/gupshup/core"
	"github.com/sonnes/gupshup/reader"
)

// Reader reads Telegram result.json export files.
type Reader struct{}

// Raw JSON deserialization types. These mirror the export structure on disk.

type rawExport struct {
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	ID       int64        `json:"id"`
	Messages []rawMessage `json:"messages"`
}

type rawMessage struct {
	ID               int64           `json:"id"`
	Type             string          `json:"type"`
	Date             string          `json:"date"`
	From             *string         `json:"from"`
	FromID           string          `json:"from_id"`
	Text             json.RawMessage `json:"text"`
	ReplyToMessageID int64           `json:"reply_to_message_id"`
}

// dateLayout is the local-time format Telegram Desktop writes.
const dateLayout = "2006-01-02T15:04:05"

// ReadFile parses the Telegram export at path. Service entries (joins, pins,
// calls) are skipped; media-only entries with empty text are skipped as
// well, since they contribute nothing to word or reply analysis.
func (r *Reader) ReadFile(path string) (*core.Chat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chat export: %w", err)
	}
	defer f.Close()

	var raw rawExport
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", reader.ErrMalformedExport, err)
	}
	if raw.Messages == nil {
		return nil, fmt.Errorf("%w: no messages array", reader.ErrMalformedExport)
	}

	chat := &core.Chat{Name: raw.Name, Type: raw.Type, ID: raw.ID}
	for _, m := range raw.Messages {
		if m.Type != "message" {
			continue
		}
		msg, ok, err := mapMessage(m)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		chat.Messages = append(chat.Messages, msg)
	}
	return chat, nil
}

// mapMessage converts one raw entry. The second return is false for
// media-only entries that carry no text.
func mapMessage(m rawMessage) (core.Message, bool, error) {
	if m.From == nil || *m.From == "" {
		return core.Message{}, false, fmt.Errorf("%w: message %d: sender", reader.ErrMissingField, m.ID)
	}
	if len(m.Text) == 0 {
		return core.Message{}, false, fmt.Errorf("%w: message %d: text", reader.ErrMissingField, m.ID)
	}

	text, err := flattenText(m.Text)
	if err != nil {
		return core.Message{}, false, fmt.Errorf("%w: message %d: %v", reader.ErrMalformedExport, m.ID, err)
	}
	if text == "" {
		return core.Message{}, false, nil
	}

	return core.Message{
		ID:        m.ID,
		Sender:    *m.From,
		SenderID:  m.FromID,
		Timestamp: parseTime(m.Date),
		Text:      text,
		ReplyToID: m.ReplyToMessageID,
	}, true, nil
}

// flattenText handles the text field, which is either a plain string or an
// array mixing strings with typed entities like {"type":"bold","text":"..."}.
func flattenText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return "", fmt.Errorf("unexpected text shape")
	}

	var b strings.Builder
	for _, p := range parts {
		var sub string
		if err := json.Unmarshal(p, &sub); err == nil {
			b.WriteString(sub)
			continue
		}
		var entity struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(p, &entity); err != nil {
			return "", fmt.Errorf("unexpected text entity")
		}
		b.WriteString(entity.Text)
	}
	return b.String(), nil
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}
