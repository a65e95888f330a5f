package anonymize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/gupshup/core"
)

func TestTransform(t *testing.T) {
	chat := &core.Chat{Messages: []core.Message{
		{ID: 1, Sender: "Alice", SenderID: "user1", Text: "hi"},
		{ID: 2, Sender: "Bob", SenderID: "user2", Text: "hello", ReplyToID: 1},
		{ID: 3, Sender: "Alice", SenderID: "user1", Text: "how are you?"},
	}}

	require.NoError(t, core.Chain(chat, New(Config{})))

	assert.Equal(t, "User 1", chat.Messages[0].Sender)
	assert.Equal(t, "User 2", chat.Messages[1].Sender)
	assert.Equal(t, "User 1", chat.Messages[2].Sender, "aliases are stable per sender")

	for _, m := range chat.Messages {
		assert.Empty(t, m.SenderID)
	}

	// Structure is untouched, so stats and graph still line up.
	assert.Equal(t, int64(1), chat.Messages[1].ReplyToID)
}

func TestCustomPrefix(t *testing.T) {
	a := New(Config{Prefix: "Member"})
	assert.Equal(t, "Member 1", a.Alias("Alice"))
	assert.Equal(t, "Member 2", a.Alias("Bob"))
	assert.Equal(t, "Member 1", a.Alias("Alice"))
}
