package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonnes/gupshup/core"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Alice", "Alice"},
		{"trailing emoji", "Alice 🎉", "Alice"},
		{"emoji between words", "Bob 🚀 Builder", "Bob Builder"},
		{"skin tone sequence", "Dana 👍🏽", "Dana"},
		{"directional isolates", "⁦Omid⁩", "Omid"},
		{"flag", "Eve 🇳🇱", "Eve"},
		{"only emoji", "🔥🔥🔥", ""},
		{"whitespace collapsed", "  Zed   Q  ", "Zed Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.CleanName(tt.in))
		})
	}
}
