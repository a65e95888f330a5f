// Package anonymize provides a Transformer that replaces participant names
// with stable aliases so reports and graphs can be shared without exposing
// identities.
package anonymize

import (
	"fmt"

	"github.com/sonnes/gupshup/core"
)

// Config controls alias generation.
type Config struct {
	// Prefix is the alias prefix. Defaults to "User".
	Prefix string
}

// Anonymizer rewrites sender names to "Prefix N" aliases in first-seen
// order. The mapping is stable within one Anonymizer, so stats and graph
// built from the same transformed chat agree on names.
type Anonymizer struct {
	prefix  string
	aliases map[string]string
}

// New creates an Anonymizer from the given config.
func New(cfg Config) *Anonymizer {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "User"
	}
	return &Anonymizer{prefix: prefix, aliases: make(map[string]string)}
}

// Transform implements core.Transformer.
func (a *Anonymizer) Transform(c *core.Chat) error {
	for i := range c.Messages {
		m := &c.Messages[i]
		m.Sender = a.Alias(m.Sender)
		m.SenderID = ""
	}
	return nil
}

// Alias returns the stable alias for name, creating one on first use.
func (a *Anonymizer) Alias(name string) string {
	if alias, ok := a.aliases[name]; ok {
		return alias
	}
	alias := fmt.Sprintf("%s %d", a.prefix, len(a.aliases)+1)
	a.aliases[name] = alias
	return alias
}
