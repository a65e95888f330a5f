package core

import (
	"strings"
	"unicode"
)

// CleanName strips emoji and invisible format characters from a display
// name and collapses the leftover whitespace. Chat clients decorate names
// with emoji and wrap RTL text in directional isolates (U+2066..U+2069);
// neither belongs in rankings, charts, or graph labels.
func CleanName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isEmoji(r) || unicode.Is(unicode.Cf, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// isEmoji reports whether r falls in the common emoji blocks. Skin-tone and
// style modifiers count too, so composed sequences disappear entirely
// (the joiners between them are format characters).
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // mahjong..symbols and pictographs extended
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x2190 && r <= 0x21FF: // arrows
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // misc symbols and arrows
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0x20E3: // combining enclosing keycap
		return true
	}
	return false
}
