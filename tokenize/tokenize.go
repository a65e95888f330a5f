// Package tokenize normalizes raw message text into word tokens: Unicode NFC
// normalization, lowercasing, punctuation and emoji stripping, and stopword
// removal.
package tokenize

import (
	"bufio"
	_ "embed"
	"fmt"
	"iter"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

//go:embed stopwords.txt
var defaultStopwords string

// Tokenizer splits text into normalized tokens. Construct with New; the
// zero value has no stopword list.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// New creates a Tokenizer loaded with the embedded default stopword list.
func New() *Tokenizer {
	t := &Tokenizer{stopwords: make(map[string]struct{})}
	t.AddStopwords(strings.Fields(defaultStopwords)...)
	return t
}

// AddStopwords registers additional stopwords, normalized the same way as
// tokens so lookups always match.
func (t *Tokenizer) AddStopwords(words ...string) {
	if t.stopwords == nil {
		t.stopwords = make(map[string]struct{})
	}
	for _, w := range words {
		t.stopwords[normalize(w)] = struct{}{}
	}
}

// LoadStopwords reads one stopword per line from path and registers them.
func (t *Tokenizer) LoadStopwords(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open stopwords: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			t.AddStopwords(w)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stopwords: %w", err)
	}
	return nil
}

// Tokens returns a lazy sequence of normalized tokens. The sequence is
// restartable: ranging over it again re-tokenizes from the start. The
// tokenizer holds no state per call, so Tokens is safe for concurrent use.
func (t *Tokenizer) Tokens(text string) iter.Seq[string] {
	normalized := normalize(text)
	return func(yield func(string) bool) {
		for raw := range strings.FieldsFuncSeq(normalized, isSeparator) {
			tok := strings.Trim(raw, "'’")
			if tok == "" {
				continue
			}
			if _, stop := t.stopwords[tok]; stop {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize collects the token stream into a slice.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	for tok := range t.Tokens(text) {
		tokens = append(tokens, tok)
	}
	return tokens
}

func normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// isSeparator reports whether r cannot be part of a word. Apostrophes stay
// so contractions survive as single tokens; everything else that is not a
// letter or digit (punctuation, emoji, format marks) splits.
func isSeparator(r rune) bool {
	if r == '\'' || r == '’' {
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
