package core

import (
	"iter"
	"sort"
	"strings"
)

// Tokenizer produces the normalized word tokens of a message text.
// Implemented by tokenize.Tokenizer; defined here so aggregation does not
// depend on a concrete tokenizer configuration.
type Tokenizer interface {
	Tokens(text string) iter.Seq[string]
}

// WordCount maps a normalized token to its number of occurrences.
type WordCount map[string]int

// Total returns the sum of all token counts.
func (wc WordCount) Total() int {
	n := 0
	for _, c := range wc {
		n += c
	}
	return n
}

// Top returns the n most frequent tokens, ties broken by token.
func (wc WordCount) Top(n int) []Pair {
	return rank(wc, n)
}

// Pair is a name with its tally, used for rankings.
type Pair struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats holds the aggregate statistics of one chat.
type Stats struct {
	MessageCount int `json:"message_count"`

	// Words tallies normalized tokens across all message text.
	Words WordCount `json:"words"`

	// MessagesByUser counts messages sent per user.
	MessagesByUser map[string]int `json:"messages_by_user"`

	// AnswersByUser counts messages per user that reply to another message.
	AnswersByUser map[string]int `json:"answers_by_user"`

	// QuestionAnswersByUser counts replies per user that target a question
	// message.
	QuestionAnswersByUser map[string]int `json:"question_answers_by_user"`
}

// Aggregate computes word and per-user statistics in a single pass over the
// messages. A message counts toward its sender's answer count iff it replies
// to another message; when the target is a question it additionally counts
// toward the sender's question-answer tally.
func Aggregate(chat *Chat, tok Tokenizer) *Stats {
	// Index question messages up front so replies to later questions resolve.
	questions := make(map[int64]bool)
	for _, m := range chat.Messages {
		if IsQuestion(m.Text) {
			questions[m.ID] = true
		}
	}

	s := &Stats{
		Words:                 make(WordCount),
		MessagesByUser:        make(map[string]int),
		AnswersByUser:         make(map[string]int),
		QuestionAnswersByUser: make(map[string]int),
	}

	for _, m := range chat.Messages {
		s.MessageCount++
		s.MessagesByUser[m.Sender]++
		for t := range tok.Tokens(m.Text) {
			s.Words[t]++
		}
		if !m.IsReply() {
			continue
		}
		s.AnswersByUser[m.Sender]++
		if questions[m.ReplyToID] {
			s.QuestionAnswersByUser[m.Sender]++
		}
	}

	return s
}

// IsQuestion reports whether text contains a question mark (Latin or Arabic).
func IsQuestion(text string) bool {
	return strings.ContainsAny(text, "?؟")
}

// TopUsers returns the n most active users by message count.
func (s *Stats) TopUsers(n int) []Pair {
	return rank(s.MessagesByUser, n)
}

// TopAnswerers returns the n users with the most reply messages.
func (s *Stats) TopAnswerers(n int) []Pair {
	return rank(s.AnswersByUser, n)
}

// TopQuestionAnswerers returns the n users with the most replies to questions.
func (s *Stats) TopQuestionAnswerers(n int) []Pair {
	return rank(s.QuestionAnswersByUser, n)
}

// Users returns the number of distinct senders.
func (s *Stats) Users() int {
	return len(s.MessagesByUser)
}

// rank sorts a tally descending by count, ties broken by name ascending for
// deterministic output, and keeps the first n entries. n <= 0 keeps all.
func rank(counts map[string]int, n int) []Pair {
	pairs := make([]Pair, 0, len(counts))
	for name, count := range counts {
		pairs = append(pairs, Pair{Name: name, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Name < pairs[j].Name
	})
	if n > 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
