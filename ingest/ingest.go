// Package ingest turns raw text into identified sentences.
package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptySentence = errors.New("empty sentence")

// Sentence represents an ingested Japanese sentence and metadata.
type Sentence struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSentence trims text and gives it an id.
func NewSentence(text string) (Sentence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Sentence{}, ErrEmptySentence
	}
	return Sentence{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// enders close a sentence and stay attached to it.
const enders = "。！？!?"

// closers may trail an ender (「…。」).
const closers = "」』）)"

// SplitSentences cuts text after sentence-final punctuation and at line breaks.
// Blank pieces are dropped.
func SplitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}
	rs := []rune(text)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '\n' || r == '\r' {
			flush()
			continue
		}
		cur.WriteRune(r)
		if !strings.ContainsRune(enders, r) {
			continue
		}
		for i+1 < len(rs) && (strings.ContainsRune(enders, rs[i+1]) || strings.ContainsRune(closers, rs[i+1])) {
			i++
			cur.WriteRune(rs[i])
		}
		flush()
	}
	flush()
	return out
}

// Split splits text and wraps every piece in a Sentence.
func Split(text string) []Sentence {
	parts := SplitSentences(text)
	out := make([]Sentence, 0, len(parts))
	for _, p := range parts {
		s, err := NewSentence(p)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}
