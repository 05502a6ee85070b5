// Package tokenizetest provides a table-driven stand-in for the kagome tokenizer
// and helpers for writing IPA-shaped token fixtures.
package tokenizetest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"japanesegrammar/model"
	"japanesegrammar/tokenize"
)

// Tok builds a token. pos is the comma-separated IPA tag path ("助詞,格助詞,一般");
// the normalized form is the dictionary form, as with the IPA dictionary.
func Tok(surface, dictForm, reading, pos string) model.Token {
	tags := strings.Split(pos, ",")
	return model.Token{
		Surface:        surface,
		PartsOfSpeech:  tags,
		POS:            model.ParsePOS(tags[0]),
		NormalizedForm: dictForm,
		DictionaryForm: dictForm,
		ReadingForm:    reading,
	}
}

// Sentence assigns contiguous rune offsets to toks.
func Sentence(toks ...model.Token) []model.Token {
	out := make([]model.Token, len(toks))
	pos := 0
	for i, t := range toks {
		t.Begin = pos
		pos += len([]rune(t.Surface))
		t.End = pos
		out[i] = t
	}
	return out
}

// Placeholder is the token the rule compiler's dummy noun tokenizes to.
var Placeholder = Tok("X", "X", "", "名詞,固有名詞,組織")

// Fake answers Tokenize from a fixed table. Unknown text yields a tokenization
// error, which keeps fixtures honest.
type Fake struct {
	mu    sync.Mutex
	table map[string][]model.Token
	calls map[string]int
}

func New() *Fake {
	return &Fake{table: map[string][]model.Token{}, calls: map[string]int{}}
}

// Add registers the tokens for text.
func (f *Fake) Add(text string, toks ...model.Token) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.table[text] = Sentence(toks...)
	return f
}

// AddPattern registers a rule fragment behind the compiler's placeholder noun.
func (f *Fake) AddPattern(content string, toks ...model.Token) *Fake {
	return f.Add("X"+content, append([]model.Token{Placeholder}, toks...)...)
}

// Calls reports how often text was tokenized.
func (f *Fake) Calls(text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[text]
}

func (f *Fake) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, &tokenize.TokenizationError{Text: text, Err: err}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[text]++
	toks, ok := f.table[text]
	if !ok {
		return nil, &tokenize.TokenizationError{Text: text, Err: errUnknown}
	}
	return append([]model.Token(nil), toks...), nil
}

var errUnknown = errors.New("no fixture for text")
