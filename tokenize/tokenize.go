package tokenize

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/unicode/norm"

	"japanesegrammar/logger"
	"japanesegrammar/model"
)

// Dictionary names accepted by New.
const (
	DictIPA = "ipa"
	DictUni = "uni"
)

// uniLemmaIndex is the position of the 語彙素 (lexeme) feature in UniDic entries.
const uniLemmaIndex = 7

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Options configures a Tokenizer.
type Options struct {
	// Dict selects the kagome system dictionary: "ipa" (default) or "uni".
	Dict string
	// CacheSize is the number of distinct inputs whose tokens are memoized. Zero disables the cache.
	CacheSize int
}

// Tokenizer wraps a kagome tokenizer and converts its output into model tokens.
// It is safe for concurrent use.
type Tokenizer struct {
	kg       *tokenizer.Tokenizer
	dictName string
	cache    *lru.Cache[string, []Token]
}

// New loads the requested system dictionary. Loading the dictionary is the one
// expensive step; callers build a Tokenizer once and share it.
func New(opts Options) (*Tokenizer, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Dict))
	if name == "" {
		name = DictIPA
	}
	var d *dict.Dict
	switch name {
	case DictIPA:
		d = ipa.Dict()
	case DictUni:
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("tokenize: unknown dictionary %q", opts.Dict)
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("tokenize: failed to build kagome tokenizer: %w", err)
	}
	t := &Tokenizer{kg: kg, dictName: name}
	if opts.CacheSize > 0 {
		c, err := lru.New[string, []Token](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("tokenize: failed to build cache: %w", err)
		}
		t.cache = c
	}
	logger.Logger.Debug().Str("dict", name).Int("cache_size", opts.CacheSize).Msg("tokenizer ready")
	return t, nil
}

// Dict returns the name of the loaded system dictionary.
func (t *Tokenizer) Dict() string {
	return t.dictName
}

// Tokenize produces tokens for the input text (normal mode). The input is NFC-normalized
// first so that decomposed dakuten do not split words.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if t == nil || t.kg == nil {
		return nil, &TokenizationError{Text: text, Err: ErrNotInitialized}
	}
	if err := ctx.Err(); err != nil {
		return nil, &TokenizationError{Text: text, Err: err}
	}
	text = norm.NFC.String(text)
	if text == "" {
		return nil, nil
	}
	if t.cache != nil {
		if toks, ok := t.cache.Get(text); ok {
			return cloneTokens(toks), nil
		}
	}
	toks := t.convert(t.kg.Tokenize(text))
	if t.cache != nil {
		t.cache.Add(text, cloneTokens(toks))
	}
	return toks, nil
}

func (t *Tokenizer) convert(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		pos := cleanFeatures(kt.POS())
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		normalized := lemma
		features := kt.Features()
		if t.dictName == DictUni && len(features) > uniLemmaIndex && features[uniLemmaIndex] != "*" {
			normalized = features[uniLemmaIndex]
		}
		infType, _ := kt.InflectionalType()
		infForm, _ := kt.InflectionalForm()
		tok := Token{
			Surface:        kt.Surface,
			PartsOfSpeech:  pos,
			NormalizedForm: normalized,
			DictionaryForm: lemma,
			ReadingForm:    reading,
			InflectionType: cleanFeature(infType),
			InflectionForm: cleanFeature(infForm),
			Begin:          kt.Start,
			End:            kt.End,
		}
		if len(pos) > 0 {
			tok.POS = model.ParsePOS(pos[0])
		}
		out = append(out, tok)
	}
	return out
}

// cleanFeatures drops the "*" placeholders kagome uses for empty POS levels.
func cleanFeatures(fs []string) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		if f == "" || f == "*" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func cleanFeature(f string) string {
	if f == "*" {
		return ""
	}
	return f
}

func cloneTokens(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, tk := range toks {
		tk.PartsOfSpeech = append([]string(nil), tk.PartsOfSpeech...)
		out[i] = tk
	}
	return out
}
