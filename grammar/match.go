package grammar

import (
	"context"

	"japanesegrammar/model"
	"japanesegrammar/tokenize"
)

// placeholderNoun stands for any noun when it opens a pattern (～節がある).
const placeholderNoun = "節"

// Match is one rule occurrence in a sentence. Indices is the contiguous run of
// sentence-token positions consumed; it can be longer than the pattern when a
// bridging rule spans two sentence tokens.
type Match struct {
	RuleID    string `json:"rule_id"`
	Indices   []int  `json:"indices"`
	Variation int    `json:"variation"`
}

// Start is the first token index covered.
func (m Match) Start() int {
	if len(m.Indices) == 0 {
		return -1
	}
	return m.Indices[0]
}

// End is one past the last token index covered.
func (m Match) End() int {
	if len(m.Indices) == 0 {
		return -1
	}
	return m.Indices[len(m.Indices)-1] + 1
}

// Matcher matches compiled rules against tokenized sentences. It holds no mutable
// state after construction and may be shared between goroutines.
type Matcher struct {
	rules []GrammarRule
	byID  map[string]*GrammarRule
	tok   Tokenizer
}

// NewMatcher builds a matcher over rules. tok is only needed by MatchSentence.
func NewMatcher(rules []GrammarRule, tok Tokenizer) *Matcher {
	m := &Matcher{rules: rules, byID: make(map[string]*GrammarRule, len(rules)), tok: tok}
	for i := range m.rules {
		m.byID[m.rules[i].ID] = &m.rules[i]
	}
	return m
}

// Rules returns the compiled rules in match order.
func (m *Matcher) Rules() []GrammarRule {
	return m.rules
}

// Rule looks up a compiled rule by id.
func (m *Matcher) Rule(id string) (*GrammarRule, bool) {
	r, ok := m.byID[id]
	return r, ok
}

// MatchSentence tokenizes text and matches it. Any tokenizer failure comes back
// as a *tokenize.TokenizationError.
func (m *Matcher) MatchSentence(ctx context.Context, text string) ([]model.Token, []Match, error) {
	toks, err := m.tok.Tokenize(ctx, text)
	if err != nil {
		return nil, nil, asTokenizationError(text, err)
	}
	return toks, m.MatchTokens(toks), nil
}

// MatchTokens makes one attempt per rule: variations are tried in order and the
// first that matches anywhere in the sentence wins.
func (m *Matcher) MatchTokens(sentence []model.Token) []Match {
	var out []Match
	for _, rule := range m.rules {
		for vi, v := range rule.Variations {
			if indices, ok := FindVariation(sentence, v.Tokens); ok {
				out = append(out, Match{RuleID: rule.ID, Indices: indices, Variation: vi})
				break
			}
		}
	}
	return out
}

// FindVariation returns the first window of sentence that pattern aligns with.
func FindVariation(sentence, pattern []model.Token) ([]int, bool) {
	if len(pattern) == 0 {
		return nil, false
	}
	for start := 0; start < len(sentence); start++ {
		if end, ok := alignAt(sentence, pattern, start); ok {
			indices := make([]int, 0, end-start)
			for i := start; i < end; i++ {
				indices = append(indices, i)
			}
			return indices, true
		}
	}
	return nil, false
}

// alignAt consumes pattern tokens against sentence tokens from start and returns
// the sentence index reached.
func alignAt(sentence, pattern []model.Token, start int) (int, bool) {
	si := start
	for pi, p := range pattern {
		if isOptionalNi(pattern, pi) && (si >= len(sentence) || sentence[si].Surface != "に") {
			continue
		}
		if si >= len(sentence) {
			return 0, false
		}
		s := sentence[si]
		switch {
		case pi == 0 && p.Surface == placeholderNoun && s.POS == model.Noun:
			si++
		case isPoliteNegative(p, sentence, si):
			si += 2
		case isPoliteCopula(p, s):
			si++
		case isVoicedTe(p, s):
			si++
		case isMatch(p, s):
			si++
		default:
			return 0, false
		}
	}
	if si == start {
		return 0, false
	}
	return si, true
}

// asTokenizationError wraps errors from tokenizers that do not produce
// *tokenize.TokenizationError themselves.
func asTokenizationError(text string, err error) error {
	if tokenize.IsTokenizationError(err) {
		return err
	}
	return &tokenize.TokenizationError{Text: text, Err: err}
}

// isOptionalNi treats まで+に in a pattern as まで with an optional に.
func isOptionalNi(pattern []model.Token, pi int) bool {
	p := pattern[pi]
	return pi > 0 && p.Surface == "に" && p.POS == model.Particle && pattern[pi-1].Surface == "まで"
}

// isPoliteNegative lets a pattern ない match the two-token ませ+ん split.
func isPoliteNegative(p model.Token, sentence []model.Token, si int) bool {
	if p.DictionaryForm != "ない" || (p.POS != model.Auxiliary && p.POS != model.Adjective) {
		return false
	}
	if si+1 >= len(sentence) || sentence[si].DictionaryForm != "ます" {
		return false
	}
	next := sentence[si+1]
	return next.ReadingForm == "ン" || next.Surface == "ん"
}

// isPoliteCopula lets a pattern だ match です.
func isPoliteCopula(p, s model.Token) bool {
	return p.DictionaryForm == "だ" && p.POS == model.Auxiliary &&
		s.DictionaryForm == "です" && s.POS == model.Auxiliary
}

// isVoicedTe lets a conjunctive て in a pattern match the で that follows ん/い
// stems (読んで, 泳いで). Case-particle で never qualifies.
func isVoicedTe(p, s model.Token) bool {
	return p.Surface == "て" && p.HasPOSPrefix("助詞", "接続助詞") &&
		s.Surface == "で" && s.HasPOSPrefix("助詞", "接続助詞")
}

// isMatch is plain token equivalence. An inflected function word in a pattern must
// match its surface exactly, so ましょう never matches a bare ます.
func isMatch(p, s model.Token) bool {
	if p.IsFunctionWord() {
		if !p.IsDictionaryForm() {
			return s.Surface == p.Surface
		}
		return equalNonEmpty(s.NormalizedForm, p.NormalizedForm) || s.Surface == p.Surface
	}
	return equalNonEmpty(p.NormalizedForm, s.NormalizedForm) ||
		equalNonEmpty(p.DictionaryForm, s.DictionaryForm) ||
		equalNonEmpty(p.ReadingForm, s.ReadingForm) ||
		p.Surface == s.Surface
}

func equalNonEmpty(a, b string) bool {
	return a != "" && a == b
}
