package grammar

import (
	"context"
	"errors"
	"fmt"

	"japanesegrammar/logger"
	"japanesegrammar/model"
)

// DefaultPlaceholder is the dummy noun prepended to every pattern fragment so that
// leading function words are tagged as particles/auxiliaries rather than
// sentence-initial conjunctions.
const DefaultPlaceholder = "X"

// DefaultRelaxedHeads are the generic verb/auxiliary heads whose removal yields a
// relaxed variation. The set is empirical; extend it under test.
var DefaultRelaxedHeads = []string{"する", "う", "よう", "る"}

// Tokenizer is the external morphological analyzer.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

// Variation is one token sequence a rule can match.
type Variation struct {
	Tokens []model.Token `json:"tokens"`
	// Relaxed marks a variation derived by dropping a skippable leading head.
	Relaxed bool `json:"relaxed,omitempty"`
	// Alternative is the index of the pattern alternative it came from.
	Alternative int `json:"alternative"`
}

// GrammarRule is a compiled rule. Variations is never empty.
type GrammarRule struct {
	ID           string        `json:"id"`
	OriginalText string        `json:"original_text"`
	Meaning      string        `json:"meaning,omitempty"`
	Description  string        `json:"description,omitempty"`
	Level        string        `json:"level,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
	Variations   []Variation   `json:"variations"`
}

// CompilerOptions configures a Compiler. Zero values select the defaults.
type CompilerOptions struct {
	Placeholder  string
	RelaxedHeads []string
}

// Compiler turns rule sources into token patterns using the injected tokenizer.
type Compiler struct {
	tok         Tokenizer
	placeholder string
	relaxed     map[string]struct{}
}

func NewCompiler(tok Tokenizer, opts CompilerOptions) *Compiler {
	c := &Compiler{tok: tok, placeholder: opts.Placeholder, relaxed: map[string]struct{}{}}
	if c.placeholder == "" {
		c.placeholder = DefaultPlaceholder
	}
	heads := opts.RelaxedHeads
	if len(heads) == 0 {
		heads = DefaultRelaxedHeads
	}
	for _, h := range heads {
		c.relaxed[h] = struct{}{}
	}
	return c
}

// Compile compiles every source. Empty patterns and rules that resolve to no tokens
// are dropped with a log line. Tokenizer failures drop only the affected rule; they
// are returned joined once the whole batch has been processed.
func (c *Compiler) Compile(ctx context.Context, sources []RuleSource) ([]GrammarRule, error) {
	rules := make([]GrammarRule, 0, len(sources))
	var errs []error
	for i, src := range sources {
		rule, err := c.CompileRule(ctx, i, src)
		switch {
		case errors.Is(err, ErrEmptyPattern), errors.Is(err, errNoTokens):
			logger.Logger.Warn().Str("rule", rule.ID).Str("pattern", src.Pattern).Err(err).Msg("skipping rule")
			continue
		case err != nil:
			logger.Logger.Error().Str("rule", rule.ID).Str("pattern", src.Pattern).Err(err).Msg("rule compilation failed")
			errs = append(errs, err)
			continue
		}
		rules = append(rules, rule)
	}
	logger.Logger.Debug().Int("sources", len(sources)).Int("compiled", len(rules)).Msg("compiled grammar rules")
	return rules, errors.Join(errs...)
}

var errNoTokens = errors.New("grammar: pattern produced no tokens")

// CompileRule compiles one source; position supplies the id when the source has none.
func (c *Compiler) CompileRule(ctx context.Context, position int, src RuleSource) (GrammarRule, error) {
	rule := GrammarRule{
		ID:           src.ID,
		OriginalText: src.Pattern,
		Meaning:      src.Meaning,
		Description:  src.Description,
		Level:        src.Level,
	}
	if rule.ID == "" {
		rule.ID = fmt.Sprintf("rule-%d", position)
	}
	alts, err := ParsePattern(src.Pattern)
	if err != nil {
		return rule, err
	}
	rule.Alternatives = alts
	for ai, alt := range alts {
		toks, err := c.tokenizeFragment(ctx, alt.Content)
		if err != nil {
			return rule, fmt.Errorf("grammar: rule %s: %w", rule.ID, err)
		}
		if len(toks) == 0 {
			continue
		}
		rule.Variations = append(rule.Variations, Variation{Tokens: toks, Alternative: ai})
		if c.isRelaxedHead(toks[0]) && len(toks) > 1 {
			rule.Variations = append(rule.Variations, Variation{
				Tokens:      append([]model.Token(nil), toks[1:]...),
				Relaxed:     true,
				Alternative: ai,
			})
		}
	}
	if len(rule.Variations) == 0 {
		return rule, errNoTokens
	}
	return rule, nil
}

// tokenizeFragment tokenizes content behind the placeholder noun and strips it again.
func (c *Compiler) tokenizeFragment(ctx context.Context, content string) ([]model.Token, error) {
	text := c.placeholder + content
	toks, err := c.tok.Tokenize(ctx, text)
	if err != nil {
		return nil, asTokenizationError(text, err)
	}
	if len(toks) > 0 && toks[0].Surface == c.placeholder {
		toks = toks[1:]
	}
	return toks, nil
}

func (c *Compiler) isRelaxedHead(t model.Token) bool {
	if _, ok := c.relaxed[t.DictionaryForm]; ok {
		return true
	}
	_, ok := c.relaxed[t.NormalizedForm]
	return ok
}
