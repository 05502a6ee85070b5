// Package analyze runs the full per-sentence pipeline (tokenize, word matches,
// grammar matches) and aggregates overlapping matches for display.
package analyze

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"japanesegrammar/grammar"
	"japanesegrammar/ingest"
	"japanesegrammar/logger"
	"japanesegrammar/lookup"
	"japanesegrammar/model"
)

// Analysis is the result of analyzing one sentence.
type Analysis struct {
	SentenceID string             `json:"sentence_id"`
	Text       string             `json:"text"`
	Tokens     []model.Token      `json:"tokens"`
	Words      []lookup.WordMatch `json:"words,omitempty"`
	Matches    []grammar.Match    `json:"matches,omitempty"`
	Blocks     []Block            `json:"blocks,omitempty"`
	Segments   []Segment          `json:"segments,omitempty"`
	Groups     []DisplayGroup     `json:"groups,omitempty"`
}

// Options tune an Analyzer.
type Options struct {
	// Workers bounds AnalyzeAll; zero or less means one worker.
	Workers int
	// DumpDir, when set, receives a JSON dump per analyzed sentence.
	DumpDir string
}

// Analyzer holds the compiled matcher and an optional dictionary. It is safe for
// concurrent use.
type Analyzer struct {
	matcher *grammar.Matcher
	dict    Dictionary
	opts    Options
}

func New(matcher *grammar.Matcher, dict Dictionary, opts Options) *Analyzer {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Analyzer{matcher: matcher, dict: dict, opts: opts}
}

// Analyze tokenizes and matches one sentence.
func (a *Analyzer) Analyze(ctx context.Context, s ingest.Sentence) (Analysis, error) {
	toks, matches, err := a.matcher.MatchSentence(ctx, s.Text)
	if err != nil {
		return Analysis{}, fmt.Errorf("analyze %s: %w", s.ID, err)
	}
	words := lookup.Words(toks)
	blocks := BuildBlocks(toks, words, matches, a.matcher)
	res := Analysis{
		SentenceID: s.ID,
		Text:       s.Text,
		Tokens:     toks,
		Words:      words,
		Matches:    matches,
		Blocks:     blocks,
		Segments:   GroupTokensByOverlap(len(toks), blocks),
		Groups:     GroupForDisplay(toks, blocks, a.dict),
	}
	logger.Logger.Debug().
		Str("sentence", s.ID).
		Int("tokens", len(toks)).
		Int("words", len(words)).
		Int("matches", len(matches)).
		Msg("sentence analyzed")
	if a.opts.DumpDir != "" {
		if err := logger.LogJSON(a.opts.DumpDir, s.ID+"_analysis", res); err != nil {
			logger.Logger.Warn().Err(err).Str("sentence", s.ID).Msg("analysis dump failed")
		}
	}
	return res, nil
}

// Result pairs a sentence's analysis with the error that stopped it, if any.
type Result struct {
	Analysis Analysis `json:"analysis"`
	Err      error    `json:"-"`
}

// AnalyzeAll analyzes sentences on a bounded pool. Results keep input order; a
// failing sentence records its error and the rest carry on.
func (a *Analyzer) AnalyzeAll(ctx context.Context, sentences []ingest.Sentence) []Result {
	results := make([]Result, len(sentences))
	var g errgroup.Group
	g.SetLimit(a.opts.Workers)
	for i, s := range sentences {
		i, s := i, s
		g.Go(func() error {
			res, err := a.Analyze(ctx, s)
			if err != nil {
				logger.Logger.Warn().Err(err).Str("sentence", s.ID).Msg("sentence skipped")
				results[i] = Result{Analysis: Analysis{SentenceID: s.ID, Text: s.Text}, Err: err}
				return nil
			}
			results[i] = Result{Analysis: res}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
