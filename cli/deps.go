package cli

import (
	"context"
	"fmt"

	"japanesegrammar/analyze"
	"japanesegrammar/config"
	"japanesegrammar/dictionary"
	"japanesegrammar/grammar"
	"japanesegrammar/logger"
	"japanesegrammar/tokenize"
)

func newTokenizer(cfg *config.Config) (*tokenize.Tokenizer, error) {
	return tokenize.New(tokenize.Options{Dict: cfg.Tokenizer.Dict, CacheSize: cfg.Tokenizer.CacheSize})
}

func ruleSources(cfg *config.Config) ([]grammar.RuleSource, error) {
	if cfg.Rules.Path == "" {
		return grammar.DefaultRules(), nil
	}
	return grammar.LoadRules(cfg.Rules.Path)
}

// compileRules compiles the configured rule set. Rules that fail to tokenize
// are logged and left out; the rest are returned.
func compileRules(ctx context.Context, cfg *config.Config, tok grammar.Tokenizer) ([]grammar.GrammarRule, error) {
	sources, err := ruleSources(cfg)
	if err != nil {
		return nil, err
	}
	c := grammar.NewCompiler(tok, grammar.CompilerOptions{
		Placeholder:  cfg.Rules.Placeholder,
		RelaxedHeads: cfg.Rules.RelaxedHeads,
	})
	rules, err := c.Compile(ctx, sources)
	if err != nil {
		logger.Logger.Warn().Err(err).Int("compiled", len(rules)).Msg("some rules failed to compile")
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no usable rules in %d sources", len(sources))
	}
	return rules, nil
}

func newAnalyzer(ctx context.Context, cfg *config.Config) (*analyze.Analyzer, error) {
	tok, err := newTokenizer(cfg)
	if err != nil {
		return nil, err
	}
	rules, err := compileRules(ctx, cfg, tok)
	if err != nil {
		return nil, err
	}
	var dict analyze.Dictionary
	if cfg.Dictionary.JMdictPath != "" {
		store, err := dictionary.Load(cfg.Dictionary.JMdictPath)
		if err != nil {
			return nil, err
		}
		dict = store
	}
	if cfg.Log.DumpDir != "" {
		if err := logger.InitLogs(cfg.Log.DumpDir); err != nil {
			return nil, fmt.Errorf("prepare dump dir: %w", err)
		}
	}
	return analyze.New(grammar.NewMatcher(rules, tok), dict, analyze.Options{
		Workers: cfg.Analyze.Workers,
		DumpDir: cfg.Log.DumpDir,
	}), nil
}
