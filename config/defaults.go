package config

import (
	"github.com/spf13/viper"

	"japanesegrammar/grammar"
)

const (
	DefaultDict        = "ipa"
	DefaultCacheSize   = 1024
	DefaultPlaceholder = grammar.DefaultPlaceholder
	DefaultWorkers     = 4
	DefaultLogLevel    = "info"
)

// Default returns a fully defaulted Config.
func Default() *Config {
	cfg := &Config{
		Tokenizer: TokenizerConfig{CacheSize: DefaultCacheSize},
		Log:       LogConfig{Console: true},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-value fields. Explicit settings win. CacheSize is
// left alone because zero disables the cache; its default comes from Default
// and the loader.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Tokenizer.Dict == "" {
		cfg.Tokenizer.Dict = DefaultDict
	}
	if cfg.Rules.Placeholder == "" {
		cfg.Rules.Placeholder = DefaultPlaceholder
	}
	if len(cfg.Rules.RelaxedHeads) == 0 {
		cfg.Rules.RelaxedHeads = append([]string(nil), grammar.DefaultRelaxedHeads...)
	}
	if cfg.Analyze.Workers == 0 {
		cfg.Analyze.Workers = DefaultWorkers
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// registerKeys makes every key known to viper so that environment variables
// are picked up by Unmarshal even when no file sets them.
func registerKeys(v *viper.Viper) {
	v.SetDefault("tokenizer.dict", "")
	v.SetDefault("tokenizer.cache_size", DefaultCacheSize)
	v.SetDefault("rules.path", "")
	v.SetDefault("rules.placeholder", "")
	v.SetDefault("rules.relaxed_heads", []string{})
	v.SetDefault("dictionary.jmdict_path", "")
	v.SetDefault("analyze.workers", 0)
	v.SetDefault("log.level", "")
	v.SetDefault("log.console", true)
	v.SetDefault("log.dump_dir", "")
}
