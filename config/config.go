// Package config loads grammarlens settings from YAML and GRAMMARLENS_*
// environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Config is the full application configuration.
type Config struct {
	Tokenizer  TokenizerConfig  `mapstructure:"tokenizer" yaml:"tokenizer"`
	Rules      RulesConfig      `mapstructure:"rules" yaml:"rules"`
	Dictionary DictionaryConfig `mapstructure:"dictionary" yaml:"dictionary"`
	Analyze    AnalyzeConfig    `mapstructure:"analyze" yaml:"analyze"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

type TokenizerConfig struct {
	// Dict is "ipa" or "uni".
	Dict      string `mapstructure:"dict" yaml:"dict"`
	CacheSize int    `mapstructure:"cache_size" yaml:"cache_size"`
}

type RulesConfig struct {
	// Path to a YAML or JSON rule file; empty selects the embedded rules.
	Path         string   `mapstructure:"path" yaml:"path"`
	Placeholder  string   `mapstructure:"placeholder" yaml:"placeholder"`
	RelaxedHeads []string `mapstructure:"relaxed_heads" yaml:"relaxed_heads"`
}

type DictionaryConfig struct {
	// JMdictPath is optional; without it word items carry no senses.
	JMdictPath string `mapstructure:"jmdict_path" yaml:"jmdict_path"`
}

type AnalyzeConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Console bool   `mapstructure:"console" yaml:"console"`
	DumpDir string `mapstructure:"dump_dir" yaml:"dump_dir"`
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	switch c.Tokenizer.Dict {
	case "ipa", "uni":
	default:
		errs = append(errs, fmt.Errorf("tokenizer.dict must be ipa or uni, got %q", c.Tokenizer.Dict))
	}
	if c.Tokenizer.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("tokenizer.cache_size must not be negative, got %d", c.Tokenizer.CacheSize))
	}
	if c.Rules.Placeholder == "" {
		errs = append(errs, errors.New("rules.placeholder must not be empty"))
	}
	if c.Analyze.Workers < 1 {
		errs = append(errs, fmt.Errorf("analyze.workers must be at least 1, got %d", c.Analyze.Workers))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}
