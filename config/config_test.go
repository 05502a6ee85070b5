package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japanesegrammar/grammar"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grammarlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
tokenizer:
  dict: uni
  cache_size: 16
rules:
  path: rules.yaml
  relaxed_heads: [する, よう]
dictionary:
  jmdict_path: /data/JMdict_e
analyze:
  workers: 2
log:
  level: debug
  console: false
  dump_dir: logs
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "uni", cfg.Tokenizer.Dict)
	assert.Equal(t, 16, cfg.Tokenizer.CacheSize)
	assert.Equal(t, "rules.yaml", cfg.Rules.Path)
	assert.Equal(t, []string{"する", "よう"}, cfg.Rules.RelaxedHeads)
	assert.Equal(t, DefaultPlaceholder, cfg.Rules.Placeholder)
	assert.Equal(t, "/data/JMdict_e", cfg.Dictionary.JMdictPath)
	assert.Equal(t, 2, cfg.Analyze.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)
	assert.Equal(t, "logs", cfg.Log.DumpDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tokenizer:\n  dict: ipa\n")
	t.Setenv("GRAMMARLENS_TOKENIZER_DICT", "uni")
	t.Setenv("GRAMMARLENS_ANALYZE_WORKERS", "8")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "uni", cfg.Tokenizer.Dict)
	assert.Equal(t, 8, cfg.Analyze.Workers)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Tokenizer.Dict = "mecab"
	cfg.Tokenizer.CacheSize = -1
	cfg.Analyze.Workers = -2
	cfg.Log.Level = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"tokenizer.dict", "tokenizer.cache_size", "analyze.workers", "log.level"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestInvalidFileFailsValidation(t *testing.T) {
	path := writeConfig(t, "tokenizer:\n  dict: juman\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "tokenizer.dict")
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{Tokenizer: TokenizerConfig{Dict: "uni"}, Analyze: AnalyzeConfig{Workers: 1}}
	ApplyDefaults(cfg)
	assert.Equal(t, "uni", cfg.Tokenizer.Dict)
	assert.Equal(t, 1, cfg.Analyze.Workers)
	assert.Equal(t, grammar.DefaultRelaxedHeads, cfg.Rules.RelaxedHeads)
	assert.Zero(t, cfg.Tokenizer.CacheSize)
	ApplyDefaults(nil)
}

func TestCacheSize(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultCacheSize, cfg.Tokenizer.CacheSize)

	path := writeConfig(t, "tokenizer:\n  cache_size: 0\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Tokenizer.CacheSize, "zero disables the cache")

	t.Setenv("GRAMMARLENS_TOKENIZER_CACHE_SIZE", "0")
	cfg, err = LoadFromEnv()
	require.NoError(t, err)
	assert.Zero(t, cfg.Tokenizer.CacheSize)
}
