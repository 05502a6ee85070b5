package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "grammarlens", cmd.Use)
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"analyze", "conjugate", "detect", "classify", "rules"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
	for _, flag := range []string{"config", "log-level", "output", "no-color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "", "classify", "見る", "走る", "する", "来る")
	require.NoError(t, err)
	assert.Equal(t, "見る\tichidan\n走る\tgodan\nする\tsuru\n来る\tkuru\n", out)
}

func TestClassifyJSON(t *testing.T) {
	out, err := run(t, "", "-o", "json", "classify", "食べる")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{"食べる": "ichidan"}, got)
}

func TestDetectCommand(t *testing.T) {
	out, err := run(t, "", "detect", "食べる", "食べられる")
	require.NoError(t, err)
	assert.Contains(t, out, "Passive (Rareru)")
	assert.Contains(t, out, "Potential (Can)")

	out, err = run(t, "", "detect", "食べる", "飲んだ")
	require.NoError(t, err)
	assert.Equal(t, "no matching tense\n", out)
}

func TestConjugateCommand(t *testing.T) {
	out, err := run(t, "", "conjugate", "書く")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "書く (godan)\n"))
	assert.Contains(t, out, "書きます")
	assert.Contains(t, out, "書いて")

	_, err = run(t, "", "conjugate")
	assert.Error(t, err)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "", "-o", "xml", "classify", "見る")
	assert.ErrorContains(t, err, "xml")
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokenizer:\n  dict: juman\n"), 0o644))
	_, err := run(t, "", "--config", path, "classify", "見る")
	assert.ErrorContains(t, err, "tokenizer.dict")
}

func TestAnalyzeEmptyInput(t *testing.T) {
	_, err := run(t, "  \n", "analyze")
	assert.Error(t, err)
}

func TestAnalyzeGiveSentence(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the IPA dictionary")
	}
	out, err := run(t, "", "-o", "json", "analyze", "ジュースを友達にあげます。")
	require.NoError(t, err)

	var results []struct {
		Text    string `json:"text"`
		Matches []struct {
			RuleID string `json:"rule_id"`
		} `json:"matches"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
	var ids []string
	for _, m := range results[0].Matches {
		ids = append(ids, m.RuleID)
	}
	assert.Contains(t, ids, "give")
}
