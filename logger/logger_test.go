package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LogJSON(dir, "sentence_1", map[string]int{"tokens": 7}))

	b, err := os.ReadFile(filepath.Join(dir, "sentence_1.json"))
	require.NoError(t, err)
	var got map[string]int
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 7, got["tokens"])

	_, err = os.Stat(filepath.Join(dir, "sentence_1.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitLogsClearsDumps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	require.NoError(t, InitLogs(dir))

	_, err := os.Stat(filepath.Join(dir, "old.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, err)
}

func TestInitLevel(t *testing.T) {
	require.NoError(t, Init("debug", false))
	assert.Equal(t, zerolog.DebugLevel, Logger.GetLevel())

	assert.Error(t, Init("loud", false))
}
