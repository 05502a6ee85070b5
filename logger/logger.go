package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"
)

// Logger is the package-wide logger. It is silent until Init is called so that
// library users are not spammed by default.
var Logger = zerolog.New(io.Discard)

// Init configures Logger. console selects the human-readable writer on stderr.
func Init(level string, console bool) error {
	lvl := zerolog.InfoLevel
	if strings.TrimSpace(level) != "" {
		var err error
		lvl, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("logger: invalid level %q: %w", level, err)
		}
	}
	var w io.Writer = os.Stderr
	if console {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// InitLogs ensures the dump directory exists and removes any existing .json files
// so a run starts with a clean directory.
func InitLogs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		_ = os.Remove(f)
	}
	return nil
}

// LogJSON writes v as pretty JSON to <dir>/<name>.json. It writes to a temporary
// file first and renames it into place.
func LogJSON(dir, name string, v interface{}) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	final := filepath.Join(dir, filepath.Base(name)+".json")
	tmp := final + ".tmp"
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, pretty.Pretty(b), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	Logger.Debug().Str("path", final).Msg("wrote dump")
	return nil
}
