package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Alternative
	}{
		{
			name:    "slash alternatives",
			pattern: "あげる／やる／差し上げる",
			want:    []Alternative{{Content: "あげる"}, {Content: "やる"}, {Content: "差し上げる"}},
		},
		{
			name:    "leading tilde",
			pattern: "～てください",
			want:    []Alternative{{Content: "てください"}},
		},
		{
			name:    "ascii and wave-dash tildes",
			pattern: "~ようと思う／〜ようとおもう",
			want:    []Alternative{{Content: "ようと思う"}, {Content: "ようとおもう"}},
		},
		{
			name:    "context before tilde",
			pattern: "Ｖ～までに",
			want:    []Alternative{{Context: "Ｖ", Content: "までに"}},
		},
		{
			name:    "empty alternative skipped",
			pattern: "から／ ～ ",
			want:    []Alternative{{Content: "から"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.pattern)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePattern(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestParsePatternEmpty(t *testing.T) {
	for _, p := range []string{"", "   ", "～", "／", "～／～"} {
		_, err := ParsePattern(p)
		assert.ErrorIs(t, err, ErrEmptyPattern, "%q", p)
	}
}
