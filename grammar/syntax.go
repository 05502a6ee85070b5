package grammar

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyPattern is reported for a rule whose pattern has no content after trimming.
var ErrEmptyPattern = errors.New("grammar: empty pattern")

// Alternative is one reading of a rule pattern: an optional leading context
// (what precedes the tilde, for display only) and the content that must match.
type Alternative struct {
	Context string `json:"context,omitempty"`
	Content string `json:"content"`
}

// ParsePattern splits a rule pattern such as "～ようと思う／～ようとおもう" into its
// alternatives. Alternatives are separated by ／; within an alternative, the text
// after the last ～ (or ~) is the content. Alternatives with empty content are dropped.
func ParsePattern(pattern string) ([]Alternative, error) {
	pattern = norm.NFC.String(strings.TrimSpace(pattern))
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	var out []Alternative
	for _, part := range strings.Split(pattern, "／") {
		segs := strings.FieldsFunc(part, isTilde)
		if len(segs) == 0 {
			continue
		}
		content := strings.TrimSpace(segs[len(segs)-1])
		if content == "" {
			continue
		}
		var ctx []string
		for _, s := range segs[:len(segs)-1] {
			if s = strings.TrimSpace(s); s != "" {
				ctx = append(ctx, s)
			}
		}
		out = append(out, Alternative{Context: strings.Join(ctx, "～"), Content: content})
	}
	if len(out) == 0 {
		return nil, ErrEmptyPattern
	}
	return out, nil
}

func isTilde(r rune) bool {
	return r == '～' || r == '~' || r == '〜'
}
