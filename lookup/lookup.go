// Package lookup groups tokens into word-level matches: a verb or adjective plus
// the auxiliaries that inflect it, labelled with the tenses the surface realises.
package lookup

import (
	"strings"

	"japanesegrammar/conjugate"
	"japanesegrammar/model"
)

// WordMatch is one word spanning tokens [Start, End).
type WordMatch struct {
	Start    int       `json:"start"`
	End      int       `json:"end"`
	Surface  string    `json:"surface"`
	DictForm string    `json:"dict_form"`
	Reading  string    `json:"reading,omitempty"`
	POS      model.POS `json:"pos"`
	// Class and Tenses are only set for verbs.
	Class  string   `json:"class,omitempty"`
	Tenses []string `json:"tenses,omitempty"`
}

// Covers reports whether the word touches the token range [start, end).
func (w WordMatch) Covers(start, end int) bool {
	return w.Start < end && start < w.End
}

// Words scans tokens and merges each verb or adjective with the auxiliaries,
// suffix verbs, conjunctive て/で and conditional ば that follow it. A following 動詞,非自立
// (the き of きた) opens its own word. Other content tokens become single-token
// words; stray function words and symbols are not words.
func Words(tokens []model.Token) []WordMatch {
	var out []WordMatch
	i := 0
	for i < len(tokens) {
		tk := tokens[i]
		switch {
		case tk.POS == model.Verb || tk.POS == model.Adjective:
			j := i + 1
			for j < len(tokens) && isInflection(tokens[j-1], tokens[j]) {
				j++
			}
			out = append(out, newWord(tokens, i, j))
			i = j
		case tk.POS.IsContent():
			out = append(out, newWord(tokens, i, i+1))
			i++
		default:
			i++
		}
	}
	return out
}

// isInflection reports whether tk continues the word that prev ends.
func isInflection(prev, tk model.Token) bool {
	switch {
	case tk.POS == model.Auxiliary:
		return true
	case tk.HasPOSPrefix("動詞", "接尾"):
		return true
	case tk.HasPOSPrefix("助詞", "接続助詞") && (tk.Surface == "て" || tk.Surface == "で"):
		return true
	case tk.Surface == "ば" && tk.HasPOSPrefix("助詞", "接続助詞"):
		// 書け|ば, 食べれ|ば, しなけれ|ば
		return strings.HasPrefix(prev.InflectionForm, "仮定") ||
			prev.POS == model.Verb || prev.POS == model.Auxiliary
	}
	return false
}

func newWord(tokens []model.Token, start, end int) WordMatch {
	head := tokens[start]
	var surface, reading strings.Builder
	for _, t := range tokens[start:end] {
		surface.WriteString(t.Surface)
		reading.WriteString(t.ReadingForm)
	}
	dict := head.DictionaryForm
	if dict == "" {
		dict = head.Surface
	}
	w := WordMatch{
		Start:    start,
		End:      end,
		Surface:  surface.String(),
		DictForm: dict,
		Reading:  reading.String(),
		POS:      head.POS,
	}
	if head.POS == model.Verb {
		class, ok := conjugate.ClassFromInflection(head.InflectionType)
		if !ok {
			class = conjugate.Classify(dict)
		}
		w.Class = class.String()
		w.Tenses = conjugate.Labels(conjugate.DetectAs(dict, class, w.Surface))
	}
	return w
}

// Within returns the words that touch the token range [start, end).
func Within(words []WordMatch, start, end int) []WordMatch {
	var out []WordMatch
	for _, w := range words {
		if w.Covers(start, end) {
			out = append(out, w)
		}
	}
	return out
}
