package conjugate

import "strings"

// Detect returns every tense of dictionaryForm whose generated surface equals
// observed. More than one result is genuine ambiguity (ichidan passive and
// potential are the same string). Empty input yields nil.
func Detect(dictionaryForm, observed string) []Tense {
	return DetectAs(dictionaryForm, Classify(dictionaryForm), observed)
}

// DetectAs is Detect with the inflection class supplied by the caller, e.g. from
// the tokenizer's inflection-type tag.
func DetectAs(dictionaryForm string, class VerbClass, observed string) []Tense {
	dictionaryForm = strings.TrimSpace(dictionaryForm)
	observed = strings.TrimSpace(observed)
	if dictionaryForm == "" || observed == "" {
		return nil
	}
	forms := AllForms(dictionaryForm, class)
	var out []Tense
	for _, t := range tenses {
		if forms[t.ID] == observed {
			out = append(out, t.Tense)
		}
	}
	return out
}

// Labels returns just the labels of ts.
func Labels(ts []Tense) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Label
	}
	return out
}
