package model

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Surface        string   `json:"surface"`
	PartsOfSpeech  []string `json:"parts_of_speech,omitempty"`
	POS            POS      `json:"pos"`
	NormalizedForm string   `json:"normalized_form,omitempty"`
	DictionaryForm string   `json:"dictionary_form,omitempty"`
	ReadingForm    string   `json:"reading_form,omitempty"`
	InflectionType string   `json:"inflection_type,omitempty"`
	InflectionForm string   `json:"inflection_form,omitempty"`
	Begin          int      `json:"begin"`
	End            int      `json:"end"`
}

// CoarsePOS returns the first raw part-of-speech tag, or "" when the token has none.
func (t Token) CoarsePOS() string {
	if len(t.PartsOfSpeech) == 0 {
		return ""
	}
	return t.PartsOfSpeech[0]
}

// HasPOSPrefix reports whether the raw tags start with the given tags, e.g. ("動詞", "非自立").
func (t Token) HasPOSPrefix(tags ...string) bool {
	if len(tags) > len(t.PartsOfSpeech) {
		return false
	}
	for i, tag := range tags {
		if t.PartsOfSpeech[i] != tag {
			return false
		}
	}
	return true
}

// IsFunctionWord reports whether the token is a particle or an auxiliary.
func (t Token) IsFunctionWord() bool {
	return t.POS == Particle || t.POS == Auxiliary
}

// IsDictionaryForm reports whether the surface is already the citation form.
func (t Token) IsDictionaryForm() bool {
	return t.Surface == t.DictionaryForm
}

// SenseGroup is one sense of a dictionary entry.
type SenseGroup struct {
	PartsOfSpeech []string `json:"pos,omitempty"`
	Glosses       []string `json:"glosses,omitempty"`
	Misc          []string `json:"misc,omitempty"`
}

// DictionaryEntry represents enriched dictionary info for a term.
type DictionaryEntry struct {
	Source   string       `json:"source,omitempty"`
	Kanji    []string     `json:"kanji,omitempty"`
	Readings []string     `json:"readings,omitempty"`
	Senses   []SenseGroup `json:"senses,omitempty"`
}
