package model

import "encoding/json"

// POS is the closed set of coarse parts of speech the matcher reasons about.
// The raw tokenizer tags stay on Token.PartsOfSpeech for rules that key on exact spellings.
type POS int

const (
	OtherPOS POS = iota
	Noun
	Verb
	Adjective
	AdjectivalNoun
	Adverb
	Particle
	Auxiliary
	Conjunction
	Prefix
	Suffix
	Pronoun
	Interjection
	Symbol
)

var posNames = map[POS]string{
	OtherPOS:       "other",
	Noun:           "noun",
	Verb:           "verb",
	Adjective:      "adjective",
	AdjectivalNoun: "adjectival_noun",
	Adverb:         "adverb",
	Particle:       "particle",
	Auxiliary:      "auxiliary",
	Conjunction:    "conjunction",
	Prefix:         "prefix",
	Suffix:         "suffix",
	Pronoun:        "pronoun",
	Interjection:   "interjection",
	Symbol:         "symbol",
}

// coarseTags maps IPA and UniDic first-level tags onto POS.
var coarseTags = map[string]POS{
	"名詞":   Noun,
	"動詞":   Verb,
	"形容詞":  Adjective,
	"形状詞":  AdjectivalNoun,
	"副詞":   Adverb,
	"助詞":   Particle,
	"助動詞":  Auxiliary,
	"接続詞":  Conjunction,
	"接頭詞":  Prefix,
	"接頭辞":  Prefix,
	"接尾辞":  Suffix,
	"代名詞":  Pronoun,
	"感動詞":  Interjection,
	"記号":   Symbol,
	"補助記号": Symbol,
	"空白":   Symbol,
}

// ParsePOS maps a raw first-level tag to POS.
func ParsePOS(tag string) POS {
	if p, ok := coarseTags[tag]; ok {
		return p
	}
	return OtherPOS
}

// IsContent reports whether the POS carries lexical meaning.
func (p POS) IsContent() bool {
	switch p {
	case Noun, Verb, Adjective, AdjectivalNoun, Adverb, Pronoun:
		return true
	}
	return false
}

func (p POS) String() string {
	if s, ok := posNames[p]; ok {
		return s
	}
	return "other"
}

func (p POS) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
