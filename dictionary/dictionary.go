// Package dictionary serves word senses from JMdict.
package dictionary

import (
	"fmt"
	"os"

	jmdict "github.com/yomidevs/jmdict-go"

	"japanesegrammar/kana"
	"japanesegrammar/logger"
	"japanesegrammar/model"
)

const source = "JMdict"

// Store is an in-memory JMdict index keyed by kanji expression and reading.
// It is read-only after construction.
type Store struct {
	entries []jmdict.JmdictEntry
	index   map[string][]int
}

// Load parses a JMdict XML file.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	dict, _, err := jmdict.LoadJmdict(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load %s: %w", path, err)
	}
	s := New(dict.Entries)
	logger.Logger.Info().Str("path", path).Int("entries", len(s.entries)).Msg("jmdict loaded")
	return s, nil
}

// New indexes entries. Readings are also indexed in hiragana so katakana
// tokenizer readings find them.
func New(entries []jmdict.JmdictEntry) *Store {
	s := &Store{entries: entries, index: make(map[string][]int)}
	for i, e := range entries {
		for _, k := range e.Kanji {
			s.add(k.Expression, i)
		}
		for _, r := range e.Readings {
			s.add(r.Reading, i)
			s.add(kana.KatakanaToHiragana(r.Reading), i)
		}
	}
	return s
}

func (s *Store) add(key string, i int) {
	if key == "" {
		return
	}
	ids := s.index[key]
	if len(ids) > 0 && ids[len(ids)-1] == i {
		return
	}
	s.index[key] = append(ids, i)
}

// Len is the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns every entry indexed under term, trying the hiragana spelling
// when the term itself is unknown.
func (s *Store) Entries(term string) []model.DictionaryEntry {
	if s == nil || term == "" {
		return nil
	}
	ids, ok := s.index[term]
	if !ok {
		ids = s.index[kana.KatakanaToHiragana(term)]
	}
	out := make([]model.DictionaryEntry, 0, len(ids))
	for _, i := range ids {
		out = append(out, convertEntry(&s.entries[i]))
	}
	return out
}

// Lookup returns the senses of every entry for term.
func (s *Store) Lookup(term string) ([]model.SenseGroup, bool) {
	var senses []model.SenseGroup
	for _, e := range s.Entries(term) {
		senses = append(senses, e.Senses...)
	}
	return senses, len(senses) > 0
}

func convertEntry(jm *jmdict.JmdictEntry) model.DictionaryEntry {
	out := model.DictionaryEntry{Source: source}
	for _, k := range jm.Kanji {
		out.Kanji = append(out.Kanji, k.Expression)
	}
	for _, r := range jm.Readings {
		out.Readings = append(out.Readings, r.Reading)
	}
	for _, sense := range jm.Sense {
		g := model.SenseGroup{PartsOfSpeech: sense.PartsOfSpeech, Misc: sense.Misc}
		for _, gl := range sense.Glossary {
			g.Glosses = append(g.Glosses, gl.Content)
		}
		out.Senses = append(out.Senses, g)
	}
	return out
}
