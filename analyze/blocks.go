package analyze

import (
	"strconv"

	"japanesegrammar/grammar"
	"japanesegrammar/lookup"
	"japanesegrammar/model"
)

type BlockType string

const (
	WordBlock    BlockType = "word"
	GrammarBlock BlockType = "grammar"
)

// RuleData is the part of a compiled rule shown next to a grammar block.
type RuleData struct {
	ID          string `json:"id"`
	Pattern     string `json:"pattern"`
	Meaning     string `json:"meaning,omitempty"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level,omitempty"`
}

// Block is one word or grammar match over the token range [Start, End).
type Block struct {
	ID     string        `json:"id"`
	Type   BlockType     `json:"type"`
	Start  int           `json:"start"`
	End    int           `json:"end"`
	Tokens []model.Token `json:"tokens"`

	Word *lookup.WordMatch `json:"word,omitempty"`

	Rule *RuleData `json:"rule,omitempty"`
	// Indices are the tokens the rule consumed; the block range also covers
	// the inner words they touch.
	Indices    []int              `json:"indices,omitempty"`
	InnerWords []lookup.WordMatch `json:"inner_words,omitempty"`
}

func (b Block) intersects(start, end int) bool {
	return b.Start < end && start < b.End
}

// BuildBlocks turns word matches and grammar matches into blocks ordered by start.
// A grammar block widens to cover every word its match touches, so あげ in
// あげます pulls in the whole polite verb.
func BuildBlocks(tokens []model.Token, words []lookup.WordMatch, matches []grammar.Match, m *grammar.Matcher) []Block {
	blocks := make([]Block, 0, len(words)+len(matches))
	for i := range words {
		w := words[i]
		blocks = append(blocks, Block{
			ID:     "word:" + strconv.Itoa(w.Start),
			Type:   WordBlock,
			Start:  w.Start,
			End:    w.End,
			Tokens: tokens[w.Start:w.End],
			Word:   &w,
		})
	}
	for _, match := range matches {
		if len(match.Indices) == 0 {
			continue
		}
		b := Block{
			ID:      "grammar:" + match.RuleID,
			Type:    GrammarBlock,
			Start:   match.Start(),
			End:     match.End(),
			Indices: match.Indices,
			Rule:    &RuleData{ID: match.RuleID},
		}
		if m != nil {
			if r, ok := m.Rule(match.RuleID); ok {
				b.Rule = &RuleData{
					ID:          r.ID,
					Pattern:     r.OriginalText,
					Meaning:     r.Meaning,
					Description: r.Description,
					Level:       r.Level,
				}
			}
		}
		b.InnerWords = lookup.Within(words, b.Start, b.End)
		for _, w := range b.InnerWords {
			b.Start = min(b.Start, w.Start)
			b.End = max(b.End, w.End)
		}
		b.Tokens = tokens[b.Start:b.End]
		blocks = append(blocks, b)
	}
	sortBlocks(blocks)
	return blocks
}
