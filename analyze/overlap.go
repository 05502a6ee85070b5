package analyze

import (
	"slices"
	"strings"

	"japanesegrammar/model"
)

// Segment is a maximal run of tokens covered by exactly the same blocks.
type Segment struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	BlockIDs []string `json:"block_ids,omitempty"`
}

// Overlapping reports whether any block covers the segment.
func (s Segment) Overlapping() bool {
	return len(s.BlockIDs) > 0
}

// GroupTokensByOverlap partitions [0, sentenceLength) into runs whose sorted set
// of covering block ids is identical. Uncovered runs have no ids.
func GroupTokensByOverlap(sentenceLength int, blocks []Block) []Segment {
	var out []Segment
	key := ""
	for i := 0; i < sentenceLength; i++ {
		var ids []string
		for _, b := range blocks {
			if b.Start <= i && i < b.End {
				ids = append(ids, b.ID)
			}
		}
		slices.Sort(ids)
		k := strings.Join(ids, "\x00")
		if len(out) > 0 && k == key {
			out[len(out)-1].End = i + 1
			continue
		}
		key = k
		out = append(out, Segment{Start: i, End: i + 1, BlockIDs: ids})
	}
	return out
}

// Region is a connected set of blocks and the token range they span.
type Region struct {
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Blocks []Block `json:"blocks"`
}

// ExpandConnectedRegion grows [start, end) by absorbing every block that
// intersects it until nothing changes. An empty hover range is widened to the
// single token at start.
func ExpandConnectedRegion(start, end int, blocks []Block) Region {
	if end <= start {
		end = start + 1
	}
	r := Region{Start: start, End: end}
	taken := make([]bool, len(blocks))
	for changed := true; changed; {
		changed = false
		for i, b := range blocks {
			if taken[i] || !b.intersects(r.Start, r.End) {
				continue
			}
			taken[i] = true
			r.Start = min(r.Start, b.Start)
			r.End = max(r.End, b.End)
			changed = true
		}
	}
	for i, b := range blocks {
		if taken[i] {
			r.Blocks = append(r.Blocks, b)
		}
	}
	return r
}

// Dictionary decorates word items with senses. It never affects matching.
type Dictionary interface {
	Lookup(term string) ([]model.SenseGroup, bool)
}

// DisplayItem is one entry of a detail view.
type DisplayItem struct {
	Type     BlockType          `json:"type"`
	Text     string             `json:"text"`
	Start    int                `json:"start"`
	End      int                `json:"end"`
	RuleID   string             `json:"rule_id,omitempty"`
	Meaning  string             `json:"meaning,omitempty"`
	DictForm string             `json:"dict_form,omitempty"`
	Reading  string             `json:"reading,omitempty"`
	Tenses   []string           `json:"tenses,omitempty"`
	Senses   []model.SenseGroup `json:"senses,omitempty"`
}

func (it DisplayItem) key() string {
	if it.Type == GrammarBlock {
		return "grammar:" + it.RuleID
	}
	return "word:" + it.DictForm
}

// FlattenItems lists a grammar block followed by its inner words, and each word
// block on its own. Items with the same rule id or dictionary form are merged
// and their ranges widened. dict may be nil.
func FlattenItems(blocks []Block, dict Dictionary) []DisplayItem {
	var items []DisplayItem
	seen := map[string]int{}
	add := func(it DisplayItem) {
		k := it.key()
		if i, ok := seen[k]; ok {
			items[i].Start = min(items[i].Start, it.Start)
			items[i].End = max(items[i].End, it.End)
			return
		}
		seen[k] = len(items)
		items = append(items, it)
	}
	for _, b := range blocks {
		switch b.Type {
		case GrammarBlock:
			it := DisplayItem{Type: GrammarBlock, Start: b.Start, End: b.End}
			if b.Rule != nil {
				it.RuleID = b.Rule.ID
				it.Text = b.Rule.Pattern
				it.Meaning = b.Rule.Meaning
			}
			add(it)
			for _, w := range b.InnerWords {
				add(wordItem(w.Start, w.End, w.Surface, w.DictForm, w.Reading, w.Tenses))
			}
		case WordBlock:
			if b.Word != nil {
				w := b.Word
				add(wordItem(w.Start, w.End, w.Surface, w.DictForm, w.Reading, w.Tenses))
			}
		}
	}
	if dict != nil {
		for i := range items {
			if items[i].Type != WordBlock {
				continue
			}
			if senses, ok := dict.Lookup(items[i].DictForm); ok {
				items[i].Senses = senses
			}
		}
	}
	return items
}

func wordItem(start, end int, surface, dictForm, reading string, tenses []string) DisplayItem {
	return DisplayItem{
		Type:     WordBlock,
		Text:     surface,
		Start:    start,
		End:      end,
		DictForm: dictForm,
		Reading:  reading,
		Tenses:   tenses,
	}
}

// SelectActive picks the item to focus for a hover over [hoverStart, hoverEnd).
// The longest item starting at hoverStart wins; otherwise the shortest item
// enclosing the hover range.
func SelectActive(items []DisplayItem, hoverStart, hoverEnd int) (DisplayItem, bool) {
	if hoverEnd <= hoverStart {
		hoverEnd = hoverStart + 1
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b DisplayItem) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return b.End - a.End
	})
	for _, it := range sorted {
		if it.Start == hoverStart {
			return it, true
		}
	}
	best, found := DisplayItem{}, false
	for _, it := range sorted {
		if it.Start > hoverStart || it.End < hoverEnd {
			continue
		}
		if !found || it.End-it.Start < best.End-best.Start {
			best, found = it, true
		}
	}
	return best, found
}

// DisplayGroup is a connected run of blocks, or a single plain token when
// BlockIDs is empty.
type DisplayGroup struct {
	Start    int           `json:"start"`
	End      int           `json:"end"`
	Text     string        `json:"text"`
	BlockIDs []string      `json:"block_ids,omitempty"`
	Items    []DisplayItem `json:"items,omitempty"`
}

// GroupForDisplay joins blocks whose ranges intersect into groups and fills the
// gaps with one plain group per uncovered token. Groups come out in token order
// and every token index lands in exactly one group.
func GroupForDisplay(tokens []model.Token, blocks []Block, dict Dictionary) []DisplayGroup {
	sorted := slices.Clone(blocks)
	sortBlocks(sorted)

	var out []DisplayGroup
	next := 0
	plainUntil := func(end int) {
		for ; next < end && next < len(tokens); next++ {
			out = append(out, DisplayGroup{Start: next, End: next + 1, Text: tokens[next].Surface})
		}
	}
	flush := func(members []Block, start, end int) {
		plainUntil(start)
		g := DisplayGroup{Start: start, End: end, Text: surfaceOf(tokens, start, end)}
		for _, b := range members {
			g.BlockIDs = append(g.BlockIDs, b.ID)
		}
		g.Items = FlattenItems(members, dict)
		out = append(out, g)
		next = max(next, end)
	}

	var members []Block
	start, end := 0, 0
	for _, b := range sorted {
		if b.End <= b.Start {
			continue
		}
		if len(members) > 0 && b.Start < end {
			members = append(members, b)
			end = max(end, b.End)
			continue
		}
		if len(members) > 0 {
			flush(members, start, end)
		}
		members = []Block{b}
		start, end = b.Start, b.End
	}
	if len(members) > 0 {
		flush(members, start, end)
	}
	plainUntil(len(tokens))
	return out
}

func surfaceOf(tokens []model.Token, start, end int) string {
	var sb strings.Builder
	for i := max(start, 0); i < end && i < len(tokens); i++ {
		sb.WriteString(tokens[i].Surface)
	}
	return sb.String()
}

// sortBlocks orders by start, longer first, grammar before word on a tie.
func sortBlocks(blocks []Block) {
	slices.SortStableFunc(blocks, func(a, b Block) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		if a.End != b.End {
			return b.End - a.End
		}
		return strings.Compare(string(a.Type), string(b.Type))
	})
}
