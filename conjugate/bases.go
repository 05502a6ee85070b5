package conjugate

import "strings"

// Bases is the full set of conjugation stems of one verb. Potential, Passive
// and Causative are the derived verbs in their own dictionary form.
type Bases struct {
	A          string `json:"a"`
	I          string `json:"i"`
	U          string `json:"u"`
	E          string `json:"e"`
	O          string `json:"o"`
	Te         string `json:"te"`
	Ta         string `json:"ta"`
	Imperative string `json:"imperative"`
	Potential  string `json:"potential"`
	Passive    string `json:"passive"`
	Causative  string `json:"causative"`
}

type godanRow struct {
	a, i, e, o, te, ta string
}

// godanRows is keyed by the final kana of the dictionary form. These nine rows
// are the whole of regular godan conjugation.
var godanRows = map[rune]godanRow{
	'う': {"わ", "い", "え", "お", "って", "った"},
	'く': {"か", "き", "け", "こ", "いて", "いた"},
	'ぐ': {"が", "ぎ", "げ", "ご", "いで", "いだ"},
	'す': {"さ", "し", "せ", "そ", "して", "した"},
	'つ': {"た", "ち", "て", "と", "って", "った"},
	'ぬ': {"な", "に", "ね", "の", "んで", "んだ"},
	'む': {"ま", "み", "め", "も", "んで", "んだ"},
	'ぶ': {"ば", "び", "べ", "ぼ", "んで", "んだ"},
	'る': {"ら", "り", "れ", "ろ", "って", "った"},
}

// BasesFor computes the stems of dictionaryForm for the given class. ok is false
// when the verb cannot belong to that class (e.g. an ichidan verb not ending in る).
func BasesFor(dictionaryForm string, class VerbClass) (Bases, bool) {
	v := strings.TrimSpace(dictionaryForm)
	if v == "" {
		return Bases{}, false
	}
	switch class {
	case Ichidan:
		stem, ok := strings.CutSuffix(v, "る")
		if !ok || stem == "" {
			return Bases{}, false
		}
		return Bases{
			A: stem, I: stem, U: v, E: stem + "れ", O: stem + "よ",
			Te: stem + "て", Ta: stem + "た", Imperative: stem + "ろ",
			Potential: stem + "られる", Passive: stem + "られる", Causative: stem + "させる",
		}, true

	case Suru:
		p, ok := strings.CutSuffix(v, "する")
		if !ok {
			return Bases{}, false
		}
		return Bases{
			A: p + "し", I: p + "し", U: v, E: p + "すれ", O: p + "しよ",
			Te: p + "して", Ta: p + "した", Imperative: p + "しろ",
			Potential: p + "できる", Passive: p + "される", Causative: p + "させる",
		}, true

	case Kuru:
		// The stem keeps the script of the input: 来る stays kanji, くる changes its vowel.
		if p, ok := strings.CutSuffix(v, "来る"); ok {
			k := p + "来"
			return Bases{
				A: k, I: k, U: v, E: k + "れ", O: k + "よ",
				Te: k + "て", Ta: k + "た", Imperative: k + "い",
				Potential: k + "られる", Passive: k + "られる", Causative: k + "させる",
			}, true
		}
		if v != "くる" {
			return Bases{}, false
		}
		return Bases{
			A: "こ", I: "き", U: v, E: "くれ", O: "こよ",
			Te: "きて", Ta: "きた", Imperative: "こい",
			Potential: "こられる", Passive: "こられる", Causative: "こさせる",
		}, true
	}

	last, stem := lastKana(v)
	row, ok := godanRows[last]
	if !ok {
		return Bases{}, false
	}
	b := Bases{
		A: stem + row.a, I: stem + row.i, U: v, E: stem + row.e, O: stem + row.o,
		Te: stem + row.te, Ta: stem + row.ta, Imperative: stem + row.e,
		Potential: stem + row.e + "る", Passive: stem + row.a + "れる", Causative: stem + row.a + "せる",
	}
	switch {
	case isIku(v):
		b.Te = stem + "って"
		b.Ta = stem + "った"
	case isUTe(v):
		b.Te = stem + "うて"
		b.Ta = stem + "うた"
	}
	return b, true
}

// isIku matches 行く and its compounds, whose te/ta forms are 行って/行った.
func isIku(v string) bool {
	return strings.HasSuffix(v, "行く") || v == "いく" || strings.HasSuffix(v, "ていく")
}

// isUTe matches the classical う-verbs whose te/ta keep the vowel: 問うて, 請うた.
func isUTe(v string) bool {
	for _, s := range []string{"問う", "請う", "乞う"} {
		if strings.HasSuffix(v, s) {
			return true
		}
	}
	return false
}

// isAru matches ある itself; compounds such as である are left regular.
func isAru(v string) bool {
	return v == "ある" || v == "有る" || v == "在る"
}

func lastKana(v string) (rune, string) {
	runes := []rune(v)
	return runes[len(runes)-1], string(runes[:len(runes)-1])
}
