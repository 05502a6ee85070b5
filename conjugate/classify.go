// Package conjugate classifies Japanese verbs and generates their conjugated surface forms.
package conjugate

import (
	"strings"

	"japanesegrammar/kana"
)

// VerbClass is one of the four Japanese verb inflection classes.
type VerbClass int

const (
	Godan VerbClass = iota
	Ichidan
	Suru
	Kuru
)

func (c VerbClass) String() string {
	switch c {
	case Ichidan:
		return "ichidan"
	case Suru:
		return "suru"
	case Kuru:
		return "kuru"
	}
	return "godan"
}

func (c VerbClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ichidanExceptions are kanji-stem ichidan verbs whose stem gives no phonetic hint.
// Matched exactly.
var ichidanExceptions = map[string]struct{}{
	"見る": {}, "寝る": {}, "出る": {}, "居る": {}, "着る": {}, "似る": {},
	"煮る": {}, "干る": {}, "得る": {}, "経る": {}, "射る": {}, "鋳る": {},
	"診る": {}, "観る": {}, "視る": {}, "看る": {}, "出来る": {},
}

// godanExceptions are godan verbs ending in an i-row or e-row syllable + る.
// Matched by suffix so that compounds (飛び込み走る, 持ち帰る) are caught too.
var godanExceptions = []string{
	"走る", "帰る", "入る", "切る", "知る", "要る", "蹴る", "滑る", "しゃべる",
	"喋る", "はしる", "限る", "焦る", "湿る", "混じる", "参る", "減る", "散る",
}

// Classify guesses the inflection class of a dictionary-form verb. Unknown or
// empty input falls through to Godan. Extend the exception lists, not the
// phonetic rule, when a misclassification is found.
func Classify(dictionaryForm string) VerbClass {
	v := strings.TrimSpace(dictionaryForm)
	switch v {
	case "する":
		return Suru
	case "来る", "くる":
		return Kuru
	}
	if _, ok := ichidanExceptions[v]; ok {
		return Ichidan
	}
	if isCompoundSuru(v) {
		return Suru
	}
	if strings.HasSuffix(v, "来る") {
		return Kuru
	}
	if !strings.HasSuffix(v, "る") {
		return Godan
	}
	prev, _ := kana.LastRune(strings.TrimSuffix(v, "る"))
	if kana.IsIRow(prev) || kana.IsERow(prev) {
		for _, g := range godanExceptions {
			if strings.HasSuffix(v, g) {
				return Godan
			}
		}
		return Ichidan
	}
	return Godan
}

// isCompoundSuru matches noun + する verbs such as 勉強する or コピーする.
func isCompoundSuru(v string) bool {
	prefix, ok := strings.CutSuffix(v, "する")
	if !ok || prefix == "" {
		return false
	}
	last, _ := kana.LastRune(prefix)
	return kana.IsKanji(last) || kana.IsKatakana(last)
}

// ClassFromInflection maps a tokenizer inflection-type tag (IPA 一段 / 五段・カ行イ音便 /
// サ変・スル / カ変・来ル, or the UniDic 上一段-マ行 / 五段-カ行 / サ行変格 / カ行変格
// spellings) to a VerbClass.
func ClassFromInflection(tag string) (VerbClass, bool) {
	switch {
	case tag == "":
		return Godan, false
	case strings.HasPrefix(tag, "サ変"), strings.HasPrefix(tag, "サ行変格"):
		return Suru, true
	case strings.HasPrefix(tag, "カ変"), strings.HasPrefix(tag, "カ行変格"):
		return Kuru, true
	case strings.HasPrefix(tag, "五段"):
		return Godan, true
	case strings.Contains(tag, "一段") && !strings.HasPrefix(tag, "文語"):
		return Ichidan, true
	}
	return Godan, false
}
