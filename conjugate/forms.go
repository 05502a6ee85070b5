package conjugate

import "strings"

// Tense identifies one generated form.
type Tense struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type tenseDef struct {
	Tense
	build func(b Bases, class VerbClass) string
}

func suffix(base func(Bases) string, s string) func(Bases, VerbClass) string {
	return func(b Bases, _ VerbClass) string { return base(b) + s }
}

func baseA(b Bases) string  { return b.A }
func baseI(b Bases) string  { return b.I }
func baseU(b Bases) string  { return b.U }
func baseE(b Bases) string  { return b.E }
func baseO(b Bases) string  { return b.O }
func baseTe(b Bases) string { return b.Te }
func baseTa(b Bases) string { return b.Ta }

// baseNeg is the stem before ない. ある has no あら- negative; its negative is
// the bare adjective ない.
func baseNeg(b Bases) string {
	if isAru(b.U) {
		return ""
	}
	return b.A
}

// tenses is ordered; Detect reports matches in this order.
var tenses = []tenseDef{
	{Tense{"dictionary", "Dictionary"}, suffix(baseU, "")},
	{Tense{"polite", "Polite (Masu)"}, suffix(baseI, "ます")},
	{Tense{"polite_negative", "Polite Negative (Masen)"}, suffix(baseI, "ません")},
	{Tense{"polite_past", "Polite Past (Mashita)"}, suffix(baseI, "ました")},
	{Tense{"polite_past_negative", "Polite Past Negative (Masen Deshita)"}, suffix(baseI, "ませんでした")},
	{Tense{"polite_volitional", "Polite Volitional (Mashou)"}, suffix(baseI, "ましょう")},
	{Tense{"negative", "Negative (Nai)"}, suffix(baseNeg, "ない")},
	{Tense{"past", "Past (Ta)"}, suffix(baseTa, "")},
	{Tense{"past_negative", "Past Negative (Nakatta)"}, suffix(baseNeg, "なかった")},
	{Tense{"te", "Te-Form"}, suffix(baseTe, "")},
	{Tense{"negative_te", "Negative Te-Form (Naide)"}, suffix(baseNeg, "ないで")},
	{Tense{"conditional_tara", "Conditional (Tara)"}, suffix(baseTa, "ら")},
	{Tense{"conditional_ba", "Conditional (Ba)"}, suffix(baseE, "ば")},
	{Tense{"negative_conditional", "Negative Conditional (Nakereba)"}, suffix(baseNeg, "なければ")},
	{Tense{"tari", "Listing (Tari)"}, suffix(baseTa, "り")},
	{Tense{"desiderative", "Desiderative (Tai)"}, suffix(baseI, "たい")},
	{Tense{"desiderative_negative", "Desiderative Negative (Takunai)"}, suffix(baseI, "たくない")},
	{Tense{"desiderative_past", "Desiderative Past (Takatta)"}, suffix(baseI, "たかった")},
	{Tense{"volitional", "Volitional (Ou/You)"}, suffix(baseO, "う")},
	{Tense{"potential", "Potential (Can)"}, func(b Bases, _ VerbClass) string { return b.Potential }},
	{Tense{"ra_nuki", "Potential (Ra-nuki)"}, raNuki},
	{Tense{"imperative", "Imperative"}, func(b Bases, _ VerbClass) string { return b.Imperative }},
	{Tense{"prohibitive", "Prohibitive (Na)"}, suffix(baseU, "な")},
	{Tense{"passive", "Passive (Rareru)"}, func(b Bases, _ VerbClass) string { return b.Passive }},
	{Tense{"causative", "Causative (Saseru)"}, func(b Bases, _ VerbClass) string { return b.Causative }},
	{Tense{"causative_passive", "Causative Passive (Saserareru)"}, func(b Bases, _ VerbClass) string {
		return strings.TrimSuffix(b.Causative, "る") + "られる"
	}},
	{Tense{"causative_passive_short", "Causative Passive (Short)"}, causativePassiveShort},
	{Tense{"progressive", "Progressive (Te Iru)"}, suffix(baseTe, "いる")},
	{Tense{"progressive_polite", "Progressive Polite (Te Imasu)"}, suffix(baseTe, "います")},
	{Tense{"progressive_past", "Progressive Past (Te Ita)"}, suffix(baseTe, "いた")},
	{Tense{"progressive_negative", "Progressive Negative (Te Inai)"}, suffix(baseTe, "いない")},
	{Tense{"te_kudasai", "Request (Te Kudasai)"}, suffix(baseTe, "ください")},
	{Tense{"te_shimau", "Completion (Te Shimau)"}, suffix(baseTe, "しまう")},
	{Tense{"te_oku", "Preparation (Te Oku)"}, suffix(baseTe, "おく")},
	{Tense{"casual_teru", "Casual Progressive (Teru)"}, suffix(baseTe, "る")},
	{Tense{"casual_chau", "Casual Completion (Chau)"}, contract("ちゃう", "じゃう")},
	{Tense{"casual_chatta", "Casual Completion Past (Chatta)"}, contract("ちゃった", "じゃった")},
	{Tense{"casual_toku", "Casual Preparation (Toku)"}, contract("とく", "どく")},
	{Tense{"casual_nakya", "Casual Obligation (Nakya)"}, suffix(baseNeg, "なきゃ")},
	{Tense{"sou", "Appearance (Sou)"}, suffix(baseI, "そう")},
	{Tense{"nagara", "Simultaneous (Nagara)"}, suffix(baseI, "ながら")},
}

// contract builds the colloquial te-form contractions; the voiced variant is
// chosen when the te-form ends in で (読んで → 読んじゃう).
func contract(plain, voiced string) func(Bases, VerbClass) string {
	return func(b Bases, _ VerbClass) string {
		if stem, ok := strings.CutSuffix(b.Te, "で"); ok {
			return stem + voiced
		}
		if stem, ok := strings.CutSuffix(b.Te, "て"); ok {
			return stem + plain
		}
		return ""
	}
}

func raNuki(b Bases, class VerbClass) string {
	switch class {
	case Ichidan:
		return b.A + "れる"
	case Kuru:
		return b.A + "れる"
	}
	return ""
}

// causativePassiveShort is the godan-only 書かされる form; す-verbs never take it.
func causativePassiveShort(b Bases, class VerbClass) string {
	if class != Godan || strings.HasSuffix(b.U, "す") {
		return ""
	}
	return b.A + "される"
}

// Tenses lists every tense AllForms can produce, in table order.
func Tenses() []Tense {
	out := make([]Tense, len(tenses))
	for i, t := range tenses {
		out[i] = t.Tense
	}
	return out
}

// AllForms maps tense ids to the surface strings of dictionaryForm. Forms that do
// not exist for the class are absent. Invalid input yields an empty map.
func AllForms(dictionaryForm string, class VerbClass) map[string]string {
	b, ok := BasesFor(dictionaryForm, class)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(tenses))
	for _, t := range tenses {
		if s := t.build(b, class); s != "" {
			out[t.ID] = s
		}
	}
	return out
}

// Table is a rendered conjugation table.
type Table struct {
	DictionaryForm string    `json:"dictionary_form"`
	Class          VerbClass `json:"class"`
	Bases          Bases     `json:"bases"`
	Forms          []Form    `json:"forms"`
}

// Form is one row of a Table.
type Form struct {
	Tense
	Surface string `json:"surface"`
}

// Conjugate classifies dictionaryForm and renders its table in tense order.
func Conjugate(dictionaryForm string) Table {
	class := Classify(dictionaryForm)
	b, _ := BasesFor(dictionaryForm, class)
	forms := AllForms(dictionaryForm, class)
	tbl := Table{DictionaryForm: dictionaryForm, Class: class, Bases: b}
	for _, t := range tenses {
		if s, ok := forms[t.ID]; ok {
			tbl.Forms = append(tbl.Forms, Form{Tense: t.Tense, Surface: s})
		}
	}
	return tbl
}
