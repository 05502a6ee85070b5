package grammar

import (
	"japanesegrammar/model"
	tt "japanesegrammar/tokenize/tokenizetest"
)

// IPA-shaped tokens shared by the compiler and matcher tests.
var (
	tJuice   = tt.Tok("ジュース", "ジュース", "ジュース", "名詞,一般")
	tWo      = tt.Tok("を", "を", "ヲ", "助詞,格助詞,一般")
	tFriend  = tt.Tok("友達", "友達", "トモダチ", "名詞,一般")
	tNi      = tt.Tok("に", "に", "ニ", "助詞,格助詞,一般")
	tAge     = tt.Tok("あげ", "あげる", "アゲ", "動詞,自立")
	tMasu    = tt.Tok("ます", "ます", "マス", "助動詞")
	tMaru    = tt.Tok("。", "。", "。", "記号,句点")
	tAgeru   = tt.Tok("あげる", "あげる", "アゲル", "動詞,自立")
	tYaru    = tt.Tok("やる", "やる", "ヤル", "動詞,自立")
	tSashi   = tt.Tok("差し上げる", "差し上げる", "サシアゲル", "動詞,自立")
	tYou     = tt.Tok("よう", "よう", "ヨウ", "助動詞")
	tTo      = tt.Tok("と", "と", "ト", "助詞,格助詞,引用")
	tOmou    = tt.Tok("思う", "思う", "オモウ", "動詞,自立")
	tIko     = tt.Tok("行こ", "行く", "イコ", "動詞,自立")
	tU       = tt.Tok("う", "う", "ウ", "助動詞")
	tFushi   = tt.Tok("節", "節", "フシ", "名詞,一般")
	tGa      = tt.Tok("が", "が", "ガ", "助詞,格助詞,一般")
	tAru     = tt.Tok("ある", "ある", "アル", "動詞,自立")
	tNamake  = tt.Tok("怠ける", "怠ける", "ナマケル", "動詞,自立")
	tKuse    = tt.Tok("癖", "癖", "クセ", "名詞,一般")
	tNai     = tt.Tok("ない", "ない", "ナイ", "助動詞")
	tTabe    = tt.Tok("食べ", "食べる", "タベ", "動詞,自立")
	tMase    = tt.Tok("ませ", "ます", "マセ", "助動詞")
	tN       = tt.Tok("ん", "ん", "ン", "助動詞")
	tDa      = tt.Tok("だ", "だ", "ダ", "助動詞")
	tDesu    = tt.Tok("です", "です", "デス", "助動詞")
	tStudent = tt.Tok("学生", "学生", "ガクセイ", "名詞,一般")
	tMade    = tt.Tok("まで", "まで", "マデ", "助詞,副助詞")
	tGo      = tt.Tok("五", "五", "ゴ", "名詞,数")
	tJi      = tt.Tok("時", "時", "ジ", "名詞,接尾,助数詞")
	tKaeru   = tt.Tok("帰る", "帰る", "カエル", "動詞,自立")
	tMasho   = tt.Tok("ましょ", "ます", "マショ", "助動詞")
	tMashi   = tt.Tok("まし", "ます", "マシ", "助動詞")
	tTa      = tt.Tok("た", "た", "タ", "助動詞")
	tAi      = tt.Tok("空い", "空く", "アイ", "動詞,自立")
	tKara    = tt.Tok("から", "から", "カラ", "助詞,接続助詞")
	tYon     = tt.Tok("読ん", "読む", "ヨン", "動詞,自立")
	tTe      = tt.Tok("て", "て", "テ", "助詞,接続助詞")
	tDe      = tt.Tok("で", "で", "デ", "助詞,接続助詞")
	tDeCase  = tt.Tok("で", "で", "デ", "助詞,格助詞,一般")
	tIru     = tt.Tok("いる", "いる", "イル", "動詞,非自立")
	tKudasai = tt.Tok("ください", "くださる", "クダサイ", "動詞,非自立")
	tLibrary = tt.Tok("図書館", "図書館", "トショカン", "名詞,一般")
)

func sentence(toks ...model.Token) []model.Token {
	return tt.Sentence(toks...)
}

// newFixtureTokenizer knows every pattern fragment used by the tests.
func newFixtureTokenizer() *tt.Fake {
	return tt.New().
		AddPattern("あげる", tAgeru).
		AddPattern("やる", tYaru).
		AddPattern("差し上げる", tSashi).
		AddPattern("ようと思う", tYou, tTo, tOmou).
		AddPattern("節がある", tFushi, tGa, tAru).
		AddPattern("ない", tNai).
		AddPattern("だ", tDa).
		AddPattern("までに", tMade, tNi).
		AddPattern("ましょう", tMasho, tU).
		AddPattern("ます", tMasu).
		AddPattern("から", tKara).
		AddPattern("う", tU).
		AddPattern("て", tTe).
		AddPattern("ている", tTe, tIru).
		AddPattern("てください", tTe, tKudasai).
		AddPattern("空").
		Add("ジュースを友達にあげます。", tJuice, tWo, tFriend, tNi, tAge, tMasu, tMaru)
}
