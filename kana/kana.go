// Package kana holds script helpers shared by the tokenizer adapter and the conjugation tables.
package kana

import "unicode/utf8"

var (
	iRow = runeSet("いきぎしじちぢにひびぴみりゐ")
	eRow = runeSet("えけげせぜてでねへべぺめれゑ")
)

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, utf8.RuneCountInString(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

// IsIRow reports whether r is a hiragana syllable of the i-row (い段).
func IsIRow(r rune) bool {
	_, ok := iRow[r]
	return ok
}

// IsERow reports whether r is a hiragana syllable of the e-row (え段).
func IsERow(r rune) bool {
	_, ok := eRow[r]
	return ok
}

func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) || r == '々'
}

// IsKana returns true if rune is Hiragana or Katakana
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// ContainsKanji reports whether any rune of s is a kanji.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// KatakanaToHiragana converts katakana to hiragana, leaving everything else untouched.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// LastRune returns the final rune of s and s without it.
func LastRune(s string) (rune, string) {
	r, size := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError {
		return 0, s
	}
	return r, s[:len(s)-size]
}
