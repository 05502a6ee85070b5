package conjugate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		verb     string
		expected VerbClass
	}{
		{"見る", Ichidan},
		{"寝る", Ichidan},
		{"出る", Ichidan},
		{"出来る", Ichidan},
		{"食べる", Ichidan},
		{"起きる", Ichidan},
		{"信じる", Ichidan},
		{"いる", Ichidan},
		{"走る", Godan},
		{"帰る", Godan},
		{"入る", Godan},
		{"知る", Godan},
		{"しゃべる", Godan},
		{"持ち帰る", Godan},
		{"分かる", Godan},
		{"書く", Godan},
		{"泳ぐ", Godan},
		{"話す", Godan},
		{"待つ", Godan},
		{"死ぬ", Godan},
		{"飲む", Godan},
		{"遊ぶ", Godan},
		{"買う", Godan},
		{"めくる", Godan},
		{"する", Suru},
		{"勉強する", Suru},
		{"コピーする", Suru},
		{"来る", Kuru},
		{"くる", Kuru},
		{"やって来る", Kuru},
		{"", Godan},
		{"abc", Godan},
	}
	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.verb))
		})
	}
}

func TestClassFromInflection(t *testing.T) {
	tests := []struct {
		tag   string
		class VerbClass
		ok    bool
	}{
		{"一段", Ichidan, true},
		{"下一段-バ行", Ichidan, true},
		{"上一段-マ行", Ichidan, true},
		{"五段・カ行イ音便", Godan, true},
		{"五段-ラ行", Godan, true},
		{"サ変・スル", Suru, true},
		{"サ行変格", Suru, true},
		{"カ変・来ル", Kuru, true},
		{"カ変・クル", Kuru, true},
		{"特殊・マス", Godan, false},
		{"", Godan, false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			class, ok := ClassFromInflection(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.class, class)
		})
	}
}

func TestVerbClassString(t *testing.T) {
	assert.Equal(t, "ichidan", Ichidan.String())
	assert.Equal(t, "godan", Godan.String())
	assert.Equal(t, "suru", Suru.String())
	assert.Equal(t, "kuru", Kuru.String())
}
