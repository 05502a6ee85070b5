package tokenize

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japanesegrammar/model"
)

var (
	ipaOnce sync.Once
	ipaTok  *Tokenizer
	ipaErr  error
)

func newIPA(t *testing.T) *Tokenizer {
	t.Helper()
	ipaOnce.Do(func() {
		ipaTok, ipaErr = New(Options{Dict: DictIPA, CacheSize: 16})
	})
	require.NoError(t, ipaErr)
	return ipaTok
}

func TestTokenizeVerb(t *testing.T) {
	tk := newIPA(t)
	toks, err := tk.Tokenize(context.Background(), "食べる")
	require.NoError(t, err)
	require.Len(t, toks, 1)

	assert.Equal(t, "食べる", toks[0].Surface)
	assert.Equal(t, "食べる", toks[0].DictionaryForm)
	assert.Equal(t, "食べる", toks[0].NormalizedForm)
	assert.Equal(t, "タベル", toks[0].ReadingForm)
	assert.Equal(t, model.Verb, toks[0].POS)
	assert.Equal(t, "動詞", toks[0].CoarsePOS())
	assert.NotContains(t, toks[0].PartsOfSpeech, "*")
}

func TestTokenizeOffsets(t *testing.T) {
	tk := newIPA(t)
	toks, err := tk.Tokenize(context.Background(), "ジュースを友達にあげます。")
	require.NoError(t, err)
	require.NotEmpty(t, toks)

	assert.Equal(t, 0, toks[0].Begin)
	for i := 1; i < len(toks); i++ {
		assert.Equal(t, toks[i-1].End, toks[i].Begin, "tokens must be contiguous and ordered")
	}
	var surfaces string
	for _, tok := range toks {
		surfaces += tok.Surface
	}
	assert.Equal(t, "ジュースを友達にあげます。", surfaces)
}

func TestTokenizeCacheReturnsCopies(t *testing.T) {
	tk := newIPA(t)
	ctx := context.Background()
	first, err := tk.Tokenize(ctx, "本を読む")
	require.NoError(t, err)
	first[0].Surface = "mutated"

	second, err := tk.Tokenize(ctx, "本を読む")
	require.NoError(t, err)
	assert.Equal(t, "本", second[0].Surface)
}

func TestTokenizeEmpty(t *testing.T) {
	tk := newIPA(t)
	toks, err := tk.Tokenize(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestTokenizeErrors(t *testing.T) {
	var nilTok *Tokenizer
	_, err := nilTok.Tokenize(context.Background(), "本")
	require.Error(t, err)
	assert.True(t, IsTokenizationError(err))
	assert.True(t, errors.Is(err, ErrNotInitialized))

	tk := newIPA(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tk.Tokenize(ctx, "本")
	var te *TokenizationError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "本", te.Text)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewUnknownDict(t *testing.T) {
	_, err := New(Options{Dict: "neologd"})
	assert.Error(t, err)
}
