package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// 品詞細分類が空白のトークンは検索語にならない
const whitespace = "空白"

// readingIndex is the position of the katakana reading in IPA dictionary features.
const readingIndex = 7

// Kagome wraps github.com/ikawaha/kagome so that callers do not depend on it directly.
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
	}, nil
}

// Analyze splits text in search mode. Unknown words keep their surface as reading.
func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, tokenizer.Search)
	r := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > 1 && features[1] == whitespace {
			continue
		}
		kana := token.Surface
		if len(features) > readingIndex && features[readingIndex] != "*" {
			kana = features[readingIndex]
		}
		r = append(r, NewMorphologyToken(token.Surface, kana))
	}
	return r
}
