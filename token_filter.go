package facetfish

import (
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		token.Term = strings.ToLower(token.Term)
		r[i] = token
	}
	return NewTokenStream(r)
}

type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[w] = struct{}{}
	}
	return StopWordFilter{
		stopWords: m,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		token.Term = english.Stem(token.Term, false)
		r[i] = token
	}
	return NewTokenStream(r)
}

type RomajiReadingformFilter struct{}

func NewRomajiReadingformFilter() RomajiReadingformFilter {
	return RomajiReadingformFilter{}
}

// 読みがないトークンは元の語句のままにする
func (f RomajiReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Kana != "" {
			token.Term = jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana))
		}
		r[i] = token
	}
	return NewTokenStream(r)
}

type KanaReadingformFilter struct{}

func NewKanaReadingformFilter() KanaReadingformFilter {
	return KanaReadingformFilter{}
}

func (f KanaReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	// カナはTokenizerで既に変換されているのでTokenStreamの変数にセットする
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Kana != "" {
			token.Term = token.Kana
		}
		r[i] = token
	}
	return NewTokenStream(r)
}
