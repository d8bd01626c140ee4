package facetfish

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAnalyze(t *testing.T) {
	cases := []struct {
		analyzer Analyzer
		text     string
		tokens   TokenStream
	}{
		{
			analyzer: NewAnalyzer([]CharFilter{}, NewStandardTokenizer(), []TokenFilter{}),
			text:     "",
			tokens:   NewTokenStream([]Token{}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{}, NewStandardTokenizer(), []TokenFilter{}),
			text:     "small red,shirt!",
			tokens: NewTokenStream([]Token{
				NewToken("small"),
				NewToken("red"),
				NewToken("shirt"),
			}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{}, NewStandardTokenizer(), []TokenFilter{NewLowercaseFilter()}),
			text:     "Red BLACK",
			tokens: NewTokenStream([]Token{
				NewToken("red"),
				NewToken("black"),
			}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{}, NewStandardTokenizer(), []TokenFilter{NewStopWordFilter([]string{"and"})}),
			text:     "red and blue",
			tokens: NewTokenStream([]Token{
				NewToken("red"),
				NewToken("blue"),
			}),
		},
		{
			analyzer: NewAnalyzer([]CharFilter{}, NewStandardTokenizer(), []TokenFilter{NewStemmerFilter()}),
			text:     "Long pens",
			tokens: NewTokenStream([]Token{
				NewToken("long"),
				NewToken("pen"),
			}),
		},
		{
			analyzer: NewEnglishAnalyzer(),
			text:     "Red & Black shirts, size S",
			tokens: NewTokenStream([]Token{
				NewToken("red"),
				NewToken("black"),
				NewToken("s"),
			}),
		},
		{
			analyzer: NewEnglishAnalyzer(),
			text:     "reds/blues",
			tokens: NewTokenStream([]Token{
				NewToken("red"),
				NewToken("blue"),
			}),
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v", tt.text), func(t *testing.T) {
			if diff := cmp.Diff(tt.tokens, tt.analyzer.Analyze(tt.text), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}
