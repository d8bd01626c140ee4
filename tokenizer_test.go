package facetfish

import (
	"fmt"
	"reflect"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/kotaroooo0/facetfish/morphology"
)

func TestStandardTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected TokenStream
	}{
		{
			text:     "red, blue;black",
			expected: TokenStream{Tokens: []Token{{Term: "red"}, {Term: "blue"}, {Term: "black"}}},
		},
		{
			text:     "  ",
			expected: TokenStream{Tokens: []Token{}},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			tr := NewStandardTokenizer()
			if got := tr.Tokenize(tt.text); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("StandardTokenizer.Tokenize() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMorphologicalTokenizerTokenize(t *testing.T) {
	cases := []struct {
		text     string
		expected TokenStream
	}{
		{
			text: "赤のシャツ",
			expected: TokenStream{
				Tokens: []Token{
					{Term: "赤", Kana: "アカ"},
					{Term: "の", Kana: "ノ"},
					{Term: "シャツ", Kana: "シャツ"},
				},
			},
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			// Mock
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			mockMorphology := NewMockMorphology(mockCtrl)

			// Given
			tokenizer := NewMorphologicalTokenizer(mockMorphology)
			mockMorphology.EXPECT().Analyze(tt.text).Return([]morphology.MorphologyToken{
				morphology.NewMorphologyToken("赤", "アカ"),
				morphology.NewMorphologyToken("の", "ノ"),
				morphology.NewMorphologyToken("シャツ", "シャツ"),
			})

			// When
			actual := tokenizer.Tokenize(tt.text)

			// Then
			if diff := cmp.Diff(actual, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}
