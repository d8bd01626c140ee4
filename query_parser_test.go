package facetfish

import (
	"errors"
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/kotaroooo0/facetfish/morphology"
)

func TestQueryParser_ParseEnglish(t *testing.T) {
	cases := []struct {
		text     string
		expected *SearchOptions
	}{
		{
			text:     "",
			expected: &SearchOptions{Colors: []Color{}, Sizes: []Size{}},
		},
		{
			text:     "red",
			expected: &SearchOptions{Colors: []Color{Red}, Sizes: []Size{}},
		},
		{
			text:     "Red or BLACK shirts in small & medium",
			expected: &SearchOptions{Colors: []Color{Red, Black}, Sizes: []Size{Small, Medium}},
		},
		{
			text:     "blues, size L",
			expected: &SearchOptions{Colors: []Color{Blue}, Sizes: []Size{Large}},
		},
		{
			text:     "large red red LARGE",
			expected: &SearchOptions{Colors: []Color{Red}, Sizes: []Size{Large}},
		},
		{
			text:     "s m l",
			expected: &SearchOptions{Colors: []Color{}, Sizes: []Size{Small, Medium, Large}},
		},
		{
			text:     "any shirt",
			expected: &SearchOptions{Colors: []Color{}, Sizes: []Size{}},
		},
		{
			text:     "ＲＥＤ　Ｌ",
			expected: &SearchOptions{Colors: []Color{Red}, Sizes: []Size{Large}},
		},
	}

	parser := NewQueryParser(NewEnglishAnalyzer())
	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v", tt.text), func(t *testing.T) {
			actual, err := parser.Parse(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestQueryParser_ParseUnknownTerm(t *testing.T) {
	parser := NewQueryParser(NewEnglishAnalyzer())
	for _, text := range []string{"purple", "red xxl"} {
		t.Run(text, func(t *testing.T) {
			options, err := parser.Parse(text)
			if !errors.Is(err, ErrUnknownTerm) {
				t.Errorf("error = %v, want %v", err, ErrUnknownTerm)
			}
			if options != nil {
				t.Errorf("options = %v, want nil", options)
			}
		})
	}
}

// fakeDictionary returns the registered morphemes of text, or text itself without a reading.
func fakeDictionary(text string) []morphology.MorphologyToken {
	dictionary := map[string][]morphology.MorphologyToken{
		"赤":  {morphology.NewMorphologyToken("赤", "アカ")},
		"黒":  {morphology.NewMorphologyToken("黒", "クロ")},
		"青":  {morphology.NewMorphologyToken("青", "アオ")},
		"白":  {morphology.NewMorphologyToken("白", "シロ")},
		"黄色": {morphology.NewMorphologyToken("黄色", "キイロ")},
		"赤と黒のシャツ、L": {
			morphology.NewMorphologyToken("赤", "アカ"),
			morphology.NewMorphologyToken("と", "ト"),
			morphology.NewMorphologyToken("黒", "クロ"),
			morphology.NewMorphologyToken("の", "ノ"),
			morphology.NewMorphologyToken("シャツ", "シャツ"),
			morphology.NewMorphologyToken("、", "、"),
			morphology.NewMorphologyToken("L", ""),
		},
		"紫": {morphology.NewMorphologyToken("紫", "ムラサキ")},
	}
	if tokens, ok := dictionary[text]; ok {
		return tokens
	}
	if text == "" {
		return []morphology.MorphologyToken{}
	}
	return []morphology.MorphologyToken{morphology.NewMorphologyToken(text, "")}
}

func TestQueryParser_ParseJapanese(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMorphology := NewMockMorphology(mockCtrl)
	mockMorphology.EXPECT().Analyze(gomock.Any()).DoAndReturn(fakeDictionary).AnyTimes()

	// Given
	parser := NewQueryParser(NewJapaneseAnalyzer(mockMorphology))

	// When
	actual, err := parser.Parse("赤と黒のシャツ、L")
	if err != nil {
		t.Fatal(err)
	}

	// Then
	expected := &SearchOptions{Colors: []Color{Red, Black}, Sizes: []Size{Large}}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}

	// 全角のサイズ記号も半角と同じサイズになる
	actual, err = parser.Parse("Ｌ")
	if err != nil {
		t.Fatal(err)
	}
	expected = &SearchOptions{Colors: []Color{}, Sizes: []Size{Large}}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}

	if _, err := parser.Parse("紫"); !errors.Is(err, ErrUnknownTerm) {
		t.Errorf("error = %v, want %v", err, ErrUnknownTerm)
	}
}
