package facetfish

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}

var englishStopWords = []string{
	"a", "an", "and", "or", "the", "in", "of", "with", "any", "all",
	"shirt", "shirts", "size", "sizes", "color", "colors", "colour", "colours",
}

// NewEnglishAnalyzer lowercases, drops filler words and stems.
func NewEnglishAnalyzer() Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewWidthCharFilter(), NewMappingCharFilter(map[string]string{"&": " and ", "/": " "})},
		NewStandardTokenizer(),
		[]TokenFilter{NewLowercaseFilter(), NewStopWordFilter(englishStopWords), NewStemmerFilter()},
	)
}

var japaneseStopWords = []string{
	"の", "と", "や", "で", "が", "は", "を", "か", "、", "。",
	"シャツ", "サイズ", "色",
}

// NewJapaneseAnalyzer splits text into morphemes and compares them by their romaji reading.
func NewJapaneseAnalyzer(morphology Morphology) Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewWidthCharFilter()},
		NewMorphologicalTokenizer(morphology),
		[]TokenFilter{NewStopWordFilter(japaneseStopWords), NewRomajiReadingformFilter(), NewLowercaseFilter()},
	)
}
