package morphology

//go:generate mockgen -source=morphology.go -destination=../mock_morphology.go -package=facetfish

type Morphology interface {
	Analyze(string) []MorphologyToken
}

// MorphologyToken is a surface form with its katakana reading.
type MorphologyToken struct {
	Term string
	Kana string
}

func NewMorphologyToken(term, kana string) MorphologyToken {
	return MorphologyToken{
		Term: term,
		Kana: kana,
	}
}
