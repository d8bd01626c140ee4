package facetfish

import "github.com/google/uuid"

type SearchEngine struct {
	shirts []Shirt
	index  facetIndex
}

// NewSearchEngine keeps shirts as the catalog. The slice must not be modified
// while the engine is in use.
func NewSearchEngine(shirts []Shirt) *SearchEngine {
	return &SearchEngine{
		shirts: shirts,
		index:  newFacetIndex(shirts),
	}
}

// 1, オプションを検証する
// 2, 色とサイズそれぞれのポスティングリストの和集合を取り、両者の積集合を結果とする
// 3, 結果のシャツから色ごと、サイズごとの件数を数える
// 4, 全ての色とサイズについて、結果に含まれないものは0件として埋める
func (e *SearchEngine) Search(options *SearchOptions) (SearchResults, error) {
	if err := options.validate(); err != nil {
		return SearchResults{}, err
	}

	positions := e.index.lookup(options.colorIDs(), options.sizeIDs())
	shirts := make([]Shirt, len(positions))
	for i, pos := range positions {
		shirts[i] = e.shirts[pos]
	}

	return SearchResults{
		Shirts:      shirts,
		ColorCounts: countColors(shirts),
		SizeCounts:  countSizes(shirts),
	}, nil
}

func countColors(shirts []Shirt) []ColorCount {
	counts := make(map[uuid.UUID]int)
	for _, s := range shirts {
		counts[s.Color.ID]++
	}
	r := make([]ColorCount, len(allColors))
	for i, c := range allColors {
		r[i] = ColorCount{Color: c, Count: counts[c.ID]}
	}
	return r
}

func countSizes(shirts []Shirt) []SizeCount {
	counts := make(map[uuid.UUID]int)
	for _, s := range shirts {
		counts[s.Size.ID]++
	}
	r := make([]SizeCount, len(allSizes))
	for i, s := range allSizes {
		r[i] = SizeCount{Size: s, Count: counts[s.ID]}
	}
	return r
}
