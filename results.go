package facetfish

type ColorCount struct {
	Color Color
	Count int
}

type SizeCount struct {
	Size  Size
	Count int
}

// SearchResults holds the matched shirts in catalog order and one count per
// registered color and size.
type SearchResults struct {
	Shirts      []Shirt
	ColorCounts []ColorCount
	SizeCounts  []SizeCount
}

func (r SearchResults) clone() SearchResults {
	return SearchResults{
		Shirts:      append(make([]Shirt, 0, len(r.Shirts)), r.Shirts...),
		ColorCounts: append(make([]ColorCount, 0, len(r.ColorCounts)), r.ColorCounts...),
		SizeCounts:  append(make([]SizeCount, 0, len(r.SizeCounts)), r.SizeCounts...),
	}
}
