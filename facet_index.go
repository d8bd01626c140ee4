package facetfish

import "github.com/google/uuid"

// PostingList is an ascending list of catalog positions.
type PostingList []int

// facetIndex maps every color and size id to the positions of the shirts holding it.
// It is built once and only read afterwards.
type facetIndex struct {
	all    PostingList
	colors map[uuid.UUID]PostingList
	sizes  map[uuid.UUID]PostingList
}

func newFacetIndex(shirts []Shirt) facetIndex {
	idx := facetIndex{
		all:    make(PostingList, len(shirts)),
		colors: make(map[uuid.UUID]PostingList),
		sizes:  make(map[uuid.UUID]PostingList),
	}
	// positions are appended in catalog order so every list stays sorted
	for pos, shirt := range shirts {
		idx.all[pos] = pos
		idx.colors[shirt.Color.ID] = append(idx.colors[shirt.Color.ID], pos)
		idx.sizes[shirt.Size.ID] = append(idx.sizes[shirt.Size.ID], pos)
	}
	return idx
}

// lookup returns the positions of the shirts matching both filters.
func (idx facetIndex) lookup(colorIDs, sizeIDs []uuid.UUID) PostingList {
	return intersection(
		idx.candidates(idx.colors, colorIDs),
		idx.candidates(idx.sizes, sizeIDs),
	)
}

// candidates unions the posting lists of ids. No ids means no restriction.
func (idx facetIndex) candidates(postings map[uuid.UUID]PostingList, ids []uuid.UUID) PostingList {
	if len(ids) == 0 {
		return idx.all
	}
	r := PostingList{}
	for _, id := range ids {
		r = union(r, postings[id])
	}
	return r
}

// intersection returns the set intersection between a and b.
// a and b have to be sorted in ascending order and contain no duplicates.
func intersection(a, b PostingList) PostingList {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	r := make(PostingList, 0, maxLen)
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			i++
		} else if a[i] > b[j] {
			j++
		} else {
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}

// union returns the set union between a and b.
// a and b have to be sorted in ascending order and contain no duplicates.
func union(a, b PostingList) PostingList {
	r := make(PostingList, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			r = append(r, a[i])
			i++
		} else if a[i] > b[j] {
			r = append(r, b[j])
			j++
		} else {
			r = append(r, a[i])
			i++
			j++
		}
	}
	r = append(r, a[i:]...)
	return append(r, b[j:]...)
}
