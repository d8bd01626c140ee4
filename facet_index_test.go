package facetfish

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestIntersection(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a        PostingList
		b        PostingList
		expected PostingList
	}{
		{a: PostingList{}, b: PostingList{}, expected: PostingList{}},
		{a: PostingList{1, 2, 3}, b: PostingList{}, expected: PostingList{}},
		{a: PostingList{1, 3, 5, 7}, b: PostingList{2, 3, 4, 7, 9}, expected: PostingList{3, 7}},
		{a: PostingList{0, 1, 2}, b: PostingList{0, 1, 2}, expected: PostingList{0, 1, 2}},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("a = %v, b = %v, expected = %v", tt.a, tt.b, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, intersection(tt.a, tt.b)); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a        PostingList
		b        PostingList
		expected PostingList
	}{
		{a: PostingList{}, b: PostingList{}, expected: PostingList{}},
		{a: nil, b: PostingList{4}, expected: PostingList{4}},
		{a: PostingList{1, 3, 5}, b: PostingList{2, 4}, expected: PostingList{1, 2, 3, 4, 5}},
		{a: PostingList{1, 2}, b: PostingList{2, 3}, expected: PostingList{1, 2, 3}},
		{a: PostingList{5, 6}, b: PostingList{1}, expected: PostingList{1, 5, 6}},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("a = %v, b = %v, expected = %v", tt.a, tt.b, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, union(tt.a, tt.b)); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestFacetIndexLookup(t *testing.T) {
	idx := newFacetIndex(getMultipleColorAndSizeShirts())

	cases := []struct {
		colors   []uuid.UUID
		sizes    []uuid.UUID
		expected PostingList
	}{
		{colors: nil, sizes: nil, expected: PostingList{0, 1, 2, 3, 4}},
		{colors: []uuid.UUID{Red.ID}, sizes: nil, expected: PostingList{0, 1, 2}},
		{colors: []uuid.UUID{Blue.ID, Black.ID}, sizes: nil, expected: PostingList{3, 4}},
		{colors: nil, sizes: []uuid.UUID{Medium.ID}, expected: PostingList{2, 3}},
		{colors: []uuid.UUID{Red.ID}, sizes: []uuid.UUID{Medium.ID, Large.ID}, expected: PostingList{2}},
		{colors: []uuid.UUID{White.ID}, sizes: nil, expected: PostingList{}},
		{colors: []uuid.UUID{uuid.New()}, sizes: nil, expected: PostingList{}},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("colors = %v, sizes = %v", tt.colors, tt.sizes), func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, idx.lookup(tt.colors, tt.sizes)); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}
