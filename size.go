package facetfish

import "github.com/google/uuid"

// Size is a facet value of a shirt.
type Size struct {
	ID   uuid.UUID
	Name string
}

var (
	Small  = Size{ID: uuid.MustParse("5e3b9d70-8c1a-4d6e-a2f3-6b4c0e9d1a01"), Name: "Small"}
	Medium = Size{ID: uuid.MustParse("5e3b9d70-8c1a-4d6e-a2f3-6b4c0e9d1a02"), Name: "Medium"}
	Large  = Size{ID: uuid.MustParse("5e3b9d70-8c1a-4d6e-a2f3-6b4c0e9d1a03"), Name: "Large"}
)

var allSizes = []Size{Small, Medium, Large}

// AllSizes returns every legal size in display order.
func AllSizes() []Size {
	r := make([]Size, len(allSizes))
	copy(r, allSizes)
	return r
}

func SizeByID(id uuid.UUID) (Size, bool) {
	for _, s := range allSizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

func (s Size) String() string {
	return s.Name
}
