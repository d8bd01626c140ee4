package facetfish

import "github.com/google/uuid"

// Color is a facet value of a shirt.
type Color struct {
	ID   uuid.UUID
	Name string
}

var (
	Red    = Color{ID: uuid.MustParse("c0a1e5f4-2f4b-4f9e-9b1d-1d2a6f0b7e01"), Name: "Red"}
	Blue   = Color{ID: uuid.MustParse("c0a1e5f4-2f4b-4f9e-9b1d-1d2a6f0b7e02"), Name: "Blue"}
	Yellow = Color{ID: uuid.MustParse("c0a1e5f4-2f4b-4f9e-9b1d-1d2a6f0b7e03"), Name: "Yellow"}
	White  = Color{ID: uuid.MustParse("c0a1e5f4-2f4b-4f9e-9b1d-1d2a6f0b7e04"), Name: "White"}
	Black  = Color{ID: uuid.MustParse("c0a1e5f4-2f4b-4f9e-9b1d-1d2a6f0b7e05"), Name: "Black"}
)

var allColors = []Color{Red, Blue, Yellow, White, Black}

// AllColors returns every legal color in display order.
func AllColors() []Color {
	r := make([]Color, len(allColors))
	copy(r, allColors)
	return r
}

func ColorByID(id uuid.UUID) (Color, bool) {
	for _, c := range allColors {
		if c.ID == id {
			return c, true
		}
	}
	return Color{}, false
}

func (c Color) String() string {
	return c.Name
}
