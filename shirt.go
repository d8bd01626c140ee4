package facetfish

import "github.com/google/uuid"

type Shirt struct {
	ID    uuid.UUID
	Name  string
	Size  Size
	Color Color
}

func NewShirt(id uuid.UUID, name string, size Size, color Color) Shirt {
	return Shirt{
		ID:    id,
		Name:  name,
		Size:  size,
		Color: color,
	}
}
