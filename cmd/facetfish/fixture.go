package main

import (
	"github.com/google/uuid"

	"github.com/kotaroooo0/facetfish"
)

// fixtureShirts is the catalog used when no database is configured.
func fixtureShirts() []facetfish.Shirt {
	return []facetfish.Shirt{
		facetfish.NewShirt(uuid.New(), "Red - Small", facetfish.Small, facetfish.Red),
		facetfish.NewShirt(uuid.New(), "Red - Small", facetfish.Small, facetfish.Red),
		facetfish.NewShirt(uuid.New(), "Red - Medium", facetfish.Medium, facetfish.Red),
		facetfish.NewShirt(uuid.New(), "Black - Medium", facetfish.Medium, facetfish.Black),
		facetfish.NewShirt(uuid.New(), "Blue - Large", facetfish.Large, facetfish.Blue),
		facetfish.NewShirt(uuid.New(), "White - Large", facetfish.Large, facetfish.White),
		facetfish.NewShirt(uuid.New(), "Yellow - Small", facetfish.Small, facetfish.Yellow),
	}
}
