package gallery

import (
	"github.com/KirkDiggler/monster-maker/internal/entities"
)

// FamilyAll disables the family filter
const FamilyAll = "ALL"

// ListCompositesInput filters the gallery. Empty fields match everything.
type ListCompositesInput struct {
	// Monster keeps composites with this parent creature
	Monster string
	// Author keeps composites by this author; unnamed ones count as Anonymous
	Author string
	// Families keeps composites with any parent in one of these families
	Families []string
}

// ListCompositesOutput defines the response for listing composites
type ListCompositesOutput struct {
	Composites []*entities.Composite
}

// ListAuthorsInput defines the request for listing authors
type ListAuthorsInput struct{}

// ListAuthorsOutput holds the distinct authors in order
type ListAuthorsOutput struct {
	Authors []string
}

// CreateCompositeInput defines the request for saving a composite
type CreateCompositeInput struct {
	Name                string
	Author              string
	Sprite              []byte
	ParentCreatureNames []string
}

// CreateCompositeOutput defines the response for saving a composite
type CreateCompositeOutput struct {
	Composite *entities.Composite
}

// DeleteCompositeInput defines the request for deleting a composite
type DeleteCompositeInput struct {
	ID string
}

// DeleteCompositeOutput defines the response for deleting a composite
type DeleteCompositeOutput struct{}
