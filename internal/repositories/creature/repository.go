// Package creature defines persistence for the base creatures parts are
// taken from
package creature

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturemock github.com/KirkDiggler/monster-maker/internal/repositories/creature Repository

import (
	"context"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
)

const errCreatureNil = "creature cannot be nil"

// Repository defines the interface for creature persistence
type Repository interface {
	// Create stores a new creature
	// Returns errors.InvalidArgument when ID or name is missing
	// Returns errors.AlreadyExists when the name is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a creature by ID
	// Returns errors.NotFound if the creature doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// GetByName retrieves a creature by its unique name
	// Returns errors.NotFound if no creature has the name
	GetByName(ctx context.Context, input *GetByNameInput) (*GetByNameOutput, error)

	// List returns every creature ordered by name
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// DeleteAll removes every creature
	DeleteAll(ctx context.Context, input *DeleteAllInput) (*DeleteAllOutput, error)
}

// CreateInput defines the input for creating a creature
type CreateInput struct {
	Creature *entities.Creature
}

// CreateOutput defines the output for creating a creature
type CreateOutput struct {
	Creature *entities.Creature
}

// GetInput defines the input for getting a creature
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a creature
type GetOutput struct {
	Creature *entities.Creature
}

// GetByNameInput defines the input for looking a creature up by name
type GetByNameInput struct {
	Name string
}

// GetByNameOutput defines the output for looking a creature up by name
type GetByNameOutput struct {
	Creature *entities.Creature
}

// ListInput defines the input for listing creatures
type ListInput struct{}

// ListOutput defines the output for listing creatures
type ListOutput struct {
	Creatures []*entities.Creature
}

// DeleteAllInput defines the input for removing every creature
type DeleteAllInput struct{}

// DeleteAllOutput defines the output for removing every creature
type DeleteAllOutput struct {
	Deleted int
}

func validateCreature(c *entities.Creature) error {
	if c == nil {
		return errors.InvalidArgument(errCreatureNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRequired("name", c.Name, vb)
	return vb.Build()
}
