// Package composite defines persistence for saved composites
package composite

//go:generate mockgen -destination=mock/mock_repository.go -package=compositemock github.com/KirkDiggler/monster-maker/internal/repositories/composite Repository

import (
	"context"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
)

// Repository defines the interface for composite persistence
type Repository interface {
	// Create stores a composite
	// Returns errors.InvalidArgument when ID, name or sprite is missing
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a composite by ID
	// Returns errors.NotFound if the composite doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns every composite, newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes one composite
	// Returns errors.NotFound if the composite doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// DeleteAll removes every composite
	DeleteAll(ctx context.Context, input *DeleteAllInput) (*DeleteAllOutput, error)
}

// CreateInput defines the input for creating a composite
type CreateInput struct {
	Composite *entities.Composite
}

// CreateOutput defines the output for creating a composite
type CreateOutput struct {
	Composite *entities.Composite
}

// GetInput defines the input for getting a composite
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a composite
type GetOutput struct {
	Composite *entities.Composite
}

// ListInput defines the input for listing composites
type ListInput struct{}

// ListOutput defines the output for listing composites
type ListOutput struct {
	Composites []*entities.Composite
}

// DeleteInput defines the input for deleting a composite
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a composite
type DeleteOutput struct{}

// DeleteAllInput defines the input for removing every composite
type DeleteAllInput struct{}

// DeleteAllOutput defines the output for removing every composite
type DeleteAllOutput struct {
	Deleted int
}

func validateComposite(c *entities.Composite) error {
	if c == nil {
		return errors.InvalidArgument("composite cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRequired("name", c.Name, vb)
	if len(c.Sprite) == 0 {
		vb.RequiredField("sprite")
	}
	return vb.Build()
}
