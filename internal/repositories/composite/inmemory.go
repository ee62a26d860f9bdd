package composite

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
)

// InMemoryRepository implements Repository in process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Composite
}

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Composite),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a composite
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateComposite(input.Composite); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Composite.ID] = input.Composite
	return &CreateOutput{Composite: input.Composite}, nil
}

// Get retrieves a composite by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("composite ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.store[input.ID]
	if !ok {
		return nil, errors.NotFoundf("composite with ID %s not found", input.ID)
	}
	return &GetOutput{Composite: c}, nil
}

// List returns every composite, newest first
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	composites := make([]*entities.Composite, 0, len(r.store))
	for _, c := range r.store {
		composites = append(composites, c)
	}
	sort.Slice(composites, func(i, j int) bool {
		a, b := composites[i], composites[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return &ListOutput{Composites: composites}, nil
}

// Delete removes one composite
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("composite ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.ID]; !ok {
		return nil, errors.NotFoundf("composite with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}

// DeleteAll removes every composite
func (r *InMemoryRepository) DeleteAll(_ context.Context, _ *DeleteAllInput) (*DeleteAllOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.store)
	r.store = make(map[string]*entities.Composite)
	return &DeleteAllOutput{Deleted: n}, nil
}
