package creature

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
)

// InMemoryRepository implements Repository in process memory. It backs the
// server when no Redis address is configured.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]*entities.Creature
	byName map[string]string
}

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		byID:   make(map[string]*entities.Creature),
		byName: make(map[string]string),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a creature
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCreature(input.Creature); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := input.Creature
	if _, taken := r.byName[c.Name]; taken {
		return nil, errors.AlreadyExistsf("creature named %s already exists", c.Name)
	}
	r.byID[c.ID] = c
	r.byName[c.Name] = c.ID

	return &CreateOutput{Creature: c}, nil
}

// Get retrieves a creature by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[input.ID]
	if !ok {
		return nil, errors.NotFoundf("creature with ID %s not found", input.ID)
	}
	return &GetOutput{Creature: c}, nil
}

// GetByName retrieves a creature by name
func (r *InMemoryRepository) GetByName(_ context.Context, input *GetByNameInput) (*GetByNameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[input.Name]
	if !ok {
		return nil, errors.NotFoundf("creature named %s not found", input.Name)
	}
	return &GetByNameOutput{Creature: r.byID[id]}, nil
}

// List returns every creature ordered by name
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	creatures := make([]*entities.Creature, 0, len(r.byID))
	for _, c := range r.byID {
		creatures = append(creatures, c)
	}
	sort.Slice(creatures, func(i, j int) bool {
		return creatures[i].Name < creatures[j].Name
	})
	return &ListOutput{Creatures: creatures}, nil
}

// DeleteAll removes every creature
func (r *InMemoryRepository) DeleteAll(_ context.Context, _ *DeleteAllInput) (*DeleteAllOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.byID)
	r.byID = make(map[string]*entities.Creature)
	r.byName = make(map[string]string)
	return &DeleteAllOutput{Deleted: n}, nil
}
