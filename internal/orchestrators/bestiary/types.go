package bestiary

import (
	"github.com/KirkDiggler/monster-maker/internal/entities"
)

// ListCreaturesInput defines the request for listing creatures
type ListCreaturesInput struct{}

// ListCreaturesOutput defines the response for listing creatures
type ListCreaturesOutput struct {
	Creatures []*entities.Creature
}

// CreateCreatureInput defines the request for adding a creature
type CreateCreatureInput struct {
	Name   string
	Family string
	Sprite []byte
	Parts  map[string][]byte
}

// CreateCreatureOutput defines the response for adding a creature
type CreateCreatureOutput struct {
	Creature *entities.Creature
}

// SeedInput defines the request for seeding creatures from the asset tree
type SeedInput struct{}

// SeedOutput lists which creatures were added and which already existed
type SeedOutput struct {
	Added   []string
	Skipped []string
}

// WipeInput defines the request for removing all creatures and composites
type WipeInput struct{}

// WipeOutput reports how many records were removed
type WipeOutput struct {
	Creatures  int
	Composites int
}
