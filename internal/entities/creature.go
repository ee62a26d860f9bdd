// Package entities provides core data structures for monster-maker.
package entities

import (
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// DefaultAuthor is recorded on composites saved without an author.
const DefaultAuthor = "Anonymous"

// Creature is a base sprite with its dissectable parts. Part images are
// transparent rasters keyed by part name ("head", "torso", ...).
type Creature struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Family string            `json:"family,omitempty"`
	Sprite []byte            `json:"sprite"`
	Parts  map[string][]byte `json:"parts"`
}

// GetID returns the creature ID
func (c *Creature) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Creature) GetType() string {
	return "creature"
}

// PartNames returns the creature's part names in lexical order
func (c *Creature) PartNames() []string {
	names := make([]string, 0, len(c.Parts))
	for name := range c.Parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Composite is a user-saved creature built from placed parts.
type Composite struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Author              string    `json:"author"`
	Sprite              []byte    `json:"sprite"`
	ParentCreatureNames []string  `json:"parent_creature_names"`
	CreatedAt           time.Time `json:"created_at"`
}

// GetID returns the composite ID
func (c *Composite) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Composite) GetType() string {
	return "composite"
}

// AuthorOrDefault returns the author, falling back to DefaultAuthor
func (c *Composite) AuthorOrDefault() string {
	if c.Author == "" {
		return DefaultAuthor
	}
	return c.Author
}

var (
	_ core.Entity = (*Creature)(nil)
	_ core.Entity = (*Composite)(nil)
)
