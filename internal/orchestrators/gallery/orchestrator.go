// Package gallery serves saved composites: filtered listing, authors,
// direct saves and deletion.
package gallery

//go:generate mockgen -destination=mock/mock_service.go -package=gallerymock github.com/KirkDiggler/monster-maker/internal/orchestrators/gallery Service

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/pkg/clock"
	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-maker/internal/repositories/composite"
	"github.com/KirkDiggler/monster-maker/internal/repositories/creature"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

// Service defines the interface for gallery operations
type Service interface {
	ListComposites(ctx context.Context, input *ListCompositesInput) (*ListCompositesOutput, error)
	ListAuthors(ctx context.Context, input *ListAuthorsInput) (*ListAuthorsOutput, error)
	CreateComposite(ctx context.Context, input *CreateCompositeInput) (*CreateCompositeOutput, error)
	DeleteComposite(ctx context.Context, input *DeleteCompositeInput) (*DeleteCompositeOutput, error)
}

// Config holds the dependencies for the gallery orchestrator
type Config struct {
	CompositeRepo composite.Repository
	CreatureRepo  creature.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CompositeRepo == nil {
		vb.RequiredField("CompositeRepo")
	}
	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	compositeRepo composite.Repository
	creatureRepo  creature.Repository
	idGen         idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new gallery orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		compositeRepo: cfg.CompositeRepo,
		creatureRepo:  cfg.CreatureRepo,
		idGen:         cfg.IDGenerator,
		clock:         c,
	}, nil
}

// ListComposites returns composites newest first, narrowed by the filters
func (o *orchestrator) ListComposites(ctx context.Context, input *ListCompositesInput) (*ListCompositesOutput, error) {
	if input == nil {
		input = &ListCompositesInput{}
	}

	out, err := o.compositeRepo.List(ctx, &composite.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list composites")
	}

	families := input.Families
	if slices.Contains(families, FamilyAll) {
		families = nil
	}

	var familyOf map[string]string
	if len(families) > 0 {
		familyOf, err = o.creatureFamilies(ctx)
		if err != nil {
			return nil, err
		}
	}

	filtered := make([]*entities.Composite, 0, len(out.Composites))
	for _, c := range out.Composites {
		if input.Monster != "" && !slices.Contains(c.ParentCreatureNames, input.Monster) {
			continue
		}
		if input.Author != "" && c.AuthorOrDefault() != input.Author {
			continue
		}
		if len(families) > 0 && !anyParentIn(c.ParentCreatureNames, familyOf, families) {
			continue
		}
		filtered = append(filtered, c)
	}

	return &ListCompositesOutput{Composites: filtered}, nil
}

func (o *orchestrator) creatureFamilies(ctx context.Context) (map[string]string, error) {
	out, err := o.creatureRepo.List(ctx, &creature.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}
	familyOf := make(map[string]string, len(out.Creatures))
	for _, c := range out.Creatures {
		familyOf[c.Name] = c.Family
	}
	return familyOf, nil
}

func anyParentIn(parents []string, familyOf map[string]string, families []string) bool {
	for _, p := range parents {
		if f, ok := familyOf[p]; ok && slices.Contains(families, f) {
			return true
		}
	}
	return false
}

// ListAuthors returns the distinct authors, sorted
func (o *orchestrator) ListAuthors(ctx context.Context, _ *ListAuthorsInput) (*ListAuthorsOutput, error) {
	out, err := o.compositeRepo.List(ctx, &composite.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list composites")
	}

	seen := make(map[string]struct{})
	authors := []string{}
	for _, c := range out.Composites {
		a := c.AuthorOrDefault()
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		authors = append(authors, a)
	}
	sort.Strings(authors)

	return &ListAuthorsOutput{Authors: authors}, nil
}

// CreateComposite saves an already rendered composite
func (o *orchestrator) CreateComposite(ctx context.Context, input *CreateCompositeInput) (*CreateCompositeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if len(input.Sprite) == 0 {
		vb.RequiredField("sprite")
	} else if _, err := sprite.FromBytes(input.Sprite); err != nil {
		vb.Field("sprite", "must be a PNG or WebP image")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := &entities.Composite{
		ID:                  o.idGen.Generate(),
		Name:                strings.TrimSpace(input.Name),
		Author:              strings.TrimSpace(input.Author),
		Sprite:              input.Sprite,
		ParentCreatureNames: input.ParentCreatureNames,
		CreatedAt:           o.clock.Now(),
	}
	c.Author = c.AuthorOrDefault()

	out, err := o.compositeRepo.Create(ctx, &composite.CreateInput{Composite: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save composite")
	}

	slog.InfoContext(ctx, "composite saved",
		"composite_id", c.ID,
		"name", c.Name,
		"author", c.Author)

	return &CreateCompositeOutput{Composite: out.Composite}, nil
}

// DeleteComposite removes one composite
func (o *orchestrator) DeleteComposite(ctx context.Context, input *DeleteCompositeInput) (*DeleteCompositeOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("composite ID is required")
	}

	if _, err := o.compositeRepo.Delete(ctx, &composite.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete composite %s", input.ID)
	}
	return &DeleteCompositeOutput{}, nil
}
