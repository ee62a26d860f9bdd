// Package bestiary manages the base creatures: listing, adding, seeding
// them from the asset tree and wiping the store.
package bestiary

//go:generate mockgen -destination=mock/mock_service.go -package=bestiarymock github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary Service

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-maker/internal/repositories/composite"
	"github.com/KirkDiggler/monster-maker/internal/repositories/creature"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

// Asset tree layout, relative to the assets root
const (
	monstersGlob = "monsters/*.png"
	partsDir     = "parts"
	pngExt       = ".png"
)

// Service defines the interface for creature management
type Service interface {
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)
	CreateCreature(ctx context.Context, input *CreateCreatureInput) (*CreateCreatureOutput, error)
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)
	Wipe(ctx context.Context, input *WipeInput) (*WipeOutput, error)
}

// Config holds the dependencies for the bestiary orchestrator
type Config struct {
	CreatureRepo  creature.Repository
	CompositeRepo composite.Repository
	IDGenerator   idgen.Generator
	// Assets is the asset tree holding monsters/ and parts/
	Assets fs.FS
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.CompositeRepo == nil {
		vb.RequiredField("CompositeRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Assets == nil {
		vb.RequiredField("Assets")
	}

	return vb.Build()
}

type orchestrator struct {
	creatureRepo  creature.Repository
	compositeRepo composite.Repository
	idGen         idgen.Generator
	assets        fs.FS
}

// NewOrchestrator creates a new bestiary orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		creatureRepo:  cfg.CreatureRepo,
		compositeRepo: cfg.CompositeRepo,
		idGen:         cfg.IDGenerator,
		assets:        cfg.Assets,
	}, nil
}

// ListCreatures returns every creature ordered by name
func (o *orchestrator) ListCreatures(ctx context.Context, _ *ListCreaturesInput) (*ListCreaturesOutput, error) {
	out, err := o.creatureRepo.List(ctx, &creature.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}
	return &ListCreaturesOutput{Creatures: out.Creatures}, nil
}

// CreateCreature adds a creature after checking its images decode
func (o *orchestrator) CreateCreature(ctx context.Context, input *CreateCreatureInput) (*CreateCreatureOutput, error) {
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
	for name, data := range input.Parts {
		if _, err := sprite.FromBytes(data); err != nil {
			vb.Field("parts."+name, "must be a PNG or WebP image")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := &entities.Creature{
		ID:     o.idGen.Generate(),
		Name:   strings.TrimSpace(input.Name),
		Family: strings.TrimSpace(input.Family),
		Sprite: input.Sprite,
		Parts:  input.Parts,
	}
	if c.Parts == nil {
		c.Parts = map[string][]byte{}
	}

	out, err := o.creatureRepo.Create(ctx, &creature.CreateInput{Creature: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create creature")
	}

	slog.InfoContext(ctx, "creature created",
		"creature_id", c.ID,
		"name", c.Name,
		"parts", len(c.Parts))

	return &CreateCreatureOutput{Creature: out.Creature}, nil
}

// Seed adds every monsters/<name>.png in the asset tree, with its parts from
// parts/<name>/*.png. Names already stored are skipped.
func (o *orchestrator) Seed(ctx context.Context, _ *SeedInput) (*SeedOutput, error) {
	files, err := fs.Glob(o.assets, monstersGlob)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan monster sprites")
	}

	out := &SeedOutput{Added: []string{}, Skipped: []string{}}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), pngExt)

		_, err := o.creatureRepo.GetByName(ctx, &creature.GetByNameInput{Name: name})
		if err == nil {
			slog.DebugContext(ctx, "creature already exists, skipping", "name", name)
			out.Skipped = append(out.Skipped, name)
			continue
		}
		if !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to check creature %s", name)
		}

		c, err := o.loadCreature(name, file)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable creature",
				"name", name,
				"error", err.Error())
			continue
		}

		if _, err := o.creatureRepo.Create(ctx, &creature.CreateInput{Creature: c}); err != nil {
			return nil, errors.Wrapf(err, "failed to seed creature %s", name)
		}
		slog.InfoContext(ctx, "seeded creature", "name", name, "parts", len(c.Parts))
		out.Added = append(out.Added, name)
	}

	return out, nil
}

func (o *orchestrator) loadCreature(name, file string) (*entities.Creature, error) {
	spriteData, err := fs.ReadFile(o.assets, file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sprite %s", file)
	}

	parts := make(map[string][]byte)
	partFiles, err := fs.Glob(o.assets, path.Join(partsDir, name, "*"+pngExt))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan parts of %s", name)
	}
	for _, pf := range partFiles {
		data, err := fs.ReadFile(o.assets, pf)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read part %s", pf)
		}
		parts[strings.TrimSuffix(path.Base(pf), pngExt)] = data
	}

	return &entities.Creature{
		ID:     o.idGen.Generate(),
		Name:   name,
		Sprite: spriteData,
		Parts:  parts,
	}, nil
}

// Wipe removes every creature and composite
func (o *orchestrator) Wipe(ctx context.Context, _ *WipeInput) (*WipeOutput, error) {
	composites, err := o.compositeRepo.DeleteAll(ctx, &composite.DeleteAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to wipe composites")
	}
	creatures, err := o.creatureRepo.DeleteAll(ctx, &creature.DeleteAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to wipe creatures")
	}

	slog.WarnContext(ctx, "database wiped",
		"creatures", creatures.Deleted,
		"composites", composites.Deleted)

	return &WipeOutput{
		Creatures:  creatures.Deleted,
		Composites: composites.Deleted,
	}, nil
}
