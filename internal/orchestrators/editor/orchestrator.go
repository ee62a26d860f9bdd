// Package editor runs compositing sessions: it loads creatures into a
// workspace session, forwards input and commands to it, and renders, exports
// and saves the result.
package editor

//go:generate mockgen -destination=mock/mock_service.go -package=editormock github.com/KirkDiggler/monster-maker/internal/orchestrators/editor Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/pkg/clock"
	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-maker/internal/repositories/composite"
	"github.com/KirkDiggler/monster-maker/internal/repositories/creature"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

// Service defines the interface for editing sessions
type Service interface {
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	ChangeCreatures(ctx context.Context, input *ChangeCreaturesInput) (*ChangeCreaturesOutput, error)
	AddPart(ctx context.Context, input *AddPartInput) (*AddPartOutput, error)
	HandleEvent(ctx context.Context, input *HandleEventInput) (*HandleEventOutput, error)
	ApplyCommand(ctx context.Context, input *ApplyCommandInput) (*ApplyCommandOutput, error)
	RenderFrame(ctx context.Context, input *RenderFrameInput) (*RenderFrameOutput, error)
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
	SaveComposite(ctx context.Context, input *SaveCompositeInput) (*SaveCompositeOutput, error)
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}

// Config holds the dependencies for the editor orchestrator
type Config struct {
	CreatureRepo  creature.Repository
	CompositeRepo composite.Repository
	SessionIDs    idgen.Generator
	CompositeIDs  idgen.Generator
	// DiceRoller draws the random pairing when no creatures are picked
	DiceRoller dice.Roller
	Policy     workspace.EligibilityPolicy

	// Optional
	PointerScale float64
	Catalogs     *CatalogCache
	PartIDs      func() idgen.Sequence
	Clock        clock.Clock
	// SessionTTL is how long an untouched session lives; DefaultSessionTTL if zero
	SessionTTL time.Duration
}

// DefaultSessionTTL reclaims sessions idle for this long
const DefaultSessionTTL = 2 * time.Hour

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.CompositeRepo == nil {
		vb.RequiredField("CompositeRepo")
	}
	if c.SessionIDs == nil {
		vb.RequiredField("SessionIDs")
	}
	if c.CompositeIDs == nil {
		vb.RequiredField("CompositeIDs")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.PointerScale < 0 {
		vb.Field("PointerScale", "must not be negative")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

// liveSession serialises access to one workspace session. lastUsed is
// guarded by the orchestrator's mutex.
type liveSession struct {
	mu       sync.Mutex
	ws       *workspace.Session
	lastUsed time.Time
}

type orchestrator struct {
	creatureRepo  creature.Repository
	compositeRepo composite.Repository
	sessionIDs    idgen.Generator
	compositeIDs  idgen.Generator
	roller        dice.Roller
	policy        workspace.EligibilityPolicy
	pointerScale  float64
	catalogs      *CatalogCache
	partIDs       func() idgen.Sequence
	clock         clock.Clock
	sessionTTL    time.Duration

	mu       sync.Mutex
	sessions map[string]*liveSession
}

// NewOrchestrator creates a new editor orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		creatureRepo:  cfg.CreatureRepo,
		compositeRepo: cfg.CompositeRepo,
		sessionIDs:    cfg.SessionIDs,
		compositeIDs:  cfg.CompositeIDs,
		roller:        cfg.DiceRoller,
		policy:        cfg.Policy,
		pointerScale:  cfg.PointerScale,
		catalogs:      cfg.Catalogs,
		partIDs:       cfg.PartIDs,
		clock:         cfg.Clock,
		sessionTTL:    cfg.SessionTTL,
		sessions:      make(map[string]*liveSession),
	}
	if o.partIDs == nil {
		o.partIDs = func() idgen.Sequence { return idgen.NewMonotonic(nil) }
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.sessionTTL == 0 {
		o.sessionTTL = DefaultSessionTTL
	}
	return o, nil
}

// StartSession opens a workspace over two creatures
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		input = &StartSessionInput{}
	}

	creatures, err := o.pickCreatures(ctx, input.CreatureIDs)
	if err != nil {
		return nil, err
	}
	names, entries := o.catalogFor(creatures)

	id := o.sessionIDs.Generate()
	ws := workspace.NewSession(id, names, entries, workspace.Options{
		Policy:       o.policy,
		PointerScale: o.pointerScale,
		IDs:          o.partIDs(),
	})

	now := o.clock.Now()
	o.mu.Lock()
	expired := o.sweep(now)
	o.sessions[id] = &liveSession{ws: ws, lastUsed: now}
	o.mu.Unlock()

	if len(expired) > 0 {
		slog.InfoContext(ctx, "idle sessions reclaimed",
			"session_ids", expired,
			"ttl", o.sessionTTL.String())
	}

	slog.InfoContext(ctx, "session started",
		"session_id", id,
		"creatures", names,
		"catalog_entries", len(entries),
		"policy", o.policy.Name())

	return &StartSessionOutput{Session: ws.Snapshot()}, nil
}

// GetSession returns the current state of a session
func (o *orchestrator) GetSession(_ context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &GetSessionOutput{}
	err := o.withSession(input.SessionID, func(ws *workspace.Session) error {
		out.Session = ws.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeCreatures swaps the creatures, clearing the workspace when confirmed
func (o *orchestrator) ChangeCreatures(ctx context.Context, input *ChangeCreaturesInput) (*ChangeCreaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	live, err := o.lookup(input.SessionID)
	if err != nil {
		return nil, err
	}

	creatures, err := o.pickCreatures(ctx, input.CreatureIDs)
	if err != nil {
		return nil, err
	}
	names, entries := o.catalogFor(creatures)

	live.mu.Lock()
	defer live.mu.Unlock()

	confirm := workspace.ConfirmFunc(func(msg string) bool {
		slog.DebugContext(ctx, "confirmation requested",
			"session_id", input.SessionID,
			"message", msg,
			"confirmed", input.Confirmed)
		return input.Confirmed
	})
	if err := live.ws.ChangeSources(names, entries, confirm); err != nil {
		return nil, err
	}

	return &ChangeCreaturesOutput{Session: live.ws.Snapshot()}, nil
}

// AddPart places a catalog part on the workspace
func (o *orchestrator) AddPart(ctx context.Context, input *AddPartInput) (*AddPartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("part_name", input.PartName, vb)
	errors.ValidateRequired("source", input.Source, vb)
	if (input.X == nil) != (input.Y == nil) {
		vb.Field("position", "x and y must be given together")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &AddPartOutput{}
	err := o.withSession(input.SessionID, func(ws *workspace.Session) error {
		var (
			p        *workspace.PlacedPart
			inserted bool
			err      error
		)
		if input.X != nil {
			p, inserted, err = ws.AddPart(input.PartName, input.Source, *input.X, *input.Y)
		} else {
			p, inserted, err = ws.AddPartCentered(input.PartName, input.Source)
		}
		if err != nil {
			return err
		}

		out.Inserted = inserted
		if inserted {
			out.PartID = p.ID
		} else {
			slog.DebugContext(ctx, "part not eligible",
				"session_id", input.SessionID,
				"part", input.PartName,
				"source", input.Source)
		}
		out.Session = ws.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HandleEvent dispatches one input event
func (o *orchestrator) HandleEvent(_ context.Context, input *HandleEventInput) (*HandleEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateEvent(input.Event); err != nil {
		return nil, err
	}

	out := &HandleEventOutput{}
	err := o.withSession(input.SessionID, func(ws *workspace.Session) error {
		out.Changed = ws.Handle(input.Event)
		out.Session = ws.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func validateEvent(ev workspace.InputEvent) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("type", string(ev.Kind), []string{
		string(workspace.PointerDown),
		string(workspace.PointerMove),
		string(workspace.PointerUp),
		string(workspace.KeyPress),
		string(workspace.SelectLayer),
	}, vb)
	if ev.Kind == workspace.KeyPress {
		errors.ValidateEnum("key", string(ev.Key), []string{
			string(workspace.KeyUp),
			string(workspace.KeyDown),
			string(workspace.KeyLeft),
			string(workspace.KeyRight),
		}, vb)
	}
	return vb.Build()
}

// ApplyCommand runs a toolbar command on the selected part
func (o *orchestrator) ApplyCommand(_ context.Context, input *ApplyCommandInput) (*ApplyCommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &ApplyCommandOutput{}
	err := o.withSession(input.SessionID, func(ws *workspace.Session) error {
		if err := ws.Apply(input.Command); err != nil {
			return err
		}
		out.Session = ws.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RenderFrame paints any pending redraw and returns the frame
func (o *orchestrator) RenderFrame(_ context.Context, input *RenderFrameInput) (*RenderFrameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &RenderFrameOutput{}
	err := o.withSession(input.SessionID, func(ws *workspace.Session) error {
		data, err := sprite.Encode(ws.Frame())
		if err != nil {
			return err
		}
		out.PNG = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Export renders the composite at native size
func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &ExportOutput{Filename: exportFilename(input.Name)}
	err := o.withSession(input.SessionID, func(ws *workspace.Session) error {
		img, err := ws.Export()
		if err != nil {
			return err
		}
		out.PNG, err = sprite.Encode(img)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "composite exported",
		"session_id", input.SessionID,
		"filename", out.Filename,
		"bytes", len(out.PNG))

	return out, nil
}

// exportFilename trims the name, drops path characters and adds .png.
func exportFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', 0:
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = DefaultExportName
	}
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	return name
}

// SaveComposite stores the exported workspace as a composite and clears the
// workspace. A failed save leaves the workspace as it was.
func (o *orchestrator) SaveComposite(ctx context.Context, input *SaveCompositeInput) (*SaveCompositeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("please enter a monster name")
	}

	out := &SaveCompositeOutput{}
	err := o.withSession(input.SessionID, func(ws *workspace.Session) error {
		img, err := ws.Export()
		if err != nil {
			return err
		}
		data, err := sprite.Encode(img)
		if err != nil {
			return err
		}

		c := &entities.Composite{
			ID:                  o.compositeIDs.Generate(),
			Name:                name,
			Author:              strings.TrimSpace(input.Author),
			Sprite:              data,
			ParentCreatureNames: ws.Sources(),
			CreatedAt:           o.clock.Now(),
		}
		c.Author = c.AuthorOrDefault()

		created, err := o.compositeRepo.Create(ctx, &composite.CreateInput{Composite: c})
		if err != nil {
			slog.ErrorContext(ctx, "failed to save composite",
				"session_id", input.SessionID,
				"name", name,
				"error", err.Error())
			return errors.Wrap(err, "failed to save composite")
		}

		ws.Clear()
		out.Composite = created.Composite
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "composite saved",
		"session_id", input.SessionID,
		"composite_id", out.Composite.ID,
		"name", out.Composite.Name)

	return out, nil
}

// EndSession discards a session
func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	id := input.SessionID

	o.mu.Lock()
	_, ok := o.sessions[id]
	delete(o.sessions, id)
	o.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("session %s not found", id)
	}
	slog.InfoContext(ctx, "session ended", "session_id", id)
	return &EndSessionOutput{}, nil
}

// pickCreatures loads the two requested creatures, or draws two distinct
// ones at random when none are requested.
func (o *orchestrator) pickCreatures(ctx context.Context, ids []string) ([]*entities.Creature, error) {
	if len(ids) == 0 {
		return o.randomPair(ctx)
	}
	if len(ids) != 2 {
		return nil, errors.InvalidArgumentf("exactly two creatures are required, got %d", len(ids))
	}
	if ids[0] == ids[1] {
		return nil, errors.InvalidArgument("please select two different monsters")
	}

	creatures := make([]*entities.Creature, 0, 2)
	for _, id := range ids {
		out, err := o.creatureRepo.Get(ctx, &creature.GetInput{ID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load creature %s", id)
		}
		creatures = append(creatures, out.Creature)
	}
	return creatures, nil
}

func (o *orchestrator) randomPair(ctx context.Context) ([]*entities.Creature, error) {
	out, err := o.creatureRepo.List(ctx, &creature.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}
	n := len(out.Creatures)
	if n < 2 {
		return nil, errors.FailedPreconditionf("need at least two creatures, have %d", n)
	}

	first, err := o.roller.Roll(n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll first creature")
	}
	second, err := o.roller.Roll(n - 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll second creature")
	}
	// rolls are 1-based; the second skips over the first pick
	a, b := first-1, second-1
	if b >= a {
		b++
	}
	return []*entities.Creature{out.Creatures[a], out.Creatures[b]}, nil
}

func (o *orchestrator) catalogFor(creatures []*entities.Creature) ([]string, []workspace.CatalogEntry) {
	names := make([]string, 0, len(creatures))
	var entries []workspace.CatalogEntry
	for _, c := range creatures {
		names = append(names, c.Name)
		if o.catalogs != nil {
			entries = append(entries, o.catalogs.Entries(c)...)
		} else {
			entries = append(entries, workspace.CropParts(c)...)
		}
	}
	return names, entries
}

func (o *orchestrator) lookup(id string) (*liveSession, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	now := o.clock.Now()
	o.mu.Lock()
	defer o.mu.Unlock()

	live, ok := o.sessions[id]
	if ok && o.idle(live, now) {
		delete(o.sessions, id)
		slog.Info("idle session reclaimed", "session_id", id, "ttl", o.sessionTTL.String())
		ok = false
	}
	if !ok {
		return nil, errors.NotFoundf("session %s not found", id)
	}
	live.lastUsed = now
	return live, nil
}

func (o *orchestrator) idle(live *liveSession, now time.Time) bool {
	return now.Sub(live.lastUsed) >= o.sessionTTL
}

// sweep drops every idle session and returns their IDs. Callers hold o.mu.
func (o *orchestrator) sweep(now time.Time) []string {
	var expired []string
	for id, live := range o.sessions {
		if o.idle(live, now) {
			delete(o.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// withSession runs fn with the session locked
func (o *orchestrator) withSession(id string, fn func(ws *workspace.Session) error) error {
	live, err := o.lookup(id)
	if err != nil {
		return err
	}

	live.mu.Lock()
	defer live.mu.Unlock()
	return fn(live.ws)
}
