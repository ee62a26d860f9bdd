package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/monster-maker/internal/config"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/editor"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/gallery"
	"github.com/KirkDiggler/monster-maker/internal/pkg/clock"
	"github.com/KirkDiggler/monster-maker/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/monster-maker/internal/redis"
	"github.com/KirkDiggler/monster-maker/internal/repositories/composite"
	"github.com/KirkDiggler/monster-maker/internal/repositories/creature"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

// services is everything the commands need, built once from config
type services struct {
	redis    redisclient.Client
	catalogs *editor.CatalogCache

	bestiary bestiary.Service
	gallery  gallery.Service
	editor   editor.Service
}

func (s *services) close() {
	if s.catalogs != nil {
		s.catalogs.Close()
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
}

func buildServices(ctx context.Context, cfg *config.Config) (*services, error) {
	svc := &services{}

	var (
		creatureRepo  creature.Repository
		compositeRepo composite.Repository
	)
	if cfg.Redis.Addr == "" {
		slog.InfoContext(ctx, "using in-memory storage")
		creatureRepo = creature.NewInMemory()
		compositeRepo = composite.NewInMemory()
	} else {
		client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
			DB:              cfg.Redis.DB,
			PoolSize:        cfg.Redis.PoolSize,
			MinIdleConns:    1,
			ConnMaxIdleTime: 5 * time.Minute,
			MaxRetries:      3,
			UseTLS:          cfg.Redis.TLS,
		})
		if err != nil {
			return nil, err
		}
		if err := redisclient.Ping(ctx, client, 5*time.Second); err != nil {
			slog.WarnContext(ctx, "redis not reachable yet", "addr", cfg.Redis.Addr, "error", err.Error())
		}
		slog.InfoContext(ctx, "using redis storage", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)

		svc.redis = client
		creatureRepo = creature.NewRedisRepository(client)
		compositeRepo = composite.NewRedisRepository(client)
	}

	var err error
	svc.bestiary, err = bestiary.NewOrchestrator(&bestiary.Config{
		CreatureRepo:  creatureRepo,
		CompositeRepo: compositeRepo,
		IDGenerator:   idgen.NewUUID("mon"),
		Assets:        os.DirFS(cfg.Assets.Dir),
	})
	if err != nil {
		svc.close()
		return nil, err
	}

	svc.gallery, err = gallery.NewOrchestrator(&gallery.Config{
		CompositeRepo: compositeRepo,
		CreatureRepo:  creatureRepo,
		IDGenerator:   idgen.NewUUID("cmp"),
		Clock:         clock.New(),
	})
	if err != nil {
		svc.close()
		return nil, err
	}

	policy, err := workspace.PolicyByName(cfg.Workspace.Eligibility)
	if err != nil {
		svc.close()
		return nil, err
	}
	svc.catalogs, err = editor.NewCatalogCache(cfg.Catalog.CacheMB)
	if err != nil {
		svc.close()
		return nil, err
	}

	svc.editor, err = editor.NewOrchestrator(&editor.Config{
		CreatureRepo:  creatureRepo,
		CompositeRepo: compositeRepo,
		SessionIDs:    idgen.NewUUID("ses"),
		CompositeIDs:  idgen.NewUUID("cmp"),
		DiceRoller:    dice.DefaultRoller,
		Policy:        policy,
		PointerScale:  cfg.Workspace.PointerScale,
		SessionTTL:    cfg.Workspace.SessionTTL,
		Catalogs:      svc.catalogs,
		Clock:         clock.New(),
	})
	if err != nil {
		svc.close()
		return nil, err
	}

	return svc, nil
}
