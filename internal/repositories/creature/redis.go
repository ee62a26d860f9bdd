package creature

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	redisclient "github.com/KirkDiggler/monster-maker/internal/redis"
)

const (
	creatureKeyPrefix = "creature:"
	creatureIndexKey  = "creatures"
	creatureNamesKey  = "creatures:names"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed creature repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCreature(input.Creature); err != nil {
		return nil, err
	}
	c := input.Creature

	// HSETNX claims the name atomically; a second writer loses here
	claimed, err := r.client.HSetNX(ctx, creatureNamesKey, c.Name, c.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to claim creature name")
	}
	if !claimed {
		return nil, errors.AlreadyExistsf("creature named %s already exists", c.Name)
	}

	data, err := json.Marshal(c)
	if err != nil {
		r.client.HDel(ctx, creatureNamesKey, c.Name)
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, creatureKeyPrefix+c.ID, data, 0)
	pipe.SAdd(ctx, creatureIndexKey, c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		r.client.HDel(ctx, creatureNamesKey, c.Name)
		return nil, errors.Wrapf(err, "failed to create creature")
	}

	return &CreateOutput{Creature: c}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	c, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Creature: c}, nil
}

func (r *redisRepository) GetByName(ctx context.Context, input *GetByNameInput) (*GetByNameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	id, err := r.client.HGet(ctx, creatureNamesKey, input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature named %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to look up creature name")
	}

	c, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetByNameOutput{Creature: c}, nil
}

func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, creatureIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list creature ids")
	}
	if len(ids) == 0 {
		return &ListOutput{Creatures: []*entities.Creature{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = creatureKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load creatures")
	}

	creatures := make([]*entities.Creature, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// index entry without a record, skip it
			continue
		}
		var c entities.Creature
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal creature %s", ids[i])
		}
		creatures = append(creatures, &c)
	}
	sort.Slice(creatures, func(i, j int) bool {
		return creatures[i].Name < creatures[j].Name
	})

	return &ListOutput{Creatures: creatures}, nil
}

func (r *redisRepository) DeleteAll(ctx context.Context, _ *DeleteAllInput) (*DeleteAllOutput, error) {
	ids, err := r.client.SMembers(ctx, creatureIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list creature ids")
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, creatureKeyPrefix+id)
	}
	pipe.Del(ctx, creatureIndexKey, creatureNamesKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete creatures")
	}

	return &DeleteAllOutput{Deleted: len(ids)}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*entities.Creature, error) {
	result, err := r.client.Get(ctx, creatureKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	var c entities.Creature
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal creature")
	}
	return &c, nil
}
