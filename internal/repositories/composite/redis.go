package composite

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	redisclient "github.com/KirkDiggler/monster-maker/internal/redis"
)

const (
	compositeKeyPrefix = "composite:"
	// sorted set of composite ids scored by creation time
	compositeIndexKey = "composites"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed composite repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateComposite(input.Composite); err != nil {
		return nil, err
	}
	c := input.Composite

	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal composite")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, compositeKeyPrefix+c.ID, data, 0)
	pipe.ZAdd(ctx, compositeIndexKey, redis.Z{
		Score:  float64(c.CreatedAt.UnixMilli()),
		Member: c.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create composite")
	}

	return &CreateOutput{Composite: c}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("composite ID is required")
	}

	result, err := r.client.Get(ctx, compositeKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("composite with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get composite")
	}

	var c entities.Composite
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal composite")
	}
	return &GetOutput{Composite: &c}, nil
}

func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRevRange(ctx, compositeIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list composite ids")
	}
	composites := make([]*entities.Composite, 0, len(ids))
	if len(ids) == 0 {
		return &ListOutput{Composites: composites}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = compositeKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load composites")
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var c entities.Composite
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal composite %s", ids[i])
		}
		composites = append(composites, &c)
	}

	return &ListOutput{Composites: composites}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("composite ID is required")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, compositeKeyPrefix+input.ID)
	pipe.ZRem(ctx, compositeIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete composite")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("composite with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) DeleteAll(ctx context.Context, _ *DeleteAllInput) (*DeleteAllOutput, error) {
	ids, err := r.client.ZRange(ctx, compositeIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list composite ids")
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, compositeKeyPrefix+id)
	}
	pipe.Del(ctx, compositeIndexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete composites")
	}

	return &DeleteAllOutput{Deleted: len(ids)}, nil
}
