package species

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	redisclient "github.com/statforge/statforge/internal/redis"
)

const (
	speciesKeyPrefix = "species:"
	allIndexKey      = "species:all"

	errSpeciesNil     = "species cannot be nil"
	errSpeciesIDEmpty = "species ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis species repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed species repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Species == nil {
		return nil, errors.InvalidArgument(errSpeciesNil)
	}
	if input.Species.ID == "" {
		return nil, errors.InvalidArgument(errSpeciesIDEmpty)
	}

	key := speciesKeyPrefix + input.Species.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("species with ID %s already exists", input.Species.ID)
	}

	data, err := json.Marshal(input.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal species")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allIndexKey, input.Species.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create species")
	}

	return &CreateOutput{Species: input.Species}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpeciesIDEmpty)
	}

	result, err := r.client.Get(ctx, speciesKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("species with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get species")
	}

	var sp entities.Species
	if err := json.Unmarshal([]byte(result), &sp); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal species")
	}

	return &GetOutput{Species: &sp}, nil
}

func (r *redisRepository) GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error) {
	out := make([]*entities.Species, 0, len(input.IDs))
	for _, id := range input.IDs {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			return nil, err
		}
		out = append(out, got.Species)
	}
	return &GetBatchOutput{Species: out}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Species == nil {
		return nil, errors.InvalidArgument(errSpeciesNil)
	}
	if input.Species.ID == "" {
		return nil, errors.InvalidArgument(errSpeciesIDEmpty)
	}

	key := speciesKeyPrefix + input.Species.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("species with ID %s not found", input.Species.ID)
	}

	data, err := json.Marshal(input.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal species")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update species")
	}

	return &UpdateOutput{Species: input.Species}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpeciesIDEmpty)
	}

	key := speciesKeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("species with ID %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, allIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete species")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, allIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get species index")
	}

	out := make([]*entities.Species, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, allIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get species %s", id)
		}
		out = append(out, got.Species)
	}

	return &ListOutput{Species: out}, nil
}
