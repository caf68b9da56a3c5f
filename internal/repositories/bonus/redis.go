package bonus

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	redisclient "github.com/statforge/statforge/internal/redis"
)

const (
	bonusKeyPrefix = "bonus:"
	allIndexKey    = "bonus:all"

	errBonusNil     = "bonus cannot be nil"
	errBonusIDEmpty = "bonus ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis bonus repository.
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

// NewRedis creates a new Redis-backed bonus repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Bonus == nil {
		return nil, errors.InvalidArgument(errBonusNil)
	}
	if input.Bonus.ID == "" {
		return nil, errors.InvalidArgument(errBonusIDEmpty)
	}

	key := bonusKeyPrefix + input.Bonus.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("bonus with ID %s already exists", input.Bonus.ID)
	}

	data, err := json.Marshal(input.Bonus)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal bonus")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allIndexKey, input.Bonus.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create bonus")
	}

	return &CreateOutput{Bonus: input.Bonus}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBonusIDEmpty)
	}

	result, err := r.client.Get(ctx, bonusKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("bonus with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get bonus")
	}

	var b entities.Bonus
	if err := json.Unmarshal([]byte(result), &b); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal bonus")
	}

	return &GetOutput{Bonus: &b}, nil
}

func (r *redisRepository) GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error) {
	out := make(map[string]*entities.Bonus, len(input.IDs))
	for _, id := range input.IDs {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out[id] = got.Bonus
	}
	return &GetBatchOutput{Bonuses: out}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Bonus == nil {
		return nil, errors.InvalidArgument(errBonusNil)
	}
	if input.Bonus.ID == "" {
		return nil, errors.InvalidArgument(errBonusIDEmpty)
	}

	key := bonusKeyPrefix + input.Bonus.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("bonus with ID %s not found", input.Bonus.ID)
	}

	data, err := json.Marshal(input.Bonus)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal bonus")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update bonus")
	}

	return &UpdateOutput{Bonus: input.Bonus}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBonusIDEmpty)
	}

	key := bonusKeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("bonus with ID %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, allIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete bonus")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, allIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get bonus index")
	}

	out := make([]*entities.Bonus, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, allIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get bonus %s", id)
		}
		out = append(out, got.Bonus)
	}

	return &ListOutput{Bonuses: out}, nil
}
