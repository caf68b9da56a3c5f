package ruleset

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	"github.com/statforge/statforge/internal/pkg/clock"
	redisclient "github.com/statforge/statforge/internal/redis"
)

const rulesetKey = "ruleset"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis ruleset repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed ruleset repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, rulesetKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{Ruleset: &entities.Ruleset{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to get ruleset")
	}

	var rs entities.Ruleset
	if err := json.Unmarshal([]byte(result), &rs); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ruleset")
	}

	return &GetOutput{Ruleset: &rs}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Ruleset == nil {
		return nil, errors.InvalidArgument("ruleset cannot be nil")
	}

	input.Ruleset.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Ruleset)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ruleset")
	}

	if err := r.client.Set(ctx, rulesetKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set ruleset")
	}

	return &SetOutput{Ruleset: input.Ruleset}, nil
}
