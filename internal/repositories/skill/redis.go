package skill

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	redisclient "github.com/statforge/statforge/internal/redis"
)

const (
	skillKeyPrefix = "skill:"
	allIndexKey    = "skill:all"

	errSkillNil     = "skill cannot be nil"
	errSkillIDEmpty = "skill ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis skill repository.
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

// NewRedis creates a new Redis-backed skill repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Skill == nil {
		return nil, errors.InvalidArgument(errSkillNil)
	}
	if input.Skill.ID == "" {
		return nil, errors.InvalidArgument(errSkillIDEmpty)
	}

	key := skillKeyPrefix + input.Skill.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("skill with ID %s already exists", input.Skill.ID)
	}

	data, err := json.Marshal(input.Skill)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal skill")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allIndexKey, input.Skill.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create skill")
	}

	return &CreateOutput{Skill: input.Skill}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSkillIDEmpty)
	}

	result, err := r.client.Get(ctx, skillKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("skill with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get skill")
	}

	var sk entities.Skill
	if err := json.Unmarshal([]byte(result), &sk); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal skill")
	}

	return &GetOutput{Skill: &sk}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Skill == nil {
		return nil, errors.InvalidArgument(errSkillNil)
	}
	if input.Skill.ID == "" {
		return nil, errors.InvalidArgument(errSkillIDEmpty)
	}

	key := skillKeyPrefix + input.Skill.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("skill with ID %s not found", input.Skill.ID)
	}

	data, err := json.Marshal(input.Skill)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal skill")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update skill")
	}

	return &UpdateOutput{Skill: input.Skill}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSkillIDEmpty)
	}

	key := skillKeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("skill with ID %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, allIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete skill")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, allIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get skill index")
	}

	out := make([]*entities.Skill, 0, len(ids))
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, allIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get skill %s", id)
		}
		out = append(out, got.Skill)
	}

	return &ListOutput{Skills: out}, nil
}
