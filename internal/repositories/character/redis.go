package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	"github.com/statforge/statforge/internal/pkg/clock"
	redisclient "github.com/statforge/statforge/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	allIndexKey        = "character:all"
	speciesIndexPrefix = "character:species:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errSpeciesIDEmpty   = "species ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	// Check if already exists
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	now := r.clock.Now().Unix()
	input.Character.CreatedAt = now
	input.Character.UpdatedAt = now

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, key, data, 0) // No TTL for characters
	pipe.SAdd(ctx, allIndexKey, input.Character.ID)

	// Add to species indexes
	for _, speciesID := range input.Character.SpeciesIDs {
		pipe.SAdd(ctx, speciesIndexPrefix+speciesID, input.Character.ID)
	}

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char entities.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &GetOutput{Character: &char}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	// Get existing character to diff species indexes
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var existing entities.Character
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing character")
	}

	input.Character.CreatedAt = existing.CreatedAt
	input.Character.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, key, data, 0)

	// Update species indexes where membership changed
	newIDs := make(map[string]struct{}, len(input.Character.SpeciesIDs))
	for _, speciesID := range input.Character.SpeciesIDs {
		newIDs[speciesID] = struct{}{}
	}
	oldIDs := make(map[string]struct{}, len(existing.SpeciesIDs))
	for _, speciesID := range existing.SpeciesIDs {
		oldIDs[speciesID] = struct{}{}
		if _, ok := newIDs[speciesID]; !ok {
			pipe.SRem(ctx, speciesIndexPrefix+speciesID, input.Character.ID)
		}
	}
	for _, speciesID := range input.Character.SpeciesIDs {
		if _, ok := oldIDs[speciesID]; !ok {
			pipe.SAdd(ctx, speciesIndexPrefix+speciesID, input.Character.ID)
		}
	}

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Get character to find indexes
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	char := getOutput.Character

	// Start transaction
	pipe := r.client.TxPipeline()

	key := characterKeyPrefix + input.ID
	pipe.Del(ctx, key)
	pipe.SRem(ctx, allIndexKey, input.ID)

	// Remove from species indexes
	for _, speciesID := range char.SpeciesIDs {
		pipe.SRem(ctx, speciesIndexPrefix+speciesID, input.ID)
	}

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	characters, err := r.listByIndex(ctx, allIndexKey)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *redisRepository) ListBySpeciesID(
	ctx context.Context,
	input ListBySpeciesIDInput,
) (*ListBySpeciesIDOutput, error) {
	if input.SpeciesID == "" {
		return nil, errors.InvalidArgument(errSpeciesIDEmpty)
	}

	indexKey := speciesIndexPrefix + input.SpeciesID
	slog.DebugContext(ctx, "listing characters by species index",
		"species_id", input.SpeciesID,
		"index_key", indexKey)

	characters, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by species index",
			"species_id", input.SpeciesID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "successfully listed characters by species",
		"species_id", input.SpeciesID,
		"count", len(characters))

	return &ListBySpeciesIDOutput{Characters: characters}, nil
}

// listByIndex is a helper function to list characters by any index
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*entities.Character, error) {
	characterIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*entities.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If character doesn't exist, clean up the index
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, getOutput.Character)
	}

	return characters, nil
}
