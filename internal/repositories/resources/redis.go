package resources

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
)

const resourcesKeyPrefix = "character:resources:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis resource repository.
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

// NewRedis creates a new Redis-backed resource repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	result, err := r.client.Get(ctx, resourcesKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{Found: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to get resources for %s", input.CharacterID)
	}

	var res entities.CharacterResources
	if err := json.Unmarshal([]byte(result), &res); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal resources for %s", input.CharacterID)
	}
	// A row recorded for someone else reads as missing.
	if res.OwnerID != input.OwnerID {
		return &GetOutput{Found: false}, nil
	}

	return &GetOutput{Resources: &res, Found: true}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Resources == nil {
		return nil, errors.InvalidArgument("resources cannot be nil")
	}
	if input.Resources.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Resources.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	key := resourcesKeyPrefix + input.Resources.CharacterID

	// The satellite key is owned by whoever wrote it first; cross-owner
	// overwrites read as not found.
	existing, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check resources for %s", input.Resources.CharacterID)
	}
	if err == nil {
		var stored entities.CharacterResources
		if unmarshalErr := json.Unmarshal([]byte(existing), &stored); unmarshalErr == nil {
			if stored.OwnerID != input.Resources.OwnerID {
				return nil, errors.NotFoundf("resources for character %s not found", input.Resources.CharacterID)
			}
		}
	}

	res := *input.Resources
	res.Clamp()

	data, err := json.Marshal(&res)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal resources for %s", res.CharacterID)
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save resources for %s", res.CharacterID)
	}

	return &UpsertOutput{Resources: &res}, nil
}
