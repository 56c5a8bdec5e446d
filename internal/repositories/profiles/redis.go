package profiles

import (
	"context"
	"encoding/json"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
)

const profileKeyPrefix = "profile:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis profile repository.
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

// NewRedis creates a new Redis-backed profile repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &redisRepository{client: cfg.Client, clock: c}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	result, err := r.client.Get(ctx, profileKeyPrefix+input.UserID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return &GetOutput{Found: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to get profile %s", input.UserID)
	}

	var profile entities.Profile
	if err := json.Unmarshal([]byte(result), &profile); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile %s", input.UserID)
	}
	return &GetOutput{Profile: &profile, Found: true}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument("profile cannot be nil")
	}
	if input.Profile.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	existing, err := r.Get(ctx, GetInput{UserID: input.Profile.UserID})
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	profile := *input.Profile
	profile.UpdatedAt = now
	if existing.Found {
		profile.CreatedAt = existing.Profile.CreatedAt
		// A role grant survives display-name updates.
		if profile.Role == entities.RoleNone {
			profile.Role = existing.Profile.Role
		}
	} else {
		profile.CreatedAt = now
	}

	if err := r.write(ctx, &profile); err != nil {
		return nil, err
	}
	return &UpsertOutput{Profile: &profile}, nil
}

func (r *redisRepository) SetRole(ctx context.Context, input SetRoleInput) (*SetRoleOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	existing, err := r.Get(ctx, GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	var profile entities.Profile
	if existing.Found {
		profile = *existing.Profile
	} else {
		profile = entities.Profile{UserID: input.UserID, CreatedAt: now}
	}
	profile.Role = input.Role
	profile.UpdatedAt = now

	if err := r.write(ctx, &profile); err != nil {
		return nil, err
	}
	return &SetRoleOutput{Profile: &profile}, nil
}

func (r *redisRepository) write(ctx context.Context, profile *entities.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal profile %s", profile.UserID)
	}
	if err := r.client.Set(ctx, profileKeyPrefix+profile.UserID, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to save profile %s", profile.UserID)
	}
	return nil
}
