package vault

import (
	"context"
	"strconv"

	"github.com/wizarding-rpg/character-api/internal/errors"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
)

const vaultKeyPrefix = "vault:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis vault repository.
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

// NewRedis creates a new Redis-backed vault repository.
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

	result, err := r.client.Get(ctx, vaultKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			// No vault row yet means an empty vault.
			return &GetOutput{Knuts: 0}, nil
		}
		return nil, errors.Wrapf(err, "failed to get vault for %s", input.CharacterID)
	}

	knuts, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt vault balance for %s", input.CharacterID)
	}
	return &GetOutput{Knuts: knuts}, nil
}

func (r *redisRepository) Deposit(ctx context.Context, input DepositInput) (*DepositOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Knuts <= 0 {
		return nil, errors.InvalidArgument("deposit amount must be positive")
	}

	balance, err := r.client.IncrBy(ctx, vaultKeyPrefix+input.CharacterID, input.Knuts).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to deposit for %s", input.CharacterID)
	}
	return &DepositOutput{Knuts: balance}, nil
}

func (r *redisRepository) Spend(ctx context.Context, input SpendInput) (*SpendOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Knuts <= 0 {
		return nil, errors.InvalidArgument("spend amount must be positive")
	}

	key := vaultKeyPrefix + input.CharacterID

	balance, err := r.client.DecrBy(ctx, key, input.Knuts).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spend for %s", input.CharacterID)
	}
	if balance < 0 {
		// Undo the overdraft before reporting it.
		if _, err := r.client.IncrBy(ctx, key, input.Knuts).Result(); err != nil {
			return nil, errors.Wrapf(err, "failed to roll back overdraft for %s", input.CharacterID)
		}
		return nil, errors.FailedPreconditionf(
			"insufficient funds: balance %d knuts, tried to spend %d",
			balance+input.Knuts, input.Knuts)
	}
	return &SpendOutput{Knuts: balance}, nil
}
