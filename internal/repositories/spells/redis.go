package spells

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
)

const spellsKeyPrefix = "spells:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis custom spell repository.
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

// NewRedis creates a new Redis-backed custom spell repository.
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

func validateSpell(spell *entities.CustomSpell) error {
	if spell == nil {
		return errors.InvalidArgument("spell cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", spell.ID, vb)
	errors.ValidateRequired("characterID", spell.CharacterID, vb)
	errors.ValidateRequired("name", spell.Name, vb)
	if spell.Status != "" {
		errors.ValidateEnum("status", string(spell.Status), entities.SpellStatusNames, vb)
	}
	return vb.Build()
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	key := spellsKeyPrefix + input.Spell.CharacterID

	exists, err := r.client.HExists(ctx, key, input.Spell.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check spell %s", input.Spell.ID)
	}
	if exists {
		return nil, errors.AlreadyExistsf("spell with ID %s already exists", input.Spell.ID)
	}

	now := r.clock.Now()
	spell := *input.Spell
	if spell.Status == "" {
		spell.Status = entities.SpellStatusDraft
	}
	spell.CreatedAt = now
	spell.UpdatedAt = now

	if err := r.writeSpell(ctx, key, &spell); err != nil {
		return nil, err
	}
	return &AddOutput{Spell: &spell}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	key := spellsKeyPrefix + input.Spell.CharacterID

	existing, err := r.loadSpell(ctx, key, input.Spell.ID)
	if err != nil {
		return nil, err
	}

	spell := *input.Spell
	if spell.Status == "" {
		spell.Status = existing.Status
	}
	spell.CreatedAt = existing.CreatedAt
	spell.UpdatedAt = r.clock.Now()

	if err := r.writeSpell(ctx, key, &spell); err != nil {
		return nil, err
	}
	return &UpdateOutput{Spell: &spell}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument("spell ID cannot be empty")
	}

	removed, err := r.client.HDel(ctx, spellsKeyPrefix+input.CharacterID, input.SpellID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove spell %s", input.SpellID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("spell with ID %s not found", input.SpellID)
	}
	return &RemoveOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, spellsKeyPrefix+input.CharacterID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spells for %s", input.CharacterID)
	}

	result := make([]*entities.CustomSpell, 0, len(fields))
	for id, raw := range fields {
		var spell entities.CustomSpell
		if err := json.Unmarshal([]byte(raw), &spell); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal spell %s", id)
		}
		result = append(result, &spell)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return &ListOutput{Spells: result}, nil
}

func (r *redisRepository) loadSpell(ctx context.Context, key, spellID string) (*entities.CustomSpell, error) {
	raw, err := r.client.HGet(ctx, key, spellID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("spell with ID %s not found", spellID)
		}
		return nil, errors.Wrapf(err, "failed to get spell %s", spellID)
	}

	var spell entities.CustomSpell
	if err := json.Unmarshal([]byte(raw), &spell); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spell %s", spellID)
	}
	return &spell, nil
}

func (r *redisRepository) writeSpell(ctx context.Context, key string, spell *entities.CustomSpell) error {
	data, err := json.Marshal(spell)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal spell %s", spell.ID)
	}
	if err := r.client.HSet(ctx, key, spell.ID, data).Err(); err != nil {
		return errors.Wrapf(err, "failed to save spell %s", spell.ID)
	}
	return nil
}
