package inventory

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
)

const inventoryKeyPrefix = "inventory:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis inventory repository.
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

// NewRedis creates a new Redis-backed inventory repository.
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

func validateItem(item *entities.InventoryItem) error {
	if item == nil {
		return errors.InvalidArgument("item cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", item.ID, vb)
	errors.ValidateRequired("characterID", item.CharacterID, vb)
	errors.ValidateRequired("name", item.Name, vb)
	errors.ValidateMin("quantity", item.Quantity, 1, vb)
	errors.ValidateEnum("category", string(item.Category), entities.ItemCategoryNames, vb)
	return vb.Build()
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	key := inventoryKeyPrefix + input.Item.CharacterID

	exists, err := r.client.HExists(ctx, key, input.Item.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check item %s", input.Item.ID)
	}
	if exists {
		return nil, errors.AlreadyExistsf("item with ID %s already exists", input.Item.ID)
	}

	now := r.clock.Now()
	item := *input.Item
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := r.writeItem(ctx, key, &item); err != nil {
		return nil, err
	}
	return &AddOutput{Item: &item}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	key := inventoryKeyPrefix + input.Item.CharacterID

	existing, err := r.loadItem(ctx, key, input.Item.ID)
	if err != nil {
		return nil, err
	}

	item := *input.Item
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = r.clock.Now()

	if err := r.writeItem(ctx, key, &item); err != nil {
		return nil, err
	}
	return &UpdateOutput{Item: &item}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	removed, err := r.client.HDel(ctx, inventoryKeyPrefix+input.CharacterID, input.ItemID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove item %s", input.ItemID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("item with ID %s not found", input.ItemID)
	}
	return &RemoveOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, inventoryKeyPrefix+input.CharacterID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list inventory for %s", input.CharacterID)
	}

	items := make([]*entities.InventoryItem, 0, len(fields))
	for id, raw := range fields {
		var item entities.InventoryItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item %s", id)
		}
		items = append(items, &item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) loadItem(ctx context.Context, key, itemID string) (*entities.InventoryItem, error) {
	raw, err := r.client.HGet(ctx, key, itemID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("item with ID %s not found", itemID)
		}
		return nil, errors.Wrapf(err, "failed to get item %s", itemID)
	}

	var item entities.InventoryItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item %s", itemID)
	}
	return &item, nil
}

func (r *redisRepository) writeItem(ctx context.Context, key string, item *entities.InventoryItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal item %s", item.ID)
	}
	if err := r.client.HSet(ctx, key, item.ID, data).Err(); err != nil {
		return errors.Wrapf(err, "failed to save item %s", item.ID)
	}
	return nil
}
