package inventory

import (
	"context"
	"sort"
	"sync"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]*entities.InventoryItem
	clock clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory inventory repository.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		items: make(map[string]map[string]*entities.InventoryItem),
		clock: c,
	}
}

func (r *InMemoryRepository) Add(_ context.Context, input AddInput) (*AddOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byID := r.items[input.Item.CharacterID]
	if byID == nil {
		byID = make(map[string]*entities.InventoryItem)
		r.items[input.Item.CharacterID] = byID
	}
	if _, exists := byID[input.Item.ID]; exists {
		return nil, errors.AlreadyExistsf("item with ID %s already exists", input.Item.ID)
	}

	now := r.clock.Now()
	item := *input.Item
	item.CreatedAt = now
	item.UpdatedAt = now
	byID[item.ID] = &item

	result := item
	return &AddOutput{Item: &result}, nil
}

func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[input.Item.CharacterID][input.Item.ID]
	if !ok {
		return nil, errors.NotFoundf("item with ID %s not found", input.Item.ID)
	}

	item := *input.Item
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = r.clock.Now()
	r.items[item.CharacterID][item.ID] = &item

	result := item
	return &UpdateOutput{Item: &result}, nil
}

func (r *InMemoryRepository) Remove(_ context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[input.CharacterID][input.ItemID]; !ok {
		return nil, errors.NotFoundf("item with ID %s not found", input.ItemID)
	}
	delete(r.items[input.CharacterID], input.ItemID)
	return &RemoveOutput{}, nil
}

func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entities.InventoryItem, 0, len(r.items[input.CharacterID]))
	for _, item := range r.items[input.CharacterID] {
		result := *item
		items = append(items, &result)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return &ListOutput{Items: items}, nil
}
