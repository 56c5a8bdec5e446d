package resources

import (
	"context"
	"sync"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development.
type InMemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]*entities.CharacterResources
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory resource repository.
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{rows: make(map[string]*entities.CharacterResources)}
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.rows[input.CharacterID]
	if !ok || stored.OwnerID != input.OwnerID {
		return &GetOutput{Found: false}, nil
	}
	result := *stored
	return &GetOutput{Resources: &result, Found: true}, nil
}

func (r *InMemoryRepository) Upsert(_ context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Resources == nil {
		return nil, errors.InvalidArgument("resources cannot be nil")
	}
	if input.Resources.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Resources.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.rows[input.Resources.CharacterID]; ok && stored.OwnerID != input.Resources.OwnerID {
		return nil, errors.NotFoundf("resources for character %s not found", input.Resources.CharacterID)
	}

	res := *input.Resources
	res.Clamp()
	r.rows[res.CharacterID] = &res

	result := res
	return &UpsertOutput{Resources: &result}, nil
}
