package profiles

import (
	"context"
	"sync"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entities.Profile
	clock    clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory profile repository.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		profiles: make(map[string]*entities.Profile),
		clock:    c,
	}
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[input.UserID]
	if !ok {
		return &GetOutput{Found: false}, nil
	}
	result := *profile
	return &GetOutput{Profile: &result, Found: true}, nil
}

func (r *InMemoryRepository) Upsert(_ context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument("profile cannot be nil")
	}
	if input.Profile.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	profile := *input.Profile
	profile.UpdatedAt = now
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
		if profile.Role == entities.RoleNone {
			profile.Role = existing.Role
		}
	} else {
		profile.CreatedAt = now
	}
	r.profiles[profile.UserID] = &profile

	result := profile
	return &UpsertOutput{Profile: &result}, nil
}

func (r *InMemoryRepository) SetRole(_ context.Context, input SetRoleInput) (*SetRoleOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	var profile entities.Profile
	if existing, ok := r.profiles[input.UserID]; ok {
		profile = *existing
	} else {
		profile = entities.Profile{UserID: input.UserID, CreatedAt: now}
	}
	profile.Role = input.Role
	profile.UpdatedAt = now
	r.profiles[input.UserID] = &profile

	result := profile
	return &SetRoleOutput{Profile: &result}, nil
}
