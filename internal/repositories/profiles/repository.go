// Package profiles provides persistence for per-user profiles: display
// names and service-level roles.
package profiles

//go:generate mockgen -destination=mock/mock_repository.go -package=profilesmock github.com/wizarding-rpg/character-api/internal/repositories/profiles Repository

import (
	"context"

	"github.com/wizarding-rpg/character-api/internal/entities"
)

// Repository defines the interface for profile persistence.
type Repository interface {
	// Get retrieves a profile. A missing row comes back with Found=false
	// and a nil Profile.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Upsert creates or replaces a profile, preserving created_at and
	// any previously granted role unless the input sets one.
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// SetRole updates only the role on an existing profile, creating a
	// minimal profile row if none exists.
	SetRole(ctx context.Context, input SetRoleInput) (*SetRoleOutput, error)
}

// GetInput defines the input for fetching a profile.
type GetInput struct {
	UserID string
}

// GetOutput defines the output for fetching a profile.
type GetOutput struct {
	Profile *entities.Profile
	Found   bool
}

// UpsertInput defines the input for writing a profile.
type UpsertInput struct {
	Profile *entities.Profile
}

// UpsertOutput defines the output for writing a profile.
type UpsertOutput struct {
	Profile *entities.Profile
}

// SetRoleInput defines the input for a role change.
type SetRoleInput struct {
	UserID string
	Role   entities.Role
}

// SetRoleOutput defines the output for a role change.
type SetRoleOutput struct {
	Profile *entities.Profile
}
