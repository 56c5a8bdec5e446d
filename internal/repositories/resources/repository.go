// Package resources provides persistence for the per-character resource
// satellite: spell slots, sorcery points, inspiration, corruption.
package resources

//go:generate mockgen -destination=mock/mock_repository.go -package=resourcesmock github.com/wizarding-rpg/character-api/internal/repositories/resources Repository

import (
	"context"

	"github.com/wizarding-rpg/character-api/internal/entities"
)

// Repository defines the interface for resource persistence.
//
// A character without a satellite row is a normal state, not an error: Get
// reports it through Found=false and callers materialize defaults with
// entities.DefaultResources.
type Repository interface {
	// Get retrieves the resource satellite for a character, scoped to its
	// owner. A missing row, or one recorded for a different owner, comes
	// back with Found=false and a nil Resources.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Upsert creates or replaces the satellite row keyed by
	// (character id, owner id). Pools are clamped so current never
	// exceeds max. Upserting over a row recorded for a different owner
	// returns NotFound.
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)
}

// GetInput defines the input for fetching a resource satellite.
type GetInput struct {
	CharacterID string
	OwnerID     string
}

// GetOutput defines the output for fetching a resource satellite.
type GetOutput struct {
	Resources *entities.CharacterResources
	Found     bool
}

// UpsertInput defines the input for writing a resource satellite.
type UpsertInput struct {
	Resources *entities.CharacterResources
}

// UpsertOutput defines the output for writing a resource satellite.
type UpsertOutput struct {
	Resources *entities.CharacterResources
}
