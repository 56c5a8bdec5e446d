// Package spells provides persistence for player-authored custom spells,
// stored as one hash per character.
package spells

//go:generate mockgen -destination=mock/mock_repository.go -package=spellsmock github.com/wizarding-rpg/character-api/internal/repositories/spells Repository

import (
	"context"

	"github.com/wizarding-rpg/character-api/internal/entities"
)

// Repository defines the interface for custom spell persistence. Ownership
// is enforced one level up, the same way as inventory.
type Repository interface {
	// Add inserts a new custom spell. Status must be one of the known
	// values; an empty status defaults to draft.
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Update replaces an existing spell. Returns NotFound when no spell
	// with the given ID exists for the character.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Remove deletes a spell. Returns NotFound when no spell with the
	// given ID exists for the character.
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)

	// List retrieves all custom spells for a character, sorted by name.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AddInput defines the input for adding a custom spell.
type AddInput struct {
	Spell *entities.CustomSpell
}

// AddOutput defines the output for adding a custom spell.
type AddOutput struct {
	Spell *entities.CustomSpell
}

// UpdateInput defines the input for updating a custom spell.
type UpdateInput struct {
	Spell *entities.CustomSpell
}

// UpdateOutput defines the output for updating a custom spell.
type UpdateOutput struct {
	Spell *entities.CustomSpell
}

// RemoveInput defines the input for removing a custom spell.
type RemoveInput struct {
	CharacterID string
	SpellID     string
}

// RemoveOutput defines the output for removing a custom spell.
type RemoveOutput struct{}

// ListInput defines the input for listing a character's custom spells.
type ListInput struct {
	CharacterID string
}

// ListOutput defines the output for listing a character's custom spells.
type ListOutput struct {
	Spells []*entities.CustomSpell
}
