// Package inventory provides persistence for per-character inventory
// items, stored as one hash per character.
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/wizarding-rpg/character-api/internal/repositories/inventory Repository

import (
	"context"

	"github.com/wizarding-rpg/character-api/internal/entities"
)

// Repository defines the interface for inventory persistence. Ownership is
// enforced one level up: the orchestrator resolves the character under the
// caller's owner scope before touching the inventory.
type Repository interface {
	// Add inserts a new item. Quantity must be at least 1 and the
	// category must be one of the known values.
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Update replaces an existing item. Returns NotFound when no item
	// with the given ID exists for the character.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Remove deletes an item. Returns NotFound when no item with the
	// given ID exists for the character.
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)

	// List retrieves all items for a character, sorted by name.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AddInput defines the input for adding an item.
type AddInput struct {
	Item *entities.InventoryItem
}

// AddOutput defines the output for adding an item.
type AddOutput struct {
	Item *entities.InventoryItem
}

// UpdateInput defines the input for updating an item.
type UpdateInput struct {
	Item *entities.InventoryItem
}

// UpdateOutput defines the output for updating an item.
type UpdateOutput struct {
	Item *entities.InventoryItem
}

// RemoveInput defines the input for removing an item.
type RemoveInput struct {
	CharacterID string
	ItemID      string
}

// RemoveOutput defines the output for removing an item.
type RemoveOutput struct{}

// ListInput defines the input for listing a character's items.
type ListInput struct {
	CharacterID string
}

// ListOutput defines the output for listing a character's items.
type ListOutput struct {
	Items []*entities.InventoryItem
}
