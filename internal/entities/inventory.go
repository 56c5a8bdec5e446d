package entities

import "time"

// ItemCategory classifies an inventory item.
type ItemCategory string

// Inventory categories.
const (
	ItemCategoryWand     ItemCategory = "wand"
	ItemCategoryPotion   ItemCategory = "potion"
	ItemCategoryBook     ItemCategory = "book"
	ItemCategoryClothing ItemCategory = "clothing"
	ItemCategoryArtifact ItemCategory = "artifact"
	ItemCategoryGear     ItemCategory = "gear"
	ItemCategoryOther    ItemCategory = "other"
)

// ItemCategoryNames lists the valid category values for validation.
var ItemCategoryNames = []string{
	string(ItemCategoryWand),
	string(ItemCategoryPotion),
	string(ItemCategoryBook),
	string(ItemCategoryClothing),
	string(ItemCategoryArtifact),
	string(ItemCategoryGear),
	string(ItemCategoryOther),
}

// InventoryItem belongs to one character.
type InventoryItem struct {
	ID          string       `json:"id"`
	CharacterID string       `json:"character_id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Quantity    int          `json:"quantity"`
	Value       string       `json:"value,omitempty"`
	Attuned     bool         `json:"attuned"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
