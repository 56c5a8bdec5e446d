// Package character implements the character orchestrator: the service
// facade over the character row, its satellites, and the static rulebook.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/wizarding-rpg/character-api/internal/orchestrators/character Service

import (
	"context"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/features"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

// Service defines the interface for character operations. Every owner-scoped
// operation carries the caller's owner ID; admin operations carry a caller
// ID that must pass the authorizer first.
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	UpdateSubclassChoice(ctx context.Context, input *UpdateSubclassChoiceInput) (*UpdateSubclassChoiceOutput, error)
	ArchiveCharacter(ctx context.Context, input *ArchiveCharacterInput) (*ArchiveCharacterOutput, error)
	RestoreCharacter(ctx context.Context, input *RestoreCharacterInput) (*RestoreCharacterOutput, error)
	ListArchivedCharacters(ctx context.Context, input *ListArchivedCharactersInput) (*ListArchivedCharactersOutput, error)
	AdvanceSchoolYear(ctx context.Context, input *AdvanceSchoolYearInput) (*AdvanceSchoolYearOutput, error)

	// Admin surface
	GetCharacterAsAdmin(ctx context.Context, input *GetCharacterAsAdminInput) (*GetCharacterAsAdminOutput, error)
	ListAllCharacters(ctx context.Context, input *ListAllCharactersInput) (*ListAllCharactersOutput, error)

	// Casting resources
	SpendSpellSlot(ctx context.Context, input *SpendSpellSlotInput) (*SpendSpellSlotOutput, error)
	SpendSorceryPoints(ctx context.Context, input *SpendSorceryPointsInput) (*SpendSorceryPointsOutput, error)
	ConvertSlotToSorceryPoints(ctx context.Context, input *ConvertSlotToSorceryPointsInput) (*ConvertSlotToSorceryPointsOutput, error)
	UseMetamagic(ctx context.Context, input *UseMetamagicInput) (*UseMetamagicOutput, error)

	// Inventory
	AddInventoryItem(ctx context.Context, input *AddInventoryItemInput) (*AddInventoryItemOutput, error)
	UpdateInventoryItem(ctx context.Context, input *UpdateInventoryItemInput) (*UpdateInventoryItemOutput, error)
	RemoveInventoryItem(ctx context.Context, input *RemoveInventoryItemInput) (*RemoveInventoryItemOutput, error)
	ListInventory(ctx context.Context, input *ListInventoryInput) (*ListInventoryOutput, error)

	// Custom spells
	AddCustomSpell(ctx context.Context, input *AddCustomSpellInput) (*AddCustomSpellOutput, error)
	UpdateCustomSpell(ctx context.Context, input *UpdateCustomSpellInput) (*UpdateCustomSpellOutput, error)
	RemoveCustomSpell(ctx context.Context, input *RemoveCustomSpellInput) (*RemoveCustomSpellOutput, error)
	ListCustomSpells(ctx context.Context, input *ListCustomSpellsInput) (*ListCustomSpellsOutput, error)

	// Vault
	GetVault(ctx context.Context, input *GetVaultInput) (*GetVaultOutput, error)
	DepositToVault(ctx context.Context, input *DepositToVaultInput) (*DepositToVaultOutput, error)
	SpendFromVault(ctx context.Context, input *SpendFromVaultInput) (*SpendFromVaultOutput, error)
}

// CreateCharacterInput defines the input for character creation.
type CreateCharacterInput struct {
	OwnerID   string
	Character *entities.Character
}

// CreateCharacterOutput defines the output for character creation.
type CreateCharacterOutput struct {
	Character *entities.Character
	Resources *entities.CharacterResources
}

// GetCharacterInput defines the input for fetching a character sheet.
type GetCharacterInput struct {
	ID      string
	OwnerID string
}

// GetCharacterOutput defines the output for fetching a character sheet:
// the row, its resources (materialized when no satellite exists), and the
// aggregated feature lists.
type GetCharacterOutput struct {
	Character *entities.Character
	Resources *entities.CharacterResources
	Features  *features.CharacterFeatures
}

// ListCharactersInput defines the input for the owner's character list.
type ListCharactersInput struct {
	OwnerID string
}

// CharacterSummary is one row in a character listing, with resources
// merged in.
type CharacterSummary struct {
	Character *entities.Character
	Resources *entities.CharacterResources
}

// ListCharactersOutput defines the output for the owner's character list.
type ListCharactersOutput struct {
	Characters []*CharacterSummary
}

// UpdateCharacterInput defines the input for a full-row update.
type UpdateCharacterInput struct {
	OwnerID   string
	Character *entities.Character
}

// UpdateCharacterOutput defines the output for a full-row update.
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// UpdateSubclassChoiceInput defines the input for the partial subclass
// update. Choices carries the raw decoded payload; non-map shapes are
// rejected.
type UpdateSubclassChoiceInput struct {
	ID       string
	OwnerID  string
	Subclass string
	Choices  any
}

// UpdateSubclassChoiceOutput defines the output for the partial subclass
// update.
type UpdateSubclassChoiceOutput struct {
	Character *entities.Character
}

// ArchiveCharacterInput defines the input for archiving.
type ArchiveCharacterInput struct {
	ID      string
	OwnerID string
}

// ArchiveCharacterOutput defines the output for archiving.
type ArchiveCharacterOutput struct {
	Character *entities.Character
}

// RestoreCharacterInput defines the input for restoring.
type RestoreCharacterInput struct {
	ID      string
	OwnerID string
}

// RestoreCharacterOutput defines the output for restoring.
type RestoreCharacterOutput struct {
	Character *entities.Character
}

// ListArchivedCharactersInput defines the input for the archived listing.
// An empty OwnerID lists across all owners.
type ListArchivedCharactersInput struct {
	OwnerID string
}

// ListArchivedCharactersOutput defines the output for the archived
// listing, newest-archived first.
type ListArchivedCharactersOutput struct {
	Characters []*entities.Character
}

// AdvanceSchoolYearInput defines the input for the school-year advance.
type AdvanceSchoolYearInput struct {
	ID      string
	OwnerID string
	NewYear int
	// LevelIncrease defaults to 1.
	LevelIncrease int
	// RollHP rolls the hit die per level instead of taking the average.
	RollHP bool
}

// AdvanceSchoolYearOutput defines the output for the school-year advance.
type AdvanceSchoolYearOutput struct {
	Character     *entities.Character
	Resources     *entities.CharacterResources
	PreviousLevel int
	HPGain        int
}

// GetCharacterAsAdminInput defines the input for the unscoped admin get.
type GetCharacterAsAdminInput struct {
	CallerID string
	ID       string
}

// GetCharacterAsAdminOutput defines the output for the unscoped admin get.
type GetCharacterAsAdminOutput struct {
	Character *entities.AdminCharacter
}

// ListAllCharactersInput defines the input for the admin cross-owner
// listing.
type ListAllCharactersInput struct {
	CallerID string
}

// ListAllCharactersOutput defines the output for the admin cross-owner
// listing.
type ListAllCharactersOutput struct {
	Characters []*entities.AdminCharacter
	Strategy   string
}

// SpendSpellSlotInput defines the input for spending a spell slot.
type SpendSpellSlotInput struct {
	ID        string
	OwnerID   string
	SlotLevel int
}

// SpendSpellSlotOutput defines the output for spending a spell slot.
type SpendSpellSlotOutput struct {
	Resources *entities.CharacterResources
}

// SpendSorceryPointsInput defines the input for spending sorcery points.
type SpendSorceryPointsInput struct {
	ID      string
	OwnerID string
	Amount  int
}

// SpendSorceryPointsOutput defines the output for spending sorcery points.
type SpendSorceryPointsOutput struct {
	Resources *entities.CharacterResources
}

// ConvertSlotToSorceryPointsInput defines the input for converting a slot
// into sorcery points.
type ConvertSlotToSorceryPointsInput struct {
	ID        string
	OwnerID   string
	SlotLevel int
}

// ConvertSlotToSorceryPointsOutput defines the output for the conversion.
// PointsGained is the actual gain after clamping at the maximum.
type ConvertSlotToSorceryPointsOutput struct {
	Resources    *entities.CharacterResources
	PointsGained int
}

// UseMetamagicInput defines the input for spending a metamagic's cost.
type UseMetamagicInput struct {
	ID        string
	OwnerID   string
	Metamagic string
}

// UseMetamagicOutput defines the output for a metamagic use.
type UseMetamagicOutput struct {
	Resources *entities.CharacterResources
	Metamagic rulebook.Metamagic
}

// AddInventoryItemInput defines the input for adding an inventory item.
type AddInventoryItemInput struct {
	CharacterID string
	OwnerID     string
	Item        *entities.InventoryItem
}

// AddInventoryItemOutput defines the output for adding an inventory item.
type AddInventoryItemOutput struct {
	Item *entities.InventoryItem
}

// UpdateInventoryItemInput defines the input for updating an item.
type UpdateInventoryItemInput struct {
	CharacterID string
	OwnerID     string
	Item        *entities.InventoryItem
}

// UpdateInventoryItemOutput defines the output for updating an item.
type UpdateInventoryItemOutput struct {
	Item *entities.InventoryItem
}

// RemoveInventoryItemInput defines the input for removing an item.
type RemoveInventoryItemInput struct {
	CharacterID string
	OwnerID     string
	ItemID      string
}

// RemoveInventoryItemOutput defines the output for removing an item.
type RemoveInventoryItemOutput struct{}

// ListInventoryInput defines the input for the inventory listing.
type ListInventoryInput struct {
	CharacterID string
	OwnerID     string
}

// ListInventoryOutput defines the output for the inventory listing.
type ListInventoryOutput struct {
	Items []*entities.InventoryItem
}

// AddCustomSpellInput defines the input for adding a custom spell.
type AddCustomSpellInput struct {
	CharacterID string
	OwnerID     string
	Spell       *entities.CustomSpell
}

// AddCustomSpellOutput defines the output for adding a custom spell.
type AddCustomSpellOutput struct {
	Spell *entities.CustomSpell
}

// UpdateCustomSpellInput defines the input for updating a custom spell.
type UpdateCustomSpellInput struct {
	CharacterID string
	OwnerID     string
	Spell       *entities.CustomSpell
}

// UpdateCustomSpellOutput defines the output for updating a custom spell.
type UpdateCustomSpellOutput struct {
	Spell *entities.CustomSpell
}

// RemoveCustomSpellInput defines the input for removing a custom spell.
type RemoveCustomSpellInput struct {
	CharacterID string
	OwnerID     string
	SpellID     string
}

// RemoveCustomSpellOutput defines the output for removing a custom spell.
type RemoveCustomSpellOutput struct{}

// ListCustomSpellsInput defines the input for the custom spell listing.
type ListCustomSpellsInput struct {
	CharacterID string
	OwnerID     string
}

// ListCustomSpellsOutput defines the output for the custom spell listing.
type ListCustomSpellsOutput struct {
	Spells []*entities.CustomSpell
}

// GetVaultInput defines the input for reading a vault balance.
type GetVaultInput struct {
	CharacterID string
	OwnerID     string
}

// GetVaultOutput defines the output for reading a vault balance.
type GetVaultOutput struct {
	Knuts     int64
	Breakdown rulebook.MoneyBreakdown
}

// DepositToVaultInput defines the input for a deposit, denominated in any
// mix of coins.
type DepositToVaultInput struct {
	CharacterID string
	OwnerID     string
	Galleons    int
	Sickles     int
	Knuts       int
}

// DepositToVaultOutput defines the output for a deposit.
type DepositToVaultOutput struct {
	Knuts     int64
	Breakdown rulebook.MoneyBreakdown
}

// SpendFromVaultInput defines the input for spending, denominated in any
// mix of coins.
type SpendFromVaultInput struct {
	CharacterID string
	OwnerID     string
	Galleons    int
	Sickles     int
	Knuts       int
}

// SpendFromVaultOutput defines the output for spending.
type SpendFromVaultOutput struct {
	Knuts     int64
	Breakdown rulebook.MoneyBreakdown
}
