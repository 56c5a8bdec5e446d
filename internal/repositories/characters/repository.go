// Package characters provides the interface for character persistence.
package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=charactersmock github.com/wizarding-rpg/character-api/internal/repositories/characters Repository

import (
	"context"

	"github.com/wizarding-rpg/character-api/internal/entities"
)

// Repository defines the interface for character persistence.
//
// Every owner-scoped operation filters by owner id at the query level; a
// character that exists but belongs to someone else reads as NotFound,
// never as PermissionDenied. Admin variants omit the owner filter and must
// only be reached after an explicit role check by the caller.
type Repository interface {
	// Create inserts a new character row.
	// Returns errors.InvalidArgument for validation failures.
	// Returns errors.AlreadyExists if a character with the same ID exists.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a single active character scoped to its owner.
	// Returns errors.NotFound when the row is missing, archived, or owned
	// by someone else.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetAsAdmin retrieves a single active character without owner
	// scoping, annotated with owner info when the profile row is
	// readable.
	GetAsAdmin(ctx context.Context, input GetAsAdminInput) (*GetAsAdminOutput, error)

	// Update replaces an active character row scoped to (id, owner) and
	// bumps updated_at. Lifecycle fields are preserved from the stored
	// row; last write wins, there is no version check.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// UpdateSubclassChoice partially updates subclass and subclass
	// choices only, leaving the rest of the row untouched.
	UpdateSubclassChoice(ctx context.Context, input UpdateSubclassChoiceInput) (*UpdateSubclassChoiceOutput, error)

	// Archive soft-deletes an active character: active=false, archived_at
	// set. Archiving a row that is not currently active returns NotFound.
	Archive(ctx context.Context, input ArchiveInput) (*ArchiveOutput, error)

	// Restore reactivates an archived character: active=true, archived_at
	// cleared, restored_at set. Restoring a row that is not currently
	// archived returns NotFound.
	Restore(ctx context.Context, input RestoreInput) (*RestoreOutput, error)

	// ListByOwner retrieves all active characters for an owner.
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// ListArchived retrieves archived characters, newest-archived first,
	// optionally scoped to one owner.
	ListArchived(ctx context.Context, input ListArchivedInput) (*ListArchivedOutput, error)

	// ListAll retrieves every active character across owners, annotated
	// with owner info. Owner annotation degrades gracefully through a
	// chain of strategies; the final fallback returns bare rows with nil
	// owner info rather than failing.
	ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error)

	// AdvanceSchoolYear writes a new school year, the raised level, and
	// the hit-point gain together in a single row write, so a partial
	// failure can never leave the fields inconsistent.
	AdvanceSchoolYear(ctx context.Context, input AdvanceSchoolYearInput) (*AdvanceSchoolYearOutput, error)
}

// CreateInput defines the input for creating a character.
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character.
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character.
type GetInput struct {
	ID      string
	OwnerID string
}

// GetOutput defines the output for getting a character.
type GetOutput struct {
	Character *entities.Character
}

// GetAsAdminInput defines the input for the unscoped admin get.
type GetAsAdminInput struct {
	ID string
}

// GetAsAdminOutput defines the output for the unscoped admin get.
type GetAsAdminOutput struct {
	Character *entities.AdminCharacter
}

// UpdateInput defines the input for updating a character.
type UpdateInput struct {
	Character *entities.Character
	OwnerID   string
}

// UpdateOutput defines the output for updating a character.
type UpdateOutput struct {
	Character *entities.Character
}

// UpdateSubclassChoiceInput defines the input for the partial subclass
// update.
type UpdateSubclassChoiceInput struct {
	ID       string
	OwnerID  string
	Subclass string
	Choices  map[int]entities.SubclassChoice
}

// UpdateSubclassChoiceOutput defines the output for the partial subclass
// update.
type UpdateSubclassChoiceOutput struct {
	Character *entities.Character
}

// ArchiveInput defines the input for archiving a character.
type ArchiveInput struct {
	ID      string
	OwnerID string
}

// ArchiveOutput defines the output for archiving a character.
type ArchiveOutput struct {
	Character *entities.Character
}

// RestoreInput defines the input for restoring an archived character.
type RestoreInput struct {
	ID      string
	OwnerID string
}

// RestoreOutput defines the output for restoring an archived character.
type RestoreOutput struct {
	Character *entities.Character
}

// ListByOwnerInput defines the input for listing an owner's characters.
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's characters.
type ListByOwnerOutput struct {
	Characters []*entities.Character
}

// ListArchivedInput defines the input for listing archived characters.
// An empty OwnerID lists across all owners.
type ListArchivedInput struct {
	OwnerID string
}

// ListArchivedOutput defines the output for listing archived characters,
// newest-archived first.
type ListArchivedOutput struct {
	Characters []*entities.Character
}

// ListAllInput defines the input for the privileged cross-owner listing.
type ListAllInput struct{}

// ListAllOutput defines the output for the privileged cross-owner listing.
type ListAllOutput struct {
	Characters []*entities.AdminCharacter
	// Strategy names the join strategy that produced the result, for
	// diagnostics.
	Strategy string
}

// AdvanceSchoolYearInput defines the input for the school-year advance.
// HPIncrease is applied to both maximum and current hit points in the
// same row write as the year and level.
type AdvanceSchoolYearInput struct {
	ID            string
	OwnerID       string
	NewYear       int
	LevelIncrease int
	HPIncrease    int
}

// AdvanceSchoolYearOutput defines the output for the school-year advance.
type AdvanceSchoolYearOutput struct {
	Character     *entities.Character
	PreviousLevel int
}
