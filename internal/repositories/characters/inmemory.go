package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development. It mirrors the Redis implementation's scoping semantics.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
	profiles   map[string]*entities.OwnerInfo
	clock      clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory character repository.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		characters: make(map[string]*entities.Character),
		profiles:   make(map[string]*entities.OwnerInfo),
		clock:      c,
	}
}

// SetProfile registers owner info used to annotate admin listings.
func (r *InMemoryRepository) SetProfile(userID string, info *entities.OwnerInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[userID] = info
}

func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Character.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[input.Character.ID]; exists {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	now := r.clock.Now()
	character := *input.Character
	character.Active = true
	character.CreatedAt = now
	character.UpdatedAt = now
	r.characters[character.ID] = &character

	result := character
	return &CreateOutput{Character: &result}, nil
}

func (r *InMemoryRepository) getScopedLocked(id, ownerID string) (*entities.Character, error) {
	character, ok := r.characters[id]
	if !ok || !character.Active || character.OwnerID != ownerID {
		return nil, errors.NotFoundf("character with ID %s not found", id)
	}
	return character, nil
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, err := r.getScopedLocked(input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	result := *character
	return &GetOutput{Character: &result}, nil
}

func (r *InMemoryRepository) GetAsAdmin(_ context.Context, input GetAsAdminInput) (*GetAsAdminOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, ok := r.characters[input.ID]
	if !ok || !character.Active {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	result := *character
	return &GetAsAdminOutput{
		Character: &entities.AdminCharacter{
			Character: &result,
			Owner:     r.profiles[character.OwnerID],
		},
	}, nil
}

func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.getScopedLocked(input.Character.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	updated := *input.Character
	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.Active = existing.Active
	updated.CreatedAt = existing.CreatedAt
	updated.ArchivedAt = existing.ArchivedAt
	updated.RestoredAt = existing.RestoredAt
	updated.UpdatedAt = r.clock.Now()
	r.characters[updated.ID] = &updated

	result := updated
	return &UpdateOutput{Character: &result}, nil
}

func (r *InMemoryRepository) UpdateSubclassChoice(
	_ context.Context,
	input UpdateSubclassChoiceInput,
) (*UpdateSubclassChoiceOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	character, err := r.getScopedLocked(input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	character.Subclass = input.Subclass
	if input.Choices != nil {
		character.SubclassChoices = input.Choices
	}
	character.UpdatedAt = r.clock.Now()

	result := *character
	return &UpdateSubclassChoiceOutput{Character: &result}, nil
}

func (r *InMemoryRepository) Archive(_ context.Context, input ArchiveInput) (*ArchiveOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	character, err := r.getScopedLocked(input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	character.Active = false
	character.ArchivedAt = &now
	character.UpdatedAt = now

	result := *character
	return &ArchiveOutput{Character: &result}, nil
}

func (r *InMemoryRepository) Restore(_ context.Context, input RestoreInput) (*RestoreOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	character, ok := r.characters[input.ID]
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	if character.OwnerID != input.OwnerID || character.Active {
		return nil, errors.NotFoundf("archived character with ID %s not found", input.ID)
	}

	now := r.clock.Now()
	character.Active = true
	character.ArchivedAt = nil
	character.RestoredAt = &now
	character.UpdatedAt = now

	result := *character
	return &RestoreOutput{Character: &result}, nil
}

func (r *InMemoryRepository) ListByOwner(_ context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var characters []*entities.Character
	for _, character := range r.characters {
		if character.Active && character.OwnerID == input.OwnerID {
			result := *character
			characters = append(characters, &result)
		}
	}
	sortByID(characters)
	return &ListByOwnerOutput{Characters: characters}, nil
}

func (r *InMemoryRepository) ListArchived(_ context.Context, input ListArchivedInput) (*ListArchivedOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var characters []*entities.Character
	for _, character := range r.characters {
		if character.Active {
			continue
		}
		if input.OwnerID != "" && character.OwnerID != input.OwnerID {
			continue
		}
		result := *character
		characters = append(characters, &result)
	}

	// Newest-archived first.
	sort.Slice(characters, func(i, j int) bool {
		a, b := characters[i].ArchivedAt, characters[j].ArchivedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		if !a.Equal(*b) {
			return a.After(*b)
		}
		return characters[i].ID < characters[j].ID
	})
	return &ListArchivedOutput{Characters: characters}, nil
}

func (r *InMemoryRepository) ListAll(_ context.Context, _ ListAllInput) (*ListAllOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows []*entities.Character
	for _, character := range r.characters {
		if character.Active {
			result := *character
			rows = append(rows, &result)
		}
	}
	sortByID(rows)

	characters := make([]*entities.AdminCharacter, 0, len(rows))
	for _, row := range rows {
		characters = append(characters, &entities.AdminCharacter{
			Character: row,
			Owner:     r.profiles[row.OwnerID],
		})
	}
	return &ListAllOutput{Characters: characters, Strategy: StrategyPipelinedJoin}, nil
}

func (r *InMemoryRepository) AdvanceSchoolYear(
	_ context.Context,
	input AdvanceSchoolYearInput,
) (*AdvanceSchoolYearOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRange("newYear", input.NewYear, rulebook.MinSchoolYear, rulebook.MaxSchoolYear, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	levelIncrease := input.LevelIncrease
	if levelIncrease == 0 {
		levelIncrease = 1
	}
	if levelIncrease < 0 {
		return nil, errors.InvalidArgument("level increase cannot be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	character, err := r.getScopedLocked(input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	previousLevel := character.Level
	newLevel := previousLevel + levelIncrease
	if newLevel > rulebook.MaxLevel {
		newLevel = rulebook.MaxLevel
	}

	character.SchoolYear = input.NewYear
	character.Level = newLevel
	if input.HPIncrease > 0 {
		character.MaxHitPoints += input.HPIncrease
		character.CurrentHitPoints += input.HPIncrease
	}
	character.UpdatedAt = r.clock.Now()

	result := *character
	return &AdvanceSchoolYearOutput{Character: &result, PreviousLevel: previousLevel}, nil
}

func sortByID(characters []*entities.Character) {
	sort.Slice(characters, func(i, j int) bool {
		return characters[i].ID < characters[j].ID
	})
}
