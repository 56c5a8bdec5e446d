package spells

import (
	"context"
	"sort"
	"sync"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development.
type InMemoryRepository struct {
	mu     sync.RWMutex
	spells map[string]map[string]*entities.CustomSpell
	clock  clock.Clock
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory custom spell repository.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		spells: make(map[string]map[string]*entities.CustomSpell),
		clock:  c,
	}
}

func (r *InMemoryRepository) Add(_ context.Context, input AddInput) (*AddOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byID := r.spells[input.Spell.CharacterID]
	if byID == nil {
		byID = make(map[string]*entities.CustomSpell)
		r.spells[input.Spell.CharacterID] = byID
	}
	if _, exists := byID[input.Spell.ID]; exists {
		return nil, errors.AlreadyExistsf("spell with ID %s already exists", input.Spell.ID)
	}

	now := r.clock.Now()
	spell := *input.Spell
	if spell.Status == "" {
		spell.Status = entities.SpellStatusDraft
	}
	spell.CreatedAt = now
	spell.UpdatedAt = now
	byID[spell.ID] = &spell

	result := spell
	return &AddOutput{Spell: &result}, nil
}

func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSpell(input.Spell); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.spells[input.Spell.CharacterID][input.Spell.ID]
	if !ok {
		return nil, errors.NotFoundf("spell with ID %s not found", input.Spell.ID)
	}

	spell := *input.Spell
	if spell.Status == "" {
		spell.Status = existing.Status
	}
	spell.CreatedAt = existing.CreatedAt
	spell.UpdatedAt = r.clock.Now()
	r.spells[spell.CharacterID][spell.ID] = &spell

	result := spell
	return &UpdateOutput{Spell: &result}, nil
}

func (r *InMemoryRepository) Remove(_ context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument("spell ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spells[input.CharacterID][input.SpellID]; !ok {
		return nil, errors.NotFoundf("spell with ID %s not found", input.SpellID)
	}
	delete(r.spells[input.CharacterID], input.SpellID)
	return &RemoveOutput{}, nil
}

func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.CustomSpell, 0, len(r.spells[input.CharacterID]))
	for _, spell := range r.spells[input.CharacterID] {
		copied := *spell
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return &ListOutput{Spells: result}, nil
}
