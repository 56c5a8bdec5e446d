package character

import (
	"context"
	"log/slog"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/features"
	"github.com/wizarding-rpg/character-api/internal/pkg/idgen"
	"github.com/wizarding-rpg/character-api/internal/repositories/characters"
	"github.com/wizarding-rpg/character-api/internal/repositories/inventory"
	"github.com/wizarding-rpg/character-api/internal/repositories/resources"
	"github.com/wizarding-rpg/character-api/internal/repositories/spells"
	"github.com/wizarding-rpg/character-api/internal/repositories/vault"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

// Authorizer answers whether a caller may use the admin surface.
type Authorizer interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Config holds the dependencies for the character orchestrator.
type Config struct {
	CharacterRepo characters.Repository
	ResourceRepo  resources.Repository
	InventoryRepo inventory.Repository
	SpellRepo     spells.Repository
	VaultRepo     vault.Repository
	Authorizer    Authorizer
	IDGenerator   idgen.Generator
	// Roller backs rolled hit-point gains on level-up.
	Roller rulebook.Roller
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.ResourceRepo == nil {
		vb.RequiredField("ResourceRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.VaultRepo == nil {
		vb.RequiredField("VaultRepo")
	}
	if c.Authorizer == nil {
		vb.RequiredField("Authorizer")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Orchestrator implements Service.
type Orchestrator struct {
	characterRepo characters.Repository
	resourceRepo  resources.Repository
	inventoryRepo inventory.Repository
	spellRepo     spells.Repository
	vaultRepo     vault.Repository
	authorizer    Authorizer
	idGen         idgen.Generator
	roller        rulebook.Roller
}

var _ Service = (*Orchestrator)(nil)

// NewOrchestrator creates a new character orchestrator with the provided
// dependencies.
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		resourceRepo:  cfg.ResourceRepo,
		inventoryRepo: cfg.InventoryRepo,
		spellRepo:     cfg.SpellRepo,
		vaultRepo:     cfg.VaultRepo,
		authorizer:    cfg.Authorizer,
		idGen:         cfg.IDGenerator,
		roller:        cfg.Roller,
	}, nil
}

// CreateCharacter creates the character row, writes its initial casting
// resources from the progression tables, and seeds the background's
// starting equipment. Equipment seeding is best effort: a failure is
// logged and creation still succeeds.
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Character.Name, vb)
	if input.Character.CastingStyle != "" {
		errors.ValidateEnum("castingStyle", string(input.Character.CastingStyle), entities.CastingStyleNames, vb)
	}
	if input.Character.SchoolYear != 0 {
		errors.ValidateRange("schoolYear", input.Character.SchoolYear, rulebook.MinSchoolYear, rulebook.MaxSchoolYear, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character := *input.Character
	character.ID = o.idGen.Generate()
	character.OwnerID = input.OwnerID
	character.Level = rulebook.ClampLevel(character.Level)
	if character.SchoolYear == 0 {
		character.SchoolYear = rulebook.MinSchoolYear
	}

	createOut, err := o.characterRepo.Create(ctx, characters.CreateInput{Character: &character})
	if err != nil {
		return nil, err
	}
	created := createOut.Character

	initial := rulebook.InitialResources(created.ID, created.OwnerID, created.Level)
	resOut, err := o.resourceRepo.Upsert(ctx, resources.UpsertInput{Resources: initial})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write initial resources")
	}

	o.seedStartingEquipment(ctx, created)

	slog.InfoContext(ctx, "created character",
		"character_id", created.ID,
		"owner_id", created.OwnerID,
		"level", created.Level)

	return &CreateCharacterOutput{
		Character: created,
		Resources: resOut.Resources,
	}, nil
}

// seedStartingEquipment writes the background's starting equipment into
// the inventory. Failures never fail creation.
func (o *Orchestrator) seedStartingEquipment(ctx context.Context, c *entities.Character) {
	if c.Background == "" {
		return
	}
	bg, ok := rulebook.GetBackground(c.Background)
	if !ok {
		return
	}

	for _, eq := range bg.Equipment {
		_, err := o.inventoryRepo.Add(ctx, inventory.AddInput{Item: &entities.InventoryItem{
			ID:          o.idGen.Generate(),
			CharacterID: c.ID,
			Name:        eq.Name,
			Category:    eq.Category,
			Quantity:    eq.Quantity,
		}})
		if err != nil {
			slog.WarnContext(ctx, "failed to seed starting equipment",
				"character_id", c.ID,
				"item", eq.Name,
				"error", err.Error())
		}
	}
}

func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	getOut, err := o.characterRepo.Get(ctx, characters.GetInput{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	character := getOut.Character

	res, err := o.loadResources(ctx, character)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{
		Character: character,
		Resources: res,
		Features:  features.Aggregate(character),
	}, nil
}

// loadResources returns the character's satellite row, or a materialized
// all-zero default when none exists.
func (o *Orchestrator) loadResources(
	ctx context.Context,
	c *entities.Character,
) (*entities.CharacterResources, error) {
	out, err := o.resourceRepo.Get(ctx, resources.GetInput{CharacterID: c.ID, OwnerID: c.OwnerID})
	if err != nil {
		return nil, err
	}
	if !out.Found {
		return entities.DefaultResources(c.ID, c.OwnerID), nil
	}
	return out.Resources, nil
}

func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	listOut, err := o.characterRepo.ListByOwner(ctx, characters.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	summaries := make([]*CharacterSummary, 0, len(listOut.Characters))
	for _, c := range listOut.Characters {
		res, err := o.loadResources(ctx, c)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &CharacterSummary{Character: c, Resources: res})
	}
	return &ListCharactersOutput{Characters: summaries}, nil
}

func (o *Orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Character.Name, vb)
	if input.Character.CastingStyle != "" {
		errors.ValidateEnum("castingStyle", string(input.Character.CastingStyle), entities.CastingStyleNames, vb)
	}
	if input.Character.SchoolYear != 0 {
		errors.ValidateRange("schoolYear", input.Character.SchoolYear, rulebook.MinSchoolYear, rulebook.MaxSchoolYear, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character := *input.Character
	character.Level = rulebook.ClampLevel(character.Level)

	out, err := o.characterRepo.Update(ctx, characters.UpdateInput{
		Character: &character,
		OwnerID:   input.OwnerID,
	})
	if err != nil {
		return nil, err
	}
	return &UpdateCharacterOutput{Character: out.Character}, nil
}

// UpdateSubclassChoice normalizes the raw choice payload and validates
// recorded choices against the subclass catalog when the subclass is a
// known one.
func (o *Orchestrator) UpdateSubclassChoice(
	ctx context.Context,
	input *UpdateSubclassChoiceInput,
) (*UpdateSubclassChoiceOutput, error) {
	if input.Subclass == "" {
		return nil, errors.InvalidArgument("subclass cannot be empty")
	}

	choices, ok := entities.NormalizeSubclassChoices(input.Choices)
	if !ok {
		return nil, errors.InvalidArgument("choices must be a map of level to choice")
	}

	if subclass, known := rulebook.GetSubclass(input.Subclass); known {
		for level, choice := range choices {
			if choice.Name == "" {
				continue
			}
			if !subclass.HasChoice(level, choice.Name) {
				return nil, errors.InvalidArgumentf(
					"%s does not offer %q at level %d", input.Subclass, choice.Name, level)
			}
		}
	}

	out, err := o.characterRepo.UpdateSubclassChoice(ctx, characters.UpdateSubclassChoiceInput{
		ID:       input.ID,
		OwnerID:  input.OwnerID,
		Subclass: input.Subclass,
		Choices:  choices,
	})
	if err != nil {
		return nil, err
	}
	return &UpdateSubclassChoiceOutput{Character: out.Character}, nil
}

func (o *Orchestrator) ArchiveCharacter(ctx context.Context, input *ArchiveCharacterInput) (*ArchiveCharacterOutput, error) {
	out, err := o.characterRepo.Archive(ctx, characters.ArchiveInput{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	return &ArchiveCharacterOutput{Character: out.Character}, nil
}

func (o *Orchestrator) RestoreCharacter(ctx context.Context, input *RestoreCharacterInput) (*RestoreCharacterOutput, error) {
	out, err := o.characterRepo.Restore(ctx, characters.RestoreInput{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	return &RestoreCharacterOutput{Character: out.Character}, nil
}

func (o *Orchestrator) ListArchivedCharacters(
	ctx context.Context,
	input *ListArchivedCharactersInput,
) (*ListArchivedCharactersOutput, error) {
	out, err := o.characterRepo.ListArchived(ctx, characters.ListArchivedInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	return &ListArchivedCharactersOutput{Characters: out.Characters}, nil
}

func (o *Orchestrator) GetCharacterAsAdmin(
	ctx context.Context,
	input *GetCharacterAsAdminInput,
) (*GetCharacterAsAdminOutput, error) {
	if err := o.requireAdmin(ctx, input.CallerID); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.GetAsAdmin(ctx, characters.GetAsAdminInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &GetCharacterAsAdminOutput{Character: out.Character}, nil
}

func (o *Orchestrator) ListAllCharacters(
	ctx context.Context,
	input *ListAllCharactersInput,
) (*ListAllCharactersOutput, error) {
	if err := o.requireAdmin(ctx, input.CallerID); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.ListAll(ctx, characters.ListAllInput{})
	if err != nil {
		return nil, err
	}
	return &ListAllCharactersOutput{Characters: out.Characters, Strategy: out.Strategy}, nil
}

func (o *Orchestrator) requireAdmin(ctx context.Context, callerID string) error {
	if callerID == "" {
		return errors.Unauthenticated("caller ID is required")
	}
	ok, err := o.authorizer.IsAdmin(ctx, callerID)
	if err != nil {
		return errors.Wrap(err, "failed to check admin role")
	}
	if !ok {
		return errors.PermissionDenied("admin role required")
	}
	return nil
}

// AdvanceSchoolYear raises the school year and level together, applies
// the hit-point gain, and tops up casting resources per the progression
// tables. A pool's current is raised to the new maximum only when it was
// at or above the old maximum; spent slots stay spent.
func (o *Orchestrator) AdvanceSchoolYear(
	ctx context.Context,
	input *AdvanceSchoolYearInput,
) (*AdvanceSchoolYearOutput, error) {
	getOut, err := o.characterRepo.Get(ctx, characters.GetInput{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	character := getOut.Character

	levelIncrease := input.LevelIncrease
	if levelIncrease == 0 {
		levelIncrease = 1
	}
	if levelIncrease < 0 {
		return nil, errors.InvalidArgument("level increase cannot be negative")
	}

	newLevel := character.Level + levelIncrease
	if newLevel > rulebook.MaxLevel {
		newLevel = rulebook.MaxLevel
	}
	levelsGained := newLevel - character.Level

	conModifier := rulebook.AbilityModifier(character.AbilityScore(entities.AbilityConstitution))
	hpGain := 0
	for i := 0; i < levelsGained; i++ {
		if input.RollHP {
			gain, err := rulebook.RolledHPGain(character.CastingStyle, conModifier, o.roller)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll hit points")
			}
			hpGain += gain
		} else {
			hpGain += rulebook.AverageHPGain(character.CastingStyle, conModifier)
		}
	}
	if hpGain < 0 {
		hpGain = 0
	}

	advOut, err := o.characterRepo.AdvanceSchoolYear(ctx, characters.AdvanceSchoolYearInput{
		ID:            input.ID,
		OwnerID:       input.OwnerID,
		NewYear:       input.NewYear,
		LevelIncrease: levelIncrease,
		HPIncrease:    hpGain,
	})
	if err != nil {
		return nil, err
	}
	advanced := advOut.Character

	res, err := o.loadResources(ctx, advanced)
	if err != nil {
		return nil, err
	}
	rulebook.ApplyProgression(res, advanced.Level)

	resOut, err := o.resourceRepo.Upsert(ctx, resources.UpsertInput{Resources: res})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write progressed resources")
	}

	slog.InfoContext(ctx, "advanced school year",
		"character_id", advanced.ID,
		"school_year", advanced.SchoolYear,
		"level", advanced.Level,
		"hp_gain", hpGain)

	return &AdvanceSchoolYearOutput{
		Character:     advanced,
		Resources:     resOut.Resources,
		PreviousLevel: advOut.PreviousLevel,
		HPGain:        hpGain,
	}, nil
}
