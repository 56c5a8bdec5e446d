package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/orchestrators/character"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	"github.com/wizarding-rpg/character-api/internal/pkg/idgen"
	"github.com/wizarding-rpg/character-api/internal/repositories/characters"
	"github.com/wizarding-rpg/character-api/internal/repositories/inventory"
	"github.com/wizarding-rpg/character-api/internal/repositories/profiles"
	"github.com/wizarding-rpg/character-api/internal/repositories/resources"
	"github.com/wizarding-rpg/character-api/internal/repositories/spells"
	"github.com/wizarding-rpg/character-api/internal/repositories/vault"
)

// fixedRoller always rolls the same value per die.
type fixedRoller struct {
	perDie int
}

func (r fixedRoller) Roll(count, size int) (int, error) {
	return count * r.perDie, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	characterRepo *characters.InMemoryRepository
	resourceRepo  *resources.InMemoryRepository
	profileRepo   *profiles.InMemoryRepository
	roller        *fixedRoller
	orch          *character.Orchestrator
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	fixed := clock.NewFixed(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))
	s.characterRepo = characters.NewInMemory(fixed)
	s.resourceRepo = resources.NewInMemory()
	s.profileRepo = profiles.NewInMemory(fixed)
	s.roller = &fixedRoller{perDie: 6}
	s.ctx = context.Background()

	authz, err := profiles.NewAuthorizer(&profiles.AuthorizerConfig{
		Repository:  s.profileRepo,
		AdminSecret: "alohomora",
	})
	s.Require().NoError(err)

	orch, err := character.NewOrchestrator(&character.Config{
		CharacterRepo: s.characterRepo,
		ResourceRepo:  s.resourceRepo,
		InventoryRepo: inventory.NewInMemory(fixed),
		SpellRepo:     spells.NewInMemory(fixed),
		VaultRepo:     vault.NewInMemory(),
		Authorizer:    authz,
		IDGenerator:   idgen.NewSequential("char"),
		Roller:        s.roller,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) draft() *entities.Character {
	return &entities.Character{
		Name:         "Morrigan Blackwood",
		Level:        3,
		SchoolYear:   2,
		CastingStyle: entities.CastingStyleWillpower,
		House:        entities.HouseRavenclaw,
		AbilityScores: entities.AbilityScores{
			entities.AbilityConstitution: 14,
		},
		MaxHitPoints:     24,
		CurrentHitPoints: 24,
	}
}

func (s *OrchestratorTestSuite) mustCreate(ownerID string) *entities.Character {
	out, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID:   ownerID,
		Character: s.draft(),
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) makeAdmin(userID string) {
	_, err := s.profileRepo.SetRole(s.ctx, profiles.SetRoleInput{UserID: userID, Role: entities.RoleAdmin})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestCreateCharacterWritesInitialResources() {
	out, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID:   "user_1",
		Character: s.draft(),
	})
	s.Require().NoError(err)

	s.NotEmpty(out.Character.ID)
	s.Equal("user_1", out.Character.OwnerID)

	// Level 3 pools start full: 4 first-level, 2 second-level, 3 points.
	s.Equal(entities.Pool{Current: 4, Max: 4}, out.Resources.Slot(1))
	s.Equal(entities.Pool{Current: 2, Max: 2}, out.Resources.Slot(2))
	s.Equal(entities.Pool{Current: 3, Max: 3}, out.Resources.SorceryPoints)
}

func (s *OrchestratorTestSuite) TestCreateCharacterSeedsBackgroundEquipment() {
	draft := s.draft()
	draft.Background = "Bookworm"

	out, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID:   "user_1",
		Character: draft,
	})
	s.Require().NoError(err)

	items, err := s.orch.ListInventory(s.ctx, &character.ListInventoryInput{
		CharacterID: out.Character.ID,
		OwnerID:     "user_1",
	})
	s.Require().NoError(err)
	s.Require().Len(items.Items, 2)
	s.Equal("Ink and quill set", items.Items[0].Name)
	s.Equal("Well-worn spellbook", items.Items[1].Name)
}

func (s *OrchestratorTestSuite) TestCreateCharacterClampsLevel() {
	overLeveled := s.draft()
	overLeveled.Level = 25
	out, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID:   "user_1",
		Character: overLeveled,
	})
	s.Require().NoError(err)
	s.Equal(20, out.Character.Level)

	underLeveled := s.draft()
	underLeveled.Level = 0
	out, err = s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID:   "user_1",
		Character: underLeveled,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Character.Level)
}

func (s *OrchestratorTestSuite) TestCreateCharacterValidation() {
	nameless := s.draft()
	nameless.Name = ""
	_, err := s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID:   "user_1",
		Character: nameless,
	})
	s.True(errors.IsInvalidArgument(err))

	badStyle := s.draft()
	badStyle.CastingStyle = "necromancy"
	_, err = s.orch.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID:   "user_1",
		Character: badStyle,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetCharacterMaterializesDefaultResources() {
	// A row written without a satellite reads back with all-zero pools.
	_, err := s.characterRepo.Create(s.ctx, characters.CreateInput{
		Character: &entities.Character{ID: "char_raw", OwnerID: "user_1", Name: "Bare", Level: 1},
	})
	s.Require().NoError(err)

	out, err := s.orch.GetCharacter(s.ctx, &character.GetCharacterInput{ID: "char_raw", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Equal(entities.Pool{}, out.Resources.SorceryPoints)
	s.Equal(entities.Pool{}, out.Resources.Slot(1))
	s.NotNil(out.Features)
}

func (s *OrchestratorTestSuite) TestListCharactersMergesResources() {
	created := s.mustCreate("user_1")

	out, err := s.orch.ListCharacters(s.ctx, &character.ListCharactersInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal(created.ID, out.Characters[0].Character.ID)
	s.Equal(entities.Pool{Current: 4, Max: 4}, out.Characters[0].Resources.Slot(1))
}

func (s *OrchestratorTestSuite) TestUpdateSubclassChoice() {
	created := s.mustCreate("user_1")

	out, err := s.orch.UpdateSubclassChoice(s.ctx, &character.UpdateSubclassChoiceInput{
		ID:       created.ID,
		OwnerID:  "user_1",
		Subclass: "Charms",
		Choices:  map[string]any{"6": "Rapid Casting"},
	})
	s.Require().NoError(err)
	s.Equal("Charms", out.Character.Subclass)
	s.Equal("Rapid Casting", out.Character.SubclassChoices[6].Name)
}

func (s *OrchestratorTestSuite) TestUpdateSubclassChoiceObjectShape() {
	created := s.mustCreate("user_1")

	// The object form normalizes identically to the string form.
	out, err := s.orch.UpdateSubclassChoice(s.ctx, &character.UpdateSubclassChoiceInput{
		ID:       created.ID,
		OwnerID:  "user_1",
		Subclass: "Charms",
		Choices:  map[string]any{"6": map[string]any{"selectedChoice": "Rapid Casting"}},
	})
	s.Require().NoError(err)
	s.Equal("Rapid Casting", out.Character.SubclassChoices[6].Name)
}

func (s *OrchestratorTestSuite) TestUpdateSubclassChoiceRejectsNonMap() {
	created := s.mustCreate("user_1")

	_, err := s.orch.UpdateSubclassChoice(s.ctx, &character.UpdateSubclassChoiceInput{
		ID:       created.ID,
		OwnerID:  "user_1",
		Subclass: "Charms",
		Choices:  []any{"Rapid Casting"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateSubclassChoiceValidatesAgainstCatalog() {
	created := s.mustCreate("user_1")

	_, err := s.orch.UpdateSubclassChoice(s.ctx, &character.UpdateSubclassChoiceInput{
		ID:       created.ID,
		OwnerID:  "user_1",
		Subclass: "Charms",
		Choices:  map[string]any{"6": "Unstoppable Hex"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestArchiveRestoreRoundTrip() {
	created := s.mustCreate("user_1")

	_, err := s.orch.ArchiveCharacter(s.ctx, &character.ArchiveCharacterInput{ID: created.ID, OwnerID: "user_1"})
	s.Require().NoError(err)

	archived, err := s.orch.ListArchivedCharacters(s.ctx, &character.ListArchivedCharactersInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(archived.Characters, 1)

	_, err = s.orch.RestoreCharacter(s.ctx, &character.RestoreCharacterInput{ID: created.ID, OwnerID: "user_1"})
	s.Require().NoError(err)

	out, err := s.orch.GetCharacter(s.ctx, &character.GetCharacterInput{ID: created.ID, OwnerID: "user_1"})
	s.Require().NoError(err)
	s.True(out.Character.Active)
}

func (s *OrchestratorTestSuite) TestAdvanceSchoolYearAverageHP() {
	created := s.mustCreate("user_1")

	out, err := s.orch.AdvanceSchoolYear(s.ctx, &character.AdvanceSchoolYearInput{
		ID:      created.ID,
		OwnerID: "user_1",
		NewYear: 3,
	})
	s.Require().NoError(err)

	// Willpower is a d10: average gain 5+1, +2 constitution modifier.
	s.Equal(8, out.HPGain)
	s.Equal(3, out.PreviousLevel)
	s.Equal(4, out.Character.Level)
	s.Equal(3, out.Character.SchoolYear)
	s.Equal(32, out.Character.MaxHitPoints)
	s.Equal(32, out.Character.CurrentHitPoints)
}

func (s *OrchestratorTestSuite) TestAdvanceSchoolYearRolledHP() {
	created := s.mustCreate("user_1")
	s.roller.perDie = 9

	out, err := s.orch.AdvanceSchoolYear(s.ctx, &character.AdvanceSchoolYearInput{
		ID:      created.ID,
		OwnerID: "user_1",
		NewYear: 3,
		RollHP:  true,
	})
	s.Require().NoError(err)
	// 9 rolled + 2 constitution modifier.
	s.Equal(11, out.HPGain)
}

func (s *OrchestratorTestSuite) TestAdvanceSchoolYearTopsUpFullPools() {
	created := s.mustCreate("user_1")

	out, err := s.orch.AdvanceSchoolYear(s.ctx, &character.AdvanceSchoolYearInput{
		ID:      created.ID,
		OwnerID: "user_1",
		NewYear: 3,
	})
	s.Require().NoError(err)

	// Level 3 -> 4: first-level slot max stays 4, second-level stays 2,
	// sorcery points rise to 4 and top up because the pool was full.
	s.Equal(entities.Pool{Current: 4, Max: 4}, out.Resources.SorceryPoints)
}

func (s *OrchestratorTestSuite) TestAdvanceSchoolYearSpentSlotsStaySpent() {
	created := s.mustCreate("user_1")

	// Spend down to 1 of 4 first-level slots, then level 3 -> 5 where
	// the first-level maximum stays 4 but third-level slots unlock.
	for i := 0; i < 3; i++ {
		_, err := s.orch.SpendSpellSlot(s.ctx, &character.SpendSpellSlotInput{
			ID: created.ID, OwnerID: "user_1", SlotLevel: 1,
		})
		s.Require().NoError(err)
	}

	out, err := s.orch.AdvanceSchoolYear(s.ctx, &character.AdvanceSchoolYearInput{
		ID:            created.ID,
		OwnerID:       "user_1",
		NewYear:       3,
		LevelIncrease: 2,
	})
	s.Require().NoError(err)

	s.Equal(5, out.Character.Level)
	s.Equal(entities.Pool{Current: 1, Max: 4}, out.Resources.Slot(1))
	// A newly unlocked tier starts full.
	s.Equal(entities.Pool{Current: 2, Max: 2}, out.Resources.Slot(3))
}

func (s *OrchestratorTestSuite) TestSpendSpellSlot() {
	created := s.mustCreate("user_1")

	out, err := s.orch.SpendSpellSlot(s.ctx, &character.SpendSpellSlotInput{
		ID: created.ID, OwnerID: "user_1", SlotLevel: 2,
	})
	s.Require().NoError(err)
	s.Equal(entities.Pool{Current: 1, Max: 2}, out.Resources.Slot(2))
}

func (s *OrchestratorTestSuite) TestSpendSpellSlotExhausted() {
	created := s.mustCreate("user_1")

	// Level 3 has no third-level slots.
	_, err := s.orch.SpendSpellSlot(s.ctx, &character.SpendSpellSlotInput{
		ID: created.ID, OwnerID: "user_1", SlotLevel: 3,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSpendSorceryPoints() {
	created := s.mustCreate("user_1")

	out, err := s.orch.SpendSorceryPoints(s.ctx, &character.SpendSorceryPointsInput{
		ID: created.ID, OwnerID: "user_1", Amount: 2,
	})
	s.Require().NoError(err)
	s.Equal(entities.Pool{Current: 1, Max: 3}, out.Resources.SorceryPoints)

	_, err = s.orch.SpendSorceryPoints(s.ctx, &character.SpendSorceryPointsInput{
		ID: created.ID, OwnerID: "user_1", Amount: 2,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestConvertSlotToSorceryPointsCapped() {
	created := s.mustCreate("user_1")

	// Points are full at 3 of 3; converting a second-level slot gains
	// nothing beyond the cap.
	out, err := s.orch.ConvertSlotToSorceryPoints(s.ctx, &character.ConvertSlotToSorceryPointsInput{
		ID: created.ID, OwnerID: "user_1", SlotLevel: 2,
	})
	s.Require().NoError(err)
	s.Equal(0, out.PointsGained)
	s.Equal(entities.Pool{Current: 1, Max: 2}, out.Resources.Slot(2))

	// Spend down, then convert for a real gain.
	_, err = s.orch.SpendSorceryPoints(s.ctx, &character.SpendSorceryPointsInput{
		ID: created.ID, OwnerID: "user_1", Amount: 3,
	})
	s.Require().NoError(err)

	out, err = s.orch.ConvertSlotToSorceryPoints(s.ctx, &character.ConvertSlotToSorceryPointsInput{
		ID: created.ID, OwnerID: "user_1", SlotLevel: 2,
	})
	s.Require().NoError(err)
	s.Equal(2, out.PointsGained)
	s.Equal(entities.Pool{Current: 2, Max: 3}, out.Resources.SorceryPoints)
}

func (s *OrchestratorTestSuite) TestUseMetamagic() {
	created := s.mustCreate("user_1")

	out, err := s.orch.UseMetamagic(s.ctx, &character.UseMetamagicInput{
		ID: created.ID, OwnerID: "user_1", Metamagic: "Quickened Spell",
	})
	s.Require().NoError(err)
	s.Equal(2, out.Metamagic.Cost)
	s.Equal(entities.Pool{Current: 1, Max: 3}, out.Resources.SorceryPoints)

	_, err = s.orch.UseMetamagic(s.ctx, &character.UseMetamagicInput{
		ID: created.ID, OwnerID: "user_1", Metamagic: "Heightened Spell",
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestUseMetamagicUnknown() {
	created := s.mustCreate("user_1")

	_, err := s.orch.UseMetamagic(s.ctx, &character.UseMetamagicInput{
		ID: created.ID, OwnerID: "user_1", Metamagic: "Backfired Spell",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAdminSurfaceRequiresRole() {
	s.mustCreate("user_1")

	_, err := s.orch.ListAllCharacters(s.ctx, &character.ListAllCharactersInput{CallerID: "user_2"})
	s.True(errors.IsPermissionDenied(err))

	_, err = s.orch.ListAllCharacters(s.ctx, &character.ListAllCharactersInput{})
	s.True(errors.IsUnauthenticated(err))

	s.makeAdmin("user_2")
	out, err := s.orch.ListAllCharacters(s.ctx, &character.ListAllCharactersInput{CallerID: "user_2"})
	s.Require().NoError(err)
	s.Len(out.Characters, 1)
}

func (s *OrchestratorTestSuite) TestGetCharacterAsAdmin() {
	created := s.mustCreate("user_1")

	_, err := s.orch.GetCharacterAsAdmin(s.ctx, &character.GetCharacterAsAdminInput{
		CallerID: "user_2", ID: created.ID,
	})
	s.True(errors.IsPermissionDenied(err))

	s.makeAdmin("user_2")
	out, err := s.orch.GetCharacterAsAdmin(s.ctx, &character.GetCharacterAsAdminInput{
		CallerID: "user_2", ID: created.ID,
	})
	s.Require().NoError(err)
	s.Equal(created.ID, out.Character.Character.ID)
}

func (s *OrchestratorTestSuite) TestVaultDepositAndBreakdown() {
	created := s.mustCreate("user_1")

	out, err := s.orch.DepositToVault(s.ctx, &character.DepositToVaultInput{
		CharacterID: created.ID,
		OwnerID:     "user_1",
		Galleons:    2,
		Knuts:       14,
	})
	s.Require().NoError(err)
	s.Equal(int64(1000), out.Knuts)
	s.Equal(2, out.Breakdown.Galleons)
	s.Equal(0, out.Breakdown.Sickles)
	s.Equal(14, out.Breakdown.Knuts)
}

func (s *OrchestratorTestSuite) TestVaultSpendOverdraft() {
	created := s.mustCreate("user_1")

	_, err := s.orch.SpendFromVault(s.ctx, &character.SpendFromVaultInput{
		CharacterID: created.ID,
		OwnerID:     "user_1",
		Sickles:     1,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestBelongingsOwnershipGate() {
	created := s.mustCreate("user_1")

	// Another user cannot touch the character's belongings; the miss
	// reads as NotFound, not PermissionDenied.
	_, err := s.orch.ListInventory(s.ctx, &character.ListInventoryInput{
		CharacterID: created.ID,
		OwnerID:     "user_2",
	})
	s.True(errors.IsNotFound(err))

	_, err = s.orch.AddCustomSpell(s.ctx, &character.AddCustomSpellInput{
		CharacterID: created.ID,
		OwnerID:     "user_2",
		Spell:       &entities.CustomSpell{Name: "Glacius"},
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCustomSpellLifecycle() {
	created := s.mustCreate("user_1")

	added, err := s.orch.AddCustomSpell(s.ctx, &character.AddCustomSpellInput{
		CharacterID: created.ID,
		OwnerID:     "user_1",
		Spell:       &entities.CustomSpell{Name: "Glacius Maxima", Level: 3},
	})
	s.Require().NoError(err)
	s.Equal(entities.SpellStatusDraft, added.Spell.Status)

	modified := *added.Spell
	modified.Status = entities.SpellStatusApproved
	updated, err := s.orch.UpdateCustomSpell(s.ctx, &character.UpdateCustomSpellInput{
		CharacterID: created.ID,
		OwnerID:     "user_1",
		Spell:       &modified,
	})
	s.Require().NoError(err)
	s.Equal(entities.SpellStatusApproved, updated.Spell.Status)

	_, err = s.orch.RemoveCustomSpell(s.ctx, &character.RemoveCustomSpellInput{
		CharacterID: created.ID,
		OwnerID:     "user_1",
		SpellID:     added.Spell.ID,
	})
	s.Require().NoError(err)

	list, err := s.orch.ListCustomSpells(s.ctx, &character.ListCustomSpellsInput{
		CharacterID: created.ID,
		OwnerID:     "user_1",
	})
	s.Require().NoError(err)
	s.Empty(list.Spells)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
