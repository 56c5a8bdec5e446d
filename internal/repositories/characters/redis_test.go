package characters_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	"github.com/wizarding-rpg/character-api/internal/repositories/characters"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	clock     *clock.Fixed
	repo      characters.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.clock = &clock.Fixed{Time: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	repo, err := characters.NewRedis(&characters.RedisConfig{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.miniRedis != nil {
		s.miniRedis.Close()
	}
}

func (s *RedisRepositoryTestSuite) newCharacter(id, ownerID string) *entities.Character {
	return &entities.Character{
		ID:           id,
		OwnerID:      ownerID,
		Name:         "Morrigan Blackwood",
		Level:        3,
		SchoolYear:   2,
		CastingStyle: entities.CastingStyleIntellect,
		House:        entities.HouseRavenclaw,
	}
}

func (s *RedisRepositoryTestSuite) mustCreate(c *entities.Character) *entities.Character {
	out, err := s.repo.Create(s.ctx, characters.CreateInput{Character: c})
	s.Require().NoError(err)
	return out.Character
}

func (s *RedisRepositoryTestSuite) setProfile(userID, displayName string) {
	profile := entities.Profile{UserID: userID, DisplayName: displayName}
	data, err := json.Marshal(&profile)
	s.Require().NoError(err)
	s.Require().NoError(s.miniRedis.Set("profile:"+userID, string(data)))
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	created := s.mustCreate(s.newCharacter("char_1", "user_1"))

	s.True(created.Active)
	s.Equal(s.clock.Time, created.CreatedAt)
	s.Equal(s.clock.Time, created.UpdatedAt)

	s.True(s.miniRedis.Exists("character:char_1"))
	s.True(s.miniRedis.Exists("character:owner:user_1"))
	s.True(s.miniRedis.Exists("character:all"))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: s.newCharacter("char_1", "user_2")})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, characters.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, characters.CreateInput{Character: &entities.Character{OwnerID: "user_1"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	out, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Equal("Morrigan Blackwood", out.Character.Name)
	s.Equal(entities.HouseRavenclaw, out.Character.House)
}

func (s *RedisRepositoryTestSuite) TestGetWrongOwnerReadsAsNotFound() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	_, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char_1", OwnerID: "user_2"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
	s.False(errors.IsPermissionDenied(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, characters.GetInput{ID: "nope", OwnerID: "user_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdatePreservesLifecycleFields() {
	created := s.mustCreate(s.newCharacter("char_1", "user_1"))

	s.clock.Time = s.clock.Time.Add(time.Hour)

	modified := *created
	modified.Name = "Morrigan the Wise"
	modified.Level = 4
	modified.OwnerID = "someone_else" // must be ignored
	modified.CreatedAt = time.Time{}  // must be ignored

	out, err := s.repo.Update(s.ctx, characters.UpdateInput{Character: &modified, OwnerID: "user_1"})
	s.Require().NoError(err)

	s.Equal("Morrigan the Wise", out.Character.Name)
	s.Equal(4, out.Character.Level)
	s.Equal("user_1", out.Character.OwnerID)
	s.Equal(created.CreatedAt, out.Character.CreatedAt)
	s.True(out.Character.UpdatedAt.After(created.UpdatedAt))
}

func (s *RedisRepositoryTestSuite) TestUpdateSubclassChoice() {
	created := s.mustCreate(s.newCharacter("char_1", "user_1"))

	out, err := s.repo.UpdateSubclassChoice(s.ctx, characters.UpdateSubclassChoiceInput{
		ID:       "char_1",
		OwnerID:  "user_1",
		Subclass: "Charms",
		Choices:  map[int]entities.SubclassChoice{6: {Name: "Rapid Casting"}},
	})
	s.Require().NoError(err)
	s.Equal("Charms", out.Character.Subclass)
	s.Equal("Rapid Casting", out.Character.SubclassChoices[6].Name)
	// Unrelated fields untouched.
	s.Equal(created.Name, out.Character.Name)
	s.Equal(created.Level, out.Character.Level)
}

func (s *RedisRepositoryTestSuite) TestArchiveRestoreRoundTrip() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	archived, err := s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.False(archived.Character.Active)
	s.Require().NotNil(archived.Character.ArchivedAt)
	s.Equal(s.clock.Time, *archived.Character.ArchivedAt)

	// Archived rows drop out of the active listings.
	_, err = s.repo.Get(s.ctx, characters.GetInput{ID: "char_1", OwnerID: "user_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.ListByOwner(s.ctx, characters.ListByOwnerInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Empty(list.Characters)

	s.clock.Time = s.clock.Time.Add(time.Hour)

	restored, err := s.repo.Restore(s.ctx, characters.RestoreInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.True(restored.Character.Active)
	s.Nil(restored.Character.ArchivedAt)
	s.Require().NotNil(restored.Character.RestoredAt)
	s.Equal(s.clock.Time, *restored.Character.RestoredAt)

	out, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.True(out.Character.Active)
}

func (s *RedisRepositoryTestSuite) TestDoubleArchive() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	_, err := s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)

	_, err = s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_1", OwnerID: "user_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestRestoreActiveCharacter() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	_, err := s.repo.Restore(s.ctx, characters.RestoreInput{ID: "char_1", OwnerID: "user_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByOwner() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))
	s.mustCreate(s.newCharacter("char_2", "user_1"))
	s.mustCreate(s.newCharacter("char_3", "user_2"))

	out, err := s.repo.ListByOwner(s.ctx, characters.ListByOwnerInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("char_1", out.Characters[0].ID)
	s.Equal("char_2", out.Characters[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListByOwnerCleansDanglingIndex() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))
	s.mustCreate(s.newCharacter("char_2", "user_1"))

	// Simulate a row deleted out from under its index.
	s.miniRedis.Del("character:char_1")

	out, err := s.repo.ListByOwner(s.ctx, characters.ListByOwnerInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("char_2", out.Characters[0].ID)

	members, err := s.client.SMembers(s.ctx, "character:owner:user_1").Result()
	s.Require().NoError(err)
	s.Equal([]string{"char_2"}, members)
}

func (s *RedisRepositoryTestSuite) TestListArchivedNewestFirst() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))
	s.mustCreate(s.newCharacter("char_2", "user_1"))

	_, err := s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)

	s.clock.Time = s.clock.Time.Add(time.Hour)

	_, err = s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_2", OwnerID: "user_1"})
	s.Require().NoError(err)

	out, err := s.repo.ListArchived(s.ctx, characters.ListArchivedInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("char_2", out.Characters[0].ID)
	s.Equal("char_1", out.Characters[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListArchivedScopedToOwner() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))
	s.mustCreate(s.newCharacter("char_2", "user_2"))

	_, err := s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	_, err = s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_2", OwnerID: "user_2"})
	s.Require().NoError(err)

	out, err := s.repo.ListArchived(s.ctx, characters.ListArchivedInput{OwnerID: "user_2"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("char_2", out.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGetAsAdmin() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))
	s.setProfile("user_1", "Professor Vector")

	out, err := s.repo.GetAsAdmin(s.ctx, characters.GetAsAdminInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("char_1", out.Character.Character.ID)
	s.Require().NotNil(out.Character.Owner)
	s.Equal("Professor Vector", out.Character.Owner.DisplayName)
}

func (s *RedisRepositoryTestSuite) TestGetAsAdminMissingProfile() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	out, err := s.repo.GetAsAdmin(s.ctx, characters.GetAsAdminInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Nil(out.Character.Owner)
}

func (s *RedisRepositoryTestSuite) TestListAll() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))
	s.mustCreate(s.newCharacter("char_2", "user_2"))
	s.setProfile("user_1", "Professor Vector")

	out, err := s.repo.ListAll(s.ctx, characters.ListAllInput{})
	s.Require().NoError(err)
	s.Equal(characters.StrategyPipelinedJoin, out.Strategy)
	s.Require().Len(out.Characters, 2)

	s.Require().NotNil(out.Characters[0].Owner)
	s.Equal("Professor Vector", out.Characters[0].Owner.DisplayName)
	// user_2 has no profile; the row still lists, unannotated.
	s.Nil(out.Characters[1].Owner)
}

func (s *RedisRepositoryTestSuite) TestListAllExcludesArchived() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))
	s.mustCreate(s.newCharacter("char_2", "user_1"))

	_, err := s.repo.Archive(s.ctx, characters.ArchiveInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)

	out, err := s.repo.ListAll(s.ctx, characters.ListAllInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("char_2", out.Characters[0].Character.ID)
}

func (s *RedisRepositoryTestSuite) TestAdvanceSchoolYear() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	out, err := s.repo.AdvanceSchoolYear(s.ctx, characters.AdvanceSchoolYearInput{
		ID:      "char_1",
		OwnerID: "user_1",
		NewYear: 3,
	})
	s.Require().NoError(err)
	s.Equal(3, out.PreviousLevel)
	s.Equal(4, out.Character.Level)
	s.Equal(3, out.Character.SchoolYear)

	// Both fields landed together.
	stored, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Equal(4, stored.Character.Level)
	s.Equal(3, stored.Character.SchoolYear)
}

func (s *RedisRepositoryTestSuite) TestAdvanceSchoolYearAppliesHPGain() {
	c := s.newCharacter("char_1", "user_1")
	c.MaxHitPoints = 20
	c.CurrentHitPoints = 15
	s.mustCreate(c)

	out, err := s.repo.AdvanceSchoolYear(s.ctx, characters.AdvanceSchoolYearInput{
		ID:         "char_1",
		OwnerID:    "user_1",
		NewYear:    3,
		HPIncrease: 7,
	})
	s.Require().NoError(err)
	s.Equal(27, out.Character.MaxHitPoints)
	s.Equal(22, out.Character.CurrentHitPoints)
}

func (s *RedisRepositoryTestSuite) TestAdvanceSchoolYearCustomIncrease() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	out, err := s.repo.AdvanceSchoolYear(s.ctx, characters.AdvanceSchoolYearInput{
		ID:            "char_1",
		OwnerID:       "user_1",
		NewYear:       4,
		LevelIncrease: 3,
	})
	s.Require().NoError(err)
	s.Equal(6, out.Character.Level)
}

func (s *RedisRepositoryTestSuite) TestAdvanceSchoolYearClampsAtMaxLevel() {
	c := s.newCharacter("char_1", "user_1")
	c.Level = 19
	s.mustCreate(c)

	out, err := s.repo.AdvanceSchoolYear(s.ctx, characters.AdvanceSchoolYearInput{
		ID:            "char_1",
		OwnerID:       "user_1",
		NewYear:       7,
		LevelIncrease: 5,
	})
	s.Require().NoError(err)
	s.Equal(20, out.Character.Level)
}

func (s *RedisRepositoryTestSuite) TestAdvanceSchoolYearValidation() {
	s.mustCreate(s.newCharacter("char_1", "user_1"))

	_, err := s.repo.AdvanceSchoolYear(s.ctx, characters.AdvanceSchoolYearInput{
		ID:      "char_1",
		OwnerID: "user_1",
		NewYear: 8,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.AdvanceSchoolYear(s.ctx, characters.AdvanceSchoolYearInput{
		ID:      "char_1",
		OwnerID: "user_1",
		NewYear: 0,
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
