package spells_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	"github.com/wizarding-rpg/character-api/internal/repositories/spells"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      spells.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	repo, err := spells.NewRedis(&spells.RedisConfig{
		Client: s.client,
		Clock:  clock.NewFixed(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)),
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

func (s *RedisRepositoryTestSuite) newSpell(id string) *entities.CustomSpell {
	return &entities.CustomSpell{
		ID:          id,
		CharacterID: "char_1",
		Name:        "Glacius Maxima",
		Level:       3,
		CastingTime: "1 action",
		Range:       "60 feet",
		DamageDice:  "6d6",
	}
}

func (s *RedisRepositoryTestSuite) TestAddDefaultsToDraft() {
	out, err := s.repo.Add(s.ctx, spells.AddInput{Spell: s.newSpell("spell_1")})
	s.Require().NoError(err)
	s.Equal(entities.SpellStatusDraft, out.Spell.Status)
}

func (s *RedisRepositoryTestSuite) TestAddInvalidStatus() {
	spell := s.newSpell("spell_1")
	spell.Status = "published"
	_, err := s.repo.Add(s.ctx, spells.AddInput{Spell: spell})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateStatusTransition() {
	_, err := s.repo.Add(s.ctx, spells.AddInput{Spell: s.newSpell("spell_1")})
	s.Require().NoError(err)

	modified := s.newSpell("spell_1")
	modified.Status = entities.SpellStatusApproved

	out, err := s.repo.Update(s.ctx, spells.UpdateInput{Spell: modified})
	s.Require().NoError(err)
	s.Equal(entities.SpellStatusApproved, out.Spell.Status)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, spells.UpdateInput{Spell: s.newSpell("nope")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestRemoveAndList() {
	_, err := s.repo.Add(s.ctx, spells.AddInput{Spell: s.newSpell("spell_1")})
	s.Require().NoError(err)

	second := s.newSpell("spell_2")
	second.Name = "Avis Flock"
	_, err = s.repo.Add(s.ctx, spells.AddInput{Spell: second})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, spells.ListInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 2)
	s.Equal("Avis Flock", out.Spells[0].Name)

	_, err = s.repo.Remove(s.ctx, spells.RemoveInput{CharacterID: "char_1", SpellID: "spell_1"})
	s.Require().NoError(err)

	out, err = s.repo.List(s.ctx, spells.ListInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 1)
	s.Equal("spell_2", out.Spells[0].ID)

	_, err = s.repo.Remove(s.ctx, spells.RemoveInput{CharacterID: "char_1", SpellID: "spell_1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
