package resources_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/repositories/resources"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      resources.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	repo, err := resources.NewRedis(&resources.RedisConfig{Client: s.client})
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

func (s *RedisRepositoryTestSuite) TestGetMissingIsNotAnError() {
	out, err := s.repo.Get(s.ctx, resources.GetInput{CharacterID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.False(out.Found)
	s.Nil(out.Resources)
}

func (s *RedisRepositoryTestSuite) TestUpsertAndGet() {
	res := entities.DefaultResources("char_1", "user_1")
	res.SorceryPoints = entities.Pool{Current: 3, Max: 5}
	res.SetSlot(1, entities.Pool{Current: 2, Max: 4})

	_, err := s.repo.Upsert(s.ctx, resources.UpsertInput{Resources: res})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, resources.GetInput{CharacterID: "char_1", OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().True(out.Found)
	s.Equal(entities.Pool{Current: 3, Max: 5}, out.Resources.SorceryPoints)
	s.Equal(entities.Pool{Current: 2, Max: 4}, out.Resources.Slot(1))
}

func (s *RedisRepositoryTestSuite) TestUpsertClampsPools() {
	res := entities.DefaultResources("char_1", "user_1")
	res.SorceryPoints = entities.Pool{Current: 9, Max: 4}

	out, err := s.repo.Upsert(s.ctx, resources.UpsertInput{Resources: res})
	s.Require().NoError(err)
	s.Equal(entities.Pool{Current: 4, Max: 4}, out.Resources.SorceryPoints)
}

func (s *RedisRepositoryTestSuite) TestGetWrongOwnerReadsAsMissing() {
	res := entities.DefaultResources("char_1", "user_1")
	_, err := s.repo.Upsert(s.ctx, resources.UpsertInput{Resources: res})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, resources.GetInput{CharacterID: "char_1", OwnerID: "user_2"})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestUpsertCrossOwnerRejected() {
	_, err := s.repo.Upsert(s.ctx, resources.UpsertInput{
		Resources: entities.DefaultResources("char_1", "user_1"),
	})
	s.Require().NoError(err)

	_, err = s.repo.Upsert(s.ctx, resources.UpsertInput{
		Resources: entities.DefaultResources("char_1", "user_2"),
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpsertValidation() {
	_, err := s.repo.Upsert(s.ctx, resources.UpsertInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, resources.UpsertInput{
		Resources: &entities.CharacterResources{CharacterID: "char_1"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
