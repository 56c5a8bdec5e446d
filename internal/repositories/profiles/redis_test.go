package profiles_test

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
	"github.com/wizarding-rpg/character-api/internal/repositories/profiles"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      profiles.Repository
	authz     *profiles.Authorizer
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	repo, err := profiles.NewRedis(&profiles.RedisConfig{
		Client: s.client,
		Clock:  clock.NewFixed(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.repo = repo

	authz, err := profiles.NewAuthorizer(&profiles.AuthorizerConfig{
		Repository:  repo,
		AdminSecret: "alohomora",
	})
	s.Require().NoError(err)
	s.authz = authz
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
	out, err := s.repo.Get(s.ctx, profiles.GetInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestUpsertPreservesRole() {
	_, err := s.repo.SetRole(s.ctx, profiles.SetRoleInput{UserID: "user_1", Role: entities.RoleAdmin})
	s.Require().NoError(err)

	// A display-name update without a role keeps the grant.
	out, err := s.repo.Upsert(s.ctx, profiles.UpsertInput{
		Profile: &entities.Profile{UserID: "user_1", DisplayName: "Professor Vector"},
	})
	s.Require().NoError(err)
	s.Equal(entities.RoleAdmin, out.Profile.Role)
	s.Equal("Professor Vector", out.Profile.DisplayName)
}

func (s *RedisRepositoryTestSuite) TestIsAdmin() {
	ok, err := s.authz.IsAdmin(s.ctx, "user_1")
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.repo.SetRole(s.ctx, profiles.SetRoleInput{UserID: "user_1", Role: entities.RoleAdmin})
	s.Require().NoError(err)

	ok, err = s.authz.IsAdmin(s.ctx, "user_1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisRepositoryTestSuite) TestForbiddenOverridesAdmin() {
	_, err := s.repo.SetRole(s.ctx, profiles.SetRoleInput{UserID: "user_1", Role: entities.RoleForbidden})
	s.Require().NoError(err)

	ok, err := s.authz.IsAdmin(s.ctx, "user_1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisRepositoryTestSuite) TestGrantAdmin() {
	profile, err := s.authz.GrantAdmin(s.ctx, "user_1", "alohomora")
	s.Require().NoError(err)
	s.Equal(entities.RoleAdmin, profile.Role)

	ok, err := s.authz.IsAdmin(s.ctx, "user_1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisRepositoryTestSuite) TestGrantAdminWrongSecret() {
	_, err := s.authz.GrantAdmin(s.ctx, "user_1", "expelliarmus")
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *RedisRepositoryTestSuite) TestGrantAdminForbiddenUser() {
	_, err := s.repo.SetRole(s.ctx, profiles.SetRoleInput{UserID: "user_1", Role: entities.RoleForbidden})
	s.Require().NoError(err)

	_, err = s.authz.GrantAdmin(s.ctx, "user_1", "alohomora")
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *RedisRepositoryTestSuite) TestGrantAdminUnconfigured() {
	authz, err := profiles.NewAuthorizer(&profiles.AuthorizerConfig{Repository: s.repo})
	s.Require().NoError(err)

	_, err = authz.GrantAdmin(s.ctx, "user_1", "")
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
