package characters

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
)

// brokenPipeliner queues commands normally but always fails Exec,
// simulating a batch transport failure.
type brokenPipeliner struct {
	redis.Pipeliner
}

func (p brokenPipeliner) Exec(_ context.Context) ([]redis.Cmder, error) {
	return nil, errors.Internal("pipeline exec failed")
}

// degradedClient breaks pipelining and, optionally, profile reads while
// leaving character-row reads intact.
type degradedClient struct {
	redisclient.Client
	failProfileGets bool
}

func (c *degradedClient) Pipeline() redis.Pipeliner {
	return brokenPipeliner{Pipeliner: c.Client.Pipeline()}
}

func (c *degradedClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if c.failProfileGets && strings.HasPrefix(key, profileKeyPrefix) {
		cmd := redis.NewStringCmd(ctx, "get", key)
		cmd.SetErr(errors.Internal("profile read failed"))
		return cmd
	}
	return c.Client.Get(ctx, key)
}

func seedListAllFixtures(t *testing.T, mr *miniredis.Miniredis, client redisclient.Client) Repository {
	t.Helper()

	repo, err := NewRedis(&RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	ctx := context.Background()
	for _, fixture := range []struct{ id, owner string }{
		{"char_1", "user_1"},
		{"char_2", "user_2"},
	} {
		_, err := repo.Create(ctx, CreateInput{Character: &entities.Character{
			ID:      fixture.id,
			OwnerID: fixture.owner,
			Name:    "Fixture",
			Level:   1,
		}})
		require.NoError(t, err)
	}
	require.NoError(t, mr.Set("profile:user_1", `{"user_id":"user_1","display_name":"Professor Vector"}`))
	return repo
}

func TestListAllFallsBackToPerRowJoin(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	base := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = base.Close() }()

	degraded := &degradedClient{Client: base}
	repo := seedListAllFixtures(t, mr, degraded)

	out, err := repo.ListAll(context.Background(), ListAllInput{})
	require.NoError(t, err)

	assert.Equal(t, StrategyPerRowJoin, out.Strategy)
	require.Len(t, out.Characters, 2)
	require.NotNil(t, out.Characters[0].Owner)
	assert.Equal(t, "Professor Vector", out.Characters[0].Owner.DisplayName)
	assert.Nil(t, out.Characters[1].Owner)
}

func TestListAllFallsBackToBareRows(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	base := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = base.Close() }()

	degraded := &degradedClient{Client: base, failProfileGets: true}
	repo := seedListAllFixtures(t, mr, degraded)

	out, err := repo.ListAll(context.Background(), ListAllInput{})
	require.NoError(t, err)

	// With pipelining and profile reads both down, the listing still
	// serves bare rows.
	assert.Equal(t, StrategyBareRows, out.Strategy)
	require.Len(t, out.Characters, 2)
	for _, c := range out.Characters {
		assert.Nil(t, c.Owner)
	}
}

func TestListAllCorruptProfileAnnotatesNil(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	repo := seedListAllFixtures(t, mr, client)
	require.NoError(t, mr.Set("profile:user_1", "{not json"))

	out, err := repo.ListAll(context.Background(), ListAllInput{})
	require.NoError(t, err)

	// A corrupt profile never fails the listing, it just loses the
	// annotation.
	assert.Equal(t, StrategyPipelinedJoin, out.Strategy)
	require.Len(t, out.Characters, 2)
	assert.Nil(t, out.Characters[0].Owner)
}
