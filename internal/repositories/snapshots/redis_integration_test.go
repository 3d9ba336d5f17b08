//go:build integration
// +build integration

package snapshots_test

import (
	"context"
	"testing"
	"time"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots"
	"github.com/KirkDiggler/bedrock-effects/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo, err := snapshots.NewRedisRepository(&snapshots.RedisRepoConfig{
		Client: client,
		TTL:    time.Minute,
	})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("save and retrieve snapshot", func(t *testing.T) {
		snapshot := testutils.CreateTestSnapshot("entity-0001", 100)
		require.NoError(t, repo.Save(ctx, snapshot))

		retrieved, err := repo.Get(ctx, "entity-0001")
		require.NoError(t, err)
		assert.Equal(t, snapshot.Tick, retrieved.Tick)
		assert.Equal(t, snapshot.Custom, retrieved.Custom)
		assert.Equal(t, snapshot.Visual, retrieved.Visual)
		assert.False(t, retrieved.UpdatedAt.IsZero())

		ttl, err := client.TTL(ctx, "effects:snapshot:entity-0001").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("list skips and prunes expired keys", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, testutils.CreateTestSnapshot("entity-0002", 100)))
		require.NoError(t, client.Del(ctx, "effects:snapshot:entity-0002").Err())

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "entity-0001", list[0].EntityID)

		members, err := client.SMembers(ctx, "effects:snapshots").Result()
		require.NoError(t, err)
		assert.Equal(t, []string{"entity-0001"}, members)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "entity-0001"))

		_, err := repo.Get(ctx, "entity-0001")
		assert.True(t, apperr.IsNotFound(err))
	})
}
