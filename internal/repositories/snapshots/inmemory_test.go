package snapshots

import (
	"context"
	"testing"
	"time"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	mocksnapshots "github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := mocksnapshots.NewMockTimeProvider(ctrl)

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := start
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	repo := NewInMemoryRepository(clock, time.Minute)

	t.Run("save and get return copies", func(t *testing.T) {
		snapshot := &EntitySnapshot{
			EntityID: "entity-0002",
			Tick:     40,
			Custom:   []CustomSnapshot{{Type: "swim_speed", Amplifier: 2}},
			Visual:   map[string]int{"swim_speed": 400},
		}
		require.NoError(t, repo.Save(ctx, snapshot))
		assert.Equal(t, start, snapshot.UpdatedAt)

		snapshot.Visual["swim_speed"] = 1
		snapshot.Custom[0].Amplifier = 9

		got, err := repo.Get(ctx, "entity-0002")
		require.NoError(t, err)
		assert.Equal(t, 400, got.Visual["swim_speed"])
		assert.Equal(t, 2, got.Custom[0].Amplifier)
	})

	t.Run("list is sorted", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, &EntitySnapshot{EntityID: "entity-0001"}))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "entity-0001", list[0].EntityID)
		assert.Equal(t, "entity-0002", list[1].EntityID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "entity-0001"))

		_, err := repo.Get(ctx, "entity-0001")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		now = start.Add(time.Minute)

		_, err := repo.Get(ctx, "entity-0002")
		assert.True(t, apperr.IsNotFound(err))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("validation", func(t *testing.T) {
		assert.True(t, apperr.IsInvalidArgument(repo.Save(ctx, nil)))
		assert.True(t, apperr.IsInvalidArgument(repo.Save(ctx, &EntitySnapshot{})))
	})
}
