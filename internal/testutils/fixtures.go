package testutils

import (
	"testing"

	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/KirkDiggler/bedrock-effects/internal/uuid"
	"github.com/KirkDiggler/bedrock-effects/internal/world"
	"github.com/stretchr/testify/require"
)

// CreateTestSnapshot creates a snapshot with one active frost_walker effect
func CreateTestSnapshot(entityID string, atTick uint64) *snapshots.EntitySnapshot {
	return &snapshots.EntitySnapshot{
		EntityID: entityID,
		Tick:     atTick,
		Custom: []snapshots.CustomSnapshot{
			{
				Type:          "frost_walker",
				Amplifier:     1,
				Duration:      10,
				ExpiresAtTick: atTick + 200,
			},
		},
		Visual:         map[string]int{"frost_walker": 200},
		PendingHandles: 2,
	}
}

// CreateTestWorld creates a world on a fresh loop and bus with sequential
// entity ids (entity-0001, entity-0002, ...)
func CreateTestWorld(t *testing.T) (*world.World, *tick.Loop, *events.Bus) {
	t.Helper()

	bus := events.NewBus()
	loop := tick.NewLoop()
	w, err := world.New(&world.Config{
		Bus:   bus,
		Clock: loop,
		IDs:   uuid.NewSequentialGenerator("entity"),
	})
	require.NoError(t, err)

	return w, loop, bus
}
