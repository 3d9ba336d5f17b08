package snapshot_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/bedrock-effects/internal/charge"
	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/catalog"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots"
	"github.com/KirkDiggler/bedrock-effects/internal/services/snapshot"
	"github.com/KirkDiggler/bedrock-effects/internal/testutils"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/KirkDiggler/bedrock-effects/internal/world"
	"github.com/stretchr/testify/suite"
)

// gatedRepository holds every Save until the gate opens
type gatedRepository struct {
	snapshots.Repository
	gate    chan struct{}
	entered chan struct{}
	once    sync.Once
	deletes atomic.Int32
}

func (r *gatedRepository) Save(ctx context.Context, snap *snapshots.EntitySnapshot) error {
	r.once.Do(func() { close(r.entered) })
	<-r.gate
	return r.Repository.Save(ctx, snap)
}

func (r *gatedRepository) Delete(ctx context.Context, id string) error {
	defer r.deletes.Add(1)
	return r.Repository.Delete(ctx, id)
}

type SnapshotterTestSuite struct {
	suite.Suite
	ctx         context.Context
	loop        *tick.Loop
	world       *world.World
	scheduler   *custom.Scheduler
	manager     *effects.Manager
	repo        snapshots.Repository
	snapshotter *snapshot.Snapshotter
	frost       *effects.Definition
	player      host.Entity
}

func (s *SnapshotterTestSuite) SetupTest() {
	s.ctx = context.Background()

	var bus *events.Bus
	s.world, s.loop, bus = testutils.CreateTestWorld(s.T())

	var err error
	s.scheduler, err = custom.NewScheduler(&custom.SchedulerConfig{
		Registry: custom.NewRegistry(),
		Engine:   s.world,
		Loop:     s.loop,
	})
	s.Require().NoError(err)

	s.manager, err = effects.NewManager(&effects.ManagerConfig{
		Engine: s.world,
		Custom: s.scheduler,
		Loop:   s.loop,
		Bus:    bus,
		Charge: charge.NewTracker(),
	})
	s.Require().NoError(err)
	s.scheduler.Start()
	s.manager.Start()

	s.repo = snapshots.NewInMemoryRepository(nil, 0)
	s.snapshotter, err = snapshot.New(&snapshot.Config{
		Loop:          s.loop,
		Custom:        s.scheduler,
		Visual:        s.manager,
		Repository:    s.repo,
		IntervalTicks: 5,
	})
	s.Require().NoError(err)

	cat, err := catalog.Default()
	s.Require().NoError(err)
	var ok bool
	s.frost, ok = cat.Get("frost_walker")
	s.Require().True(ok)

	s.player = s.world.Spawn("minecraft:player", true, host.Vector3{})
}

func TestSnapshotterTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotterTestSuite))
}

func (s *SnapshotterTestSuite) TestCollect() {
	s.Require().NoError(s.manager.ApplyEffect(s.player, s.frost))
	s.loop.AdvanceBy(10)

	batch := s.snapshotter.Collect()

	s.Empty(batch.Vanished)
	s.Require().Len(batch.Snapshots, 1)
	snap := batch.Snapshots[0]
	s.Equal(string(s.player.ID()), snap.EntityID)
	s.Equal(uint64(10), snap.Tick)
	s.Require().Len(snap.Custom, 1)
	s.Equal("frost_walker", snap.Custom[0].Type)
	s.Equal(uint64(2400), snap.Custom[0].ExpiresAtTick)
	s.Equal(5, snap.Custom[0].Interval)
	s.Equal(2400, snap.Visual["frost_walker"])
	s.Positive(snap.PendingHandles)
}

func (s *SnapshotterTestSuite) TestCollectReportsVanishedEntities() {
	s.Require().NoError(s.manager.ApplyEffect(s.player, s.frost))
	s.loop.Advance()
	s.Len(s.snapshotter.Collect().Snapshots, 1)

	s.Require().NoError(s.world.Kill(s.player.ID()))
	s.loop.Advance()

	batch := s.snapshotter.Collect()
	s.Empty(batch.Snapshots)
	s.Equal([]string{string(s.player.ID())}, batch.Vanished)

	s.Empty(s.snapshotter.Collect().Vanished)
}

func (s *SnapshotterTestSuite) TestWriteDeletesVanished() {
	s.Require().NoError(s.repo.Save(s.ctx, testutils.CreateTestSnapshot("entity-0099", 1)))

	err := s.snapshotter.Write(s.ctx, snapshot.Batch{
		Snapshots: []*snapshots.EntitySnapshot{testutils.CreateTestSnapshot("entity-0001", 5)},
		Vanished:  []string{"entity-0099"},
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, "entity-0099")
	s.True(apperr.IsNotFound(err))

	stored, err := s.repo.Get(s.ctx, "entity-0001")
	s.Require().NoError(err)
	s.Equal(uint64(5), stored.Tick)
}

func (s *SnapshotterTestSuite) TestStartWritesOnInterval() {
	s.Require().NoError(s.manager.ApplyEffect(s.player, s.frost))
	s.snapshotter.Start(s.ctx)

	s.loop.AdvanceBy(5)
	s.snapshotter.Stop()

	stored, err := s.repo.Get(s.ctx, string(s.player.ID()))
	s.Require().NoError(err)
	s.Equal(uint64(5), stored.Tick)

	// Stopped snapshotters leave nothing scheduled behind
	s.snapshotter.Stop()
}

func (s *SnapshotterTestSuite) TestNewValidatesConfig() {
	_, err := snapshot.New(nil)
	s.True(apperr.IsInvalidArgument(err))

	_, err = snapshot.New(&snapshot.Config{
		Loop:          s.loop,
		Custom:        s.scheduler,
		Visual:        s.manager,
		Repository:    s.repo,
		IntervalTicks: 0,
	})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *SnapshotterTestSuite) TestDroppedPassKeepsItsDeletes() {
	repo := &gatedRepository{
		Repository: s.repo,
		gate:       make(chan struct{}),
		entered:    make(chan struct{}),
	}
	snapshotter, err := snapshot.New(&snapshot.Config{
		Loop:          s.loop,
		Custom:        s.scheduler,
		Visual:        s.manager,
		Repository:    repo,
		IntervalTicks: 5,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.manager.ApplyEffect(s.player, s.frost))
	snapshotter.Start(s.ctx)

	// Pass one parks the writer inside Save
	s.loop.AdvanceBy(5)
	select {
	case <-repo.entered:
	case <-time.After(time.Second):
		s.FailNow("writer never picked up the first pass")
	}

	// Pass two fills the queue
	s.loop.AdvanceBy(5)

	// Pass three sees the entity gone but the writer is still busy
	s.Require().NoError(s.world.Kill(s.player.ID()))
	s.loop.AdvanceBy(5)

	close(repo.gate)
	s.Eventually(func() bool {
		s.loop.AdvanceBy(5)
		return repo.deletes.Load() > 0
	}, time.Second, 10*time.Millisecond)

	snapshotter.Stop()
	_, err = s.repo.Get(s.ctx, string(s.player.ID()))
	s.True(apperr.IsNotFound(err))
}
