package effect_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/bedrock-effects/internal/charge"
	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/catalog"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/services/effect"
	"github.com/KirkDiggler/bedrock-effects/internal/testutils"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/KirkDiggler/bedrock-effects/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// inlineLoop runs submitted work immediately so tests stay on one goroutine
type inlineLoop struct {
	*tick.Loop
}

func (l inlineLoop) Do(_ context.Context, fn func()) error {
	fn()
	return nil
}

type EffectServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	loop    *tick.Loop
	world   *world.World
	manager *effects.Manager
	tracker *charge.Tracker
	service effect.Service

	player host.Entity
	zombie host.Entity
}

func (s *EffectServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	var bus *events.Bus
	s.world, s.loop, bus = testutils.CreateTestWorld(s.T())

	cat, err := catalog.Default()
	s.Require().NoError(err)

	scheduler, err := custom.NewScheduler(&custom.SchedulerConfig{
		Registry: custom.NewRegistry(),
		Engine:   s.world,
		Loop:     s.loop,
	})
	s.Require().NoError(err)

	s.tracker = charge.NewTracker()
	s.manager, err = effects.NewManager(&effects.ManagerConfig{
		Engine: s.world,
		Custom: scheduler,
		Loop:   s.loop,
		Bus:    bus,
		Charge: s.tracker,
	})
	s.Require().NoError(err)

	scheduler.Start()
	s.manager.Start()

	s.service = effect.NewService(&effect.ServiceConfig{
		Loop:    inlineLoop{s.loop},
		World:   s.world,
		Manager: s.manager,
		Custom:  scheduler,
		Catalog: cat,
		Charge:  s.tracker,
	})

	s.player = s.world.Spawn("minecraft:player", true, host.Vector3{})
	s.zombie = s.world.Spawn("minecraft:zombie", false, host.Vector3{X: 3})
}

func TestEffectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EffectServiceTestSuite))
}

func (s *EffectServiceTestSuite) TestApplyByIDAndStatus() {
	s.Require().NoError(s.service.ApplyByID(s.ctx, string(s.player.ID()), "frost_walker"))
	s.loop.AdvanceBy(20)

	status, err := s.service.Status(s.ctx, string(s.player.ID()))
	s.Require().NoError(err)

	s.Equal(s.player.ID(), status.EntityID)
	s.Equal("minecraft:player", status.TypeID)
	s.True(status.Valid)
	s.Equal(uint64(20), status.Tick)
	s.Require().Len(status.Custom, 1)
	s.Equal(custom.FrostWalker, status.Custom[0].Effect.Type)
	s.Equal(2380, status.Custom[0].RemainingTicks)
	s.Equal(2400, status.Visual.Durations["frost_walker"])
	s.Empty(status.Charging)
}

func (s *EffectServiceTestSuite) TestApplyByIDStatusEffects() {
	s.Require().NoError(s.service.ApplyByID(s.ctx, string(s.zombie.ID()), "freeze_entity"))

	status, err := s.service.Status(s.ctx, string(s.zombie.ID()))
	s.Require().NoError(err)
	s.Require().Len(status.StatusEffects, 1)
	s.Equal("minecraft:slowness", status.StatusEffects[0].Type)
}

func (s *EffectServiceTestSuite) TestApplyByIDFailures() {
	err := s.service.ApplyByID(s.ctx, string(s.player.ID()), "missing")
	s.True(apperr.IsNotFound(err))

	err = s.service.ApplyByID(s.ctx, "entity-9999", "frost_walker")
	s.True(apperr.IsNotFound(err))

	s.Require().NoError(s.world.Kill(s.zombie.ID()))
	err = s.service.ApplyByID(s.ctx, string(s.zombie.ID()), "freeze_entity")
	s.True(apperr.IsFailedPrecondition(err))
}

func (s *EffectServiceTestSuite) TestStatusUnknownEntity() {
	_, err := s.service.Status(s.ctx, "entity-9999")
	s.True(apperr.IsNotFound(err))
}

func (s *EffectServiceTestSuite) TestChargeLifecycle() {
	id := string(s.player.ID())

	s.Require().NoError(s.service.StartCharge(s.ctx, id, "storm_staff"))

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("storm_staff", status.Charging)

	s.Require().NoError(s.service.ReleaseCharge(s.ctx, id))
	s.False(s.tracker.IsCharging(s.player.ID()))

	var released bool
	for _, e := range s.world.EmissionsFor(world.EmissionSound) {
		if e.ID == "sb_th:staff.release" {
			released = true
		}
	}
	s.True(released)

	s.True(apperr.IsFailedPrecondition(s.service.ReleaseCharge(s.ctx, id)))
	s.True(apperr.IsNotFound(s.service.StartCharge(s.ctx, id, "missing")))
}

func (s *EffectServiceTestSuite) TestDefinitions() {
	ids := s.service.Definitions()

	s.Contains(ids, "frost_walker")
	s.True(len(ids) > 10)
}

func TestService_RespectsCancelledContext(t *testing.T) {
	w, loop, _ := testutils.CreateTestWorld(t)
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	scheduler, err := custom.NewScheduler(&custom.SchedulerConfig{Registry: custom.NewRegistry(), Engine: w, Loop: loop})
	if err != nil {
		t.Fatal(err)
	}

	svc := effect.NewService(&effect.ServiceConfig{
		Loop:    loop,
		World:   w,
		Manager: &effects.Manager{},
		Custom:  scheduler,
		Catalog: cat,
		Charge:  charge.NewTracker(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing advances the loop, so only the context can end the wait
	_, err = svc.Status(ctx, "entity-0001")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewService_PanicsWithoutDeps(t *testing.T) {
	assert.Panics(t, func() {
		effect.NewService(&effect.ServiceConfig{})
	})
}
