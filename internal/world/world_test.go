package world_test

import (
	"testing"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/KirkDiggler/bedrock-effects/internal/uuid"
	"github.com/KirkDiggler/bedrock-effects/internal/world"
	"github.com/stretchr/testify/suite"
)

type WorldTestSuite struct {
	suite.Suite
	bus   *events.Bus
	loop  *tick.Loop
	world *world.World
}

func (s *WorldTestSuite) SetupTest() {
	s.bus = events.NewBus()
	s.loop = tick.NewLoop()

	var err error
	s.world, err = world.New(&world.Config{
		Bus:   s.bus,
		Clock: s.loop,
		IDs:   uuid.NewSequentialGenerator("entity"),
	})
	s.Require().NoError(err)
}

func TestWorldTestSuite(t *testing.T) {
	suite.Run(t, new(WorldTestSuite))
}

func (s *WorldTestSuite) TestSpawnAndResolve() {
	player := s.world.Spawn("minecraft:player", true, host.Vector3{X: 1, Y: 64, Z: 1})

	s.Equal(host.EntityID("entity-0001"), player.ID())

	resolved, ok := s.world.Entity(player.ID())
	s.Require().True(ok)
	s.True(resolved.IsPlayer())
	s.True(resolved.IsValid())
	s.Equal("minecraft:player", resolved.TypeID())
	s.Equal(host.Vector3{X: 1, Y: 64, Z: 1}, resolved.Location())

	_, ok = s.world.Entity("missing")
	s.False(ok)
}

func (s *WorldTestSuite) TestHandlesFollowTheEntity() {
	zombie := s.world.Spawn("minecraft:zombie", false, host.Vector3{})

	s.Require().NoError(s.world.Move(zombie.ID(), host.Vector3{X: 5}))

	s.Equal(host.Vector3{X: 5}, zombie.Location())
}

func (s *WorldTestSuite) TestKillEmitsDeath() {
	zombie := s.world.Spawn("minecraft:zombie", false, host.Vector3{})
	var died []host.EntityID
	s.bus.Subscribe(events.EntityDie, &events.ListenerFunc{
		ListenerID: "test",
		Fn: func(e events.Event) error {
			died = append(died, e.(*events.EntityDieEvent).Entity)
			return nil
		},
	})

	s.Require().NoError(s.world.Kill(zombie.ID()))

	s.Equal([]host.EntityID{zombie.ID()}, died)
	s.False(zombie.IsValid())

	err := s.world.Kill(zombie.ID())
	s.True(apperr.IsFailedPrecondition(err))
	s.True(apperr.IsNotFound(s.world.Kill("missing")))
}

func (s *WorldTestSuite) TestHitEmitsEvent() {
	player := s.world.Spawn("minecraft:player", true, host.Vector3{})
	zombie := s.world.Spawn("minecraft:zombie", false, host.Vector3{})
	var hits []*events.EntityHitEntityEvent
	s.bus.Subscribe(events.EntityHitEntity, &events.ListenerFunc{
		ListenerID: "test",
		Fn: func(e events.Event) error {
			hits = append(hits, e.(*events.EntityHitEntityEvent))
			return nil
		},
	})

	s.Require().NoError(s.world.Hit(player.ID(), zombie.ID()))

	s.Require().Len(hits, 1)
	s.Equal(player.ID(), hits[0].Damager)
	s.Equal(zombie.ID(), hits[0].Hit)
	s.True(apperr.IsNotFound(s.world.Hit(player.ID(), "missing")))
}

func (s *WorldTestSuite) TestNearbyEntitiesSkipsDeadAndDistant() {
	near := s.world.Spawn("minecraft:item", false, host.Vector3{X: 3})
	dead := s.world.Spawn("minecraft:item", false, host.Vector3{X: 1})
	s.world.Spawn("minecraft:item", false, host.Vector3{X: 30})
	s.Require().NoError(s.world.Kill(dead.ID()))

	found := s.world.NearbyEntities(host.Vector3{}, 10)

	s.Require().Len(found, 1)
	s.Equal(near.ID(), found[0].ID())
}

func (s *WorldTestSuite) TestKnockbackMovesEntity() {
	item := s.world.Spawn("minecraft:item", false, host.Vector3{X: 10})

	s.Require().NoError(s.world.ApplyKnockback(item.ID(), host.Vector3{X: -1}, 0.5))

	s.Equal(host.Vector3{X: 9.5}, item.Location())
	s.Len(s.world.EmissionsFor(world.EmissionKnockback), 1)
}

func (s *WorldTestSuite) TestBlocksUseBlockPositions() {
	s.Require().NoError(s.world.SetBlock(host.Vector3{X: 1.7, Y: 62.2, Z: -0.5}, "minecraft:water"))

	typeID, ok := s.world.BlockAt(host.Vector3{X: 1, Y: 62, Z: -1})

	s.True(ok)
	s.Equal("minecraft:water", typeID)
	s.True(apperr.IsInvalidArgument(s.world.SetBlock(host.Vector3{}, "")))
}

func (s *WorldTestSuite) TestFailingEmissions() {
	s.world.FailEmissions("bad:particle", true)

	s.Error(s.world.SpawnParticle("bad:particle", host.Vector3{}))
	s.NoError(s.world.SpawnParticle("good:particle", host.Vector3{}))

	s.world.FailEmissions("bad:particle", false)
	s.NoError(s.world.SpawnParticle("bad:particle", host.Vector3{}))
	s.Len(s.world.EmissionsFor(world.EmissionParticle), 2)
}

func (s *WorldTestSuite) TestStatusEffectsRunOut() {
	player := s.world.Spawn("minecraft:player", true, host.Vector3{})

	s.Require().NoError(s.world.AddStatusEffect(player.ID(), host.StatusEffect{
		Type:          "water_breathing",
		DurationTicks: 10,
	}))

	s.loop.AdvanceBy(9)
	s.True(s.world.HasStatusEffect(player.ID(), "water_breathing"))
	s.Contains(s.world.StatusEffects(player.ID()), "water_breathing")

	s.loop.Advance()
	s.False(s.world.HasStatusEffect(player.ID(), "water_breathing"))
}

func (s *WorldTestSuite) TestAnimationsOnlyOnPlayers() {
	player := s.world.Spawn("minecraft:player", true, host.Vector3{})
	zombie := s.world.Spawn("minecraft:zombie", false, host.Vector3{})

	s.NoError(s.world.PlayAnimation(player.ID(), host.Animation{Name: "animation.test"}))
	s.True(apperr.IsInvalidArgument(s.world.PlayAnimation(zombie.ID(), host.Animation{Name: "animation.test"})))

	animations := s.world.EmissionsFor(world.EmissionAnimation)
	s.Require().Len(animations, 1)
	s.Equal("animation.test", animations[0].Animation.Name)
}

func (s *WorldTestSuite) TestGrowthStateFollowsTheBlock() {
	at := host.Vector3{X: 2, Y: 64}

	s.True(apperr.IsNotFound(s.world.SetGrowthState(at, 1)))

	s.Require().NoError(s.world.SetBlock(at, "minecraft:wheat"))
	_, ok := s.world.GrowthState(at)
	s.False(ok)

	s.Require().NoError(s.world.SetGrowthState(at, 3))
	stage, ok := s.world.GrowthState(host.Vector3{X: 2.4, Y: 64.9})
	s.True(ok)
	s.Equal(3, stage)
	s.True(apperr.IsInvalidArgument(s.world.SetGrowthState(at, -1)))

	s.Require().NoError(s.world.SetBlock(at, "minecraft:dirt"))
	_, ok = s.world.GrowthState(at)
	s.False(ok)
}

func (s *WorldTestSuite) TestJumpState() {
	player := s.world.Spawn("minecraft:player", true, host.Vector3{})

	s.True(s.world.IsOnGround(player.ID()))
	s.False(s.world.IsJumping(player.ID()))

	s.Require().NoError(s.world.SetOnGround(player.ID(), false))
	s.Require().NoError(s.world.SetJumping(player.ID(), true))

	s.False(s.world.IsOnGround(player.ID()))
	s.True(s.world.IsJumping(player.ID()))
	s.False(s.world.IsOnGround("missing"))
}
