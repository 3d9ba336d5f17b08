package handlers_test

import (
	"testing"

	"github.com/KirkDiggler/bedrock-effects/internal/charge"
	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/catalog"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/handlers"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	mockhost "github.com/KirkDiggler/bedrock-effects/internal/host/mock"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/KirkDiggler/bedrock-effects/internal/uuid"
	"github.com/KirkDiggler/bedrock-effects/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestPullEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	physics := mockhost.NewMockPhysics(ctrl)

	player := mockhost.NewMockEntity(ctrl)
	player.EXPECT().IsPlayer().Return(true).AnyTimes()
	player.EXPECT().Location().Return(host.Vector3{}).AnyTimes()

	item := mockhost.NewMockEntity(ctrl)
	item.EXPECT().ID().Return(host.EntityID("item-1")).AnyTimes()
	item.EXPECT().TypeID().Return("minecraft:item").AnyTimes()
	item.EXPECT().Location().Return(host.Vector3{X: 5}).AnyTimes()

	zombie := mockhost.NewMockEntity(ctrl)
	zombie.EXPECT().TypeID().Return("minecraft:zombie").AnyTimes()

	physics.EXPECT().NearbyEntities(host.Vector3{}, 10.0).Return([]host.Entity{item, zombie})
	physics.EXPECT().ApplyKnockback(host.EntityID("item-1"), host.Vector3{X: -1}, 0.1).Return(nil)

	err := handlers.NewPullEntities(physics).Handle(player, custom.Effect{Type: custom.PullEntities, Amplifier: 1})
	assert.NoError(t, err)
}

func TestPullEntities_IgnoresNonPlayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	physics := mockhost.NewMockPhysics(ctrl)

	zombie := mockhost.NewMockEntity(ctrl)
	zombie.EXPECT().IsPlayer().Return(false)

	assert.NoError(t, handlers.NewPullEntities(physics).Handle(zombie, custom.Effect{Amplifier: 1}))
}

type HandlersTestSuite struct {
	suite.Suite
	bus       *events.Bus
	loop      *tick.Loop
	world     *world.World
	registry  *custom.Registry
	scheduler *custom.Scheduler
	manager   *effects.Manager
	catalog   *catalog.Catalog

	player host.Entity
	zombie host.Entity
}

func (s *HandlersTestSuite) SetupTest() {
	s.bus = events.NewBus()
	s.loop = tick.NewLoop()
	s.registry = custom.NewRegistry()

	var err error
	s.world, err = world.New(&world.Config{Bus: s.bus, Clock: s.loop, IDs: uuid.NewSequentialGenerator("entity")})
	s.Require().NoError(err)

	s.catalog, err = catalog.Default()
	s.Require().NoError(err)

	s.scheduler, err = custom.NewScheduler(&custom.SchedulerConfig{Registry: s.registry, Engine: s.world, Loop: s.loop})
	s.Require().NoError(err)

	s.manager, err = effects.NewManager(&effects.ManagerConfig{
		Engine: s.world,
		Custom: s.scheduler,
		Loop:   s.loop,
		Bus:    s.bus,
		Charge: charge.NewTracker(),
	})
	s.Require().NoError(err)

	s.Require().NoError(handlers.RegisterDefaults(s.registry, &handlers.Deps{
		Engine:      s.world,
		Physics:     s.world,
		Blocks:      s.world,
		Loop:        s.loop,
		Bus:         s.bus,
		Effects:     s.manager,
		Active:      s.scheduler,
		Definitions: s.catalog,
	}))

	s.scheduler.Start()
	s.manager.Start()

	s.player = s.world.Spawn("minecraft:player", true, host.Vector3{Y: 64})
	s.zombie = s.world.Spawn("minecraft:zombie", false, host.Vector3{X: 2, Y: 64})
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) TestRegisterDefaults() {
	s.Empty(s.registry.Missing(custom.KnownTypes()...))

	intervals := map[custom.Type]int{
		custom.PullEntities:      1,
		custom.FreezeEntityOnHit: 0,
		custom.FireEntityOnHit:   0,
		custom.SwimSpeed:         1,
		custom.FrostWalker:       5,
		custom.LavaWalker:        1,
		custom.PlantGrowth:       20,
		custom.DoubleJump:        2,
	}
	for effectType, interval := range intervals {
		reg, ok := s.registry.Lookup(effectType)
		s.Require().True(ok, effectType)
		s.Equal(interval, reg.DefaultInterval, effectType)
	}

	// A second registration leaves the first in place
	s.NoError(handlers.RegisterDefaults(s.registry, &handlers.Deps{
		Engine:  s.world,
		Physics: s.world,
		Blocks:  s.world,
		Loop:    s.loop,
		Bus:     s.bus,
		Effects: s.manager,
		Active:  s.scheduler,
	}))
}

func (s *HandlersTestSuite) TestRegisterDefaultsRequiresDeps() {
	s.Error(handlers.RegisterDefaults(custom.NewRegistry(), &handlers.Deps{Engine: s.world}))
	s.Error(handlers.RegisterDefaults(nil, &handlers.Deps{}))
}

func (s *HandlersTestSuite) TestSwimSpeedInWater() {
	s.Require().NoError(s.world.SetInWater(s.player.ID(), true))
	swim := handlers.NewSwimSpeed(s.world, s.world, s.world)
	effect := custom.Effect{Type: custom.SwimSpeed, Amplifier: 2}

	s.Require().NoError(swim.Handle(s.player, effect))
	s.Require().NoError(swim.Handle(s.player, effect))

	s.InDelta(0.9, s.player.Location().Z, 1e-9)
	s.True(s.world.HasStatusEffect(s.player.ID(), "water_breathing"))
	s.Len(s.world.EmissionsFor(world.EmissionStatus), 1)
}

func (s *HandlersTestSuite) TestSwimSpeedOnWetBlocks() {
	swim := handlers.NewSwimSpeed(s.world, s.world, s.world)
	effect := custom.Effect{Type: custom.SwimSpeed, Amplifier: 2}

	s.Require().NoError(swim.Handle(s.player, effect))
	s.False(s.world.HasStatusEffect(s.player.ID(), "speed"))

	s.Require().NoError(s.world.SetBlock(host.Vector3{Y: 63}, "minecraft:mud"))
	s.Require().NoError(swim.Handle(s.player, effect))

	s.Equal(2, s.world.StatusEffects(s.player.ID())["speed"].Amplifier)
	s.Equal(host.Vector3{Y: 64}, s.player.Location())
}

func (s *HandlersTestSuite) TestFrostWalkerFreezesAndMelts() {
	for x := -4; x <= 4; x++ {
		for z := -4; z <= 4; z++ {
			s.Require().NoError(s.world.SetBlock(host.Vector3{X: float64(x), Y: 63, Z: float64(z)}, "minecraft:water"))
		}
	}
	frost := handlers.NewFrostWalker(s.world, s.loop)

	s.Require().NoError(frost.Handle(s.player, custom.Effect{Type: custom.FrostWalker, Amplifier: 1}))

	blockAt := func(x, z float64) string {
		typeID, _ := s.world.BlockAt(host.Vector3{X: x, Y: 63, Z: z})
		return typeID
	}
	s.Equal("minecraft:frosted_ice", blockAt(0, 0))
	s.Equal("minecraft:frosted_ice", blockAt(3, 0))
	s.Equal("minecraft:water", blockAt(3, 1))
	s.Equal("minecraft:water", blockAt(4, 0))

	s.loop.AdvanceBy(199)
	s.Equal("minecraft:frosted_ice", blockAt(0, 0))
	s.loop.Advance()
	s.Equal("minecraft:water", blockAt(0, 0))
}

func (s *HandlersTestSuite) TestLavaWalkerTransitions() {
	at := host.Vector3{Y: 62}
	s.Require().NoError(s.world.SetBlock(at, "minecraft:flowing_lava"))
	lava := handlers.NewLavaWalker(s.world, s.world, s.loop)

	s.Require().NoError(lava.Handle(s.player, custom.Effect{Type: custom.LavaWalker, Amplifier: 1}))

	typeID, _ := s.world.BlockAt(at)
	s.Equal("minecraft:basalt", typeID)

	s.loop.AdvanceBy(200)
	typeID, _ = s.world.BlockAt(at)
	s.Equal("minecraft:magma", typeID)

	s.loop.AdvanceBy(100)
	typeID, _ = s.world.BlockAt(at)
	s.Equal("minecraft:flowing_lava", typeID)
}

func (s *HandlersTestSuite) TestWalkersIgnoreNonPlayers() {
	s.Require().NoError(s.world.SetBlock(host.Vector3{X: 2, Y: 63}, "minecraft:water"))

	s.NoError(handlers.NewFrostWalker(s.world, s.loop).Handle(s.zombie, custom.Effect{Amplifier: 1}))

	typeID, _ := s.world.BlockAt(host.Vector3{X: 2, Y: 63})
	s.Equal("minecraft:water", typeID)
}

func (s *HandlersTestSuite) TestFireOnHitAppliesFireToVictims() {
	def, ok := s.catalog.Get("fire_entity_on_hit")
	s.Require().True(ok)
	s.Require().NoError(s.manager.ApplyEffect(s.player, def))

	s.loop.Advance()
	listenerID := "fire_entity_on_hit:" + string(s.player.ID())
	s.True(s.bus.HasListener(events.EntityHitEntity, listenerID))

	// Hits taken by the owner do nothing
	s.Require().NoError(s.world.Hit(s.zombie.ID(), s.player.ID()))
	owner, ok := s.manager.Snapshot(s.player.ID())
	s.Require().True(ok)
	s.NotContains(owner.Durations, "fire")

	s.Require().NoError(s.world.Hit(s.player.ID(), s.zombie.ID()))

	state, ok := s.manager.Snapshot(s.zombie.ID())
	s.Require().True(ok)
	s.Equal(100, state.Durations["fire"])

	var fireSounds int
	for _, e := range s.world.EmissionsFor(world.EmissionSound) {
		if e.ID == "sb_th:fire.hit" {
			fireSounds++
		}
	}
	s.Equal(1, fireSounds)

	s.loop.AdvanceBy(205)
	s.False(s.scheduler.IsActive(s.player.ID(), custom.FireEntityOnHit))
	s.False(s.bus.HasListener(events.EntityHitEntity, listenerID))
}

func (s *HandlersTestSuite) TestFreezeOnHitSlowsVictims() {
	def, ok := s.catalog.Get("freeze_entity_on_hit")
	s.Require().True(ok)
	s.Require().NoError(s.manager.ApplyEffect(s.player, def))
	s.loop.Advance()

	s.Require().NoError(s.world.Hit(s.player.ID(), s.zombie.ID()))

	slowness, ok := s.world.StatusEffects(s.zombie.ID())["minecraft:slowness"]
	s.Require().True(ok)
	s.Equal(5, slowness.Amplifier)
	s.Equal(100, slowness.DurationTicks)
}

func (s *HandlersTestSuite) TestPlantGrowthAdvancesCropsInRange() {
	crop := func(at host.Vector3, typeID string, stage int) {
		s.Require().NoError(s.world.SetBlock(at, typeID))
		s.Require().NoError(s.world.SetGrowthState(at, stage))
	}
	wheat := host.Vector3{X: 2, Y: 63}
	berries := host.Vector3{X: -1, Y: 64, Z: 1}
	ripe := host.Vector3{Z: 2, Y: 63}
	distant := host.Vector3{X: 4, Y: 63}
	crop(wheat, "minecraft:wheat", 0)
	crop(berries, "minecraft:sweet_berry_bush", 2)
	crop(ripe, "minecraft:carrots", 7)
	crop(distant, "minecraft:potatoes", 0)
	s.Require().NoError(s.world.SetBlock(host.Vector3{Y: 63}, "minecraft:dirt"))

	growth := handlers.NewPlantGrowth(s.world, s.world)
	effect := custom.Effect{Type: custom.PlantGrowth, Amplifier: 1}

	s.Require().NoError(growth.Handle(s.player, effect))
	s.Require().NoError(growth.Handle(s.player, effect))

	stage := func(at host.Vector3) int {
		v, ok := s.world.GrowthState(at)
		s.Require().True(ok)
		return v
	}
	s.Equal(2, stage(wheat))
	s.Equal(3, stage(berries))
	s.Equal(7, stage(ripe))
	s.Equal(0, stage(distant))

	var growthSounds int
	for _, e := range s.world.EmissionsFor(world.EmissionSound) {
		if e.ID == "item.bone_meal.use" {
			growthSounds++
		}
	}
	s.Equal(3, growthSounds)
	s.Len(s.world.EmissionsFor(world.EmissionParticle), 3)

	s.NoError(growth.Handle(s.zombie, custom.Effect{Amplifier: 5}))
	s.Equal(2, stage(wheat))
}

func (s *HandlersTestSuite) TestDoubleJump() {
	jump := handlers.NewDoubleJump(s.world, s.world, s.loop)
	effect := custom.Effect{Type: custom.DoubleJump, Amplifier: 1}
	id := s.player.ID()

	s.loop.AdvanceBy(3)
	s.Require().NoError(s.world.SetOnGround(id, false))
	s.Require().NoError(s.world.SetJumping(id, true))

	// The first press in the air is only recorded
	s.Require().NoError(jump.Handle(s.player, effect))
	s.Equal(64.0, s.player.Location().Y)

	// Still inside the cooldown
	s.loop.AdvanceBy(2)
	s.Require().NoError(jump.Handle(s.player, effect))
	s.Equal(64.0, s.player.Location().Y)

	s.loop.Advance()
	s.Require().NoError(jump.Handle(s.player, effect))
	s.Equal(65.0, s.player.Location().Y)
	s.Len(s.world.EmissionsFor(world.EmissionKnockback), 1)
	s.Len(s.world.EmissionsFor(world.EmissionSound), 1)

	// Only one extra jump per flight
	s.loop.AdvanceBy(5)
	s.Require().NoError(jump.Handle(s.player, effect))
	s.Len(s.world.EmissionsFor(world.EmissionKnockback), 1)

	// Landing restores it
	s.Require().NoError(s.world.SetOnGround(id, true))
	s.Require().NoError(jump.Handle(s.player, effect))
	s.Require().NoError(s.world.SetOnGround(id, false))
	s.loop.AdvanceBy(3)
	s.Require().NoError(jump.Handle(s.player, effect))
	s.loop.AdvanceBy(3)
	s.Require().NoError(jump.Handle(s.player, effect))
	s.Len(s.world.EmissionsFor(world.EmissionKnockback), 2)
}

func (s *HandlersTestSuite) TestDoubleJumpNeedsJumpHeld() {
	jump := handlers.NewDoubleJump(s.world, s.world, s.loop)
	s.Require().NoError(s.world.SetOnGround(s.player.ID(), false))

	for range 10 {
		s.loop.AdvanceBy(3)
		s.Require().NoError(jump.Handle(s.player, custom.Effect{Amplifier: 1}))
	}
	s.Empty(s.world.EmissionsFor(world.EmissionKnockback))

	s.NoError(jump.Handle(s.zombie, custom.Effect{Amplifier: 1}))
}
