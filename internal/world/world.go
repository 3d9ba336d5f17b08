// Package world is an in-memory host for running effects without a game engine
package world

import (
	"log"
	"slices"
	"sync"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/KirkDiggler/bedrock-effects/internal/uuid"
)

// EmissionKind is what the engine was asked to do
type EmissionKind string

const (
	EmissionParticle  EmissionKind = "particle"
	EmissionSound     EmissionKind = "sound"
	EmissionAnimation EmissionKind = "animation"
	EmissionStatus    EmissionKind = "status"
	EmissionKnockback EmissionKind = "knockback"
)

// Emission records one outbound engine call
type Emission struct {
	Tick      uint64
	Kind      EmissionKind
	ID        string
	Entity    host.EntityID
	At        host.Vector3
	Animation *host.Animation
}

type status struct {
	effect    host.StatusEffect
	expiresAt uint64
}

type entityState struct {
	id       host.EntityID
	typeID   string
	player   bool
	valid    bool
	location host.Vector3
	view     host.Vector3
	inWater  bool
	onGround bool
	jumping  bool
	statuses map[string]status
}

// Config holds the world's collaborators
type Config struct {
	Bus   *events.Bus
	Clock tick.Scheduler
	IDs   uuid.Generator
}

// World implements host.Engine, host.Physics and host.Blocks in memory
type World struct {
	bus   *events.Bus
	clock tick.Scheduler
	ids   uuid.Generator

	mu        sync.RWMutex
	entities  map[host.EntityID]*entityState
	blocks    map[host.Vector3]string
	growth    map[host.Vector3]int
	emissions []Emission
	failing   map[string]bool
}

// New creates an empty world
func New(cfg *Config) (*World, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("world config is required")
	}
	if cfg.Bus == nil {
		return nil, apperr.InvalidArgument("event bus is required")
	}
	if cfg.Clock == nil {
		return nil, apperr.InvalidArgument("clock is required")
	}

	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	return &World{
		bus:      cfg.Bus,
		clock:    cfg.Clock,
		ids:      ids,
		entities: make(map[host.EntityID]*entityState),
		blocks:   make(map[host.Vector3]string),
		growth:   make(map[host.Vector3]int),
		failing:  make(map[string]bool),
	}, nil
}

// Spawn adds a living entity at a location
func (w *World) Spawn(typeID string, player bool, at host.Vector3) host.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := &entityState{
		id:       host.EntityID(w.ids.New()),
		typeID:   typeID,
		player:   player,
		valid:    true,
		location: at,
		view:     host.Vector3{Z: 1},
		onGround: true,
		statuses: make(map[string]status),
	}
	w.entities[state.id] = state
	log.Printf("World: Spawned %s %s at %+v", typeID, state.id, at)

	return &entity{world: w, id: state.id}
}

// Entity resolves an id. Dead entities still resolve but report invalid.
func (w *World) Entity(id host.EntityID) (host.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if _, ok := w.entities[id]; !ok {
		return nil, false
	}
	return &entity{world: w, id: id}, true
}

// Entities returns every entity, living or dead, sorted by id
func (w *World) Entities() []host.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]host.Entity, 0, len(w.entities))
	for _, id := range w.sortedIDs() {
		out = append(out, &entity{world: w, id: id})
	}
	return out
}

// Kill marks the entity invalid and emits entity_die
func (w *World) Kill(id host.EntityID) error {
	w.mu.Lock()
	state, ok := w.entities[id]
	if !ok {
		w.mu.Unlock()
		return apperr.NotFoundf("entity %s not found", id)
	}
	if !state.valid {
		w.mu.Unlock()
		return apperr.FailedPrecondition("entity is already dead").WithMeta("entity_id", string(id))
	}
	state.valid = false
	w.mu.Unlock()

	return w.bus.Emit(events.NewEntityDieEvent(id))
}

// Remove forgets an entity without a death event, like a chunk unload
func (w *World) Remove(id host.EntityID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entities, id)
}

// Hit emits entity_hit_entity
func (w *World) Hit(damager, hit host.EntityID) error {
	w.mu.RLock()
	_, okDamager := w.entities[damager]
	_, okHit := w.entities[hit]
	w.mu.RUnlock()

	if !okDamager || !okHit {
		return apperr.NotFoundf("hit between %s and %s references an unknown entity", damager, hit)
	}
	return w.bus.Emit(events.NewEntityHitEntityEvent(damager, hit))
}

// Move teleports an entity
func (w *World) Move(id host.EntityID, to host.Vector3) error {
	return w.update(id, func(s *entityState) { s.location = to })
}

// Look sets an entity's view direction
func (w *World) Look(id host.EntityID, direction host.Vector3) error {
	return w.update(id, func(s *entityState) { s.view = direction.Normalize() })
}

// SetInWater marks an entity as submerged or not
func (w *World) SetInWater(id host.EntityID, inWater bool) error {
	return w.update(id, func(s *entityState) { s.inWater = inWater })
}

// SetOnGround marks an entity as standing on a block or airborne
func (w *World) SetOnGround(id host.EntityID, onGround bool) error {
	return w.update(id, func(s *entityState) { s.onGround = onGround })
}

// SetJumping marks an entity as holding jump
func (w *World) SetJumping(id host.EntityID, jumping bool) error {
	return w.update(id, func(s *entityState) { s.jumping = jumping })
}

// FailEmissions makes particle and sound calls for effectID return an error
func (w *World) FailEmissions(effectID string, fail bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if fail {
		w.failing[effectID] = true
		return
	}
	delete(w.failing, effectID)
}

// Emissions returns a copy of every recorded engine call
func (w *World) Emissions() []Emission {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.emissions)
}

// EmissionsFor returns the recorded calls of one kind
func (w *World) EmissionsFor(kind EmissionKind) []Emission {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []Emission
	for _, e := range w.emissions {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// ResetEmissions forgets the recorded calls
func (w *World) ResetEmissions() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.emissions = nil
}

// SpawnParticle records a particle
func (w *World) SpawnParticle(particleID string, at host.Vector3) error {
	return w.emit(EmissionParticle, particleID, at)
}

// PlaySound records a sound
func (w *World) PlaySound(soundID string, at host.Vector3) error {
	return w.emit(EmissionSound, soundID, at)
}

// PlayAnimation records an animation on a player
func (w *World) PlayAnimation(target host.EntityID, animation host.Animation) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	state, ok := w.entities[target]
	if !ok {
		return apperr.NotFoundf("entity %s not found", target)
	}
	if !state.player {
		return apperr.InvalidArgumentf("entity %s is not a player", target)
	}

	w.record(Emission{
		Kind:      EmissionAnimation,
		ID:        animation.Name,
		Entity:    target,
		At:        state.location,
		Animation: &animation,
	})
	return nil
}

// AddStatusEffect stores a status effect until it runs out
func (w *World) AddStatusEffect(target host.EntityID, effect host.StatusEffect) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	state, ok := w.entities[target]
	if !ok {
		return apperr.NotFoundf("entity %s not found", target)
	}
	if !state.valid {
		return apperr.FailedPrecondition("entity is dead").WithMeta("entity_id", string(target))
	}

	state.statuses[effect.Type] = status{
		effect:    effect,
		expiresAt: w.clock.CurrentTick() + uint64(max(effect.DurationTicks, 0)),
	}
	w.record(Emission{Kind: EmissionStatus, ID: effect.Type, Entity: target, At: state.location})
	return nil
}

// HasStatusEffect reports whether the status effect is still running
func (w *World) HasStatusEffect(target host.EntityID, effectType string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	state, ok := w.entities[target]
	if !ok {
		return false
	}
	s, ok := state.statuses[effectType]
	return ok && w.clock.CurrentTick() < s.expiresAt
}

// StatusEffects returns the running status effects of an entity by type
func (w *World) StatusEffects(target host.EntityID) map[string]host.StatusEffect {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make(map[string]host.StatusEffect)
	state, ok := w.entities[target]
	if !ok {
		return out
	}
	now := w.clock.CurrentTick()
	for t, s := range state.statuses {
		if now < s.expiresAt {
			out[t] = s.effect
		}
	}
	return out
}

// NearbyEntities returns living entities within radius of center, sorted by id
func (w *World) NearbyEntities(center host.Vector3, radius float64) []host.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []host.Entity
	for _, id := range w.sortedIDs() {
		state := w.entities[id]
		if !state.valid {
			continue
		}
		if state.location.Sub(center).Length() <= radius {
			out = append(out, &entity{world: w, id: id})
		}
	}
	return out
}

// ApplyKnockback moves an entity by direction*strength
func (w *World) ApplyKnockback(target host.EntityID, direction host.Vector3, strength float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	state, ok := w.entities[target]
	if !ok {
		return apperr.NotFoundf("entity %s not found", target)
	}
	state.location = state.location.Add(direction.Scale(strength))
	w.record(Emission{Kind: EmissionKnockback, Entity: target, At: state.location})
	return nil
}

// IsInWater reports whether the entity is submerged
func (w *World) IsInWater(target host.EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	state, ok := w.entities[target]
	return ok && state.inWater
}

// IsOnGround reports whether the entity stands on a block
func (w *World) IsOnGround(target host.EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	state, ok := w.entities[target]
	return ok && state.onGround
}

// IsJumping reports whether the entity is holding jump
func (w *World) IsJumping(target host.EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	state, ok := w.entities[target]
	return ok && state.jumping
}

// BlockAt returns the block type at a position. Unset positions are air.
func (w *World) BlockAt(at host.Vector3) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	typeID, ok := w.blocks[at.Block()]
	return typeID, ok
}

// SetBlock places a block
func (w *World) SetBlock(at host.Vector3, typeID string) error {
	if typeID == "" {
		return apperr.InvalidArgument("block type is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.blocks[at.Block()] = typeID
	delete(w.growth, at.Block())
	return nil
}

// GrowthState returns the growth stage of a crop block
func (w *World) GrowthState(at host.Vector3) (int, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	stage, ok := w.growth[at.Block()]
	return stage, ok
}

// SetGrowthState sets the growth stage of an existing block. Placing a new
// block clears it.
func (w *World) SetGrowthState(at host.Vector3, stage int) error {
	if stage < 0 {
		return apperr.InvalidArgumentf("growth stage must not be negative, got %d", stage)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	pos := at.Block()
	if _, ok := w.blocks[pos]; !ok {
		return apperr.NotFoundf("no block at %+v", pos)
	}
	w.growth[pos] = stage
	return nil
}

func (w *World) emit(kind EmissionKind, effectID string, at host.Vector3) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.failing[effectID] {
		return apperr.Newf(apperr.CodeUnavailable, "%s %s rejected", kind, effectID)
	}
	w.record(Emission{Kind: kind, ID: effectID, At: at})
	return nil
}

// record must be called with the write lock held
func (w *World) record(e Emission) {
	e.Tick = w.clock.CurrentTick()
	w.emissions = append(w.emissions, e)
}

func (w *World) update(id host.EntityID, fn func(*entityState)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	state, ok := w.entities[id]
	if !ok {
		return apperr.NotFoundf("entity %s not found", id)
	}
	fn(state)
	return nil
}

func (w *World) sortedIDs() []host.EntityID {
	ids := make([]host.EntityID, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
