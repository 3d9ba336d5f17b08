package custom

import (
	"log"
	"slices"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
)

type active struct {
	effect           Effect
	expiry           tick.Handle
	expiresAt        uint64
	lastDispatchTick uint64
}

// ActiveState is a read-only view of one active custom effect
type ActiveState struct {
	Effect           Effect
	ExpiresAtTick    uint64
	LastDispatchTick uint64
}

// EntityState groups the active custom effects of one entity
type EntityState struct {
	EntityID host.EntityID
	Effects  []ActiveState
}

// SchedulerConfig holds the scheduler's collaborators
type SchedulerConfig struct {
	Registry *Registry
	Engine   host.Engine
	Loop     tick.Scheduler
}

// Scheduler owns the active custom effects of every entity and dispatches
// them to registry handlers from a single per-tick task.
type Scheduler struct {
	registry *Registry
	engine   host.Engine
	loop     tick.Scheduler

	dispatchTask tick.Handle
	started      bool

	active map[host.EntityID]map[Type]*active
}

// NewScheduler creates a scheduler. Call Start before applying effects.
func NewScheduler(cfg *SchedulerConfig) (*Scheduler, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("scheduler config is required")
	}
	if cfg.Registry == nil {
		return nil, apperr.InvalidArgument("registry is required")
	}
	if cfg.Engine == nil {
		return nil, apperr.InvalidArgument("engine is required")
	}
	if cfg.Loop == nil {
		return nil, apperr.InvalidArgument("loop is required")
	}

	return &Scheduler{
		registry: cfg.Registry,
		engine:   cfg.Engine,
		loop:     cfg.Loop,
		active:   make(map[host.EntityID]map[Type]*active),
	}, nil
}

// Start registers the dispatch task. Calling it again does nothing.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	s.dispatchTask = s.loop.RunInterval(s.dispatch, 1)

	if missing := s.registry.Missing(KnownTypes()...); len(missing) > 0 {
		log.Printf("Scheduler: Started without handlers for %v", missing)
	}
}

// Stop clears the dispatch task and every pending expiry
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	s.started = false
	s.loop.ClearRun(s.dispatchTask)

	for id := range s.active {
		s.RemoveAll(id)
	}
}

// Started reports whether Start has been called
func (s *Scheduler) Started() bool {
	return s.started
}

// Apply activates or refreshes a custom effect on target. A refresh cancels
// the pending expiry and keeps the longer of the two durations; effects never
// stack in count.
func (s *Scheduler) Apply(target host.Entity, req Request, fallbackSeconds float64) (Effect, error) {
	if !s.started {
		return Effect{}, apperr.FailedPrecondition("scheduler is not started")
	}
	if target == nil {
		return Effect{}, apperr.InvalidArgument("target is required")
	}
	if req.Type == "" {
		return Effect{}, apperr.InvalidArgument("custom effect type is required")
	}

	effect := Resolve(req, fallbackSeconds)
	if effect.Duration < 0 {
		return Effect{}, apperr.InvalidArgumentf("duration of %s must not be negative", effect.Type).
			WithMeta("duration", effect.Duration)
	}

	id := target.ID()
	current, ok := s.active[id]
	if !ok {
		current = make(map[Type]*active)
		s.active[id] = current
	}

	if existing, exists := current[effect.Type]; exists {
		s.loop.ClearRun(existing.expiry)
		effect.Duration = max(existing.effect.Duration, effect.Duration)
	}

	ticks := tick.SecondsToTicks(effect.Duration)
	effectType := effect.Type
	expiry := s.loop.RunTimeout(func() {
		s.Remove(id, effectType)
	}, ticks)

	current[effect.Type] = &active{
		effect:           effect,
		expiry:           expiry,
		expiresAt:        s.loop.CurrentTick() + uint64(max(ticks, 1)),
		lastDispatchTick: 0,
	}

	return effect, nil
}

// Remove cancels the expiry of one effect and forgets it
func (s *Scheduler) Remove(id host.EntityID, effectType Type) {
	current, ok := s.active[id]
	if !ok {
		return
	}
	entry, ok := current[effectType]
	if !ok {
		return
	}

	s.loop.ClearRun(entry.expiry)
	delete(current, effectType)
	if len(current) == 0 {
		delete(s.active, id)
	}
}

// RemoveAll forgets every effect of an entity
func (s *Scheduler) RemoveAll(id host.EntityID) {
	for effectType := range s.active[id] {
		s.Remove(id, effectType)
	}
}

// IsActive reports whether effectType is active on the entity
func (s *Scheduler) IsActive(id host.EntityID, effectType Type) bool {
	_, ok := s.active[id][effectType]
	return ok
}

// Properties returns the resolved effect active on the entity
func (s *Scheduler) Properties(id host.EntityID, effectType Type) (Effect, bool) {
	entry, ok := s.active[id][effectType]
	if !ok {
		return Effect{}, false
	}
	return entry.effect, true
}

// ActiveTypes returns the active effect types of an entity in sorted order
func (s *Scheduler) ActiveTypes(id host.EntityID) []Type {
	types := make([]Type, 0, len(s.active[id]))
	for t := range s.active[id] {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Snapshot copies the state of every entity, sorted by id
func (s *Scheduler) Snapshot() []EntityState {
	ids := s.entityIDs()
	out := make([]EntityState, 0, len(ids))
	for _, id := range ids {
		state := EntityState{EntityID: id}
		for _, t := range s.ActiveTypes(id) {
			entry := s.active[id][t]
			state.Effects = append(state.Effects, ActiveState{
				Effect:           entry.effect,
				ExpiresAtTick:    entry.expiresAt,
				LastDispatchTick: entry.lastDispatchTick,
			})
		}
		out = append(out, state)
	}
	return out
}

func (s *Scheduler) entityIDs() []host.EntityID {
	ids := make([]host.EntityID, 0, len(s.active))
	for id := range s.active {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

type pending struct {
	id         host.EntityID
	effectType Type
}

// dispatch runs once per tick. The pairs are collected up front so handlers
// may apply or remove effects while the walk is in progress.
func (s *Scheduler) dispatch() {
	now := s.loop.CurrentTick()

	var work []pending
	for _, id := range s.entityIDs() {
		for _, t := range s.ActiveTypes(id) {
			work = append(work, pending{id: id, effectType: t})
		}
	}

	resolved := make(map[host.EntityID]host.Entity)
	for _, p := range work {
		entry, ok := s.active[p.id][p.effectType]
		if !ok {
			continue
		}

		target, seen := resolved[p.id]
		if !seen {
			if ent, found := s.engine.Entity(p.id); found && ent.IsValid() {
				target = ent
			}
			resolved[p.id] = target
		}
		if target == nil {
			log.Printf("Scheduler: Entity %s is gone, dropping its custom effects", p.id)
			s.RemoveAll(p.id)
			continue
		}

		reg, ok := s.registry.Lookup(p.effectType)
		if !ok {
			continue
		}

		interval := entry.effect.Interval
		if interval <= 0 {
			interval = reg.DefaultInterval
		}
		if interval <= 0 {
			interval = 1
		}

		if now-entry.lastDispatchTick < uint64(interval) {
			continue
		}
		entry.lastDispatchTick = now

		s.invoke(reg.Handler, target, entry.effect)
	}
}

// invoke isolates one handler call so a failing handler cannot starve the rest
func (s *Scheduler) invoke(handler Handler, target host.Entity, effect Effect) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Scheduler: Handler %s panicked for entity %s: %v", effect.Type, target.ID(), r)
		}
	}()

	if err := handler.Handle(target, effect); err != nil {
		log.Printf("Scheduler: Handler %s failed for entity %s: %v", effect.Type, target.ID(), err)
	}
}
