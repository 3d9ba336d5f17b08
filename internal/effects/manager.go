package effects

import (
	"fmt"
	"log"
	"slices"

	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
)

const (
	// DefaultAnimationNamespace prefixes the reset animation
	DefaultAnimationNamespace = "sb_th"

	deathListenerID       = "effects_manager_death"
	deathListenerPriority = 100

	defaultChargeInterval = 20
	endAnimationDelay     = 5
	resetBlendOutTime     = 0.5
	defaultController     = "default"
	defaultStopExpression = "false"
)

// ChargeState reports whether an entity is still holding a charge item
type ChargeState interface {
	IsCharging(id host.EntityID) bool
}

// CustomApplier accepts custom effect requests
type CustomApplier interface {
	Apply(target host.Entity, req custom.Request, fallbackSeconds float64) (custom.Effect, error)
}

type trackedDuration struct {
	ticks     int
	expiresAt uint64
	expiry    tick.Handle
}

type ongoing struct {
	particleHandles []tick.Handle
	soundHandles    []tick.Handle
	durations       map[string]*trackedDuration
}

func (o *ongoing) add(kind EmissionKind, h tick.Handle) {
	if kind == KindSound {
		o.soundHandles = append(o.soundHandles, h)
		return
	}
	o.particleHandles = append(o.particleHandles, h)
}

func (o *ongoing) release(kind EmissionKind, h tick.Handle) {
	if kind == KindSound {
		o.soundHandles = removeHandle(o.soundHandles, h)
		return
	}
	o.particleHandles = removeHandle(o.particleHandles, h)
}

func (o *ongoing) idle() bool {
	return len(o.durations) == 0 && len(o.particleHandles) == 0 && len(o.soundHandles) == 0
}

func removeHandle(handles []tick.Handle, h tick.Handle) []tick.Handle {
	if i := slices.Index(handles, h); i >= 0 {
		return slices.Delete(handles, i, i+1)
	}
	return handles
}

// ManagerConfig holds the manager's collaborators
type ManagerConfig struct {
	Engine             host.Engine
	Custom             CustomApplier
	Loop               tick.Scheduler
	Bus                *events.Bus
	Charge             ChargeState
	AnimationNamespace string
}

// Manager applies effect definitions: status effects, custom effects and the
// visual timeline. It is not safe for concurrent use; call it from the tick
// goroutine.
type Manager struct {
	engine    host.Engine
	custom    CustomApplier
	loop      tick.Scheduler
	bus       *events.Bus
	charge    ChargeState
	namespace string

	started bool

	ongoing     map[host.EntityID]*ongoing
	endEffects  map[host.EntityID][]tick.Handle
	controllers map[host.EntityID]map[string]struct{}
}

// NewManager creates a manager. Call Start before applying effects.
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("manager config is required")
	}
	if cfg.Engine == nil {
		return nil, apperr.InvalidArgument("engine is required")
	}
	if cfg.Custom == nil {
		return nil, apperr.InvalidArgument("custom effect applier is required")
	}
	if cfg.Loop == nil {
		return nil, apperr.InvalidArgument("loop is required")
	}
	if cfg.Bus == nil {
		return nil, apperr.InvalidArgument("event bus is required")
	}
	if cfg.Charge == nil {
		return nil, apperr.InvalidArgument("charge state is required")
	}

	namespace := cfg.AnimationNamespace
	if namespace == "" {
		namespace = DefaultAnimationNamespace
	}

	return &Manager{
		engine:      cfg.Engine,
		custom:      cfg.Custom,
		loop:        cfg.Loop,
		bus:         cfg.Bus,
		charge:      cfg.Charge,
		namespace:   namespace,
		ongoing:     make(map[host.EntityID]*ongoing),
		endEffects:  make(map[host.EntityID][]tick.Handle),
		controllers: make(map[host.EntityID]map[string]struct{}),
	}, nil
}

// Start subscribes the death cleanup listener. Calling it again does nothing.
func (m *Manager) Start() {
	if m.started {
		return
	}
	m.started = true
	m.bus.Subscribe(events.EntityDie, &events.ListenerFunc{
		ListenerID:       deathListenerID,
		ListenerPriority: deathListenerPriority,
		Fn:               m.handleDeath,
	})
}

// Stop unsubscribes the death listener and cancels every scheduled callback
func (m *Manager) Stop() {
	if !m.started {
		return
	}
	m.started = false
	m.bus.Unsubscribe(events.EntityDie, deathListenerID)

	for _, id := range m.Tracked() {
		m.clearHandles(id)
	}
}

// ApplyEffect applies a definition to target. Custom effects are forwarded
// before the id is checked, so a definition without an id still applies them.
func (m *Manager) ApplyEffect(target host.Entity, def *Definition) error {
	if !m.started {
		return apperr.FailedPrecondition("effects manager is not started")
	}
	if target == nil {
		return apperr.InvalidArgument("target is required")
	}
	if def == nil {
		return apperr.InvalidArgument("definition is required")
	}

	id := target.ID()

	for _, spec := range def.Effects {
		err := m.engine.AddStatusEffect(id, host.StatusEffect{
			Type:          spec.Type,
			DurationTicks: tick.SecondsToTicks(spec.Duration),
			Amplifier:     spec.Amplifier,
			ShowParticles: spec.ShowParticles,
		})
		if err != nil {
			log.Printf("EffectsManager: Failed to add %s to %s: %v", spec.Type, id, err)
		}
	}

	for _, req := range def.CustomEffects {
		if req.Type == "" {
			log.Printf("EffectsManager: Invalid custom effect in %q: %+v", def.ID, req)
			continue
		}
		if _, err := m.custom.Apply(target, req, def.Duration); err != nil {
			log.Printf("EffectsManager: Failed to apply custom effect %s to %s: %v", req.Type, id, err)
		}
	}

	if def.ID == "" {
		log.Printf("EffectsManager: Definition applied to %s has no id", id)
		return apperr.InvalidArgument("definition must have an id")
	}

	totalTicks := def.DurationTicks()
	m.trackDuration(id, def.ID, totalTicks)

	visual := def.Visual
	if visual == nil {
		return nil
	}

	if start := visual.OnStart; start != nil {
		m.emitEffects(start.Particles, target, KindParticle)
		m.emitEffects(start.Sounds, target, KindSound)
		m.playAnimations(start.Animations, target)
	}

	if interval := visual.OnInterval; interval != nil {
		m.loopEffects(interval.Particles, totalTicks, target, KindParticle)
		m.loopEffects(interval.Sounds, totalTicks, target, KindSound)
		m.playAnimations(interval.Animations, target)
	}

	// A new application replaces whatever end effects were pending
	m.cancelScheduledEndEffects(id)

	if end := visual.OnEnd; end != nil {
		m.scheduleEffects(end.Particles, totalTicks, id, KindParticle)
		m.scheduleEffects(end.Sounds, totalTicks, id, KindSound)
		m.scheduleAnimations(end.Animations, totalTicks+endAnimationDelay, id)
	}

	return nil
}

// LoopChargeEffects emits each effect on its interval (20 ticks when unset)
// for as long as the target keeps charging.
func (m *Manager) LoopChargeEffects(effects []IntervalEffect, target host.Entity, kind EmissionKind) {
	if len(effects) == 0 || target == nil {
		return
	}

	id := target.ID()
	state := m.state(id)

	for _, effect := range effects {
		interval := effect.Interval
		if interval <= 0 {
			interval = defaultChargeInterval
		}

		var h tick.Handle
		h = m.loop.RunInterval(func() {
			if m.charge.IsCharging(id) {
				m.emitLater(effect.ID, kind, id)
				return
			}
			m.loop.ClearRun(h)
			m.releaseHandle(id, kind, h)
		}, interval)
		state.add(kind, h)
	}
}

// BeginCharge plays the start and charge timeline of a charge item. The end
// emissions fire after the charge time if the target is still charging.
func (m *Manager) BeginCharge(target host.Entity, item *ChargeItem) error {
	if !m.started {
		return apperr.FailedPrecondition("effects manager is not started")
	}
	if target == nil || item == nil {
		return apperr.InvalidArgument("target and charge item are required")
	}

	visual := item.Visual
	if start := visual.OnStart; start != nil {
		m.emitEffects(start.Particles, target, KindParticle)
		m.emitEffects(start.Sounds, target, KindSound)
	}
	if charge := visual.OnCharge; charge != nil {
		m.LoopChargeEffects(charge.Particles, target, KindParticle)
		m.LoopChargeEffects(charge.Sounds, target, KindSound)
		m.playAnimations(charge.Animations, target)
	}

	if end := visual.OnEnd; end != nil {
		id := target.ID()
		var h tick.Handle
		h = m.loop.RunTimeout(func() {
			m.releaseEndEffect(id, h)
			if !m.charge.IsCharging(id) {
				return
			}
			if ent, ok := m.live(id); ok {
				m.emitEffects(end.Particles, ent, KindParticle)
				m.emitEffects(end.Sounds, ent, KindSound)
			}
		}, tick.SecondsToTicks(item.Time))
		m.endEffects[id] = append(m.endEffects[id], h)
	}

	return nil
}

// PlayChargeRelease fires the release animations and emissions
func (m *Manager) PlayChargeRelease(target host.Entity, visual *ChargeVisual) {
	if target == nil || visual == nil || visual.OnRelease == nil {
		return
	}
	release := visual.OnRelease
	m.playAnimations(release.Animations, target)
	m.emitEffects(release.Particles, target, KindParticle)
	m.emitEffects(release.Sounds, target, KindSound)
}

// ResetAnimations plays the reset animation on every controller used on the
// target, or on the default controller when none was recorded.
func (m *Manager) ResetAnimations(target host.Entity) {
	if target == nil || !target.IsPlayer() {
		return
	}

	id := target.ID()
	controllers := make([]string, 0, len(m.controllers[id]))
	for c := range m.controllers[id] {
		controllers = append(controllers, c)
	}
	slices.Sort(controllers)
	if len(controllers) == 0 {
		controllers = append(controllers, defaultController)
	}

	name := fmt.Sprintf("animation.%s.reset.third_person", m.namespace)
	for _, controller := range controllers {
		err := m.engine.PlayAnimation(id, host.Animation{
			Name:           name,
			Controller:     controller,
			StopExpression: defaultStopExpression,
			BlendOutTime:   resetBlendOutTime,
		})
		if err != nil {
			log.Printf("EffectsManager: Failed to reset animations of %s: %v", id, err)
		}
	}
	delete(m.controllers, id)
}

// Snapshot returns the visual bookkeeping of one entity
func (m *Manager) Snapshot(id host.EntityID) (VisualState, bool) {
	state, ok := m.ongoing[id]
	ends := m.endEffects[id]
	if !ok && len(ends) == 0 {
		return VisualState{}, false
	}

	out := VisualState{
		Durations:        make(map[string]int),
		EndEffectHandles: len(ends),
	}
	if ok {
		for defID, tracked := range state.durations {
			out.Durations[defID] = tracked.ticks
		}
		out.ParticleHandles = len(state.particleHandles)
		out.SoundHandles = len(state.soundHandles)
	}
	for c := range m.controllers[id] {
		out.Controllers = append(out.Controllers, c)
	}
	slices.Sort(out.Controllers)
	return out, true
}

// Tracked returns the ids with visual bookkeeping, sorted
func (m *Manager) Tracked() []host.EntityID {
	seen := make(map[host.EntityID]struct{}, len(m.ongoing)+len(m.endEffects))
	for id := range m.ongoing {
		seen[id] = struct{}{}
	}
	for id := range m.endEffects {
		seen[id] = struct{}{}
	}

	ids := make([]host.EntityID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *Manager) handleDeath(event events.Event) error {
	die, ok := event.(*events.EntityDieEvent)
	if !ok {
		return nil
	}

	if ent, found := m.engine.Entity(die.Entity); found {
		m.ResetAnimations(ent)
	}
	delete(m.controllers, die.Entity)
	m.clearHandles(die.Entity)
	return nil
}

// clearHandles cancels everything scheduled for id and drops its bookkeeping
func (m *Manager) clearHandles(id host.EntityID) {
	if state, ok := m.ongoing[id]; ok {
		for _, h := range state.particleHandles {
			m.loop.ClearRun(h)
		}
		for _, h := range state.soundHandles {
			m.loop.ClearRun(h)
		}
		for _, tracked := range state.durations {
			m.loop.ClearRun(tracked.expiry)
		}
		delete(m.ongoing, id)
	}
	m.cancelScheduledEndEffects(id)
}

func (m *Manager) state(id host.EntityID) *ongoing {
	state, ok := m.ongoing[id]
	if !ok {
		state = &ongoing{durations: make(map[string]*trackedDuration)}
		m.ongoing[id] = state
	}
	return state
}

// trackDuration records the definition's total duration, extending but never
// shortening it, and drops the record when the longest application ends.
func (m *Manager) trackDuration(id host.EntityID, defID string, totalTicks int) {
	state := m.state(id)
	tracked, ok := state.durations[defID]
	if !ok {
		tracked = &trackedDuration{}
		state.durations[defID] = tracked
	}
	tracked.ticks = max(tracked.ticks, totalTicks)

	expiresAt := m.loop.CurrentTick() + uint64(max(totalTicks, 1))
	if expiresAt <= tracked.expiresAt {
		return
	}
	m.loop.ClearRun(tracked.expiry)
	tracked.expiresAt = expiresAt
	tracked.expiry = m.loop.RunTimeout(func() {
		m.expireDuration(id, defID)
	}, totalTicks)
}

func (m *Manager) expireDuration(id host.EntityID, defID string) {
	state, ok := m.ongoing[id]
	if !ok {
		return
	}
	delete(state.durations, defID)
	m.dropIfIdle(id)
}

func (m *Manager) dropIfIdle(id host.EntityID) {
	if state, ok := m.ongoing[id]; ok && state.idle() {
		delete(m.ongoing, id)
	}
}

func (m *Manager) releaseHandle(id host.EntityID, kind EmissionKind, h tick.Handle) {
	state, ok := m.ongoing[id]
	if !ok {
		return
	}
	state.release(kind, h)
	m.dropIfIdle(id)
}

func (m *Manager) releaseEndEffect(id host.EntityID, h tick.Handle) {
	remaining := removeHandle(m.endEffects[id], h)
	if len(remaining) == 0 {
		delete(m.endEffects, id)
		return
	}
	m.endEffects[id] = remaining
}

// loopEffects schedules floor(total/interval) one-shot emissions per effect,
// at interval*i for i in [0, loops).
func (m *Manager) loopEffects(effects []IntervalEffect, totalTicks int, target host.Entity, kind EmissionKind) {
	if len(effects) == 0 {
		return
	}

	id := target.ID()
	state := m.state(id)

	for _, effect := range effects {
		if effect.Interval <= 0 {
			log.Printf("EffectsManager: Skipping %s %s with interval %d", kind, effect.ID, effect.Interval)
			continue
		}

		loops := totalTicks / effect.Interval
		for i := 0; i < loops; i++ {
			var h tick.Handle
			h = m.loop.RunTimeout(func() {
				m.releaseHandle(id, kind, h)
				m.emitLater(effect.ID, kind, id)
			}, effect.Interval*i)
			state.add(kind, h)
		}
	}
}

func (m *Manager) scheduleEffects(effects []string, delay int, id host.EntityID, kind EmissionKind) {
	if len(effects) == 0 {
		return
	}

	var h tick.Handle
	h = m.loop.RunTimeout(func() {
		m.releaseEndEffect(id, h)
		if ent, ok := m.live(id); ok {
			m.emitEffects(effects, ent, kind)
		}
	}, delay)
	m.endEffects[id] = append(m.endEffects[id], h)
}

// scheduleAnimations resets the target's animations and plays the end
// animations. It is scheduled even without end animations so the reset runs.
func (m *Manager) scheduleAnimations(animations []host.Animation, delay int, id host.EntityID) {
	var h tick.Handle
	h = m.loop.RunTimeout(func() {
		m.releaseEndEffect(id, h)
		ent, ok := m.live(id)
		if !ok {
			return
		}
		m.ResetAnimations(ent)
		m.playAnimations(animations, ent)
	}, delay)
	m.endEffects[id] = append(m.endEffects[id], h)
}

func (m *Manager) cancelScheduledEndEffects(id host.EntityID) {
	for _, h := range m.endEffects[id] {
		m.loop.ClearRun(h)
	}
	delete(m.endEffects, id)
}

// playAnimations only affects players
func (m *Manager) playAnimations(animations []host.Animation, target host.Entity) {
	if len(animations) == 0 || !target.IsPlayer() {
		return
	}

	id := target.ID()
	for _, animation := range animations {
		if animation.Controller == "" {
			animation.Controller = defaultController
		}
		if animation.StopExpression == "" {
			animation.StopExpression = defaultStopExpression
		}

		if err := m.engine.PlayAnimation(id, animation); err != nil {
			log.Printf("EffectsManager: Failed to play %s on %s: %v", animation.Name, id, err)
		}

		if m.controllers[id] == nil {
			m.controllers[id] = make(map[string]struct{})
		}
		m.controllers[id][animation.Controller] = struct{}{}
	}
}

func (m *Manager) emitEffects(effects []string, target host.Entity, kind EmissionKind) {
	at := target.Location()
	for _, effectID := range effects {
		m.emit(effectID, kind, at)
	}
}

// emitLater resolves the target when the callback fires so the emission
// follows it around.
func (m *Manager) emitLater(effectID string, kind EmissionKind, id host.EntityID) {
	ent, ok := m.live(id)
	if !ok {
		return
	}
	m.emit(effectID, kind, ent.Location())
}

// emit ignores engine errors; the engine rejects unknown ids and unloaded
// locations and neither is worth more than a missing particle.
func (m *Manager) emit(effectID string, kind EmissionKind, at host.Vector3) {
	switch kind {
	case KindParticle:
		_ = m.engine.SpawnParticle(effectID, at)
	case KindSound:
		_ = m.engine.PlaySound(effectID, at)
	}
}

func (m *Manager) live(id host.EntityID) (host.Entity, bool) {
	ent, ok := m.engine.Entity(id)
	if !ok || !ent.IsValid() {
		return nil, false
	}
	return ent, true
}
