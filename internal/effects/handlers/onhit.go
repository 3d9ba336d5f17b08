package handlers

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
)

const (
	onHitListenerPriority = 50
	onHitRecheckTicks     = 20
)

// OnHit applies a definition to whatever the effect's owner hits. It keeps one
// hit listener per owner and drops it once the effect is no longer active.
type OnHit struct {
	effectType custom.Type
	definition *effects.Definition

	engine  host.Engine
	bus     *events.Bus
	loop    tick.Scheduler
	effects Applier
	active  ActiveChecker

	// listening maps an owner to its pending watch task
	listening map[host.EntityID]tick.Handle
}

// NewOnHit creates an on-hit handler for effectType
func NewOnHit(effectType custom.Type, definition *effects.Definition, deps *Deps) *OnHit {
	return &OnHit{
		effectType: effectType,
		definition: definition,
		engine:     deps.Engine,
		bus:        deps.Bus,
		loop:       deps.Loop,
		effects:    deps.Effects,
		active:     deps.Active,
		listening:  make(map[host.EntityID]tick.Handle),
	}
}

// Handle subscribes the owner's hit listener if it is not subscribed yet
func (h *OnHit) Handle(target host.Entity, effect custom.Effect) error {
	owner := target.ID()
	if _, ok := h.listening[owner]; ok {
		return nil
	}

	h.bus.Subscribe(events.EntityHitEntity, &events.ListenerFunc{
		ListenerID:       h.listenerID(owner),
		ListenerPriority: onHitListenerPriority,
		Fn: func(event events.Event) error {
			return h.onHit(owner, event)
		},
	})

	h.listening[owner] = h.loop.RunTimeout(func() { h.watch(owner) }, tick.SecondsToTicks(effect.Duration)+1)
	return nil
}

// Listening reports whether the owner has a hit listener
func (h *OnHit) Listening(owner host.EntityID) bool {
	_, ok := h.listening[owner]
	return ok
}

func (h *OnHit) onHit(owner host.EntityID, event events.Event) error {
	hit, ok := event.(*events.EntityHitEntityEvent)
	if !ok || hit.Damager != owner {
		return nil
	}
	if !h.active.IsActive(owner, h.effectType) {
		h.drop(owner)
		return nil
	}

	victim, found := h.engine.Entity(hit.Hit)
	if !found || !victim.IsValid() {
		return nil
	}
	if err := h.effects.ApplyEffect(victim, h.definition); err != nil {
		log.Printf("OnHit: Failed to apply %s to %s: %v", h.definition.ID, hit.Hit, err)
	}
	return nil
}

// watch drops the listener once the effect ran out, checking again while a
// refresh keeps it active
func (h *OnHit) watch(owner host.EntityID) {
	if _, ok := h.listening[owner]; !ok {
		return
	}
	if h.active.IsActive(owner, h.effectType) {
		h.listening[owner] = h.loop.RunTimeout(func() { h.watch(owner) }, onHitRecheckTicks)
		return
	}
	h.drop(owner)
}

func (h *OnHit) drop(owner host.EntityID) {
	h.loop.ClearRun(h.listening[owner])
	h.bus.Unsubscribe(events.EntityHitEntity, h.listenerID(owner))
	delete(h.listening, owner)
}

func (h *OnHit) listenerID(owner host.EntityID) string {
	return fmt.Sprintf("%s:%s", h.effectType, owner)
}
