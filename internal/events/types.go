package events

import (
	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

// EventType represents the type of host notification
type EventType string

const (
	// EntityDie fires after an entity died
	EntityDie EventType = "entity_die"

	// EntityHitEntity fires after one entity hit another
	EntityHitEntity EventType = "entity_hit_entity"
)

// Event is the base interface for all host events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// EntityDieEvent carries the id of the dead entity
type EntityDieEvent struct {
	BaseEvent
	Entity host.EntityID
}

// NewEntityDieEvent creates a death notification
func NewEntityDieEvent(id host.EntityID) *EntityDieEvent {
	return &EntityDieEvent{
		BaseEvent: BaseEvent{Type: EntityDie},
		Entity:    id,
	}
}

// EntityHitEntityEvent carries the attacker and the entity it hit
type EntityHitEntityEvent struct {
	BaseEvent
	Damager host.EntityID
	Hit     host.EntityID
}

// NewEntityHitEntityEvent creates a hit notification
func NewEntityHitEntityEvent(damager, hit host.EntityID) *EntityHitEntityEvent {
	return &EntityHitEntityEvent{
		BaseEvent: BaseEvent{Type: EntityHitEntity},
		Damager:   damager,
		Hit:       hit,
	}
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	ListenerID       string
	ListenerPriority int
	Fn               func(event Event) error
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.Fn(event) }
func (l *ListenerFunc) Priority() int                 { return l.ListenerPriority }
func (l *ListenerFunc) ID() string                    { return l.ListenerID }
