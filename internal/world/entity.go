package world

import (
	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

// entity is a live handle. Every read goes back to the world so a handle
// never goes stale.
type entity struct {
	world *World
	id    host.EntityID
}

func (e *entity) ID() host.EntityID { return e.id }

func (e *entity) TypeID() string {
	state, ok := e.state()
	if !ok {
		return ""
	}
	return state.typeID
}

func (e *entity) IsPlayer() bool {
	state, ok := e.state()
	return ok && state.player
}

func (e *entity) IsValid() bool {
	state, ok := e.state()
	return ok && state.valid
}

func (e *entity) Location() host.Vector3 {
	state, ok := e.state()
	if !ok {
		return host.Vector3{}
	}
	return state.location
}

func (e *entity) ViewDirection() host.Vector3 {
	state, ok := e.state()
	if !ok {
		return host.Vector3{}
	}
	return state.view
}

// state copies the entity under the read lock
func (e *entity) state() (entityState, bool) {
	e.world.mu.RLock()
	defer e.world.mu.RUnlock()

	state, ok := e.world.entities[e.id]
	if !ok {
		return entityState{}, false
	}
	return *state, true
}
