// Package charge tracks which entities are holding a charge item
package charge

import (
	"sync"

	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

// Charge is an in-progress charge
type Charge struct {
	ItemID    string
	StartTick uint64
}

// Tracker is safe for concurrent use
type Tracker struct {
	mu       sync.RWMutex
	charging map[host.EntityID]Charge
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		charging: make(map[host.EntityID]Charge),
	}
}

// Begin marks the entity as charging itemID since startTick, replacing any
// charge already in progress.
func (t *Tracker) Begin(id host.EntityID, itemID string, startTick uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.charging[id] = Charge{ItemID: itemID, StartTick: startTick}
}

// End stops the charge and returns it
func (t *Tracker) End(id host.EntityID) (Charge, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.charging[id]
	delete(t.charging, id)
	return c, ok
}

// IsCharging reports whether the entity is still charging
func (t *Tracker) IsCharging(id host.EntityID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.charging[id]
	return ok
}

// Current returns the charge in progress
func (t *Tracker) Current(id host.EntityID) (Charge, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c, ok := t.charging[id]
	return c, ok
}
