// Package snapshots stores point-in-time copies of per-entity effect state
// so they can be inspected outside the tick goroutine.
package snapshots

import (
	"context"
	"time"
)

// CustomSnapshot is one active custom effect
type CustomSnapshot struct {
	Type             string  `json:"type"`
	Amplifier        int     `json:"amplifier"`
	Duration         float64 `json:"duration"`
	Interval         int     `json:"interval,omitempty"`
	ExpiresAtTick    uint64  `json:"expires_at_tick"`
	LastDispatchTick uint64  `json:"last_dispatch_tick"`
}

// EntitySnapshot is the effect state of one entity at a tick
type EntitySnapshot struct {
	EntityID       string           `json:"entity_id"`
	Tick           uint64           `json:"tick"`
	Custom         []CustomSnapshot `json:"custom"`
	Visual         map[string]int   `json:"visual"`
	PendingHandles int              `json:"pending_handles"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Repository defines the interface for snapshot storage operations
type Repository interface {
	// Save stores the snapshot and stamps UpdatedAt
	Save(ctx context.Context, snapshot *EntitySnapshot) error
	Get(ctx context.Context, entityID string) (*EntitySnapshot, error)
	// List returns every stored snapshot sorted by entity id
	List(ctx context.Context) ([]*EntitySnapshot, error)
	Delete(ctx context.Context, entityID string) error
}
