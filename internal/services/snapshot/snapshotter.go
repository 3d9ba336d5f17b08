// Package snapshot periodically copies effect state into the snapshot
// repository. Collection happens on the tick goroutine; writes happen on a
// background goroutine so a slow store never stalls the loop.
package snapshot

import (
	"context"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentWrites = 8

// CustomState exposes the scheduler's active effects
type CustomState interface {
	Snapshot() []custom.EntityState
}

// VisualState exposes the applier's bookkeeping
type VisualState interface {
	Snapshot(id host.EntityID) (effects.VisualState, bool)
	Tracked() []host.EntityID
}

// Batch is one collection pass
type Batch struct {
	Snapshots []*snapshots.EntitySnapshot
	// Vanished are ids written by an earlier pass that have no state now
	Vanished []string
}

// Config holds the snapshotter's collaborators
type Config struct {
	Loop          tick.Scheduler
	Custom        CustomState
	Visual        VisualState
	Repository    snapshots.Repository
	IntervalTicks int
}

// Snapshotter writes every tracked entity to the repository on an interval
type Snapshotter struct {
	loop     tick.Scheduler
	custom   CustomState
	visual   VisualState
	repo     snapshots.Repository
	interval int

	// tick goroutine only
	handle  tick.Handle
	written map[string]struct{}
	// vanished ids whose batch was dropped; carried until a batch is accepted
	unsent map[string]struct{}

	batches chan Batch
	wg      sync.WaitGroup
}

// New creates a snapshotter
func New(cfg *Config) (*Snapshotter, error) {
	switch {
	case cfg == nil:
		return nil, apperr.InvalidArgument("snapshotter config is required")
	case cfg.Loop == nil:
		return nil, apperr.InvalidArgument("loop is required")
	case cfg.Custom == nil || cfg.Visual == nil:
		return nil, apperr.InvalidArgument("custom and visual state are required")
	case cfg.Repository == nil:
		return nil, apperr.InvalidArgument("snapshot repository is required")
	case cfg.IntervalTicks <= 0:
		return nil, apperr.InvalidArgumentf("snapshot interval must be positive, got %d", cfg.IntervalTicks)
	}

	return &Snapshotter{
		loop:     cfg.Loop,
		custom:   cfg.Custom,
		visual:   cfg.Visual,
		repo:     cfg.Repository,
		interval: cfg.IntervalTicks,
		written:  make(map[string]struct{}),
		unsent:   make(map[string]struct{}),
	}, nil
}

// Start schedules collection and starts the writer. Call it on the tick goroutine.
func (s *Snapshotter) Start(ctx context.Context) {
	if s.handle != 0 {
		return
	}

	s.batches = make(chan Batch, 1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for batch := range s.batches {
			if err := s.Write(ctx, batch); err != nil {
				log.Printf("Snapshotter: Failed to write batch: %v", err)
			}
		}
	}()

	s.handle = s.loop.RunInterval(s.enqueue, s.interval)
	log.Printf("Snapshotter: Writing snapshots every %d ticks", s.interval)
}

// Stop cancels collection and waits for queued writes. Call it on the tick
// goroutine or after the loop has stopped.
func (s *Snapshotter) Stop() {
	if s.handle == 0 {
		return
	}
	s.loop.ClearRun(s.handle)
	s.handle = 0

	close(s.batches)
	s.wg.Wait()
}

func (s *Snapshotter) enqueue() {
	batch := s.Collect()
	select {
	case s.batches <- batch:
	default:
		// Saves are rebuilt by the next pass; deletes are not, so hold them
		for _, id := range batch.Vanished {
			s.unsent[id] = struct{}{}
		}
		log.Printf("Snapshotter: Writer busy, skipping snapshot at tick %d", s.loop.CurrentTick())
	}
}

// Collect builds a batch from the current state. It must run on the tick goroutine.
func (s *Snapshotter) Collect() Batch {
	now := s.loop.CurrentTick()
	byID := make(map[host.EntityID]*snapshots.EntitySnapshot)

	get := func(id host.EntityID) *snapshots.EntitySnapshot {
		snap, ok := byID[id]
		if !ok {
			snap = &snapshots.EntitySnapshot{
				EntityID: string(id),
				Tick:     now,
				Visual:   make(map[string]int),
			}
			byID[id] = snap
		}
		return snap
	}

	for _, state := range s.custom.Snapshot() {
		snap := get(state.EntityID)
		for _, active := range state.Effects {
			snap.Custom = append(snap.Custom, snapshots.CustomSnapshot{
				Type:             string(active.Effect.Type),
				Amplifier:        active.Effect.Amplifier,
				Duration:         active.Effect.Duration,
				Interval:         active.Effect.Interval,
				ExpiresAtTick:    active.ExpiresAtTick,
				LastDispatchTick: active.LastDispatchTick,
			})
		}
	}

	for _, id := range s.visual.Tracked() {
		visual, ok := s.visual.Snapshot(id)
		if !ok {
			continue
		}
		snap := get(id)
		for defID, ticks := range visual.Durations {
			snap.Visual[defID] = ticks
		}
		snap.PendingHandles = visual.PendingHandles()
	}

	batch := Batch{Snapshots: make([]*snapshots.EntitySnapshot, 0, len(byID))}
	current := make(map[string]struct{}, len(byID))
	for id, snap := range byID {
		batch.Snapshots = append(batch.Snapshots, snap)
		current[string(id)] = struct{}{}
	}
	vanished := make(map[string]struct{})
	for id := range s.written {
		vanished[id] = struct{}{}
	}
	for id := range s.unsent {
		vanished[id] = struct{}{}
	}
	for id := range vanished {
		if _, ok := current[id]; !ok {
			batch.Vanished = append(batch.Vanished, id)
		}
	}
	s.written = current
	clear(s.unsent)

	slices.SortFunc(batch.Snapshots, func(a, b *snapshots.EntitySnapshot) int {
		return strings.Compare(a.EntityID, b.EntityID)
	})
	slices.Sort(batch.Vanished)
	return batch
}

// Write saves the batch's snapshots and deletes its vanished ids
func (s *Snapshotter) Write(ctx context.Context, batch Batch) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWrites)

	for _, snap := range batch.Snapshots {
		g.Go(func() error {
			return s.repo.Save(gctx, snap)
		})
	}
	for _, id := range batch.Vanished {
		g.Go(func() error {
			return s.repo.Delete(gctx, id)
		})
	}

	return g.Wait()
}
