package services

import (
	"context"
	"log"

	"github.com/KirkDiggler/bedrock-effects/internal/charge"
	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/catalog"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/handlers"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/repositories/snapshots"
	effectService "github.com/KirkDiggler/bedrock-effects/internal/services/effect"
	"github.com/KirkDiggler/bedrock-effects/internal/services/snapshot"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/KirkDiggler/bedrock-effects/internal/uuid"
	"github.com/KirkDiggler/bedrock-effects/internal/world"
)

const defaultSnapshotIntervalTicks = 100

// Provider holds the engine and every service built on it
type Provider struct {
	Loop      *tick.Loop
	Bus       *events.Bus
	World     *world.World
	Registry  *custom.Registry
	Scheduler *custom.Scheduler
	Manager   *effects.Manager
	Catalog   *catalog.Catalog
	Charge    *charge.Tracker

	SnapshotRepository snapshots.Repository
	Snapshotter        *snapshot.Snapshotter
	EffectService      effectService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog               *catalog.Catalog     // Optional, the embedded default if nil
	SnapshotRepository    snapshots.Repository // Optional, in-memory if nil
	IDs                   uuid.Generator       // Optional, random UUIDs if nil
	AnimationNamespace    string
	SnapshotIntervalTicks int
}

// NewProvider creates the engine with the default handlers registered
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	cat := cfg.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.Default()
		if err != nil {
			return nil, err
		}
	}

	// Use in-memory repository if none provided
	snapshotRepo := cfg.SnapshotRepository
	if snapshotRepo == nil {
		snapshotRepo = snapshots.NewInMemoryRepository(nil, 0)
	}

	interval := cfg.SnapshotIntervalTicks
	if interval <= 0 {
		interval = defaultSnapshotIntervalTicks
	}

	loop := tick.NewLoop()
	bus := events.NewBus()
	registry := custom.NewRegistry()
	tracker := charge.NewTracker()

	w, err := world.New(&world.Config{Bus: bus, Clock: loop, IDs: cfg.IDs})
	if err != nil {
		return nil, err
	}

	scheduler, err := custom.NewScheduler(&custom.SchedulerConfig{
		Registry: registry,
		Engine:   w,
		Loop:     loop,
	})
	if err != nil {
		return nil, err
	}

	manager, err := effects.NewManager(&effects.ManagerConfig{
		Engine:             w,
		Custom:             scheduler,
		Loop:               loop,
		Bus:                bus,
		Charge:             tracker,
		AnimationNamespace: cfg.AnimationNamespace,
	})
	if err != nil {
		return nil, err
	}

	err = handlers.RegisterDefaults(registry, &handlers.Deps{
		Engine:      w,
		Physics:     w,
		Blocks:      w,
		Loop:        loop,
		Bus:         bus,
		Effects:     manager,
		Active:      scheduler,
		Definitions: cat,
		Namespace:   cfg.AnimationNamespace,
	})
	if err != nil {
		return nil, err
	}
	if missing := registry.Missing(custom.KnownTypes()...); len(missing) > 0 {
		log.Printf("Provider: No handler registered for %v", missing)
	}
	log.Printf("Provider: %d custom effect handlers registered", len(registry.Handlers()))

	snapshotter, err := snapshot.New(&snapshot.Config{
		Loop:          loop,
		Custom:        scheduler,
		Visual:        manager,
		Repository:    snapshotRepo,
		IntervalTicks: interval,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		Loop:               loop,
		Bus:                bus,
		World:              w,
		Registry:           registry,
		Scheduler:          scheduler,
		Manager:            manager,
		Catalog:            cat,
		Charge:             tracker,
		SnapshotRepository: snapshotRepo,
		Snapshotter:        snapshotter,
		EffectService: effectService.NewService(&effectService.ServiceConfig{
			Loop:    loop,
			World:   w,
			Manager: manager,
			Custom:  scheduler,
			Catalog: cat,
			Charge:  tracker,
		}),
	}, nil
}

// Start wires the engine into the loop. Call it before the loop runs or on
// the tick goroutine.
func (p *Provider) Start(ctx context.Context) {
	if p.Scheduler.Started() {
		return
	}
	p.Scheduler.Start()
	p.Manager.Start()
	p.Snapshotter.Start(ctx)
}

// Stop tears the engine down in reverse order. Call it after the loop has
// stopped or on the tick goroutine.
func (p *Provider) Stop() {
	if !p.Scheduler.Started() {
		return
	}
	p.Snapshotter.Stop()
	p.Manager.Stop()
	p.Scheduler.Stop()
}
