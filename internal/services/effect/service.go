// Package effect is the thread-safe entry point into the effect engine. Every
// call is marshalled onto the tick goroutine through the loop.
package effect

//go:generate mockgen -destination=mock/mock_service.go -package=mockeffect -source=service.go

import (
	"context"
	"slices"
	"strings"

	"github.com/KirkDiggler/bedrock-effects/internal/charge"
	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

// Service defines the effect service interface
type Service interface {
	// ApplyByID applies a catalog definition to an entity
	ApplyByID(ctx context.Context, entityID, definitionID string) error

	// Status reports everything currently running on an entity
	Status(ctx context.Context, entityID string) (*EntityStatus, error)

	// Definitions lists the catalog definition ids
	Definitions() []string

	// StartCharge begins charging a catalog charge item
	StartCharge(ctx context.Context, entityID, itemID string) error

	// ReleaseCharge ends the entity's charge and plays its release effects
	ReleaseCharge(ctx context.Context, entityID string) error
}

// ActiveCustom is a running custom effect and the ticks it has left
type ActiveCustom struct {
	Effect         custom.Effect
	RemainingTicks int
}

// EntityStatus is a point-in-time view of one entity
type EntityStatus struct {
	EntityID      host.EntityID
	TypeID        string
	Valid         bool
	Tick          uint64
	Custom        []ActiveCustom
	Visual        effects.VisualState
	StatusEffects []host.StatusEffect
	Charging      string
}

// Loop runs work on the tick goroutine
type Loop interface {
	Do(ctx context.Context, fn func()) error
	CurrentTick() uint64
}

// World resolves entities and their vanilla status effects
type World interface {
	Entity(id host.EntityID) (host.Entity, bool)
	StatusEffects(id host.EntityID) map[string]host.StatusEffect
}

// Manager is the visual and duration applier
type Manager interface {
	ApplyEffect(target host.Entity, def *effects.Definition) error
	BeginCharge(target host.Entity, item *effects.ChargeItem) error
	PlayChargeRelease(target host.Entity, visual *effects.ChargeVisual)
	Snapshot(id host.EntityID) (effects.VisualState, bool)
}

// CustomState exposes the scheduler's active effects
type CustomState interface {
	Snapshot() []custom.EntityState
}

// Catalog resolves definitions and charge items
type Catalog interface {
	Get(id string) (*effects.Definition, bool)
	IDs() []string
	ChargeItem(id string) (*effects.ChargeItem, bool)
}

type service struct {
	loop    Loop
	world   World
	manager Manager
	custom  CustomState
	catalog Catalog
	charge  *charge.Tracker
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Loop    Loop            // Required
	World   World           // Required
	Manager Manager         // Required
	Custom  CustomState     // Required
	Catalog Catalog         // Required
	Charge  *charge.Tracker // Required
}

// NewService creates a new effect service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Loop == nil {
		panic("loop is required")
	}
	if cfg.World == nil {
		panic("world is required")
	}
	if cfg.Manager == nil {
		panic("manager is required")
	}
	if cfg.Custom == nil {
		panic("custom effect state is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Charge == nil {
		panic("charge tracker is required")
	}

	return &service{
		loop:    cfg.Loop,
		world:   cfg.World,
		manager: cfg.Manager,
		custom:  cfg.Custom,
		catalog: cfg.Catalog,
		charge:  cfg.Charge,
	}
}

func (s *service) ApplyByID(ctx context.Context, entityID, definitionID string) error {
	def, ok := s.catalog.Get(definitionID)
	if !ok {
		return apperr.NotFoundf("definition %s not found", definitionID).WithMeta("definition_id", definitionID)
	}

	var err error
	if doErr := s.loop.Do(ctx, func() {
		var target host.Entity
		target, err = s.liveEntity(entityID)
		if err != nil {
			return
		}
		err = s.manager.ApplyEffect(target, def)
	}); doErr != nil {
		return doErr
	}
	return err
}

func (s *service) Status(ctx context.Context, entityID string) (*EntityStatus, error) {
	var status *EntityStatus
	var err error

	if doErr := s.loop.Do(ctx, func() {
		id := host.EntityID(entityID)
		ent, ok := s.world.Entity(id)
		if !ok {
			err = apperr.NotFoundf("entity %s not found", entityID).WithMeta("entity_id", entityID)
			return
		}
		status = s.collect(ent)
	}); doErr != nil {
		return nil, doErr
	}
	return status, err
}

func (s *service) Definitions() []string {
	return s.catalog.IDs()
}

func (s *service) StartCharge(ctx context.Context, entityID, itemID string) error {
	item, ok := s.catalog.ChargeItem(itemID)
	if !ok {
		return apperr.NotFoundf("charge item %s not found", itemID).WithMeta("item_id", itemID)
	}

	var err error
	if doErr := s.loop.Do(ctx, func() {
		var target host.Entity
		target, err = s.liveEntity(entityID)
		if err != nil {
			return
		}
		s.charge.Begin(target.ID(), item.ID, s.loop.CurrentTick())
		err = s.manager.BeginCharge(target, item)
		if err != nil {
			s.charge.End(target.ID())
		}
	}); doErr != nil {
		return doErr
	}
	return err
}

func (s *service) ReleaseCharge(ctx context.Context, entityID string) error {
	var err error
	if doErr := s.loop.Do(ctx, func() {
		id := host.EntityID(entityID)
		current, ok := s.charge.End(id)
		if !ok {
			err = apperr.FailedPrecondition("entity is not charging").WithMeta("entity_id", entityID)
			return
		}
		item, ok := s.catalog.ChargeItem(current.ItemID)
		if !ok {
			return
		}
		if target, ok := s.world.Entity(id); ok && target.IsValid() {
			s.manager.PlayChargeRelease(target, &item.Visual)
		}
	}); doErr != nil {
		return doErr
	}
	return err
}

// liveEntity must run on the tick goroutine
func (s *service) liveEntity(entityID string) (host.Entity, error) {
	ent, ok := s.world.Entity(host.EntityID(entityID))
	if !ok {
		return nil, apperr.NotFoundf("entity %s not found", entityID).WithMeta("entity_id", entityID)
	}
	if !ent.IsValid() {
		return nil, apperr.FailedPrecondition("entity is dead").WithMeta("entity_id", entityID)
	}
	return ent, nil
}

// collect must run on the tick goroutine
func (s *service) collect(ent host.Entity) *EntityStatus {
	id := ent.ID()
	now := s.loop.CurrentTick()

	status := &EntityStatus{
		EntityID: id,
		TypeID:   ent.TypeID(),
		Valid:    ent.IsValid(),
		Tick:     now,
	}

	for _, state := range s.custom.Snapshot() {
		if state.EntityID != id {
			continue
		}
		for _, active := range state.Effects {
			remaining := 0
			if active.ExpiresAtTick > now {
				remaining = int(active.ExpiresAtTick - now)
			}
			status.Custom = append(status.Custom, ActiveCustom{Effect: active.Effect, RemainingTicks: remaining})
		}
	}

	if visual, ok := s.manager.Snapshot(id); ok {
		status.Visual = visual
	}

	for _, effect := range s.world.StatusEffects(id) {
		status.StatusEffects = append(status.StatusEffects, effect)
	}
	slices.SortFunc(status.StatusEffects, func(a, b host.StatusEffect) int {
		return strings.Compare(a.Type, b.Type)
	})

	if current, ok := s.charge.Current(id); ok {
		status.Charging = current.ItemID
	}

	return status
}
