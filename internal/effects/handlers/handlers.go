// Package handlers holds the custom effect handlers shipped with the engine
package handlers

import (
	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/events"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
)

// Applier applies a definition to an entity
type Applier interface {
	ApplyEffect(target host.Entity, def *effects.Definition) error
}

// ActiveChecker reports whether a custom effect is still active
type ActiveChecker interface {
	IsActive(id host.EntityID, effectType custom.Type) bool
}

// Definitions resolves definitions by id
type Definitions interface {
	Get(id string) (*effects.Definition, bool)
}

// Deps are the collaborators of the default handlers
type Deps struct {
	Engine      host.Engine
	Physics     host.Physics
	Blocks      host.Blocks
	Loop        tick.Scheduler
	Bus         *events.Bus
	Effects     Applier
	Active      ActiveChecker
	Definitions Definitions
	Namespace   string
}

func (d *Deps) validate() error {
	switch {
	case d == nil:
		return apperr.InvalidArgument("handler deps are required")
	case d.Engine == nil, d.Physics == nil, d.Blocks == nil:
		return apperr.InvalidArgument("engine, physics and blocks are required")
	case d.Loop == nil:
		return apperr.InvalidArgument("loop is required")
	case d.Bus == nil:
		return apperr.InvalidArgument("event bus is required")
	case d.Effects == nil || d.Active == nil:
		return apperr.InvalidArgument("effects applier and active checker are required")
	}
	return nil
}

// RegisterDefaults registers every shipped handler with its default interval.
// Types that are already registered keep their existing handler.
func RegisterDefaults(registry *custom.Registry, deps *Deps) error {
	if registry == nil {
		return apperr.InvalidArgument("registry is required")
	}
	if err := deps.validate(); err != nil {
		return err
	}

	namespace := deps.Namespace
	if namespace == "" {
		namespace = effects.DefaultAnimationNamespace
	}

	defaults := []struct {
		effectType custom.Type
		handler    custom.Handler
		interval   int
	}{
		{custom.PullEntities, NewPullEntities(deps.Physics), 1},
		{custom.FreezeEntityOnHit, NewOnHit(custom.FreezeEntityOnHit, onHitDefinition(deps.Definitions, "freeze_entity", effects.BuildFreezeEffect(namespace)), deps), 0},
		{custom.FireEntityOnHit, NewOnHit(custom.FireEntityOnHit, onHitDefinition(deps.Definitions, "fire", effects.BuildFireEffect(namespace)), deps), 0},
		{custom.SwimSpeed, NewSwimSpeed(deps.Engine, deps.Physics, deps.Blocks), 1},
		{custom.FrostWalker, NewFrostWalker(deps.Blocks, deps.Loop), 5},
		{custom.LavaWalker, NewLavaWalker(deps.Engine, deps.Blocks, deps.Loop), 1},
		{custom.PlantGrowth, NewPlantGrowth(deps.Engine, deps.Blocks), 20},
		{custom.DoubleJump, NewDoubleJump(deps.Engine, deps.Physics, deps.Loop), 2},
	}

	for _, d := range defaults {
		err := registry.Register(d.effectType, d.handler, d.interval)
		if err != nil && !apperr.IsAlreadyExists(err) {
			return err
		}
	}
	return nil
}

func onHitDefinition(defs Definitions, id string, fallback *effects.Definition) *effects.Definition {
	if defs != nil {
		if def, ok := defs.Get(id); ok {
			return def
		}
	}
	return fallback
}
