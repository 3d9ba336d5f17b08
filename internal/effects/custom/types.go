package custom

import (
	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

// Type is the discriminant a custom effect is dispatched on
type Type string

const (
	PullEntities      Type = "pull_entities"
	FreezeEntityOnHit Type = "freeze_entity_on_hit"
	FireEntityOnHit   Type = "fire_entity_on_hit"
	SwimSpeed         Type = "swim_speed"
	FrostWalker       Type = "frost_walker"
	LavaWalker        Type = "lava_walker"
	PlantGrowth       Type = "plant_growth"
	DoubleJump        Type = "double_jump"

	// Excavation types are catalog data only; no handler ships for them
	StoneExcavator Type = "stone_excavator"
	Lumberjack     Type = "lumberjack"
	Digging        Type = "digging"
)

// KnownTypes lists every type this module ships a handler for
func KnownTypes() []Type {
	return []Type{
		PullEntities,
		FreezeEntityOnHit,
		FireEntityOnHit,
		SwimSpeed,
		FrostWalker,
		LavaWalker,
		PlantGrowth,
		DoubleJump,
	}
}

// Properties are the optional knobs of a request
type Properties struct {
	Amplifier     *int  `json:"amplifier,omitempty" yaml:"amplifier,omitempty"`
	ShowParticles *bool `json:"show_particles,omitempty" yaml:"show_particles,omitempty"`
	// Interval in ticks between handler invocations
	Interval *int `json:"interval,omitempty" yaml:"interval,omitempty"`
}

// Request asks for a custom effect on a target. Duration is in seconds.
type Request struct {
	Type       Type        `json:"type" yaml:"type"`
	Duration   *float64    `json:"duration,omitempty" yaml:"duration,omitempty"`
	Properties *Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Effect is a request with its defaults resolved
type Effect struct {
	Type          Type    `json:"type"`
	Duration      float64 `json:"duration"`
	Amplifier     int     `json:"amplifier"`
	ShowParticles bool    `json:"show_particles"`
	// Interval of zero defers to the handler's default interval
	Interval int `json:"interval,omitempty"`
}

// Resolve fills request defaults: duration falls back to fallbackSeconds,
// amplifier to 1, showParticles to false.
func Resolve(req Request, fallbackSeconds float64) Effect {
	effect := Effect{
		Type:      req.Type,
		Duration:  fallbackSeconds,
		Amplifier: 1,
	}
	if req.Duration != nil {
		effect.Duration = *req.Duration
	}
	if p := req.Properties; p != nil {
		if p.Amplifier != nil {
			effect.Amplifier = *p.Amplifier
		}
		if p.ShowParticles != nil {
			effect.ShowParticles = *p.ShowParticles
		}
		if p.Interval != nil && *p.Interval > 0 {
			effect.Interval = *p.Interval
		}
	}
	return effect
}

// Handler runs the per-interval logic of one custom effect type
type Handler interface {
	Handle(target host.Entity, effect Effect) error
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc func(target host.Entity, effect Effect) error

// Handle calls f
func (f HandlerFunc) Handle(target host.Entity, effect Effect) error {
	return f(target, effect)
}
