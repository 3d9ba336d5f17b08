package effects

import (
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

// Builder helps create effect definitions
type Builder struct {
	def *Definition
}

// NewBuilder creates a builder for a definition lasting duration seconds
func NewBuilder(id string, duration float64) *Builder {
	return &Builder{
		def: &Definition{
			ID:       id,
			Duration: duration,
		},
	}
}

// WithStatus adds a built-in status effect
func (b *Builder) WithStatus(effectType string, duration float64, amplifier int, showParticles bool) *Builder {
	b.def.Effects = append(b.def.Effects, StatusSpec{
		Type:          effectType,
		Duration:      duration,
		Amplifier:     amplifier,
		ShowParticles: showParticles,
	})
	return b
}

// WithCustom adds a custom effect that inherits the definition duration
func (b *Builder) WithCustom(effectType custom.Type, amplifier, interval int) *Builder {
	props := &custom.Properties{Amplifier: &amplifier}
	if interval > 0 {
		props.Interval = &interval
	}
	b.def.CustomEffects = append(b.def.CustomEffects, custom.Request{
		Type:       effectType,
		Properties: props,
	})
	return b
}

// WithCustomRequest adds a custom effect request as is
func (b *Builder) WithCustomRequest(req custom.Request) *Builder {
	b.def.CustomEffects = append(b.def.CustomEffects, req)
	return b
}

// OnStart adds emissions fired when the effect is applied
func (b *Builder) OnStart(particles, sounds []string, animations ...host.Animation) *Builder {
	v := b.visual()
	if v.OnStart == nil {
		v.OnStart = &Emissions{}
	}
	v.OnStart.Particles = append(v.OnStart.Particles, particles...)
	v.OnStart.Sounds = append(v.OnStart.Sounds, sounds...)
	v.OnStart.Animations = append(v.OnStart.Animations, animations...)
	return b
}

// EveryParticle repeats a particle every interval ticks
func (b *Builder) EveryParticle(id string, interval int) *Builder {
	iv := b.interval()
	iv.Particles = append(iv.Particles, IntervalEffect{ID: id, Interval: interval})
	return b
}

// EverySound repeats a sound every interval ticks
func (b *Builder) EverySound(id string, interval int) *Builder {
	iv := b.interval()
	iv.Sounds = append(iv.Sounds, IntervalEffect{ID: id, Interval: interval})
	return b
}

// OnEnd adds emissions fired when the effect runs out
func (b *Builder) OnEnd(particles, sounds []string, animations ...host.Animation) *Builder {
	v := b.visual()
	if v.OnEnd == nil {
		v.OnEnd = &Emissions{}
	}
	v.OnEnd.Particles = append(v.OnEnd.Particles, particles...)
	v.OnEnd.Sounds = append(v.OnEnd.Sounds, sounds...)
	v.OnEnd.Animations = append(v.OnEnd.Animations, animations...)
	return b
}

// Build returns the constructed definition
func (b *Builder) Build() *Definition {
	return b.def
}

func (b *Builder) visual() *Visual {
	if b.def.Visual == nil {
		b.def.Visual = &Visual{}
	}
	return b.def.Visual
}

func (b *Builder) interval() *IntervalEmissions {
	v := b.visual()
	if v.OnInterval == nil {
		v.OnInterval = &IntervalEmissions{}
	}
	return v.OnInterval
}

// Common definitions

// BuildFreezeEffect creates the slowness effect applied by freeze_entity_on_hit
func BuildFreezeEffect(namespace string) *Definition {
	return NewBuilder("freeze_entity", 5).
		WithStatus("minecraft:slowness", 5, 5, false).
		OnStart(nil, []string{namespace + ":freeze.hit"}).
		EveryParticle(namespace+":freeze.hit", 2).
		Build()
}

// BuildFireEffect creates the burning effect applied by fire_entity_on_hit
func BuildFireEffect(namespace string) *Definition {
	return NewBuilder("fire", 5).
		OnStart(nil, []string{namespace + ":fire.hit"}).
		EveryParticle(namespace+":fire.hit", 2).
		Build()
}
