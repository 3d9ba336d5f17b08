package effects

import (
	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
)

// EmissionKind selects between particle and sound emission
type EmissionKind string

const (
	KindParticle EmissionKind = "particle"
	KindSound    EmissionKind = "sound"
)

// StatusSpec is a built-in engine status effect. Duration is in seconds.
type StatusSpec struct {
	Type          string  `json:"type" yaml:"type"`
	Duration      float64 `json:"duration" yaml:"duration"`
	Amplifier     int     `json:"amplifier,omitempty" yaml:"amplifier,omitempty"`
	ShowParticles bool    `json:"show_particles,omitempty" yaml:"show_particles,omitempty"`
}

// IntervalEffect is a particle or sound repeated every Interval ticks
type IntervalEffect struct {
	ID       string `json:"id" yaml:"id"`
	Interval int    `json:"interval" yaml:"interval"`
}

// Emissions fire once
type Emissions struct {
	Particles  []string         `json:"particles,omitempty" yaml:"particles,omitempty"`
	Sounds     []string         `json:"sounds,omitempty" yaml:"sounds,omitempty"`
	Animations []host.Animation `json:"animations,omitempty" yaml:"animations,omitempty"`
}

// IntervalEmissions repeat for the lifetime of an effect. Animations play once.
type IntervalEmissions struct {
	Particles  []IntervalEffect `json:"particles,omitempty" yaml:"particles,omitempty"`
	Sounds     []IntervalEffect `json:"sounds,omitempty" yaml:"sounds,omitempty"`
	Animations []host.Animation `json:"animations,omitempty" yaml:"animations,omitempty"`
}

// Visual is the start/interval/end timeline of a definition
type Visual struct {
	OnStart    *Emissions         `json:"on_start,omitempty" yaml:"on_start,omitempty"`
	OnInterval *IntervalEmissions `json:"on_interval,omitempty" yaml:"on_interval,omitempty"`
	OnEnd      *Emissions         `json:"on_end,omitempty" yaml:"on_end,omitempty"`
}

// ChargeVisual is the timeline of a charge-up item
type ChargeVisual struct {
	OnStart   *Emissions         `json:"on_start,omitempty" yaml:"on_start,omitempty"`
	OnCharge  *IntervalEmissions `json:"on_charge,omitempty" yaml:"on_charge,omitempty"`
	OnEnd     *Emissions         `json:"on_end,omitempty" yaml:"on_end,omitempty"`
	OnRelease *Emissions         `json:"on_release,omitempty" yaml:"on_release,omitempty"`
}

// ChargeItem is an item that has to be held for Time seconds before release
type ChargeItem struct {
	ID     string       `json:"id" yaml:"id"`
	Time   float64      `json:"time" yaml:"time"`
	Visual ChargeVisual `json:"visual" yaml:"visual"`
}

// Definition describes everything applyEffect does for one effect id.
// Duration is in seconds and is the fallback for custom effects.
type Definition struct {
	ID            string           `json:"id" yaml:"id"`
	Duration      float64          `json:"duration" yaml:"duration"`
	Effects       []StatusSpec     `json:"effects,omitempty" yaml:"effects,omitempty"`
	CustomEffects []custom.Request `json:"custom_effects,omitempty" yaml:"custom_effects,omitempty"`
	Visual        *Visual          `json:"visual,omitempty" yaml:"visual,omitempty"`
}

// DurationTicks returns the total duration in ticks
func (d *Definition) DurationTicks() int {
	return tick.SecondsToTicks(d.Duration)
}

// VisualState is a read-only view of an entity's visual bookkeeping
type VisualState struct {
	// Durations maps definition id to its tracked total duration in ticks
	Durations        map[string]int
	ParticleHandles  int
	SoundHandles     int
	EndEffectHandles int
	Controllers      []string
}

// PendingHandles is the number of outstanding scheduled callbacks
func (v VisualState) PendingHandles() int {
	return v.ParticleHandles + v.SoundHandles + v.EndEffectHandles
}
