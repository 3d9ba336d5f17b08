package host

import "math"

//go:generate mockgen -destination=mock/mock.go -package=mockhost -source=interface.go

// EntityID is the stable key every per-entity map is keyed by
type EntityID string

// Vector3 is a world position or direction
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns v+o
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v-o
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v*f
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Length returns the euclidean length of v
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to length one, or the zero vector
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

// Block returns the integer block position containing v
func (v Vector3) Block() Vector3 {
	return Vector3{X: math.Floor(v.X), Y: math.Floor(v.Y), Z: math.Floor(v.Z)}
}

// Entity is a live handle to something in the world
type Entity interface {
	ID() EntityID
	TypeID() string
	IsPlayer() bool
	// IsValid is false once the entity died or was unloaded
	IsValid() bool
	Location() Vector3
	ViewDirection() Vector3
}

// Animation is a player animation request
type Animation struct {
	Name           string  `json:"name" yaml:"name"`
	Controller     string  `json:"controller,omitempty" yaml:"controller,omitempty"`
	StopExpression string  `json:"stop_expression,omitempty" yaml:"stop_expression,omitempty"`
	BlendOutTime   float64 `json:"blend_out_time,omitempty" yaml:"blend_out_time,omitempty"`
}

// StatusEffect is a built-in engine status effect (slowness, speed, ...)
type StatusEffect struct {
	Type          string
	DurationTicks int
	Amplifier     int
	ShowParticles bool
}

// Engine is the outbound surface of the host game engine
type Engine interface {
	// Entity resolves an id to a live handle
	Entity(id EntityID) (Entity, bool)
	SpawnParticle(particleID string, at Vector3) error
	PlaySound(soundID string, at Vector3) error
	PlayAnimation(target EntityID, animation Animation) error
	AddStatusEffect(target EntityID, effect StatusEffect) error
	HasStatusEffect(target EntityID, effectType string) bool
}

// Physics exposes movement queries and impulses used by effect handlers
type Physics interface {
	NearbyEntities(center Vector3, radius float64) []Entity
	ApplyKnockback(target EntityID, direction Vector3, strength float64) error
	IsInWater(target EntityID) bool
	IsOnGround(target EntityID) bool
	IsJumping(target EntityID) bool
}

// Blocks exposes block reads and writes used by effect handlers
type Blocks interface {
	BlockAt(at Vector3) (string, bool)
	SetBlock(at Vector3, typeID string) error
	// GrowthState returns the crop growth stage of the block, if it has one
	GrowthState(at Vector3) (int, bool)
	SetGrowthState(at Vector3, stage int) error
}
