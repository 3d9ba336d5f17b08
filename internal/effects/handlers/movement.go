package handlers

import (
	"errors"
	"slices"

	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

const (
	itemEntityType = "minecraft:item"

	pullRangePerLevel = 10.0
	pullStrength      = 0.1

	waterBreathing      = "water_breathing"
	waterBreathingTicks = 200
	landSpeedTicks      = 5
)

var wetBlocks = []string{
	"minecraft:mud",
	"minecraft:bubble_coral_block",
	"minecraft:fire_coral_block",
	"minecraft:horn_coral_block",
	"minecraft:brain_coral_block",
	"minecraft:tube_coral_block",
}

// PullEntities drags dropped items within amplifier*10 blocks toward a player
type PullEntities struct {
	physics host.Physics
}

// NewPullEntities creates the pull_entities handler
func NewPullEntities(physics host.Physics) *PullEntities {
	return &PullEntities{physics: physics}
}

// Handle pulls every item in range one step closer
func (h *PullEntities) Handle(target host.Entity, effect custom.Effect) error {
	if !target.IsPlayer() {
		return nil
	}

	center := target.Location()
	reach := float64(effect.Amplifier) * pullRangePerLevel

	var errs []error
	for _, item := range h.physics.NearbyEntities(center, reach) {
		if item.TypeID() != itemEntityType {
			continue
		}

		direction := center.Sub(item.Location()).Normalize()
		if direction == (host.Vector3{}) {
			continue
		}
		if err := h.physics.ApplyKnockback(item.ID(), direction, pullStrength); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SwimSpeed pushes a swimming player along their view direction. On wet
// blocks it grants a short speed boost instead.
type SwimSpeed struct {
	engine  host.Engine
	physics host.Physics
	blocks  host.Blocks
}

// NewSwimSpeed creates the swim_speed handler
func NewSwimSpeed(engine host.Engine, physics host.Physics, blocks host.Blocks) *SwimSpeed {
	return &SwimSpeed{engine: engine, physics: physics, blocks: blocks}
}

// Handle applies one tick of swim speed
func (h *SwimSpeed) Handle(target host.Entity, effect custom.Effect) error {
	if !target.IsPlayer() {
		return nil
	}
	id := target.ID()

	if !h.physics.IsInWater(id) {
		return h.onLand(target, effect)
	}

	speed := 0.5 + float64(effect.Amplifier)*0.2
	if err := h.physics.ApplyKnockback(id, target.ViewDirection(), speed*0.5); err != nil {
		return err
	}

	if h.engine.HasStatusEffect(id, waterBreathing) {
		return nil
	}
	return h.engine.AddStatusEffect(id, host.StatusEffect{
		Type:          waterBreathing,
		DurationTicks: waterBreathingTicks,
	})
}

func (h *SwimSpeed) onLand(target host.Entity, effect custom.Effect) error {
	below := target.Location().Add(host.Vector3{Y: -0.2})
	typeID, ok := h.blocks.BlockAt(below)
	if !ok || !slices.Contains(wetBlocks, typeID) {
		return nil
	}

	return h.engine.AddStatusEffect(target.ID(), host.StatusEffect{
		Type:          "speed",
		DurationTicks: landSpeedTicks,
		Amplifier:     effect.Amplifier,
	})
}
