package handlers

import (
	"errors"
	"slices"

	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
)

const (
	maxWalkerRadius = 16

	blockWater        = "minecraft:water"
	blockFlowingWater = "minecraft:flowing_water"
	blockFrostedIce   = "minecraft:frosted_ice"
	blockLava         = "minecraft:lava"
	blockFlowingLava  = "minecraft:flowing_lava"
	blockBasalt       = "minecraft:basalt"
	blockMagma        = "minecraft:magma"

	frostMeltTicks  = 200
	basaltWarnTicks = 200
	basaltMeltTicks = 300
)

// circle returns the horizontal offsets within radius of the origin
func circle(radius int) []host.Vector3 {
	var out []host.Vector3
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			if x*x+z*z <= radius*radius {
				out = append(out, host.Vector3{X: float64(x), Z: float64(z)})
			}
		}
	}
	return out
}

// FrostWalker freezes water around a player into frosted ice that melts
// back after ten seconds.
type FrostWalker struct {
	blocks host.Blocks
	loop   tick.Scheduler
}

// NewFrostWalker creates the frost_walker handler
func NewFrostWalker(blocks host.Blocks, loop tick.Scheduler) *FrostWalker {
	return &FrostWalker{blocks: blocks, loop: loop}
}

// Handle freezes the layer below the feet and the feet layer
func (h *FrostWalker) Handle(target host.Entity, effect custom.Effect) error {
	if !target.IsPlayer() {
		return nil
	}

	feet := target.Location().Block()
	radius := min(2+effect.Amplifier, maxWalkerRadius)

	var errs []error
	for _, offset := range circle(radius) {
		for _, dy := range []float64{-1, 0} {
			at := feet.Add(offset).Add(host.Vector3{Y: dy})
			typeID, ok := h.blocks.BlockAt(at)
			if !ok || (typeID != blockWater && typeID != blockFlowingWater) {
				continue
			}
			if err := h.blocks.SetBlock(at, blockFrostedIce); err != nil {
				errs = append(errs, err)
				continue
			}
			h.loop.RunTimeout(func() {
				h.revert(at, []string{blockFrostedIce}, blockWater)
			}, frostMeltTicks)
		}
	}
	return errors.Join(errs...)
}

func (h *FrostWalker) revert(at host.Vector3, from []string, to string) {
	if typeID, ok := h.blocks.BlockAt(at); ok && slices.Contains(from, typeID) {
		_ = h.blocks.SetBlock(at, to)
	}
}

// LavaWalker turns lava into basalt, which warns as magma after ten seconds
// and turns back into the original lava five seconds later.
type LavaWalker struct {
	engine host.Engine
	blocks host.Blocks
	loop   tick.Scheduler
}

// NewLavaWalker creates the lava_walker handler
func NewLavaWalker(engine host.Engine, blocks host.Blocks, loop tick.Scheduler) *LavaWalker {
	return &LavaWalker{engine: engine, blocks: blocks, loop: loop}
}

// Handle covers lava one and two blocks below the feet
func (h *LavaWalker) Handle(target host.Entity, effect custom.Effect) error {
	if !target.IsPlayer() {
		return nil
	}

	feet := target.Location().Block()
	radius := min(1+effect.Amplifier, maxWalkerRadius)

	var errs []error
	for _, offset := range circle(radius) {
		for _, dy := range []float64{-1, -2} {
			at := feet.Add(offset).Add(host.Vector3{Y: dy})
			original, ok := h.blocks.BlockAt(at)
			if !ok || (original != blockLava && original != blockFlowingLava) {
				continue
			}
			if err := h.blocks.SetBlock(at, blockBasalt); err != nil {
				errs = append(errs, err)
				continue
			}
			h.scheduleTransition(at, original)
		}
	}
	return errors.Join(errs...)
}

func (h *LavaWalker) scheduleTransition(at host.Vector3, original string) {
	above := at.Add(host.Vector3{X: 0.5, Y: 1, Z: 0.5})

	h.loop.RunTimeout(func() {
		if typeID, ok := h.blocks.BlockAt(at); !ok || typeID != blockBasalt {
			return
		}
		_ = h.blocks.SetBlock(at, blockMagma)
		_ = h.engine.SpawnParticle("minecraft:redstone_dust_particle", above)
		_ = h.engine.PlaySound("block.note_block.bell", above)
	}, basaltWarnTicks)

	h.loop.RunTimeout(func() {
		if typeID, ok := h.blocks.BlockAt(at); !ok || typeID != blockMagma {
			return
		}
		_ = h.blocks.SetBlock(at, original)
		_ = h.engine.SpawnParticle("minecraft:lava_particle", above)
	}, basaltMeltTicks)
}
