package handlers

import (
	"log"

	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
)

const (
	jumpCooldownTicks = 2
	doubleJumpForce   = 1.0

	doubleJumpSound    = "mob.enderdragon.flap"
	doubleJumpParticle = "minecraft:knockback_roar_particle"
)

type jumpState struct {
	jumpedOnce   bool
	doubleJumped bool
	lastJumpTick uint64
}

// DoubleJump lets an airborne player jump once more. The first jump press
// in the air is only recorded; the next press after the cooldown launches
// the player upward.
type DoubleJump struct {
	engine  host.Engine
	physics host.Physics
	loop    tick.Scheduler

	// tick goroutine only
	states map[host.EntityID]*jumpState
}

// NewDoubleJump creates the double_jump handler
func NewDoubleJump(engine host.Engine, physics host.Physics, loop tick.Scheduler) *DoubleJump {
	return &DoubleJump{
		engine:  engine,
		physics: physics,
		loop:    loop,
		states:  make(map[host.EntityID]*jumpState),
	}
}

// Handle tracks the jump state and fires the second jump
func (h *DoubleJump) Handle(target host.Entity, _ custom.Effect) error {
	if !target.IsPlayer() {
		return nil
	}

	id := target.ID()
	if h.physics.IsOnGround(id) {
		// Landing resets the jumps
		delete(h.states, id)
		return nil
	}
	if !h.physics.IsJumping(id) {
		return nil
	}

	state, ok := h.states[id]
	if !ok {
		state = &jumpState{}
		h.states[id] = state
	}

	now := h.loop.CurrentTick()
	if state.doubleJumped || now-state.lastJumpTick <= jumpCooldownTicks {
		return nil
	}

	if !state.jumpedOnce {
		state.jumpedOnce = true
		state.lastJumpTick = now
		return nil
	}

	state.doubleJumped = true
	return h.launch(target)
}

func (h *DoubleJump) launch(target host.Entity) error {
	if err := h.physics.ApplyKnockback(target.ID(), host.Vector3{Y: 1}, doubleJumpForce); err != nil {
		return err
	}
	log.Printf("DoubleJump: %s double jumped", target.ID())

	at := target.Location()
	_ = h.engine.PlaySound(doubleJumpSound, at)
	_ = h.engine.SpawnParticle(doubleJumpParticle, at.Add(host.Vector3{Y: 1}))
	return nil
}
