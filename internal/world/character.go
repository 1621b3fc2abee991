// Package world owns the simulation entities and runs their frame pipeline:
// resolve state, apply movement, integrate, then dispatch animation.
package world

import (
	"github.com/google/uuid"

	"github.com/pusewicz/tacticaltwo-game/internal/anim"
	"github.com/pusewicz/tacticaltwo-game/internal/input"
	"github.com/pusewicz/tacticaltwo-game/internal/player"
)

// DefaultWalkSpeed is the horizontal speed in world units per second.
const DefaultWalkSpeed = 150.0

// Character is one simulated actor: a position, a movement controller, a
// clip player, and the state machine that drives it.
type Character struct {
	ID uuid.UUID

	X, Y    float64
	VelX    float64
	FacingX float64 // +1 right, -1 left

	WalkSpeed float64

	Machine *player.Machine
	Sprite  *anim.Sprite
}

// NewCharacter spawns a character at the origin, facing right, with a fresh
// state machine over the given clip set.
func NewCharacter(clips *anim.Set, walkSpeed float64) *Character {
	sprite := anim.NewSprite(clips)
	sprite.Play(player.ClipWalk)

	return &Character{
		ID:        uuid.New(),
		FacingX:   1,
		WalkSpeed: walkSpeed,
		Machine:   player.NewMachine(sprite),
		Sprite:    sprite,
	}
}

// Step advances the character one simulation frame. The ordering mirrors the
// frame pipeline: the resolver decides the state first, movement and
// integration read that state, and the dispatcher runs last so fire-entry
// clip selection sees this frame's velocity.
func (c *Character) Step(dt float32, in input.Intents) {
	c.Machine.Resolve(dt, in)
	c.updateMovement(in)
	c.X += c.VelX * float64(dt)
	c.Machine.Dispatch(player.Env{VelX: c.VelX, FacingX: c.FacingX})
}

// updateMovement sets velocity and facing from the resolved state and the
// held movement intents. Crouched states pin the character in place.
func (c *Character) updateMovement(in input.Intents) {
	switch c.Machine.State() {
	case player.StateCrouching, player.StateCrouchWalking, player.StateCrouchFiring:
		c.VelX = 0
	default:
		c.VelX = 0
		if in.Left {
			c.VelX -= c.WalkSpeed
		}
		if in.Right {
			c.VelX += c.WalkSpeed
		}
	}

	// Facing only changes on an unambiguous direction.
	if in.Right && !in.Left {
		c.FacingX = 1
	} else if in.Left && !in.Right {
		c.FacingX = -1
	}
}
