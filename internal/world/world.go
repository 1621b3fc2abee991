package world

import (
	"github.com/pusewicz/tacticaltwo-game/internal/anim"
	"github.com/pusewicz/tacticaltwo-game/internal/input"
)

// World holds the simulation: every character's state machine is independent,
// so stepping them in order needs no coordination.
type World struct {
	Clips      *anim.Set
	Player     *Character
	Characters []*Character
}

// New creates a world with a single player character.
func New(clips *anim.Set, walkSpeed float64) *World {
	p := NewCharacter(clips, walkSpeed)
	return &World{
		Clips:      clips,
		Player:     p,
		Characters: []*Character{p},
	}
}

// Step advances the whole simulation one frame. Intents apply to the player;
// other characters tick with neutral input.
func (w *World) Step(dt float32, in input.Intents) {
	for _, c := range w.Characters {
		if c == w.Player {
			c.Step(dt, in)
		} else {
			c.Step(dt, input.Intents{})
		}
	}
}
