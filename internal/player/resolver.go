package player

import "github.com/pusewicz/tacticaltwo-game/internal/input"

// resolve maps this frame's intents to the next state and advances the
// state timer. It runs before dispatch every frame.
//
// Previous is recorded first, before Current may be overwritten, so the
// dispatcher can detect the transition that just happened. While Current is
// a locked one-shot state only the timer advances; the handler alone decides
// the exit.
func resolve(rec *Record, in input.Intents, dt float32) {
	rec.Previous = rec.Current

	if rec.Current.Locked() {
		rec.Elapsed += dt
		return
	}

	// Fixed priority order.
	switch {
	case in.Shoot && in.Crouch:
		rec.Current = StateCrouchFiring
	case in.Shoot:
		rec.Current = StateFiring
	case in.Reload:
		rec.Current = StateReloading
	case in.Crouch:
		rec.Current = StateCrouching
	case in.Moving():
		rec.Current = StateWalking
	default:
		rec.Current = StateIdle
	}

	if rec.Current != rec.Previous {
		rec.Elapsed = 0
	} else {
		rec.Elapsed += dt
	}
}
