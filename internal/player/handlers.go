package player

import (
	"github.com/pusewicz/tacticaltwo-game/internal/anim"
	"github.com/pusewicz/tacticaltwo-game/internal/coro"
)

// Each handler owns a named set of resumption points, declared as constants
// from coro.Start + 1 upward and matched by an exhaustive switch. Inserting
// a suspension adds a label without shifting the others, and lastPoint lets
// a loaded token be audited against the set the running code defines.
//
// No local variable carries state across a suspension: everything a handler
// needs after resuming lives in the Record or in the clip player.

// Looping states define a single parked point.
const loopParked coro.Point = 1

// One-shot states define a single waiting point each.
const (
	fireAwaitFinish       coro.Point = 1
	crouchFireAwaitFinish coro.Point = 1
	reloadAwaitFinish     coro.Point = 1
)

// lastPoint returns the highest resumption label the handler for s defines.
func lastPoint(s State) coro.Point {
	switch s {
	case StateIdle, StateWalking, StateCrouching, StateCrouchWalking:
		return loopParked
	case StateFiring:
		return fireAwaitFinish
	case StateCrouchFiring:
		return crouchFireAwaitFinish
	case StateReloading:
		return reloadAwaitFinish
	default:
		return coro.Start
	}
}

// stepLoop drives a looping state: request the canonical clip once, then
// park. Looping states never transition themselves; only the resolver moves
// Current. The clip request is guarded, so repeated invocations never
// restart playback, and a cell left at Done by a finished one-shot still
// gets the right picture.
func stepLoop(rec *Record, sprite anim.Player, clip string) {
	if rec.Resume.IsStart() {
		rec.Resume = loopParked
	}
	if !sprite.IsPlaying(clip) {
		sprite.Play(clip)
	}
}

// stepFire drives the standing fire sequence.
func stepFire(rec *Record, sprite anim.Player, env Env) {
	switch rec.Resume {
	case coro.Start:
		// Clip choice is frozen at entry: firing while moving plays the
		// walk-fire variant for the whole sequence, even if the
		// character stops a frame later.
		clip := ClipFire
		if env.VelX != 0 {
			clip = ClipWalkFire
		}
		sprite.Play(clip)
		rec.Resume = fireAwaitFinish
		fallthrough
	case fireAwaitFinish:
		// Skip the completion check on the entry frame so the shot is
		// visible for at least one frame before it can complete.
		if rec.Elapsed <= 0 {
			return
		}
		if !fireFinished(sprite) {
			return
		}
		rec.Current = StateIdle
		rec.Resume.Finish()
	}
}

// fireFinished is the fire completion predicate. GunWalkFire has 8 authored
// frames but only the first 4 constitute a single shot, so it truncates at
// frame index 3; every other clip finishes on the player's native signal.
func fireFinished(sprite anim.Player) bool {
	if sprite.IsPlaying(ClipWalkFire) {
		return sprite.Frame() >= 3
	}
	return sprite.WillFinish()
}

// stepCrouchFire drives the crouched fire sequence. No movement variant:
// crouching zeroes velocity.
func stepCrouchFire(rec *Record, sprite anim.Player) {
	switch rec.Resume {
	case coro.Start:
		sprite.Play(ClipCrouchFire)
		rec.Resume = crouchFireAwaitFinish
		fallthrough
	case crouchFireAwaitFinish:
		if rec.Elapsed <= 0 {
			return
		}
		if !sprite.WillFinish() {
			return
		}
		rec.Current = StateCrouching
		rec.Resume.Finish()
	}
}

// stepReload drives the reload sequence.
func stepReload(rec *Record, sprite anim.Player) {
	switch rec.Resume {
	case coro.Start:
		sprite.Play(ClipReload)
		rec.Resume = reloadAwaitFinish
		fallthrough
	case reloadAwaitFinish:
		if rec.Elapsed <= 0 {
			return
		}
		if !sprite.WillFinish() {
			return
		}
		rec.Current = StateIdle
		rec.Resume.Finish()
	}
}
