// Package player implements the character state machine: a resolver that
// maps input intents to states, and one resumable handler per state that
// drives the animation clip player one frame slice at a time.
package player

// State represents the character's behavior state.
type State uint8

const (
	// StateIdle - stationary, aiming
	StateIdle State = iota
	// StateWalking - moving horizontally
	StateWalking
	// StateCrouching - crouched, stationary
	StateCrouching
	// StateCrouchWalking - crouched while movement is held (same clip as crouching)
	StateCrouchWalking
	// StateFiring - one-shot fire sequence, locked until it completes
	StateFiring
	// StateCrouchFiring - one-shot crouched fire sequence, locked
	StateCrouchFiring
	// StateReloading - one-shot reload sequence, locked
	StateReloading

	stateCount
)

// Clip names in the player combat sprite sheet.
const (
	ClipAim        = "GunAim"
	ClipWalk       = "GunWalk"
	ClipCrouch     = "GunCrouch"
	ClipFire       = "GunFire"
	ClipWalkFire   = "GunWalkFire"
	ClipCrouchFire = "GunCrouchFire"
	ClipReload     = "GunReload"
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateCrouching:
		return "crouching"
	case StateCrouchWalking:
		return "crouch_walking"
	case StateFiring:
		return "firing"
	case StateCrouchFiring:
		return "crouch_firing"
	case StateReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// Valid reports whether s is inside the enum's domain.
func (s State) Valid() bool {
	return s < stateCount
}

// Locked reports whether the resolver must leave the state alone and let its
// handler decide the exit. These are the non-interruptible one-shot states.
func (s State) Locked() bool {
	return s == StateFiring || s == StateCrouchFiring || s == StateReloading
}

// Clip returns the canonical clip for the state. One-shot states may pick a
// variant at entry (firing while moving); this is only the default mapping.
func (s State) Clip() string {
	switch s {
	case StateIdle:
		return ClipAim
	case StateWalking:
		return ClipWalk
	case StateCrouching, StateCrouchWalking:
		return ClipCrouch
	case StateFiring:
		return ClipFire
	case StateCrouchFiring:
		return ClipCrouchFire
	case StateReloading:
		return ClipReload
	default:
		return ClipAim
	}
}
