package player

import (
	"github.com/pusewicz/tacticaltwo-game/internal/anim"
	"github.com/pusewicz/tacticaltwo-game/internal/input"
)

// Env is the frame environment the dispatcher reads: the character's
// horizontal velocity at dispatch time (fire clip selection) and the facing
// sign (sprite mirroring).
type Env struct {
	VelX    float64
	FacingX float64
}

// Mirrorable is implemented by clip players that support horizontal
// mirroring. Mirroring is rendering housekeeping, so it stays out of the
// narrow Player interface the handlers drive.
type Mirrorable interface {
	SetFlipX(flip bool)
}

// Machine runs one character's state machine: resolver, dispatcher, and the
// per-state handlers, all over a single Record. A Machine is exclusively
// owned by its character and is not safe for concurrent use; the whole
// design is single-threaded and frame-synchronous.
type Machine struct {
	rec    Record
	sprite anim.Player
}

// NewMachine creates a machine over the given clip player with a freshly
// spawned record.
func NewMachine(sprite anim.Player) *Machine {
	return &Machine{rec: Spawn(), sprite: sprite}
}

// Resolve runs the transition resolver for one frame. Call it before
// Dispatch; anything that depends on the newly resolved state (movement,
// physics) may run between the two.
func (m *Machine) Resolve(dt float32, in input.Intents) {
	resolve(&m.rec, in, dt)
}

// Dispatch runs the handler for the current state, exactly once. A
// transition observed since the resolver ran resets the resumption point
// first. After the handler returns, the clip player is advanced and the
// facing mirror applied unconditionally; those run every frame no matter
// which handler executed.
func (m *Machine) Dispatch(env Env) {
	if m.rec.Current != m.rec.Previous {
		m.rec.Resume.Reset()
	}

	switch m.rec.Current {
	case StateIdle, StateWalking, StateCrouching, StateCrouchWalking:
		stepLoop(&m.rec, m.sprite, m.rec.Current.Clip())
	case StateFiring:
		stepFire(&m.rec, m.sprite, env)
	case StateCrouchFiring:
		stepCrouchFire(&m.rec, m.sprite)
	case StateReloading:
		stepReload(&m.rec, m.sprite)
	default:
		// Out-of-domain state: cosmetic fallback to the idle picture.
		// Current is left alone and no handler side effects run.
		if !m.sprite.IsPlaying(ClipAim) {
			m.sprite.Play(ClipAim)
		}
	}

	m.sprite.Advance()
	if mir, ok := m.sprite.(Mirrorable); ok {
		mir.SetFlipX(env.FacingX < 0)
	}
}

// Tick runs one full frame: resolver, then dispatcher.
func (m *Machine) Tick(dt float32, in input.Intents, env Env) {
	m.Resolve(dt, in)
	m.Dispatch(env)
}

// ForceReset rewinds the active handler to its top. This is the coarse
// recovery used when handler code has been swapped and a saved resumption
// token can no longer be trusted; the whole sequence restarts, it does not
// unwind gracefully.
func (m *Machine) ForceReset() {
	m.rec.Resume.Reset()
}

// State returns the current state.
func (m *Machine) State() State {
	return m.rec.Current
}

// Record returns a copy of the persisted record for saving.
func (m *Machine) Record() Record {
	return m.rec
}

// Restore replaces the machine's record with a loaded one, sanitized. The
// caller is responsible for restoring the clip player's position to match;
// the machine only trusts what survives sanitization.
func (m *Machine) Restore(rec Record) {
	rec.Sanitize()
	m.rec = rec
}
