package player

import (
	"testing"

	"github.com/pusewicz/tacticaltwo-game/internal/anim"
	"github.com/pusewicz/tacticaltwo-game/internal/input"
)

const dt = float32(1.0 / 30.0)

// testClips uses speed 1 everywhere so frame indices advance one per tick.
func testClips() *anim.Set {
	return anim.NewSet([]anim.Clip{
		{Name: ClipAim, Frames: 6, Speed: 1},
		{Name: ClipWalk, Frames: 8, Speed: 1},
		{Name: ClipCrouch, Frames: 4, Speed: 1},
		{Name: ClipFire, Frames: 4, Speed: 1},
		{Name: ClipWalkFire, Frames: 8, Speed: 1},
		{Name: ClipCrouchFire, Frames: 4, Speed: 1},
		{Name: ClipReload, Frames: 4, Speed: 1},
	})
}

// spySprite records every Play request that reaches the clip player.
type spySprite struct {
	*anim.Sprite
	plays []string
}

func newSpySprite() *spySprite {
	return &spySprite{Sprite: anim.NewSprite(testClips())}
}

func (s *spySprite) Play(name string) {
	s.plays = append(s.plays, name)
	s.Sprite.Play(name)
}

func (s *spySprite) count(name string) int {
	n := 0
	for _, p := range s.plays {
		if p == name {
			n++
		}
	}
	return n
}

func TestSpawnRecord(t *testing.T) {
	rec := Spawn()

	if rec.Current != StateIdle || rec.Previous != StateIdle {
		t.Errorf("Spawn() states = {%v %v}, want {idle idle}", rec.Current, rec.Previous)
	}
	if rec.Elapsed != 0 {
		t.Errorf("Spawn() Elapsed = %v, want 0", rec.Elapsed)
	}
	if !rec.Resume.IsStart() {
		t.Errorf("Spawn() Resume = %v, want fresh", rec.Resume)
	}
}

func TestIdleLoopIsIdempotent(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	for i := 0; i < 20; i++ {
		m.Tick(dt, input.Intents{}, Env{FacingX: 1})
		if m.State() != StateIdle {
			t.Fatalf("tick %d: State() = %v, want idle", i, m.State())
		}
	}

	if got := sprite.count(ClipAim); got != 1 {
		t.Errorf("idle requested %s %d times over 20 ticks, want 1", ClipAim, got)
	}
}

func TestTransitionResetsResumption(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	// Walk long enough for the walking handler to park.
	for i := 0; i < 3; i++ {
		m.Tick(dt, input.Intents{Right: true}, Env{VelX: 150, FacingX: 1})
	}
	if m.Record().Resume.IsStart() {
		t.Fatal("walking handler never left the fresh point")
	}

	// Shoot: if the dispatcher failed to reset the cell, the fire handler
	// would resume mid-sequence and never request its clip.
	m.Tick(dt, input.Intents{Shoot: true}, Env{VelX: 0, FacingX: 1})

	if m.State() != StateFiring {
		t.Fatalf("State() = %v, want firing", m.State())
	}
	if !sprite.IsPlaying(ClipFire) {
		t.Errorf("fire entry did not run after transition; playing %q", sprite.Current())
	}
}

func TestStandFireScenario(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)
	m.Tick(dt, input.Intents{}, Env{FacingX: 1}) // settle into idle

	// Shoot while stationary: stand-fire clip this very frame.
	m.Tick(dt, input.Intents{Shoot: true}, Env{VelX: 0, FacingX: 1})
	if m.State() != StateFiring {
		t.Fatalf("State() = %v, want firing", m.State())
	}
	if !sprite.IsPlaying(ClipFire) {
		t.Fatalf("playing %q, want %s", sprite.Current(), ClipFire)
	}

	// GunFire has 4 frames at speed 1. The entry frame skips the
	// completion check; the sequence exits the frame WillFinish reports.
	ticks := 0
	for m.State() == StateFiring {
		m.Tick(dt, input.Intents{}, Env{FacingX: 1})
		ticks++
		if ticks > 32 {
			t.Fatal("fire sequence never completed")
		}
	}

	if m.State() != StateIdle {
		t.Errorf("fire exits to %v, want idle", m.State())
	}
	if ticks != 3 {
		t.Errorf("fire sequence took %d ticks after entry, want 3 (finish on last frame)", ticks)
	}
}

func TestWalkFireTruncatesAtFrameThree(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	// Shoot while moving: walk-fire variant.
	m.Tick(dt, input.Intents{Shoot: true, Right: true}, Env{VelX: 150, FacingX: 1})
	if !sprite.IsPlaying(ClipWalkFire) {
		t.Fatalf("playing %q, want %s", sprite.Current(), ClipWalkFire)
	}

	// Velocity drops to zero immediately after entry; the clip choice is
	// frozen and must not fall back to the stand-fire clip.
	exitFrame := -1
	for i := 0; i < 32 && m.State() == StateFiring; i++ {
		exitFrame = sprite.Frame()
		m.Tick(dt, input.Intents{}, Env{VelX: 0, FacingX: 1})
	}

	if m.State() != StateIdle {
		t.Fatalf("walk-fire exits to %v, want idle", m.State())
	}
	if sprite.count(ClipFire) != 0 {
		t.Error("clip selection was re-evaluated mid-sequence")
	}
	// The clip has 8 authored frames; completion is frame index 3, the
	// last frame of the single-shot cycle, never frame 7.
	if exitFrame != 3 {
		t.Errorf("walk-fire completed at frame %d, want 3", exitFrame)
	}
}

func TestCrouchFireReturnsToCrouching(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	m.Tick(dt, input.Intents{Shoot: true, Crouch: true}, Env{FacingX: 1})
	if m.State() != StateCrouchFiring {
		t.Fatalf("State() = %v, want crouch_firing", m.State())
	}
	if !sprite.IsPlaying(ClipCrouchFire) {
		t.Fatalf("playing %q, want %s", sprite.Current(), ClipCrouchFire)
	}

	for i := 0; i < 32 && m.State() == StateCrouchFiring; i++ {
		m.Tick(dt, input.Intents{Crouch: true}, Env{FacingX: 1})
	}

	if m.State() != StateCrouching {
		t.Errorf("crouch-fire exits to %v, want crouching", m.State())
	}
}

func TestReloadReturnsToIdle(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	m.Tick(dt, input.Intents{Reload: true}, Env{FacingX: 1})
	if m.State() != StateReloading {
		t.Fatalf("State() = %v, want reloading", m.State())
	}

	// Hostile inputs while locked: the handler alone decides the exit.
	for i := 0; i < 32 && m.State() == StateReloading; i++ {
		m.Tick(dt, input.Intents{Shoot: true, Crouch: true, Left: true}, Env{FacingX: 1})
	}

	if m.State() != StateIdle {
		t.Errorf("reload exits to %v, want idle", m.State())
	}
}

func TestLockInvariant(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	m.Tick(dt, input.Intents{Shoot: true}, Env{FacingX: 1})
	if m.State() != StateFiring {
		t.Fatalf("State() = %v, want firing", m.State())
	}

	// One frame of hostile input must not break the lock mid-sequence.
	m.Tick(dt, input.Intents{Reload: true, Crouch: true, Left: true}, Env{FacingX: 1})
	if m.State() != StateFiring {
		t.Errorf("State() = %v after hostile input, want firing", m.State())
	}
}

func TestUnknownStateFallsBackToIdleClip(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	rec := Spawn()
	rec.Current = State(42)
	rec.Previous = State(42)
	m.Restore(rec)

	m.Dispatch(Env{FacingX: 1})

	if !sprite.IsPlaying(ClipAim) {
		t.Errorf("fallback playing %q, want %s", sprite.Current(), ClipAim)
	}
	// Cosmetic fallback only: the state itself is left alone.
	if m.State() != State(42) {
		t.Errorf("fallback mutated Current to %v", m.State())
	}
}

func TestForceResetRestartsSequence(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	m.Tick(dt, input.Intents{Shoot: true}, Env{FacingX: 1})
	m.Tick(dt, input.Intents{}, Env{FacingX: 1})
	if m.Record().Resume.IsStart() {
		t.Fatal("fire handler should be mid-sequence")
	}

	m.ForceReset()
	if !m.Record().Resume.IsStart() {
		t.Error("ForceReset did not rewind the resumption point")
	}

	// Next dispatch re-runs the handler from its top.
	m.Tick(dt, input.Intents{}, Env{FacingX: 1})
	if m.State() != StateFiring {
		t.Errorf("State() = %v after reset, want firing (sequence restarted)", m.State())
	}
}

func TestFacingMirror(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	m.Tick(dt, input.Intents{Left: true}, Env{VelX: -150, FacingX: -1})
	if !sprite.FlipX() {
		t.Error("facing left should mirror the sprite")
	}

	m.Tick(dt, input.Intents{Right: true}, Env{VelX: 150, FacingX: 1})
	if sprite.FlipX() {
		t.Error("facing right should not mirror the sprite")
	}
}

func TestRoundTripMidSequence(t *testing.T) {
	sprite := newSpySprite()
	m := NewMachine(sprite)

	// Reach a mid-sequence point: walk-fire entered, partway through.
	m.Tick(dt, input.Intents{Shoot: true, Right: true}, Env{VelX: 150, FacingX: 1})
	m.Tick(dt, input.Intents{}, Env{VelX: 0, FacingX: 1})

	if m.Record().Resume.IsStart() || m.Record().Resume.IsDone() {
		t.Fatal("expected a mid-sequence resumption point")
	}

	// Serialize the record and capture the clip player position.
	blob, err := m.Record().MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error: %v", err)
	}
	clip, frame, subtick := sprite.Playback()

	// Restore into a fresh machine with a reconciled clip player.
	restoredSprite := newSpySprite()
	restoredSprite.SetPlayback(clip, frame, subtick)
	restored := NewMachine(restoredSprite)

	var rec Record
	if err := rec.UnmarshalBinary(blob); err != nil {
		t.Fatalf("UnmarshalBinary() error: %v", err)
	}
	restored.Restore(rec)

	// Both instances must walk the same trajectory from here.
	script := []input.Intents{{}, {}, {}, {Right: true}, {Right: true}, {Crouch: true}, {}, {}}
	for i, in := range script {
		m.Tick(dt, in, Env{FacingX: 1})
		restored.Tick(dt, in, Env{FacingX: 1})

		a, b := m.Record(), restored.Record()
		if a != b {
			t.Fatalf("tick %d: records diverged: %+v vs %+v", i, a, b)
		}
		if sprite.Frame() != restoredSprite.Frame() {
			t.Fatalf("tick %d: clip frames diverged: %d vs %d", i, sprite.Frame(), restoredSprite.Frame())
		}
	}
}
