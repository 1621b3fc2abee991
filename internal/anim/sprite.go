package anim

// Sprite is a deterministic, tick-based Player over a clip set.
// All clips loop; one-shot behavior is the state machine's concern, which
// watches Frame and WillFinish rather than relying on playback stopping.
type Sprite struct {
	set     *Set
	current string
	frame   int
	subtick int
	flipX   bool
}

// NewSprite creates a sprite over the given clip set with no clip playing.
func NewSprite(set *Set) *Sprite {
	return &Sprite{set: set}
}

// Play requests the named clip. If it is already playing this is a no-op;
// an unknown name is ignored so a bad request degrades to a stale picture
// rather than a fault.
func (s *Sprite) Play(name string) {
	if s.current == name {
		return
	}
	if _, ok := s.set.Get(name); !ok {
		return
	}
	s.current = name
	s.frame = 0
	s.subtick = 0
}

// IsPlaying reports whether the named clip is the one playing.
func (s *Sprite) IsPlaying(name string) bool {
	return s.current == name
}

// Current returns the name of the playing clip, or "" if none.
func (s *Sprite) Current() string {
	return s.current
}

// Frame returns the current frame index within the playing clip.
func (s *Sprite) Frame() int {
	return s.frame
}

// WillFinish reports whether this tick's Advance wraps past the final frame.
func (s *Sprite) WillFinish() bool {
	c, ok := s.set.Get(s.current)
	if !ok {
		return false
	}
	return s.frame == c.Frames-1 && s.subtick == c.Speed-1
}

// Advance moves the playhead one simulation tick, wrapping to frame 0 when
// the clip's final frame has been held for its full duration.
func (s *Sprite) Advance() {
	c, ok := s.set.Get(s.current)
	if !ok {
		return
	}
	s.subtick++
	if s.subtick < c.Speed {
		return
	}
	s.subtick = 0
	s.frame++
	if s.frame >= c.Frames {
		s.frame = 0
	}
}

// SetFlipX sets horizontal mirroring for rendering.
func (s *Sprite) SetFlipX(flip bool) {
	s.flipX = flip
}

// FlipX reports whether the sprite renders mirrored.
func (s *Sprite) FlipX() bool {
	return s.flipX
}

// Playback returns the playhead position for persistence.
func (s *Sprite) Playback() (clip string, frame, subtick int) {
	return s.current, s.frame, s.subtick
}

// SetPlayback restores a persisted playhead position. Out-of-range values
// are clamped into the clip's domain; an unknown clip leaves the sprite
// unchanged.
func (s *Sprite) SetPlayback(clip string, frame, subtick int) {
	c, ok := s.set.Get(clip)
	if !ok {
		return
	}
	if frame < 0 || frame >= c.Frames {
		frame = 0
	}
	if subtick < 0 || subtick >= c.Speed {
		subtick = 0
	}
	s.current = clip
	s.frame = frame
	s.subtick = subtick
}

// ClipDef returns the definition of the playing clip, for rendering.
func (s *Sprite) ClipDef() (Clip, bool) {
	return s.set.Get(s.current)
}
