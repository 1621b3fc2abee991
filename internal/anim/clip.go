// Package anim provides clip-based sprite animation playback.
//
// A clip is a named sequence of authored frames; a sprite is a playhead over
// one clip at a time. Playback is tick-based: Advance moves the playhead one
// simulation tick, and a clip's Speed says how many ticks each frame is held.
// Keeping playback deterministic in ticks (rather than wall-clock time) is
// what makes mid-sequence checks like "frame index >= 3" exact.
package anim

// Clip describes one named animation sequence.
type Clip struct {
	Name   string // Unique identifier (e.g., "GunFire")
	Frames int    // Authored frame count
	Speed  int    // Simulation ticks each frame is held
	Glyph  string // Character used by the terminal renderer
	Color  string // Hex color code (e.g., "#FFD700")
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *Clip) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '@'
	}
	return rune(c.Glyph[0])
}

// Player is the playback interface the character state machine drives.
// Handlers request clips and query progress; the dispatcher advances the
// playhead exactly once per frame after the handler runs.
type Player interface {
	// Play requests the named clip. Requesting the clip that is already
	// playing is a no-op; otherwise playback switches and rewinds.
	Play(name string)
	// IsPlaying reports whether the named clip is the one playing.
	IsPlaying(name string) bool
	// Frame returns the current frame index within the playing clip.
	Frame() int
	// WillFinish reports whether this tick's Advance moves the playhead
	// past the clip's final frame.
	WillFinish() bool
	// Advance moves the playhead one simulation tick.
	Advance()
}

// Set holds the loaded clip definitions for one sprite sheet.
type Set struct {
	clips map[string]Clip
}

// NewSet creates a set from clip definitions. Later duplicates win.
func NewSet(clips []Clip) *Set {
	m := make(map[string]Clip, len(clips))
	for _, c := range clips {
		m[c.Name] = c
	}
	return &Set{clips: m}
}

// Get returns the named clip definition.
func (s *Set) Get(name string) (Clip, bool) {
	c, ok := s.clips[name]
	return c, ok
}

// Len returns the number of clips in the set.
func (s *Set) Len() int {
	return len(s.clips)
}
