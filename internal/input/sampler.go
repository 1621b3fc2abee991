package input

import "github.com/gdamore/tcell/v2"

// Sampler turns terminal key events into per-tick intents. Terminals report
// key presses but never releases, so a held key is inferred from auto-repeat:
// a movement key counts as held for holdTicks ticks after its last press.
// Shoot and reload are latched on press and consumed by the next Sample.
type Sampler struct {
	holdTicks int
	tick      int

	lastLeft   int
	lastRight  int
	lastCrouch int

	shoot  bool
	reload bool
}

// NewSampler creates a sampler with the given hold window in ticks.
func NewSampler(holdTicks int) *Sampler {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Sampler{
		holdTicks:  holdTicks,
		lastLeft:   -holdTicks,
		lastRight:  -holdTicks,
		lastCrouch: -holdTicks,
	}
}

// HandleKey records one key event.
// Movement: arrows or a/d. Crouch: c. Shoot: space. Reload: r.
func (s *Sampler) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		s.lastLeft = s.tick
	case tcell.KeyRight:
		s.lastRight = s.tick
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			s.lastLeft = s.tick
		case 'd', 'D':
			s.lastRight = s.tick
		case 'c', 'C':
			s.lastCrouch = s.tick
		case ' ':
			s.shoot = true
		case 'r', 'R':
			s.reload = true
		}
	}
}

// Sample returns this tick's intents and advances the sampler's clock.
// Edge triggers read true exactly once per press.
func (s *Sampler) Sample() Intents {
	in := Intents{
		Left:   s.tick-s.lastLeft < s.holdTicks,
		Right:  s.tick-s.lastRight < s.holdTicks,
		Crouch: s.tick-s.lastCrouch < s.holdTicks,
		Shoot:  s.shoot,
		Reload: s.reload,
	}
	s.shoot = false
	s.reload = false
	s.tick++
	return in
}
