// Package input captures player intentions from the terminal.
package input

// Intents holds one frame's worth of player intent. Movement flags carry
// held state; Shoot and Reload are edge triggers, true only on the frame
// the action begins.
type Intents struct {
	Left   bool
	Right  bool
	Crouch bool

	Shoot  bool
	Reload bool
}

// Moving reports whether any horizontal movement is intended.
func (i Intents) Moving() bool {
	return i.Left || i.Right
}
