package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pusewicz/tacticaltwo-game/internal/player"
	"github.com/pusewicz/tacticaltwo-game/internal/world"
)

// unitsPerCell converts world units to terminal columns.
const unitsPerCell = 10.0

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the world and a status line to the screen.
func (r *Renderer) Render(w *world.World, statusMsg string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	groundY := height - 3
	if groundY < 1 {
		groundY = 1
	}

	// Ground line
	groundStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, groundY, '=', groundStyle)
	}

	for _, c := range w.Characters {
		r.drawCharacter(c, width, groundY)
	}

	r.drawStatus(w, statusMsg, width, height)

	r.screen.Show()
}

// drawCharacter draws one character standing on the ground line, with its
// clip's glyph and color, lowered one row while crouched.
func (r *Renderer) drawCharacter(c *world.Character, width, groundY int) {
	col := width/2 + int(c.X/unitsPerCell)
	if col < 0 || col >= width {
		return
	}

	y := groundY - 2
	clip, ok := c.Sprite.ClipDef()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	glyph := '@'
	if ok {
		glyph = clip.GlyphRune()
		if color, err := ParseHexColor(clip.Color); err == nil {
			style = tcell.StyleDefault.Foreground(color).Bold(true)
		}
	}
	if crouched(c) {
		y = groundY - 1
	}

	// Facing indicator next to the body.
	arrow, arrowCol := '>', col+1
	if c.Sprite.FlipX() {
		arrow, arrowCol = '<', col-1
	}

	r.screen.SetContent(col, y, glyph, style)
	if arrowCol >= 0 && arrowCol < width {
		r.screen.SetContent(arrowCol, y, arrow, style.Bold(false))
	}
}

func crouched(c *world.Character) bool {
	switch c.Machine.State() {
	case player.StateCrouching, player.StateCrouchWalking, player.StateCrouchFiring:
		return true
	}
	return false
}

// drawStatus draws the state readout and key help at the bottom.
func (r *Renderer) drawStatus(w *world.World, statusMsg string, width, height int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	clip, frame, _ := w.Player.Sprite.Playback()
	rec := w.Player.Machine.Record()
	status := fmt.Sprintf("state:%s  clip:%s#%d  t:%.2f  %s",
		rec.Current, clip, frame, rec.Elapsed, statusMsg)
	r.drawText(0, height-2, status, style, width)

	help := "a/d move  c crouch  space shoot  r reload  F5 save  F9 load  q quit"
	r.drawText(0, height-1, help, style, width)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style, width int) {
	for i, ch := range text {
		if x+i >= width {
			return
		}
		r.screen.SetContent(x+i, y, ch, style)
	}
}
