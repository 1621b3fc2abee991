// Package game provides the main game loop.
package game

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pusewicz/tacticaltwo-game/data"
	"github.com/pusewicz/tacticaltwo-game/internal/anim"
	"github.com/pusewicz/tacticaltwo-game/internal/input"
	"github.com/pusewicz/tacticaltwo-game/internal/save"
	"github.com/pusewicz/tacticaltwo-game/internal/telemetry"
	"github.com/pusewicz/tacticaltwo-game/internal/ui"
	"github.com/pusewicz/tacticaltwo-game/internal/world"
)

// saveSlot is the single quicksave slot used by the F5/F9 hotkeys.
const saveSlot = 0

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *world.World
	sampler  *input.Sampler
	store    *save.Store
	running  bool
	status   string
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	clips, err := anim.LoadSet(data.MustClips())
	if err != nil {
		return nil, err
	}

	store, err := save.Open(cfg.SavePath)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		world:    world.New(clips, cfg.WalkSpeed),
		sampler:  input.NewSampler(cfg.HoldTicks),
		store:    store,
		running:  true,
	}, nil
}

// Run executes the main game loop at the configured tick rate.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("tick_rate", g.cfg.TickRate),
		attribute.Int("clips", g.world.Clips.Len()),
		attribute.String("save_path", g.cfg.SavePath),
	)
	initSpan.End()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	dt := float32(1.0 / float64(g.cfg.TickRate))

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)

		case <-ticker.C:
			in := g.sampler.Sample()
			g.world.Step(dt, in)
			g.renderer.Render(g.world, g.status)
		}
	}

	g.screen.Close()
	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Game-level hotkeys are consumed
// here; everything else feeds the intent sampler.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyF5:
		g.saveGame(ctx)
		return
	case tcell.KeyF9:
		g.loadGame(ctx)
		return
	case tcell.KeyF2:
		g.forceReset(ctx)
		return
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			g.running = false
			return
		}
	}

	g.sampler.HandleKey(ev)
}

// saveGame snapshots the player into the quicksave slot. The snapshot pairs
// the state record with the clip player position so a mid-sequence save
// resumes at the exact frame it left.
func (g *Game) saveGame(ctx context.Context) {
	tracer := telemetry.Tracer("save")
	ctx, span := tracer.Start(ctx, "save.write")
	defer span.End()

	p := g.world.Player
	clip, frame, subtick := p.Sprite.Playback()
	snap := save.Snapshot{
		Record:  p.Machine.Record(),
		Clip:    clip,
		Frame:   frame,
		Subtick: subtick,
		FacingX: p.FacingX,
		X:       p.X,
		Y:       p.Y,
	}

	if err := g.store.Save(ctx, saveSlot, snap); err != nil {
		span.RecordError(err)
		g.status = "save failed"
		return
	}
	span.SetAttributes(attribute.String("state", snap.Record.Current.String()))
	g.status = "saved"
}

// loadGame restores the player from the quicksave slot, reconciling the
// clip player and transform with the loaded record.
func (g *Game) loadGame(ctx context.Context) {
	tracer := telemetry.Tracer("save")
	ctx, span := tracer.Start(ctx, "save.read")
	defer span.End()

	snap, err := g.store.Load(ctx, saveSlot)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, save.ErrNotFound) {
			g.status = "no save"
		} else {
			g.status = "load failed"
		}
		return
	}

	p := g.world.Player
	p.Machine.Restore(snap.Record)
	p.Sprite.SetPlayback(snap.Clip, snap.Frame, snap.Subtick)
	p.Sprite.SetFlipX(snap.FacingX < 0)
	p.FacingX = snap.FacingX
	p.X, p.Y = snap.X, snap.Y
	p.VelX = 0

	span.SetAttributes(attribute.String("state", snap.Record.Current.String()))
	g.status = "loaded"
}

// forceReset rewinds the player's active handler to its top. This is the
// recovery hatch for a resumption point that no longer matches the running
// code; the whole sequence restarts.
func (g *Game) forceReset(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.force_reset")
	span.SetAttributes(attribute.String("state", g.world.Player.Machine.State().String()))
	span.End()

	g.world.Player.Machine.ForceReset()
	g.status = "reset"
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
	if g.store != nil {
		_ = g.store.Close()
	}
}
