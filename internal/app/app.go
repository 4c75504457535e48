//go:build ebiten

package app

import (
	"context"
	"errors"
	"image/color"

	"lifecast/internal/core"
	"lifecast/internal/publish"
	"lifecast/internal/render"
	"lifecast/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generation handoff to the ebiten.Game interface. It never
// touches the simulation; it only draws the snapshots it polls.
type Game struct {
	ctx     context.Context
	cfg     *Config
	handoff *publish.Handoff
	poll    *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD

	last  publish.Snapshot
	ended bool

	onColor  color.Color
	offColor color.Color

	scale  int
	paused bool
}

// New constructs a Game reading from h. Cancelling ctx closes the window.
func New(ctx context.Context, cfg *Config, h *publish.Handoff) *Game {
	return &Game{
		ctx:      ctx,
		cfg:      cfg,
		handoff:  h,
		poll:     core.NewFixedStep(cfg.PollTPS),
		painter:  render.NewGridPainter(cfg.Width, cfg.Height),
		hud:      ui.NewHUD(HUDWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
	}
}

// Close disconnects the game from the publisher.
func (g *Game) Close() { g.handoff.Close() }

// Update handles input and polls for a new generation at the configured rate.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if g.paused || g.ended || !g.poll.ShouldStep() {
		return nil
	}
	s, ok, err := g.handoff.Poll()
	if errors.Is(err, publish.ErrProducerDone) {
		g.ended = true
		return nil
	}
	if ok {
		g.last = s
	}
	return nil
}

// Draw renders the most recent snapshot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.last.Alive, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.cfg.Width*g.scale, g.cfg.Height*g.scale, g.cfg.Parameters(g.last), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width*g.scale + HUDWidth, g.cfg.Height * g.scale
}
