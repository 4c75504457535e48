// Package term renders published generations to a terminal.
package term

import (
	"context"
	"errors"
	"time"

	"lifecast/internal/core"
	"lifecast/internal/publish"

	"github.com/gdamore/tcell/v2"
)

// StatusFunc builds the status line shown under the grid.
type StatusFunc func(publish.Snapshot) core.ParameterSnapshot

// Display draws the latest snapshot on a tcell screen, two columns per cell.
type Display struct {
	screen  tcell.Screen
	handoff *publish.Handoff
	poll    *core.FixedStep
	status  StatusFunc

	frame  time.Duration
	last   publish.Snapshot
	paused bool
	ended  bool

	alive tcell.Style
	dead  tcell.Style
	text  tcell.Style
}

// NewDisplay creates a display that polls h pollTPS times per second. The
// caller owns screen and must have initialised it.
func NewDisplay(screen tcell.Screen, h *publish.Handoff, pollTPS int, status StatusFunc) *Display {
	return &Display{
		screen:  screen,
		handoff: h,
		poll:    core.NewFixedStep(pollTPS),
		status:  status,
		frame:   time.Second / 60,
		alive:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		dead:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		text:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	}
}

// Run renders until the user quits or ctx ends. Quitting disconnects the
// handoff so the publisher stops too. When the publisher finishes first, the
// last generation stays on screen until the user quits.
func (d *Display) Run(ctx context.Context) error {
	defer d.handoff.Close()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go d.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(d.frame)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || d.handle(ev) {
				return nil
			}
			d.draw()
		case <-ticker.C:
			if d.Tick() {
				d.draw()
			}
		}
	}
}

// Tick polls the handoff when the poll cadence allows and reports whether a
// new snapshot arrived.
func (d *Display) Tick() bool {
	if d.paused || d.ended || !d.poll.ShouldStep() {
		return false
	}
	s, ok, err := d.handoff.Poll()
	if errors.Is(err, publish.ErrProducerDone) {
		d.ended = true
		return true
	}
	if !ok {
		return false
	}
	d.last = s
	return true
}

// Last returns the snapshot currently on screen.
func (d *Display) Last() publish.Snapshot { return d.last }

func (d *Display) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true
		case ev.Rune() == ' ':
			d.paused = !d.paused
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

func (d *Display) draw() {
	d.Draw()
	d.screen.Show()
}

// Draw paints the current snapshot and status line into the screen buffer.
func (d *Display) Draw() {
	d.screen.Clear()
	sw, sh := d.screen.Size()
	rows := sh - 1
	size := d.last.Size

	for y := 0; y < size.H && y < rows; y++ {
		for x := 0; x < size.W && 2*x+1 < sw; x++ {
			d.screen.SetContent(2*x, y, ' ', nil, d.dead)
			d.screen.SetContent(2*x+1, y, ' ', nil, d.dead)
		}
	}
	for _, p := range d.last.Alive {
		if p.Y >= rows || 2*p.X+1 >= sw {
			continue
		}
		d.screen.SetContent(2*p.X, p.Y, '█', nil, d.alive)
		d.screen.SetContent(2*p.X+1, p.Y, '█', nil, d.alive)
	}

	if sh > 0 && d.status != nil {
		line := d.status(d.last).Line()
		if d.paused {
			line += "  [paused]"
		}
		if d.ended {
			line += "  [finished]"
		}
		drawText(d.screen, 0, sh-1, sw, line, d.text)
	}
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
