package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"lifecast/internal/publish"
	"lifecast/pkg/life"
)

// Printer writes each polled generation as a text dump.
type Printer struct {
	w        io.Writer
	handoff  *publish.Handoff
	interval time.Duration
	frames   int
}

// NewPrinter creates a printer that checks h every interval and stops after
// frames dumps. frames <= 0 means no limit.
func NewPrinter(w io.Writer, h *publish.Handoff, interval time.Duration, frames int) *Printer {
	if interval <= 0 {
		interval = 40 * time.Millisecond
	}
	return &Printer{w: w, handoff: h, interval: interval, frames: frames}
}

// Run prints until the frame limit, the end of the publisher or ctx.
// Returning always disconnects the handoff.
func (p *Printer) Run(ctx context.Context) error {
	defer p.handoff.Close()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	printed := 0
	for p.frames <= 0 || printed < p.frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		s, ok, err := p.handoff.Poll()
		if errors.Is(err, publish.ErrProducerDone) {
			return nil
		}
		if !ok {
			continue
		}
		if err := p.print(s); err != nil {
			return err
		}
		printed++
	}
	return nil
}

func (p *Printer) print(s publish.Snapshot) error {
	if _, err := fmt.Fprintf(p.w, "generation %d, %d alive\n", s.Generation, len(s.Alive)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := io.WriteString(p.w, life.FormatText(s.Size, s.Alive)); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	return nil
}
