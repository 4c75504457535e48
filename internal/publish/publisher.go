package publish

import (
	"context"
	"errors"
	"io"
	"log"
	"sync/atomic"
	"time"

	"lifecast/pkg/core"
)

// Options tunes a Publisher.
type Options struct {
	// Interval is the minimum time between two steps. Zero runs as fast as
	// the handoff allows.
	Interval time.Duration
	// MaxGenerations stops the publisher after that many steps. Zero means
	// no limit.
	MaxGenerations uint64
	// Logger receives lifecycle messages. Nil discards them.
	Logger *log.Logger
}

// Publisher owns a simulation and publishes every generation it computes.
type Publisher struct {
	sim     core.Sim
	handoff *Handoff
	opts    Options
	logger  *log.Logger

	computed  atomic.Uint64
	delivered atomic.Uint64
}

// New creates a publisher. The simulation must not be touched by anyone else
// once Run starts.
func New(sim core.Sim, h *Handoff, opts Options) *Publisher {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Publisher{sim: sim, handoff: h, opts: opts, logger: logger}
}

// Computed returns the number of generations stepped so far.
func (p *Publisher) Computed() uint64 { return p.computed.Load() }

// Delivered returns the number of generations accepted by the handoff.
func (p *Publisher) Delivered() uint64 { return p.delivered.Load() }

// Run steps the simulation and offers each generation until the consumer
// disconnects, MaxGenerations is reached or ctx ends. A disconnected consumer
// or the generation limit is a clean stop and yields nil; cancellation yields
// ctx.Err(). The producer side of the handoff is closed on return.
func (p *Publisher) Run(ctx context.Context) error {
	defer p.handoff.finish()

	var ticker *time.Ticker
	if p.opts.Interval > 0 {
		ticker = time.NewTicker(p.opts.Interval)
		defer ticker.Stop()
	}

	size := p.sim.Size()
	p.logger.Printf("publishing %s %dx%d in %s mode", p.sim.Name(), size.W, size.H, p.handoff.Mode())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.opts.MaxGenerations > 0 && p.computed.Load() >= p.opts.MaxGenerations {
			p.logger.Printf("reached %d generations", p.opts.MaxGenerations)
			return nil
		}

		p.sim.Step()
		p.computed.Add(1)

		snap := Snapshot{
			Generation: p.sim.Generation(),
			Size:       size,
			Alive:      p.sim.Alive(),
		}
		err := p.handoff.Offer(ctx, snap)
		switch {
		case errors.Is(err, ErrConsumerGone):
			p.logger.Printf("consumer gone after generation %d, stopping", snap.Generation)
			return nil
		case err != nil:
			return err
		}
		p.delivered.Add(1)

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-p.handoff.Done():
				p.logger.Printf("consumer gone after generation %d, stopping", snap.Generation)
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
