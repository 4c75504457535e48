// Package publish runs a simulation in its own goroutine and hands each
// generation's alive cells to a single consumer.
package publish

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"lifecast/pkg/core"
)

var (
	// ErrConsumerGone is returned to the producer once the consumer has
	// disconnected. It is terminal.
	ErrConsumerGone = errors.New("consumer disconnected")
	// ErrProducerDone is returned to the consumer once the producer has
	// stopped publishing. It is terminal.
	ErrProducerDone = errors.New("producer finished")
)

// Mode selects the backpressure policy of a Handoff.
type Mode int

const (
	// Rendezvous blocks the producer until the consumer takes each generation.
	Rendezvous Mode = iota
	// LatestOnly never blocks the producer; an unconsumed generation is
	// replaced by the newer one.
	LatestOnly
)

func (m Mode) String() string {
	switch m {
	case Rendezvous:
		return "rendezvous"
	case LatestOnly:
		return "latest-only"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rendezvous", "sync":
		return Rendezvous, nil
	case "latest-only", "latest":
		return LatestOnly, nil
	}
	return 0, fmt.Errorf("unknown handoff mode %q (want rendezvous or latest-only)", s)
}

// Snapshot is the alive set of one generation. Alive is in row-major order and
// is never modified after publication.
type Snapshot struct {
	Generation uint64
	Size       core.Size
	Alive      []core.Point
}

// Handoff is a slot of capacity zero or one between one producer and one
// consumer.
type Handoff struct {
	mode Mode
	ch   chan Snapshot

	done      chan struct{}
	closeOnce sync.Once
	sendOnce  sync.Once
}

// NewHandoff creates a handoff using the given mode.
func NewHandoff(mode Mode) *Handoff {
	capacity := 0
	if mode == LatestOnly {
		capacity = 1
	}
	return &Handoff{
		mode: mode,
		ch:   make(chan Snapshot, capacity),
		done: make(chan struct{}),
	}
}

// Mode returns the handoff's backpressure policy.
func (h *Handoff) Mode() Mode { return h.mode }

// Offer hands s to the consumer. In Rendezvous mode it blocks until the
// consumer takes it; in LatestOnly mode it returns immediately, discarding any
// snapshot the consumer has not picked up yet.
func (h *Handoff) Offer(ctx context.Context, s Snapshot) error {
	select {
	case <-h.done:
		return ErrConsumerGone
	default:
	}

	if h.mode == LatestOnly {
		select {
		case h.ch <- s:
			return nil
		default:
		}
		// Slot still holds an older generation. Only this goroutine sends, so
		// after the drain the second send cannot block.
		select {
		case <-h.ch:
		default:
		}
		h.ch <- s
		return nil
	}

	select {
	case h.ch <- s:
		return nil
	case <-h.done:
		return ErrConsumerGone
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Poll returns the pending snapshot without blocking. ok is false when nothing
// new is available; err is ErrProducerDone once the producer has finished.
func (h *Handoff) Poll() (s Snapshot, ok bool, err error) {
	select {
	case snap, open := <-h.ch:
		if !open {
			return Snapshot{}, false, ErrProducerDone
		}
		return snap, true, nil
	default:
		return Snapshot{}, false, nil
	}
}

// Receive blocks until a snapshot is available, the producer finishes or ctx
// ends.
func (h *Handoff) Receive(ctx context.Context) (Snapshot, error) {
	select {
	case s, open := <-h.ch:
		if !open {
			return Snapshot{}, ErrProducerDone
		}
		return s, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Close disconnects the consumer. The producer observes ErrConsumerGone on its
// next Offer. Close is idempotent.
func (h *Handoff) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Done is closed once the consumer disconnects.
func (h *Handoff) Done() <-chan struct{} { return h.done }

// finish closes the producer side.
func (h *Handoff) finish() {
	h.sendOnce.Do(func() { close(h.ch) })
}
