package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifecast/internal/app"
	"lifecast/internal/publish"
	"lifecast/internal/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)
	if !cfg.Verbose || cfg.UI == app.UITerm {
		// The terminal front end owns the screen; log lines would tear it.
		logger.SetOutput(io.Discard)
	}

	mode, err := cfg.HandoffMode()
	if err != nil {
		log.Fatal(err)
	}
	engine, err := cfg.NewEngine()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handoff := publish.NewHandoff(mode)
	pub := publish.New(engine, handoff, publish.Options{
		Interval:       cfg.Interval,
		MaxGenerations: cfg.Generations,
		Logger:         logger,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return pub.Run(ctx) })

	switch cfg.UI {
	case app.UIGUI:
		// ebiten has to own the main goroutine.
		if err := runGUI(ctx, cfg, handoff); err != nil {
			handoff.Close()
			_ = g.Wait()
			log.Fatal(err)
		}
		handoff.Close()
	case app.UIText:
		interval := time.Second / time.Duration(cfg.PollTPS)
		printer := term.NewPrinter(os.Stdout, handoff, interval, cfg.Frames)
		g.Go(func() error { return printer.Run(ctx) })
	default:
		g.Go(func() error { return runTerminal(ctx, cfg, handoff) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	logger.Printf("stopped after %d generations (%d delivered)", pub.Computed(), pub.Delivered())
}

func runTerminal(ctx context.Context, cfg *app.Config, h *publish.Handoff) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		h.Close()
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		h.Close()
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	return term.NewDisplay(screen, h, cfg.PollTPS, cfg.Parameters).Run(ctx)
}
