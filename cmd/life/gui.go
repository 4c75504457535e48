//go:build ebiten

package main

import (
	"context"
	"errors"

	"lifecast/internal/app"
	"lifecast/internal/publish"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(ctx context.Context, cfg *app.Config, h *publish.Handoff) error {
	game := app.New(ctx, cfg, h)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale+app.HUDWidth, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
