//go:build !ebiten

package main

import (
	"context"
	"errors"

	"lifecast/internal/app"
	"lifecast/internal/publish"
)

func runGUI(context.Context, *app.Config, *publish.Handoff) error {
	return errors.New("the gui front end requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/life` or use -ui term")
}
