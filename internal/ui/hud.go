//go:build ebiten

package ui

import (
	"image/color"

	"lifecast/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders the status panel to the right of the grid.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD for the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, s core.ParameterSnapshot, paused bool) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	for _, l := range layoutLines(s, paused, height) {
		if l.header {
			text.Draw(h.panel, l.label, face, panelPadding, l.y, headerColor)
			continue
		}
		text.Draw(h.panel, l.label, face, panelPadding, l.y, labelColor)
		bounds := text.BoundString(face, l.value)
		text.Draw(h.panel, l.value, face, h.width-panelPadding-bounds.Dx(), l.y, valueColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
