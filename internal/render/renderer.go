//go:build ebiten

package render

import (
	"image/color"

	"lifecast/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws alive-cell snapshots through a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Blit uploads the alive points into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, alive []core.Point, on, off color.Color, scale int) {
	if gp.img == nil {
		return
	}
	fillAliveRGBA(gp.buf, gp.w, gp.h, alive, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
