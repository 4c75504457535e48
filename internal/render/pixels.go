package render

import (
	"image/color"

	"lifecast/pkg/core"
)

// fillAliveRGBA paints a w*h RGBA buffer: every pixel gets off, then each
// alive point inside the grid gets on.
func fillAliveRGBA(buf []byte, w, h int, alive []core.Point, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
	for _, p := range alive {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		base := (p.Y*w + p.X) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}
