package render

import (
	"image/color"

	"github.com/pkg/errors"
)

// Historical two-color palette of the simulator.
var (
	DefaultAlive = color.RGBA{R: 0x5e, G: 0x48, B: 0xe8, A: 0xff}
	DefaultDead  = color.RGBA{R: 0x48, G: 0xb2, B: 0xe8, A: 0xff}
)

// ErrBufferLength reports a rasterization buffer whose size does not match
// the grid dimensions it is supposed to hold.
var ErrBufferLength = errors.New("buffer length mismatch")

// FillRGBA rasterizes binary cell data into an RGBA8 pixel buffer, upscaling
// each cell to a scale x scale block of pixels. Output pixel (px, py) takes
// the color of cell (px/scale, py/scale): on for live cells, off for dead.
//
// buf must hold exactly gridW*scale * gridH*scale * 4 bytes and cells exactly
// gridW*gridH entries; a mismatch returns an error wrapping ErrBufferLength
// and leaves buf untouched.
func FillRGBA(buf []byte, cells []uint8, gridW, gridH, scale int, on, off color.RGBA) error {
	if scale < 1 {
		scale = 1
	}
	if want := gridW * gridH; len(cells) != want {
		return errors.Wrapf(ErrBufferLength, "[FillRGBA] cells: expected %d, got %d", want, len(cells))
	}
	outW := gridW * scale
	outH := gridH * scale
	if want := outW * outH * 4; len(buf) != want {
		return errors.Wrapf(ErrBufferLength, "[FillRGBA] pixel buffer: expected %d, got %d", want, len(buf))
	}

	for py := 0; py < outH; py++ {
		row := (py / scale) * gridW
		for px := 0; px < outW; px++ {
			col := off
			if cells[row+px/scale] != 0 {
				col = on
			}
			base := (py*outW + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
	return nil
}
