//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single upscaled RGBA image from binary cell data.
// Scaling happens on the CPU so the uploaded image is already at output
// resolution.
type GridPainter struct {
	w, h  int
	scale int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of size w*h drawn at the
// given integer scale.
func NewGridPainter(w, h, scale int) *GridPainter {
	if scale < 1 {
		scale = 1
	}
	gp := &GridPainter{w: w, h: h, scale: scale, buf: make([]byte, 4*w*scale*h*scale)}
	gp.img = ebiten.NewImage(w*scale, h*scale)
	return gp
}

// Blit rasterizes the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.RGBA) error {
	if err := FillRGBA(gp.buf, cells, gp.w, gp.h, gp.scale, on, off); err != nil {
		return err
	}
	gp.img.ReplacePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
	return nil
}

// Size returns the output dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.scale, gp.h * gp.scale }
