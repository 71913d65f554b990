package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing surface systems render onto.
type Canvas interface {
	Size() (int, int)
	Fill(c color.Color)
	FillCircle(x, y, r float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
}

// ImageCanvas draws onto an ebiten image with anti-aliased vector paths.
type ImageCanvas struct {
	Image *ebiten.Image
}

func NewImageCanvas(img *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{Image: img}
}

func (c *ImageCanvas) Size() (int, int) {
	if c == nil || c.Image == nil {
		return 0, 0
	}
	b := c.Image.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) Fill(clr color.Color) {
	if c == nil || c.Image == nil {
		return
	}
	c.Image.Fill(clr)
}

func (c *ImageCanvas) FillCircle(x, y, r float32, clr color.Color) {
	if c == nil || c.Image == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.Image, x, y, r, clr, true)
}

func (c *ImageCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	if c == nil || c.Image == nil || width <= 0 {
		return
	}
	vector.StrokeLine(c.Image, x0, y0, x1, y1, width, clr, true)
}
