package ssd1306

import (
	"image/color"

	"github.com/flavioheleno/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas is an off-screen frame that tinygo drawing code (such as tinyfont)
// can paint on. Display pushes it to the panel.
type Canvas struct {
	dev *Dev
	img *image1bit.VerticalLSB
}

// NewCanvas returns an empty full-panel Canvas bound to d.
func (d *Dev) NewCanvas() *Canvas {
	return &Canvas{dev: d, img: image1bit.NewVerticalLSB(d.rect)}
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	return int16(c.img.Rect.Dx()), int16(c.img.Rect.Dy())
}

// SetPixel implements drivers.Displayer. Colors are reduced with
// image1bit.BitModel.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.Set(int(x), int(y), col)
}

// Display implements drivers.Displayer.
func (c *Canvas) Display() error {
	return c.dev.DrawImage(c.img.Pix)
}

// Clear turns every pixel off without touching the panel.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Image exposes the backing image.
func (c *Canvas) Image() *image1bit.VerticalLSB {
	return c.img
}
