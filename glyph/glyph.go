// Package glyph holds fixed 8x8 bitmaps for the text the demo shows.
//
// A Glyph is eight column bytes in controller page order: the first byte is
// the leftmost column and bit 0 of each byte is the top row.
package glyph

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Glyph is one 8x8 symbol.
type Glyph [8]byte

// Font maps symbols to glyphs.
type Font map[rune]Glyph

// Default covers the letters of "HELLO WORLD".
var Default = Font{
	'H': {0x00, 0xff, 0xff, 0x18, 0x18, 0xff, 0xff, 0x00},
	'E': {0x00, 0xff, 0xff, 0xdb, 0xdb, 0xc3, 0xc3, 0x00},
	'L': {0x00, 0xff, 0xff, 0xc0, 0xc0, 0xc0, 0xc0, 0x00},
	'O': {0x00, 0x3c, 0x7e, 0xc3, 0xc3, 0x7e, 0x3c, 0x00},
	' ': {},
	'W': {0xff, 0x7f, 0x20, 0x30, 0x30, 0x20, 0x7f, 0xff},
	'R': {0xff, 0xff, 0x13, 0x13, 0x33, 0x7b, 0xce, 0x84},
	'D': {0xff, 0xff, 0xc3, 0xc3, 0xc3, 0xe7, 0x7e, 0x18},
}

// Render concatenates the glyphs of text. The result is a run of column
// bytes for one page.
func (f Font) Render(text string) ([]byte, error) {
	out := make([]byte, 0, len(text)*len(Glyph{}))
	for _, r := range text {
		g, ok := f[r]
		if !ok {
			return nil, fmt.Errorf("glyph: no glyph for %q", r)
		}
		out = append(out, g[:]...)
	}
	return out, nil
}

// Fonter adapts f to tinyfont. Symbols without a glyph draw as blanks.
// The returned Fonter reuses one glyph value and is not safe for concurrent
// use.
func (f Font) Fonter() tinyfont.Fonter {
	return &fonter{f: f}
}

type fonter struct {
	f Font
	g glyphDrawer
}

func (f *fonter) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.bits = f.f[r]
	return &f.g
}

func (f *fonter) GetYAdvance() uint8 { return 8 }

type glyphDrawer struct {
	r    rune
	bits Glyph
}

// Draw paints the set bits with the top row at y-7, so y is the baseline.
func (g *glyphDrawer) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for col, b := range g.bits {
		for row := 0; row < 8; row++ {
			if b&(1<<uint(row)) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-7+int16(row), c)
		}
	}
}

func (g *glyphDrawer) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    8,
		Height:   8,
		XAdvance: 8,
		XOffset:  0,
		YOffset:  -7,
	}
}
