// Package ssd1306 controls a 128x64 SSD1306 OLED display over a two-wire bus
// driven by two plain GPIO lines.
//
// The driver frames commands and pixel data on top of any Bus that can send
// a start condition, a byte and a stop condition; package bitbang provides
// one that toggles the lines directly. No read-back happens: acknowledgements
// are clocked but not checked unless the bus is configured to sample them.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → GPIO (clock line)
//	SDA         → GPIO (data line)
//
// Both lines need pull-ups, which most breakout boards carry.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"time"
//
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/bitbang"
//		"github.com/flavioheleno/ssd1306/glyph"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus := bitbang.New(
//			bitbang.NewPinLine(gpioreg.ByName("GPIO3")),
//			bitbang.NewPinLine(gpioreg.ByName("GPIO2")),
//			nil,
//		)
//		dev, _ := ssd1306.New(bus, nil)
//
//		time.Sleep(40 * time.Millisecond)
//		dev.Initialize()
//
//		text, _ := glyph.Default.Render("HELLO WORLD")
//		dev.ClearScreen()
//		dev.DrawImage(text)
//	}
//
// # Frames
//
// Every transaction starts with the address byte 0x78 followed by a control
// byte: 0x00 for commands, 0x40 for pixel data. The frame primitives
// (BeginCommandFrame, BeginDataFrame, WriteFrameByte, EndFrame) expose this
// directly; the other methods build on them.
//
// # Addressing
//
// The controller runs in horizontal addressing mode. SetWindow picks a start
// column and page; the window always extends to the last column (127) and
// last page (7). DrawImage and ClearScreen select the origin before every
// burst.
//
// # Scrolling
//
// ScrollHorizontal moves a band of pages continuously left or right in the
// controller itself; StopScroll ends it. Redraw after stopping.
//
// # Pixel Layout
//
// Each data byte is 8 vertically stacked pixels, least significant bit on
// top. Bytes run left to right across a page, then continue on the next page.
// image1bit.VerticalLSB stores pixels in exactly this order, so Draw has a
// fast path for it.
//
// # Drawing With tinyfont
//
// NewCanvas returns a drivers.Displayer that tinyfont and other TinyGo
// drawing code can paint on; Canvas.Display sends it:
//
//	c := dev.NewCanvas()
//	tinyfont.WriteLine(c, glyph.Default.Fonter(), 0, 7, "HELLO", color.RGBA{R: 255, G: 255, B: 255, A: 255})
//	c.Display()
//
// # Timing
//
// The bit-banged bus pauses only when bitbang.Opts.Delay (or SetSpeed) asks
// for it. With no delay the bit rate is whatever the host manages, which may
// exceed 400kHz on fast hosts.
//
// # Compatibility with periph.io and TinyGo
//
// Dev implements display.Drawer from periph.io. bitbang.Bus implements
// i2c.Bus from periph.io and drivers.I2C from TinyGo, so other drivers can
// use it as well.
package ssd1306
