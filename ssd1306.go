package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/flavioheleno/ssd1306/image1bit"
	"github.com/flavioheleno/ssd1306/internal/syncutil"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
)

var _ display.Drawer = (*Dev)(nil)

// Bus is the byte-level transport the driver frames its transactions on.
// *bitbang.Bus implements it.
//
// If the Bus also implements sync.Locker, the driver holds that lock for
// every frame it sends, so other users of the same Bus cannot interleave.
type Bus interface {
	Start() error
	Stop() error
	WriteByte(b byte) error
}

// Opts is the configuration for the SSD1306 driver.
type Opts struct {
	// Addressing selects the RAM addressing mode. The zero value means
	// Horizontal, which is also the only supported mode.
	Addressing Addressing
	// Logger receives debug output for each frame. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	bus  Bus
	lock sync.Locker

	mode Addressing
	log  zerolog.Logger
	rect image.Rectangle

	// next is lazily allocated by Draw on the slow path.
	next *image1bit.VerticalLSB
}

// New returns a driver for the controller reachable through bus.
//
// It does not talk to the controller; call Initialize once the panel has had
// time to power up.
func New(bus Bus, opts *Opts) (*Dev, error) {
	if bus == nil {
		return nil, errors.New("ssd1306: nil bus")
	}
	if opts == nil {
		opts = &Opts{}
	}
	mode := opts.Addressing
	if mode == (Addressing{}) {
		mode = Horizontal
	}
	if mode != Horizontal {
		return nil, fmt.Errorf("ssd1306: unsupported addressing mode %s", mode)
	}

	d := &Dev{
		bus:  bus,
		mode: mode,
		log:  zerolog.Nop(),
		rect: image.Rect(0, 0, Width, Height),
	}
	if opts.Logger != nil {
		d.log = *opts.Logger
	}
	if l, ok := bus.(sync.Locker); ok {
		d.lock = l
	} else {
		d.lock = &syncutil.Mutex{}
	}
	return d, nil
}

// BeginCommandFrame opens a transaction whose following bytes are commands.
//
// The frame primitives do not take the bus lock. A caller composing its own
// frames must not share the Dev with other goroutines meanwhile.
func (d *Dev) BeginCommandFrame() error {
	return d.begin(ControlCommand)
}

// BeginDataFrame opens a transaction whose following bytes are pixel data.
func (d *Dev) BeginDataFrame() error {
	return d.begin(ControlData)
}

// WriteFrameByte sends one command or data byte in the open frame.
func (d *Dev) WriteFrameByte(b byte) error {
	return d.bus.WriteByte(b)
}

// EndFrame closes the open frame.
func (d *Dev) EndFrame() error {
	return d.bus.Stop()
}

func (d *Dev) begin(control byte) error {
	if err := d.bus.Start(); err != nil {
		return err
	}
	if err := d.bus.WriteByte(Address); err != nil {
		return err
	}
	return d.bus.WriteByte(control)
}

// Initialize sends the bring-up command sequence in a single command frame.
func (d *Dev) Initialize() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.log.Debug().Stringer("addressing", d.mode).Msg("ssd1306: initialize")
	return d.frameLocked(ControlCommand, initSequence(d.mode.mode))
}

// SetWindow selects the addressing window from column and page to the end of
// the panel. column is masked to 7 bits and page to 3 bits.
func (d *Dev) SetWindow(column, page byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.windowLocked(column, page)
}

// ClearScreen writes ClearExtent zero bytes from the origin.
func (d *Dev) ClearScreen() error {
	return d.DrawImage(make([]byte, ClearExtent))
}

// DrawImage writes pix from the origin: one byte per 8-pixel vertical strip,
// left to right, then page by page.
//
// The length of pix is not checked. Short input leaves the rest of the panel
// untouched; long input wraps around as the controller's pointer does.
func (d *Dev) DrawImage(pix []byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.drawLocked(pix)
}

// Write writes a full frame of pixels in the image1bit.VerticalLSB layout.
// Unlike DrawImage it requires exactly Width*Pages bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if want := Width * Pages; len(pixels) != want {
		return 0, fmt.Errorf("ssd1306: invalid pixel stream length; expected %d bytes, got %d bytes", want, len(pixels))
	}
	if err := d.DrawImage(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw implements display.Drawer.
//
// It draws synchronously, once this function returns, the display is updated.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}

	d.lock.Lock()
	defer d.lock.Unlock()

	// Fast path: full frame already in controller layout.
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp == (image.Point{}) {
		return d.drawLocked(img.Pix)
	}
	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(d.rect)
	}
	draw.Src.Draw(d.next, r, src, sp)
	return d.drawLocked(d.next.Pix)
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	return d.command(cmdContrast, level)
}

// Invert switches between white on black and black on white.
func (d *Dev) Invert(blackOnWhite bool) error {
	if blackOnWhite {
		return d.command(cmdInvertDisplay)
	}
	return d.command(cmdNormalDisplay)
}

// Halt turns the display off. Initialize turns it back on.
func (d *Dev) Halt() error {
	return d.command(cmdDisplayOff)
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%v, %s}", d.bus, d.rect.Max)
}

func (d *Dev) command(cmds ...byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.frameLocked(ControlCommand, cmds)
}

func (d *Dev) windowLocked(column, page byte) error {
	d.log.Debug().Uint8("column", column).Uint8("page", page).Msg("ssd1306: set window")
	return d.frameLocked(ControlCommand, d.mode.Window(column, page))
}

func (d *Dev) drawLocked(pix []byte) error {
	if err := d.windowLocked(0, 0); err != nil {
		return err
	}
	d.log.Debug().Int("bytes", len(pix)).Msg("ssd1306: data frame")
	return d.frameLocked(ControlData, pix)
}

// frameLocked sends one complete frame. The stop condition is sent even when
// a write fails so the bus returns to idle.
func (d *Dev) frameLocked(control byte, payload []byte) error {
	err := d.begin(control)
	for i := 0; err == nil && i < len(payload); i++ {
		err = d.bus.WriteByte(payload[i])
	}
	if stopErr := d.EndFrame(); err == nil {
		err = stopErr
	}
	if err != nil {
		return fmt.Errorf("ssd1306: frame 0x%02X: %w", control, err)
	}
	return nil
}
