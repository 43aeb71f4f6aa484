// Package bitbang implements a two-wire (I²C style) bus master by toggling
// two GPIO lines directly.
//
// The master only transmits. Every byte is followed by one clock pulse for
// the acknowledgement slot, which is driven but not sampled unless
// Opts.SampleAck is set. There is no clock stretching, arbitration or retry.
//
// Bit timing comes from execution latency alone unless Opts.Delay (or
// SetSpeed) adds a pause after each line toggle.
package bitbang

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/flavioheleno/ssd1306/internal/syncutil"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio"
)

var (
	// ErrReadUnsupported is returned by every receive path.
	ErrReadUnsupported = errors.New("bitbang: reading from the bus is not supported")
	// ErrNack is returned by WriteByte when Opts.SampleAck is set and the
	// receiver left SDA high during the acknowledgement slot.
	ErrNack = errors.New("bitbang: no acknowledgement")
)

// Opts is the configuration for a Bus.
type Opts struct {
	// Delay is paused after every line toggle. Zero issues no pause at all.
	Delay time.Duration
	// Clock provides the pause. Defaults to the real clock.
	Clock clockwork.Clock
	// SampleAck releases SDA during the acknowledgement slot and reports
	// ErrNack when the receiver does not pull it low.
	SampleAck bool
}

// Bus drives the clock (SCL) and data (SDA) lines.
//
// Start, Stop and WriteByte do not lock: a transaction is only valid if
// nothing else touches the lines between its Start and its Stop. Callers
// sharing a Bus between goroutines hold Lock for the whole transaction, as
// Tx does.
type Bus struct {
	syncutil.Mutex

	scl, sda  Line
	delay     atomic.Int64 // time.Duration
	clock     clockwork.Clock
	sampleAck bool
}

// New returns a Bus over the given lines. opts can be nil.
func New(scl, sda Line, opts *Opts) *Bus {
	if opts == nil {
		opts = &Opts{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	b := &Bus{
		scl:       scl,
		sda:       sda,
		clock:     clock,
		sampleAck: opts.SampleAck,
	}
	b.delay.Store(int64(opts.Delay))
	return b
}

// Start emits a start condition: SDA falls while SCL is high.
func (b *Bus) Start() error {
	if err := b.outputs(); err != nil {
		return err
	}
	if err := b.toggle(b.scl, gpio.High); err != nil {
		return err
	}
	if err := b.toggle(b.sda, gpio.High); err != nil {
		return err
	}
	if err := b.toggle(b.sda, gpio.Low); err != nil {
		return err
	}
	return b.toggle(b.scl, gpio.Low)
}

// Stop emits a stop condition: SDA rises while SCL is high. The bus is idle
// afterwards with both lines high.
func (b *Bus) Stop() error {
	if err := b.outputs(); err != nil {
		return err
	}
	if err := b.toggle(b.scl, gpio.Low); err != nil {
		return err
	}
	if err := b.toggle(b.sda, gpio.Low); err != nil {
		return err
	}
	if err := b.toggle(b.scl, gpio.High); err != nil {
		return err
	}
	return b.toggle(b.sda, gpio.High)
}

// WriteByte transmits v most significant bit first, then clocks the
// acknowledgement slot.
func (b *Bus) WriteByte(v byte) error {
	if err := b.sda.SetDirection(Output); err != nil {
		return err
	}
	for i := 7; i >= 0; i-- {
		if err := b.toggle(b.sda, gpio.Level(v&(1<<uint(i)) != 0)); err != nil {
			return err
		}
		if err := b.pulse(); err != nil {
			return err
		}
	}
	if b.sampleAck {
		return b.readAck()
	}
	if err := b.toggle(b.sda, gpio.High); err != nil {
		return err
	}
	return b.pulse()
}

// ReadByte is not implemented; the engine is transmit only.
func (b *Bus) ReadByte() (byte, error) {
	return 0, ErrReadUnsupported
}

func (b *Bus) String() string {
	return fmt.Sprintf("bitbang.Bus{%s, %s}", b.scl, b.sda)
}

// readAck releases SDA for the acknowledgement slot and samples it while
// SCL is high.
func (b *Bus) readAck() error {
	if err := b.sda.SetDirection(Input); err != nil {
		return err
	}
	if err := b.toggle(b.scl, gpio.High); err != nil {
		return err
	}
	ack := b.sda.Read()
	if err := b.toggle(b.scl, gpio.Low); err != nil {
		return err
	}
	if err := b.sda.SetDirection(Output); err != nil {
		return err
	}
	if ack == gpio.High {
		return ErrNack
	}
	return nil
}

// outputs configures both lines as outputs.
func (b *Bus) outputs() error {
	if err := b.scl.SetDirection(Output); err != nil {
		return err
	}
	return b.sda.SetDirection(Output)
}

// pulse drives SCL high then low.
func (b *Bus) pulse() error {
	if err := b.toggle(b.scl, gpio.High); err != nil {
		return err
	}
	return b.toggle(b.scl, gpio.Low)
}

func (b *Bus) toggle(l Line, level gpio.Level) error {
	if err := l.Out(level); err != nil {
		return err
	}
	if d := time.Duration(b.delay.Load()); d > 0 {
		b.clock.Sleep(d)
	}
	return nil
}
