package bitbang_test

import (
	"testing"
	"time"

	"github.com/flavioheleno/ssd1306/bitbang"
	"github.com/flavioheleno/ssd1306/gpiotrace"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

func TestTx(t *testing.T) {
	b, r := newBus(nil)
	require.NoError(t, b.Tx(0x3C, []byte{0x00, 0xAF}, nil))

	frames := r.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0x78, 0x00, 0xAF}, frames[0].Bytes)
	assert.True(t, frames[0].Closed)
}

func TestTxThroughPeriphDev(t *testing.T) {
	b, r := newBus(nil)
	d := &i2c.Dev{Bus: b, Addr: 0x3C}
	require.NoError(t, d.Tx([]byte{0x40, 0xFF}, nil))

	frames := r.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0x78, 0x40, 0xFF}, frames[0].Bytes)
}

func TestTxRejects(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
		r    []byte
	}{
		{"read buffer", 0x3C, make([]byte, 1)},
		{"10-bit address", 0x3FF, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, r := newBus(nil)
			assert.Error(t, b.Tx(tt.addr, []byte{0x00}, tt.r))
			assert.Empty(t, r.Events, "nothing may reach the lines")
		})
	}
}

func TestTxStopsAfterFailure(t *testing.T) {
	r := gpiotrace.NewRecorder()
	b := bitbang.New(r.SCL(), r.SDA(), &bitbang.Opts{SampleAck: true})
	r.ReadLevel = gpio.High

	err := b.Tx(0x3C, []byte{0x00, 0xAF}, nil)
	require.ErrorIs(t, err, bitbang.ErrNack)

	frames := r.Frames()
	require.Len(t, frames, 1)
	assert.True(t, frames[0].Closed, "bus must be released")
	assert.Equal(t, []byte{0x78}, frames[0].Bytes, "writes stop at the first nack")
}

func TestWriteRegister(t *testing.T) {
	b, r := newBus(nil)
	require.NoError(t, b.WriteRegister(0x3C, 0x40, []byte{0x01, 0x02}))

	frames := r.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0x78, 0x40, 0x01, 0x02}, frames[0].Bytes)
}

func TestReadRegisterUnsupported(t *testing.T) {
	b, _ := newBus(nil)
	assert.ErrorIs(t, b.ReadRegister(0x3C, 0x00, make([]byte, 1)), bitbang.ErrReadUnsupported)
}

func TestSetSpeed(t *testing.T) {
	clk := &sleepCounter{Clock: clockwork.NewFakeClock()}
	b, _ := newBus(&bitbang.Opts{Clock: clk})

	assert.Error(t, b.SetSpeed(0))
	require.NoError(t, b.SetSpeed(100*physic.KiloHertz))

	require.NoError(t, b.WriteByte(0x00))
	assert.Equal(t, 27, clk.n)
	// 10µs per bit at 100kHz.
	assert.Equal(t, 27*(10*time.Microsecond/3), clk.total)
}

func TestSetSpeedDuringTransaction(t *testing.T) {
	clk := &sleepCounter{Clock: clockwork.NewFakeClock()}
	b, r := newBus(&bitbang.Opts{Clock: clk})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 100; i++ {
			_ = b.SetSpeed(physic.Frequency(i) * physic.KiloHertz)
		}
	}()
	for i := 0; i < 20; i++ {
		require.NoError(t, b.Start())
		require.NoError(t, b.WriteByte(byte(i)))
		require.NoError(t, b.Stop())
	}
	<-done

	frames := r.Frames()
	require.Len(t, frames, 20)
	for i, f := range frames {
		assert.Equal(t, []byte{byte(i)}, f.Bytes)
	}

	clk.n = 0
	require.NoError(t, b.WriteByte(0x00))
	assert.Equal(t, 27, clk.n, "last speed sticks")
}

func TestPinLine(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO2", Num: 2}
	l := bitbang.NewPinLine(p)

	require.NoError(t, l.Out(gpio.Low))
	assert.Equal(t, gpio.Low, p.L)
	assert.Equal(t, gpio.Low, l.Read())

	require.NoError(t, l.SetDirection(bitbang.Input))
	assert.Equal(t, gpio.PullUp, p.P)

	// Output re-drives the last level.
	p.L = gpio.High
	require.NoError(t, l.SetDirection(bitbang.Output))
	assert.Equal(t, gpio.Low, p.L)

	assert.Error(t, l.SetDirection(bitbang.Direction(9)))
	assert.Equal(t, p.String(), l.String())
}

func TestPinLineDrivesBus(t *testing.T) {
	scl := &gpiotest.Pin{N: "GPIO3", Num: 3}
	sda := &gpiotest.Pin{N: "GPIO2", Num: 2}
	b := bitbang.New(bitbang.NewPinLine(scl), bitbang.NewPinLine(sda), nil)

	require.NoError(t, b.Tx(0x3C, []byte{0x00}, nil))
	assert.Equal(t, gpio.High, scl.L, "SCL idles high")
	assert.Equal(t, gpio.High, sda.L, "SDA idles high")
}
