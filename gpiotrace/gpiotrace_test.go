package gpiotrace

import (
	"testing"

	"github.com/flavioheleno/ssd1306/bitbang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
)

// drive replays a compact waveform: each step is "c"/"C" for SCL low/high and
// "d"/"D" for SDA low/high.
func drive(t *testing.T, r *Recorder, steps string) {
	t.Helper()
	for _, s := range steps {
		var err error
		switch s {
		case 'c':
			err = r.SCL().Out(gpio.Low)
		case 'C':
			err = r.SCL().Out(gpio.High)
		case 'd':
			err = r.SDA().Out(gpio.Low)
		case 'D':
			err = r.SDA().Out(gpio.High)
		default:
			t.Fatalf("bad step %q", s)
		}
		require.NoError(t, err)
	}
}

func TestRecorderLogsEveryCall(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.SDA().SetDirection(bitbang.Output))
	require.NoError(t, r.SCL().Out(gpio.High))
	r.ReadLevel = gpio.High
	assert.Equal(t, gpio.High, r.SDA().Read())

	want := []Event{
		{Line: SDA, Kind: KindDir, Dir: bitbang.Output},
		{Line: SCL, Kind: KindLevel, Level: gpio.High},
		{Line: SDA, Kind: KindRead, Level: gpio.High},
	}
	assert.Equal(t, want, r.Events)
	assert.Equal(t, "SDA:Out SCL=High SDA:read=High", r.String())

	r.Reset()
	assert.Empty(t, r.Events)
}

func TestLevelsAndPulses(t *testing.T) {
	r := NewRecorder()
	drive(t, r, "DCcdCcDCc")
	assert.Equal(t, []gpio.Level{gpio.High, gpio.Low, gpio.High}, r.Levels(SDA))
	assert.Equal(t, []gpio.Level{gpio.High, gpio.Low, gpio.High}, r.Pulses())
}

func TestFramesDecodesByte(t *testing.T) {
	r := NewRecorder()
	// start, 0xA5, ack slot high, stop
	drive(t, r, "CDdc"+"DCc"+"dCc"+"DCc"+"dCc"+"dCc"+"DCc"+"dCc"+"DCc"+"DCc"+"cdCD")

	frames := r.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0xA5}, frames[0].Bytes)
	assert.Equal(t, []gpio.Level{gpio.High}, frames[0].Acks)
	assert.True(t, frames[0].Closed)
	assert.Zero(t, frames[0].Stray)
}

func TestFramesEmptyTransaction(t *testing.T) {
	r := NewRecorder()
	drive(t, r, "CDdc"+"cdCD")

	frames := r.Frames()
	require.Len(t, frames, 1)
	assert.Empty(t, frames[0].Bytes)
	assert.True(t, frames[0].Closed)
}

func TestFramesIgnoresStrayStop(t *testing.T) {
	r := NewRecorder()
	drive(t, r, "cdCD"+"cdCD")
	assert.Empty(t, r.Frames())
}

func TestFramesOpenAndPartial(t *testing.T) {
	r := NewRecorder()
	drive(t, r, "CDdc"+"DCc"+"DCc")

	frames := r.Frames()
	require.Len(t, frames, 1)
	assert.False(t, frames[0].Closed)
	assert.Equal(t, 2, frames[0].Stray)
	assert.Empty(t, frames[0].Bytes)
}

func TestFramePayload(t *testing.T) {
	assert.Nil(t, Frame{Bytes: []byte{0x78}}.Payload())
	assert.Equal(t, []byte{0xAF}, Frame{Bytes: []byte{0x78, 0x00, 0xAF}}.Payload())
}
