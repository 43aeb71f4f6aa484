package bitbang

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Direction is the configured direction of a Line.
type Direction uint8

const (
	// Output drives the line.
	Output Direction = iota
	// Input releases the line to its pull-up so the receiver can drive it.
	Input
)

func (d Direction) String() string {
	switch d {
	case Output:
		return "Out"
	case Input:
		return "In"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Line is one of the two bus signals. The engine only drives lines; Read is
// used solely by the optional acknowledgement sampling.
type Line interface {
	fmt.Stringer
	SetDirection(d Direction) error
	Out(l gpio.Level) error
	Read() gpio.Level
}

// PinLine adapts a periph GPIO pin to a Line.
//
// periph has no separate direction call: Out switches a pin to output and In
// switches it to input. Asserting Output therefore re-drives the last level.
type PinLine struct {
	p     gpio.PinIO
	level gpio.Level
}

// NewPinLine wraps p. The remembered level starts High, the idle bus level.
func NewPinLine(p gpio.PinIO) *PinLine {
	return &PinLine{p: p, level: gpio.High}
}

// SetDirection implements Line.
func (l *PinLine) SetDirection(d Direction) error {
	switch d {
	case Output:
		if err := l.p.Out(l.level); err != nil {
			return fmt.Errorf("bitbang: %s: set output: %w", l.p, err)
		}
	case Input:
		if err := l.p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return fmt.Errorf("bitbang: %s: set input: %w", l.p, err)
		}
	default:
		return fmt.Errorf("bitbang: %s: invalid direction %s", l.p, d)
	}
	return nil
}

// Out implements Line.
func (l *PinLine) Out(level gpio.Level) error {
	l.level = level
	if err := l.p.Out(level); err != nil {
		return fmt.Errorf("bitbang: %s: drive %s: %w", l.p, level, err)
	}
	return nil
}

// Read implements Line.
func (l *PinLine) Read() gpio.Level {
	return l.p.Read()
}

func (l *PinLine) String() string {
	return l.p.String()
}
