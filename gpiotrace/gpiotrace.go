// Package gpiotrace records what a bus master does to its lines and decodes
// the recording back into transactions.
package gpiotrace

import (
	"fmt"
	"strings"

	"github.com/flavioheleno/ssd1306/bitbang"
	"periph.io/x/conn/v3/gpio"
)

// Line names used in events.
const (
	SCL = "SCL"
	SDA = "SDA"
)

// Kind tells which Line call an Event records.
type Kind uint8

const (
	// KindDir is a SetDirection call; Event.Dir holds the direction.
	KindDir Kind = iota
	// KindLevel is an Out call; Event.Level holds the driven level.
	KindLevel
	// KindRead is a Read call; Event.Level holds the level returned.
	KindRead
)

// Event is one call made on a recorded line.
type Event struct {
	Line  string
	Kind  Kind
	Dir   bitbang.Direction
	Level gpio.Level
}

func (e Event) String() string {
	switch e.Kind {
	case KindDir:
		return fmt.Sprintf("%s:%s", e.Line, e.Dir)
	case KindRead:
		return fmt.Sprintf("%s:read=%s", e.Line, e.Level)
	default:
		return fmt.Sprintf("%s=%s", e.Line, e.Level)
	}
}

// Recorder is a pair of fake lines sharing one event log.
//
// It is not safe for concurrent use.
type Recorder struct {
	Events []Event
	// ReadLevel is what SDA reports to Read. The zero value, Low, is an
	// acknowledgement.
	ReadLevel gpio.Level

	scl, sda *line
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.scl = &line{r: r, name: SCL}
	r.sda = &line{r: r, name: SDA}
	return r
}

// SCL returns the recorded clock line.
func (r *Recorder) SCL() bitbang.Line { return r.scl }

// SDA returns the recorded data line.
func (r *Recorder) SDA() bitbang.Line { return r.sda }

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// String renders the log as space separated events.
func (r *Recorder) String() string {
	parts := make([]string, len(r.Events))
	for i, e := range r.Events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Levels returns the levels driven on the named line, in order.
func (r *Recorder) Levels(name string) []gpio.Level {
	var out []gpio.Level
	for _, e := range r.Events {
		if e.Line == name && e.Kind == KindLevel {
			out = append(out, e.Level)
		}
	}
	return out
}

// Pulses returns the SDA level at every rising edge of SCL.
func (r *Recorder) Pulses() []gpio.Level {
	var out []gpio.Level
	scl, sda := gpio.Low, gpio.Low
	for _, e := range r.Events {
		if e.Kind != KindLevel {
			continue
		}
		switch e.Line {
		case SCL:
			if scl == gpio.Low && e.Level == gpio.High {
				out = append(out, sda)
			}
			scl = e.Level
		case SDA:
			sda = e.Level
		}
	}
	return out
}

type line struct {
	r    *Recorder
	name string
}

func (l *line) SetDirection(d bitbang.Direction) error {
	l.r.Events = append(l.r.Events, Event{Line: l.name, Kind: KindDir, Dir: d})
	return nil
}

func (l *line) Out(level gpio.Level) error {
	l.r.Events = append(l.r.Events, Event{Line: l.name, Kind: KindLevel, Level: level})
	return nil
}

func (l *line) Read() gpio.Level {
	v := l.r.ReadLevel
	if l.name == SCL {
		v = gpio.High
	}
	l.r.Events = append(l.r.Events, Event{Line: l.name, Kind: KindRead, Level: v})
	return v
}

func (l *line) String() string {
	return l.name
}
