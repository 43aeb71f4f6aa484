package gpiotrace

import (
	"periph.io/x/conn/v3/gpio"
)

// Frame is one decoded transaction.
type Frame struct {
	// Bytes holds every complete byte in order, the address byte included.
	Bytes []byte
	// Acks holds the SDA level seen in each byte's acknowledgement slot.
	Acks []gpio.Level
	// Closed is false when the recording ends before the stop condition.
	Closed bool
	// Stray counts bits clocked after the last complete byte.
	Stray int
}

// Payload returns the bytes after the address and control byte.
func (f Frame) Payload() []byte {
	if len(f.Bytes) < 2 {
		return nil
	}
	return f.Bytes[2:]
}

// Frames decodes the log the way a receiver on the bus would see it.
//
// Both lines are assumed Low before the first event. SDA falling while SCL is
// high opens a frame and SDA rising while SCL is high closes it. A bit is
// sampled when SCL rises and kept once SCL falls again, so the clock edge
// inside a stop condition is not counted. Every ninth bit is the
// acknowledgement slot. Stops outside a frame are ignored.
func (r *Recorder) Frames() []Frame {
	var (
		frames   []Frame
		cur      *Frame
		scl, sda = gpio.Low, gpio.Low
		pending  bool
		sample   gpio.Level
		bits     []gpio.Level
	)
	for _, e := range r.Events {
		if e.Kind == KindRead && e.Line == SDA && pending {
			// A released SDA shows whatever the receiver drives.
			sample = e.Level
			continue
		}
		if e.Kind != KindLevel {
			continue
		}
		switch e.Line {
		case SDA:
			if scl == gpio.High && e.Level != sda {
				if e.Level == gpio.Low {
					// Start, or repeated start.
					if cur != nil {
						frames = append(frames, *cur)
					}
					cur = &Frame{}
				} else if cur != nil {
					cur.Closed = true
					cur.Stray = len(bits)
					frames = append(frames, *cur)
					cur = nil
				}
				bits = bits[:0]
				pending = false
			}
			sda = e.Level
		case SCL:
			if scl == gpio.Low && e.Level == gpio.High {
				pending = true
				sample = sda
			} else if scl == gpio.High && e.Level == gpio.Low && pending {
				pending = false
				if cur != nil {
					bits = append(bits, sample)
					if len(bits) == 9 {
						var v byte
						for _, b := range bits[:8] {
							v <<= 1
							if b == gpio.High {
								v |= 1
							}
						}
						cur.Bytes = append(cur.Bytes, v)
						cur.Acks = append(cur.Acks, bits[8])
						bits = bits[:0]
					}
				}
			}
			scl = e.Level
		}
	}
	if cur != nil {
		cur.Stray = len(bits)
		frames = append(frames, *cur)
	}
	return frames
}
