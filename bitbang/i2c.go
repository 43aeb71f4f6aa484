package bitbang

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

var (
	_ i2c.Bus     = (*Bus)(nil)
	_ drivers.I2C = (*Bus)(nil)
)

// Tx implements i2c.Bus. It sends one write transaction to the 7-bit
// address addr. r must be empty.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return ErrReadUnsupported
	}
	if addr > 0x7F {
		return fmt.Errorf("bitbang: invalid 7-bit address 0x%X", addr)
	}
	b.Lock()
	defer b.Unlock()
	if err := b.Start(); err != nil {
		return err
	}
	err := b.WriteByte(byte(addr << 1))
	for i := 0; err == nil && i < len(w); i++ {
		err = b.WriteByte(w[i])
	}
	// Release the lines even after a failed write.
	if stopErr := b.Stop(); err == nil {
		err = stopErr
	}
	return err
}

// SetSpeed implements i2c.Bus. Each bit is three toggles, so the pause after
// every toggle is a third of the bit period.
//
// It may run while another goroutine is mid-transaction; the new pause
// applies from the next toggle on.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	if f <= 0 {
		return fmt.Errorf("bitbang: invalid speed %s", f)
	}
	b.delay.Store(int64(f.Period() / 3))
	return nil
}

// WriteRegister writes reg followed by buf to addr. For an SSD1306 the
// register is the control byte.
func (b *Bus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	w := make([]byte, 0, len(buf)+1)
	w = append(w, reg)
	w = append(w, buf...)
	return b.Tx(uint16(addr), w, nil)
}

// ReadRegister is not implemented; the engine is transmit only.
func (b *Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return ErrReadUnsupported
}
