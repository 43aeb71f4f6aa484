package ssd1306

import "fmt"

// ScrollSpeed is the number of frames between two scroll steps.
type ScrollSpeed byte

// Scroll step intervals as encoded by the controller.
const (
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts continuous horizontal scrolling of the pages from
// startPage to endPage, both inclusive and masked to 3 bits. If right is
// true the content moves right; otherwise left.
//
// Pixel data written while scrolling is active may be corrupted; call
// StopScroll and redraw first.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	startPage &= d.mode.pageMask
	endPage &= d.mode.pageMask
	if startPage > endPage {
		return fmt.Errorf("ssd1306: scroll start page %d is after end page %d", startPage, endPage)
	}
	op := byte(cmdScrollLeft)
	if right {
		op = cmdScrollRight
	}
	d.log.Debug().Uint8("start", startPage).Uint8("end", endPage).Bool("right", right).Msg("ssd1306: scroll")
	// <op>, dummy, <start page>, <interval>, <end page>, dummy, dummy, <activate>
	return d.command(op, 0x00, startPage, byte(speed)&0x07, endPage, 0x00, 0xFF, cmdActScroll)
}

// StopScroll stops scrolling. The RAM content is left as it was before the
// scroll started, so the panel should be redrawn.
func (d *Dev) StopScroll() error {
	return d.command(cmdDeactScroll)
}
