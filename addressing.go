package ssd1306

// Addressing describes how the controller walks its RAM during a data burst
// and how a window is selected for it.
//
// Only Horizontal is supported. The window always runs from the requested
// column and page to the end of the panel; sub-rectangles are not
// addressable.
type Addressing struct {
	name string
	// mode is the parameter of the memory addressing mode command.
	mode byte
	// Masks applied to the start of the window, and the fixed ends.
	columnMask, columnEnd byte
	pageMask, pageEnd     byte
}

// Horizontal addressing: the column pointer advances after every byte and
// wraps to the next page at the column end.
var Horizontal = Addressing{
	name:       "horizontal",
	mode:       0x00,
	columnMask: 0x7F,
	columnEnd:  0x7F,
	pageMask:   0x07,
	pageEnd:    0x07,
}

// Window returns the command bytes that select the window starting at
// column and page.
func (a Addressing) Window(column, page byte) []byte {
	return []byte{
		cmdColumnAddr, column & a.columnMask, a.columnEnd,
		cmdPageAddr, page & a.pageMask, a.pageEnd,
	}
}

func (a Addressing) String() string {
	if a.name == "" {
		return "unset"
	}
	return a.name
}
