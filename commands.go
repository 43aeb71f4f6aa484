package ssd1306

// Bytes that open every frame.
const (
	// Address is the write address byte, 0x3C shifted left with R/W = 0.
	Address = 0x78
	// ControlCommand tells the controller that command bytes follow.
	ControlCommand = 0x00
	// ControlData tells the controller that pixel bytes follow.
	ControlData = 0x40
)

// Controller commands.
const (
	cmdColumnAddr     = 0x21
	cmdPageAddr       = 0x22
	cmdMemoryMode     = 0x20
	cmdScrollRight    = 0x26
	cmdScrollLeft     = 0x27
	cmdDeactScroll    = 0x2E
	cmdActScroll      = 0x2F
	cmdStartLine      = 0x40
	cmdContrast       = 0x81
	cmdChargePump     = 0x8D
	cmdSegRemap       = 0xA0
	cmdResumeRAM      = 0xA4
	cmdNormalDisplay  = 0xA6
	cmdInvertDisplay  = 0xA7
	cmdDisplayOff     = 0xAE
	cmdDisplayOn      = 0xAF
	cmdComScanDec     = 0xC8
	cmdClockDiv       = 0xD5
	cmdPrecharge      = 0xD9
	cmdComPins        = 0xDA
	cmdVcomDeselect   = 0xDB
	chargePumpEnable  = 0x14
	comPinsAlt128x64  = 0x12
	defaultContrast   = 0x3F
	defaultPrecharge  = 0x22
	initPageRangeLast = 0x3F
	lastColumn        = 0x7F
)

// Panel geometry.
const (
	Width  = 128
	Height = 64
	Pages  = Height / 8

	// clearPasses is how many times ClearScreen covers the panel RAM.
	clearPasses = 4
	// ClearExtent is the number of zero bytes ClearScreen sends.
	ClearExtent = Width * Pages * clearPasses
)

// initSequence returns the bring-up command bytes for mode.
//
// The table is sent as one command frame and the controller consumes
// parameters positionally: the 0x00 after 0xD5 is the clock divide value,
// and 0xA4 after 0xDB is read as the VCOMH level.
func initSequence(mode byte) []byte {
	return []byte{
		cmdDisplayOn,
		cmdClockDiv, 0x00,
		cmdStartLine | 0x00,
		cmdChargePump, chargePumpEnable,
		cmdMemoryMode, mode,
		cmdSegRemap | 0x01,
		cmdComScanDec,
		cmdComPins, comPinsAlt128x64,
		cmdContrast, defaultContrast,
		cmdPrecharge, defaultPrecharge,
		cmdVcomDeselect,
		cmdResumeRAM,
		cmdDeactScroll,
		cmdDisplayOn,
		cmdPageAddr, 0x00, initPageRangeLast,
		cmdColumnAddr, 0x00, lastColumn,
	}
}
