package ssd1306

import "time"

// DefaultAddr is the I²C address of the controller with the SA0 pin low.
// Pulling SA0 high selects 0x3D.
const DefaultAddr = 0x3C

// Control bytes. The first byte of each I²C write tells the controller how to
// interpret what follows.
const (
	controlCmdStream  = 0x00 // all following bytes are commands
	controlCmdSingle  = 0x80 // one command byte follows, then another control byte
	controlDataStream = 0x40 // all following bytes are display RAM data
)

// Page addressing mode opcodes. The operand is OR'ed in the low bits.
const (
	opColumnLow  = 0x00
	opColumnHigh = 0x10
	opPageStart  = 0xB0
)

// Controller commands outside page addressing.
const (
	cmdChargePump       = 0x8D
	cmdComScanDec       = 0xC8
	cmdComScanInc       = 0xC0
	cmdDeactivateScroll = 0x2E
	cmdActivateScroll   = 0x2F
	cmdDisplayAllOnRes  = 0xA4
	cmdDisplayOff       = 0xAE
	cmdDisplayOn        = 0xAF
	cmdInvertDisplay    = 0xA7
	cmdMemoryMode       = 0x20
	cmdNormalDisplay    = 0xA6
	cmdSegRemap0        = 0xA0
	cmdSegRemap127      = 0xA1
	cmdSetComPins       = 0xDA
	cmdSetContrast      = 0x81
	cmdSetDisplayClock  = 0xD5
	cmdSetDisplayOffset = 0xD3
	cmdSetMultiplex     = 0xA8
	cmdSetPrecharge     = 0xD9
	cmdSetStartLine     = 0x40
	cmdSetVcomDetect    = 0xDB
	memoryModePage      = 0x02
)

// ColumnAddress splits a segment into the two page addressing commands that
// set the column start address: low nibble first, then high nibble.
func ColumnAddress(seg int) (lo, hi byte) {
	return opColumnLow | byte(seg&0x0F), opColumnHigh | byte((seg>>4)&0x0F)
}

// addressFrame is a command stream positioning the cursor at (page, seg).
func addressFrame(page, seg int) []byte {
	lo, hi := ColumnAddress(seg)
	return []byte{controlCmdStream, lo, hi, opPageStart | byte(page)}
}

// dataFrame is a data stream of b.
func dataFrame(b []byte) []byte {
	return append([]byte{controlDataStream}, b...)
}

// pageDataFrame selects page with a single command and streams b into it
// within the same transaction.
func pageDataFrame(page int, b []byte) []byte {
	return append([]byte{controlCmdSingle, opPageStart | byte(page), controlDataStream}, b...)
}

// commandFrame is a command stream of cmds.
func commandFrame(cmds ...byte) []byte {
	return append([]byte{controlCmdStream}, cmds...)
}

// tx runs one bus transaction. Each call is framed by its own start and stop
// condition. When a timeout is configured, a transaction that does not
// complete in time reports ErrTimeout.
func (d *Dev) tx(w []byte) error {
	if d.timeout <= 0 {
		return d.c.Tx(w, nil)
	}
	done := make(chan error, 1)
	go func() {
		done <- d.c.Tx(w, nil)
	}()
	t := time.NewTimer(d.timeout)
	defer t.Stop()
	select {
	case err := <-done:
		return err
	case <-t.C:
		return ErrTimeout
	}
}

// sendCommand sends a command stream.
func (d *Dev) sendCommand(cmds ...byte) error {
	return d.tx(commandFrame(cmds...))
}

// setCursor moves the RAM write pointer to (page, seg).
func (d *Dev) setCursor(page, seg int) error {
	return d.tx(addressFrame(page, seg))
}

// sendData streams b at the current RAM write pointer.
func (d *Dev) sendData(b []byte) error {
	return d.tx(dataFrame(b))
}
