package ssd1306

import (
	"errors"
	"fmt"
)

var (
	// ErrBitmapSize is returned when a source bitmap is not exactly one frame.
	ErrBitmapSize = errors.New("ssd1306: invalid bitmap size")
	// ErrBufferSize is returned when a raw display RAM write is not exactly one frame.
	ErrBufferSize = errors.New("ssd1306: invalid buffer size")
	// ErrPageRange is returned for a page index outside 0-7.
	ErrPageRange = errors.New("ssd1306: page out of range")
	// ErrSegmentRange is returned for a segment index outside 0-127.
	ErrSegmentRange = errors.New("ssd1306: segment out of range")
	// ErrWidth is returned when an image write does not fit in its page.
	ErrWidth = errors.New("ssd1306: invalid image width")
	// ErrPageOverflow is returned when text would move the cursor past the last page.
	ErrPageOverflow = errors.New("ssd1306: text overflows last page")
	// ErrTimeout is returned when a bus transaction does not complete in time.
	ErrTimeout = errors.New("ssd1306: bus transaction timed out")
	// ErrHalted is returned by drawing operations after Halt.
	ErrHalted = errors.New("ssd1306: halted")
)

// TxError reports one failed bus transaction of a multi-transaction operation.
//
// Index is the page for flush and clear, and the byte offset in the text for
// text output.
type TxError struct {
	Op    string
	Index int
	Err   error
}

func (e *TxError) Error() string {
	return fmt.Sprintf("ssd1306: %s %d: %v", e.Op, e.Index, e.Err)
}

func (e *TxError) Unwrap() error {
	return e.Err
}
