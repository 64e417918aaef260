// Package ssd1306 controls a 128x64 SSD1306 monochrome OLED display via I²C.
//
// See the examples for how to use this package.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/ssd1306/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

const (
	// Width is the number of segments (pixel columns).
	Width = 128
	// Height is the number of pixel rows.
	Height = 64
	// Pages is the number of 8 pixel tall bands of display RAM.
	Pages = Height / 8
	// BitmapSize is the length of a full frame row-major source bitmap.
	BitmapSize = Width / 8 * Height
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr:    DefaultAddr,
	Timeout: 100 * time.Millisecond,
}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// I²C address of the display (default: 0x3C).
	Addr uint16

	// Maximum duration of one bus transaction. Zero or negative waits
	// indefinitely.
	Timeout time.Duration

	// Rotation and mirroring
	Rotated          bool // 180° rotation
	MirrorVertical   bool // COM remap, overrides Rotated
	MirrorHorizontal bool // SEG remap, overrides Rotated
	Sequential       bool // Sequential COM pin configuration
	SwapTopBottom    bool // Swap top/bottom display halves
}

// Dev is the device handle for the SSD1306 display.
//
// A Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	c       conn.Conn
	timeout time.Duration

	// Display geometry
	rect image.Rectangle

	// Mirror of the display RAM, page after page.
	buffer *image1bit.VerticalLSB

	// State
	halted bool
}

// NewI2C creates a new SSD1306 device connected via I²C and initializes it.
//
// opts can be nil to use DefaultOpts.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}

	d := newDev(&i2c.Dev{Bus: b, Addr: addr}, opts)
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// newDev creates the device handle without talking to the controller.
func newDev(c conn.Conn, opts *Opts) *Dev {
	rect := image.Rect(0, 0, Width, Height)
	return &Dev{
		c:       c,
		timeout: opts.Timeout,
		rect:    rect,
		buffer:  image1bit.NewVerticalLSB(rect),
	}
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if err := d.sendCommand(initCommands(opts)...); err != nil {
		return fmt.Errorf("ssd1306: failed to initialize: %w", err)
	}
	return nil
}

// initCommands returns the power up sequence for a 128x64 panel with the
// internal charge pump, in page addressing mode.
func initCommands(opts *Opts) []byte {
	// Set COM output scan direction; C0 means normal; C8 means reversed
	comScan := byte(cmdComScanDec)
	segRemap := byte(cmdSegRemap127)
	if opts.Rotated {
		comScan = cmdComScanInc
		segRemap = cmdSegRemap0
	}
	if opts.MirrorVertical {
		comScan = cmdComScanInc
	}
	if opts.MirrorHorizontal {
		segRemap = cmdSegRemap0
	}

	comPins := byte(0x02)
	if !opts.Sequential {
		comPins |= 0x10
	}
	if opts.SwapTopBottom {
		comPins |= 0x20
	}

	return []byte{
		cmdDisplayOff,
		cmdSetDisplayClock, 0x80, // Oscillator frequency and divide ratio (reset value)
		cmdSetMultiplex, Height - 1,
		cmdSetDisplayOffset, 0x00,
		cmdSetStartLine,
		cmdChargePump, 0x14, // Enable internal charge pump
		cmdMemoryMode, memoryModePage,
		segRemap,
		comScan,
		cmdSetComPins, comPins,
		cmdSetContrast, 0xFF,
		cmdSetPrecharge, 0xF1,
		cmdSetVcomDetect, 0x40,
		cmdDisplayAllOnRes, // Display follows RAM content
		cmdNormalDisplay,
		cmdDeactivateScroll,
		cmdDisplayOn,
	}
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Buffer returns a copy of the display buffer in display RAM layout: 8 pages
// of 128 segments, bit 0 of each byte being the top pixel.
func (d *Dev) Buffer() []byte {
	b := make([]byte, len(d.buffer.Pix))
	copy(b, d.buffer.Pix)
	return b
}

// DisplayImage positions the RAM pointer at (page, seg) and streams the first
// width bytes of img. The display buffer is neither read nor updated.
func (d *Dev) DisplayImage(page, seg int, img []byte, width int) error {
	if d.halted {
		return ErrHalted
	}
	if page < 0 || page >= Pages {
		return fmt.Errorf("%w: %d", ErrPageRange, page)
	}
	if seg < 0 || seg >= Width {
		return fmt.Errorf("%w: %d", ErrSegmentRange, seg)
	}
	if width < 0 || width > len(img) || seg+width > Width {
		return fmt.Errorf("%w: %d bytes at segment %d", ErrWidth, width, seg)
	}
	if err := d.setCursor(page, seg); err != nil {
		return err
	}
	return d.sendData(img[:width])
}

// Flush writes the display buffer to the display, one page at a time.
//
// A failed page does not stop the remaining pages from being sent. The
// returned error joins one *TxError per failed page.
func (d *Dev) Flush() error {
	if d.halted {
		return ErrHalted
	}
	var errs []error
	for page := 0; page < Pages; page++ {
		if err := d.DisplayImage(page, 0, d.buffer.Page(page), Width); err != nil {
			errs = append(errs, &TxError{Op: "flush page", Index: page, Err: err})
		}
	}
	return errors.Join(errs...)
}

// Clear zeroes the display buffer and the display RAM.
//
// Each page is cleared by its own transaction; a failed page is reported as a
// *TxError and the remaining pages are still cleared.
func (d *Dev) Clear() error {
	if d.halted {
		return ErrHalted
	}
	clear(d.buffer.Pix)
	zeros := make([]byte, Width)
	var errs []error
	for page := 0; page < Pages; page++ {
		if err := d.tx(pageDataFrame(page, zeros)); err != nil {
			errs = append(errs, &TxError{Op: "clear page", Index: page, Err: err})
		}
	}
	return errors.Join(errs...)
}

// Write writes raw pixel data in display RAM layout and flushes it.
// The data must be exactly 1024 bytes, as returned by Buffer.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.buffer.Pix) {
		return 0, ErrBufferSize
	}
	copy(d.buffer.Pix, pixels)
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw implements display.Drawer.
//
// The source is rendered into the display buffer, which is then flushed
// entirely. Full frame image1bit images skip the generic draw path.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	full := r == d.rect && src.Bounds() == d.rect && sp == image.Point{}
	switch img := src.(type) {
	case *image1bit.VerticalLSB:
		if full {
			copy(d.buffer.Pix, img.Pix)
			return d.Flush()
		}
	case *image1bit.HorizontalMSB:
		if full {
			if err := d.ConvertBitmap(img.Pix); err != nil {
				return err
			}
			return d.Flush()
		}
	}
	draw.Src.Draw(d.buffer, r, src, sp)
	return d.Flush()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(level byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommand(cmdSetContrast, level)
}

// Invert inverts the display (lit pixels become dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInvertDisplay
	}
	return d.sendCommand(mode)
}

// Halt turns the display off. Display RAM is retained.
// Drawing operations fail with ErrHalted until Resume is called.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(cmdDisplayOff)
}

// Resume turns the display back on after Halt.
func (d *Dev) Resume() error {
	if err := d.sendCommand(cmdDisplayOn); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed defines the number of frames between horizontal scroll steps.
type ScrollSpeed byte

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

// ScrollHorizontal starts continuous horizontal scrolling of pages startPage
// to endPage inclusive. If right is true, scrolls right; otherwise scrolls left.
//
// Writing to the display while scrolling corrupts the display RAM; call
// StopScroll first.
func (d *Dev) ScrollHorizontal(startPage, endPage int, speed ScrollSpeed, right bool) error {
	if d.halted {
		return ErrHalted
	}
	if startPage < 0 || startPage >= Pages || endPage < startPage || endPage >= Pages {
		return fmt.Errorf("%w: %d-%d", ErrPageRange, startPage, endPage)
	}

	scrollCmd := byte(0x27) // Left
	if right {
		scrollCmd = 0x26 // Right
	}

	return d.sendCommand(
		cmdDeactivateScroll,
		scrollCmd,
		0x00, // Dummy byte
		byte(startPage),
		byte(speed),
		byte(endPage),
		0x00, 0xFF, // Dummy bytes
		cmdActivateScroll,
	)
}

// StopScroll stops scrolling. The display RAM has to be rewritten afterwards.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommand(cmdDeactivateScroll)
}

var _ display.Drawer = &Dev{}
