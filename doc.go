// Package ssd1306 controls a SSD1306 OLED display via I²C.
//
// The SSD1306 is a monochrome OLED controller driving up to 128×64 pixels.
// This driver targets the 128×64 panels and implements the display.Drawer
// interface from periph.io.
//
// # Display Memory
//
// The controller RAM is split in 8 pages, each a horizontal band 8 pixels
// tall. A page holds 128 segments, one byte per pixel column, bit 0 being the
// top pixel of the band. The driver keeps a mirror of that RAM, the display
// buffer, and writes it in page addressing mode: for every page, the column
// start address is set with its low and high nibble, the page is selected,
// then the 128 bytes of the page are streamed.
//
// # Hardware Connection
//
// Connect the SSD1306 display to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// Most modules answer at address 0x3C; modules with the SA0 pad pulled high
// answer at 0x3D, set it in Opts.Addr.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/ssd1306"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device
//		dev, _ := ssd1306.NewI2C(bus, nil)
//		defer dev.Halt()
//
//		dev.Clear()
//		dev.DisplayText("Hello\nWorld")
//	}
//
// # Drawing Modes
//
// ## Text Streaming
//
// DisplayText writes 8x8 glyphs straight to the display, 16 characters per
// line and 8 lines. A line feed moves to the next page. The display buffer is
// left untouched.
//
// ## Bitmaps
//
// ConvertBitmap takes a conventional row-major bitmap, 16 bytes per row with
// the most significant bit leftmost, and transposes it into the display
// buffer. Flush then sends the whole buffer:
//
//	bitmap := make([]byte, ssd1306.BitmapSize) // 1024 bytes
//	// ... fill bitmap ...
//	dev.ConvertBitmap(bitmap)
//	dev.Flush()
//
// ## Images
//
// Draw renders any image.Image into the display buffer and flushes it. Colors
// are thresholded to 1 bit with image1bit.BitModel:
//
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// DrawString renders proportional text over the current display buffer.
//
// ## Raw Writes
//
// DisplayImage writes caller supplied bytes at a page and segment without
// touching the display buffer. Write replaces the whole display buffer with
// bytes in display RAM layout.
//
// # Errors
//
// Every write is a separate I²C transaction; transactions are not retried. A
// transaction that does not complete within Opts.Timeout fails with
// ErrTimeout. Flush, Clear and DisplayText keep going after a failed
// transaction and return the failures joined, each one a *TxError naming the
// page or character concerned. The display may then show a partially
// updated frame.
//
// Invalid arguments are rejected before anything is sent on the bus.
//
// # Hardware Scrolling
//
//	dev.ScrollHorizontal(0, 7, ssd1306.Speed5Frames, false)
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
