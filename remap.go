package ssd1306

import (
	"fmt"
	"runtime"

	"github.com/flavioheleno/ssd1306/image1bit"
)

// bitmapStride is the number of bytes per row of a source bitmap.
const bitmapStride = Width / 8

// Locate maps one pixel of a row-major source bitmap to its place in display
// RAM. The pixel is given as its row, the index of its byte within the row and
// the bit within that byte, bit 7 being the leftmost pixel.
//
// The pixel lands on bit row%8 of segment col*8+(7-bit) in page row/8.
func Locate(row, col int, bit uint) (page, seg int, dstBit uint) {
	return row / 8, col*8 + int(7-bit), uint(row % 8)
}

// ConvertBitmap transposes a 128x64 row-major bitmap, 16 bytes per row with
// the most significant bit leftmost, into the display buffer. Nothing is sent
// to the display; call Flush for that.
//
// The bitmap must be exactly BitmapSize bytes. It is not retained.
func (d *Dev) ConvertBitmap(bitmap []byte) error {
	if len(bitmap) != BitmapSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrBitmapSize, BitmapSize, len(bitmap))
	}
	pix := d.buffer.Pix
	for row := 0; row < Height; row++ {
		for col := 0; col < bitmapStride; col++ {
			src := bitmap[row*bitmapStride+col]
			for bit := uint(8); bit > 0; bit-- {
				page, seg, dstBit := Locate(row, col, bit-1)
				i := page*Width + seg
				pix[i] = image1bit.CopyBit(src, bit-1, pix[i], dstBit)
			}
		}
		// Let other goroutines run between rows.
		runtime.Gosched()
	}
	return nil
}

// Bitmap returns the display buffer as a row-major bitmap, the inverse of
// ConvertBitmap.
func (d *Dev) Bitmap() []byte {
	bitmap := make([]byte, BitmapSize)
	pix := d.buffer.Pix
	for row := 0; row < Height; row++ {
		for col := 0; col < bitmapStride; col++ {
			i := row*bitmapStride + col
			for bit := uint(0); bit < 8; bit++ {
				page, seg, srcBit := Locate(row, col, bit)
				bitmap[i] = image1bit.CopyBit(pix[page*Width+seg], srcBit, bitmap[i], bit)
			}
		}
	}
	return bitmap
}
