// Package image1bit provides 1-bit monochrome image formats for the SSD1306 display.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a 1-bit color, lit or dark.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as image/color.Gray, thresholded at half intensity.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// CopyBit returns dst with bit dstBit set to the value of bit srcBit of src.
// All other bits of dst are left unchanged. Bit indexes are 0 to 7.
func CopyBit(src byte, srcBit uint, dst byte, dstBit uint) byte {
	dmask := byte(1) << (dstBit & 7)
	if src&(1<<(srcBit&7)) != 0 {
		return dst | dmask
	}
	return dst &^ dmask
}

// HorizontalMSB is a 1-bit image stored row-major, 8 horizontal pixels per
// byte. The most significant bit is the leftmost pixel.
type HorizontalMSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalMSB creates a new HorizontalMSB image with the specified bounds.
// Rows are padded to a whole number of bytes.
func NewHorizontalMSB(r image.Rectangle) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &HorizontalMSB{Rect: r}
	}
	stride := (w + 7) / 8
	return &HorizontalMSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *HorizontalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *HorizontalMSB) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *HorizontalMSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Out of bounds pixels are Off.
func (p *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, bit := p.pixOffset(x, y)
	return p.Pix[offset]&(1<<bit) != 0
}

// Set implements draw.Image.
func (p *HorizontalMSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y) without color conversion.
func (p *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, bit := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= 1 << bit
	} else {
		p.Pix[offset] &^= 1 << bit
	}
}

// pixOffset returns the byte offset and bit index for the pixel at (x, y).
// Bit 7 is the leftmost pixel of each byte.
func (p *HorizontalMSB) pixOffset(x, y int) (offset int, bit uint) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	bit = uint(7 - dx&7)
	return
}

// VerticalLSB is a 1-bit image stored as pages 8 pixels tall. Each byte holds
// one column of a page, the least significant bit being the top pixel.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, page after page
	Stride int             // Bytes per page (the image width)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Out of bounds pixels are Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, bit := p.pixOffset(x, y)
	return p.Pix[offset]&(1<<bit) != 0
}

// Set implements draw.Image.
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y) without color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, bit := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= 1 << bit
	} else {
		p.Pix[offset] &^= 1 << bit
	}
}

// Page returns the bytes of page n, sharing storage with Pix.
func (p *VerticalLSB) Page(n int) []byte {
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

// pixOffset returns the byte offset and bit index for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, bit uint) {
	dy := y - p.Rect.Min.Y
	offset = (dy/8)*p.Stride + x - p.Rect.Min.X
	bit = uint(dy & 7)
	return
}
