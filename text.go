package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/flavioheleno/ssd1306/font8x8"
	"github.com/flavioheleno/ssd1306/image1bit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DisplayText streams text to the display with the 8x8 font, starting at the
// top left corner. Each byte of text is one character; '\n' moves to the start
// of the next page. Characters are written straight to the display, the
// display buffer is not updated.
//
// Text spanning more than 8 lines is rejected before anything is sent. A
// failed character or line feed does not stop the rest of the text; the
// returned error joins one *TxError per failed transaction, indexed by byte
// offset.
func (d *Dev) DisplayText(text string) error {
	if d.halted {
		return ErrHalted
	}
	if n := strings.Count(text, "\n"); n >= Pages {
		return fmt.Errorf("%w: %d lines", ErrPageOverflow, n+1)
	}

	var errs []error
	page := 0
	if err := d.setCursor(page, 0); err != nil {
		errs = append(errs, &TxError{Op: "text cursor", Index: 0, Err: err})
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			page++
			if err := d.setCursor(page, 0); err != nil {
				errs = append(errs, &TxError{Op: "text line feed", Index: i, Err: err})
			}
			continue
		}
		g := font8x8.Lookup(text[i])
		if err := d.sendData(g[:]); err != nil {
			errs = append(errs, &TxError{Op: "text glyph", Index: i, Err: err})
		}
	}
	return errors.Join(errs...)
}

// DrawString renders s over the current display buffer with a 7x13
// proportional font and flushes the result. (x, y) is the left end of the
// baseline.
func (d *Dev) DrawString(x, y int, s string) error {
	if d.halted {
		return ErrHalted
	}
	img := &image1bit.HorizontalMSB{
		Pix:    d.Bitmap(),
		Stride: bitmapStride,
		Rect:   d.rect,
	}
	dr := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(image1bit.On),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	dr.DrawString(s)
	if err := d.ConvertBitmap(img.Pix); err != nil {
		return err
	}
	return d.Flush()
}
