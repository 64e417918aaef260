// Package image1bit provides 1-bit monochrome image formats for the SSD1306 display controller.
//
// Two memory layouts are provided:
//
// HorizontalMSB is the conventional row-major bitmap. Each byte holds 8
// horizontal pixels, the most significant bit being the leftmost pixel:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 ...
//	Byte 0: b7 b6 b5 b4 b3 b2 b1 b0
//
// VerticalLSB is the layout of the SSD1306 graphic RAM. The image is split in
// pages, horizontal bands 8 pixels tall. Each byte of a page holds 8 vertical
// pixels of one column, the least significant bit being the top pixel:
//
//	Page 0, column x: bit 0 = (x, 0) ... bit 7 = (x, 7)
//	Page 1, column x: bit 0 = (x, 8) ... bit 7 = (x, 15)
//
// Both implement draw.Image, so anything the image/draw package can render
// can be converted to either layout.
//
// Example usage:
//
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 128, 64))
//	img.SetBit(10, 20, image1bit.On)
//	draw.Draw(img, image.Rect(0, 0, 8, 8), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
