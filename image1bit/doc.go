// Package image1bit provides a 1-bit image format for the SSD1306 display controller.
//
// The SSD1306 groups rows into pages of 8. Each byte covers one column of one
// page, least significant bit at the top. Pages follow each other, so a
// 128x64 image is 8 pages of 128 bytes.
//
// Memory layout example for the first column of a page:
//
//	Row:   0 1 2 3 4 5 6 7
//	Pixel: 1 0 0 0 0 0 0 1
//	Byte:  0x81
//
// This package provides:
//
// - Bit: A color type that is either On or Off
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation in controller page order
//
// Example usage:
//
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//	img.SetBit(10, 20, image1bit.On)
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.Off), image.Point{}, draw.Src)
package image1bit
