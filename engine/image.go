package engine

import (
	"image"
	"image/color"
)

// Image is a row-major frame buffer of 32-bit ARGB pixels.
type Image struct {
	pixels []uint32
	width  int
	height int
}

func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		pixels: make([]uint32, width*height),
		width:  width,
		height: height,
	}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

func (img *Image) inside(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// Set writes an ARGB pixel. Writes outside the image are dropped.
func (img *Image) Set(x, y int, argb uint32) {
	if !img.inside(x, y) {
		return
	}
	img.pixels[y*img.width+x] = argb
}

// At returns the ARGB pixel at (x, y), or 0 outside the image.
func (img *Image) At(x, y int) uint32 {
	if !img.inside(x, y) {
		return 0
	}
	return img.pixels[y*img.width+x]
}

func (img *Image) Fill(argb uint32) {
	for i := range img.pixels {
		img.pixels[i] = argb
	}
}

// FillColumn paints rows [y0, y1) of column x.
func (img *Image) FillColumn(x, y0, y1 int, argb uint32) {
	if x < 0 || x >= img.width {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.height {
		y1 = img.height
	}
	for y := y0; y < y1; y++ {
		img.pixels[y*img.width+x] = argb
	}
}

// Pixels exposes the backing ARGB slice for presenters that upload it as is.
func (img *Image) Pixels() []uint32 { return img.pixels }

// RGBA returns the frame as R, G, B, A bytes per pixel.
func (img *Image) RGBA() []byte {
	return img.RGBAInto(nil)
}

// RGBAInto writes the frame as R, G, B, A bytes into dst, growing it only
// when it is too small, and returns the filled slice.
func (img *Image) RGBAInto(dst []byte) []byte {
	n := len(img.pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range img.pixels {
		dst[i*4] = byte(p >> 16)
		dst[i*4+1] = byte(p >> 8)
		dst[i*4+2] = byte(p)
		dst[i*4+3] = byte(p >> 24)
	}
	return dst
}

// ARGB packs a color into the frame's pixel format.
func ARGB(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | b>>8
}

// Color unpacks an ARGB pixel.
func Color(argb uint32) color.RGBA {
	return color.RGBA{
		R: byte(argb >> 16),
		G: byte(argb >> 8),
		B: byte(argb),
		A: byte(argb >> 24),
	}
}
