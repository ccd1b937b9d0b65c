package departures

import (
	"bytes"
	"image"
	"image/color"
)

// Canvas values as seen through the gray color model.
const (
	White uint8 = 255
	Black uint8 = 0
)

// Canvas is a 1-bit monochrome bitmap. Pixels are packed row-major,
// most significant bit first, with a set bit meaning white. This is the
// byte layout e-paper controllers expect, so Bytes can be streamed to a
// panel unchanged.
//
// Canvas implements image.Image and draw.Image. Colors darker than 50%
// gray are drawn black, everything else white.
type Canvas struct {
	width  int
	height int
	stride int
	data   []uint8
}

// NewCanvas creates a white canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	stride := (width + 7) / 8
	c := &Canvas{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]uint8, stride*height),
	}
	c.Clear(White)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.stride
}

// Bytes returns a copy of the packed pixel data.
func (c *Canvas) Bytes() []uint8 {
	out := make([]uint8, len(c.data))
	copy(out, c.data)
	return out
}

// Clear fills the whole canvas with v (White or Black).
func (c *Canvas) Clear(v uint8) {
	fill := uint8(0x00)
	if v == White {
		fill = 0xFF
	}
	for i := range c.data {
		c.data[i] = fill
	}
}

// SetBlack paints a single pixel black. Out-of-bounds coordinates are ignored.
func (c *Canvas) SetBlack(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.data[y*c.stride+x/8] &^= 0x80 >> (x % 8)
}

// SetWhite paints a single pixel white. Out-of-bounds coordinates are ignored.
func (c *Canvas) SetWhite(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.data[y*c.stride+x/8] |= 0x80 >> (x % 8)
}

// IsBlack reports whether the pixel at (x, y) is black.
// Out-of-bounds pixels read as white.
func (c *Canvas) IsBlack(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false
	}
	return c.data[y*c.stride+x/8]&(0x80>>(x%8)) == 0
}

// FillRect paints the rectangle with corners (x0, y0) and (x1, y1) black.
// Both corners are inclusive. Parts outside the canvas are discarded.
func (c *Canvas) FillRect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.width-1), min(y1, c.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.SetBlack(x, y)
		}
	}
}

// Count returns the number of black pixels.
func (c *Canvas) Count() int {
	n := 0
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.IsBlack(x, y) {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both canvases have the same size and pixels.
func (c *Canvas) Equal(other *Canvas) bool {
	if other == nil {
		return false
	}
	return c.width == other.width && c.height == other.height && bytes.Equal(c.data, other.data)
}

// ToImage converts the canvas to an 8-bit grayscale image.
func (c *Canvas) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+c.width]
		for x := range row {
			if c.IsBlack(x, y) {
				row[x] = Black
			} else {
				row[x] = White
			}
		}
	}
	return img
}

// FromImage thresholds img into a new canvas.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return c
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	if isDark(col) {
		c.SetBlack(x, y)
	} else {
		c.SetWhite(x, y)
	}
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if c.IsBlack(x, y) {
		return color.Gray{Y: Black}
	}
	return color.Gray{Y: White}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.GrayModel
}

// isDark reports whether col is below 50% luminance after compositing
// onto white.
func isDark(col color.Color) bool {
	r, g, b, a := col.RGBA()
	// Premultiplied: composite over white by adding the uncovered part.
	r += 0xFFFF - a
	g += 0xFFFF - a
	b += 0xFFFF - a
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return y < 0x8000
}
