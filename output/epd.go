package output

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/departures"
)

// EPD streams the packed 1-bit frame buffer to W: one bit per pixel,
// rows top to bottom, most significant bit first, set bits white.
// This is what a Waveshare-style controller expects after getbuffer.
type EPD struct {
	W io.Writer
}

// Write implements Sink.
func (s EPD) Write(c *departures.Canvas) error {
	buf := c.Bytes()
	n, err := s.W.Write(buf)
	if err != nil {
		return fmt.Errorf("output: failed to write frame buffer: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("output: short frame buffer write: %d of %d bytes: %w", n, len(buf), io.ErrShortWrite)
	}
	departures.Logger().Debug("output: frame buffer written", "bytes", n, "stride", c.Stride())
	return nil
}

// EPDFile writes the packed frame buffer to a file.
type EPDFile struct {
	Path string
}

// Write implements Sink.
func (s EPDFile) Write(c *departures.Canvas) (err error) {
	f, err := os.Create(s.Path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer func() {
		err = combineErrors(err, f.Close())
	}()
	return EPD{W: f}.Write(c)
}

// ReadEPD decodes a packed frame buffer of the given size back into a canvas.
func ReadEPD(r io.Reader, width, height int) (*departures.Canvas, error) {
	c := departures.NewCanvas(width, height)
	buf := make([]byte, c.Stride()*height)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("output: failed to read frame buffer: %w", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if buf[y*c.Stride()+x/8]&(0x80>>(x%8)) == 0 {
				c.SetBlack(x, y)
			}
		}
	}
	return c, nil
}
