package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"github.com/gogpu/departures"
)

// PNG writes the canvas as an 8-bit grayscale PNG file.
type PNG struct {
	Path string
}

// Write implements Sink.
func (s PNG) Write(c *departures.Canvas) error {
	return writeFile(s.Path, c, png.Encode)
}

// BMP writes the canvas as a BMP file, the format the panel fixtures use.
type BMP struct {
	Path string
}

// Write implements Sink.
func (s BMP) Write(c *departures.Canvas) error {
	return writeFile(s.Path, c, bmp.Encode)
}

func writeFile(path string, c *departures.Canvas, encode func(io.Writer, image.Image) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer func() {
		err = combineErrors(err, f.Close())
	}()

	if err := encode(f, c.ToImage()); err != nil {
		return fmt.Errorf("output: failed to encode %s: %w", path, err)
	}
	departures.Logger().Info("output: wrote image", "path", path, "width", c.Width(), "height", c.Height())
	return nil
}
