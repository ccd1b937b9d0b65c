package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilSource is returned when a Face is requested from a nil FontSource.
	ErrNilSource = errors.New("text: nil font source")
)

// InvalidSizeError is returned when a Face is requested at a size that
// cannot be rasterized.
type InvalidSizeError struct {
	Size float64
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("text: invalid face size %g", e.Size)
}
