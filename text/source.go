package text

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// faceCacheSize bounds the number of sizes kept per FontSource.
const faceCacheSize = 16

// FontSource represents a loaded font file.
// One FontSource can create Faces at different sizes; faces are cached.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	name string

	// Rasterization backend.
	font *opentype.Font

	// Shaping backend. gtfont.Font is read-only and safe for concurrent use.
	shapeFont *gtfont.Font

	faces *lru.Cache[float64, *Face]
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	shaped, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	faces, err := lru.New[float64, *Face](faceCacheSize)
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face cache: %w", err)
	}

	s := &FontSource{
		data:      dataCopy,
		font:      f,
		shapeFont: shaped.Font,
		faces:     faces,
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// DefaultSource returns the embedded Go Mono font.
var DefaultSource = sync.OnceValues(func() (*FontSource, error) {
	return NewFontSource(gomono.TTF)
})

// Face returns the face at size pixels, creating it on first use.
func (s *FontSource) Face(size float64) (*Face, error) {
	if s == nil {
		return nil, ErrNilSource
	}
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, &InvalidSizeError{Size: size}
	}

	if f, ok := s.faces.Get(size); ok {
		return f, nil
	}

	f, err := newFace(s, size)
	if err != nil {
		return nil, err
	}
	s.faces.Add(size, f)
	return f, nil
}

// Name returns the font family name, or "" when the font has none.
func (s *FontSource) Name() string {
	return s.name
}
