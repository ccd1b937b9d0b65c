package text

import (
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource at one pixel size. It implements departures.Glyphs.
//
// Face is safe for concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	metrics Metrics

	// ascent is the distance from the top of the line box to the
	// baseline, rounded up to whole pixels.
	ascent int

	// mu guards face; opentype faces keep a scratch buffer.
	mu   sync.Mutex
	face font.Face
}

func newFace(s *FontSource, size float64) (*Face, error) {
	// At 72 DPI one point is one pixel.
	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	m := otFace.Metrics()
	return &Face{
		source: s,
		size:   size,
		metrics: Metrics{
			Ascent:    fixedToFloat(m.Ascent),
			Descent:   fixedToFloat(m.Descent),
			LineGap:   fixedToFloat(m.Height - m.Ascent - m.Descent),
			XHeight:   fixedToFloat(m.XHeight),
			CapHeight: fixedToFloat(m.CapHeight),
		},
		ascent: m.Ascent.Ceil(),
		face:   otFace,
	}, nil
}

// Size returns the size of this face in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

// Extent returns how far glyphs reach above and below the baseline.
// Render uses it to check that descenders stay clear of the rule.
func (f *Face) Extent() (ascent, descent float64) {
	return f.metrics.Ascent, f.metrics.Descent
}

// DrawString draws s in black onto dst. (x, y) is the top-left corner of
// the line box; the baseline sits one ascent below it. Pixels covered by
// less than half a glyph are left untouched on 1-bit destinations.
func (f *Face) DrawString(dst draw.Image, s string, x, y int) {
	if s == "" || dst == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: f.face,
		Dot:  fixed.P(x, y+f.ascent),
	}
	d.DrawString(s)
}

// Bounds returns the pixel bounds of s drawn at (x, y) with the same
// anchoring as DrawString.
func (f *Face) Bounds(s string, x, y int) image.Rectangle {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, _ := font.BoundString(f.face, s)
	origin := fixed.P(x, y+f.ascent)
	return image.Rect(
		(origin.X + b.Min.X).Floor(), (origin.Y + b.Min.Y).Floor(),
		(origin.X + b.Max.X).Ceil(), (origin.Y + b.Max.Y).Ceil(),
	)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
