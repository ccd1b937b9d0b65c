package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaperPool pools HarfbuzzShaper instances. A HarfbuzzShaper keeps an
// internal buffer and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Advance returns the horizontal advance of s in pixels after HarfBuzz
// shaping, so kerning and ligatures are accounted for.
func (f *Face) Advance(s string) float64 {
	out := f.shape(s)
	return fixedToFloat(out.Advance)
}

// GlyphCount returns the number of glyphs s shapes into.
func (f *Face) GlyphCount(s string) int {
	return len(f.shape(s).Glyphs)
}

func (f *Face) shape(s string) shaping.Output {
	if s == "" {
		return shaping.Output{}
	}

	runes := []rune(s)
	// gtfont.Face is not safe for concurrent use; NewFace is cheap.
	face := gtfont.NewFace(f.source.shapeFont)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)
	return out
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
