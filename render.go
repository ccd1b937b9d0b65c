package departures

import (
	"image"
	"image/draw"
	"math"
)

// Glyphs rasterizes text onto a canvas. It is implemented by text.Face.
type Glyphs interface {
	// Size returns the font size in pixels. The renderer uses it for
	// vertical spacing only.
	Size() float64

	// DrawString draws s in black with the top-left of the line box at (x, y).
	DrawString(dst draw.Image, s string, x, y int)
}

// advancer is implemented by Glyphs that can measure text width.
// Render uses it to report lines wider than the canvas.
type advancer interface {
	Advance(s string) float64
}

// extenter is implemented by Glyphs that know how far their outlines reach
// above and below the baseline.
type extenter interface {
	Extent() (ascent, descent float64)
}

// Block is the vertical slot allocated to one display line.
type Block struct {
	Index int

	// TextX and TextY are the top-left of the text line.
	TextX, TextY int

	// Rule is the separator below the text. Max is exclusive.
	Rule image.Rectangle
}

// BlockHeight returns the height of one block: text, padding above and
// below the rule, and the rule itself.
func BlockHeight(fontSize int, cfg Config) int {
	return fontSize + cfg.LineHeight + cfg.Padding*2
}

// Layout computes the geometry of n stacked blocks starting at y = 0.
// Rules span columns RuleInset through Width-RuleInset and LineHeight+1 rows,
// both ends inclusive.
func Layout(n, fontSize int, cfg Config) []Block {
	step := BlockHeight(fontSize, cfg)
	blocks := make([]Block, n)
	for i := range blocks {
		top := i * step
		ruleTop := top + fontSize + cfg.Padding
		blocks[i] = Block{
			Index: i,
			TextX: 0,
			TextY: top,
			Rule: image.Rect(
				cfg.RuleInset, ruleTop,
				cfg.Width-cfg.RuleInset+1, ruleTop+cfg.LineHeight+1,
			),
		}
	}
	return blocks
}

// Render draws lines onto a new white canvas of cfg.Width x cfg.Height,
// one block per line with a black separator rule below each. A nil g draws
// the rules only, spaced by cfg.FontSize. Blocks that fall below the
// canvas are clipped.
func Render(lines []string, cfg Config, g Glyphs) *Canvas {
	c := NewCanvas(cfg.Width, cfg.Height)

	fontSize := cfg.FontSize
	if g != nil {
		fontSize = int(math.Round(g.Size()))
	}

	log := Logger()
	if e, ok := g.(extenter); ok && len(lines) > 0 {
		ascent, descent := e.Extent()
		if overlap := ascent + descent - float64(fontSize+cfg.Padding); overlap > 0 {
			log.Warn("departures: descent reaches rule", "ascent", ascent, "descent", descent,
				"padding", cfg.Padding, "overlap", overlap)
		}
	}
	for _, b := range Layout(len(lines), fontSize, cfg) {
		if b.TextY >= c.Height() {
			log.Warn("departures: block below canvas", "index", b.Index, "y", b.TextY, "height", c.Height())
		}
		if g != nil {
			s := lines[b.Index]
			if a, ok := g.(advancer); ok {
				if w := a.Advance(s); b.TextX+int(math.Ceil(w)) > c.Width() {
					log.Warn("departures: line wider than canvas", "index", b.Index, "text", s, "advance", w)
				}
			}
			g.DrawString(c, s, b.TextX, b.TextY)
		}
		c.FillRect(b.Rule.Min.X, b.Rule.Min.Y, b.Rule.Max.X-1, b.Rule.Max.Y-1)
	}

	log.Info("departures: rendered", "lines", len(lines), "width", c.Width(), "height", c.Height(), "font_size", fontSize)
	return c
}

// RenderFile parses the departures file at path and renders it.
func RenderFile(path string, cfg Config, g Glyphs) (*Canvas, error) {
	lines, err := ParseFile(path, cfg)
	if err != nil {
		return nil, err
	}
	return Render(lines, cfg, g), nil
}
