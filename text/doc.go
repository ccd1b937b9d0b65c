// Package text provides the glyph rasterizer used by the departure board.
//
// The pipeline follows the usual split between a heavyweight font resource
// and lightweight sized instances:
//
//   - FontSource: parsed TTF/OTF data, shared across the application
//   - Face: the font at one pixel size, implementing departures.Glyphs
//
// Glyph outlines are rasterized with golang.org/x/image/font/opentype.
// Text width is measured with HarfBuzz shaping from go-text/typesetting so
// kerning is accounted for.
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("DejaVuSansMono.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face, err := source.Face(31)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas := departures.Render(lines, departures.DefaultConfig(), face)
//
// When no font file is available, DefaultSource returns Go Mono.
package text
