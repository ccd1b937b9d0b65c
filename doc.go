// Package departures renders a short list of transit departures onto a
// monochrome bitmap for a low-resolution e-paper panel.
//
// # Overview
//
// The pipeline has two stages:
//
//   - Parse turns tab-separated records (line, direction, time, delay) into
//     display lines such as "3 Gra..ncy 10:46+1".
//   - Render stacks those lines onto a 1-bit Canvas with a separator rule
//     below each one.
//
// Fetching the data, rasterizing glyphs and driving the panel are left to
// collaborators: see the text and output sub-packages.
//
// # Quick Start
//
//	cfg := departures.DefaultConfig()
//
//	lines, err := departures.ParseFile("api_result.tsv", cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	source, _ := text.DefaultSource()
//	face, _ := source.Face(float64(cfg.FontSize))
//
//	canvas := departures.Render(lines, cfg, face)
//	_ = output.PNG{Path: "board.png"}.Write(canvas)
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Block i
// starts at y = i * (FontSize + LineHeight + 2*Padding).
package departures
