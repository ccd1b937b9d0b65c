// Command departureboard renders the next departures from a TSV file onto a
// 1-bit bitmap sized for a 4.2" e-paper panel.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/departures"
	"github.com/gogpu/departures/output"
	"github.com/gogpu/departures/text"
)

func main() {
	var (
		input    = flag.String("input", "api_result.tsv", "departures file written by the fetcher")
		out      = flag.String("output", "board.png", "output file (.png, .bmp or .bin)")
		fontPath = flag.String("font", "", "TTF/OTF font file (default: Go Mono)")
		fontSize = flag.Int("font-size", departures.DefaultFontSize, "font size in pixels")
		width    = flag.Int("width", departures.DefaultWidth, "canvas width")
		height   = flag.Int("height", departures.DefaultHeight, "canvas height")
		maxLines = flag.Int("max-lines", departures.DefaultMaxLines, "number of departures shown")
		padID    = flag.Int("pad-id", 0, "pad line ids to this width (0 disables)")
		preview  = flag.Bool("preview", false, "also draw the board on the terminal")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	departures.SetLogger(logger)

	cfg := departures.NewConfig(
		departures.WithCanvasSize(*width, *height),
		departures.WithFontSize(*fontSize),
		departures.WithMaxLines(*maxLines),
		departures.WithLineIDWidth(*padID),
	)

	if err := run(cfg, *input, *out, *fontPath, *preview); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg departures.Config, input, out, fontPath string, preview bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sink, err := output.ForPath(out)
	if err != nil {
		return err
	}
	if preview {
		sink = output.Multi(sink, output.Preview{W: os.Stdout, Scale: 2})
	}

	face, err := loadFace(fontPath, cfg.FontSize)
	if err != nil {
		return err
	}

	lines, err := departures.ParseFile(input, cfg)
	if err != nil {
		return err
	}

	departures.Logger().Info("drawing the next departures", "count", len(lines))
	return sink.Write(departures.Render(lines, cfg, face))
}

func loadFace(path string, size int) (*text.Face, error) {
	var (
		source *text.FontSource
		err    error
	)
	if path == "" {
		source, err = text.DefaultSource()
	} else {
		source, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return source.Face(float64(size))
}
