package departures

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Defaults match a 4.2" Waveshare panel driven with a 31pt monospaced font.
const (
	DefaultWidth          = 400
	DefaultHeight         = 300
	DefaultFontSize       = 31
	DefaultMaxLines       = 5
	DefaultColumns        = 4
	DefaultLineHeight     = 2
	DefaultPadding        = 16
	DefaultRuleInset      = 20
	DefaultDirectionWidth = 8
)

// Config carries every tunable used by the parser and the renderer.
// The zero value is not usable; start from DefaultConfig or NewConfig.
type Config struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int

	// FontSize is the nominal glyph size in pixels. Render uses the size
	// reported by its Glyphs provider and falls back to FontSize when none
	// is given.
	FontSize int

	// MaxLines bounds the number of input lines considered.
	MaxLines int

	// Columns is the exact number of tab-separated fields per record.
	// Fields past the fourth are accepted and ignored.
	Columns int

	// LineHeight is the separator rule thickness.
	LineHeight int

	// Padding is the gap between the text and the rule, and between the
	// rule and the next block.
	Padding int

	// RuleInset is the horizontal margin left free on each side of a rule.
	RuleInset int

	// DirectionWidth is the longest direction shown unabbreviated.
	DirectionWidth int

	// LineIDWidth pads the line id to a fixed width when positive.
	LineIDWidth int
}

// Option configures a Config during creation.
//
// Example:
//
//	cfg := departures.NewConfig(
//	    departures.WithCanvasSize(640, 384),
//	    departures.WithFontSize(24),
//	)
type Option func(*Config)

// DefaultConfig returns the layout used on a 400x300 panel.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		FontSize:       DefaultFontSize,
		MaxLines:       DefaultMaxLines,
		Columns:        DefaultColumns,
		LineHeight:     DefaultLineHeight,
		Padding:        DefaultPadding,
		RuleInset:      DefaultRuleInset,
		DirectionWidth: DefaultDirectionWidth,
	}
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCanvasSize sets the canvas dimensions.
func WithCanvasSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFontSize sets the fallback glyph size.
func WithFontSize(size int) Option {
	return func(c *Config) {
		c.FontSize = size
	}
}

// WithMaxLines sets how many departures fit on the panel.
func WithMaxLines(n int) Option {
	return func(c *Config) {
		c.MaxLines = n
	}
}

// WithLineIDWidth pads line ids to width characters.
// Zero disables padding.
func WithLineIDWidth(width int) Option {
	return func(c *Config) {
		c.LineIDWidth = width
	}
}

// WithPadding sets the rule padding and thickness.
func WithPadding(padding, lineHeight int) Option {
	return func(c *Config) {
		c.Padding = padding
		c.LineHeight = lineHeight
	}
}

// Validate reports every field that cannot produce a sensible board.
// The returned error lists all problems at once.
func (c Config) Validate() error {
	var result *multierror.Error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			result = multierror.Append(result, fmt.Errorf("departures: "+format, args...))
		}
	}

	check(c.Width > 0, "width must be positive, got %d", c.Width)
	check(c.Height > 0, "height must be positive, got %d", c.Height)
	check(c.FontSize > 0, "font size must be positive, got %d", c.FontSize)
	check(c.MaxLines >= 0, "max lines must not be negative, got %d", c.MaxLines)
	check(c.Columns >= DefaultColumns, "columns must be at least %d, got %d", DefaultColumns, c.Columns)
	check(c.LineHeight >= 0, "line height must not be negative, got %d", c.LineHeight)
	check(c.Padding >= 0, "padding must not be negative, got %d", c.Padding)
	check(c.RuleInset >= 0 && 2*c.RuleInset <= c.Width,
		"rule inset %d does not fit a %dpx canvas", c.RuleInset, c.Width)
	check(c.DirectionWidth >= minDirectionWidth,
		"direction width must be at least %d, got %d", minDirectionWidth, c.DirectionWidth)
	check(c.LineIDWidth >= 0, "line id width must not be negative, got %d", c.LineIDWidth)

	return result.ErrorOrNil()
}
