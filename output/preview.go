package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/departures"
)

// Half-block characters: each terminal cell shows two pixel rows.
const (
	cellEmpty  = ' '
	cellUpper  = '▀'
	cellLower  = '▄'
	cellFilled = '█'
)

// Preview draws the canvas to a terminal inside a rounded border.
// Scale pixels map to one cell horizontally and 2*Scale pixels vertically;
// a cell half is filled when any pixel under it is black so thin rules
// stay visible. Scale below 1 is treated as 1.
type Preview struct {
	W     io.Writer
	Scale int
}

var previewStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// Write implements Sink.
func (s Preview) Write(c *departures.Canvas) error {
	if _, err := fmt.Fprintln(s.W, previewStyle.Render(s.Render(c))); err != nil {
		return fmt.Errorf("output: failed to write preview: %w", err)
	}
	return nil
}

// Render returns the preview body without the border.
func (s Preview) Render(c *departures.Canvas) string {
	scale := max(s.Scale, 1)
	cols := (c.Width() + scale - 1) / scale
	rows := (c.Height() + 2*scale - 1) / (2 * scale)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		top := row * 2 * scale
		for col := 0; col < cols; col++ {
			x := col * scale
			upper := anyBlack(c, x, top, scale)
			lower := anyBlack(c, x, top+scale, scale)
			switch {
			case upper && lower:
				b.WriteRune(cellFilled)
			case upper:
				b.WriteRune(cellUpper)
			case lower:
				b.WriteRune(cellLower)
			default:
				b.WriteRune(cellEmpty)
			}
		}
	}
	return b.String()
}

func anyBlack(c *departures.Canvas, x0, y0, n int) bool {
	for y := y0; y < y0+n; y++ {
		for x := x0; x < x0+n; x++ {
			if c.IsBlack(x, y) {
				return true
			}
		}
	}
	return false
}
