package departures

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Field separator and markers used in display lines.
const (
	fieldSeparator = "\t"
	ellipsis       = ".."
	noDelay        = "0"
	delayPrefix    = "+"
)

// minDirectionWidth leaves room for one character on each side of the ellipsis.
const minDirectionWidth = len(ellipsis) + 2

// Record is one raw departure as produced by the fetcher.
type Record struct {
	LineID        string
	Direction     string
	ScheduledTime string
	DelayMinutes  string
}

// ParseFile reads the departures file at path and returns its display lines.
// A missing file yields a *NotFoundError.
func ParseFile(path string, cfg Config) ([]string, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("departures: failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("departures: failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path, Err: fs.ErrNotExist}
	}

	return Parse(f, cfg)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, cfg Config) ([]string, error) {
	return Parse(strings.NewReader(s), cfg)
}

// Parse reads at most cfg.MaxLines lines from r and formats each one.
// Lines beyond cfg.MaxLines are not read. Either every considered line is
// returned or none is.
func Parse(r io.Reader, cfg Config) ([]string, error) {
	lines := make([]string, 0, max(cfg.MaxLines, 0))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), math.MaxInt)
	for n := 1; n <= cfg.MaxLines && sc.Scan(); n++ {
		rec, err := parseLine(strings.TrimSuffix(sc.Text(), "\r"), n, cfg)
		if err != nil {
			return nil, err
		}
		Logger().Debug("departures: record", "line", n, "fields", []string{
			rec.LineID, rec.Direction, rec.ScheduledTime, rec.DelayMinutes,
		})

		s := FormatRecord(rec, cfg)
		Logger().Debug("departures: appending", "text", s)
		lines = append(lines, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("departures: failed to read input: %w", err)
	}

	return lines, nil
}

// ParseRecord splits a single tab-separated line into a Record.
func ParseRecord(line string, cfg Config) (Record, error) {
	return parseLine(line, 1, cfg)
}

func parseLine(line string, n int, cfg Config) (Record, error) {
	cols := strings.Split(line, fieldSeparator)
	if len(cols) != cfg.Columns || len(cols) < DefaultColumns {
		return Record{}, &MalformedRecordError{Line: n, Fields: len(cols), Want: cfg.Columns}
	}
	return Record{
		LineID:        cols[0],
		Direction:     cols[1],
		ScheduledTime: cols[2],
		DelayMinutes:  cols[3],
	}, nil
}

// FormatRecord composes the display line for rec:
// line id, direction and scheduled time separated by single spaces,
// followed by "+delay" when the delay is not "0".
func FormatRecord(rec Record, cfg Config) string {
	var b strings.Builder

	b.WriteString(padRight(rec.LineID, cfg.LineIDWidth))
	b.WriteByte(' ')
	b.WriteString(AbbreviateDirection(rec.Direction, cfg.DirectionWidth))
	b.WriteByte(' ')
	b.WriteString(rec.ScheduledTime)
	if rec.DelayMinutes != noDelay {
		b.WriteString(delayPrefix)
		b.WriteString(rec.DelayMinutes)
	}

	return b.String()
}

// AbbreviateDirection shortens dir when it has more than width characters,
// keeping its head and tail around "..". With width 8 the result is the
// first three characters, "..", and the last three.
//
// A width of zero or less selects DefaultDirectionWidth, and any smaller
// width is raised to four so one character stays on each side. Characters
// are counted after NFC normalization. When dir is not valid UTF-8 it is
// counted and cut in bytes instead, so no byte is replaced.
func AbbreviateDirection(dir string, width int) string {
	if width <= 0 {
		width = DefaultDirectionWidth
	}
	width = max(width, minDirectionWidth)

	keep := width - len(ellipsis)
	head := keep / 2
	tail := keep - head

	if !utf8.ValidString(dir) {
		if len(dir) <= width {
			return dir
		}
		return dir[:head] + ellipsis + dir[len(dir)-tail:]
	}

	runes := []rune(norm.NFC.String(dir))
	if len(runes) <= width {
		return dir
	}
	return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
}

// padRight left-aligns s in a field of width characters.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
