package output

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/image/bmp"

	"github.com/gogpu/departures"
)

// board renders two lines without text: rules only.
func board() *departures.Canvas {
	return departures.Render([]string{"a", "b"}, departures.DefaultConfig(), nil)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Sink
	}{
		{"board.png", PNG{Path: "board.png"}},
		{"out/Board.PNG", PNG{Path: "out/Board.PNG"}},
		{"test_display.bmp", BMP{Path: "test_display.bmp"}},
		{"frame.bin", EPDFile{Path: "frame.bin"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ForPath(tt.path)
			if err != nil {
				t.Fatalf("ForPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ForPath() = %#v, want %#v", got, tt.want)
			}
		})
	}

	_, err := ForPath("board.jpg")
	var ue *UnknownFormatError
	if !errors.As(err, &ue) {
		t.Errorf("ForPath(.jpg) error = %v, want *UnknownFormatError", err)
	}
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	c := board()

	if err := (PNG{Path: path}).Write(c); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if !departures.FromImage(img).Equal(c) {
		t.Error("decoded PNG differs from the canvas")
	}
}

func TestBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_display.bmp")
	c := board()

	if err := (BMP{Path: path}).Write(c); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if !departures.FromImage(img).Equal(c) {
		t.Error("decoded BMP differs from the canvas")
	}
}

func TestImage_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "board.png")
	if err := (PNG{Path: path}).Write(board()); err == nil {
		t.Error("Write() to a missing directory error = nil")
	}
}

func TestEPD(t *testing.T) {
	c := board()
	var buf bytes.Buffer

	if err := (EPD{W: &buf}).Write(c); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 50*300 {
		t.Errorf("frame buffer is %d bytes, want %d", buf.Len(), 50*300)
	}

	back, err := ReadEPD(&buf, 400, 300)
	if err != nil {
		t.Fatalf("ReadEPD() error = %v", err)
	}
	if !back.Equal(c) {
		t.Error("ReadEPD(EPD.Write()) differs from the canvas")
	}
}

func TestEPDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bin")
	c := board()

	if err := (EPDFile{Path: path}).Write(c); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, c.Bytes()) {
		t.Error("file contents differ from Canvas.Bytes()")
	}
}

func TestReadEPD_Short(t *testing.T) {
	if _, err := ReadEPD(bytes.NewReader(make([]byte, 10)), 400, 300); err == nil {
		t.Error("ReadEPD(short) error = nil")
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestEPD_ShortWrite(t *testing.T) {
	err := (EPD{W: shortWriter{}}).Write(board())
	if err == nil || !strings.Contains(err.Error(), "short") {
		t.Errorf("Write() error = %v, want short write", err)
	}
}

func TestMulti(t *testing.T) {
	var calls []string
	record := func(name string, err error) Sink {
		return SinkFunc(func(*departures.Canvas) error {
			calls = append(calls, name)
			return err
		})
	}

	errA := errors.New("panel busy")
	errB := errors.New("disk full")
	err := Multi(record("a", errA), record("b", nil), record("c", errB)).Write(board())

	if strings.Join(calls, ",") != "a,b,c" {
		t.Errorf("sinks called %v, want a,b,c", calls)
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Multi().Write() error type = %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 2 || !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Multi().Write() = %v, want both failures", err)
	}

	if err := Multi(record("d", nil)).Write(board()); err != nil {
		t.Errorf("Multi(ok).Write() = %v, want nil", err)
	}
}

func TestPreview_Render(t *testing.T) {
	c := departures.NewCanvas(4, 4)
	c.FillRect(0, 0, 3, 0)
	c.SetBlack(0, 3)
	c.SetBlack(1, 2)
	c.SetBlack(1, 3)

	got := Preview{Scale: 1}.Render(c)
	want := "▀▀▀▀\n▄█  "
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPreview_ScaleKeepsThinRules(t *testing.T) {
	got := Preview{Scale: 4}.Render(board())

	lines := strings.Split(got, "\n")
	if len(lines) != 38 {
		t.Fatalf("Render() has %d rows, want 38", len(lines))
	}
	// First rule at rows 47..49 lands in cell row 5 (rows 40..47), lower half.
	if !strings.Contains(lines[5], "▄") {
		t.Errorf("row 5 = %q, want the first rule", lines[5])
	}
}

func TestPreview_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := (Preview{W: &buf}).Write(departures.NewCanvas(8, 4)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "╭") || !strings.Contains(buf.String(), "╯") {
		t.Errorf("Write() output has no rounded border: %q", buf.String())
	}
}
