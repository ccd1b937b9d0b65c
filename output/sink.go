// Package output hands rendered departure boards to their consumers:
// image files, a raw e-paper frame buffer, or a terminal preview.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gogpu/departures"
)

// Sink consumes a rendered canvas.
type Sink interface {
	Write(c *departures.Canvas) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(c *departures.Canvas) error

// Write calls f(c).
func (f SinkFunc) Write(c *departures.Canvas) error {
	return f(c)
}

// UnknownFormatError is returned by ForPath for an unsupported extension.
type UnknownFormatError struct {
	Path string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("output: unknown format for %q (want .png, .bmp or .bin)", e.Path)
}

// ForPath returns a file sink chosen by the extension of path.
func ForPath(path string) (Sink, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG{Path: path}, nil
	case ".bmp":
		return BMP{Path: path}, nil
	case ".bin":
		return EPDFile{Path: path}, nil
	default:
		return nil, &UnknownFormatError{Path: path}
	}
}

// Multi returns a Sink that writes to every sink in order. All sinks run
// even if some fail; failures are combined into one error.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(c *departures.Canvas) error {
		var result *multierror.Error
		for _, s := range sinks {
			if err := s.Write(c); err != nil {
				result = multierror.Append(result, err)
			}
		}
		return result.ErrorOrNil()
	})
}

// combineErrors folds close errors into a write error.
func combineErrors(errs ...error) (err error) {
	for _, e := range errs {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}
