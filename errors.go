package departures

import (
	"errors"
	"fmt"
)

// Sentinel errors for departures package.
var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("departures: input not found")

	// ErrMalformedRecord is matched by every *MalformedRecordError.
	ErrMalformedRecord = errors.New("departures: malformed record")
)

// NotFoundError is returned when the departures file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("departures: could not find the file %s", e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// MalformedRecordError is returned when a considered line does not split
// into the configured number of fields. Line is 1-based.
type MalformedRecordError struct {
	Line   int
	Fields int
	Want   int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("departures: line %d contains %d fields instead of %d", e.Line, e.Fields, e.Want)
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
