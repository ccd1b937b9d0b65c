package departures

import (
	"errors"
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Path: "api_result.tsv", Err: fs.ErrNotExist})

	if got, want := err.Error(), "departures: could not find the file api_result.tsv"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false")
	}
	if errors.Is(err, ErrMalformedRecord) {
		t.Error("errors.Is(err, ErrMalformedRecord) = true")
	}
}

func TestMalformedRecordError(t *testing.T) {
	err := error(&MalformedRecordError{Line: 3, Fields: 2, Want: 4})

	if got, want := err.Error(), "departures: line 3 contains 2 fields instead of 4"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Error("errors.Is(err, ErrMalformedRecord) = false")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = true")
	}
}
