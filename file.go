package markercheck

import (
	"errors"
	"fmt"
)

// FileResult describes the outcome of checking a single file.
type FileResult struct {
	// Checked file location
	Root  Dir
	Path  string
	Index int

	// Found is true when the file was read and contains the marker.
	Found bool

	// Err is a *ReadError when the file could not be opened or read.
	Err error
}

// FilePath returns the host path of the file, as printed in reports.
func (r FileResult) FilePath() string {
	return r.Root.FilePath(r.Path)
}

// Failed returns true if the file could not be read or lacks the marker.
func (r FileResult) Failed() bool {
	return r.Err != nil || !r.Found
}

// Reason returns the error that caused the file to fail, or nil if it
// passed.
func (r FileResult) Reason() error {
	if r.Err != nil {
		return r.Err
	}
	if !r.Found {
		return ErrMarkerMissing
	}
	return nil
}

// Line returns the report line for the file.
func (r FileResult) Line(marker string) string {
	var readErr *ReadError
	switch {
	case errors.As(r.Err, &readErr):
		return fmt.Sprintf("ERROR: Could not read %s: %v", r.FilePath(), readErr.Err)
	case r.Err != nil:
		return fmt.Sprintf("ERROR: Could not read %s: %v", r.FilePath(), r.Err)
	case !r.Found:
		return fmt.Sprintf("ERROR: '%s' not found in %s", marker, r.FilePath())
	default:
		return fmt.Sprintf("OK: '%s' found in %s", marker, r.FilePath())
	}
}
