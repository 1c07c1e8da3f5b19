package markercheck

import "errors"

// ErrMarkerMissing is reported for files that were read successfully but do
// not contain the marker.
var ErrMarkerMissing = errors.New("marker not found")

// ErrInvalidEncoding is wrapped by a ReadError when a file's contents are not
// valid UTF-8 text.
var ErrInvalidEncoding = errors.New("invalid UTF-8 text")

// ErrNotDirectory is returned when the validation root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ErrValidationFailed is returned by commands when at least one file failed
// validation. The report has already been printed when it is returned.
var ErrValidationFailed = errors.New("validation failed")

// ReadError records a failure to open or read a discovered file.
type ReadError struct {
	Path string
	Err  error
}

// Error returns a string representation of the error.
func (e *ReadError) Error() string {
	return "could not read " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}
