package markercheck

import (
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"
)

// FileFunc is a function that can operate on a file.
type FileFunc func(fs.File) error

// withFile opens the named file within root and invokes fn on it. The file
// is closed before withFile returns, whether or not fn succeeds.
func withFile(root Dir, name string, fn FileFunc) error {
	file, err := root.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	return fn(file)
}

// Check reads the file at path within root and reports whether it contains
// the validator's marker. Failures to open, read or decode the file are
// recorded as a *ReadError in the result.
func (v Validator) Check(root Dir, path string) FileResult {
	result := FileResult{
		Root: root,
		Path: path,
	}

	var content []byte
	err := withFile(root, path, func(f fs.File) error {
		var err error
		content, err = io.ReadAll(f)
		return err
	})
	if err == nil && !utf8.Valid(content) {
		err = ErrInvalidEncoding
	}
	if err != nil {
		result.Err = &ReadError{Path: root.FilePath(path), Err: err}
		return result
	}

	result.Found = strings.Contains(string(content), v.marker())
	return result
}
