package markercheck

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is a file directory path accessible via operating system API calls.
//
// Paths passed to its methods are slash separated and relative to the
// directory, as required by fs.FS.
type Dir string

// Open opens the named file.
func (dir Dir) Open(name string) (fs.File, error) {
	return os.DirFS(string(dir)).Open(name)
}

// Stat returns a FileInfo describing the file.
func (dir Dir) Stat(name string) (fs.FileInfo, error) {
	return os.DirFS(string(dir)).(fs.StatFS).Stat(name)
}

// FilePath returns the host path of the given file name by joining it
// with dir. A dir of "." yields the bare relative path.
func (dir Dir) FilePath(name string) string {
	return filepath.Join(string(dir), filepath.FromSlash(name))
}
