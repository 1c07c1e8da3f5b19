package markercheck

import (
	"errors"
	"io/fs"

	gitignore "github.com/monochromegane/go-gitignore"
)

// ignoreMatcher reports whether a slash separated path relative to the
// validation root is ignored.
type ignoreMatcher interface {
	Match(path string, isDir bool) bool
}

// loadGitIgnore reads the .gitignore file at the top of root. It returns a
// nil matcher and no error if root has no .gitignore file.
func loadGitIgnore(root Dir) (ignoreMatcher, error) {
	f, err := root.Open(".gitignore")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	// Paths handed to the matcher are already relative to root, so the
	// matcher's base is the current directory.
	return gitignore.NewGitIgnoreFromReader(".", f), nil
}
