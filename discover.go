package markercheck

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"
)

// Discover returns the slash separated paths of every file beneath root
// whose name ends with the validator's extension. Paths are relative to root
// and returned in lexical order.
//
// Directories that cannot be read are logged and skipped, as are symlinks
// to directories. An error is returned if root is not a directory, cannot be
// walked, or ctx is cancelled.
func (v Validator) Discover(ctx context.Context, root Dir) ([]string, error) {
	var (
		log    = v.logger()
		ext    = v.extension()
		paths  []string
		ignore ignoreMatcher
	)

	// Fail fast with a clear error when root is not a directory
	info, err := root.Stat(".")
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	if v.GitIgnore {
		m, err := loadGitIgnore(root)
		if err != nil {
			log.Warn("unable to load .gitignore", zap.String("root", string(root)), zap.Error(err))
		}
		ignore = m
	}

	err = fs.WalkDir(root, ".", func(p string, d fs.DirEntry, dirErr error) error {
		// Stop walking the directory if the run has been cancelled
		if err := ctx.Err(); err != nil {
			return err
		}

		if p == "." {
			return dirErr
		}

		// If an error was reported, such as access denied, log it and carry
		// on with the rest of the tree
		if dirErr != nil {
			log.Warn("skipping unreadable path", zap.String("path", root.FilePath(p)), zap.Error(dirErr))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()
		if v.skip(p, name, d.IsDir(), ignore) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !strings.HasSuffix(name, ext) {
			return nil
		}

		// Symlinks to directories are not walked and are not files either
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := root.Stat(p); err == nil && target.IsDir() {
				log.Debug("skipping symlinked directory", zap.String("path", p))
				return nil
			}
		}

		log.Debug("discovered file", zap.String("path", p))
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// skip reports whether the named entry is filtered out by the validator's
// hidden, exclusion and .gitignore rules.
func (v Validator) skip(p, name string, isDir bool, ignore ignoreMatcher) bool {
	if !v.Hidden && strings.HasPrefix(name, ".") {
		return true
	}

	for _, pattern := range v.Exclude {
		if pattern.Match(name) {
			return true
		}
	}

	if ignore != nil && ignore.Match(p, isDir) {
		return true
	}

	return false
}
