package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/gentlemanautomaton/markercheck"
	"go.uber.org/zap"
)

// CheckCmd validates that files beneath a directory contain a marker.
type CheckCmd struct {
	Root      string                `kong:"env='MARKERCHECK_ROOT',name='root',arg,optional,default='.',help='Directory to search recursively.'"`
	Marker    string                `kong:"env='MARKERCHECK_MARKER',name='marker',default='ANIL',help='Substring every file must contain.'"`
	Extension string                `kong:"env='MARKERCHECK_EXT',name='ext',default='.rtl',help='File name suffix of the files to check.'"`
	Exclude   []markercheck.Pattern `kong:"env='MARKERCHECK_EXCLUDE',name='exclude',sep='none',help='Exclude files and directories matching regular expression patterns.'"`
	Hidden    bool                  `kong:"env='MARKERCHECK_HIDDEN',name='hidden',help='Include files and directories whose names start with a dot.'"`
	GitIgnore bool                  `kong:"env='MARKERCHECK_GITIGNORE',name='gitignore',help='Skip paths ignored by the .gitignore file in the root directory.'"`
	Verbose   bool                  `kong:"env='MARKERCHECK_VERBOSE',name='verbose',short='v',help='Log discovery details to stderr.'"`
	Config    kong.ConfigFlag       `kong:"name='config',help='Load flag values from a YAML file. Values in the file take precedence over MARKERCHECK_* environment variables.'"`
}

// Validator returns a validator configured according to the command.
func (cmd CheckCmd) Validator(log *zap.Logger) markercheck.Validator {
	return markercheck.Validator{
		Marker:    cmd.Marker,
		Extension: cmd.Extension,
		Exclude:   cmd.Exclude,
		Hidden:    cmd.Hidden,
		GitIgnore: cmd.GitIgnore,
		Logger:    log,
	}
}

// Run executes the check command.
func (cmd CheckCmd) Run(ctx context.Context) error {
	log, err := newLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	return cmd.run(ctx, os.Stdout, log)
}

// checkArgs rejects settings that cannot select or validate any file.
func (cmd CheckCmd) checkArgs() error {
	if cmd.Marker == "" {
		return errors.New("--marker must not be empty")
	}
	if cmd.Extension == "" {
		return errors.New("--ext must not be empty")
	}
	return nil
}

func (cmd CheckCmd) run(ctx context.Context, w io.Writer, log *zap.Logger) error {
	if err := cmd.checkArgs(); err != nil {
		return err
	}

	root := markercheck.Dir(filepath.Clean(cmd.Root))

	if abs, err := filepath.Abs(string(root)); err == nil {
		log.Debug("checking directory", zap.String("root", abs), zap.String("marker", cmd.Marker), zap.String("ext", cmd.Extension))
	}

	code, err := cmd.Validator(log).Run(ctx, w, root)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}
	if code != 0 {
		return markercheck.ErrValidationFailed
	}
	return nil
}
