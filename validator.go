package markercheck

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"
)

// Default validation settings.
const (
	DefaultMarker    = "ANIL"
	DefaultExtension = ".rtl"
)

// Validator checks that every file with a given extension beneath a
// directory contains a marker string.
//
// The zero value is ready to use and validates ".rtl" files for "ANIL".
type Validator struct {
	// Marker is the substring every file must contain.
	Marker string

	// Extension is the file name suffix that selects files, including the
	// leading dot.
	Extension string

	// Exclude skips files and directories with matching names.
	Exclude []Pattern

	// Hidden includes files and directories whose names start with a dot.
	Hidden bool

	// GitIgnore skips paths ignored by a .gitignore file in the root.
	GitIgnore bool

	// Logger receives diagnostics. Optional.
	Logger *zap.Logger
}

func (v Validator) marker() string {
	if v.Marker == "" {
		return DefaultMarker
	}
	return v.Marker
}

func (v Validator) extension() string {
	if v.Extension == "" {
		return DefaultExtension
	}
	return v.Extension
}

func (v Validator) logger() *zap.Logger {
	if v.Logger == nil {
		return zap.NewNop()
	}
	return v.Logger
}

// Validate discovers the files beneath root and checks each of them in
// order. Per-file failures are recorded in the report and never stop the
// run. An error is returned only if discovery fails or ctx is cancelled.
func (v Validator) Validate(ctx context.Context, root Dir) (Report, error) {
	report := Report{
		Marker:    v.marker(),
		Extension: v.extension(),
		Start:     time.Now(),
	}

	paths, err := v.Discover(ctx, root)
	if err != nil {
		report.End = time.Now()
		return report, err
	}

	report.Results = make([]FileResult, 0, len(paths))
	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			report.End = time.Now()
			return report, err
		}
		result := v.Check(root, p)
		result.Index = i
		report.Results = append(report.Results, result)
	}

	report.End = time.Now()
	v.logger().Debug("validation finished", zap.Stringer("summary", report.Summary()))

	return report, nil
}

// Run validates root and writes the report to w. It returns the process
// exit code: 0 if every discovered file contains the marker (including when
// no files were found) and 1 otherwise.
//
// If discovery fails the report is not written, and the error is returned
// along with an exit code of 1.
func (v Validator) Run(ctx context.Context, w io.Writer, root Dir) (int, error) {
	report, err := v.Validate(ctx, root)
	if err != nil {
		return 1, err
	}
	if _, err := report.WriteTo(w); err != nil {
		return 1, err
	}
	return report.ExitCode(), nil
}

