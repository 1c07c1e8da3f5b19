package markercheck

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Summary is a summary of a validation run.
type Summary struct {
	Checked    int
	Passed     int
	Failed     int
	Start, End time.Time
}

// String returns a string representation of the summary.
func (s Summary) String() string {
	checked := pluralize(s.Checked, "file", "files")
	failed := pluralize(s.Failed, "file", "files")
	return fmt.Sprintf("%s checked, %d passed, %s failed (%s)", checked, s.Passed, failed, s.End.Sub(s.Start))
}

// Report holds the ordered results of a validation run.
type Report struct {
	Marker     string
	Extension  string
	Results    []FileResult
	Start, End time.Time
}

// Failures returns the results that failed, in the order they were checked.
func (r Report) Failures() []FileResult {
	var failures []FileResult
	for _, result := range r.Results {
		if result.Failed() {
			failures = append(failures, result)
		}
	}
	return failures
}

// Passed returns true if no file failed.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if result.Failed() {
			return false
		}
	}
	return true
}

// ExitCode returns 0 if every file passed and 1 otherwise.
func (r Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Summary returns tallies for the report.
func (r Report) Summary() Summary {
	s := Summary{
		Checked: len(r.Results),
		Start:   r.Start,
		End:     r.End,
	}
	for _, result := range r.Results {
		if result.Failed() {
			s.Failed++
		} else {
			s.Passed++
		}
	}
	return s
}

// Label returns the extension without its leading dot, upper-cased, for use
// in report headings.
func (r Report) Label() string {
	return strings.ToUpper(strings.TrimPrefix(r.Extension, "."))
}

// WriteTo writes the human-readable report to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprintf(cw, "Checking %d %s files for '%s'...\n", len(r.Results), r.Label(), r.Marker)
	for _, result := range r.Results {
		fmt.Fprintln(cw, result.Line(r.Marker))
	}

	if failures := r.Failures(); len(failures) > 0 {
		fmt.Fprintf(cw, "\nVALIDATION FAILED: %d file(s) missing '%s':\n", len(failures), r.Marker)
		for _, failure := range failures {
			fmt.Fprintf(cw, "  - %s\n", failure.FilePath())
		}
	} else {
		fmt.Fprintf(cw, "\nAll %s files contain '%s' - validation passed!\n", r.Label(), r.Marker)
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

func pluralize(v int, singular, plural string) string {
	if v == 1 {
		return fmt.Sprintf("%d %s", v, singular)
	}
	return fmt.Sprintf("%d %s", v, plural)
}
