package markercheck

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSummaryString(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s := Summary{Checked: 1, Passed: 0, Failed: 1, Start: start, End: start.Add(time.Second)}
	assert.Equal(t, "1 file checked, 0 passed, 1 file failed (1s)", s.String())

	s = Summary{Checked: 3, Passed: 3, Start: start, End: start}
	assert.Equal(t, "3 files checked, 3 passed, 0 files failed (0s)", s.String())
}

func TestReportWriteTo_ListsEachFailureOnce(t *testing.T) {
	report := Report{
		Marker:    "ANIL",
		Extension: ".rtl",
		Results: []FileResult{
			{Root: ".", Path: "a.rtl", Found: true},
			{Root: ".", Path: "b.rtl"},
			{Root: ".", Path: "c.rtl", Err: &ReadError{Path: "c.rtl", Err: ErrInvalidEncoding}},
		},
	}

	var out bytes.Buffer
	n, err := report.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(out.Len()), n)

	want := "Checking 3 RTL files for 'ANIL'...\n" +
		"OK: 'ANIL' found in a.rtl\n" +
		"ERROR: 'ANIL' not found in b.rtl\n" +
		"ERROR: Could not read c.rtl: invalid UTF-8 text\n" +
		"\n" +
		"VALIDATION FAILED: 2 file(s) missing 'ANIL':\n" +
		"  - b.rtl\n" +
		"  - c.rtl\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, report.ExitCode())
}

func TestReportWriteTo_WriterError(t *testing.T) {
	report := Report{Marker: "ANIL", Extension: ".rtl"}
	_, err := report.WriteTo(failingWriter{})
	assert.EqualError(t, err, "disk full")
}

func TestReportEmpty(t *testing.T) {
	report := Report{Marker: "ANIL", Extension: ".rtl"}
	assert.True(t, report.Passed())
	assert.Equal(t, 0, report.ExitCode())
	assert.Empty(t, report.Failures())
	assert.Equal(t, "RTL", report.Label())
}
