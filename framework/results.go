package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Results is the accumulated outcome of a suite run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single test.
type TestResult struct {
	TestID TestID
	Errors []error
}

// OK is true if there were no failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test as the path of names from the suite root down to
// the test itself.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

var successColor = color.New(color.FgGreen)
var failureColor = color.New(color.FgRed)

// PrintResults writes a human-readable summary of a suite run.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		_, _ = successColor.Fprintf(dest, "All %d tests passed\n", len(results.Tests))
		return
	}
	_, _ = failureColor.Fprintf(dest, "FAILED TESTS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		_, _ = failureColor.Fprintf(dest, "  %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(dest, "    %s\n", line)
			}
		}
	}
}
