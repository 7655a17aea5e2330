package techniquetests

import (
	"github.com/qa-exercises/testing-technique-demos/framework"
)

// T represents a test or subtest in the demonstration suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with debug logging that
// is shown or hidden by the driver. That functionality is provided by the
// lower-level framework package.
//
// To make test assertions, use the assert and require packages, passing the
// *T as if it were a *testing.T.
type T struct {
	context *framework.Context
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c})
	})
}

// Debug logs narration for the test, such as which inputs are being tried or
// which branch a value took. The output is passed to the test logger at the
// end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}
