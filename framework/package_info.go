// Package framework contains the suite-runner infrastructure that is not
// specific to any particular testing technique.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results, without running under "go test".
//
// 2. Tests are arranged in named groups and subtests; a regex filter decides
// which of them run. Skipped and failed tests are reported through a
// TestLogger so the caller controls presentation.
//
// 3. Each test can write debug output to a capturing logger; the captured
// lines are handed to the TestLogger when the test finishes, so narration is
// only shown when the caller wants it.
//
// The domain-specific code that knows what is being demonstrated lives on top
// of this package and provides the actual test logic.
package framework
