// Package techniquetests contains the catalogue of testing-technique
// demonstrations. Each tests_*.go file covers one technique (equivalence
// partitioning, boundary-value analysis, and so on) by exercising one of the
// functions in the subject package with the inputs that technique calls for.
//
// The demonstrations run on top of the framework package rather than
// "go test", so the catalogue can be executed, filtered, and reported as an
// ordinary console program.
package techniquetests
