package techniquetests

import (
	"github.com/qa-exercises/testing-technique-demos/framework"
)

// AllTechniques lists the top-level test groups in the order they run.
var AllTechniques = []string{
	"set membership",
	"equivalence partitioning",
	"branch coverage",
	"boundary values",
	"pairwise combinations",
	"ordering",
	"sign and parity classification",
	"factorial",
	"fibonacci",
	"primality",
}

// RunTestSuite executes the whole catalogue of demonstrations, using the
// filter to decide which tests run and reporting progress to testLogger.
func RunTestSuite(filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c}

		t.Run("set membership", DoSetMembershipTests)
		t.Run("equivalence partitioning", DoEquivalencePartitioningTests)
		t.Run("branch coverage", DoBranchCoverageTests)
		t.Run("boundary values", DoBoundaryValueTests)
		t.Run("pairwise combinations", DoPairwiseCombinationTests)
		t.Run("ordering", DoOrderingTests)
		t.Run("sign and parity classification", DoClassificationTests)
		t.Run("factorial", DoFactorialTests)
		t.Run("fibonacci", DoFibonacciTests)
		t.Run("primality", DoPrimalityTests)
	})
}
