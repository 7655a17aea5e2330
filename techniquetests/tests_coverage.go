package techniquetests

import (
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoBranchCoverageTests demonstrates path coverage: the three inputs below
// are chosen so that every branch of the nested sign/parity conditional is
// taken at least once.
func DoBranchCoverageTests(t *T) {
	walk := func(t *T, x int) []string {
		path := subject.DescribeNumber(x)
		t.Debug("%d took the path: %s", x, strings.Join(path, " -> "))
		return path
	}

	t.Run("positive even path", func(t *T) {
		assert.Equal(t, []string{subject.DescPositive, subject.DescEven}, walk(t, 10))
	})

	t.Run("positive odd path", func(t *T) {
		assert.Equal(t, []string{subject.DescPositive, subject.DescOdd}, walk(t, 7))
	})

	t.Run("non-positive path", func(t *T) {
		assert.Equal(t, []string{subject.DescNonPositive}, walk(t, -5))
	})

	t.Run("zero also lands on the non-positive path", func(t *T) {
		assert.Equal(t, []string{subject.DescNonPositive}, walk(t, 0))
	})
}
