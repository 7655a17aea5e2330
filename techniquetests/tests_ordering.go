package techniquetests

import (
	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoOrderingTests demonstrates a single-scan ordering check, including the
// degenerate inputs (empty, singleton) that are trivially ordered.
func DoOrderingTests(t *T) {
	t.Run("ascending sequence is ordered", func(t *T) {
		assert.True(t, subject.IsNonDecreasing([]int{1, 2, 3, 4, 5}))
	})

	t.Run("descending sequence is not ordered", func(t *T) {
		assert.False(t, subject.IsNonDecreasing([]int{5, 3, 1}))
	})

	t.Run("empty and singleton sequences are trivially ordered", func(t *T) {
		assert.True(t, subject.IsNonDecreasing(nil))
		assert.True(t, subject.IsNonDecreasing([]int{42}))
	})

	t.Run("equal neighbors do not break the ordering", func(t *T) {
		assert.True(t, subject.IsNonDecreasing([]int{1, 1, 2, 2, 3}))
	})
}
