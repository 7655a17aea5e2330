package techniquetests

import (
	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoEquivalencePartitioningTests demonstrates equivalence partitioning: the
// input domain splits into the classes negative, zero, and positive, and one
// representative of each class stands in for the whole class.
func DoEquivalencePartitioningTests(t *T) {
	t.Run("negative class is rejected", func(t *T) {
		t.Debug("representative of the negative class: -5")
		assert.Equal(t, subject.Failure, subject.ProcessValue(-5))
	})

	t.Run("zero is accepted", func(t *T) {
		assert.Equal(t, subject.Success, subject.ProcessValue(0))
	})

	t.Run("positive class is accepted", func(t *T) {
		t.Debug("representative of the positive class: 10")
		assert.Equal(t, subject.Success, subject.ProcessValue(10))
	})
}
