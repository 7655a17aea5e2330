package techniquetests

import (
	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoBoundaryValueTests demonstrates boundary-value analysis on the closed
// range [1, 100]: the interesting inputs are the ones at and immediately
// outside the range limits.
func DoBoundaryValueTests(t *T) {
	t.Run("values on the boundaries are accepted", func(t *T) {
		assert.Equal(t, subject.Success, subject.CheckRange(subject.RangeMin))
		assert.Equal(t, subject.Success, subject.CheckRange(subject.RangeMax))
	})

	t.Run("values just outside the boundaries are rejected", func(t *T) {
		assert.Equal(t, subject.Failure, subject.CheckRange(subject.RangeMin-1))
		assert.Equal(t, subject.Failure, subject.CheckRange(subject.RangeMax+1))
	})

	t.Run("an interior value is accepted", func(t *T) {
		assert.Equal(t, subject.Success, subject.CheckRange(50))
	})
}
