package techniquetests

import (
	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoPairwiseCombinationTests demonstrates combinatorial testing of two
// parameters: an integer in [0, 10] and a flag selecting its required parity
// (true for even, false for odd). The pairs below cover every agreement and
// disagreement between the two parameters.
func DoPairwiseCombinationTests(t *T) {
	t.Run("parity agrees with the flag", func(t *T) {
		t.Debug("trying (0, true) and (1, false)")
		assert.Equal(t, subject.Success, subject.EvaluateCombination(0, true))
		assert.Equal(t, subject.Success, subject.EvaluateCombination(1, false))
	})

	t.Run("parity disagrees with the flag", func(t *T) {
		t.Debug("trying (2, false) and (3, true)")
		assert.Equal(t, subject.Failure, subject.EvaluateCombination(2, false))
		assert.Equal(t, subject.Failure, subject.EvaluateCombination(3, true))
	})

	t.Run("out-of-range values fail regardless of the flag", func(t *T) {
		for _, a := range []int{-1, 11} {
			assert.Equal(t, subject.Failure, subject.EvaluateCombination(a, true), "a was %d", a)
			assert.Equal(t, subject.Failure, subject.EvaluateCombination(a, false), "a was %d", a)
		}
	})

	t.Run("invalid input returns a status instead of panicking", func(t *T) {
		assert.NotPanics(t, func() {
			_ = subject.EvaluateCombination(-1000, true)
		})
	})
}
