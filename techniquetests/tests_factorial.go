package techniquetests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoFactorialTests exercises the iterative factorial, including the 0! and 1!
// edge cases and the invalid-input error for negative arguments.
func DoFactorialTests(t *T) {
	t.Run("small values", func(t *T) {
		expected := []int{1, 1, 2, 6, 24}
		for n, want := range expected {
			result, err := subject.Factorial(n)
			require.NoError(t, err)
			t.Debug("%d! = %d", n, result)
			assert.Equal(t, want, result, "n was %d", n)
		}
	})

	t.Run("negative input is an error", func(t *T) {
		_, err := subject.Factorial(-1)
		require.Error(t, err)
		assert.ErrorIs(t, err, subject.ErrNegativeInput)
	})
}
