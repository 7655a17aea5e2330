package techniquetests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoFibonacciTests exercises the iterative Fibonacci, including both base
// cases and the invalid-input error for negative arguments.
func DoFibonacciTests(t *T) {
	t.Run("base cases and small values", func(t *T) {
		expected := []int{0, 1, 1, 2, 3, 5}
		for n, want := range expected {
			result, err := subject.Fibonacci(n)
			require.NoError(t, err)
			t.Debug("F(%d) = %d", n, result)
			assert.Equal(t, want, result, "n was %d", n)
		}
	})

	t.Run("negative input is an error", func(t *T) {
		_, err := subject.Fibonacci(-1)
		require.Error(t, err)
		assert.ErrorIs(t, err, subject.ErrNegativeInput)
	})
}
