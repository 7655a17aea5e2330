package techniquetests

import (
	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoPrimalityTests exercises the 6k±1 trial-division primality check.
func DoPrimalityTests(t *T) {
	t.Run("small primes", func(t *T) {
		for _, n := range []int{2, 3, 5, 13} {
			t.Debug("%d should be prime", n)
			assert.True(t, subject.IsPrime(n), "n was %d", n)
		}
	})

	t.Run("small composites", func(t *T) {
		for _, n := range []int{4, 10} {
			assert.False(t, subject.IsPrime(n), "n was %d", n)
		}
	})

	t.Run("numbers below two are never prime", func(t *T) {
		for _, n := range []int{1, 0, -7} {
			assert.False(t, subject.IsPrime(n), "n was %d", n)
		}
	})
}
