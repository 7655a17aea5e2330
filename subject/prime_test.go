package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsPrimeKnownValues(t *testing.T) {
	for _, n := range []int{2, 3, 5, 13} {
		assert.True(t, IsPrime(n), "%d is prime", n)
	}
	for _, n := range []int{4, 10} {
		assert.False(t, IsPrime(n), "%d is composite", n)
	}
}

func TestIsPrimeRejectsEverythingBelowTwo(t *testing.T) {
	for _, n := range []int{1, 0, -1, -2, -13} {
		assert.False(t, IsPrime(n), "n was %d", n)
	}
}

// naiveIsPrime is the oracle: plain trial division by every candidate up to √n.
func naiveIsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeAgreesWithNaiveTrialDivision(t *testing.T) {
	for n := -10; n <= 1000; n++ {
		assert.Equal(t, naiveIsPrime(n), IsPrime(n), "n was %d", n)
	}

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(-1000, 1_000_000).Draw(rt, "n")
		assert.Equal(t, naiveIsPrime(n), IsPrime(n), "n was %d", n)
	})
}
