package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEvaluateCombinationRepresentativePairs(t *testing.T) {
	tests := []struct {
		a        int
		b        bool
		expected Status
	}{
		{0, true, Success},   // even with even required
		{1, false, Success},  // odd with odd required
		{2, false, Failure},  // even but odd required
		{3, true, Failure},   // odd but even required
		{-1, true, Failure},  // below range
		{11, false, Failure}, // above range
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, EvaluateCombination(test.a, test.b),
			"inputs were (%d, %v)", test.a, test.b)
	}
}

func TestEvaluateCombinationNeverSucceedsOutOfRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		outOfRange := func(v int) bool { return v < 0 || v > 10 }
		a := rapid.Int().Filter(outOfRange).Draw(rt, "a")
		b := rapid.Bool().Draw(rt, "b")
		assert.Equal(t, Failure, EvaluateCombination(a, b))
	})
}

func TestEvaluateCombinationParityRuleInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, 10).Draw(rt, "a")
		b := rapid.Bool().Draw(rt, "b")
		expected := Failure
		if (a%2 == 0) == b {
			expected = Success
		}
		assert.Equal(t, expected, EvaluateCombination(a, b), "inputs were (%d, %v)", a, b)
	})
}
