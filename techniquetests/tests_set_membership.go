package techniquetests

import (
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoSetMembershipTests demonstrates testing feature combinations as subsets
// of the set {Feature A, Feature B, Feature C}.
func DoSetMembershipTests(t *T) {
	t.Run("representative combinations report their active features", func(t *T) {
		combinations := []struct {
			flags    [3]bool
			expected []string
		}{
			{[3]bool{true, true, false}, []string{subject.FeatureA, subject.FeatureB}},
			{[3]bool{true, false, true}, []string{subject.FeatureA, subject.FeatureC}},
			{[3]bool{false, true, true}, []string{subject.FeatureB, subject.FeatureC}},
			{[3]bool{true, true, true}, []string{subject.FeatureA, subject.FeatureB, subject.FeatureC}},
		}
		for _, c := range combinations {
			active := subject.ActiveFeatures(c.flags[0], c.flags[1], c.flags[2])
			t.Debug("testing %s", strings.Join(active, " and "))
			assert.Equal(t, c.expected, active, "flags were %v", c.flags)
		}
	})

	t.Run("all eight subsets are distinguishable", func(t *T) {
		seen := make(map[string]bool)
		for i := 0; i < 8; i++ {
			active := subject.ActiveFeatures(i&4 != 0, i&2 != 0, i&1 != 0)
			seen[strings.Join(active, ",")] = true
		}
		assert.Len(t, seen, 8, "each subset of the feature set should be distinct")
	})

	t.Run("no features enabled yields the empty set", func(t *T) {
		assert.Empty(t, subject.ActiveFeatures(false, false, false))
	})
}
