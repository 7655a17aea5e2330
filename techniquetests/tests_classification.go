package techniquetests

import (
	"github.com/stretchr/testify/assert"

	"github.com/qa-exercises/testing-technique-demos/subject"
)

// DoClassificationTests demonstrates the intersection of two partitions of
// the integers (sign and parity), in the manner of a Venn diagram: four
// overlap regions plus zero, which belongs to neither sign region.
func DoClassificationTests(t *T) {
	t.Run("every region has its own label", func(t *T) {
		cases := []struct {
			input    int
			expected subject.Classification
		}{
			{2, subject.PositiveEven},
			{1, subject.PositiveOdd},
			{-2, subject.NegativeEven},
			{-1, subject.NegativeOdd},
		}
		for _, c := range cases {
			label := subject.ClassifyNumber(c.input)
			t.Debug("%d is classified as %q", c.input, label)
			assert.Equal(t, c.expected, label, "input was %d", c.input)
		}
	})

	t.Run("zero falls outside every region", func(t *T) {
		assert.Equal(t, subject.Unclassified, subject.ClassifyNumber(0))
	})
}
