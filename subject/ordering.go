package subject

// IsNonDecreasing reports whether values is sorted in non-decreasing order,
// that is, values[i] >= values[i-1] for every i. Empty and single-element
// slices are trivially sorted. The slice is scanned once and never modified.
func IsNonDecreasing(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
