package subject

// ProcessValue classifies an integer by sign class: negative values are
// Failure, zero and positive values are Success. The three equivalence
// classes (negative, zero, positive) behave uniformly within themselves.
func ProcessValue(value int) Status {
	if value < 0 {
		return Failure
	}
	return Success
}
