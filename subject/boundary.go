package subject

// The closed range accepted by CheckRange.
const (
	RangeMin = 1
	RangeMax = 100
)

// CheckRange reports Success iff value lies in the closed range
// [RangeMin, RangeMax].
func CheckRange(value int) Status {
	if value < RangeMin || value > RangeMax {
		return Failure
	}
	return Success
}
