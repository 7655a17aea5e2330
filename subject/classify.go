package subject

// Classification is one of the five fixed labels produced by ClassifyNumber.
type Classification string

const (
	PositiveEven Classification = "Positive and Even"
	PositiveOdd  Classification = "Positive and Odd"
	NegativeEven Classification = "Negative and Even"
	NegativeOdd  Classification = "Negative and Odd"
	// Unclassified is returned for zero, which is neither positive nor
	// negative.
	Unclassified Classification = "Unclassified"
)

// ClassifyNumber labels an integer by the intersection of its sign and
// parity regions.
func ClassifyNumber(value int) Classification {
	switch {
	case value > 0 && value%2 == 0:
		return PositiveEven
	case value > 0:
		return PositiveOdd
	case value < 0 && value%2 == 0:
		return NegativeEven
	case value < 0:
		return NegativeOdd
	default:
		return Unclassified
	}
}
