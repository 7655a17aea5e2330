package subject

// Branch descriptions returned by DescribeNumber.
const (
	DescPositive    = "Positive"
	DescNonPositive = "Non-Positive"
	DescEven        = "Even"
	DescOdd         = "Odd"
)

// DescribeNumber walks the sign and parity branches for x and returns the
// description of each branch taken, in order. Positive numbers take a nested
// parity branch; zero and negatives take the single non-positive branch.
func DescribeNumber(x int) []string {
	if x > 0 {
		if x%2 == 0 {
			return []string{DescPositive, DescEven}
		}
		return []string{DescPositive, DescOdd}
	}
	return []string{DescNonPositive}
}
