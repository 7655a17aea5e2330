package subject

// EvaluateCombination validates a two-parameter combination. The combination
// is valid when a is within [0, 10] and the parity of a agrees with b:
// b true requires a even, b false requires a odd.
func EvaluateCombination(a int, b bool) Status {
	if a < 0 || a > 10 {
		return Failure
	}
	if (a%2 == 0) == b {
		return Success
	}
	return Failure
}
