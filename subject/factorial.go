package subject

import "fmt"

// Factorial computes n! iteratively in O(n) time. Negative n is outside the
// function's domain and yields ErrNegativeInput. Large n will overflow int;
// callers are expected to stay within small arguments.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrNegativeInput)
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}
