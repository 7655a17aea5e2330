package subject

import "fmt"

// Fibonacci computes F(n) iteratively with F(0)=0 and F(1)=1, in O(n) time
// and O(1) space. Negative n yields ErrNegativeInput.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci of %d: %w", n, ErrNegativeInput)
	}
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}
