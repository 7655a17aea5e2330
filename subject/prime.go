package subject

// IsPrime reports whether n is prime, using 6k±1 trial division: after
// eliminating multiples of 2 and 3, only candidate divisors of the form
// 6k-1 and 6k+1 up to √n need checking. Runs in O(√n).
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
