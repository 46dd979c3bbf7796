package shape

// AreCoprime reports whether a and b share no divisor in [2, min(a, b)].
// Equal arguments are never coprime, including AreCoprime(1, 1).
func AreCoprime(a, b int) bool {
	if a == b {
		return false
	}
	for x := 2; x <= a && x <= b; x++ {
		if a%x == 0 && b%x == 0 {
			return false
		}
	}
	return true
}
