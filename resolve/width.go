package resolve

import "math/bits"

// BitWidth returns the number of select bits needed to distinguish `n` items:
// the smallest k such that 2^k >= n.  It never returns less than 1 since every
// mux and functional unit gets a select port, even when it has a single input
// or operation (or none at all).
func BitWidth(n int) int {
	if n <= 1 {
		return 1
	}

	return bits.Len(uint(n - 1))
}
