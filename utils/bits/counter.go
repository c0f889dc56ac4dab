package bits

// CountSetBits returns the number of bits set to one across all of b.
func CountSetBits(b []byte) int {
	count := 0
	for _, v := range b {
		for v != 0 {
			// clear the lowest set bit
			v &= v - 1
			count++
		}
	}
	return count
}
