package bits

import "fmt"

// HighBitsMask returns a byte with the n high-order bits set.
// Example: HighBitsMask(3) -> 0b11100000.
func HighBitsMask(n int) (byte, error) {
	if n < 0 || n > 8 {
		return 0, fmt.Errorf("%w: high bits mask width %d", ErrOutOfRange, n)
	}
	// 0xff00 >> n slides n ones into the low byte from above.
	return byte(uint(0xff00) >> uint(n)), nil
}

// LowBitsMask returns a byte with the n low-order bits set.
// Example: LowBitsMask(3) -> 0b00000111.
func LowBitsMask(n int) (byte, error) {
	if n < 0 || n > 8 {
		return 0, fmt.Errorf("%w: low bits mask width %d", ErrOutOfRange, n)
	}
	return byte(uint(1)<<uint(n) - 1), nil
}

// SingleBitMask returns a byte with only the bit at the given LSB-0 position set.
func SingleBitMask(lsb0Index int) (byte, error) {
	if lsb0Index < 0 || lsb0Index > 7 {
		return 0, fmt.Errorf("%w: bit position %d is not inside a single byte", ErrOutOfRange, lsb0Index)
	}
	return byte(1) << uint(lsb0Index), nil
}
