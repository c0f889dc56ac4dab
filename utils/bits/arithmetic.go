package bits

import "fmt"

// ByteIndexOf returns the index of the byte holding the given MSB-0 bit index.
// The arithmetic shift floors, so -1 maps to byte -1.
func ByteIndexOf(bitIndex int) int {
	return bitIndex >> 3
}

// MinBytesForBits returns the minimum number of bytes able to store n bits.
// Example: 9 bits need 2 bytes.
func MinBytesForBits(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 7) / 8
}

// BitsUsedInLastByte returns how many bits of the final byte are occupied when n bits
// are packed from the start of a byte array. A completely filled final byte reports 8.
func BitsUsedInLastByte(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative bit count %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return 0, nil
	}
	if rem := n % 8; rem != 0 {
		return rem, nil
	}
	return 8, nil
}

// UnusedBitsInByteArray returns the number of padding bits in the final byte of a
// left-aligned array holding n bits (or in the first byte of a right-aligned one).
func UnusedBitsInByteArray(n int) (int, error) {
	used, err := BitsUsedInLastByte(n)
	if err != nil {
		return 0, err
	}
	return 8 - used, nil
}

// InvertBytes returns a copy of b with every bit flipped.
func InvertBytes(b []byte) []byte {
	inverted := make([]byte, len(b))
	for i, v := range b {
		inverted[i] = ^v
	}
	return inverted
}

// ShiftByteWithBorrow returns b[index] shifted by amount bit positions, with the vacated
// positions refilled from the neighbouring byte instead of zeroes. Shifting every byte
// of a run this way shifts the run as a whole.
//
//   - amount > 0 shifts towards the LSB; the low bits of b[index-1] fill the top.
//   - amount < 0 shifts towards the MSB; the high bits of b[index+1] fill the bottom.
//
// index may be -1 or len(b) to address a synthetic zero byte outside the slice, which is
// how the first and the spill-over byte of a shifted run are produced.
func ShiftByteWithBorrow(b []byte, index int, amount int) (byte, error) {
	if b == nil {
		return 0, fmt.Errorf("%w: no bytes to shift", ErrMissingInput)
	}
	if index < -1 || index > len(b) {
		return 0, fmt.Errorf("%w: byte index %d outside [-1, %d]", ErrOutOfRange, index, len(b))
	}
	if amount < -8 || amount > 8 {
		return 0, fmt.Errorf("%w: shift amount %d", ErrOutOfRange, amount)
	}

	var shifted byte
	if index >= 0 && index < len(b) {
		shifted = b[index]
	}

	if amount < 0 {
		n := uint(-amount)
		var borrowed byte
		if index+1 < len(b) {
			borrowed = b[index+1] >> (8 - n)
		}
		return shifted<<n | borrowed, nil
	}

	n := uint(amount)
	var borrowed byte
	if index > 0 {
		borrowed = b[index-1] << (8 - n)
	}
	return shifted>>n | borrowed, nil
}

// AlignAndMergeBytes appends the bits of src starting at MSB-0 position srcMsbIndex to the
// bits of dst ending at MSB-0 position dstLsbIndex. Everything after dstLsbIndex in dst is
// discarded, as are src bits pushed out past the LSB.
//
// Example: (0b00011100, 3, 0b11100000, 2) -> 0b11111100.
func AlignAndMergeBytes(src byte, srcMsbIndex int, dst byte, dstLsbIndex int) (byte, error) {
	srcMask, err := HighBitsMask(srcMsbIndex)
	if err != nil {
		return 0, err
	}
	dstMask, err := HighBitsMask(dstLsbIndex + 1)
	if err != nil {
		return 0, err
	}

	src &= ^srcMask

	delta := dstLsbIndex - srcMsbIndex + 1
	if delta < 0 {
		src <<= uint(-delta)
	} else {
		src >>= uint(delta)
	}

	return dst&dstMask | src, nil
}
