package bits

// This package implements the low-level byte and bit helpers used by the duo bit buffer.
// Everything here is stateless: the functions can be called directly, or through the
// zero-size Standard value when a caller wants to hand them around as interfaces.
//
// Bit numbering:
// - Global bit indexes are MSB-0: bit 0 is the most significant bit of byte 0.
// - Masks address bits inside a single byte LSB-0: position 0 is the least significant bit.

type (
	// Masker produces single-byte bit masks.
	Masker interface {
		HighBitsMask(n int) (byte, error)
		LowBitsMask(n int) (byte, error)
		SingleBitMask(lsb0Index int) (byte, error)
	}

	// Arithmetic converts between bit and byte positions and shifts bytes across
	// byte boundaries.
	Arithmetic interface {
		ByteIndexOf(bitIndex int) int
		MinBytesForBits(n int) int
		BitsUsedInLastByte(n int) (int, error)
		UnusedBitsInByteArray(n int) (int, error)
		InvertBytes(b []byte) []byte
		ShiftByteWithBorrow(b []byte, index int, amount int) (byte, error)
		AlignAndMergeBytes(src byte, srcMsbIndex int, dst byte, dstLsbIndex int) (byte, error)
	}

	// Counter calculates the Hamming weight of a byte sequence.
	Counter interface {
		CountSetBits(b []byte) int
	}

	// Standard is the canonical stateless implementation of Masker, Arithmetic and Counter.
	Standard struct{}
)

var (
	_ Masker     = Standard{}
	_ Arithmetic = Standard{}
	_ Counter    = Standard{}
)

func (Standard) HighBitsMask(n int) (byte, error) { return HighBitsMask(n) }
func (Standard) LowBitsMask(n int) (byte, error) { return LowBitsMask(n) }
func (Standard) SingleBitMask(lsb0Index int) (byte, error) { return SingleBitMask(lsb0Index) }

func (Standard) ByteIndexOf(bitIndex int) int { return ByteIndexOf(bitIndex) }
func (Standard) MinBytesForBits(n int) int { return MinBytesForBits(n) }
func (Standard) BitsUsedInLastByte(n int) (int, error) { return BitsUsedInLastByte(n) }
func (Standard) UnusedBitsInByteArray(n int) (int, error) { return UnusedBitsInByteArray(n) }
func (Standard) InvertBytes(b []byte) []byte { return InvertBytes(b) }

func (Standard) ShiftByteWithBorrow(b []byte, index int, amount int) (byte, error) {
	return ShiftByteWithBorrow(b, index, amount)
}

func (Standard) AlignAndMergeBytes(src byte, srcMsbIndex int, dst byte, dstLsbIndex int) (byte, error) {
	return AlignAndMergeBytes(src, srcMsbIndex, dst, dstLsbIndex)
}

func (Standard) CountSetBits(b []byte) int { return CountSetBits(b) }
