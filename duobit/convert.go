package duobit

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"

	"github.com/rony4d/go-duobit/utils/endian"
)

// ToUint64 decodes numBits bits (at most 64) as an unsigned big-endian integer.
// For the Left side index is a global bit index; for the Right side it is a right offset.
func ToUint64(arr ReadOnly, side Side, index, numBits int) (uint64, error) {
	if arr == nil {
		return 0, fmt.Errorf("%w: buffer", ErrMissingInput)
	}
	if numBits < 0 || numBits > 64 {
		return 0, fmt.Errorf("%w: %d bits do not fit into uint64", ErrOutOfRange, numBits)
	}

	var aligned *Array
	switch side {
	case Left:
		run, err := arr.GetLeftBits(index, numBits)
		if err != nil {
			return 0, err
		}
		aligned, err = rightAlign(run, numBits)
		if err != nil {
			return 0, err
		}
	case Right:
		run, err := arr.GetRightBits(index, numBits)
		if err != nil {
			return 0, err
		}
		aligned = run
	default:
		return 0, fmt.Errorf("%w: unknown side %s", ErrOutOfRange, side)
	}

	return endian.Uint64(aligned.bytes, endian.BigEndian)
}

// FromUint64 returns the numBits least significant bits of v, right-aligned in the
// minimum number of big-endian bytes.
func FromUint64(v uint64, numBits int) ([]byte, error) {
	if numBits < 0 || numBits > 64 {
		return nil, fmt.Errorf("%w: %d bits do not fit into uint64", ErrOutOfRange, numBits)
	}
	utils := DefaultUtilities()
	out, err := New(8*utils.MinBytesForBits(numBits), utils)
	if err != nil {
		return nil, err
	}
	if err := out.SetRightBits(bigendian.Uint64ToBytes(v), 0, 0, numBits); err != nil {
		return nil, err
	}
	return out.bytes, nil
}

// rightAlign moves the numBits left-aligned bits of run to the end of a whole-byte buffer.
func rightAlign(run *Array, numBits int) (*Array, error) {
	aligned, err := New(8*run.utils.MinBytesForBits(numBits), run.utils)
	if err != nil {
		return nil, err
	}
	err = aligned.SetRightBits(run.bytes, 8*len(run.bytes)-numBits, 0, numBits)
	if err != nil {
		return nil, err
	}
	return aligned, nil
}
