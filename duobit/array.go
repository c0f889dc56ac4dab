package duobit

import (
	"fmt"
)

// Side selects one of the two fill directions of a buffer.
type Side int

const (
	// Left fills from global bit 0 towards the end of the buffer.
	Left Side = iota
	// Right fills from the last bit of the capacity towards the start.
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

type (
	// ReadOnly is the read side of a duo bit buffer.
	ReadOnly interface {
		Capacity() int
		Length() int
		LeftLength() int
		RightLength() int
		RemainingCapacity() int

		GetBit(i int) byte
		Bit(i int) bool
		GetLeftBits(index, numBits int) (*Array, error)
		GetRightBits(index, numBits int) (*Array, error)

		ToByteArray() []byte
	}

	// Writeable is a buffer that can also be filled.
	Writeable interface {
		ReadOnly

		SetBit(i int)
		ClearBit(i int)
		SetLeftBits(source []byte, sourceBitIndex, destBitIndex, numBits int) error
		SetRightBits(source []byte, sourceBitIndex, destBitIndex, numBits int) error
	}
)

var (
	_ Writeable = (*Array)(nil)
	_ Writeable = (*MaskedArray)(nil)
)

// Array is a fixed capacity bit buffer filled from both ends.
// Bits are addressed MSB-0: bit 0 is the most significant bit of the first byte.
// Left writes are appended after the last left bit, right writes are prepended before the
// first right bit, and the two regions may never overlap.
type Array struct {
	bytes    []byte
	capacity int

	leftLength  int
	rightLength int

	utils Utilities
}

// New allocates a zeroed buffer able to hold capacity bits.
func New(capacity int, utils Utilities) (*Array, error) {
	if utils == nil {
		return nil, fmt.Errorf("%w: utilities", ErrMissingInput)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrOutOfRange, capacity)
	}
	return &Array{
		bytes:    make([]byte, utils.MinBytesForBits(capacity)),
		capacity: capacity,
		utils:    utils,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(capacity int, utils Utilities) *Array {
	a, err := New(capacity, utils)
	if err != nil {
		logger.Error("Failed to allocate bit buffer", "capacity", capacity, "err", err)
		panic(err)
	}
	return a
}

func (a *Array) Capacity() int {
	return a.capacity
}

func (a *Array) LeftLength() int {
	return a.leftLength
}

func (a *Array) RightLength() int {
	return a.rightLength
}

// Length is the number of bits written from both sides.
func (a *Array) Length() int {
	return a.leftLength + a.rightLength
}

// RemainingCapacity is the number of bits which may still be written from either side.
func (a *Array) RemainingCapacity() int {
	return a.capacity - a.Length()
}

// locate returns the byte index and the intra-byte mask of a global bit index.
// Indexes past the backing bytes are left to the runtime bounds check.
func (a *Array) locate(i int) (int, byte) {
	mask, err := a.utils.SingleBitMask(7 - i&7)
	if err != nil {
		panic(err)
	}
	return a.utils.ByteIndexOf(i), mask
}

// GetBit returns 1 if bit i is set and 0 otherwise.
func (a *Array) GetBit(i int) byte {
	b, mask := a.locate(i)
	if a.bytes[b]&mask != 0 {
		return 1
	}
	return 0
}

// Bit reports whether bit i is set.
func (a *Array) Bit(i int) bool {
	return a.GetBit(i) == 1
}

func (a *Array) SetBit(i int) {
	b, mask := a.locate(i)
	a.bytes[b] |= mask
}

func (a *Array) ClearBit(i int) {
	b, mask := a.locate(i)
	a.bytes[b] &^= mask
}

// SetLeftBits appends numBits bits of source, starting at the MSB-0 bit sourceBitIndex,
// to the left side. destBitIndex must equal LeftLength.
func (a *Array) SetLeftBits(source []byte, sourceBitIndex, destBitIndex, numBits int) error {
	err := a.validateWrite(source, sourceBitIndex, destBitIndex, numBits, a.leftLength)
	if err != nil {
		logger.Debug("Rejected left write", "src", sourceBitIndex, "dest", destBitIndex, "bits", numBits, "err", err)
		return err
	}
	err = a.copyBits(a.bytes, destBitIndex, source, sourceBitIndex, numBits)
	if err != nil {
		return err
	}
	a.leftLength += numBits
	return nil
}

// SetRightBits prepends numBits bits of source to the right side. Both indexes count from
// the right end: sourceBitIndex 0 is the least significant bit of the last source byte and
// destBitIndex must equal RightLength. The copied bits keep their order.
func (a *Array) SetRightBits(source []byte, sourceBitIndex, destBitIndex, numBits int) error {
	err := a.validateWrite(source, sourceBitIndex, destBitIndex, numBits, a.rightLength)
	if err != nil {
		logger.Debug("Rejected right write", "src", sourceBitIndex, "dest", destBitIndex, "bits", numBits, "err", err)
		return err
	}
	srcStart := 8*len(source) - sourceBitIndex - numBits
	dstStart := a.capacity - a.rightLength - numBits
	err = a.copyBits(a.bytes, dstStart, source, srcStart, numBits)
	if err != nil {
		return err
	}
	a.rightLength += numBits
	return nil
}

// GetLeftBits copies numBits bits starting at global bit index into a new buffer of
// capacity numBits. The bits are left-aligned and the result's LeftLength is numBits.
func (a *Array) GetLeftBits(index, numBits int) (*Array, error) {
	if err := a.validateRead(index, numBits); err != nil {
		return nil, err
	}
	out, err := New(numBits, a.utils)
	if err != nil {
		return nil, err
	}
	if err := out.SetLeftBits(a.bytes, index, 0, numBits); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRightBits copies the numBits bits which precede the right offset index into a new
// buffer of whole bytes. The bits are right-aligned and the result's RightLength is numBits.
func (a *Array) GetRightBits(index, numBits int) (*Array, error) {
	if err := a.validateRead(index, numBits); err != nil {
		return nil, err
	}
	out, err := New(8*a.utils.MinBytesForBits(numBits), a.utils)
	if err != nil {
		return nil, err
	}
	// padding bits after the capacity count as source bits from the right end
	padding := 8*len(a.bytes) - a.capacity
	if err := out.SetRightBits(a.bytes, index+padding, 0, numBits); err != nil {
		return nil, err
	}
	return out, nil
}

// ToByteArray returns a copy of the backing bytes.
func (a *Array) ToByteArray() []byte {
	return append(make([]byte, 0, len(a.bytes)), a.bytes...)
}

func (a *Array) validateWrite(source []byte, sourceBitIndex, destBitIndex, numBits, fill int) error {
	if source == nil {
		return fmt.Errorf("%w: source bytes", ErrMissingInput)
	}
	if sourceBitIndex < 0 || destBitIndex < 0 || numBits < 0 {
		return fmt.Errorf("%w: negative argument (source %d, dest %d, bits %d)",
			ErrOutOfRange, sourceBitIndex, destBitIndex, numBits)
	}
	if numBits > a.RemainingCapacity() {
		return fmt.Errorf("%w: %d bits requested, %d remaining", ErrOutOfRange, numBits, a.RemainingCapacity())
	}
	if numBits > 8*len(source)-sourceBitIndex {
		return fmt.Errorf("%w: source holds %d bits, %d requested from bit %d",
			ErrOutOfRange, 8*len(source), numBits, sourceBitIndex)
	}
	if destBitIndex != fill {
		return fmt.Errorf("%w: destination bit %d, writes must continue at %d", ErrOutOfRange, destBitIndex, fill)
	}
	return nil
}

func (a *Array) validateRead(index, numBits int) error {
	if index < 0 || numBits < 0 || index > a.capacity || numBits > a.capacity-index {
		err := fmt.Errorf("%w: %d bits from bit %d outside capacity %d", ErrOutOfRange, numBits, index, a.capacity)
		logger.Debug("Rejected read", "index", index, "bits", numBits, "err", err)
		return err
	}
	return nil
}
