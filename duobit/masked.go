package duobit

import (
	"bytes"
	"fmt"
)

// MaskedArray is an Array which also remembers which bits were written.
// Bit i of the mask is set iff bit i of the data was written and not cleared since.
type MaskedArray struct {
	data *Array
	mask *Array

	utils Utilities
}

// NewMasked allocates a masked buffer able to hold capacity bits.
func NewMasked(capacity int, utils Utilities) (*MaskedArray, error) {
	data, err := New(capacity, utils)
	if err != nil {
		return nil, err
	}
	mask, err := New(capacity, utils)
	if err != nil {
		return nil, err
	}
	return &MaskedArray{
		data:  data,
		mask:  mask,
		utils: utils,
	}, nil
}

func (m *MaskedArray) Capacity() int {
	return m.data.Capacity()
}

func (m *MaskedArray) Length() int {
	return m.data.Length()
}

func (m *MaskedArray) LeftLength() int {
	return m.data.LeftLength()
}

func (m *MaskedArray) RightLength() int {
	return m.data.RightLength()
}

// RemainingCapacity counts the bits not yet marked as written.
func (m *MaskedArray) RemainingCapacity() int {
	return m.data.Capacity() - m.utils.CountSetBits(m.mask.bytes)
}

func (m *MaskedArray) GetBit(i int) byte {
	return m.data.GetBit(i)
}

func (m *MaskedArray) Bit(i int) bool {
	return m.data.Bit(i)
}

func (m *MaskedArray) SetBit(i int) {
	m.data.SetBit(i)
	m.mask.SetBit(i)
}

func (m *MaskedArray) ClearBit(i int) {
	m.data.ClearBit(i)
	m.mask.ClearBit(i)
}

func (m *MaskedArray) GetLeftBits(index, numBits int) (*Array, error) {
	return m.data.GetLeftBits(index, numBits)
}

func (m *MaskedArray) GetRightBits(index, numBits int) (*Array, error) {
	return m.data.GetRightBits(index, numBits)
}

func (m *MaskedArray) ToByteArray() []byte {
	return m.data.ToByteArray()
}

// SetLeftBits writes the data bits and marks the same range in the mask.
func (m *MaskedArray) SetLeftBits(source []byte, sourceBitIndex, destBitIndex, numBits int) error {
	if err := m.checkRemaining(numBits); err != nil {
		return err
	}
	if err := m.data.SetLeftBits(source, sourceBitIndex, destBitIndex, numBits); err != nil {
		return err
	}
	return m.mask.SetLeftBits(solidRun(m.utils.MinBytesForBits(numBits)), 0, destBitIndex, numBits)
}

// SetRightBits writes the data bits and marks the same range in the mask.
func (m *MaskedArray) SetRightBits(source []byte, sourceBitIndex, destBitIndex, numBits int) error {
	if err := m.checkRemaining(numBits); err != nil {
		return err
	}
	if err := m.data.SetRightBits(source, sourceBitIndex, destBitIndex, numBits); err != nil {
		return err
	}
	return m.mask.SetRightBits(solidRun(m.utils.MinBytesForBits(numBits)), 0, destBitIndex, numBits)
}

// Mask exposes the written-bits mask.
func (m *MaskedArray) Mask() ReadOnly {
	return m.mask
}

// GetMaskOfUnusedBits returns a new buffer with a bit set for every bit of the capacity
// which has not been written.
func (m *MaskedArray) GetMaskOfUnusedBits() (*Array, error) {
	unused, err := New(m.data.Capacity(), m.utils)
	if err != nil {
		return nil, err
	}
	inverted := m.utils.InvertBytes(m.mask.bytes)
	if err := unused.SetLeftBits(inverted, 0, 0, m.data.Capacity()); err != nil {
		return nil, err
	}
	return unused, nil
}

func (m *MaskedArray) checkRemaining(numBits int) error {
	if remaining := m.RemainingCapacity(); numBits > remaining {
		err := fmt.Errorf("%w: %d bits requested, %d unwritten", ErrOutOfRange, numBits, remaining)
		logger.Debug("Rejected masked write", "bits", numBits, "err", err)
		return err
	}
	return nil
}

// solidRun returns n bytes with every bit set.
func solidRun(n int) []byte {
	return bytes.Repeat([]byte{0xff}, n)
}
