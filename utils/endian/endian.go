package endian

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
)

// endian.go normalizes byte-slice encoded integers before they are packed into, or after
// they are extracted from, a bit buffer. The buffer itself only understands MSB-first runs
// of bits, so everything is funnelled through big-endian.

// Order describes how the bytes of a multi-byte integer are laid out.
type Order int

const (
	// BigEndian stores the most significant byte first.
	BigEndian Order = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

// ErrTooLong is returned when a byte slice does not fit the requested fixed width.
var ErrTooLong = errors.New("value does not fit into 8 bytes")

func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "big"/"little" onto an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "big", "be", "":
		return BigEndian, nil
	case "little", "le":
		return LittleEndian, nil
	}
	return BigEndian, fmt.Errorf("unknown byte order %q", s)
}

// Reversed creates a NEW slice containing the bytes of b in reverse order.
func Reversed(b []byte) []byte {
	reversed := make([]byte, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}
	return reversed
}

// ToBigEndian returns a big-endian copy of b, which is laid out in the given order.
// The input is never modified.
func ToBigEndian(b []byte, order Order) []byte {
	if order == LittleEndian {
		return Reversed(b)
	}
	return append(make([]byte, 0, len(b)), b...)
}

// FromBigEndian is the inverse of ToBigEndian.
func FromBigEndian(b []byte, order Order) []byte {
	return ToBigEndian(b, order)
}

// Uint64 decodes up to 8 bytes laid out in the given order. Shorter inputs are treated as
// if the missing high-order bytes were zero.
func Uint64(b []byte, order Order) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("%w: got %d bytes", ErrTooLong, len(b))
	}
	be := ToBigEndian(b, order)

	var padded [8]byte
	copy(padded[8-len(be):], be)
	return bigendian.BytesToUint64(padded[:]), nil
}

// Uint64Bytes encodes v as 8 bytes in the given order.
func Uint64Bytes(v uint64, order Order) []byte {
	return FromBigEndian(bigendian.Uint64ToBytes(v), order)
}
