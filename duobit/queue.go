package duobit

import (
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"

	"github.com/rony4d/go-duobit/utils/endian"
)

// Queue packs variable width values into a masked buffer from both ends and reads them
// back in the order they were written.
type Queue struct {
	buf   *MaskedArray
	order endian.Order

	leftRead  int
	rightRead int
}

// NewQueue creates a queue of capacity bits. order describes how the byte slices handed to
// EnqueueLeft and EnqueueRight are laid out.
func NewQueue(capacity int, utils Utilities, order endian.Order) (*Queue, error) {
	buf, err := NewMasked(capacity, utils)
	if err != nil {
		return nil, err
	}
	return &Queue{
		buf:   buf,
		order: order,
	}, nil
}

// EnqueueLeft appends the numBits least significant bits of value to the left side.
func (q *Queue) EnqueueLeft(value []byte, numBits int) error {
	if value == nil {
		return fmt.Errorf("%w: value", ErrMissingInput)
	}
	return q.enqueue(Left, endian.ToBigEndian(value, q.order), numBits)
}

// EnqueueRight prepends the numBits least significant bits of value to the right side.
func (q *Queue) EnqueueRight(value []byte, numBits int) error {
	if value == nil {
		return fmt.Errorf("%w: value", ErrMissingInput)
	}
	return q.enqueue(Right, endian.ToBigEndian(value, q.order), numBits)
}

func (q *Queue) EnqueueLeftUint64(v uint64, numBits int) error {
	if numBits > 64 {
		return fmt.Errorf("%w: %d bits do not fit into uint64", ErrOutOfRange, numBits)
	}
	return q.enqueue(Left, bigendian.Uint64ToBytes(v), numBits)
}

func (q *Queue) EnqueueRightUint64(v uint64, numBits int) error {
	if numBits > 64 {
		return fmt.Errorf("%w: %d bits do not fit into uint64", ErrOutOfRange, numBits)
	}
	return q.enqueue(Right, bigendian.Uint64ToBytes(v), numBits)
}

func (q *Queue) enqueue(side Side, be []byte, numBits int) error {
	if numBits < 0 || numBits > 8*len(be) {
		return fmt.Errorf("%w: %d bits from a %d byte value", ErrOutOfRange, numBits, len(be))
	}
	if side == Left {
		return q.buf.SetLeftBits(be, 8*len(be)-numBits, q.buf.LeftLength(), numBits)
	}
	return q.buf.SetRightBits(be, 0, q.buf.RightLength(), numBits)
}

// DequeueLeft reads the next numBits bits of the left side, left-aligned.
func (q *Queue) DequeueLeft(numBits int) (*Array, error) {
	arr, err := q.ViewLeft(numBits)
	if err != nil {
		return nil, err
	}
	q.leftRead += numBits
	return arr, nil
}

// DequeueRight reads the next numBits bits of the right side, right-aligned.
func (q *Queue) DequeueRight(numBits int) (*Array, error) {
	arr, err := q.ViewRight(numBits)
	if err != nil {
		return nil, err
	}
	q.rightRead += numBits
	return arr, nil
}

func (q *Queue) DequeueLeftUint64(numBits int) (uint64, error) {
	if err := q.checkUnread(Left, numBits); err != nil {
		return 0, err
	}
	v, err := ToUint64(q.buf, Left, q.leftRead, numBits)
	if err != nil {
		return 0, err
	}
	q.leftRead += numBits
	return v, nil
}

func (q *Queue) DequeueRightUint64(numBits int) (uint64, error) {
	if err := q.checkUnread(Right, numBits); err != nil {
		return 0, err
	}
	v, err := ToUint64(q.buf, Right, q.rightRead, numBits)
	if err != nil {
		return 0, err
	}
	q.rightRead += numBits
	return v, nil
}

// ViewLeft returns the next numBits bits of the left side without consuming them.
func (q *Queue) ViewLeft(numBits int) (*Array, error) {
	if err := q.checkUnread(Left, numBits); err != nil {
		return nil, err
	}
	return q.buf.GetLeftBits(q.leftRead, numBits)
}

// ViewRight returns the next numBits bits of the right side without consuming them.
func (q *Queue) ViewRight(numBits int) (*Array, error) {
	if err := q.checkUnread(Right, numBits); err != nil {
		return nil, err
	}
	return q.buf.GetRightBits(q.rightRead, numBits)
}

func (q *Queue) SkipLeft(numBits int) error {
	if err := q.checkUnread(Left, numBits); err != nil {
		return err
	}
	q.leftRead += numBits
	return nil
}

func (q *Queue) SkipRight(numBits int) error {
	if err := q.checkUnread(Right, numBits); err != nil {
		return err
	}
	q.rightRead += numBits
	return nil
}

// NonReadLeftBits returns the number of written left bits not consumed yet.
func (q *Queue) NonReadLeftBits() int {
	return q.buf.LeftLength() - q.leftRead
}

// NonReadRightBits returns the number of written right bits not consumed yet.
func (q *Queue) NonReadRightBits() int {
	return q.buf.RightLength() - q.rightRead
}

func (q *Queue) RemainingCapacity() int {
	return q.buf.RemainingCapacity()
}

// Mask returns the bits written so far, read or not.
func (q *Queue) Mask() ReadOnly {
	return q.buf.Mask()
}

func (q *Queue) MaskOfUnusedBits() (*Array, error) {
	return q.buf.GetMaskOfUnusedBits()
}

// Bytes returns a copy of the packed buffer.
func (q *Queue) Bytes() []byte {
	return q.buf.ToByteArray()
}

func (q *Queue) checkUnread(side Side, numBits int) error {
	unread := q.NonReadLeftBits()
	if side == Right {
		unread = q.NonReadRightBits()
	}
	if numBits < 0 || numBits > unread {
		err := fmt.Errorf("%w: %d %s bits requested, %d unread", ErrOutOfRange, numBits, side, unread)
		logger.Debug("Rejected dequeue", "side", side, "bits", numBits, "err", err)
		return err
	}
	return nil
}
