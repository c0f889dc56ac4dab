package bits

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMasks verifies the three mask primitives over their whole domain.
func TestMasks(t *testing.T) {
	high := []byte{0x00, 0x80, 0xC0, 0xE0, 0xF0, 0xF8, 0xFC, 0xFE, 0xFF}
	low := []byte{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}

	for n := 0; n <= 8; n++ {
		got, err := HighBitsMask(n)
		require.NoError(t, err)
		assert.Equalf(t, high[n], got, "HighBitsMask(%d)", n)

		got, err = LowBitsMask(n)
		require.NoError(t, err)
		assert.Equalf(t, low[n], got, "LowBitsMask(%d)", n)
	}

	for i := 0; i < 8; i++ {
		got, err := SingleBitMask(i)
		require.NoError(t, err)
		assert.Equalf(t, byte(1)<<uint(i), got, "SingleBitMask(%d)", i)
	}
}

// TestMasks_OutOfRange checks that every mask rejects arguments outside its domain.
func TestMasks_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 9} {
		_, err := HighBitsMask(n)
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = LowBitsMask(n)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
	for _, i := range []int{-1, 8, 9} {
		_, err := SingleBitMask(i)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestByteIndexOf(t *testing.T) {
	cases := map[int]int{-9: -2, -8: -1, -1: -1, 0: 0, 7: 0, 8: 1, 15: 1, 16: 2, 23: 2, 24: 3}
	for bit, exp := range cases {
		assert.Equalf(t, exp, ByteIndexOf(bit), "ByteIndexOf(%d)", bit)
	}
}

func TestMinBytesForBits(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 15: 2, 16: 2, 17: 3, 24: 3, 25: 4}
	for n, exp := range cases {
		assert.Equalf(t, exp, MinBytesForBits(n), "MinBytesForBits(%d)", n)
	}
}

// TestBitsUsedInLastByte covers the "full last byte reports 8" rule and its complement.
func TestBitsUsedInLastByte(t *testing.T) {
	tests := []struct {
		n      int
		used   int
		unused int
	}{
		{0, 0, 8},
		{1, 1, 7},
		{7, 7, 1},
		{8, 8, 0},
		{9, 1, 7},
		{14, 6, 2},
		{16, 8, 0},
		{17, 1, 7},
		{23, 7, 1},
		{24, 8, 0},
	}

	for _, tc := range tests {
		used, err := BitsUsedInLastByte(tc.n)
		require.NoError(t, err)
		assert.Equalf(t, tc.used, used, "BitsUsedInLastByte(%d)", tc.n)

		unused, err := UnusedBitsInByteArray(tc.n)
		require.NoError(t, err)
		assert.Equalf(t, tc.unused, unused, "UnusedBitsInByteArray(%d)", tc.n)
	}

	_, err := BitsUsedInLastByte(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = UnusedBitsInByteArray(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInvertBytes(t *testing.T) {
	tests := []struct {
		in, exp []byte
	}{
		{[]byte{}, []byte{}},
		{[]byte{0xFF}, []byte{0x00}},
		{[]byte{0x89, 0xC7}, []byte{0x76, 0x38}},
		{[]byte{0x00, 0x01, 0x02}, []byte{0xFF, 0xFE, 0xFD}},
		{[]byte{0x43, 0x54, 0x6B, 0x9C, 0xAE}, []byte{0xBC, 0xAB, 0x94, 0x63, 0x51}},
	}

	for _, tc := range tests {
		in := append([]byte{}, tc.in...)
		got := InvertBytes(in)
		assert.Equal(t, tc.exp, got)
		// input untouched
		assert.Equal(t, tc.in, in)
	}
}

// TestInvertBytes_Involution inverts random arrays twice and expects the input back.
func TestInvertBytes_Involution(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 50; i++ {
		b := make([]byte, r.Intn(32))
		r.Read(b)
		assert.Equal(t, b, InvertBytes(InvertBytes(b)))
	}
}

func TestShiftByteWithBorrow(t *testing.T) {
	tests := []struct {
		bytes  []byte
		index  int
		amount int
		exp    byte
	}{
		{[]byte{0b00000000, 0b00000000}, 0, 3, 0b00000000},
		{[]byte{0b11001100, 0b10101010}, 0, 3, 0b00011001},
		{[]byte{0b11111111, 0b11111111}, 0, 3, 0b00011111},
		{[]byte{0b11001100, 0b10101010}, 0, 5, 0b00000110},
		{[]byte{0b11001100, 0b10101010}, 0, -3, 0b01100101},
		{[]byte{0b11111111, 0b11111111}, 0, -3, 0b11111111},
		{[]byte{0b11001100, 0b10101010}, 0, -5, 0b10010101},
		{[]byte{0b10101010, 0b11001100}, 1, 3, 0b01011001},
		{[]byte{0b11111111, 0b11111111}, 1, 3, 0b11111111},
		{[]byte{0b10101010, 0b11001100}, 1, 5, 0b01010110},
		{[]byte{0b10101010, 0b11001100}, 1, -3, 0b01100000},
		{[]byte{0b11111111, 0b11111111}, 1, -3, 0b11111000},
		{[]byte{0b10101010, 0b11001100}, 1, -5, 0b10000000},
		{[]byte{0b11111111, 0b11111111}, 1, -5, 0b11100000},
		// zero shift leaves the byte alone
		{[]byte{0b10101010, 0b11001100}, 1, 0, 0b11001100},
		// synthetic boundary bytes
		{[]byte{0b10101010, 0b11001100}, -1, -3, 0b00000101},
		{[]byte{0b10101010, 0b11001100}, 2, 3, 0b10000000},
		{[]byte{0b10101010, 0b11001100}, -1, 3, 0b00000000},
		{[]byte{0b10101010, 0b11001100}, 2, -3, 0b00000000},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%08b/%d/%d", tc.bytes, tc.index, tc.amount), func(t *testing.T) {
			got, err := ShiftByteWithBorrow(tc.bytes, tc.index, tc.amount)
			require.NoError(t, err)
			assert.Equalf(t, tc.exp, got, "want %08b, got %08b", tc.exp, got)
		})
	}
}

func TestShiftByteWithBorrow_Errors(t *testing.T) {
	b := []byte{0x01, 0x02}

	_, err := ShiftByteWithBorrow(nil, 0, 1)
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = ShiftByteWithBorrow(b, -2, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ShiftByteWithBorrow(b, 3, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ShiftByteWithBorrow(b, 0, 9)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ShiftByteWithBorrow(b, 0, -9)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// TestShiftByteWithBorrow_Run shifts every byte of a random run and compares the result
// against a bit-by-bit shift of the whole sequence.
func TestShiftByteWithBorrow_Run(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 50; i++ {
		src := make([]byte, 1+r.Intn(8))
		r.Read(src)
		amount := r.Intn(17) - 8

		for idx := -1; idx <= len(src); idx++ {
			got, err := ShiftByteWithBorrow(src, idx, amount)
			require.NoError(t, err)

			var exp byte
			for bit := 0; bit < 8; bit++ {
				// MSB-0 position inside the virtual run, before shifting
				from := idx*8 + bit - amount
				if from >= 0 && from < len(src)*8 && src[from/8]&(0x80>>uint(from%8)) != 0 {
					exp |= 0x80 >> uint(bit)
				}
			}
			assert.Equalf(t, exp, got, "case#%d idx=%d amount=%d", i, idx, amount)
		}
	}
}

func TestAlignAndMergeBytes(t *testing.T) {
	tests := []struct {
		src    byte
		srcMsb int
		dst    byte
		dstLsb int
		exp    byte
	}{
		{0b00111000, 0, 0b11110000, 3, 0b11110011},
		{0b00011100, 3, 0b11100000, 2, 0b11111100},
		{0b00001110, 4, 0b11000000, 1, 0b11111000},
		{0b11111110, 4, 0b11000000, 1, 0b11111000},
		{0b00001110, 4, 0b11111111, 1, 0b11111000},
		{0b11101111, 0, 0b10101111, 3, 0b10101110},
		{0b11101111, 3, 0b10101111, 2, 0b10101111},
		// empty destination prefix
		{0b00010110, 3, 0b11111111, -1, 0b10110000},
		// nothing taken from the source
		{0b11111111, 8, 0b10100000, 2, 0b10100000},
	}

	for _, tc := range tests {
		got, err := AlignAndMergeBytes(tc.src, tc.srcMsb, tc.dst, tc.dstLsb)
		require.NoError(t, err)
		assert.Equalf(t, tc.exp, got, "(%08b,%d,%08b,%d): want %08b, got %08b",
			tc.src, tc.srcMsb, tc.dst, tc.dstLsb, tc.exp, got)
	}

	_, err := AlignAndMergeBytes(0, 9, 0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = AlignAndMergeBytes(0, 0, 0, 8)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = AlignAndMergeBytes(0, 0, 0, -2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCountSetBits(t *testing.T) {
	assert.Equal(t, 0, CountSetBits(nil))
	assert.Equal(t, 0, CountSetBits([]byte{0, 0}))
	assert.Equal(t, 8, CountSetBits([]byte{0xFF}))
	assert.Equal(t, 12, CountSetBits([]byte{0x53, 0x72, 0xF0}))

	r := rand.New(rand.NewSource(0))
	for i := 0; i < 50; i++ {
		b := make([]byte, r.Intn(16))
		r.Read(b)

		exp := 0
		for _, v := range b {
			for bit := uint(0); bit < 8; bit++ {
				if v&(1<<bit) != 0 {
					exp++
				}
			}
		}
		assert.Equal(t, exp, CountSetBits(b))
	}
}

// TestStandard makes sure the value type forwards to the package functions.
func TestStandard(t *testing.T) {
	var std Standard

	m, err := std.HighBitsMask(2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xC0), m)

	assert.Equal(t, 3, std.MinBytesForBits(17))
	assert.Equal(t, 2, std.ByteIndexOf(17))
	assert.Equal(t, 8, std.CountSetBits([]byte{0x0F, 0xF0}))

	merged, err := std.AlignAndMergeBytes(0b00111000, 0, 0b11110000, 3)
	require.NoError(t, err)
	assert.Equal(t, byte(0b11110011), merged)
}

// BenchmarkShiftByteWithBorrow measures the per-byte cost of the copy engine's inner step.
func BenchmarkShiftByteWithBorrow(b *testing.B) {
	src := make([]byte, 64)
	rand.New(rand.NewSource(0)).Read(src)
	for amount := -7; amount <= 7; amount += 7 {
		b.Run(fmt.Sprintf("%d bits", amount), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = ShiftByteWithBorrow(src, i%len(src), amount)
			}
		})
	}
}
