package duobit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromUint64(t *testing.T) {
	require := require.New(t)

	for i, tc := range []struct {
		v   uint64
		n   int
		exp []byte
	}{
		{0x1FF, 9, []byte{0x01, 0xFF}},
		{0xABCD, 12, []byte{0x0B, 0xCD}},
		{0xABCD, 16, []byte{0xAB, 0xCD}},
		{0xFF, 3, []byte{0x07}},
		{0xFF, 0, []byte{}},
		{0x0102030405060708, 64, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	} {
		got, err := FromUint64(tc.v, tc.n)
		require.NoError(err, i)
		require.Equal(tc.exp, got, i)
	}

	_, err := FromUint64(1, 65)
	require.ErrorIs(err, ErrOutOfRange)
	_, err = FromUint64(1, -1)
	require.ErrorIs(err, ErrOutOfRange)
}

func TestToUint64(t *testing.T) {
	require := require.New(t)

	a := preloaded(t, []byte{0x53, 0x72, 0x00})

	v, err := ToUint64(a, Left, 3, 9)
	require.NoError(err)
	require.Equal(uint64(0x137), v)

	v, err = ToUint64(a, Right, 4, 8)
	require.NoError(err)
	require.Equal(uint64(0x20), v)

	v, err = ToUint64(a, Left, 5, 0)
	require.NoError(err)
	require.Equal(uint64(0), v)

	_, err = ToUint64(a, Left, 0, 65)
	require.ErrorIs(err, ErrOutOfRange)
	_, err = ToUint64(a, Left, 20, 5)
	require.ErrorIs(err, ErrOutOfRange)
	_, err = ToUint64(a, Side(5), 0, 5)
	require.ErrorIs(err, ErrOutOfRange)
	_, err = ToUint64(nil, Left, 0, 5)
	require.ErrorIs(err, ErrMissingInput)
}

// TestUint64_RoundTrip packs random values with FromUint64 from both sides and reads them
// back with ToUint64.
func TestUint64_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 200; i++ {
		n := r.Intn(65)
		v := r.Uint64()
		if n < 64 {
			v &= 1<<uint(n) - 1
		}

		b, err := FromUint64(v, n)
		require.NoError(t, err)

		a := newTestArray(t, 2*n+r.Intn(16))
		require.NoError(t, a.SetLeftBits(b, 8*len(b)-n, 0, n))
		require.NoError(t, a.SetRightBits(b, 0, 0, n))

		got, err := ToUint64(a, Left, 0, n)
		require.NoError(t, err)
		require.Equal(t, v, got, "left %d bits", n)

		got, err = ToUint64(a, Right, 0, n)
		require.NoError(t, err)
		require.Equal(t, v, got, "right %d bits", n)
	}
}
