package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZagDecode_KnownValues(t *testing.T) {
	cases := []struct {
		in   uint64
		want int64
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{4, 2},
		{10, 5},
		{4294967294, 2147483647},
		{4294967295, -2147483648},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, ZigZagDecode(tc.in), "decode(%d)", tc.in)
	}
}

func TestZigZagEncode_KnownValues(t *testing.T) {
	require.Equal(t, uint64(0), ZigZagEncode(0))
	require.Equal(t, uint64(1), ZigZagEncode(-1))
	require.Equal(t, uint64(2), ZigZagEncode(1))
	require.Equal(t, uint64(3), ZigZagEncode(-2))
	require.Equal(t, uint64(10), ZigZagEncode(5))
}

func TestZigZag_RoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 63, -64, 1 << 20, -(1 << 20),
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
	}

	for _, v := range values {
		require.Equal(t, v, ZigZagDecode(ZigZagEncode(v)), "value %d", v)
	}

	for i := uint64(0); i < 1024; i++ {
		require.Equal(t, i, ZigZagEncode(ZigZagDecode(i)), "wire %d", i)
	}
}
