package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// === DeltaDeltaDecoder Tests ===

func TestDeltaDeltaDecoder_FirstValueIsIdentity(t *testing.T) {
	dec := NewDeltaDeltaDecoder()

	require.Equal(t, int64(-42), dec.Decode(-42))
}

func TestDeltaDeltaDecoder_ZeroDeltasRepeatValue(t *testing.T) {
	dec := NewDeltaDeltaDecoder()

	got := make([]int64, 0, 3)
	for _, raw := range []uint64{10, 0, 0} {
		got = append(got, dec.Decode(ZigZagDecode(raw)))
	}

	require.Equal(t, []int64{5, 5, 5}, got)
}

func TestDeltaDeltaDecoder_Recurrence(t *testing.T) {
	dec := NewDeltaDeltaDecoder()

	// 5 is the baseline; the running delta becomes 2 then 4.
	require.Equal(t, int64(5), dec.Decode(5))
	require.Equal(t, int64(7), dec.Decode(2))
	require.Equal(t, int64(11), dec.Decode(2))
	require.Equal(t, int64(15), dec.Decode(0))
	require.Equal(t, int64(16), dec.Decode(-3))
}

func TestDeltaDeltaDecoder_Reset(t *testing.T) {
	dec := NewDeltaDeltaDecoder()
	dec.Decode(100)
	dec.Decode(3)

	dec.Reset()

	require.Equal(t, int64(7), dec.Decode(7))
	require.Equal(t, int64(8), dec.Decode(1))
}

func TestDeltaDeltaDecoder_IndependentInstances(t *testing.T) {
	days := NewDeltaDeltaDecoder()
	counts := NewDeltaDeltaDecoder()

	require.Equal(t, int64(0), days.Decode(0))
	require.Equal(t, int64(5), counts.Decode(5))
	require.Equal(t, int64(1), days.Decode(1))
	require.Equal(t, int64(5), counts.Decode(0))
}

// === DeltaDeltaEncoder Tests ===

func TestDeltaDeltaEncoder_Encode(t *testing.T) {
	enc := NewDeltaDeltaEncoder()

	require.Equal(t, int64(5), enc.Encode(5))
	require.Equal(t, int64(2), enc.Encode(7))
	require.Equal(t, int64(0), enc.Encode(9))
	require.Equal(t, int64(-1), enc.Encode(10))
}

func TestDeltaDeltaEncoder_LinearSeriesCollapsesToZero(t *testing.T) {
	enc := NewDeltaDeltaEncoder()

	out := make([]int64, 0, 10)
	for i := int64(0); i < 10; i++ {
		out = append(out, enc.Encode(19000+i))
	}

	require.Equal(t, int64(19000), out[0])
	require.Equal(t, int64(1), out[1])
	for _, v := range out[2:] {
		require.Zero(t, v)
	}
}

func TestDeltaDeltaEncoder_Reset(t *testing.T) {
	enc := NewDeltaDeltaEncoder()
	enc.Encode(1)
	enc.Encode(50)

	enc.Reset()

	require.Equal(t, int64(3), enc.Encode(3))
	require.Equal(t, int64(1), enc.Encode(4))
}

func TestDeltaDelta_RoundTrip(t *testing.T) {
	series := [][]int64{
		{},
		{0},
		{5, 7, 7, 10},
		{0, 1, 3, 4},
		{-10, 20, -30, 40, -50},
		{1 << 40, 1<<40 + 86400, 1<<40 + 2*86400, 1 << 41},
	}

	for _, values := range series {
		enc := NewDeltaDeltaEncoder()
		dec := NewDeltaDeltaDecoder()

		for _, v := range values {
			wire := ZigZagEncode(enc.Encode(v))
			require.Equal(t, v, dec.Decode(ZigZagDecode(wire)))
		}
	}
}
