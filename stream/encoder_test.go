package stream

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
)

func points(pairs ...[2]int64) []format.Point {
	out := make([]format.Point, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, format.NewPoint(p[0], p[1]))
	}

	return out
}

func TestEncode_Empty(t *testing.T) {
	body, err := Encode(nil)

	require.NoError(t, err)
	require.Empty(t, body)
}

func TestEncode_FirstPointIsAbsolute(t *testing.T) {
	body, err := Encode(points([2]int64{0, 5}))

	require.NoError(t, err)
	require.Equal(t, "0:10", body)
}

func TestEncode_DocumentedExample(t *testing.T) {
	body, err := Encode(points([2]int64{0, 5}, [2]int64{1, 7}, [2]int64{3, 7}, [2]int64{4, 10}))

	require.NoError(t, err)
	require.Equal(t, "0:10,2:4,2:3,1:6", body)
}

func TestEncode_BareTokens(t *testing.T) {
	input := points([2]int64{19000, 1}, [2]int64{19001, 1}, [2]int64{19002, 3}, [2]int64{19003, 3})

	body, err := Encode(input, WithBareTokens(true))
	require.NoError(t, err)
	require.Equal(t, "38000:2,2:0,4,3", body)

	decoded, err := Parse(body)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestEncode_RejectsDayOutOfRange(t *testing.T) {
	_, err := Encode(points([2]int64{0, 1}, [2]int64{format.MaxDay + 1, 1}))

	require.ErrorIs(t, err, errs.ErrDayOutOfRange)
	require.Contains(t, err.Error(), "point 1")
}

func TestEncodeParse_RoundTripAtDayLimits(t *testing.T) {
	in := points([2]int64{format.MinDay, 3}, [2]int64{0, 1}, [2]int64{format.MaxDay, 7})

	body, err := Encode(in)
	require.NoError(t, err)

	out, err := Parse(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncode_RejectsUnorderedPoints(t *testing.T) {
	_, err := Encode(points([2]int64{10, 1}, [2]int64{9, 1}))

	require.ErrorIs(t, err, errs.ErrUnorderedPoints)
	require.Contains(t, err.Error(), "point 1")
}

func TestEncode_AllowsRepeatedDays(t *testing.T) {
	input := points([2]int64{10, 1}, [2]int64{10, 4}, [2]int64{11, 0})

	body, err := Encode(input)
	require.NoError(t, err)

	decoded, err := Parse(body)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestEncoder_WriteAfterFinish(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	require.NoError(t, enc.Write(format.NewPoint(1, 1)))
	require.Equal(t, 1, enc.Len())

	enc.Finish()

	require.ErrorIs(t, enc.Write(format.NewPoint(2, 1)), errs.ErrEncoderFinished)
	require.Panics(t, func() { _ = enc.String() })
	require.Panics(t, func() { _ = enc.Bytes() })
}

func TestEncoder_IncrementalMatchesEncode(t *testing.T) {
	input := points([2]int64{100, 3}, [2]int64{101, 9}, [2]int64{105, 2})

	enc, err := NewEncoder()
	require.NoError(t, err)
	defer enc.Finish()

	for _, p := range input {
		require.NoError(t, enc.Write(p))
	}

	want, err := Encode(input)
	require.NoError(t, err)
	require.Equal(t, want, enc.String())
	require.Equal(t, []byte(want), enc.Bytes())
}

func TestEncodeParse_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := rng.Intn(200)
		days := make([]int64, n)
		day := int64(rng.Intn(30000))
		for i := range days {
			day += int64(rng.Intn(4))
			days[i] = day
		}
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

		input := make([]format.Point, n)
		for i := range input {
			input[i] = format.NewPoint(days[i], int64(rng.Intn(5000))-100)
		}

		for _, bare := range []bool{false, true} {
			body, err := Encode(input, WithBareTokens(bare))
			require.NoError(t, err)

			decoded, err := Parse(body)
			require.NoError(t, err)
			require.Equal(t, input, decoded, "round %d bare=%v", round, bare)
		}
	}
}
