package stream

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/plantimetable/calstream/encoding"
	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
)

var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

func TestParse_EmptyInput(t *testing.T) {
	for _, body := range []string{"", " ", "\n"} {
		points, err := Parse(body)

		require.NoError(t, err)
		require.NotNil(t, points)
		require.Empty(t, points)
	}
}

func TestParse_SingleToken(t *testing.T) {
	points, err := Parse("0:10")

	require.NoError(t, err)
	require.Equal(t, []format.Point{{Day: 0, Date: epoch, Value: 5}}, points)
}

func TestParse_BareTokenMatchesZeroOffset(t *testing.T) {
	bare, err := Parse("10")
	require.NoError(t, err)

	explicit, err := Parse("0:10")
	require.NoError(t, err)

	require.Equal(t, explicit, bare)
}

func TestParse_DocumentedExample(t *testing.T) {
	points, err := Parse("0:10,2:4,2:3,1:6")

	require.NoError(t, err)
	require.Len(t, points, 4)

	want := [][2]int64{{0, 5}, {1, 7}, {3, 7}, {4, 10}}
	for i, w := range want {
		require.Equal(t, w[0], points[i].Day, "day of point %d", i)
		require.Equal(t, epoch.AddDate(0, 0, int(w[0])), points[i].Date, "date of point %d", i)
		require.Equal(t, w[1], points[i].Value, "value of point %d", i)
	}
}

func TestParse_ZeroDeltasRepeatValue(t *testing.T) {
	points, err := Parse("0:10,0,0")

	require.NoError(t, err)
	require.Len(t, points, 3)
	for _, p := range points {
		require.Equal(t, int64(5), p.Value)
		require.Equal(t, epoch, p.Date)
	}
}

func TestParse_BareTokenKeepsOffsetTrend(t *testing.T) {
	// Days 19000, 19001 then a bare token: the zero second difference
	// continues the one-day step.
	points, err := Parse("38000:2,2:0,0")

	require.NoError(t, err)
	require.Equal(t, int64(19000), points[0].Day)
	require.Equal(t, int64(19001), points[1].Day)
	require.Equal(t, int64(19002), points[2].Day)
	require.Equal(t, time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC), points[2].Date)
}

func TestParse_ToleratesSurroundingWhitespace(t *testing.T) {
	points, err := Parse("0:10, 2:4 ,2:3\n")

	require.NoError(t, err)
	require.Len(t, points, 3)
}

func TestParse_MalformedTokens(t *testing.T) {
	cases := map[string]string{
		"non-numeric value":  "0:10,x",
		"non-numeric offset": "0:10,a:2",
		"negative field":     "0:-2",
		"empty field":        "0:",
		"trailing comma":     "0:10,",
		"empty token":        "0:10,,2",
		"signed field":       "+4",
		"float field":        "1.5",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			points, err := Parse(body)

			require.ErrorIs(t, err, errs.ErrMalformedToken)
			require.Nil(t, points)
		})
	}
}

func dayField(day int64) string {
	return strconv.FormatUint(encoding.ZigZagEncode(day), 10)
}

func TestParse_DayRangeLimits(t *testing.T) {
	points, err := Parse(dayField(format.MaxDay) + ":0")
	require.NoError(t, err)
	require.Equal(t, int64(format.MaxDay), points[0].Day)

	points, err = Parse(dayField(format.MinDay) + ":0")
	require.NoError(t, err)
	require.Equal(t, int64(format.MinDay), points[0].Day)
}

func TestParse_DayOutOfRange(t *testing.T) {
	cases := map[string]string{
		"first day above max": dayField(format.MaxDay+1) + ":0",
		"first day below min": dayField(format.MinDay-1) + ":0",
		"step past max":       dayField(format.MaxDay) + ":0,2:0",
		"huge delta":          "0:0,18446744073709551614:0",
		"huge negative delta": "0:0,18446744073709551615:0",
		"delta wraps back":    dayField(format.MaxDay) + ":0," + dayField(-2*format.MaxDay-1) + ":0",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			points, err := Parse(body)

			require.ErrorIs(t, err, errs.ErrDayOutOfRange)
			require.Nil(t, points)
		})
	}
}

func TestParse_TooManyFields(t *testing.T) {
	_, err := Parse("0:10,1:2:3")

	require.ErrorIs(t, err, errs.ErrFieldCount)
	require.Contains(t, err.Error(), "token 1")
}

func TestParse_Deterministic(t *testing.T) {
	body := "38000:2,2:0,0,0,4:7,1"

	first, err := Parse(body)
	require.NoError(t, err)
	second, err := Parse(body)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAll_EarlyTermination(t *testing.T) {
	seen := 0
	for _, err := range All("0:10,0,0,0,0") {
		require.NoError(t, err)
		seen++
		if seen == 2 {
			break
		}
	}

	require.Equal(t, 2, seen)
}

func TestAll_StopsAfterError(t *testing.T) {
	var values []int64
	var gotErr error
	for p, err := range All("0:10,0,bad,0") {
		if err != nil {
			gotErr = err
			continue
		}
		values = append(values, p.Value)
	}

	require.ErrorIs(t, gotErr, errs.ErrMalformedToken)
	require.Equal(t, []int64{5, 5}, values)
}

func TestAll_Reusable(t *testing.T) {
	seq := All("0:10,2")

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}

		return n
	}

	require.Equal(t, 2, count())
	require.Equal(t, 2, count())
}
