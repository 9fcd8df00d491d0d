package calstream

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
)

func TestParse(t *testing.T) {
	points, err := Parse("38004:4,2:6,2:1")

	require.NoError(t, err)
	require.Equal(t, []format.Point{
		DayPoint(19002, 2),
		DayPoint(19003, 5),
		DayPoint(19005, 7),
	}, points)
	require.Equal(t, time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC), points[0].Date)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("38004:4,-2:6")

	require.ErrorIs(t, err, errs.ErrMalformedToken)
}

func TestEncode_UsesBareTokens(t *testing.T) {
	body, err := Encode([]format.Point{
		DayPoint(19002, 2),
		DayPoint(19003, 5),
		DayPoint(19004, 7),
	})

	require.NoError(t, err)
	require.Equal(t, "38004:4,2:6,1", body)
}

func TestEncodeParse_RoundTrip(t *testing.T) {
	in := []format.Point{
		DayPoint(0, 0),
		DayPoint(0, 3),
		DayPoint(365, 12),
		DayPoint(400, 1),
	}

	body, err := Encode(in)
	require.NoError(t, err)

	out, err := Parse(body)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, []format.Point{DayPoint(19002, 2)}))
	require.Contains(t, buf.String(), "2022")

	buf.Reset()
	require.NoError(t, Render(&buf, nil))
	require.Zero(t, buf.Len())
}
