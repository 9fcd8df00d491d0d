package calendar

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/plantimetable/calstream/format"
)

func TestTextHeatmap_Render(t *testing.T) {
	l := NewLayout([]format.Point{
		pointOn(date(2024, time.January, 1), 0),
		pointOn(date(2024, time.January, 2), 32),
	})

	var buf bytes.Buffer
	require.NoError(t, NewTextHeatmap().Render(&buf, l))

	want := strings.Join([]string{
		"2024",
		"     Jan",
		"Mon  ·",
		"Tue  █",
		"Wed",
		"Thu",
		"Fri",
		"Sat",
		"Sun",
		"     Jan 32",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestTextHeatmap_NewestYearFirst(t *testing.T) {
	l := NewLayout([]format.Point{
		pointOn(date(2023, time.June, 1), 1),
		pointOn(date(2024, time.June, 6), 1),
	})

	var buf bytes.Buffer
	require.NoError(t, NewTextHeatmap().Render(&buf, l))

	out := buf.String()
	require.Less(t, strings.Index(out, "2024\n"), strings.Index(out, "2023\n"))
}

func TestTextHeatmap_HideTotals(t *testing.T) {
	l := NewLayout([]format.Point{pointOn(date(2024, time.January, 1), 3)})

	var buf bytes.Buffer
	h := &TextHeatmap{HideTotals: true}
	require.NoError(t, h.Render(&buf, l))

	require.NotContains(t, buf.String(), "Jan 3")
	require.Contains(t, buf.String(), "Mon  ▒", "empty ramp falls back to the default")
}

func TestTextHeatmap_EmptyLayout(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTextHeatmap().Render(&buf, NewLayout(nil)))
	require.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTextHeatmap_WriteError(t *testing.T) {
	l := NewLayout([]format.Point{pointOn(date(2024, time.January, 1), 3)})

	err := NewTextHeatmap().Render(failingWriter{}, l)

	require.ErrorContains(t, err, "broken pipe")
}
