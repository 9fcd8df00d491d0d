// Package calstream decodes, encodes and renders the compact text stream used to
// publish the number of timetables created per day.
//
// A stream is a comma separated list of tokens. Each token holds up to two
// colon separated non-negative integers: the zig-zag encoded delta-of-delta of
// the day offset and of the value. A token with a single field carries an
// offset field of 0. Day offsets count days since 1970-01-01 UTC.
//
// # Basic Usage
//
// Decoding a stream:
//
//	points, err := calstream.Parse("38004:4,2:6,2:1")
//	for _, p := range points {
//	    fmt.Println(p.Date.Format("2006-01-02"), p.Value)
//	}
//
// Encoding points:
//
//	body, err := calstream.Encode(points)
//
// Rendering a calendar heatmap:
//
//	err := calstream.Render(os.Stdout, points)
//
// # Package Structure
//
// This package provides top-level wrappers around the stream and calendar
// packages. Use those packages directly for incremental encoding, lazy
// decoding or custom marks, and the client package to fetch streams over HTTP.
package calstream

import (
	"io"

	"github.com/plantimetable/calstream/calendar"
	"github.com/plantimetable/calstream/format"
	"github.com/plantimetable/calstream/stream"
)

// Parse decodes a stream body into points in stream order.
//
// Parameters:
//   - text: Stream body; empty or whitespace-only input yields no points
//
// Returns:
//   - []format.Point: Decoded points
//   - error: errs.ErrMalformedToken or errs.ErrFieldCount for invalid tokens
func Parse(text string) ([]format.Point, error) {
	return stream.Parse(text)
}

// Encode writes points as a stream body, omitting zero day offsets.
//
// Points must be ordered by day; errs.ErrUnorderedPoints is returned otherwise.
func Encode(points []format.Point) (string, error) {
	return stream.Encode(points, stream.WithBareTokens(true))
}

// Render lays points out on a calendar and writes the default text heatmap to w.
func Render(w io.Writer, points []format.Point) error {
	return calendar.NewTextHeatmap().Render(w, calendar.NewLayout(points))
}

// DayPoint creates a point for a day offset since 1970-01-01 UTC.
func DayPoint(day, value int64) format.Point {
	return format.NewPoint(day, value)
}
