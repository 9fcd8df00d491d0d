package source

import (
	"cmp"
	"slices"
	"time"

	"github.com/plantimetable/calstream/format"
)

// DayLayout is the date format used by CSV rows and the SQLite store.
const DayLayout = "2006-01-02"

// DailyCount is the number of new timetables created on one UTC day.
type DailyCount struct {
	Day   time.Time
	Count int64
}

// Points converts counts to stream points ordered by day. Counts for the same
// day keep their relative order.
func Points(counts []DailyCount) []format.Point {
	points := make([]format.Point, 0, len(counts))
	for _, c := range counts {
		points = append(points, format.NewPoint(format.DateToDay(c.Day), c.Count))
	}

	slices.SortStableFunc(points, func(a, b format.Point) int {
		return cmp.Compare(a.Day, b.Day)
	})

	return points
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}
