package calendar

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/plantimetable/calstream/format"
)

const (
	// WeekColumns is the number of week columns in a year row (ISO weeks 1-53).
	WeekColumns = 53
	// RowHeight is the height of one year row, in the units Height reports.
	RowHeight = 100
	// scaleExponent is the exponent of the power color scale.
	scaleExponent = 1.0 / 5
)

const day = 24 * time.Hour

// Position locates a date in the calendar grid.
type Position struct {
	ISOYear int
	Week    int // zero-based ISO week
	Weekday int // 1 = Monday ... 7 = Sunday
}

// PositionOf returns the grid position of t (interpreted in UTC).
func PositionOf(t time.Time) Position {
	year, week := t.UTC().ISOWeek()

	return Position{ISOYear: year, Week: week - 1, Weekday: isoWeekday(t.UTC())}
}

// Cell is one plotted day.
type Cell struct {
	Position
	Date  time.Time
	Value int64
}

// Title is the hover text of the cell.
func (c Cell) Title() string {
	return fmt.Sprintf("%s\n%d new timetables", c.Date.Format(time.DateOnly), c.Value)
}

// Month marks the first day of a month and where its label goes.
type Month struct {
	// Start is the first day of the month.
	Start time.Time
	// First is the grid position of Start; month separator lines begin here.
	First Position
	// LabelDate is the first Thursday on or after Start.
	LabelDate time.Time
	// Label is the grid position of LabelDate.
	Label Position
	// Text is the abbreviated month name ("Jan").
	Text string
}

// MonthTotal is the sum of all values in one month, keyed on the last Thursday
// of that month.
type MonthTotal struct {
	Date  time.Time
	Position
	Month time.Month
	Value int64
}

// Layout is the full calendar arrangement of a point sequence.
type Layout struct {
	// Cells are ordered by date; points on the same day keep their input order.
	Cells []Cell
	// Years lists the ISO years that have cells, newest first.
	Years []int
	// Start is the first plotted day and End the day after the last one.
	Start time.Time
	End   time.Time
	// Months covers every month from the month of Start up to End.
	Months []Month
	// Totals holds one entry per month that has cells, in date order.
	Totals []MonthTotal
	// Min and Max bound the cell values.
	Min int64
	Max int64
}

// NewLayout arranges points on the calendar. Points need not be sorted.
func NewLayout(points []format.Point) *Layout {
	l := &Layout{Cells: make([]Cell, 0, len(points))}
	if len(points) == 0 {
		return l
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b format.Point) int {
		return a.Date.Compare(b.Date)
	})

	l.Min, l.Max = sorted[0].Value, sorted[0].Value
	years := make(map[int]struct{})
	totals := make(map[time.Time]int64)
	for _, p := range sorted {
		date := p.Date.UTC()
		cell := Cell{Position: PositionOf(date), Date: date, Value: p.Value}
		l.Cells = append(l.Cells, cell)

		years[cell.ISOYear] = struct{}{}
		totals[totalKey(date)] += p.Value
		l.Min = min(l.Min, p.Value)
		l.Max = max(l.Max, p.Value)
	}

	for y := range years {
		l.Years = append(l.Years, y)
	}
	slices.SortFunc(l.Years, func(a, b int) int { return b - a })

	l.Start = truncateDay(sorted[0].Date)
	l.End = truncateDay(sorted[len(sorted)-1].Date).Add(day)
	l.Months = monthsBetween(l.Start, l.End)

	for key, value := range totals {
		l.Totals = append(l.Totals, MonthTotal{
			Date:     key,
			Position: PositionOf(key),
			Month:    key.Month(),
			Value:    value,
		})
	}
	slices.SortFunc(l.Totals, func(a, b MonthTotal) int { return a.Date.Compare(b.Date) })

	return l
}

// Height returns the plot height: one RowHeight per year row.
func (l *Layout) Height() int {
	return len(l.Years) * RowHeight
}

// CellsInYear returns the cells of one ISO year, in date order.
func (l *Layout) CellsInYear(isoYear int) []Cell {
	var out []Cell
	for _, c := range l.Cells {
		if c.ISOYear == isoYear {
			out = append(out, c)
		}
	}

	return out
}

// Shade maps a value onto [0, 1] with a power scale (exponent 1/5) over
// [Min, Max], which keeps quiet days visible next to busy ones. A layout whose
// values are all equal maps everything to 0.5.
func (l *Layout) Shade(v int64) float64 {
	lo, hi := powScale(float64(l.Min)), powScale(float64(l.Max))
	if hi == lo {
		return 0.5
	}

	t := (powScale(float64(v)) - lo) / (hi - lo)

	return math.Max(0, math.Min(1, t))
}

func powScale(x float64) float64 {
	if x < 0 {
		return -math.Pow(-x, scaleExponent)
	}

	return math.Pow(x, scaleExponent)
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}

	return wd
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// thursdayOnOrAfter returns the first Thursday on or after t.
func thursdayOnOrAfter(t time.Time) time.Time {
	offset := (int(time.Thursday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset)
}

// thursdayOnOrBefore returns the last Thursday on or before t.
func thursdayOnOrBefore(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(time.Thursday) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

// totalKey returns the last Thursday on or before the last day of t's month.
func totalKey(t time.Time) time.Time {
	lastDay := monthStart(t).AddDate(0, 1, -1)
	return thursdayOnOrBefore(lastDay)
}

func monthsBetween(start, end time.Time) []Month {
	var months []Month
	for m := monthStart(start); m.Before(end); m = m.AddDate(0, 1, 0) {
		label := thursdayOnOrAfter(m)
		months = append(months, Month{
			Start:     m,
			First:     PositionOf(m),
			LabelDate: label,
			Label:     PositionOf(label),
			Text:      m.Format("Jan"),
		})
	}

	return months
}
