package calendar

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Mark renders a calendar layout.
type Mark interface {
	Render(w io.Writer, l *Layout) error
}

// DefaultRamp goes from the lowest to the highest shade.
var DefaultRamp = []rune("·░▒▓█")

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const gutter = "     " // width of the weekday column

// TextHeatmap renders one block per ISO year (newest first): a month label row,
// seven weekday rows with one rune per ISO week, and a line of monthly totals.
type TextHeatmap struct {
	// Ramp holds the shade runes, lowest first. Days without a point stay blank.
	Ramp []rune
	// HideTotals drops the monthly totals line.
	HideTotals bool
}

var _ Mark = (*TextHeatmap)(nil)

// NewTextHeatmap returns a heatmap using DefaultRamp.
func NewTextHeatmap() *TextHeatmap {
	return &TextHeatmap{Ramp: DefaultRamp}
}

// Render writes the heatmap. An empty layout writes nothing.
func (h *TextHeatmap) Render(w io.Writer, l *Layout) error {
	if len(l.Cells) == 0 {
		return nil
	}

	ramp := h.Ramp
	if len(ramp) == 0 {
		ramp = DefaultRamp
	}

	var sb strings.Builder
	for i, year := range l.Years {
		if i > 0 {
			sb.WriteByte('\n')
		}
		h.renderYear(&sb, l, year, ramp)
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write heatmap: %w", err)
	}

	return nil
}

func (h *TextHeatmap) renderYear(sb *strings.Builder, l *Layout, year int, ramp []rune) {
	sb.WriteString(strconv.Itoa(year))
	sb.WriteByte('\n')

	labels := []rune(strings.Repeat(" ", WeekColumns+3))
	for _, m := range l.Months {
		if m.Label.ISOYear != year {
			continue
		}
		copy(labels[m.Label.Week:], []rune(m.Text))
	}
	sb.WriteString(strings.TrimRight(gutter+string(labels), " "))
	sb.WriteByte('\n')

	var grid [7][WeekColumns]rune
	for d := range grid {
		for wk := range grid[d] {
			grid[d][wk] = ' '
		}
	}
	for _, c := range l.CellsInYear(year) {
		grid[c.Weekday-1][c.Week] = shadeRune(ramp, l.Shade(c.Value))
	}

	for d, row := range grid {
		line := weekdayNames[d] + gutter[len(weekdayNames[d]):] + string(row[:])
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}

	if h.HideTotals {
		return
	}

	var totals []string
	for _, t := range l.Totals {
		if t.ISOYear != year {
			continue
		}
		totals = append(totals, fmt.Sprintf("%s %d", t.Date.Format("Jan"), t.Value))
	}
	if len(totals) > 0 {
		sb.WriteString(gutter)
		sb.WriteString(strings.Join(totals, "  "))
		sb.WriteByte('\n')
	}
}

func shadeRune(ramp []rune, shade float64) rune {
	idx := int(math.Round(shade * float64(len(ramp)-1)))
	idx = max(0, min(len(ramp)-1, idx))

	return ramp[idx]
}
