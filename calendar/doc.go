// Package calendar lays decoded stream points out as an ISO-week calendar and
// renders the result.
//
// The layout follows a year-per-row heatmap: every point becomes a cell placed
// by ISO year (row group), zero-based ISO week (column) and ISO weekday
// (1 = Monday ... 7 = Sunday). Months are marked by the position of their
// first day and labelled on the first Thursday on or after it; monthly totals
// are keyed on the last Thursday of each month so they line up with the
// label of the following month.
//
// Rendering goes through the Mark interface. TextHeatmap is the built-in
// variant and writes a terminal friendly grid.
package calendar
