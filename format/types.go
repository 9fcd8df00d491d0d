package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MillisPerDay is the length of one day-offset unit on the wire.
const MillisPerDay = 86_400_000

// MinDay and MaxDay bound the day offsets whose UTC midnight fits in int64
// Unix milliseconds.
const (
	MinDay = math.MinInt64 / MillisPerDay
	MaxDay = math.MaxInt64 / MillisPerDay
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed body.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ContentEncoding returns the HTTP Content-Encoding token for the compression type.
// CompressionNone maps to "identity".
func (c CompressionType) ContentEncoding() string {
	switch c {
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "identity"
	}
}

// ParseCompression maps a Content-Encoding or CLI name to a CompressionType.
//
// The empty string, "identity" and "none" map to CompressionNone. Matching is
// case-insensitive.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "identity", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// Point is one decoded calendar entry: a UTC day and the count recorded for it.
type Point struct {
	// Day is the number of days since 1970-01-01 UTC.
	Day int64
	// Date is Day expressed as a UTC midnight time.
	Date time.Time
	// Value is the count associated with the day.
	Value int64
}

// NewPoint builds a Point from a day offset and a value.
func NewPoint(day, value int64) Point {
	return Point{Day: day, Date: DayToDate(day), Value: value}
}

// ValidDay reports whether day is within [MinDay, MaxDay].
func ValidDay(day int64) bool {
	return day >= MinDay && day <= MaxDay
}

// DayToDate converts a day offset since the Unix epoch to a UTC time.
// Offsets outside [MinDay, MaxDay] wrap; check them with ValidDay first.
func DayToDate(day int64) time.Time {
	return time.UnixMilli(day * MillisPerDay).UTC()
}

// DateToDay returns the day offset of t, truncating to the UTC day that contains it.
func DateToDay(t time.Time) int64 {
	ms := t.UTC().UnixMilli()
	day := ms / MillisPerDay
	if ms%MillisPerDay < 0 {
		day--
	}

	return day
}
