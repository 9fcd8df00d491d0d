package stream

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/plantimetable/calstream/encoding"
	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
)

const (
	tokenSeparator = ","
	fieldSeparator = ":"
)

// Parse decodes a complete stream body into points, in input order.
//
// An empty or whitespace-only body yields an empty, non-nil slice.
//
// Parameters:
//   - text: Full response body
//
// Returns:
//   - []format.Point: One point per token
//   - error: errs.ErrMalformedToken, errs.ErrFieldCount or errs.ErrDayOutOfRange,
//     wrapped with the token position
//
// Example:
//
//	points, err := stream.Parse("0:10,2,0")
//	// points: (1970-01-01, 5), (1970-01-01, 6), (1970-01-01, 7)
func Parse(text string) ([]format.Point, error) {
	points := make([]format.Point, 0, estimateTokens(text))
	for p, err := range All(text) {
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}

// All returns an iterator that decodes the stream body token by token.
//
// The iterator owns a fresh pair of channel decoders per iteration, so the
// returned sequence can be ranged over more than once. On a malformed token it
// yields a zero Point with the error and stops.
//
// Example:
//
//	for p, err := range stream.All(body) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(p.Date.Format(time.DateOnly), p.Value)
//	}
func All(text string) iter.Seq2[format.Point, error] {
	return func(yield func(format.Point, error) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}

		days := encoding.NewDeltaDeltaDecoder()
		values := encoding.NewDeltaDeltaDecoder()

		rest := text
		for index := 0; ; index++ {
			token, tail, more := strings.Cut(rest, tokenSeparator)
			rest = tail

			offsetRaw, valueRaw, err := parseToken(token)
			if err != nil {
				yield(format.Point{}, fmt.Errorf("token %d %q: %w", index, token, err))
				return
			}

			day, err := decodeDay(days, encoding.ZigZagDecode(offsetRaw))
			if err != nil {
				yield(format.Point{}, fmt.Errorf("token %d %q: %w", index, token, err))
				return
			}
			value := values.Decode(encoding.ZigZagDecode(valueRaw))
			if !yield(format.NewPoint(day, value), nil) {
				return
			}

			if !more {
				return
			}
		}
	}
}

// maxDayDelta bounds a raw day delta-of-delta. While every decoded day is
// valid the running delta stays within 2*MaxDay, so adding a raw value within
// 4*MaxDay cannot overflow int64.
const maxDayDelta = 4 * format.MaxDay

func decodeDay(days *encoding.DeltaDeltaDecoder, raw int64) (int64, error) {
	if raw > maxDayDelta || raw < -maxDayDelta {
		return 0, fmt.Errorf("%w: delta %d", errs.ErrDayOutOfRange, raw)
	}

	day := days.Decode(raw)
	if !format.ValidDay(day) {
		return 0, fmt.Errorf("%w: day %d", errs.ErrDayOutOfRange, day)
	}

	return day, nil
}

// parseToken splits a token into its two wire fields. A bare token is
// treated as having a zero offset field.
func parseToken(token string) (uint64, uint64, error) {
	token = strings.TrimSpace(token)

	offsetField, valueField, hasOffset := strings.Cut(token, fieldSeparator)
	if !hasOffset {
		valueField = offsetField
		offsetField = "0"
	} else if strings.Contains(valueField, fieldSeparator) {
		return 0, 0, errs.ErrFieldCount
	}

	offset, err := parseField(offsetField)
	if err != nil {
		return 0, 0, err
	}

	value, err := parseField(valueField)
	if err != nil {
		return 0, 0, err
	}

	return offset, value, nil
}

func parseField(field string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q", errs.ErrMalformedToken, field)
	}

	return v, nil
}

func estimateTokens(text string) int {
	if text == "" {
		return 0
	}

	return strings.Count(text, tokenSeparator) + 1
}
