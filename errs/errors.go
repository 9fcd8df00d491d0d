// Package errs defines the sentinel errors shared by calstream packages.
//
// Callers should match them with errors.Is; functions wrap them with context
// such as the token index or the request URL.
package errs

import "errors"

// Stream decoding errors.
var (
	// ErrMalformedToken is returned when a token field is not a non-negative integer.
	ErrMalformedToken = errors.New("malformed stream token")
	// ErrFieldCount is returned when a token has more than two colon separated fields.
	ErrFieldCount = errors.New("invalid token field count")
	// ErrDayOutOfRange is returned when a day offset cannot be expressed as a date.
	ErrDayOutOfRange = errors.New("day offset out of range")
)

// Stream encoding errors.
var (
	// ErrUnorderedPoints is returned when points are not ordered by day.
	ErrUnorderedPoints = errors.New("points are not ordered by day")
	// ErrEncoderFinished is returned when writing to a finished encoder.
	ErrEncoderFinished = errors.New("encoder already finished")
)

// Transport errors.
var (
	ErrFetchFailed            = errors.New("fetch failed")
	ErrUnexpectedStatus       = errors.New("unexpected response status")
	ErrSuperseded             = errors.New("render superseded by a newer request")
	ErrUnsupportedCompression = errors.New("unsupported compression")
)

// Configuration and source errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrEmptySource   = errors.New("no daily-count source configured")
	ErrInvalidRecord = errors.New("invalid daily count record")
)
