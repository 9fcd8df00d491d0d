// Package stream reads and writes the calstream text wire format.
//
// # Wire Format
//
// A body is a comma separated list of tokens. Each token is either
// "<offset>:<value>" or a bare "<value>", which is shorthand for
// "0:<value>". Both fields are non-negative decimal integers holding zigzag
// encoded second differences of two independent channels:
//
//   - offset: days since 1970-01-01 UTC
//   - value: the count recorded for that day
//
// The first token carries the absolute values of both channels. For example
// the points (day 0, 5), (day 1, 7), (day 3, 7), (day 4, 10) encode as
//
//	0:10,2:4,2:3,1:6
//
// # Decoding
//
// Parse decodes a whole body into points; All yields the same points lazily.
// Each call creates fresh channel decoders, so decoding is a pure function of
// the full input and is safe to repeat. An empty body yields no points. A
// field that is not a non-negative integer fails with errs.ErrMalformedToken
// instead of being read as zero, because every later value of that channel
// depends on it.
//
// # Encoding
//
// Encoder is the producing side of the same format. It requires points ordered
// by day and can emit bare tokens for points whose offset field is zero.
package stream
