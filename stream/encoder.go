package stream

import (
	"fmt"

	"github.com/plantimetable/calstream/encoding"
	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
	"github.com/plantimetable/calstream/internal/options"
	"github.com/plantimetable/calstream/internal/pool"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithBareTokens makes the encoder omit the offset field when it is zero,
// writing "<value>" instead of "0:<value>". Runs of consecutive days (and
// repeated days) then cost one field per token.
func WithBareTokens(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bareTokens = enabled
	})
}

// Encoder writes points in the calstream text wire format.
//
// Internal state:
//   - days, values: Independent delta-of-delta channel encoders
//   - buf: Pooled output buffer accumulating the token text
//   - lastDay: Day of the previous point, for the ordering check
//   - count: Number of points written
type Encoder struct {
	days       *encoding.DeltaDeltaEncoder
	values     *encoding.DeltaDeltaEncoder
	buf        *pool.ByteBuffer
	lastDay    int64
	count      int
	bareTokens bool
}

// NewEncoder creates a stream encoder.
//
// Returns:
//   - *Encoder: Encoder ready for Write calls; call Finish when done
//   - error: Option error
//
// Example:
//
//	enc, _ := stream.NewEncoder(stream.WithBareTokens(true))
//	defer enc.Finish()
//	_ = enc.WriteSlice(points)
//	body := enc.String()
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		days:   encoding.NewDeltaDeltaEncoder(),
		values: encoding.NewDeltaDeltaEncoder(),
		buf:    pool.GetStreamBuffer(),
	}

	if err := options.Apply(e, opts...); err != nil {
		pool.PutStreamBuffer(e.buf)
		return nil, err
	}

	return e, nil
}

// Write appends one point as a token.
//
// Points must be written in ascending day order; equal days are allowed and
// keep their write order.
//
// Returns:
//   - error: errs.ErrUnorderedPoints if p is before the previous point,
//     errs.ErrDayOutOfRange for days outside format.MinDay..format.MaxDay,
//     errs.ErrEncoderFinished after Finish
func (e *Encoder) Write(p format.Point) error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}

	if !format.ValidDay(p.Day) {
		return fmt.Errorf("%w: day %d", errs.ErrDayOutOfRange, p.Day)
	}

	if e.count > 0 && p.Day < e.lastDay {
		return fmt.Errorf("%w: day %d after day %d", errs.ErrUnorderedPoints, p.Day, e.lastDay)
	}

	offset := encoding.ZigZagEncode(e.days.Encode(p.Day))
	value := encoding.ZigZagEncode(e.values.Encode(p.Value))

	if e.count > 0 {
		e.buf.AppendByte(tokenSeparator[0])
	}
	if !e.bareTokens || offset != 0 {
		e.buf.AppendUint(offset)
		e.buf.AppendByte(fieldSeparator[0])
	}
	e.buf.AppendUint(value)

	e.lastDay = p.Day
	e.count++

	return nil
}

// WriteSlice appends all points in order, stopping at the first error.
func (e *Encoder) WriteSlice(points []format.Point) error {
	if e.buf != nil {
		// ~8 bytes per token is typical for daily counts
		e.buf.Grow(len(points) * 8)
	}

	for i := range points {
		if err := e.Write(points[i]); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}

// Len returns the number of points written.
func (e *Encoder) Len() int {
	return e.count
}

// Bytes returns the encoded text written so far.
//
// The returned slice is valid until the next Write or Finish call.
//
// Panics if Finish() has been called.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// String returns a copy of the encoded text written so far.
//
// Panics if Finish() has been called.
func (e *Encoder) String() string {
	if e.buf == nil {
		panic("encoder already finished - cannot access text after Finish()")
	}

	return e.buf.String()
}

// Finish returns the output buffer to the pool. The encoder is unusable afterwards.
func (e *Encoder) Finish() {
	if e.buf != nil {
		pool.PutStreamBuffer(e.buf)
		e.buf = nil
	}
	e.days.Reset()
	e.values.Reset()
	e.count = 0
	e.lastDay = 0
}

// Encode encodes points into stream text in one call.
//
// Parameters:
//   - points: Points ordered by day
//   - opts: Encoder options
//
// Returns:
//   - string: Stream body ("" for no points)
//   - error: Option or ordering error
func Encode(points []format.Point, opts ...EncoderOption) (string, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return "", err
	}
	defer enc.Finish()

	if err := enc.WriteSlice(points); err != nil {
		return "", err
	}

	return enc.String(), nil
}
