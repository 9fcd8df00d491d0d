package encoding

// DeltaDeltaEncoder converts absolute values into second differences.
//
// Slowly changing or linearly trending series (such as consecutive calendar
// days) collapse into runs of zeros, which keeps the decimal wire text short:
//   - First value: passed through as-is (establishes the baseline)
//   - Second value: delta from the first (previous delta starts at zero)
//   - Subsequent values: delta-of-delta (current delta - previous delta)
//
// Internal state:
//   - prev: Previous absolute value
//   - prevDelta: Previous first-order difference
//   - started: Whether the baseline value has been seen
type DeltaDeltaEncoder struct {
	prev      int64
	prevDelta int64
	started   bool
}

var _ ChannelEncoder = (*DeltaDeltaEncoder)(nil)

// NewDeltaDeltaEncoder creates a delta-of-delta encoder in its initial state.
func NewDeltaDeltaEncoder() *DeltaDeltaEncoder {
	return &DeltaDeltaEncoder{}
}

// Encode returns the second difference of v relative to the previously encoded values.
//
// Example:
//
//	enc := NewDeltaDeltaEncoder()
//	enc.Encode(5)  // 5 (baseline)
//	enc.Encode(7)  // 2 (delta 2, previous delta 0)
//	enc.Encode(9)  // 0 (delta 2, previous delta 2)
//	enc.Encode(10) // -1 (delta 1, previous delta 2)
func (e *DeltaDeltaEncoder) Encode(v int64) int64 {
	if !e.started {
		e.started = true
		e.prev = v

		return v
	}

	delta := v - e.prev
	deltaOfDelta := delta - e.prevDelta

	e.prev = v
	e.prevDelta = delta

	return deltaOfDelta
}

// Reset clears the encoder state; the next Encode call starts a new baseline.
func (e *DeltaDeltaEncoder) Reset() {
	e.prev = 0
	e.prevDelta = 0
	e.started = false
}

// DeltaDeltaDecoder reconstructs absolute values from second differences
// produced by DeltaDeltaEncoder.
//
// Decoding algorithm:
//  1. First input is the absolute value and is returned unchanged
//  2. Each later input is added to the running delta
//  3. The running delta is added to the previous value, which is returned
//
// A decoder accepts any integer and never fails. Malformed wire text is the
// tokenizer's concern, not the decoder's.
type DeltaDeltaDecoder struct {
	prev      int64
	prevDelta int64
	started   bool
}

var _ ChannelDecoder = (*DeltaDeltaDecoder)(nil)

// NewDeltaDeltaDecoder creates a delta-of-delta decoder in its initial state.
func NewDeltaDeltaDecoder() *DeltaDeltaDecoder {
	return &DeltaDeltaDecoder{}
}

// Decode returns the absolute value reconstructed from raw.
//
// Example:
//
//	dec := NewDeltaDeltaDecoder()
//	dec.Decode(5) // 5
//	dec.Decode(2) // 7
//	dec.Decode(2) // 11
func (d *DeltaDeltaDecoder) Decode(raw int64) int64 {
	if !d.started {
		d.started = true
		d.prev = raw

		return raw
	}

	d.prevDelta += raw
	d.prev += d.prevDelta

	return d.prev
}

// Reset clears the decoder state; the next Decode call is treated as a baseline.
func (d *DeltaDeltaDecoder) Reset() {
	d.prev = 0
	d.prevDelta = 0
	d.started = false
}
