// Package encoding provides the integer primitives behind the calstream wire format.
//
// A calstream body carries two interleaved integer channels (day offsets and
// counts). Each channel is delta-of-delta encoded and every resulting signed
// integer is zigzag mapped to a non-negative integer before it is written as
// decimal text. This package implements both halves of that pipeline for a
// single channel:
//
//   - ZigZagEncode / ZigZagDecode: bijection between signed and unsigned integers
//   - DeltaDeltaEncoder / DeltaDeltaDecoder: stateful second-difference codec
//
// Tokenizing the text body and pairing the two channels lives in the stream
// package; most callers should use stream.Parse or the root calstream package
// instead of this one.
//
// # Channel State
//
// A channel codec keeps the previous reconstructed value and the previous
// first-order difference. The first value of a channel is passed through
// unchanged; every later value is a second difference:
//
//	encode: delta = v - prev; out = delta - prevDelta
//	decode: prevDelta += in;  prev += prevDelta
//
// State is sequential, so values must be fed in stream order and a codec must
// never be shared between channels or between decode sessions. Reset returns a
// codec to its initial state.
//
// # Example
//
//	days := encoding.NewDeltaDeltaDecoder()
//	for _, raw := range []uint64{0, 2, 0} {
//	    day := days.Decode(encoding.ZigZagDecode(raw))
//	    fmt.Println(day) // 0, 1, 2
//	}
package encoding
