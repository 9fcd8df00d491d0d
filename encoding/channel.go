package encoding

// ChannelEncoder turns a sequence of absolute values into wire integers.
type ChannelEncoder interface {
	// Encode returns the signed wire integer for v.
	//
	// Values must be passed in stream order; the result depends on every
	// earlier call since the last Reset.
	Encode(v int64) int64

	// Reset returns the encoder to its initial state so it can start a new channel.
	Reset()
}

// ChannelDecoder reconstructs absolute values from signed wire integers.
type ChannelDecoder interface {
	// Decode returns the absolute value reconstructed from raw.
	//
	// Inputs must be passed in stream order; the result depends on every
	// earlier call since the last Reset. Decode never fails.
	Decode(raw int64) int64

	// Reset returns the decoder to its initial state so it can start a new channel.
	Reset()
}
