package encoding

// ZigZagEncode maps a signed integer to an unsigned one so that values of small
// magnitude stay small: 0→0, -1→1, 1→2, -2→3, 2→4.
//
// Parameters:
//   - v: Signed value to encode
//
// Returns:
//   - uint64: Zigzag encoded value
func ZigZagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

// ZigZagDecode reverses ZigZagEncode using branchless bit operations.
//
// Even inputs decode to non-negative values (i/2), odd inputs to negative
// values (-(i+1)/2).
//
// Parameters:
//   - i: Zigzag encoded value
//
// Returns:
//   - int64: Original signed value
func ZigZagDecode(i uint64) int64 {
	return int64((i >> 1) ^ -(i & 1)) //nolint:gosec
}
