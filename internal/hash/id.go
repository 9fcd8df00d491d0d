package hash

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the xxHash64 of a stream body.
func Digest(body []byte) uint64 {
	return xxhash.Sum64(body)
}

// DigestString computes the xxHash64 of a stream body held as a string.
func DigestString(body string) uint64 {
	return xxhash.Sum64String(body)
}

// Hex formats a digest as 16 lowercase hex digits, suitable for logs and ETags.
func Hex(digest uint64) string {
	s := strconv.FormatUint(digest, 16)

	return strings.Repeat("0", 16-len(s)) + s
}
