// Package compress provides compression codecs for calstream bodies.
//
// Stream text is already compact, but long histories of daily counts still
// repeat many short tokens ("0", "2:0", ...) and compress well with a general
// purpose algorithm. The producing side may compress a body and announce the
// algorithm through the HTTP Content-Encoding header; the client package
// picks the matching codec with GetCodec.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone, "identity"): body passed through unchanged
//   - Zstd (format.CompressionZstd, "zstd"): best ratio, pooled encoders/decoders
//   - S2 (format.CompressionS2, "s2"): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4, "lz4"): block format, fastest decompression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress([]byte(body))
//	original, _ := codec.Decompress(packed)
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. The shared codecs
// returned by GetCodec are stateless values backed by sync.Pool instances.
//
// # Error Handling
//
// Decompression of corrupted input or input produced by another algorithm
// returns an error; Compress only fails for LZ4 on internal errors. Empty
// input always maps to empty output.
package compress
