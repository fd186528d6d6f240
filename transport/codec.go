// Package transport provides optional helpers for moving already-encoded
// TSON payloads over an unreliable medium or into storage: compression
// codecs and a checksum, layered entirely outside the core wire format.
// Nothing in this package changes a single byte of what tson.Encode
// produces — a Codec compresses the result, it does not participate in
// decoding it.
package transport

// Compressor compresses an already-encoded TSON payload.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// A Codec both compresses and decompresses.
type Codec interface {
	Compressor
	Decompressor
}

// noopCodec passes data through unchanged; useful as a Codec when
// compression is configured but conditionally disabled.
type noopCodec struct{}

// NewNoOpCodec returns a Codec that does not compress.
func NewNoOpCodec() Codec { return noopCodec{} }

func (noopCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (noopCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
