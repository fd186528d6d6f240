package transport

import "github.com/cespare/xxhash/v2"

// Checksum returns the xxHash64 of an encoded TSON payload, for callers that
// want to verify a payload survived an unreliable transport unmodified. The
// checksum is not part of the TSON wire format and is never embedded in the
// payload itself — store it alongside, in whatever envelope the transport
// already uses.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// VerifyChecksum reports whether data's checksum matches want.
func VerifyChecksum(data []byte, want uint64) bool {
	return Checksum(data) == want
}
