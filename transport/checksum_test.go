package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumDeterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	assert.Equal(t, Checksum(data), Checksum(append([]byte{}, data...)))
}

func TestVerifyChecksumDetectsCorruption(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sum := Checksum(data)
	assert.True(t, VerifyChecksum(data, sum))

	corrupted := append([]byte{}, data...)
	corrupted[0] ^= 0xFF
	assert.False(t, VerifyChecksum(corrupted, sum))
}
