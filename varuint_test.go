package tson

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaruintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x7F, 0x80, 0xFF, 200, 2000, 1 << 20, 1 << 40, ^uint64(0)}
	for _, v := range values {
		b := appendVaruint(nil, v)
		assert.Equal(t, len(b), varuintLen(v))

		got, next, err := readVaruint(b, 0)
		require.NoError(t, err)
		assert.Equal(t, len(b), next)
		assert.Equal(t, v, got)
	}
}

func TestVaruintKnownEncodings(t *testing.T) {
	// 2000 = 0b1111_1010000; low 7 bits 0b1010000=0x50 continuation, remaining
	// 15 (0x0F) in the final byte. Cross-checked against spec §8 vector #4
	// (Int -2000 encodes its 2000 magnitude as D0 0F).
	assert.Equal(t, []byte{0xD0, 0x0F}, appendVaruint(nil, 2000))
	assert.Equal(t, []byte{0xC8, 0x01}, appendVaruint(nil, 200))
	assert.Equal(t, []byte{0x00}, appendVaruint(nil, 0))
	assert.Equal(t, []byte{0x7F}, appendVaruint(nil, 0x7F))
}

func TestReadVaruintTruncated(t *testing.T) {
	_, _, err := readVaruint([]byte{0x80, 0x80}, 0)
	require.Error(t, err)
	var te *TruncatedError
	require.ErrorAs(t, err, &te)
}

func TestVaruintBigRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "127", "128", "2000",
		"123456789012345678901234567890",
		"340282366920938463463374607431768211456", // 2^128
	}
	for _, s := range cases {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)

		b := appendVaruintBig(nil, v)
		got, next, err := readVaruintBig(b, 0)
		require.NoError(t, err)
		assert.Equal(t, len(b), next)
		assert.Equal(t, 0, v.Cmp(got))
	}
}
