package tson

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeKnownVectors checks every concrete encoding in spec §8 that does
// not depend on back-references (vectors 1-17 and 19). Vector 18 is checked
// by TestEncodeStringBackrefs; vector 20's shared-key case is exercised as a
// round trip by TestRoundTripSharedKeyAcrossNesting.
func TestEncodeKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want []byte
	}{
		{"null", Null(), []byte{0x07}},
		{"true", Bool(true), []byte{0x05}},
		{"int 27", Int(27), []byte{0x5B}},
		{"int -2000", Int(-2000), []byte{0x3B, 0xD0, 0x0F}},
		{"empty string", String(""), []byte{0x0E, 0x00}},
		{"string 24 Z", String(strings.Repeat("Z", 24)), append([]byte{0x27}, []byte(strings.Repeat("Z", 24))...)},
		{"string 25 y", String(strings.Repeat("y", 25)), append(append([]byte{0x0E}, []byte(strings.Repeat("y", 25))...), 0x00)},
		{"bytes", Bytes([]byte{0x0B, 0x16, 0x21, 0x2C, 0x37, 0x42, 0x4D}),
			[]byte{0x03, 0x07, 0x0B, 0x16, 0x21, 0x2C, 0x37, 0x42, 0x4D}},
		{"small bool array", Array(Bool(true), Bool(false), Bool(false), Bool(true)),
			[]byte{0x2F, 0x05, 0x06, 0x06, 0x05}},
		{"large int array", Array(Int(0), Int(2), Int(0), Int(63), Int(200)),
			[]byte{0x02, 0x40, 0x42, 0x40, 0x7F, 0x3A, 0xC8, 0x01, 0x00}},
		{"latlon", NewLatLon(46.083529, -118.283026),
			[]byte{0x09, 0xA8, 0xD4, 0xE4, 0x89, 0xFA, 0xC5, 0x58}},
		{"timestamp", Timestamp(time.Date(2016, time.September, 19, 7, 0, 0, 0, time.UTC)),
			[]byte{0x04, 0x80, 0xDB, 0x8A, 0xB6, 0x54}},
		{"duration 500 minutes", NewDuration(500, UnitMinute), []byte{0x37, 0x02, 0xF4, 0x03}},
		{"duration -60 seconds canonicalizes", NewDuration(-60, UnitSecond), []byte{0x37, 0x82, 0x01}},
		{"duration 8000ms canonicalizes", NewDuration(8000, UnitMillisecond), []byte{0x37, 0x01, 0x08}},
		{"float 0.25", Float(0.25), []byte{0x3C, 0x00, 0x00, 0x80, 0x3E}},
		{"float 200.0 collapses to int", Float(200.0), []byte{0x3A, 0xC8, 0x01}},
		{"small doc", Document(map[string]Value{"1": Null()}), []byte{0x28, 0x07, 0x31, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestEncodeStringBackrefs is spec §8 vector #18: repeated strings within one
// array encode as back-references after their first occurrence, in
// first-seen order.
func TestEncodeStringBackrefs(t *testing.T) {
	in := Array(
		String("hello"), String("kitty"), String("hello"), String("world"),
		String("here"), String("kitty"), String("kitty"), String("kitty"),
	)
	want := []byte{
		0x02,
		0x14, 'h', 'e', 'l', 'l', 'o',
		0x14, 'k', 'i', 't', 't', 'y',
		0x0F, 0x00,
		0x14, 'w', 'o', 'r', 'l', 'd',
		0x13, 'h', 'e', 'r', 'e',
		0x0F, 0x01,
		0x0F, 0x01,
		0x0F, 0x01,
		0x00,
	}
	got, err := Encode(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeNonFiniteFloatRejected(t *testing.T) {
	_, err := Encode(Float(math.NaN()))
	require.Error(t, err)
	var nfe *NonFiniteFloatError
	require.ErrorAs(t, err, &nfe)

	_, err = Encode(Float(math.Inf(1)))
	require.Error(t, err)
	require.ErrorAs(t, err, &nfe)
}

func TestEncodeDocumentKeyOrder(t *testing.T) {
	// Keys must be emitted in ascending lexicographic order regardless of Go
	// map iteration order (spec §4.5); encode the same logical document many
	// times and require byte-identical output every time.
	doc := Document(map[string]Value{
		"zebra": Int(1), "apple": Int(2), "mango": Int(3),
	})
	first, err := Encode(doc)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Encode(doc)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
