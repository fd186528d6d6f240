package tson

// Opcode bytes, exactly as laid out in the wire format (spec §4.4). Every
// legitimate opcode is <= 0x7F, which is what lets the document-entry encoder
// steal the high bit of a value's first byte to signal a back-referenced key
// (§4.5.1).
const (
	opDocument        byte = 0x01 // 0-terminated document
	opArray           byte = 0x02 // 0-terminated array
	opBytes           byte = 0x03 // varuint(len), len bytes
	opTimestampPos    byte = 0x04 // varuint(ms since epoch)
	opTrue            byte = 0x05
	opFalse           byte = 0x06
	opNull            byte = 0x07
	opTimestampNeg    byte = 0x08 // varuint(-ms since epoch)
	opLatLon          byte = 0x09 // varuint(50-bit interleaved hash)
	opStringTerm      byte = 0x0E // UTF-8 bytes, 0x00 terminator
	opStringBackref   byte = 0x0F // varuint(index)
	opSmallStringMin  byte = 0x10 // length 1
	opSmallStringMax  byte = 0x27 // length 24
	opSmallDocMin     byte = 0x28 // 1 entry
	opSmallDocMax     byte = 0x2B // 4 entries
	opSmallArrayMin   byte = 0x2C // 1 element
	opSmallArrayMax   byte = 0x2F // 4 elements
	opDuration        byte = 0x37
	opIntPos          byte = 0x3A // varuint(value)
	opIntNeg          byte = 0x3B // varuint(-value)
	opFloat4          byte = 0x3C // 4 bytes, IEEE-754 single, little-endian
	opFloat8          byte = 0x3D // 8 bytes, IEEE-754 double, little-endian
	opSmallIntMin     byte = 0x40 // value 0
	opSmallIntMax     byte = 0x7F // value 63
)

const (
	maxSmallStringLen = int(opSmallStringMax - opSmallStringMin + 1) // 24
	maxSmallDocLen    = int(opSmallDocMax - opSmallDocMin + 1)        // 4
	maxSmallArrayLen  = int(opSmallArrayMax - opSmallArrayMin + 1)    // 4
	maxSmallInt       = int(opSmallIntMax - opSmallIntMin)            // 63
)

// Base opcodes for the small forms, such that code = base + count (or, for
// strings, base + length). Each is one less than the corresponding *Min
// constant above, so each base is the last opcode of the preceding range and
// never stands for a count of 0 (count 0 is always the large, terminated form
// instead).
const (
	smallStringBase byte = opStringBackref  // + len(1..24)
	smallDocBase    byte = opSmallStringMax // 0x27, + entry count (1..4)
	smallArrayBase  byte = opSmallDocMax    // 0x2B, + element count (1..4)
)

// reservedOpcode reports whether b falls in one of the ranges that must never
// be emitted by an encoder (spec §4.4) and that a decoder must reject.
func reservedOpcode(b byte) bool {
	switch {
	case b >= 10 && b <= 13:
		return true
	case b >= 48 && b <= 54:
		return true
	case b == 56 || b == 57:
		return true
	case b >= 62 && b <= 63:
		return true
	}
	return false
}

// durationUnitCode maps a DurationUnit to its low-7-bits wire code (spec §4.4).
var durationUnitCode = func() map[DurationUnit]byte {
	return map[DurationUnit]byte{
		UnitSecond:      1,
		UnitMinute:      2,
		UnitMillisecond: 3,
		UnitHour:        4,
		UnitMicrosecond: 6,
		UnitNanosecond:  9,
	}
}()

// durationUnitFromCode is the inverse of durationUnitCode, built once at
// package init the way ion/consts.go builds its binaryNulls/textNulls lookup
// tables via an immediately-invoked function literal.
var durationUnitFromCode = func() map[byte]DurationUnit {
	m := make(map[byte]DurationUnit, len(durationUnitCode))
	for unit, code := range durationUnitCode {
		m[code] = unit
	}
	return m
}()
