package tson

import "math/big"

// Varuint is TSON's base-128 little-endian unsigned integer encoding: each
// byte stores seven bits of value, least-significant group first, with the
// high bit of every non-final byte set to 1 (more bytes follow) and cleared
// on the final byte. This is the opposite polarity of Ion's VarUInt, whose
// terminal byte is the one with the high bit *set* — see ion/bits.go's
// appendVarUint for the mirror-image version of this idea.

// varuintLen pre-calculates the length, in bytes, of the given varuint value.
func varuintLen(v uint64) int {
	length := 1
	v >>= 7
	for v > 0 {
		length++
		v >>= 7
	}
	return length
}

// appendVaruint appends v to b using TSON's varuint encoding.
func appendVaruint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// readVaruint reads a varuint starting at offset pos in b, returning the
// decoded value and the offset immediately after it. Any number of leading
// continuation bytes are accepted; only encoders are required to emit the
// minimal form.
func readVaruint(b []byte, pos int) (uint64, int, error) {
	var v uint64
	var shift uint
	start := pos

	for {
		if pos >= len(b) {
			return 0, 0, &TruncatedError{Offset: start, Want: "varuint"}
		}
		c := b[pos]
		pos++
		if shift < 64 {
			v |= uint64(c&0x7F) << shift
		} else if c&0x7F != 0 {
			return 0, 0, &TruncatedError{Offset: start, Want: "varuint (too long)"}
		}
		if c&0x80 == 0 {
			return v, pos, nil
		}
		shift += 7
	}
}

// appendVaruintBig is the arbitrary-precision counterpart of appendVaruint,
// used for Int magnitudes (spec §3: "arbitrary-precision signed integer").
// v must be non-negative.
func appendVaruintBig(b []byte, v *big.Int) []byte {
	const mask = 0x7F

	tmp := new(big.Int).Set(v)
	lsb := new(big.Int)
	for {
		lsb.And(tmp, big.NewInt(mask))
		tmp.Rsh(tmp, 7)
		if tmp.Sign() == 0 {
			return append(b, byte(lsb.Uint64()))
		}
		b = append(b, byte(lsb.Uint64())|0x80)
	}
}

// readVaruintBig is the arbitrary-precision counterpart of readVaruint.
func readVaruintBig(b []byte, pos int) (*big.Int, int, error) {
	result := new(big.Int)
	part := new(big.Int)
	shift := uint(0)
	start := pos

	for {
		if pos >= len(b) {
			return nil, 0, &TruncatedError{Offset: start, Want: "varuint"}
		}
		c := b[pos]
		pos++
		part.SetUint64(uint64(c & 0x7F))
		part.Lsh(part, shift)
		result.Or(result, part)
		if c&0x80 == 0 {
			return result, pos, nil
		}
		shift += 7
	}
}
