package tson

import (
	"encoding/binary"
	"math"
	"math/big"
	"time"
)

// encoder recurses over a Value tree, building up the byte sequence for
// each node and threading the two back-reference caches through the whole
// walk, the way ion/binarywriter.go's binaryWriter threads a local symbol
// table through recursive writes. One encoder lives exactly as long as one
// top-level Encode call (spec §4.7).
type encoder struct {
	strings *refCache
	keys    *refCache
}

// Encode serializes v to its TSON byte representation.
//
// Encode is total over the Value domain except for non-finite floats, which
// have no TSON representation and are rejected with a *NonFiniteFloatError.
func Encode(v Value) ([]byte, error) {
	e := &encoder{strings: newRefCache(), keys: newRefCache()}
	return e.encodeValue(v)
}

func (e *encoder) encodeValue(v Value) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte{opNull}, nil
	case KindBool:
		if v.boolVal {
			return []byte{opTrue}, nil
		}
		return []byte{opFalse}, nil
	case KindInt:
		return e.encodeInt(v.intVal), nil
	case KindFloat:
		return e.encodeFloat(v.floatVal)
	case KindBytes:
		return e.encodeBytes(v.bytesVal), nil
	case KindString:
		return e.encodeString(v.stringVal), nil
	case KindArray:
		return e.encodeArray(v.arrayVal)
	case KindDocument:
		return e.encodeDocument(v.docVal)
	case KindTimestamp:
		return e.encodeTimestamp(v.timeVal), nil
	case KindDuration:
		return e.encodeDuration(v.durVal), nil
	case KindLatLon:
		return e.encodeLatLon(v.latLonVal), nil
	default:
		panic("tson: unreachable value kind")
	}
}

// encodeInt implements the selection rule of spec §4.5: small form for
// 0..63, otherwise a signed-magnitude varuint form.
func (e *encoder) encodeInt(n *big.Int) []byte {
	if n.IsInt64() {
		i := n.Int64()
		if i >= 0 && i <= int64(maxSmallInt) {
			return []byte{opSmallIntMin + byte(i)}
		}
	}

	if n.Sign() < 0 {
		mag := new(big.Int).Neg(n)
		return appendVaruintBig([]byte{opIntNeg}, mag)
	}
	return appendVaruintBig([]byte{opIntPos}, n)
}

// encodeFloat implements the Float -> Int collapse and Float4/Float8
// selection of spec §4.5.
func (e *encoder) encodeFloat(x float64) ([]byte, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, &NonFiniteFloatError{Value: x}
	}

	r := math.RoundToEven(x)
	if r == x {
		bi, _ := big.NewFloat(r).Int(nil)
		return e.encodeInt(bi), nil
	}

	if f32 := float32(x); float64(f32) == x {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f32))
		return append([]byte{opFloat4}, buf[:]...), nil
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
	return append([]byte{opFloat8}, buf[:]...), nil
}

func (e *encoder) encodeBytes(bs []byte) []byte {
	b := appendVaruint([]byte{opBytes}, uint64(len(bs)))
	return append(b, bs...)
}

// encodeString implements the string memoization protocol of spec §4.5:
// a repeat emits a back-reference and does not touch the cache; a first
// occurrence inserts into the cache (pre-insert, at the cache's current
// size) and then emits the small or terminated form.
func (e *encoder) encodeString(s string) []byte {
	if i, ok := e.strings.find(s); ok {
		return appendVaruint([]byte{opStringBackref}, uint64(i))
	}
	e.strings.add(s)

	n := len(s)
	if n >= 1 && n <= maxSmallStringLen {
		b := make([]byte, 0, 1+n)
		b = append(b, smallStringBase+byte(n))
		return append(b, s...)
	}

	b := make([]byte, 0, 2+n)
	b = append(b, opStringTerm)
	b = append(b, s...)
	return append(b, 0x00)
}

// encodeArray encodes each element into a shared-cache subsequence, then
// picks the small or terminated container form (spec §4.5).
func (e *encoder) encodeArray(vs []Value) ([]byte, error) {
	var body []byte
	for _, el := range vs {
		eb, err := e.encodeValue(el)
		if err != nil {
			return nil, err
		}
		body = append(body, eb...)
	}

	n := len(vs)
	if n >= 1 && n <= maxSmallArrayLen {
		return append([]byte{smallArrayBase + byte(n)}, body...), nil
	}
	b := append([]byte{opArray}, body...)
	return append(b, 0x00), nil
}

// encodeDocument implements key sorting and the stolen-bit trick of spec
// §4.5.1: each entry's value is encoded first (updating both caches), then
// the key is either replaced by a back-reference (with the value's leading
// opcode byte's high bit stolen to flag it) or newly registered and written
// out as a terminated UTF-8 name.
func (e *encoder) encodeDocument(d map[string]Value) ([]byte, error) {
	keys := sortedKeys(d)

	var entries []byte
	for _, k := range keys {
		valBytes, err := e.encodeValue(d[k])
		if err != nil {
			return nil, err
		}

		if i, ok := e.keys.find(k); ok {
			valBytes[0] |= 0x80
			entries = append(entries, valBytes...)
			entries = appendVaruint(entries, uint64(i))
			continue
		}

		e.keys.add(k)
		entries = append(entries, valBytes...)
		entries = append(entries, k...)
		entries = append(entries, 0x00)
	}

	n := len(keys)
	if n >= 1 && n <= maxSmallDocLen {
		return append([]byte{smallDocBase + byte(n)}, entries...), nil
	}
	b := append([]byte{opDocument}, entries...)
	return append(b, 0x00), nil
}

func (e *encoder) encodeTimestamp(t time.Time) []byte {
	delta := epochDeltaMillis(t)
	if delta >= 0 {
		return appendVaruint([]byte{opTimestampPos}, uint64(delta))
	}
	return appendVaruint([]byte{opTimestampNeg}, uint64(-delta))
}

func (e *encoder) encodeDuration(d Duration) []byte {
	cd := d.canonicalize()

	mag := cd.Amount
	mask := byte(0)
	if mag < 0 {
		mask = 0x80
		mag = -mag
	}

	code := durationUnitCode[cd.Unit]
	b := []byte{opDuration, mask | code}
	return appendVaruint(b, uint64(mag))
}

func (e *encoder) encodeLatLon(ll LatLon) []byte {
	h := encodeGeohash(ll.Lat, ll.Lon)
	return appendVaruint([]byte{opLatLon}, h)
}
