package tson

import (
	"fmt"
	"math/big"
	"sort"
	"time"
)

// Epoch is the fixed reference instant TSON timestamps are relative to.
var Epoch = time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)

// A Kind identifies which variant of the Value tagged union a Value holds.
type Kind uint8

// Possible Kind values, one per Value variant (spec §3).
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBytes
	KindString
	KindArray
	KindDocument
	KindTimestamp
	KindDuration
	KindLatLon
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDocument:
		return "document"
	case KindTimestamp:
		return "timestamp"
	case KindDuration:
		return "duration"
	case KindLatLon:
		return "latlon"
	default:
		return fmt.Sprintf("<unknown kind %d>", uint8(k))
	}
}

// A Value is the tagged union at the heart of TSON's data model (spec §3).
// It is constructed by the caller and consumed once by Encode; Decode
// produces a fresh Value tree.
type Value struct {
	kind Kind

	boolVal   bool
	intVal    *big.Int
	floatVal  float64
	bytesVal  []byte
	stringVal string
	arrayVal  []Value
	docVal    map[string]Value
	timeVal   time.Time
	durVal    Duration
	latLonVal LatLon
}

// Null returns the Value representing TSON's null.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Value wrapping a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int returns a Value wrapping a signed 64-bit integer.
func Int(n int64) Value { return Value{kind: KindInt, intVal: big.NewInt(n)} }

// BigInt returns a Value wrapping an arbitrary-precision signed integer.
// The big.Int is copied; the caller's copy is not retained.
func BigInt(n *big.Int) Value {
	return Value{kind: KindInt, intVal: new(big.Int).Set(n)}
}

// Float returns a Value wrapping an IEEE-754 double.
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// Bytes returns a Value wrapping an opaque byte blob. Bytes is a distinct
// type from String even though both carry bytes.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, bytesVal: cp}
}

// String returns a Value wrapping a UTF-8 string.
func String(s string) Value { return Value{kind: KindString, stringVal: s} }

// Array returns a Value wrapping an ordered sequence of Values.
func Array(vs ...Value) Value {
	cp := make([]Value, len(vs))
	copy(cp, vs)
	return Value{kind: KindArray, arrayVal: cp}
}

// Document returns a Value wrapping a mapping from string key to Value.
// The map is copied; keys must be unique, which a Go map already guarantees.
func Document(d map[string]Value) Value {
	cp := make(map[string]Value, len(d))
	for k, v := range d {
		cp[k] = v
	}
	return Value{kind: KindDocument, docVal: cp}
}

// Timestamp returns a Value wrapping an instant, truncated to millisecond
// precision.
func Timestamp(t time.Time) Value {
	ms := t.UnixMilli()
	return Value{kind: KindTimestamp, timeVal: time.UnixMilli(ms).UTC()}
}

// NewDuration returns a Value wrapping a Duration.
func NewDuration(amount int64, unit DurationUnit) Value {
	return Value{kind: KindDuration, durVal: Duration{Amount: amount, Unit: unit}}
}

// NewLatLon returns a Value wrapping a geographic coordinate pair.
func NewLatLon(lat, lon float64) Value {
	return Value{kind: KindLatLon, latLonVal: LatLon{Lat: lat, Lon: lon}}
}

// Kind reports which Value variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns v's boolean payload. It panics if v is not a Bool.
func (v Value) AsBool() bool {
	v.mustBe(KindBool)
	return v.boolVal
}

// AsBigInt returns v's integer payload. It panics if v is not an Int.
func (v Value) AsBigInt() *big.Int {
	v.mustBe(KindInt)
	return v.intVal
}

// AsInt64 returns v's integer payload narrowed to an int64. It panics if v
// is not an Int, and silently truncates if the value overflows an int64 —
// callers working with arbitrary-precision values should use AsBigInt.
func (v Value) AsInt64() int64 {
	v.mustBe(KindInt)
	return v.intVal.Int64()
}

// AsFloat returns v's float payload. It panics if v is not a Float.
func (v Value) AsFloat() float64 {
	v.mustBe(KindFloat)
	return v.floatVal
}

// AsBytes returns v's byte payload. It panics if v is not Bytes.
func (v Value) AsBytes() []byte {
	v.mustBe(KindBytes)
	return v.bytesVal
}

// AsString returns v's string payload. It panics if v is not a String.
func (v Value) AsString() string {
	v.mustBe(KindString)
	return v.stringVal
}

// AsArray returns v's element slice. It panics if v is not an Array.
func (v Value) AsArray() []Value {
	v.mustBe(KindArray)
	return v.arrayVal
}

// AsDocument returns v's key/value mapping. It panics if v is not a Document.
func (v Value) AsDocument() map[string]Value {
	v.mustBe(KindDocument)
	return v.docVal
}

// AsTime returns v's instant. It panics if v is not a Timestamp.
func (v Value) AsTime() time.Time {
	v.mustBe(KindTimestamp)
	return v.timeVal
}

// AsDuration returns v's Duration. It panics if v is not a Duration.
func (v Value) AsDuration() Duration {
	v.mustBe(KindDuration)
	return v.durVal
}

// AsLatLon returns v's LatLon. It panics if v is not a LatLon.
func (v Value) AsLatLon() LatLon {
	v.mustBe(KindLatLon)
	return v.latLonVal
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("tson: value is a %v, not a %v", v.kind, k))
	}
}

// sortedKeys returns the keys of d in ascending lexicographic byte order, as
// required by encoding a Document (spec §4.5): "emitted in ascending
// lexicographic key order".
func sortedKeys(d map[string]Value) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// A LatLon is a geographic coordinate pair, encoded lossily at 25-bit-pair
// precision (spec §4.2).
type LatLon struct {
	Lat float64
	Lon float64
}

// A DurationUnit identifies the unit a Duration's amount is expressed in.
type DurationUnit uint8

// Possible DurationUnit values. The numeric values here are internal; the
// wire-format unit codes live in opcodes.go's durationUnitCode table.
const (
	UnitNanosecond DurationUnit = iota
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
)

// String implements fmt.Stringer for DurationUnit.
func (u DurationUnit) String() string {
	switch u {
	case UnitNanosecond:
		return "nanosecond"
	case UnitMicrosecond:
		return "microsecond"
	case UnitMillisecond:
		return "millisecond"
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	default:
		return fmt.Sprintf("<unknown unit %d>", uint8(u))
	}
}

// A Duration is a signed amount in a given unit (spec §3, §4.3).
type Duration struct {
	Amount int64
	Unit   DurationUnit
}
