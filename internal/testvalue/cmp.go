// Package testvalue compares decoded tson.Values for the round-trip tests,
// the way ion/cmp_test.go compares decoded Ion values with go-cmp plus a
// custom equality function: numeric equality for floats (spec §8 calls for
// exact equality "except Float<->Int collapse", so comparison must be
// numeric, not variant-tag based), span equality for Duration (Encode
// canonicalizes the unit) and tolerance-based equality for LatLon.
package testvalue

import (
	"math"
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/tsonfmt/tson"
)

// latLonTolerance is the precision bound spec §4.2 promises: ~360/2^25
// degrees per axis.
const latLonTolerance = 1e-5

// Equal reports whether a and b hold the same logical value, per the
// comparison rules of spec §8.
func Equal(a, b tson.Value) bool {
	return cmp.Equal(a, b, cmp.Comparer(valuesEqual))
}

// valuesEqual is registered with go-cmp as the Comparer for tson.Value; it
// recurses into Array/Document children via cmp.Equal so the same Comparer
// applies at every depth.
func valuesEqual(a, b tson.Value) bool {
	if a.Kind() == tson.KindLatLon || b.Kind() == tson.KindLatLon {
		return latLonEqual(a, b)
	}
	if isNumeric(a.Kind()) && isNumeric(b.Kind()) {
		return numericFloat(a) == numericFloat(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case tson.KindNull:
		return true
	case tson.KindBool:
		return a.AsBool() == b.AsBool()
	case tson.KindBytes:
		return string(a.AsBytes()) == string(b.AsBytes())
	case tson.KindString:
		return a.AsString() == b.AsString()
	case tson.KindArray:
		return cmp.Equal(a.AsArray(), b.AsArray(), cmp.Comparer(valuesEqual))
	case tson.KindDocument:
		return cmp.Equal(a.AsDocument(), b.AsDocument(), cmp.Comparer(valuesEqual))
	case tson.KindTimestamp:
		return a.AsTime().Equal(b.AsTime())
	case tson.KindDuration:
		// Encode rewrites a Duration in its coarsest exact unit, so Durations
		// compare by span in nanoseconds rather than by (amount, unit).
		nanos := map[tson.DurationUnit]int64{tson.UnitNanosecond: 1, tson.UnitMicrosecond: 1e3,
			tson.UnitMillisecond: 1e6, tson.UnitSecond: 1e9, tson.UnitMinute: 60e9, tson.UnitHour: 3600e9}
		da, db := a.AsDuration(), b.AsDuration()
		sa := new(big.Int).Mul(big.NewInt(da.Amount), big.NewInt(nanos[da.Unit]))
		sb := new(big.Int).Mul(big.NewInt(db.Amount), big.NewInt(nanos[db.Unit]))
		return da == db || (nanos[da.Unit] != 0 && nanos[db.Unit] != 0 && sa.Cmp(sb) == 0)
	default:
		return false
	}
}

func isNumeric(k tson.Kind) bool {
	return k == tson.KindInt || k == tson.KindFloat
}

func numericFloat(v tson.Value) float64 {
	if v.Kind() == tson.KindFloat {
		return v.AsFloat()
	}
	f, _ := new(big.Float).SetInt(v.AsBigInt()).Float64()
	return f
}

func latLonEqual(a, b tson.Value) bool {
	if a.Kind() != tson.KindLatLon || b.Kind() != tson.KindLatLon {
		return false
	}
	la, lb := a.AsLatLon(), b.AsLatLon()
	return math.Abs(la.Lat-lb.Lat) < latLonTolerance && math.Abs(la.Lon-lb.Lon) < latLonTolerance
}
