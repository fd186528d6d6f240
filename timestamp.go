package tson

import "time"

// epochDeltaMillis returns t's offset from Epoch in integer milliseconds,
// following the convention of ion/timestamp.go's use of time.Time as the
// underlying representation.
func epochDeltaMillis(t time.Time) int64 {
	return t.UnixMilli() - Epoch.UnixMilli()
}

// timeFromEpochDeltaMillis reverses epochDeltaMillis.
func timeFromEpochDeltaMillis(delta int64) time.Time {
	return time.UnixMilli(Epoch.UnixMilli() + delta).UTC()
}
