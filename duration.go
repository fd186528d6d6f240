package tson

// canonicalize reduces d to the coarsest unit that still exactly represents
// its amount (spec §4.3): nanosecond -> microsecond -> millisecond -> second
// -> minute -> hour, dividing by 1000 below the second and by 60 above it,
// advancing only while the remainder is exactly zero.
func (d Duration) canonicalize() Duration {
	amount := d.Amount
	unit := d.Unit

	for {
		var divisor int64
		var next DurationUnit

		switch unit {
		case UnitNanosecond:
			divisor, next = 1000, UnitMicrosecond
		case UnitMicrosecond:
			divisor, next = 1000, UnitMillisecond
		case UnitMillisecond:
			divisor, next = 1000, UnitSecond
		case UnitSecond:
			divisor, next = 60, UnitMinute
		case UnitMinute:
			divisor, next = 60, UnitHour
		case UnitHour:
			return Duration{Amount: amount, Unit: unit}
		default:
			return Duration{Amount: amount, Unit: unit}
		}

		if amount%divisor != 0 {
			return Duration{Amount: amount, Unit: unit}
		}
		amount /= divisor
		unit = next
	}
}
