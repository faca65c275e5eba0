package battery

// RangeStatus is the classification of a reading against its bounds.
type RangeStatus int

const (
	OK RangeStatus = iota
	Low
	High
	Warning
)

// String returns the upper-case status name
func (s RangeStatus) String() string {
	switch s {
	case OK:
		return "OK"
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	case Warning:
		return "WARNING"
	}
	return "UNKNOWN"
}

// warningDivisor sets the warning band to 5% of the upper bound on both edges.
// Dividing keeps bounds like 0.8 exact where multiplying by 0.05 does not.
const warningDivisor = 20

// WarningTolerance returns the width of the warning band for a range with the given max.
// A negative max gives a negative tolerance, which shrinks the band to nothing.
func WarningTolerance(max float64) float64 {
	return max / warningDivisor
}

// Classify checks value against [min, max].
//   - below min is Low, above max is High
//   - inside the band of WarningTolerance(max) next to either bound is Warning
//   - everything else is OK
//
// Inputs are not validated: NaN fails every comparison and classifies as OK,
// and an inverted range is compared as given.
func Classify(value, min, max float64) RangeStatus {
	tolerance := WarningTolerance(max)
	switch {
	case value < min:
		return Low
	case value > max:
		return High
	case value < min+tolerance || value > max-tolerance:
		return Warning
	}
	return OK
}
