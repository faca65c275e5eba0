package battery

// Parameter identifies one of the monitored battery readings
type Parameter int

const (
	Temperature Parameter = iota
	StateOfCharge
	ChargeRate
)

// Parameters lists every monitored parameter in reporting order
var Parameters = []Parameter{Temperature, StateOfCharge, ChargeRate}

// Bounds is an inclusive [Min, Max] range
type Bounds struct {
	Min float64
	Max float64
}

// Tolerance returns the warning band width for these bounds
func (b Bounds) Tolerance() float64 {
	return WarningTolerance(b.Max)
}

// Classify checks value against these bounds
func (b Bounds) Classify(value float64) RangeStatus {
	return Classify(value, b.Min, b.Max)
}

// Fixed operating limits. Temperature is in degrees Celsius, state of charge in
// percent and charge rate as a C-rate.
var parameterBounds = map[Parameter]Bounds{
	Temperature:   {Min: 0, Max: 45},
	StateOfCharge: {Min: 20, Max: 80},
	ChargeRate:    {Min: 0, Max: 0.8},
}

var parameterNames = map[Parameter]string{
	Temperature:   "Temperature",
	StateOfCharge: "State of Charge",
	ChargeRate:    "Charge Rate",
}

// Valid reports whether p is one of the monitored parameters
func (p Parameter) Valid() bool {
	_, ok := parameterBounds[p]
	return ok
}

// String returns the display name of the parameter
func (p Parameter) String() string {
	if name, ok := parameterNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Bounds returns the operating limits for the parameter.
// An unknown parameter has zero bounds.
func (p Parameter) Bounds() Bounds {
	return parameterBounds[p]
}

// Classify checks value against the parameter's operating limits
func (p Parameter) Classify(value float64) RangeStatus {
	return p.Bounds().Classify(value)
}
