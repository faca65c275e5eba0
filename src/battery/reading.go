package battery

// Reading holds one sample of the three monitored values
type Reading struct {
	Temperature   float64
	StateOfCharge float64
	ChargeRate    float64
}

// Result is the classification of a single parameter within a Reading
type Result struct {
	Parameter Parameter
	Value     float64
	Status    RangeStatus
}

// Value returns the reading for parameter p.
// Unknown parameters return 0.
func (r Reading) Value(p Parameter) float64 {
	switch p {
	case Temperature:
		return r.Temperature
	case StateOfCharge:
		return r.StateOfCharge
	case ChargeRate:
		return r.ChargeRate
	}
	return 0
}

// Check classifies every parameter of the reading, in Parameters order
func Check(r Reading) []Result {
	results := make([]Result, 0, len(Parameters))
	for _, p := range Parameters {
		value := r.Value(p)
		results = append(results, Result{
			Parameter: p,
			Value:     value,
			Status:    p.Classify(value),
		})
	}
	return results
}

// OK reports whether every parameter of the reading classifies as OK.
// Warning counts as not OK.
func (r Reading) OK() bool {
	for _, result := range Check(r) {
		if result.Status != OK {
			return false
		}
	}
	return true
}

// AllOK reports whether temperature, state of charge and charge rate are all OK
func AllOK(temperature, soc, chargeRate float64) bool {
	return Reading{
		Temperature:   temperature,
		StateOfCharge: soc,
		ChargeRate:    chargeRate,
	}.OK()
}
