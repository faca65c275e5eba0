package battery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOK(t *testing.T) {
	assert.True(t, AllOK(25, 70, 0.7))
	assert.False(t, AllOK(50, 85, 0))

	// A single warning is enough to fail the check
	assert.False(t, AllOK(25, 70, 0.78))
	assert.False(t, AllOK(44, 70, 0.7))
}

func TestCheck(t *testing.T) {
	results := Check(Reading{Temperature: 50, StateOfCharge: 85, ChargeRate: 0})

	assert.Equal(t, []Result{
		{Parameter: Temperature, Value: 50, Status: High},
		{Parameter: StateOfCharge, Value: 85, Status: High},
		{Parameter: ChargeRate, Value: 0, Status: Warning},
	}, results)
}

func TestReadingValue(t *testing.T) {
	r := Reading{Temperature: 1, StateOfCharge: 2, ChargeRate: 3}

	assert.Equal(t, 1.0, r.Value(Temperature))
	assert.Equal(t, 2.0, r.Value(StateOfCharge))
	assert.Equal(t, 3.0, r.Value(ChargeRate))
	assert.Equal(t, 0.0, r.Value(Parameter(99)))
}

func TestParameterBounds(t *testing.T) {
	tests := []struct {
		param Parameter
		name  string
		want  Bounds
	}{
		{Temperature, "Temperature", Bounds{Min: 0, Max: 45}},
		{StateOfCharge, "State of Charge", Bounds{Min: 20, Max: 80}},
		{ChargeRate, "Charge Rate", Bounds{Min: 0, Max: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.param.Valid())
			assert.Equal(t, tt.name, tt.param.String())
			assert.Equal(t, tt.want, tt.param.Bounds())
		})
	}

	t.Run("unknown parameter", func(t *testing.T) {
		p := Parameter(99)
		assert.False(t, p.Valid())
		assert.Equal(t, "Unknown", p.String())
		assert.Equal(t, Bounds{}, p.Bounds())
	})
}

func TestCheckMixedStatuses(t *testing.T) {
	results := Check(Reading{Temperature: 44, StateOfCharge: 50, ChargeRate: 0.9})

	assert.Len(t, results, 3)
	assert.Equal(t, Warning, results[0].Status)
	assert.Equal(t, OK, results[1].Status)
	assert.Equal(t, High, results[2].Status)
}
