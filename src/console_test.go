package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryansname/battcheck/src/battery"
	"github.com/ryansname/battcheck/src/locale"
)

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	resolver, err := locale.NewResolver()
	require.NoError(t, err)
	var buf bytes.Buffer
	return NewConsole(&buf, resolver, locale.English), &buf
}

func TestParseReading(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := parseReading([]string{"25", "70", "0.7"})
		require.NoError(t, err)
		assert.Equal(t, battery.Reading{Temperature: 25, StateOfCharge: 70, ChargeRate: 0.7}, r)
	})

	t.Run("wrong count", func(t *testing.T) {
		_, err := parseReading([]string{"25", "70"})
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parseReading([]string{"25", "full", "0.7"})
		assert.ErrorContains(t, err, "State of Charge")
	})
}

func TestHandleCommand_Check(t *testing.T) {
	c, buf := newTestConsole(t)

	assert.False(t, handleCommand("check 25 70 0.7", c))
	assert.Empty(t, buf.String())

	assert.False(t, handleCommand("check 50 85 0", c))
	assert.Equal(t,
		"Temperature is too high!\n"+
			"State of Charge is too high!\n"+
			"Warning: Charge Rate is approaching limit!\n",
		buf.String())
}

func TestHandleCommand_CheckBadArgs(t *testing.T) {
	c, buf := newTestConsole(t)

	assert.False(t, handleCommand("check 50", c))
	assert.False(t, handleCommand("check a b c", c))
	assert.Empty(t, buf.String())
}

func TestHandleCommand_Lang(t *testing.T) {
	c, buf := newTestConsole(t)

	handleCommand("lang", c)
	assert.Equal(t, "en\n", buf.String())

	handleCommand("lang de", c)
	assert.Equal(t, locale.German, c.reporter.Language())

	buf.Reset()
	handleCommand("check 50 70 0.7", c)
	assert.Equal(t, "Temperatur ist zu hoch!\n", buf.String())

	// Unsupported language leaves the setting alone
	handleCommand("lang fr", c)
	assert.Equal(t, locale.German, c.reporter.Language())
}

func TestHandleCommand_Status(t *testing.T) {
	c, buf := newTestConsole(t)

	handleCommand("status 50 70 0", c)
	assert.Equal(t,
		"Temperature         50.00  [0, 45]  HIGH\n"+
			"State of Charge     70.00  [20, 80]  OK\n"+
			"Charge Rate          0.00  [0, 0.8]  WARNING\n",
		buf.String())
}

func TestHandleCommand_Demo(t *testing.T) {
	c, buf := newTestConsole(t)
	c.reporter.SetLanguage(locale.German)

	handleCommand("demo", c)

	assert.Equal(t,
		"[en]\n"+
			"Temperature is too high!\n"+
			"State of Charge is too high!\n"+
			"Warning: Charge Rate is approaching limit!\n"+
			"[de]\n"+
			"Temperatur ist zu hoch!\n"+
			"Ladezustand ist zu hoch!\n"+
			"Warnung: Laderate nähert sich dem Grenzwert!\n",
		buf.String())

	// Language is restored afterwards
	assert.Equal(t, locale.German, c.reporter.Language())
}

func TestHandleCommand_Quit(t *testing.T) {
	c, _ := newTestConsole(t)

	assert.True(t, handleCommand("quit", c))
	assert.True(t, handleCommand("exit", c))
	assert.False(t, handleCommand("", c))
	assert.False(t, handleCommand("bogus", c))
}

func TestHandleCommand_Help(t *testing.T) {
	c, buf := newTestConsole(t)

	handleCommand("help", c)
	assert.Contains(t, buf.String(), "check <temperature> <soc> <charge-rate>")
	assert.Contains(t, buf.String(), "lang [en|de]")
}
