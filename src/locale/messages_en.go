package locale

import "github.com/nicksnyder/go-i18n/v2/i18n"

var englishMessages = []*i18n.Message{
	{ID: "TemperatureTooLow", Other: "Temperature is too low!"},
	{ID: "StateOfChargeTooLow", Other: "State of Charge is too low!"},
	{ID: "ChargeRateTooLow", Other: "Charge Rate is too low!"},

	{ID: "TemperatureTooHigh", Other: "Temperature is too high!"},
	{ID: "StateOfChargeTooHigh", Other: "State of Charge is too high!"},
	{ID: "ChargeRateTooHigh", Other: "Charge Rate is too high!"},

	{ID: "TemperatureApproachingLimit", Other: "Warning: Temperature is approaching limit!"},
	{ID: "StateOfChargeApproachingLimit", Other: "Warning: State of Charge is approaching limit!"},
	{ID: "ChargeRateApproachingLimit", Other: "Warning: Charge Rate is approaching limit!"},
}
