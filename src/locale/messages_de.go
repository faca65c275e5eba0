package locale

import "github.com/nicksnyder/go-i18n/v2/i18n"

var germanMessages = []*i18n.Message{
	{ID: "TemperatureTooLow", Other: "Temperatur ist zu niedrig!"},
	{ID: "StateOfChargeTooLow", Other: "Ladezustand ist zu niedrig!"},
	{ID: "ChargeRateTooLow", Other: "Laderate ist zu niedrig!"},

	{ID: "TemperatureTooHigh", Other: "Temperatur ist zu hoch!"},
	{ID: "StateOfChargeTooHigh", Other: "Ladezustand ist zu hoch!"},
	{ID: "ChargeRateTooHigh", Other: "Laderate ist zu hoch!"},

	{ID: "TemperatureApproachingLimit", Other: "Warnung: Temperatur nähert sich dem Grenzwert!"},
	{ID: "StateOfChargeApproachingLimit", Other: "Warnung: Ladezustand nähert sich dem Grenzwert!"},
	{ID: "ChargeRateApproachingLimit", Other: "Warnung: Laderate nähert sich dem Grenzwert!"},
}
