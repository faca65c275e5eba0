package locale

import (
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/ryansname/battcheck/src/battery"
)

// ErrNoMessage is returned when the message table has no entry for a lookup
var ErrNoMessage = errors.New("no message")

// Message ID parts. A message ID is the parameter part followed by the status part,
// e.g. "StateOfChargeTooHigh".
var parameterIDs = map[battery.Parameter]string{
	battery.Temperature:   "Temperature",
	battery.StateOfCharge: "StateOfCharge",
	battery.ChargeRate:    "ChargeRate",
}

var statusIDs = map[battery.RangeStatus]string{
	battery.Low:     "TooLow",
	battery.High:    "TooHigh",
	battery.Warning: "ApproachingLimit",
}

// Resolver looks up display text for a classified reading
type Resolver struct {
	localizers map[Language]*i18n.Localizer
}

// NewResolver builds a Resolver over the English and German message tables
func NewResolver() (*Resolver, error) {
	bundle := i18n.NewBundle(English.Tag())

	tables := map[Language][]*i18n.Message{
		English: englishMessages,
		German:  germanMessages,
	}

	localizers := make(map[Language]*i18n.Localizer, len(tables))
	for _, lang := range Languages {
		if err := bundle.AddMessages(lang.Tag(), tables[lang]...); err != nil {
			return nil, fmt.Errorf("add %s messages: %w", lang, err)
		}
		localizers[lang] = i18n.NewLocalizer(bundle, lang.Tag().String())
	}

	return &Resolver{localizers: localizers}, nil
}

// messageID returns the table key for a status and parameter
func messageID(status battery.RangeStatus, param battery.Parameter) (string, error) {
	paramID, ok := parameterIDs[param]
	if !ok {
		return "", fmt.Errorf("parameter %d: %w", int(param), ErrNoMessage)
	}
	statusID, ok := statusIDs[status]
	if !ok {
		return "", fmt.Errorf("%s status of %s: %w", status, param, ErrNoMessage)
	}
	return paramID + statusID, nil
}

// Resolve returns the message for param in the given status.
// OK has no message; it and any unknown language or parameter return an error
// wrapping ErrNoMessage.
func (r *Resolver) Resolve(lang Language, status battery.RangeStatus, param battery.Parameter) (string, error) {
	localizer, ok := r.localizers[lang]
	if !ok {
		return "", fmt.Errorf("%s: %w", lang, ErrNoMessage)
	}

	id, err := messageID(status, param)
	if err != nil {
		return "", err
	}

	text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return "", fmt.Errorf("localize %s (%s): %w", id, lang, errors.Join(ErrNoMessage, err))
	}
	return text, nil
}

// MustResolve is like Resolve but panics if the table has no entry
func (r *Resolver) MustResolve(lang Language, status battery.RangeStatus, param battery.Parameter) string {
	text, err := r.Resolve(lang, status, param)
	if err != nil {
		panic(err)
	}
	return text
}
