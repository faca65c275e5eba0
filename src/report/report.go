package report

import (
	"fmt"
	"io"
	"os"

	"github.com/ryansname/battcheck/src/battery"
	"github.com/ryansname/battcheck/src/locale"
)

// Reporter writes localized messages for readings that are not OK.
// It is not safe for concurrent use.
type Reporter struct {
	out      io.Writer
	resolver *locale.Resolver
	lang     locale.Language
}

// NewReporter creates a Reporter writing to out, starting in English
func NewReporter(out io.Writer, resolver *locale.Resolver) *Reporter {
	return &Reporter{out: out, resolver: resolver, lang: locale.English}
}

// SetLanguage changes the language of subsequent reports
func (r *Reporter) SetLanguage(lang locale.Language) {
	r.lang = lang
}

// Language returns the current report language
func (r *Reporter) Language() locale.Language {
	return r.lang
}

// Report writes one line per non-OK parameter of the reading,
// in Temperature, State of Charge, Charge Rate order
func (r *Reporter) Report(reading battery.Reading) error {
	for _, result := range battery.Check(reading) {
		if result.Status == battery.OK {
			continue
		}

		text, err := r.resolver.Resolve(r.lang, result.Status, result.Parameter)
		if err != nil {
			return fmt.Errorf("report %s: %w", result.Parameter, err)
		}
		if _, err := fmt.Fprintln(r.out, text); err != nil {
			return fmt.Errorf("write %s message: %w", result.Parameter, err)
		}
	}
	return nil
}

// ReportAll reports the three readings given separately
func (r *Reporter) ReportAll(temperature, soc, chargeRate float64) error {
	return r.Report(battery.Reading{
		Temperature:   temperature,
		StateOfCharge: soc,
		ChargeRate:    chargeRate,
	})
}

// ReportAll writes the messages for the readings to standard output in lang
func ReportAll(lang locale.Language, temperature, soc, chargeRate float64) error {
	resolver, err := locale.NewResolver()
	if err != nil {
		return err
	}
	r := NewReporter(os.Stdout, resolver)
	r.SetLanguage(lang)
	return r.ReportAll(temperature, soc, chargeRate)
}
