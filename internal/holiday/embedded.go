package holiday

import (
	"fmt"
	"sort"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/at"
	"github.com/rickar/cal/v2/be"
	"github.com/rickar/cal/v2/br"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/ch"
	"github.com/rickar/cal/v2/cz"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fi"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/ie"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/mx"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/nz"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/pt"
	"github.com/rickar/cal/v2/ru"
	"github.com/rickar/cal/v2/se"
	"github.com/rickar/cal/v2/sk"
	"github.com/rickar/cal/v2/ua"
	"github.com/rickar/cal/v2/us"
	"github.com/rickar/cal/v2/za"
	"go.uber.org/zap"

	"github.com/username/datecalc/pkg/civil"
)

// countryHolidays maps 2-letter country codes to the holiday rule sets
// shipped with the rickar/cal library. The rules themselves (including
// floating holidays) are evaluated by the library, never here.
var countryHolidays = map[string][]*cal.Holiday{
	"AT": at.Holidays,
	"BE": be.Holidays,
	"BR": br.Holidays,
	"CA": ca.Holidays,
	"CH": ch.Holidays,
	"CZ": cz.Holidays,
	"DE": de.Holidays,
	"DK": dk.Holidays,
	"ES": es.Holidays,
	"FI": fi.Holidays,
	"FR": fr.Holidays,
	"GB": gb.Holidays,
	"IE": ie.Holidays,
	"IT": it.Holidays,
	"JP": jp.Holidays,
	"MX": mx.Holidays,
	"NL": nl.Holidays,
	"NO": no.Holidays,
	"NZ": nz.Holidays,
	"PL": pl.Holidays,
	"PT": pt.Holidays,
	"RU": ru.Holidays,
	"SE": se.Holidays,
	"SK": sk.Holidays,
	"UA": ua.Holidays,
	"US": us.Holidays,
	"ZA": za.Holidays,
}

// EmbeddedProvider serves holidays from the rule sets compiled into the
// binary. It needs no I/O and never goes stale within a process.
type EmbeddedProvider struct {
	logger *zap.Logger
}

// NewEmbeddedProvider creates an EmbeddedProvider.
func NewEmbeddedProvider(logger *zap.Logger) *EmbeddedProvider {
	return &EmbeddedProvider{logger: logger}
}

// Holidays returns all holidays the library defines for the country in
// the given year, sorted ascending.
func (p *EmbeddedProvider) Holidays(year int, country string) ([]Entry, error) {
	code := NormalizeCountry(country)
	rules, ok := countryHolidays[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q (use 'list' to see supported codes)", ErrUnsupportedCountry, country)
	}

	entries := make([]Entry, 0, len(rules))
	for _, rule := range rules {
		actual, _ := rule.Calc(year)
		if actual.IsZero() {
			// Rule not in effect for this year.
			continue
		}
		entries = append(entries, Entry{Date: civil.DateOf(actual), Name: rule.Name})
	}
	sortEntries(entries)

	p.logger.Debug("Resolved embedded holidays",
		zap.String("country", code),
		zap.Int("year", year),
		zap.Int("count", len(entries)))

	return entries, nil
}

// Countries returns the supported country codes, sorted.
func (p *EmbeddedProvider) Countries() ([]string, error) {
	codes := make([]string, 0, len(countryHolidays))
	for code := range countryHolidays {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}
