package holiday

import (
	"errors"
	"sort"
	"strings"

	"github.com/username/datecalc/pkg/civil"
)

// ErrUnsupportedCountry reports a holiday lookup for a country the
// provider has no data for. Callers must surface it rather than fall
// back to a default country.
var ErrUnsupportedCountry = errors.New("unsupported country")

// Entry is a single named holiday.
type Entry struct {
	Date civil.Date
	Name string
}

// Provider supplies national holiday data. Implementations own the
// holiday rules (fixed dates, floating rules like "3rd Monday of
// January"); consumers only merge and sort the results.
type Provider interface {
	// Holidays returns all holidays for the 2-letter country code in the
	// given year, sorted ascending by date.
	Holidays(year int, country string) ([]Entry, error)

	// Countries returns the supported 2-letter country codes, sorted.
	Countries() ([]string, error)
}

// NormalizeCountry canonicalizes a country code for lookup.
func NormalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}

// sortEntries orders entries ascending by date, then by name for
// same-day holidays.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].Date.Compare(entries[j].Date); c != 0 {
			return c < 0
		}
		return entries[i].Name < entries[j].Name
	})
}
