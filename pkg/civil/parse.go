package civil

import (
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the canonical text form of a Date.
const ISOLayout = "2006-01-02"

// dateLayouts are tried in order. US month/day/year is preferred over
// day/month/year for ambiguous slash dates, matching the documented
// input contract.
var dateLayouts = []string{
	ISOLayout,
	"01/02/2006",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"20060102",
}

// ParseDate resolves input text to a Date. Accepted forms are the ISO
// layout YYYY-MM-DD, US and European slash dates, natural-language month
// names ("March 15, 2025"), compact YYYYMMDD, and the relative tokens
// "today", "tomorrow" and "yesterday" resolved against now. Matching is
// case-insensitive. Out-of-range components fail with ErrParse rather
// than being coerced to a nearby valid date.
func ParseDate(input string, now time.Time) (Date, error) {
	trimmed := strings.TrimSpace(input)

	switch strings.ToLower(trimmed) {
	case "today":
		return DateOf(now), nil
	case "tomorrow":
		return DateOf(now).AddDays(1)
	case "yesterday":
		return DateOf(now).AddDays(-1)
	}

	for _, candidate := range []string{trimmed, titleCase(trimmed)} {
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, candidate)
			if err != nil {
				continue
			}
			d, err := NewDate(t.Year(), t.Month(), t.Day())
			if err != nil {
				continue
			}
			return d, nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q (expected e.g. 2025-01-29, 01/29/2025, \"January 29, 2025\" or today)", ErrParse, input)
}

// parseISO parses the strict ISO layout only.
func parseISO(input string) (Date, error) {
	t, err := time.Parse(ISOLayout, strings.TrimSpace(input))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrParse, input)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest, so "march 15, 2025" matches the month-name layouts.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
