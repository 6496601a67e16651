// Package engine composes the civil arithmetic core with a holiday
// provider and a clock into the operations the CLI exposes. All
// non-determinism (the ambient "today") enters through the injected
// clock; everything else is a pure function of its inputs.
package engine

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/username/datecalc/internal/holiday"
	"github.com/username/datecalc/pkg/civil"
)

// Engine answers date questions.
type Engine struct {
	provider       holiday.Provider
	defaultCountry string
	now            func() time.Time
	logger         *zap.Logger
}

// New creates an Engine. now supplies the ambient clock; tests inject a
// fixed instant here.
func New(provider holiday.Provider, defaultCountry string, now func() time.Time, logger *zap.Logger) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		provider:       provider,
		defaultCountry: holiday.NormalizeCountry(defaultCountry),
		now:            now,
		logger:         logger,
	}
}

// Today returns the current date from the injected clock.
func (e *Engine) Today() civil.Date {
	return civil.DateOf(e.now())
}

// ParseDate resolves input text against the engine's clock.
func (e *Engine) ParseDate(input string) (civil.Date, error) {
	return civil.ParseDate(input, e.now())
}

// DateInfo is the full description of a single date.
type DateInfo struct {
	Date        civil.Date
	Formatted   string
	Weekday     civil.Weekday
	Quarter     int
	WeekYear    int
	WeekNumber  int
	DayOfYear   int
	DaysInMonth int
	IsLeapYear  bool
	IsWeekend   bool
	Holiday     string
	Relative    string
}

// Info describes a date: weekday, quarter, ISO week, leap and weekend
// flags, the holiday name when the default country observes one, and a
// relative description against today.
func (e *Engine) Info(d civil.Date) DateInfo {
	info := DateInfo{
		Date:        d,
		Formatted:   d.Format(),
		Weekday:     d.Weekday(),
		Quarter:     d.Quarter(),
		DayOfYear:   d.DayOfYear(),
		DaysInMonth: civil.DaysInMonth(d.Year, d.Month),
		IsLeapYear:  civil.IsLeapYear(d.Year),
		IsWeekend:   d.IsWeekend(),
		Holiday:     e.holidayName(d),
		Relative:    e.Relative(d),
	}
	info.WeekYear, info.WeekNumber = d.ISOWeek()
	return info
}

// Relative describes d against today: "today", "tomorrow", "yesterday",
// "in N days" or "N days ago".
func (e *Engine) Relative(d civil.Date) string {
	delta := civil.Diff(e.Today(), d)
	switch {
	case delta == 0:
		return "today"
	case delta == 1:
		return "tomorrow"
	case delta == -1:
		return "yesterday"
	case delta > 0:
		return fmt.Sprintf("in %d days", delta)
	default:
		return fmt.Sprintf("%d days ago", -delta)
	}
}

// Add offsets a date by amount units.
func (e *Engine) Add(d civil.Date, amount int, unit civil.Unit) (civil.Date, error) {
	result, err := civil.Add(d, amount, unit)
	if err != nil {
		return civil.Date{}, err
	}

	e.logger.Debug("Computed offset",
		zap.Stringer("from", d),
		zap.Int("amount", amount),
		zap.Stringer("unit", unit),
		zap.Stringer("result", result))

	return result, nil
}

// DiffResult breaks the distance between two dates down the way a person
// would ask for it. TotalDays keeps the sign of the input order; the
// other fields describe the absolute span.
type DiffResult struct {
	From           civil.Date
	To             civil.Date
	TotalDays      int
	TotalWeeks     float64
	Weeks          int
	RemainderDays  int
	Years          int
	Months         int
	Days           int
	CalendarMonths int
}

// Diff computes the signed day count from a to b plus the span broken
// into weeks and into calendar years/months/days.
func (e *Engine) Diff(a, b civil.Date) DiffResult {
	signed := civil.Diff(a, b)

	// Normalize for the breakdown; the sign survives in TotalDays.
	lo, hi := a, b
	if lo.After(hi) {
		lo, hi = hi, lo
	}
	span := civil.Diff(lo, hi)

	years := hi.Year - lo.Year
	months := int(hi.Month) - int(lo.Month)
	days := hi.Day - lo.Day
	if days < 0 {
		months--
		prevMonth, prevYear := hi.Month-1, hi.Year
		if hi.Month == time.January {
			prevMonth, prevYear = time.December, hi.Year-1
		}
		days += civil.DaysInMonth(prevYear, prevMonth)
	}
	if months < 0 {
		years--
		months += 12
	}

	return DiffResult{
		From:           lo,
		To:             hi,
		TotalDays:      signed,
		TotalWeeks:     math.Round(float64(span)/7*100) / 100,
		Weeks:          span / 7,
		RemainderDays:  span % 7,
		Years:          years,
		Months:         months,
		Days:           days,
		CalendarMonths: years*12 + months,
	}
}

// RangeEntry annotates one date of an enumerated range.
type RangeEntry struct {
	Date    civil.Date
	Weekday civil.Weekday
	Holiday string
	Weekend bool
}

// Range enumerates every date between the bounds inclusive, ascending,
// annotated with weekday, weekend and holiday information.
func (e *Engine) Range(a, b civil.Date) []RangeEntry {
	dates := civil.Range(a, b)
	entries := make([]RangeEntry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, RangeEntry{
			Date:    d,
			Weekday: d.Weekday(),
			Holiday: e.holidayName(d),
			Weekend: d.IsWeekend(),
		})
	}
	return entries
}

// Holidays returns the sorted holidays for the year and country. An
// empty country selects the configured default.
func (e *Engine) Holidays(year int, country string) ([]holiday.Entry, error) {
	if country == "" {
		country = e.defaultCountry
	}

	entries, err := e.provider.Holidays(year, country)
	if err != nil {
		return nil, fmt.Errorf("holiday lookup for %q failed: %w", country, err)
	}

	e.logger.Debug("Holidays resolved",
		zap.Int("year", year),
		zap.String("country", country),
		zap.Int("count", len(entries)))

	return entries, nil
}

// Countries enumerates the provider's supported country codes.
func (e *Engine) Countries() ([]string, error) {
	return e.provider.Countries()
}

// holidayName is a best-effort annotation for info and range output; a
// provider failure here only drops the annotation, it never fails the
// date operation itself.
func (e *Engine) holidayName(d civil.Date) string {
	if e.provider == nil || e.defaultCountry == "" {
		return ""
	}
	entries, err := e.provider.Holidays(d.Year, e.defaultCountry)
	if err != nil {
		e.logger.Debug("Holiday annotation unavailable",
			zap.String("country", e.defaultCountry),
			zap.Error(err))
		return ""
	}
	for _, entry := range entries {
		if entry.Date.Equal(d) {
			return entry.Name
		}
	}
	return ""
}
