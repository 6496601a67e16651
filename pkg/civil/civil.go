// Package civil implements calendar arithmetic on proleptic Gregorian
// dates. A Date is a plain (year, month, day) triple with no clock or
// timezone attached; all operations are pure functions, so results never
// depend on the environment. The supported range is year 1 through 9999.
package civil

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate reports a (year, month, day) triple that is not a
	// valid Gregorian calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrParse reports input text that does not resolve to a date.
	ErrParse = errors.New("unparseable date")

	// ErrUnsupportedUnit reports an unrecognized offset unit token.
	ErrUnsupportedUnit = errors.New("unsupported unit")
)

// Date is an immutable calendar date. The zero value is not a valid date;
// construct values with NewDate, ParseDate or DateOf.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the triple and returns the corresponding Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return d, nil
}

// DateOf returns the calendar date of the given instant in its location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// IsValid reports whether the date is a real Gregorian calendar date
// within the supported year range.
func (d Date) IsValid() bool {
	if d.Year < minYear || d.Year > maxYear {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Compare returns -1, 0 or +1 ordering dates by (year, month, day).
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports structural equality.
func (d Date) Equal(other Date) bool { return d == other }

// String returns the ISO 8601 form YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Format returns the long human-readable form, e.g. "Wednesday, January 29, 2025".
func (d Date) Format() string {
	return fmt.Sprintf("%s, %s %d, %d", d.Weekday(), d.Month, d.Day, d.Year)
}

// MarshalText implements encoding.TextMarshaler using the ISO form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for ISO input.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := parseISO(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Quarter returns the calendar quarter 1-4.
func (d Date) Quarter() int {
	return (int(d.Month)-1)/3 + 1
}

// DayOfYear returns the 1-based day number within the year.
func (d Date) DayOfYear() int {
	return d.ordinal() - ordinalOf(d.Year, time.January, 1) + 1
}

// ISOWeek returns the ISO 8601 week year and week number.
func (d Date) ISOWeek() (year, week int) {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).ISOWeek()
}

// Time returns the instant at midnight of d in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
