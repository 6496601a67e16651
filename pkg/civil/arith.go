package civil

import (
	"fmt"
	"strings"
	"time"
)

// Unit is a calendar offset unit.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

var unitNames = [4]string{"day", "week", "month", "year"}

func (u Unit) String() string {
	if u < UnitDay || u > UnitYear {
		return "unknown"
	}
	return unitNames[u]
}

// ParseUnit parses a unit token. Singular and plural forms are accepted,
// case-insensitively: "day", "Days", "WEEK", "months", "year", ...
func ParseUnit(token string) (Unit, error) {
	normalized := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(token)), "s")
	for u, name := range unitNames {
		if normalized == name {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (use day, week, month or year)", ErrUnsupportedUnit, token)
}

// Add returns d offset by amount units. Negative amounts subtract.
//
// Day and week offsets operate on the linear day index, so month and year
// rollover is inherent. Month and year offsets clamp the day to the last
// day of the target month when the original day does not exist there:
// Jan 31 + 1 month is the last day of February, never a spill into March.
// Clamping is a policy choice; systems that spill into the next month
// instead will disagree with this package on exactly those dates.
//
// The only failure mode is a result outside the supported year range.
func Add(d Date, amount int, unit Unit) (Date, error) {
	switch unit {
	case UnitDay:
		return d.AddDays(amount)
	case UnitWeek:
		return d.AddDays(7 * amount)
	case UnitMonth:
		return d.AddMonths(amount)
	case UnitYear:
		return d.AddYears(amount)
	default:
		return Date{}, fmt.Errorf("%w: %d", ErrUnsupportedUnit, int(unit))
	}
}

// AddDays returns d offset by the given number of calendar days.
func (d Date) AddDays(days int) (Date, error) {
	ord := d.ordinal() + days
	if ord < minOrdinal || ord > maxOrdinal {
		return Date{}, fmt.Errorf("%w: %s%+d days is out of range", ErrInvalidDate, d, days)
	}
	return fromOrdinal(ord), nil
}

// AddMonths returns d offset by the given number of months, clamping the
// day to the length of the target month.
func (d Date) AddMonths(months int) (Date, error) {
	index := d.Year*12 + int(d.Month) - 1 + months
	year, month := index/12, time.Month(index%12+1)
	if index < 0 {
		// Integer division truncates toward zero; month indexes before
		// year zero need the floor instead.
		year = (index - 11) / 12
		month = time.Month(index - year*12 + 1)
	}
	if year < minYear || year > maxYear {
		return Date{}, fmt.Errorf("%w: %s%+d months is out of range", ErrInvalidDate, d, months)
	}
	return Date{Year: year, Month: month, Day: clampDay(d.Day, year, month)}, nil
}

// AddYears returns d offset by the given number of years, clamping
// Feb 29 to Feb 28 when the target year is not a leap year.
func (d Date) AddYears(years int) (Date, error) {
	year := d.Year + years
	if year < minYear || year > maxYear {
		return Date{}, fmt.Errorf("%w: %s%+d years is out of range", ErrInvalidDate, d, years)
	}
	return Date{Year: year, Month: d.Month, Day: clampDay(d.Day, year, d.Month)}, nil
}

func clampDay(day, year int, month time.Month) int {
	if max := DaysInMonth(year, month); day > max {
		return max
	}
	return day
}
