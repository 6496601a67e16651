package civil

import "time"

// The supported year range. Ordinal 1 is 0001-01-01 in the proleptic
// Gregorian calendar, which falls on a Monday; consecutive dates differ
// by exactly one across all month, year and century boundaries.
const (
	minYear = 1
	maxYear = 9999

	minOrdinal = 1
	maxOrdinal = 3652059 // 9999-12-31

	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// daysBefore[m-1] is the number of days in a non-leap year before month m.
var daysBefore = [13]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the year is a Gregorian leap year: divisible
// by 4, except century years not divisible by 400 (1900 is not a leap
// year, 2000 is).
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year, accounting for leap-year February.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// Weekday numbers days Monday=0 through Sunday=6. This convention is fixed
// across the package: weekend detection below uses the same numbering.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return weekdayNames[w]
}

// Abbrev returns the three-letter weekday name.
func (w Weekday) Abbrev() string {
	return w.String()[:3]
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	return Weekday((d.ordinal() - 1) % 7)
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == Saturday || wd == Sunday
}

// ordinal returns the day index of d, counting 0001-01-01 as 1.
func (d Date) ordinal() int {
	return ordinalOf(d.Year, d.Month, d.Day)
}

func ordinalOf(year int, month time.Month, day int) int {
	y := year - 1
	ord := 365*y + y/4 - y/100 + y/400
	ord += daysBefore[month-1]
	if month > time.February && IsLeapYear(year) {
		ord++
	}
	return ord + day
}

// fromOrdinal is the inverse of ordinal. It peels off 400, 100 and 4 year
// cycles the way the standard library's time package converts absolute
// days to calendar dates.
func fromOrdinal(ord int) Date {
	d := ord - 1

	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// The last century of a 400-year cycle has an extra leap day, so on
	// the final day the quotient overshoots by one; pull it back.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Same overshoot on the leap day at the end of a 4-year cycle.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year := y + 1
	day := d + 1 // 1-based day of year
	leap := IsLeapYear(year)

	month := time.December
	for m := time.December; m >= time.January; m-- {
		db := daysBefore[m-1]
		if leap && m > time.February {
			db++
		}
		if day > db {
			month = m
			day -= db
			break
		}
	}

	return Date{Year: year, Month: month, Day: day}
}
