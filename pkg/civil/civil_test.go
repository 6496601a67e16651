package civil

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, iso string) Date {
	t.Helper()
	d, err := parseISO(iso)
	if err != nil {
		t.Fatalf("parseISO(%q) error = %v", iso, err)
	}
	return d
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2000, true},
		{1900, false},
		{2100, false},
		{2025, false},
		{1996, true},
		{4, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"January", 2025, time.January, 31},
		{"February non-leap", 2025, time.February, 28},
		{"February leap", 2024, time.February, 29},
		{"February century non-leap", 1900, time.February, 28},
		{"February century leap", 2000, time.February, 29},
		{"April", 2025, time.April, 30},
		{"December", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{"valid date", 2025, time.January, 29, false},
		{"leap day in leap year", 2024, time.February, 29, false},
		{"leap day in non-leap year", 2025, time.February, 29, true},
		{"day zero", 2025, time.January, 0, true},
		{"day past month end", 2025, time.April, 31, true},
		{"month out of range", 2025, 13, 1, true},
		{"year below range", 0, time.January, 1, true},
		{"year above range", 10000, time.January, 1, true},
		{"first supported day", 1, time.January, 1, false},
		{"last supported day", 9999, time.December, 31, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDate(%d, %v, %d) error = %v, wantErr %v", tt.year, tt.month, tt.day, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("NewDate() error = %v, want ErrInvalidDate", err)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "2025-01-29", "2025-01-29", 0},
		{"earlier day", "2025-01-28", "2025-01-29", -1},
		{"earlier month", "2025-01-31", "2025-02-01", -1},
		{"earlier year", "2024-12-31", "2025-01-01", -1},
		{"later year", "2026-01-01", "2025-12-31", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustDate(t, tt.a), mustDate(t, tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		iso  string
		want Weekday
	}{
		{"2025-01-29", Wednesday},
		{"2025-01-13", Monday},
		{"2025-01-19", Sunday},
		{"2000-01-01", Saturday},
		{"1900-01-01", Monday},
		{"0001-01-01", Monday},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			if got := mustDate(t, tt.iso).Weekday(); got != tt.want {
				t.Errorf("Weekday(%s) = %v, want %v", tt.iso, got, tt.want)
			}
		})
	}
}

// The Doomsday anchors of a year (4/4, 6/6, 8/8, 10/10, 12/12, the last
// day of February, 5/9, 9/5, 7/11, 11/7) all fall on the same weekday.
// For 2025 that weekday is Friday.
func TestWeekday_DoomsdayAnchors(t *testing.T) {
	anchors := []string{
		"2025-04-04", "2025-06-06", "2025-08-08", "2025-10-10", "2025-12-12",
		"2025-02-28", "2025-05-09", "2025-09-05", "2025-07-11", "2025-11-07",
	}

	for _, iso := range anchors {
		if got := mustDate(t, iso).Weekday(); got != Friday {
			t.Errorf("Weekday(%s) = %v, want Friday", iso, got)
		}
	}

	// 2024 is a leap year, so the February anchor moves to the 29th.
	leapAnchors := []string{"2024-04-04", "2024-02-29", "2024-12-12", "2024-11-07"}
	want := mustDate(t, "2024-04-04").Weekday()
	for _, iso := range leapAnchors {
		if got := mustDate(t, iso).Weekday(); got != want {
			t.Errorf("Weekday(%s) = %v, want %v", iso, got, want)
		}
	}
}

func TestWeekdayAgainstTimePackage(t *testing.T) {
	// time.Weekday numbers Sunday=0; ours numbers Monday=0. Walk a year
	// straddling a leap day and a century boundary and cross-check.
	start := time.Date(1899, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 600; i++ {
		instant := start.AddDate(0, 0, i)
		want := (int(instant.Weekday()) + 6) % 7
		if got := DateOf(instant).Weekday(); int(got) != want {
			t.Fatalf("Weekday(%s) = %v, want %v", instant.Format(ISOLayout), got, Weekday(want))
		}
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	// Every date maps to a distinct consecutive ordinal and back across
	// month, leap and century boundaries.
	spans := []string{"1899-12-20", "1999-12-20", "2024-02-20", "2025-12-25"}
	for _, iso := range spans {
		d := mustDate(t, iso)
		prev := d.ordinal()
		for i := 0; i < 90; i++ {
			next, err := d.AddDays(1)
			if err != nil {
				t.Fatalf("AddDays(1) from %s error = %v", d, err)
			}
			if next.ordinal() != prev+1 {
				t.Fatalf("ordinal(%s) = %d, want %d", next, next.ordinal(), prev+1)
			}
			if got := fromOrdinal(next.ordinal()); got != next {
				t.Fatalf("fromOrdinal(ordinal(%s)) = %s", next, got)
			}
			d, prev = next, next.ordinal()
		}
	}
}

func TestDateString(t *testing.T) {
	d := mustDate(t, "2025-03-05")
	if got := d.String(); got != "2025-03-05" {
		t.Errorf("String() = %q, want %q", got, "2025-03-05")
	}
	if got := d.Format(); got != "Wednesday, March 5, 2025" {
		t.Errorf("Format() = %q, want %q", got, "Wednesday, March 5, 2025")
	}
}

func TestDateTextMarshaling(t *testing.T) {
	d := mustDate(t, "2025-01-29")

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "2025-01-29" {
		t.Errorf("MarshalText() = %q, want %q", text, "2025-01-29")
	}

	var back Date
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	if err := back.UnmarshalText([]byte("not-a-date")); !errors.Is(err, ErrParse) {
		t.Errorf("UnmarshalText(invalid) error = %v, want ErrParse", err)
	}
}

func TestQuarterAndDayOfYear(t *testing.T) {
	tests := []struct {
		iso         string
		wantQuarter int
		wantDOY     int
	}{
		{"2025-01-01", 1, 1},
		{"2025-03-31", 1, 90},
		{"2025-04-01", 2, 91},
		{"2025-12-31", 4, 365},
		{"2024-12-31", 4, 366},
		{"2024-03-01", 1, 61},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			d := mustDate(t, tt.iso)
			if got := d.Quarter(); got != tt.wantQuarter {
				t.Errorf("Quarter(%s) = %d, want %d", tt.iso, got, tt.wantQuarter)
			}
			if got := d.DayOfYear(); got != tt.wantDOY {
				t.Errorf("DayOfYear(%s) = %d, want %d", tt.iso, got, tt.wantDOY)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		iso  string
		want bool
	}{
		{"2025-01-18", true},  // Saturday
		{"2025-01-19", true},  // Sunday
		{"2025-01-17", false}, // Friday
		{"2025-01-13", false}, // Monday
	}

	for _, tt := range tests {
		if got := mustDate(t, tt.iso).IsWeekend(); got != tt.want {
			t.Errorf("IsWeekend(%s) = %v, want %v", tt.iso, got, tt.want)
		}
	}
}
