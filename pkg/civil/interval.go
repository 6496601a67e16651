package civil

// Diff returns the signed number of calendar days from a to b. The result
// is positive when b is after a, zero when they are equal, and
// antisymmetric: Diff(a, b) == -Diff(b, a).
func Diff(a, b Date) int {
	return b.ordinal() - a.ordinal()
}

// Range returns every calendar date between a and b inclusive, in
// ascending order. Reversed bounds are normalized rather than rejected,
// since a range of dates is naturally order-independent to the caller.
// Each call returns a fresh slice.
func Range(a, b Date) []Date {
	if a.After(b) {
		a, b = b, a
	}
	start, end := a.ordinal(), b.ordinal()
	dates := make([]Date, 0, end-start+1)
	for ord := start; ord <= end; ord++ {
		dates = append(dates, fromOrdinal(ord))
	}
	return dates
}
