// Package ledger is the booking and accounting calculator: day-granularity
// date arithmetic, per-stay totals, overlap detection, period report
// aggregation and the month-closing lock policy. Everything operates on
// explicit in-memory collections; there is no I/O and no shared state.
package ledger

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight instant. Inputs
// that don't match the strict form (e.g. full RFC3339 timestamps coming from
// older clients) fall back to a best-effort parse and are truncated to their
// calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidRange
	}
	return DateOf(t), nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// DateOf truncates an instant to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayNumber returns whole days since the Unix epoch for the date of t.
// All interval math in this package runs on these integers, never on
// timestamp subtraction.
func DayNumber(t time.Time) int {
	secs := DateOf(t).Unix()
	if secs < 0 {
		return int((secs - 86399) / 86400)
	}
	return int(secs / 86400)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// Nights is the night count of [checkIn, checkOut); zero when checkOut is not
// after checkIn. Stay creation rejects that case separately, the report
// aggregator just treats it as a zero-length stay.
func Nights(checkIn, checkOut time.Time) int {
	n := DayNumber(checkOut) - DayNumber(checkIn)
	if n < 0 {
		return 0
	}
	return n
}

// OverlapNights counts the nights shared by [rangeStart, rangeEndExclusive)
// and [intervalStart, intervalEnd).
func OverlapNights(rangeStart, rangeEndExclusive, intervalStart, intervalEnd time.Time) int {
	start := DayNumber(rangeStart)
	if s := DayNumber(intervalStart); s > start {
		start = s
	}
	end := DayNumber(rangeEndExclusive)
	if e := DayNumber(intervalEnd); e < end {
		end = e
	}
	if end < start {
		return 0
	}
	return end - start
}

// DaysInclusive is the length of [start, end] in days, both endpoints counted.
func DaysInclusive(start, end time.Time) int {
	n := DayNumber(end) - DayNumber(start) + 1
	if n < 0 {
		return 0
	}
	return n
}

// MonthKey buckets a date into its calendar month as "YYYY-MM".
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// MonthRange inverts a month key into its [start, endExclusive) span.
func MonthRange(key string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, start.AddDate(0, 1, 0), nil
}

// MonthKeysInRange enumerates every month key touched by [start, endExclusive)
// in order. A multi-month stay is checked against several closings at once
// through this.
func MonthKeysInRange(start, endExclusive time.Time) []string {
	var keys []string
	y, m, _ := start.UTC().Date()
	cursor := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	for cursor.Before(endExclusive) {
		keys = append(keys, MonthKey(cursor))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return keys
}
