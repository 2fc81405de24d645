package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), d)

	// RFC3339 fallback truncates to the calendar date
	d, err = ParseDate("2024-01-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("not a date")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDayNumber(t *testing.T) {
	assert.Equal(t, 0, DayNumber(date("1970-01-01")))
	assert.Equal(t, 1, DayNumber(date("1970-01-02")))
	assert.Equal(t, -1, DayNumber(date("1969-12-31")))
	// time-of-day never shifts the day number
	assert.Equal(t,
		DayNumber(date("2024-03-15")),
		DayNumber(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)))
}

func TestNights(t *testing.T) {
	a, b := date("2024-01-10"), date("2024-01-15")
	assert.Equal(t, 5, Nights(a, b))
	assert.Equal(t, DayNumber(b)-DayNumber(a), Nights(a, b))
	assert.Equal(t, 0, Nights(a, a))
	assert.Equal(t, 0, Nights(b, a))
}

func TestOverlapNights(t *testing.T) {
	rs, re := date("2024-01-01"), date("2024-02-01")

	assert.Equal(t, 5, OverlapNights(rs, re, date("2024-01-10"), date("2024-01-15")))
	// clipped at both ends
	assert.Equal(t, 3, OverlapNights(date("2024-01-12"), re, date("2024-01-10"), date("2024-01-15")))
	assert.Equal(t, 31, OverlapNights(rs, re, date("2023-12-01"), date("2024-03-01")))

	// disjoint intervals share nothing
	assert.Equal(t, 0, OverlapNights(rs, re, date("2024-02-01"), date("2024-02-10")))
	assert.Equal(t, 0, OverlapNights(rs, re, date("2023-12-01"), date("2024-01-01")))

	// symmetric under swapping the two intervals
	cases := [][4]string{
		{"2024-01-01", "2024-01-20", "2024-01-10", "2024-02-05"},
		{"2024-01-01", "2024-01-05", "2024-01-05", "2024-01-09"},
		{"2024-03-01", "2024-04-01", "2024-03-10", "2024-03-12"},
	}
	for _, c := range cases {
		a1, a2, b1, b2 := date(c[0]), date(c[1]), date(c[2]), date(c[3])
		assert.Equal(t, OverlapNights(a1, a2, b1, b2), OverlapNights(b1, b2, a1, a2))
	}
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 31, DaysInclusive(date("2024-01-01"), date("2024-01-31")))
	assert.Equal(t, 1, DaysInclusive(date("2024-01-01"), date("2024-01-01")))
	assert.Equal(t, 0, DaysInclusive(date("2024-01-02"), date("2024-01-01")))
}

func TestMonthKeyRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-01-01", "2024-01-31", "2024-02-29", "2023-12-15"} {
		d := date(s)
		start, end, err := MonthRange(MonthKey(d))
		require.NoError(t, err)
		assert.False(t, d.Before(start), s)
		assert.True(t, d.Before(end), s)
	}

	_, _, err := MonthRange("2024-13x")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMonthKeysInRange(t *testing.T) {
	keys := MonthKeysInRange(date("2024-01-28"), date("2024-03-02"))
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, keys)

	keys = MonthKeysInRange(date("2024-01-10"), date("2024-01-15"))
	assert.Equal(t, []string{"2024-01"}, keys)

	// year boundary
	keys = MonthKeysInRange(date("2023-12-31"), date("2024-01-02"))
	assert.Equal(t, []string{"2023-12", "2024-01"}, keys)

	assert.Empty(t, MonthKeysInRange(date("2024-01-01"), date("2024-01-01")))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, date("2024-03-01"), AddDays(date("2024-02-29"), 1))
	assert.Equal(t, date("2023-12-31"), AddDays(date("2024-01-01"), -1))
}
