package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_AddDays_MonthRollover(t *testing.T) {
	d := MustDay("2025-03-01")
	assert.Equal(t, "2025-04-01", d.AddDays(31).String())
	assert.Equal(t, "2025-02-28", d.AddDays(-1).String())
}

func TestDay_AddDays_LeapYear(t *testing.T) {
	d := MustDay("2024-02-28")
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
}

func TestDayOf_TimezoneIndependent(t *testing.T) {
	// 23:30 in UTC+10 is 13:30 UTC the same date; 01:30 in UTC-5 is
	// 06:30 UTC the same date. Both must land on their UTC calendar day.
	plus10 := time.FixedZone("plus10", 10*3600)
	minus5 := time.FixedZone("minus5", -5*3600)

	late := time.Date(2025, 6, 15, 23, 30, 0, 0, plus10)
	assert.Equal(t, "2025-06-15", DayOf(late).String())

	early := time.Date(2025, 6, 15, 1, 30, 0, 0, minus5)
	assert.Equal(t, "2025-06-15", DayOf(early).String())

	// An instant that crosses midnight UTC lands on the UTC date, not the
	// local one.
	wrapped := time.Date(2025, 6, 15, 2, 0, 0, 0, plus10) // 2025-06-14T16:00Z
	assert.Equal(t, "2025-06-14", DayOf(wrapped).String())
}

func TestDay_Arithmetic_MatchesDaysUntil(t *testing.T) {
	start := MustDay("2025-01-15")
	for _, n := range []int{-40, -1, 0, 1, 17, 365} {
		moved := start.AddDays(n)
		assert.Equal(t, n, start.DaysUntil(moved), "AddDays(%d)", n)
	}
}

func TestDay_Comparisons(t *testing.T) {
	a := MustDay("2025-03-10")
	b := MustDay("2025-03-11")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(MustDay("2025-03-10")))
	assert.False(t, a.Equal(b))
	assert.False(t, a.IsZero())
	assert.True(t, Day{}.IsZero())
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, NewDay(2025, time.December, 31), d)

	_, err = ParseDay("31/12/2025")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestDayRange(t *testing.T) {
	days := DayRange(MustDay("2025-03-30"), 4)
	require.Len(t, days, 4)
	assert.Equal(t, "2025-03-30", days[0].String())
	assert.Equal(t, "2025-04-02", days[3].String())

	assert.Nil(t, DayRange(MustDay("2025-03-30"), 0))
	assert.Nil(t, DayRange(MustDay("2025-03-30"), -3))
}
