package daytime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t testing.TB, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewDate(t *testing.T) {
	t.Parallel()
	t.Run("Epoch", func(t *testing.T) {
		d, err := NewDate(1900, time.January, 1)
		require.NoError(t, err)
		assert.Equal(t, Date{}, d)
		assert.Equal(t, int64(1), d.Days())
		assert.Equal(t, time.Monday, d.Weekday())
		assert.Equal(t, "1900-01-01", d.String())
	})
	t.Run("Fields", func(t *testing.T) {
		d, err := NewDate(2024, time.February, 29)
		require.NoError(t, err)
		year, month, day := d.Fields()
		assert.Equal(t, 2024, year)
		assert.Equal(t, time.February, month)
		assert.Equal(t, 29, day)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.February, d.Month())
		assert.Equal(t, 29, d.Day())
		assert.Equal(t, 60, d.YearDay())
		assert.Equal(t, time.Thursday, d.Weekday())
	})
	t.Run("Invalid", func(t *testing.T) {
		for _, tc := range []struct {
			Name  string
			Year  int
			Month time.Month
			Day   int
			Field string
		}{
			{Name: "NotLeap", Year: 2023, Month: time.February, Day: 29, Field: "day"},
			{Name: "Century", Year: 1900, Month: time.February, Day: 29, Field: "day"},
			{Name: "April", Year: 2024, Month: time.April, Day: 31, Field: "day"},
			{Name: "DayZero", Year: 2024, Month: time.May, Day: 0, Field: "day"},
			{Name: "Day32", Year: 2024, Month: time.May, Day: 32, Field: "day"},
			{Name: "MonthZero", Year: 2024, Month: 0, Day: 1, Field: "month"},
			{Name: "Month13", Year: 2024, Month: 13, Day: 1, Field: "month"},
			{Name: "BeforeEpoch", Year: 1899, Month: time.December, Day: 31, Field: "year"},
			{Name: "AfterMax", Year: 10000, Month: time.January, Day: 1, Field: "year"},
		} {
			tc := tc
			t.Run(tc.Name, func(t *testing.T) {
				_, err := NewDate(tc.Year, tc.Month, tc.Day)
				require.Error(t, err)
				require.ErrorIs(t, err, ErrRange)
				rangeErr, ok := AsRangeError(err)
				require.True(t, ok)
				require.Equal(t, tc.Field, rangeErr.Field)
			})
		}
	})
}

func TestDate_Weekday(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		Date    string
		Weekday time.Weekday
		Weekend bool
	}{
		{Date: "2024-01-01", Weekday: time.Monday},
		{Date: "2024-01-05", Weekday: time.Friday},
		{Date: "2024-01-06", Weekday: time.Saturday, Weekend: true},
		{Date: "2024-01-07", Weekday: time.Sunday, Weekend: true},
		{Date: "2000-02-29", Weekday: time.Tuesday},
		{Date: "1999-12-31", Weekday: time.Friday},
	} {
		d := mustDate(t, tc.Date)
		assert.Equal(t, tc.Weekday, d.Weekday(), tc.Date)
		assert.Equal(t, tc.Weekend, d.IsWeekend(), tc.Date)
	}
	t.Run("BeforeEpoch", func(t *testing.T) {
		// 1899-12-31 is Sunday.
		assert.Equal(t, time.Sunday, DateFromDays(0).Weekday())
		assert.Equal(t, time.Saturday, DateFromDays(-1).Weekday())
	})
}

func TestDate_Time(t *testing.T) {
	t.Parallel()
	t.Run("Range", func(t *testing.T) {
		var (
			start = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
			end   = time.Date(2148, 1, 1, 0, 0, 0, 0, time.UTC)
		)
		for v := start; v.Before(end); v = v.AddDate(0, 0, 7) {
			d := DateOf(v, UTC)
			if !d.StdTime().Equal(v) {
				t.Fatalf("%s: got %s", v, d.StdTime())
			}
			if d.Weekday() != v.Weekday() {
				t.Fatalf("%s: weekday %s, expected %s", v, d.Weekday(), v.Weekday())
			}
			if s := d.String(); s != v.Format("2006-01-02") {
				t.Fatalf("%s: got %s", v, s)
			}
		}
	})
	t.Run("Offset", func(t *testing.T) {
		const secInHour = 60 * 60
		// 2006-01-01T23:04:03Z.
		v := time.Date(2006, 1, 2, 6, 4, 3, 0, time.FixedZone("UTC+7", 7*secInHour))
		assert.Equal(t, mustDate(t, "2006-01-01"), DateOf(v, UTC))
		assert.Equal(t, mustDate(t, "2006-01-02"), DateOf(v, 7))
		assert.Equal(t, mustDate(t, "2006-01-02"), DateOf(v, 1))
		assert.Equal(t, mustDate(t, "2006-01-01"), DateOf(v, -12))
	})
	t.Run("BeforeUnix", func(t *testing.T) {
		v := time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, "1969-12-31", DateOf(v, UTC).String())
		assert.Equal(t, "1970-01-01", DateOf(v, 1).String())
	})
	t.Run("Now", func(t *testing.T) {
		now := time.Now().UTC()
		today := Today()
		// Test may run across midnight.
		assert.LessOrEqual(t, today.Days()-DateOf(now, UTC).Days(), int64(1))
		assert.NotPanics(t, func() {
			_ = LocalDate()
			_ = TodayIn(MaxOffset)
		})
	})
}

func TestDate_AddDays(t *testing.T) {
	t.Parallel()
	d := mustDate(t, "2024-02-29")
	for _, n := range []int{0, 1, 7, 31, 365, 366, 1000, 100_000, -1, -45_000} {
		assert.Equal(t, d, d.AddDays(n).SubtractDays(n), "%d", n)
		assert.Equal(t, d.AddDays(n), d.SubtractDays(-n), "%d", n)
	}
	assert.Equal(t, "2024-03-01", d.AddDays(1).String())
	assert.Equal(t, "2024-02-28", d.SubtractDays(1).String())
	assert.Equal(t, "2025-02-28", d.AddDays(365).String())
	assert.Equal(t, "1899-12-31", Date{}.SubtractDays(1).String())
}

func TestDate_AddMonths(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		Date   string
		Months int
		Result string
	}{
		{Date: "2024-01-31", Months: 1, Result: "2024-02-29"},
		{Date: "2024-01-31", Months: 2, Result: "2024-03-31"},
		{Date: "2024-01-31", Months: 3, Result: "2024-04-30"},
		{Date: "2024-01-31", Months: 13, Result: "2025-02-28"},
		{Date: "2023-01-31", Months: 1, Result: "2023-02-28"},
		{Date: "2023-01-29", Months: 1, Result: "2023-02-28"},
		{Date: "2024-01-15", Months: 1, Result: "2024-02-15"},
		{Date: "2024-12-15", Months: 1, Result: "2025-01-15"},
		{Date: "2024-11-30", Months: 3, Result: "2025-02-28"},
		{Date: "2024-05-10", Months: 0, Result: "2024-05-10"},
		{Date: "2024-05-10", Months: 120, Result: "2034-05-10"},
		{Date: "2024-03-31", Months: -1, Result: "2024-02-29"},
		{Date: "2024-01-15", Months: -1, Result: "2023-12-15"},
		{Date: "2024-03-31", Months: -13, Result: "2023-02-28"},
		{Date: "1900-01-31", Months: -1, Result: "1899-12-31"},
	} {
		d := mustDate(t, tc.Date)
		assert.Equal(t, tc.Result, d.AddMonths(tc.Months).String(), "%s + %d months", tc.Date, tc.Months)
		assert.Equal(t, tc.Result, d.SubtractMonths(-tc.Months).String(), "%s - %d months", tc.Date, -tc.Months)
	}
	t.Run("MonthRollover", func(t *testing.T) {
		d, err := NewDate(2024, time.January, 31)
		require.NoError(t, err)
		v := d.AddMonths(1)
		assert.Equal(t, time.February, v.Month())
		assert.Equal(t, 29, v.Day())
	})
	t.Run("Every", func(t *testing.T) {
		start := mustDate(t, "1999-01-01")
		for n := 0; n < 365*30; n++ {
			d := start.AddDays(n)
			year, month, day := d.Fields()
			for _, months := range []int{1, 11, -1, -25, 12*1500 + 7, -(12*800 + 5)} {
				v := d.AddMonths(months)
				ref := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
				expected := day
				if last := DaysInMonth(ref.Year(), ref.Month()); expected > last {
					expected = last
				}
				if v.Year() != ref.Year() || v.Month() != ref.Month() || v.Day() != expected {
					t.Fatalf("%s + %d months = %s", d, months, v)
				}
			}
		}
	})
}

func TestDate_ShiftLarge(t *testing.T) {
	t.Parallel()
	d := mustDate(t, "2024-01-31")
	assert.Equal(t, "7024-02-29", d.AddMonths(12*5000+1).String())
	assert.Equal(t, "2024-01-29", mustDate(t, "7024-02-29").SubtractMonths(12*5000+1).String())
	assert.Equal(t, "1024-01-31", d.SubtractYears(1000).String())

	local := d
	local.SetFormatter(func(Date) string { return "local" })
	assert.Equal(t, "local", local.AddMonths(1).String())
	assert.Equal(t, "local", local.SubtractYears(1).String())

	// Extreme values wrap around and must still return.
	for _, n := range []int{math.MaxInt, math.MinInt, math.MaxInt32, math.MinInt32} {
		_ = d.AddMonths(n).String()
		_ = d.SubtractMonths(n).String()
		_ = d.AddYears(n).String()
		_ = d.SubtractYears(n).String()
	}
}

func TestDate_AddYears(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		Date   string
		Years  int
		Result string
	}{
		{Date: "2024-02-29", Years: 1, Result: "2025-02-28"},
		{Date: "2024-02-29", Years: 4, Result: "2028-02-29"},
		{Date: "2024-02-29", Years: -1, Result: "2023-02-28"},
		{Date: "2024-02-29", Years: -4, Result: "2020-02-29"},
		{Date: "2024-02-28", Years: 1, Result: "2025-02-28"},
		{Date: "2023-03-01", Years: 1, Result: "2024-03-01"},
		{Date: "2024-03-01", Years: -1, Result: "2023-03-01"},
		{Date: "2024-01-10", Years: -1, Result: "2023-01-10"},
		{Date: "2000-06-15", Years: 100, Result: "2100-06-15"},
		{Date: "1996-02-29", Years: 4, Result: "2000-02-29"},
		{Date: "2096-02-29", Years: 4, Result: "2100-02-28"},
		{Date: "2024-07-04", Years: 0, Result: "2024-07-04"},
	} {
		d := mustDate(t, tc.Date)
		assert.Equal(t, tc.Result, d.AddYears(tc.Years).String(), "%s + %d years", tc.Date, tc.Years)
		assert.Equal(t, tc.Result, d.SubtractYears(-tc.Years).String(), "%s - %d years", tc.Date, -tc.Years)
	}
	t.Run("Every", func(t *testing.T) {
		start := mustDate(t, "1995-01-01")
		for n := 0; n < 365*10; n++ {
			d := start.AddDays(n)
			year, month, day := d.Fields()
			for _, years := range []int{1, 3, -1, -5, 4001, -1200} {
				v := d.AddYears(years)
				expected := day
				if last := DaysInMonth(year+years, month); expected > last {
					expected = last
				}
				if v.Year() != year+years || v.Month() != month || v.Day() != expected {
					t.Fatalf("%s + %d years = %s", d, years, v)
				}
			}
		}
	})
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()
	a, b := mustDate(t, "2024-01-01"), mustDate(t, "2024-01-02")
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(mustDate(t, "20240101")))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDate_Text(t *testing.T) {
	t.Parallel()
	d := mustDate(t, "20240229")
	data, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", string(data))

	var v Date
	require.NoError(t, v.UnmarshalText(data))
	assert.True(t, d.Equal(v))
	assert.ErrorIs(t, v.UnmarshalText([]byte("2024/02/29")), ErrInvalidFormat)

	v.SetFormatter(func(d Date) string { return "custom" })
	assert.Equal(t, "custom", v.String())
	data, err = v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", string(data))
	v.SetFormatter(nil)
	assert.Equal(t, "2024-02-29", v.String())
}

func BenchmarkDate_Fields(b *testing.B) {
	b.ReportAllocs()

	d := DateFromDays(45351)
	var day int
	for i := 0; i < b.N; i++ {
		_, _, day = d.Fields()
	}
	_ = day
}

func BenchmarkDate_AddMonths(b *testing.B) {
	b.ReportAllocs()

	d := DateFromDays(45351)
	for i := 0; i < b.N; i++ {
		d = d.AddMonths(1)
		if d.Year() > 9000 {
			d = DateFromDays(45351)
		}
	}
}
