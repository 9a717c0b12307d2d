package daytime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		Year int
		Leap bool
	}{
		{Year: 1900, Leap: false},
		{Year: 1996, Leap: true},
		{Year: 2000, Leap: true},
		{Year: 2023, Leap: false},
		{Year: 2024, Leap: true},
		{Year: 2100, Leap: false},
		{Year: 2400, Leap: true},
	} {
		assert.Equal(t, tc.Leap, IsLeapYear(tc.Year), "%d", tc.Year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 30, DaysInMonth(2023, time.April))
	assert.Equal(t, 31, DaysInMonth(2023, time.December))
	assert.Equal(t, 0, DaysInMonth(2023, 13))
	assert.Equal(t, 0, DaysInMonth(2023, 0))

	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2100))

	for _, leap := range monthStart {
		var total int64
		for m := 0; m < 12; m++ {
			require.Equal(t, total, leap[m])
			total += leap[m+1] - leap[m]
		}
		require.Equal(t, total, leap[12])
	}
}

func TestCivil(t *testing.T) {
	t.Parallel()
	var (
		start = time.Date(EpochYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		end   = time.Date(2410, time.January, 1, 0, 0, 0, 0, time.UTC)
		n     int64
	)
	for v := start; v.Before(end); v = v.AddDate(0, 0, 1) {
		year, month, day := civil(n)
		if year != v.Year() || month != v.Month() || day != v.Day() {
			t.Fatalf("civil(%d) = %d-%d-%d, expected %s", n, year, month, day, v.Format("2006-01-02"))
		}
		if got := daysBefore(year, month, day); got != n {
			t.Fatalf("daysBefore(%s) = %d, expected %d", v.Format("2006-01-02"), got, n)
		}
		if _, yday := yearDay(n); int(yday)+1 != v.YearDay() {
			t.Fatalf("yearDay(%d) = %d, expected %d", n, yday+1, v.YearDay())
		}
		n++
	}
}

func TestCivilBeforeEpoch(t *testing.T) {
	t.Parallel()
	year, month, day := civil(-1)
	assert.Equal(t, 1899, year)
	assert.Equal(t, time.December, month)
	assert.Equal(t, 31, day)

	// 1600 is leap, 1601-01-01 starts 400-year cycle.
	year, month, day = civil(-cycleToEpochDays - 1)
	assert.Equal(t, 1600, year)
	assert.Equal(t, time.December, month)
	assert.Equal(t, 31, day)
}

func TestFloorDiv(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(2), floorDiv(7, 3))
	assert.Equal(t, int64(-3), floorDiv(-7, 3))
	assert.Equal(t, int64(-2), floorDiv(-6, 3))
	assert.Equal(t, int64(0), floorDiv(0, 3))
}
