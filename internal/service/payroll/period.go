package payroll

import (
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

// Period is the inclusive [Start, End] date range of a pay period.
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod derives the pay period for a "YYYY-MM" selection and a
// company cutoff day. End is the cutoff day of the selected month; Start is
// the day after the previous month's cutoff. Pure calendar-date arithmetic on
// local components, never epoch subtraction.
//
// When the cutoff day exceeds the length of a target month (cutoff 30 in
// February), the cutoff is clamped to the month's last day. Start is defined
// as the day after the previous period's clamped end, so consecutive periods
// always tile with no gap or overlap.
func ResolvePeriod(periodKey string, cutoffDay int) (Period, error) {
	if cutoffDay < 1 || cutoffDay > 31 {
		return Period{}, payroll.ErrInvalidCutoffDay
	}

	year, month, ok := validator.IsValidPeriodKey(periodKey)
	if !ok {
		return Period{}, payroll.ErrInvalidPeriodKey
	}

	end := cutoffDate(year, month, cutoffDay)

	prevYear, prevMonth := year, month-1
	if prevMonth < time.January {
		prevYear, prevMonth = year-1, time.December
	}
	start := cutoffDate(prevYear, prevMonth, cutoffDay).AddDate(0, 0, 1)

	return Period{Start: start, End: end}, nil
}

// cutoffDate returns the cutoff day within the given month, clamped to the
// month's last day.
func cutoffDate(year int, month time.Month, day int) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
