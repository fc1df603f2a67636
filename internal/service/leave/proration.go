package leave

import (
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
)

// ProbationMonths is the fixed probation period before prorated entitlement
// starts accruing.
const ProbationMonths = 3

// ProratedDays computes the number of leave days an employee is entitled to
// for targetYear under the leave type's proration policy. now is an explicit
// input so the calculation stays a pure function of its arguments.
//
// For ProrationProbation:
//   - a zero joinDate fails open to the full entitlement
//   - probation spanning past targetYear, or still running at now, yields 0
//   - probation completed in a prior year yields the full entitlement
//   - probation ending within targetYear prorates over the months remaining
//     from the probation-end month onward, rounded half-up
func ProratedDays(policy leave.ProrationPolicy, joinDate time.Time, defaultDays int, targetYear int, now time.Time) int {
	if policy != leave.ProrationProbation {
		return defaultDays
	}
	if joinDate.IsZero() {
		return defaultDays
	}

	probationEnd := joinDate.AddDate(0, ProbationMonths, 0)

	if probationEnd.Year() > targetYear {
		return 0
	}
	if probationEnd.After(now) {
		return 0
	}
	if probationEnd.Year() < targetYear {
		return defaultDays
	}

	// Probation ends within targetYear. The probation-end month itself
	// counts as entitled: ending in April leaves 9 remaining months.
	remainingMonths := 12 - (int(probationEnd.Month()) - 1)

	return roundHalfUp(defaultDays*remainingMonths, 12)
}

// roundHalfUp returns num/den rounded to the nearest integer, halves up.
// Fractional leave days are not business-meaningful.
func roundHalfUp(num, den int) int {
	return (2*num + den) / (2 * den)
}
