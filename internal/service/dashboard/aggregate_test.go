package dashboard

import (
	"math"
	"testing"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarizePayrolls_Empty(t *testing.T) {
	t.Parallel()

	s := SummarizePayrolls(nil)

	assert.Equal(t, 0, s.TotalRecords)
	assert.Empty(t, s.ByStatus)
	assert.True(t, s.TotalGross.IsZero())
	assert.True(t, s.TotalNet.IsZero())
	assert.True(t, s.TotalDeductions.IsZero())
	assert.True(t, s.TotalOvertime.IsZero())
}

func TestSummarizePayrolls(t *testing.T) {
	t.Parallel()

	records := []payroll.Payroll{
		{Status: payroll.StatusDraft, GrossSalary: decimal.NewFromInt(5000000), NetSalary: decimal.NewFromInt(4500000), TotalDeductions: decimal.NewFromInt(500000)},
		{Status: payroll.StatusPaid, GrossSalary: decimal.NewFromInt(7000000), NetSalary: decimal.NewFromInt(6300000), TotalDeductions: decimal.NewFromInt(700000), OvertimeAmount: decimal.NewFromInt(150000)},
		{Status: payroll.StatusPaid, GrossSalary: decimal.NewFromInt(3000000), NetSalary: decimal.NewFromInt(2800000), TotalDeductions: decimal.NewFromInt(200000)},
	}

	s := SummarizePayrolls(records)

	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, 1, s.ByStatus["draft"].Count)
	assert.Equal(t, 2, s.ByStatus["paid"].Count)
	assert.InDelta(t, 33.33, s.ByStatus["draft"].Percentage, 0.01)
	assert.InDelta(t, 66.67, s.ByStatus["paid"].Percentage, 0.01)
	assert.True(t, s.TotalGross.Equal(decimal.NewFromInt(15000000)))
	assert.True(t, s.TotalNet.Equal(decimal.NewFromInt(13600000)))
	assert.True(t, s.TotalOvertime.Equal(decimal.NewFromInt(150000)))
}

func TestSummarizeLeaveRequests(t *testing.T) {
	t.Parallel()

	requests := []leave.LeaveRequest{
		{Status: leave.RequestStatusApproved, Days: 3},
		{Status: leave.RequestStatusPending, Days: 2},
		{Status: leave.RequestStatusRejected, Days: 5},
	}

	s := SummarizeLeaveRequests(requests)

	assert.Equal(t, 3, s.TotalRequests)
	assert.Equal(t, 10, s.TotalDays)
	assert.Equal(t, 3, s.ApprovedDays)
	assert.Equal(t, 1, s.ByStatus["pending"].Count)
}

func TestSummarizeOvertimes_Empty(t *testing.T) {
	t.Parallel()

	s := SummarizeOvertimes([]overtime.Overtime{})

	assert.Equal(t, 0, s.TotalRecords)
	assert.Empty(t, s.ByStatus)
	assert.True(t, s.TotalHours.IsZero())
	assert.True(t, s.TotalAmount.IsZero())
}

func TestSummarizeAdjustments_SplitsAllowancesFromDeductions(t *testing.T) {
	t.Parallel()

	records := []adjustment.PayrollAdjustment{
		{Status: adjustment.StatusApproved, Type: adjustment.TypeAllowance, Amount: decimal.NewFromInt(500000)},
		{Status: adjustment.StatusApproved, Type: adjustment.TypeLoan, Amount: decimal.NewFromInt(250000)},
		{Status: adjustment.StatusPending, Type: adjustment.TypeDeduction, Amount: decimal.NewFromInt(100000)},
	}

	s := SummarizeAdjustments(records)

	assert.Equal(t, 3, s.TotalRecords)
	assert.True(t, s.TotalAllowances.Equal(decimal.NewFromInt(500000)))
	assert.True(t, s.TotalDeductions.Equal(decimal.NewFromInt(350000)))
}

func TestBreakdown_NoNaNOrInf(t *testing.T) {
	t.Parallel()

	out := breakdown(map[string]int{}, 0)
	assert.Empty(t, out)

	out = breakdown(map[string]int{"pending": 1}, 1)
	for _, b := range out {
		assert.False(t, math.IsNaN(b.Percentage))
		assert.False(t, math.IsInf(b.Percentage, 0))
	}
}
