package dashboard

import (
	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/domain/dashboard"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
)

// Single-pass reducers folding record lists into dashboard counters.
// Empty input always yields an all-zero summary; percentage math is guarded
// so no NaN or Inf ever reaches a response.

// SummarizePayrolls folds payroll records into totals and a status breakdown.
func SummarizePayrolls(records []payroll.Payroll) dashboard.PayrollSummary {
	s := dashboard.PayrollSummary{}
	counts := make(map[string]int)

	for _, r := range records {
		counts[string(r.Status)]++
		s.TotalGross = s.TotalGross.Add(r.GrossSalary)
		s.TotalNet = s.TotalNet.Add(r.NetSalary)
		s.TotalDeductions = s.TotalDeductions.Add(r.TotalDeductions)
		s.TotalOvertime = s.TotalOvertime.Add(r.OvertimeAmount)
	}

	s.TotalRecords = len(records)
	s.ByStatus = breakdown(counts, s.TotalRecords)
	return s
}

// SummarizeLeaveRequests folds leave requests into day totals and a status
// breakdown.
func SummarizeLeaveRequests(requests []leave.LeaveRequest) dashboard.LeaveSummary {
	s := dashboard.LeaveSummary{}
	counts := make(map[string]int)

	for _, r := range requests {
		counts[string(r.Status)]++
		s.TotalDays += r.Days
		if r.Status == leave.RequestStatusApproved {
			s.ApprovedDays += r.Days
		}
	}

	s.TotalRequests = len(requests)
	s.ByStatus = breakdown(counts, s.TotalRequests)
	return s
}

// SummarizeOvertimes folds overtime records into hour/amount totals and a
// status breakdown.
func SummarizeOvertimes(records []overtime.Overtime) dashboard.OvertimeSummary {
	s := dashboard.OvertimeSummary{}
	counts := make(map[string]int)

	for _, r := range records {
		counts[string(r.Status)]++
		s.TotalHours = s.TotalHours.Add(r.Hours)
		s.TotalAmount = s.TotalAmount.Add(r.TotalAmount)
	}

	s.TotalRecords = len(records)
	s.ByStatus = breakdown(counts, s.TotalRecords)
	return s
}

// SummarizeAdjustments folds adjustments into allowance/deduction totals and
// a status breakdown.
func SummarizeAdjustments(records []adjustment.PayrollAdjustment) dashboard.AdjustmentSummary {
	s := dashboard.AdjustmentSummary{}
	counts := make(map[string]int)

	for _, r := range records {
		counts[string(r.Status)]++
		if r.Type.IsDeduction() {
			s.TotalDeductions = s.TotalDeductions.Add(r.Amount)
		} else {
			s.TotalAllowances = s.TotalAllowances.Add(r.Amount)
		}
	}

	s.TotalRecords = len(records)
	s.ByStatus = breakdown(counts, s.TotalRecords)
	return s
}

// breakdown converts raw status counts into count+percentage pairs. A zero
// total yields an empty map, never a division by zero.
func breakdown(counts map[string]int, total int) map[string]dashboard.StatusBreakdown {
	out := make(map[string]dashboard.StatusBreakdown, len(counts))
	if total == 0 {
		return out
	}
	for status, count := range counts {
		out[status] = dashboard.StatusBreakdown{
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		}
	}
	return out
}
