package dashboard

import (
	"context"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/domain/dashboard"
	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
)

// pageSize matches the repository layer's maximum page size.
const pageSize = 100

type DashboardService struct {
	employeeRepo   employee.EmployeeRepository
	payrollRepo    payroll.PayrollRepository
	requestRepo    leave.LeaveRequestRepository
	overtimeRepo   overtime.OvertimeRepository
	adjustmentRepo adjustment.AdjustmentRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
	requestRepo leave.LeaveRequestRepository,
	overtimeRepo overtime.OvertimeRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
) *DashboardService {
	return &DashboardService{
		employeeRepo:   employeeRepo,
		payrollRepo:    payrollRepo,
		requestRepo:    requestRepo,
		overtimeRepo:   overtimeRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Overview assembles the company dashboard. periodKey scopes the payroll
// summary to one "YYYY-MM" period when non-nil; the other summaries cover
// all records.
func (s *DashboardService) Overview(ctx context.Context, companyID string, periodKey *string) (dashboard.Overview, error) {
	active, err := s.employeeRepo.ListActive(ctx, companyID)
	if err != nil {
		return dashboard.Overview{}, err
	}

	payrolls, err := s.collectPayrolls(ctx, companyID, periodKey)
	if err != nil {
		return dashboard.Overview{}, err
	}
	requests, err := s.collectLeaveRequests(ctx, companyID)
	if err != nil {
		return dashboard.Overview{}, err
	}
	overtimes, err := s.collectOvertimes(ctx, companyID)
	if err != nil {
		return dashboard.Overview{}, err
	}
	adjustments, err := s.collectAdjustments(ctx, companyID)
	if err != nil {
		return dashboard.Overview{}, err
	}

	return dashboard.Overview{
		ActiveEmployees: len(active),
		Payroll:         SummarizePayrolls(payrolls),
		Leave:           SummarizeLeaveRequests(requests),
		Overtime:        SummarizeOvertimes(overtimes),
		Adjustments:     SummarizeAdjustments(adjustments),
	}, nil
}

func (s *DashboardService) collectPayrolls(ctx context.Context, companyID string, periodKey *string) ([]payroll.Payroll, error) {
	var all []payroll.Payroll
	for page := 1; ; page++ {
		batch, total, err := s.payrollRepo.List(ctx, companyID, payroll.PayrollFilter{
			PeriodKey: periodKey,
			Page:      page,
			Limit:     pageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}

func (s *DashboardService) collectLeaveRequests(ctx context.Context, companyID string) ([]leave.LeaveRequest, error) {
	var all []leave.LeaveRequest
	for page := 1; ; page++ {
		batch, total, err := s.requestRepo.List(ctx, companyID, leave.LeaveRequestFilter{
			Page:  page,
			Limit: pageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}

func (s *DashboardService) collectOvertimes(ctx context.Context, companyID string) ([]overtime.Overtime, error) {
	var all []overtime.Overtime
	for page := 1; ; page++ {
		batch, total, err := s.overtimeRepo.List(ctx, companyID, overtime.OvertimeFilter{
			Page:  page,
			Limit: pageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}

func (s *DashboardService) collectAdjustments(ctx context.Context, companyID string) ([]adjustment.PayrollAdjustment, error) {
	var all []adjustment.PayrollAdjustment
	for page := 1; ; page++ {
		batch, total, err := s.adjustmentRepo.List(ctx, companyID, adjustment.AdjustmentFilter{
			Page:  page,
			Limit: pageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			return all, nil
		}
	}
}
