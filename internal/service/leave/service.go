package leave

import (
	"context"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
	"github.com/gajikita/payroll-backend-go/internal/repository/postgresql"
)

type LeaveService struct {
	db              *database.DB
	leaveTypeRepo   leave.LeaveTypeRepository
	balanceRepo     leave.LeaveBalanceRepository
	requestRepo     leave.LeaveRequestRepository
	employeeRepo    employee.EmployeeRepository
	bulkConcurrency int
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepo leave.LeaveTypeRepository,
	balanceRepo leave.LeaveBalanceRepository,
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	bulkConcurrency int,
) *LeaveService {
	return &LeaveService{
		db:              db,
		leaveTypeRepo:   leaveTypeRepo,
		balanceRepo:     balanceRepo,
		requestRepo:     requestRepo,
		employeeRepo:    employeeRepo,
		bulkConcurrency: bulkConcurrency,
	}
}

// ========== LEAVE TYPES ==========

func (s *LeaveService) CreateType(ctx context.Context, companyID string, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	policy := leave.ProrationNone
	if req.ProrationPolicy != nil {
		policy = leave.ProrationPolicy(*req.ProrationPolicy)
	}

	created, err := s.leaveTypeRepo.Create(ctx, leave.LeaveType{
		CompanyID:       companyID,
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		DefaultDays:     req.DefaultDays,
		ProrationPolicy: policy,
		IsActive:        true,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toTypeResponse(created), nil
}

func (s *LeaveService) GetType(ctx context.Context, id, companyID string) (leave.LeaveTypeResponse, error) {
	lt, err := s.leaveTypeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	return toTypeResponse(lt), nil
}

func (s *LeaveService) ListTypes(ctx context.Context, companyID string, activeOnly bool) ([]leave.LeaveTypeResponse, error) {
	types, err := s.leaveTypeRepo.List(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	out := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		out = append(out, toTypeResponse(lt))
	}
	return out, nil
}

func (s *LeaveService) UpdateType(ctx context.Context, companyID string, req leave.UpdateLeaveTypeRequest) error {
	if req.ProrationPolicy != nil && !validator.IsInSlice(*req.ProrationPolicy, []string{string(leave.ProrationNone), string(leave.ProrationProbation)}) {
		return validator.ValidationErrors{{Field: "proration_policy", Message: "must be 'none' or 'probation_prorated'"}}
	}
	return s.leaveTypeRepo.Update(ctx, companyID, req)
}

func (s *LeaveService) DeleteType(ctx context.Context, id, companyID string) error {
	return s.leaveTypeRepo.Delete(ctx, id, companyID)
}

func toTypeResponse(lt leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:              lt.ID,
		Code:            lt.Code,
		Name:            lt.Name,
		Description:     lt.Description,
		DefaultDays:     lt.DefaultDays,
		ProrationPolicy: string(lt.ProrationPolicy),
		IsActive:        lt.IsActive,
	}
}

// ========== BALANCES ==========

func (s *LeaveService) GetEmployeeBalances(ctx context.Context, employeeID, companyID string, year int) ([]leave.LeaveBalanceResponse, error) {
	// The employee lookup also enforces the company scope.
	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	balances, err := s.balanceRepo.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}
	return toBalanceResponses(balances), nil
}

func (s *LeaveService) ListCompanyBalances(ctx context.Context, companyID string, year int) ([]leave.LeaveBalanceResponse, error) {
	balances, err := s.balanceRepo.ListByCompany(ctx, companyID, year)
	if err != nil {
		return nil, err
	}
	return toBalanceResponses(balances), nil
}

func toBalanceResponses(balances []leave.LeaveBalance) []leave.LeaveBalanceResponse {
	out := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, leave.LeaveBalanceResponse{
			ID:            b.ID,
			EmployeeID:    b.EmployeeID,
			EmployeeName:  b.EmployeeName,
			LeaveTypeID:   b.LeaveTypeID,
			LeaveTypeCode: b.LeaveTypeCode,
			LeaveTypeName: b.LeaveTypeName,
			Year:          b.Year,
			AllocatedDays: b.AllocatedDays,
			UsedDays:      b.UsedDays,
			PendingDays:   b.PendingDays,
			RemainingDays: b.RemainingDays,
		})
	}
	return out
}

// ========== REQUESTS ==========

// SubmitRequest creates a pending leave request and reserves the requested
// days on the balance, both inside one transaction so a concurrent request
// cannot overdraw the balance.
func (s *LeaveService) SubmitRequest(ctx context.Context, companyID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	lt, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	days := int(end.Sub(start).Hours()/24) + 1

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Zero-entitlement types (e.g. unpaid leave) skip the balance hold.
		if lt.DefaultDays > 0 {
			if err := s.balanceRepo.AddPending(txCtx, emp.ID, lt.ID, start.Year(), days); err != nil {
				return err
			}
		}

		var err error
		created, err = s.requestRepo.Create(txCtx, leave.LeaveRequest{
			CompanyID:   companyID,
			EmployeeID:  emp.ID,
			LeaveTypeID: lt.ID,
			StartDate:   start,
			EndDate:     end,
			Days:        days,
			Reason:      req.Reason,
			Status:      leave.RequestStatusPending,
		})
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// DecideRequest approves or rejects a pending request and settles the
// pending-day hold accordingly.
func (s *LeaveService) DecideRequest(ctx context.Context, companyID string, decidedBy string, req leave.DecideLeaveRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	lr, err := s.requestRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return err
	}
	if lr.Status.IsTerminal() {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	lt, err := s.leaveTypeRepo.GetByID(ctx, lr.LeaveTypeID, companyID)
	if err != nil {
		return err
	}

	status := leave.RequestStatusRejected
	if req.Action == "approve" {
		status = leave.RequestStatusApproved
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// UpdateStatus is guarded on status='pending', so a concurrent
		// decision loses here before any counters move.
		if err := s.requestRepo.UpdateStatus(txCtx, lr.ID, companyID, status, &decidedBy); err != nil {
			return err
		}

		if lt.DefaultDays == 0 {
			return nil
		}
		year := lr.StartDate.Year()
		if status == leave.RequestStatusApproved {
			return s.balanceRepo.MovePendingToUsed(txCtx, lr.EmployeeID, lr.LeaveTypeID, year, lr.Days)
		}
		return s.balanceRepo.ReleasePending(txCtx, lr.EmployeeID, lr.LeaveTypeID, year, lr.Days)
	})
}

// CancelRequest lets the requester withdraw a still-pending request.
func (s *LeaveService) CancelRequest(ctx context.Context, id, companyID string) error {
	lr, err := s.requestRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if lr.Status.IsTerminal() {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	lt, err := s.leaveTypeRepo.GetByID(ctx, lr.LeaveTypeID, companyID)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.requestRepo.UpdateStatus(txCtx, lr.ID, companyID, leave.RequestStatusCancelled, nil); err != nil {
			return err
		}
		if lt.DefaultDays == 0 {
			return nil
		}
		return s.balanceRepo.ReleasePending(txCtx, lr.EmployeeID, lr.LeaveTypeID, lr.StartDate.Year(), lr.Days)
	})
}

func (s *LeaveService) GetRequest(ctx context.Context, id, companyID string) (leave.LeaveRequestResponse, error) {
	lr, err := s.requestRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toRequestResponse(lr), nil
}

func (s *LeaveService) ListRequests(ctx context.Context, companyID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, int64, error) {
	requests, total, err := s.requestRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, toRequestResponse(lr))
	}
	return out, total, nil
}

func toRequestResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:            lr.ID,
		EmployeeID:    lr.EmployeeID,
		EmployeeName:  lr.EmployeeName,
		LeaveTypeID:   lr.LeaveTypeID,
		LeaveTypeCode: lr.LeaveTypeCode,
		LeaveTypeName: lr.LeaveTypeName,
		StartDate:     lr.StartDate.Format("2006-01-02"),
		EndDate:       lr.EndDate.Format("2006-01-02"),
		Days:          lr.Days,
		Reason:        lr.Reason,
		Status:        string(lr.Status),
		DecidedBy:     lr.DecidedBy,
	}
	if lr.DecidedAt != nil {
		decidedAt := lr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
