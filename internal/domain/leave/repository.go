package leave

import "context"

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveType, error)
	GetByCode(ctx context.Context, code string, companyID string) (LeaveType, error)
	List(ctx context.Context, companyID string, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, companyID string, req UpdateLeaveTypeRequest) error
	Delete(ctx context.Context, id string, companyID string) error
}

type LeaveBalanceRepository interface {
	Upsert(ctx context.Context, b LeaveBalance) (LeaveBalance, error)
	Get(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	ListByCompany(ctx context.Context, companyID string, year int) ([]LeaveBalance, error)
	// MovePendingToUsed and the other counter moves keep RemainingDays
	// consistent with the allocated/used/pending invariant.
	AddPending(ctx context.Context, employeeID, leaveTypeID string, year, days int) error
	MovePendingToUsed(ctx context.Context, employeeID, leaveTypeID string, year, days int) error
	ReleasePending(ctx context.Context, employeeID, leaveTypeID string, year, days int) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)
	List(ctx context.Context, companyID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, companyID string, status RequestStatus, decidedBy *string) error
}
