package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID          string
	CompanyID   string
	Code        string
	Name        string
	Description *string
	// DefaultDays is the annual entitlement baseline before proration.
	DefaultDays int
	// ProrationPolicy selects how the yearly allocation is derived from
	// DefaultDays. Annual leave is typically ProrationProbation; most other
	// types are ProrationNone.
	ProrationPolicy ProrationPolicy
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProrationPolicy enum
type ProrationPolicy string

const (
	// ProrationNone grants DefaultDays unchanged.
	ProrationNone ProrationPolicy = "none"
	// ProrationProbation grants nothing until the probation period ends,
	// then prorates DefaultDays over the months remaining in the year.
	ProrationProbation ProrationPolicy = "probation_prorated"
)

// LeaveBalance - per (employee, leave type, year) day counters.
// RemainingDays = AllocatedDays - UsedDays - PendingDays is maintained by the
// repository on every counter move.
type LeaveBalance struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	Year          int
	AllocatedDays int
	UsedDays      int
	PendingDays   int
	RemainingDays int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	LeaveTypeCode *string
	LeaveTypeName *string
	EmployeeName  *string
}

// RequestStatus enum
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether no further status change is allowed.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected || s == RequestStatusCancelled
}

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	// Days is the inclusive calendar-day span of the request.
	Days      int
	Reason    *string
	Status    RequestStatus
	DecidedBy *string
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName  *string
	LeaveTypeName *string
	LeaveTypeCode *string
}
