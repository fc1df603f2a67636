package leave

import "github.com/gajikita/payroll-backend-go/internal/pkg/validator"

// ========== LEAVE TYPE DTOs ==========

type CreateLeaveTypeRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DefaultDays     int     `json:"default_days"`
	ProrationPolicy *string `json:"proration_policy,omitempty"` // defaults to "none"
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	} else if !validator.IsValidLeaveTypeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 1-10 uppercase letters"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DefaultDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "default_days", Message: "must be non-negative"})
	}
	if r.ProrationPolicy != nil && !validator.IsInSlice(*r.ProrationPolicy, []string{string(ProrationNone), string(ProrationProbation)}) {
		errs = append(errs, validator.ValidationError{Field: "proration_policy", Message: "must be 'none' or 'probation_prorated'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID              string
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	DefaultDays     *int    `json:"default_days,omitempty"`
	ProrationPolicy *string `json:"proration_policy,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

type LeaveTypeResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DefaultDays     int     `json:"default_days"`
	ProrationPolicy string  `json:"proration_policy"`
	IsActive        bool    `json:"is_active"`
}

// ========== BALANCE DTOs ==========

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeCode *string `json:"leave_type_code,omitempty"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	Year          int     `json:"year"`
	AllocatedDays int     `json:"allocated_days"`
	UsedDays      int     `json:"used_days"`
	PendingDays   int     `json:"pending_days"`
	RemainingDays int     `json:"remaining_days"`
}

type BulkAllocateRequest struct {
	LeaveTypeID string   `json:"leave_type_id"`
	Year        int      `json:"year"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty = all active employees
}

func (r *BulkAllocateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkAllocateResult reports per-employee outcomes; failed allocations are
// not retried.
type BulkAllocateResult struct {
	Allocated int                 `json:"allocated"`
	Failed    int                 `json:"failed"`
	Errors    map[string]string   `json:"errors,omitempty"` // employeeID -> message
	Previews  []AllocationPreview `json:"previews,omitempty"`
}

type AllocationPreview struct {
	EmployeeID    string `json:"employee_id"`
	AllocatedDays int    `json:"allocated_days"`
}

// ========== REQUEST DTOs ==========

type CreateLeaveRequestRequest struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // YYYY-MM-DD
	Reason      *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequestRequest struct {
	ID     string
	Action string `json:"action"` // "approve" or "reject"
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject"}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'approve' or 'reject'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeCode *string `json:"leave_type_code,omitempty"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Days          int     `json:"days"`
	Reason        *string `json:"reason,omitempty"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}

type LeaveRequestFilter struct {
	EmployeeID  *string
	LeaveTypeID *string
	Status      *string
	Year        *int
	Page        int
	Limit       int
}
