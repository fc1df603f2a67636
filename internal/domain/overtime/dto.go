package overtime

import (
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MaxHoursPerRequest caps a single overtime submission. Hours must be in
// (0, 200]; anything outside is a validation failure, never a silent clamp.
var MaxHoursPerRequest = decimal.NewFromInt(200)

type CreateOvertimeRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Hours      decimal.Decimal `json:"hours"`
	Type       string          `json:"type"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !r.Hours.IsPositive() || r.Hours.GreaterThan(MaxHoursPerRequest) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be greater than 0 and at most 200"})
	}
	if _, ok := OvertimeType(r.Type).Multiplier(); !ok {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of regular, weekday, weekend, holiday"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideOvertimeRequest struct {
	ID     string
	Action string `json:"action"` // "approve", "reject" or "cancel"
}

func (r *DecideOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject", "cancel"}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'approve', 'reject' or 'cancel'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	EmployeeCode *string         `json:"employee_code,omitempty"`
	Date         string          `json:"date"`
	Hours        decimal.Decimal `json:"hours"`
	Type         string          `json:"type"`
	Multiplier   decimal.Decimal `json:"multiplier"`
	RatePerHour  decimal.Decimal `json:"rate_per_hour"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        *string         `json:"notes,omitempty"`
	Status       string          `json:"status"`
	DecidedBy    *string         `json:"decided_by,omitempty"`
	DecidedAt    *string         `json:"decided_at,omitempty"`
}

type OvertimeFilter struct {
	EmployeeID *string
	Status     *string
	DateFrom   *string
	DateTo     *string
	Page       int
	Limit      int
}
