package payroll

import (
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SETTING DTOs ==========

type PayrollSettingResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	CutoffDay int    `json:"cutoff_day"`
}

type UpdatePayrollSettingRequest struct {
	CutoffDay int `json:"cutoff_day"`
}

func (r *UpdatePayrollSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CutoffDay < 1 || r.CutoffDay > 31 {
		errs = append(errs, validator.ValidationError{Field: "cutoff_day", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RECORD DTOs ==========

type GeneratePayrollRequest struct {
	PeriodKey   string   `json:"period"` // "YYYY-MM"
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty = all active employees
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, _, ok := validator.IsValidPeriodKey(r.PeriodKey); !ok {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must match YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TransitionPayrollRequest moves a record one step along the pipeline.
type TransitionPayrollRequest struct {
	ID     string
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r *TransitionPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a recognized payroll status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID               string                     `json:"id"`
	EmployeeID       string                     `json:"employee_id"`
	EmployeeName     *string                    `json:"employee_name,omitempty"`
	EmployeeCode     *string                    `json:"employee_code,omitempty"`
	Department       *string                    `json:"department,omitempty"`
	PeriodKey        string                     `json:"period"`
	PeriodStart      string                     `json:"period_start"`
	PeriodEnd        string                     `json:"period_end"`
	BasicSalary      decimal.Decimal            `json:"basic_salary"`
	TotalAllowances  decimal.Decimal            `json:"total_allowances"`
	TotalDeductions  decimal.Decimal            `json:"total_deductions"`
	OvertimeAmount   decimal.Decimal            `json:"overtime_amount"`
	AllowancesDetail map[string]decimal.Decimal `json:"allowances_detail,omitempty"`
	DeductionsDetail map[string]decimal.Decimal `json:"deductions_detail,omitempty"`
	GrossSalary      decimal.Decimal            `json:"gross_salary"`
	NetSalary        decimal.Decimal            `json:"net_salary"`
	Status           string                     `json:"status"`
	Notes            *string                    `json:"notes,omitempty"`
	ApprovedBy       *string                    `json:"approved_by,omitempty"`
	PaidAt           *string                    `json:"paid_at,omitempty"`
}

type PayrollFilter struct {
	PeriodKey  *string
	Status     *string
	EmployeeID *string
	Page       int
	Limit      int
}

type GeneratePayrollResult struct {
	Generated int               `json:"generated"`
	Skipped   int               `json:"skipped"`
	Errors    map[string]string `json:"errors,omitempty"` // employeeID -> message
}
