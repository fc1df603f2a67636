package employee

import (
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        *string         `json:"email,omitempty"`
	Department   *string         `json:"department,omitempty"`
	Position     *string         `json:"position,omitempty"`
	JoinDate     string          `json:"join_date"` // YYYY-MM-DD
	BasicSalary  decimal.Decimal `json:"basic_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match format like EMP-0042"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	FullName    *string          `json:"full_name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Position    *string          `json:"position,omitempty"`
	JoinDate    *string          `json:"join_date,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(EmploymentStatusActive), string(EmploymentStatusResigned)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'resigned'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        *string         `json:"email,omitempty"`
	Department   *string         `json:"department,omitempty"`
	Position     *string         `json:"position,omitempty"`
	JoinDate     string          `json:"join_date"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Status       string          `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		CompanyID:    e.CompanyID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Department:   e.Department,
		Position:     e.Position,
		JoinDate:     e.JoinDate.Format("2006-01-02"),
		BasicSalary:  e.BasicSalary,
		Status:       string(e.Status),
	}
}

type EmployeeFilter struct {
	Department *string
	Status     *string
	Search     *string
	Page       int
	Limit      int
}
