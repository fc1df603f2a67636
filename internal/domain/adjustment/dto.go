package adjustment

import (
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdjustmentRequest struct {
	EmployeeID        string           `json:"employee_id"`
	Type              string           `json:"type"`
	Amount            decimal.Decimal  `json:"amount"`
	Description       *string          `json:"description,omitempty"`
	EffectiveDate     string           `json:"effective_date"` // YYYY-MM-DD
	TotalLoanAmount   *decimal.Decimal `json:"total_loan_amount,omitempty"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount,omitempty"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !AdjustmentType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of allowance, deduction, penalty, loan, advance"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if AdjustmentType(r.Type) == TypeLoan {
		if r.TotalLoanAmount == nil || !r.TotalLoanAmount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "total_loan_amount", Message: "is required and must be positive for loans"})
		}
		if r.InstallmentAmount == nil || !r.InstallmentAmount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "installment_amount", Message: "is required and must be positive for loans"})
		}
	} else if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideAdjustmentRequest struct {
	ID     string
	Action string `json:"action"` // "approve", "reject" or "cancel"
}

func (r *DecideAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject", "cancel"}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'approve', 'reject' or 'cancel'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID                string           `json:"id"`
	EmployeeID        string           `json:"employee_id"`
	EmployeeName      *string          `json:"employee_name,omitempty"`
	EmployeeCode      *string          `json:"employee_code,omitempty"`
	Type              string           `json:"type"`
	Amount            decimal.Decimal  `json:"amount"`
	Description       *string          `json:"description,omitempty"`
	EffectiveDate     string           `json:"effective_date"`
	TotalLoanAmount   *decimal.Decimal `json:"total_loan_amount,omitempty"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount,omitempty"`
	TotalInstallments *int             `json:"total_installments,omitempty"`
	InstallmentsPaid  *int             `json:"installments_paid,omitempty"`
	Status            string           `json:"status"`
	DecidedBy         *string          `json:"decided_by,omitempty"`
	DecidedAt         *string          `json:"decided_at,omitempty"`
}

type AdjustmentFilter struct {
	EmployeeID *string
	Type       *string
	Status     *string
	Page       int
	Limit      int
}
