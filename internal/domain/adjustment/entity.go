package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentType enum. Allowances add to gross pay; every other type is
// withheld from it.
type AdjustmentType string

const (
	TypeAllowance AdjustmentType = "allowance"
	TypeDeduction AdjustmentType = "deduction"
	TypePenalty   AdjustmentType = "penalty"
	TypeLoan      AdjustmentType = "loan"
	TypeAdvance   AdjustmentType = "advance"
)

func (t AdjustmentType) IsValid() bool {
	switch t {
	case TypeAllowance, TypeDeduction, TypePenalty, TypeLoan, TypeAdvance:
		return true
	}
	return false
}

// IsDeduction reports whether the amount is withheld from pay.
func (t AdjustmentType) IsDeduction() bool {
	return t != TypeAllowance
}

// Status enum: pending -> approved | rejected; approved loans move to
// processed once fully installed; cancelled is reachable from pending.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusProcessed Status = "processed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusProcessed || s == StatusCancelled
}

// PayrollAdjustment covers allowances, deductions, penalties, loans and
// salary advances. Loans carry the extra installment fields; for all other
// types those are nil.
type PayrollAdjustment struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Type       AdjustmentType
	// Amount is the per-period amount applied during payroll generation.
	// For loans it equals InstallmentAmount.
	Amount          decimal.Decimal
	Description     *string
	EffectiveDate   time.Time
	TotalLoanAmount *decimal.Decimal
	InstallmentAmt  *decimal.Decimal
	// TotalInstallments = ceil(TotalLoanAmount / InstallmentAmt), derived at
	// creation time. InstallmentsPaid counts periods the loan has been
	// deducted in; once it reaches TotalInstallments the loan is processed
	// and stops being applied.
	TotalInstallments *int
	InstallmentsPaid  *int
	Status            Status
	DecidedBy         *string
	DecidedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
