package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollSetting - per-company payroll configuration. CutoffDay is the
// day-of-month boundary the period resolver works from.
type PayrollSetting struct {
	ID        string
	CompanyID string
	CutoffDay int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payroll - one generated record per (employee, period).
type Payroll struct {
	ID         string
	CompanyID  string
	EmployeeID string
	// PeriodKey is the "YYYY-MM" selection the record was generated for;
	// PeriodStart/PeriodEnd are the cutoff-derived inclusive bounds.
	PeriodKey   string
	PeriodStart time.Time
	PeriodEnd   time.Time

	BasicSalary     decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	OvertimeAmount  decimal.Decimal
	// AllowancesDetail / DeductionsDetail break the totals down by
	// adjustment description, e.g. {"Tunjangan Transport": 500000}.
	AllowancesDetail map[string]decimal.Decimal
	DeductionsDetail map[string]decimal.Decimal
	GrossSalary      decimal.Decimal
	NetSalary        decimal.Decimal

	Status     Status
	Notes      *string
	ApprovedBy *string
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
