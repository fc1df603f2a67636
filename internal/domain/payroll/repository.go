package payroll

import "context"

// PayrollRepository defines data access methods for payroll records and
// settings. All methods take companyID to prevent cross-company access.
type PayrollRepository interface {
	// Settings
	GetSetting(ctx context.Context, companyID string) (PayrollSetting, error)
	UpsertSetting(ctx context.Context, setting PayrollSetting) (PayrollSetting, error)

	// Records
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string, companyID string) (Payroll, error)
	GetByEmployeePeriod(ctx context.Context, employeeID, periodKey, companyID string) (Payroll, error)
	List(ctx context.Context, companyID string, filter PayrollFilter) ([]Payroll, int64, error)
	// UpdateStatus moves a record from one status to another. The write is
	// guarded on the expected current status so two racing transitions from
	// the same stale read cannot both land.
	UpdateStatus(ctx context.Context, id string, companyID string, from, to Status, actor *string, notes *string) error
	Delete(ctx context.Context, id string, companyID string) error
}
