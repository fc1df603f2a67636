package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// All methods take companyID to prevent cross-company data access.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	List(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string, companyID string) error
}
