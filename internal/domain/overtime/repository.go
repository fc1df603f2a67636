package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	GetByID(ctx context.Context, id string, companyID string) (Overtime, error)
	List(ctx context.Context, companyID string, filter OvertimeFilter) ([]Overtime, int64, error)
	// ListApprovedInRange feeds payroll generation with approved overtime
	// inside the pay period [start, end].
	ListApprovedInRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Overtime, error)
	UpdateStatus(ctx context.Context, id string, companyID string, status Status, decidedBy *string) error
}
