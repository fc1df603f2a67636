package leave

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
)

// DefaultBulkConcurrency bounds how many allocations run at once when no
// explicit limit is configured.
const DefaultBulkConcurrency = 5

// BulkAllocate computes and upserts the yearly balance for every target
// employee. Work is spread over a bounded number of goroutines; each
// employee's outcome is recorded independently and failures are not retried.
func (s *LeaveService) BulkAllocate(ctx context.Context, companyID string, req leave.BulkAllocateRequest) (leave.BulkAllocateResult, error) {
	if err := req.Validate(); err != nil {
		return leave.BulkAllocateResult{}, err
	}

	lt, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID, companyID)
	if err != nil {
		return leave.BulkAllocateResult{}, err
	}

	targets, err := s.resolveTargets(ctx, companyID, req.EmployeeIDs)
	if err != nil {
		return leave.BulkAllocateResult{}, err
	}

	limit := s.bulkConcurrency
	if limit <= 0 {
		limit = DefaultBulkConcurrency
	}

	now := time.Now()
	result := leave.BulkAllocateResult{Errors: map[string]string{}}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, emp := range targets {
		g.Go(func() error {
			days := ProratedDays(lt.ProrationPolicy, emp.JoinDate, lt.DefaultDays, req.Year, now)

			_, err := s.balanceRepo.Upsert(gCtx, leave.LeaveBalance{
				EmployeeID:    emp.ID,
				LeaveTypeID:   lt.ID,
				Year:          req.Year,
				AllocatedDays: days,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors[emp.ID] = err.Error()
				// Individual failures don't abort the batch.
				return nil
			}
			result.Allocated++
			result.Previews = append(result.Previews, leave.AllocationPreview{
				EmployeeID:    emp.ID,
				AllocatedDays: days,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return leave.BulkAllocateResult{}, err
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result, nil
}

// resolveTargets returns either the named employees (validated against the
// company) or every active employee when none are named.
func (s *LeaveService) resolveTargets(ctx context.Context, companyID string, employeeIDs []string) ([]employee.Employee, error) {
	if len(employeeIDs) == 0 {
		return s.employeeRepo.ListActive(ctx, companyID)
	}

	targets := make([]employee.Employee, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
		if err != nil {
			return nil, err
		}
		targets = append(targets, emp)
	}
	return targets, nil
}
