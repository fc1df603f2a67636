package leave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
)

type stubLeaveTypeRepo struct {
	leaveType leave.LeaveType
	err       error
}

func (s *stubLeaveTypeRepo) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	return lt, nil
}

func (s *stubLeaveTypeRepo) GetByID(ctx context.Context, id, companyID string) (leave.LeaveType, error) {
	return s.leaveType, s.err
}

func (s *stubLeaveTypeRepo) GetByCode(ctx context.Context, code, companyID string) (leave.LeaveType, error) {
	return s.leaveType, s.err
}

func (s *stubLeaveTypeRepo) List(ctx context.Context, companyID string, activeOnly bool) ([]leave.LeaveType, error) {
	return nil, nil
}

func (s *stubLeaveTypeRepo) Update(ctx context.Context, companyID string, req leave.UpdateLeaveTypeRequest) error {
	return nil
}

func (s *stubLeaveTypeRepo) Delete(ctx context.Context, id, companyID string) error {
	return nil
}

type stubBalanceRepo struct {
	mu          sync.Mutex
	upserts     []leave.LeaveBalance
	failFor     map[string]error
	inFlight    int
	maxInFlight int
}

func (s *stubBalanceRepo) Upsert(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	s.mu.Lock()
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	s.mu.Unlock()

	// Hold the slot briefly so overlapping workers are observable.
	time.Sleep(time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if err, ok := s.failFor[b.EmployeeID]; ok {
		return leave.LeaveBalance{}, err
	}
	s.upserts = append(s.upserts, b)
	return b, nil
}

func (s *stubBalanceRepo) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
}

func (s *stubBalanceRepo) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	return nil, nil
}

func (s *stubBalanceRepo) ListByCompany(ctx context.Context, companyID string, year int) ([]leave.LeaveBalance, error) {
	return nil, nil
}

func (s *stubBalanceRepo) AddPending(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	return nil
}

func (s *stubBalanceRepo) MovePendingToUsed(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	return nil
}

func (s *stubBalanceRepo) ReleasePending(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	return nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, companyID string, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return s.employees, int64(len(s.employees)), nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id, companyID string) error {
	return nil
}

func bulkFixture(n int, concurrency int) (*LeaveService, *stubBalanceRepo) {
	employees := make([]employee.Employee, 0, n)
	joined := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		employees = append(employees, employee.Employee{
			ID:       "emp-" + string(rune('a'+i)),
			JoinDate: joined,
		})
	}

	balances := &stubBalanceRepo{failFor: map[string]error{}}
	svc := NewLeaveService(
		nil,
		&stubLeaveTypeRepo{leaveType: leave.LeaveType{
			ID:              "lt-1",
			Code:            "AL",
			DefaultDays:     12,
			ProrationPolicy: leave.ProrationProbation,
		}},
		balances,
		nil,
		&stubEmployeeRepo{employees: employees},
		concurrency,
	)
	return svc, balances
}

func TestBulkAllocate_AllActiveEmployees(t *testing.T) {
	svc, balances := bulkFixture(8, 3)

	res, err := svc.BulkAllocate(context.Background(), "comp-1", leave.BulkAllocateRequest{
		LeaveTypeID: "lt-1",
		Year:        2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, res.Allocated)
	assert.Equal(t, 0, res.Failed)
	assert.Nil(t, res.Errors)
	assert.Len(t, res.Previews, 8)
	// Everyone joined years ago, so each gets the full entitlement.
	for _, p := range res.Previews {
		assert.Equal(t, 12, p.AllocatedDays)
	}
	assert.Len(t, balances.upserts, 8)
}

func TestBulkAllocate_BoundedConcurrency(t *testing.T) {
	svc, balances := bulkFixture(12, 3)

	_, err := svc.BulkAllocate(context.Background(), "comp-1", leave.BulkAllocateRequest{
		LeaveTypeID: "lt-1",
		Year:        2025,
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, balances.maxInFlight, 3)
	assert.Greater(t, balances.maxInFlight, 0)
}

func TestBulkAllocate_PartialFailure(t *testing.T) {
	svc, balances := bulkFixture(4, 2)
	balances.failFor["emp-b"] = errors.New("connection reset")

	res, err := svc.BulkAllocate(context.Background(), "comp-1", leave.BulkAllocateRequest{
		LeaveTypeID: "lt-1",
		Year:        2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Allocated)
	assert.Equal(t, 1, res.Failed)
	require.Contains(t, res.Errors, "emp-b")
	assert.Equal(t, "connection reset", res.Errors["emp-b"])
}

func TestBulkAllocate_NamedEmployees(t *testing.T) {
	svc, balances := bulkFixture(5, 2)

	res, err := svc.BulkAllocate(context.Background(), "comp-1", leave.BulkAllocateRequest{
		LeaveTypeID: "lt-1",
		Year:        2025,
		EmployeeIDs: []string{"emp-a", "emp-c"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Allocated)
	assert.Len(t, balances.upserts, 2)
}

func TestBulkAllocate_UnknownEmployee(t *testing.T) {
	svc, _ := bulkFixture(2, 2)

	_, err := svc.BulkAllocate(context.Background(), "comp-1", leave.BulkAllocateRequest{
		LeaveTypeID: "lt-1",
		Year:        2025,
		EmployeeIDs: []string{"emp-zz"},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestBulkAllocate_InvalidRequest(t *testing.T) {
	svc, _ := bulkFixture(2, 2)

	_, err := svc.BulkAllocate(context.Background(), "comp-1", leave.BulkAllocateRequest{
		Year: 2025,
	})
	assert.Error(t, err)
}
