package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
)

type stubPayrollRepo struct {
	existing  map[string]payroll.Payroll // employeeID -> already generated
	record    payroll.Payroll
	created   []payroll.Payroll
	updatedID string
	from, to  payroll.Status
	actor     *string
}

func (s *stubPayrollRepo) GetSetting(ctx context.Context, companyID string) (payroll.PayrollSetting, error) {
	return payroll.PayrollSetting{}, payroll.ErrPayrollSettingNotFound
}

func (s *stubPayrollRepo) UpsertSetting(ctx context.Context, setting payroll.PayrollSetting) (payroll.PayrollSetting, error) {
	return setting, nil
}

func (s *stubPayrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	if _, ok := s.existing[p.EmployeeID]; ok {
		return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
	}
	p.ID = "pay-" + p.EmployeeID
	s.created = append(s.created, p)
	return p, nil
}

func (s *stubPayrollRepo) GetByID(ctx context.Context, id string, companyID string) (payroll.Payroll, error) {
	return s.record, nil
}

func (s *stubPayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID, periodKey, companyID string) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (s *stubPayrollRepo) List(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	return nil, 0, nil
}

func (s *stubPayrollRepo) UpdateStatus(ctx context.Context, id string, companyID string, from, to payroll.Status, actor *string, notes *string) error {
	s.updatedID = id
	s.from, s.to = from, to
	s.actor = actor
	return nil
}

func (s *stubPayrollRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

type stubGenEmployeeRepo struct {
	active []employee.Employee
}

func (s *stubGenEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (s *stubGenEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range s.active {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubGenEmployeeRepo) List(ctx context.Context, companyID string, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubGenEmployeeRepo) ListActive(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return s.active, nil
}

func (s *stubGenEmployeeRepo) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (s *stubGenEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

type stubGenOvertimeRepo struct{}

func (s *stubGenOvertimeRepo) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	return o, nil
}

func (s *stubGenOvertimeRepo) GetByID(ctx context.Context, id string, companyID string) (overtime.Overtime, error) {
	return overtime.Overtime{}, overtime.ErrOvertimeNotFound
}

func (s *stubGenOvertimeRepo) List(ctx context.Context, companyID string, filter overtime.OvertimeFilter) ([]overtime.Overtime, int64, error) {
	return nil, 0, nil
}

func (s *stubGenOvertimeRepo) ListApprovedInRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]overtime.Overtime, error) {
	return nil, nil
}

func (s *stubGenOvertimeRepo) UpdateStatus(ctx context.Context, id string, companyID string, status overtime.Status, decidedBy *string) error {
	return nil
}

type stubGenAdjustmentRepo struct {
	approved   []adjustment.PayrollAdjustment
	registered []string // adjustment IDs counted an installment
}

func (s *stubGenAdjustmentRepo) Create(ctx context.Context, a adjustment.PayrollAdjustment) (adjustment.PayrollAdjustment, error) {
	return a, nil
}

func (s *stubGenAdjustmentRepo) GetByID(ctx context.Context, id string, companyID string) (adjustment.PayrollAdjustment, error) {
	return adjustment.PayrollAdjustment{}, adjustment.ErrAdjustmentNotFound
}

func (s *stubGenAdjustmentRepo) List(ctx context.Context, companyID string, filter adjustment.AdjustmentFilter) ([]adjustment.PayrollAdjustment, int64, error) {
	return nil, 0, nil
}

func (s *stubGenAdjustmentRepo) ListApprovedEffectiveBefore(ctx context.Context, companyID, employeeID string, cutoff time.Time) ([]adjustment.PayrollAdjustment, error) {
	return s.approved, nil
}

func (s *stubGenAdjustmentRepo) UpdateStatus(ctx context.Context, id string, companyID string, status adjustment.Status, decidedBy *string) error {
	return nil
}

func (s *stubGenAdjustmentRepo) RegisterInstallment(ctx context.Context, id string, companyID string) error {
	s.registered = append(s.registered, id)
	return nil
}

func (s *stubGenAdjustmentRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

func TestPayrollService_Generate_RegistersLoanInstallments(t *testing.T) {
	payrolls := &stubPayrollRepo{}
	adjustments := &stubGenAdjustmentRepo{
		approved: []adjustment.PayrollAdjustment{
			{ID: "adj-loan", Type: adjustment.TypeLoan, Amount: decimal.NewFromInt(500_000)},
			{ID: "adj-penalty", Type: adjustment.TypePenalty, Amount: decimal.NewFromInt(100_000)},
		},
	}
	svc := NewPayrollService(nil, payrolls,
		&stubGenEmployeeRepo{active: []employee.Employee{
			{ID: "emp-1", BasicSalary: decimal.NewFromInt(7_000_000)},
		}},
		&stubGenOvertimeRepo{}, adjustments, 25)

	result, err := svc.Generate(context.Background(), "comp-1", payroll.GeneratePayrollRequest{PeriodKey: "2025-03"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	// Exactly the loan is counted, once; the penalty is a flat deduction.
	assert.Equal(t, []string{"adj-loan"}, adjustments.registered)
}

func TestPayrollService_Generate_SkippedPeriodRegistersNothing(t *testing.T) {
	payrolls := &stubPayrollRepo{existing: map[string]payroll.Payroll{"emp-1": {}}}
	adjustments := &stubGenAdjustmentRepo{
		approved: []adjustment.PayrollAdjustment{
			{ID: "adj-loan", Type: adjustment.TypeLoan, Amount: decimal.NewFromInt(500_000)},
		},
	}
	svc := NewPayrollService(nil, payrolls,
		&stubGenEmployeeRepo{active: []employee.Employee{
			{ID: "emp-1", BasicSalary: decimal.NewFromInt(7_000_000)},
		}},
		&stubGenOvertimeRepo{}, adjustments, 25)

	result, err := svc.Generate(context.Background(), "comp-1", payroll.GeneratePayrollRequest{PeriodKey: "2025-03"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	// A period that already exists must not count another installment.
	assert.Empty(t, adjustments.registered)
}

func TestPayrollService_Transition_GuardsOnCurrentStatus(t *testing.T) {
	payrolls := &stubPayrollRepo{record: payroll.Payroll{ID: "pay-1", Status: payroll.StatusSubmitted}}
	svc := NewPayrollService(nil, payrolls, &stubGenEmployeeRepo{}, &stubGenOvertimeRepo{}, &stubGenAdjustmentRepo{}, 25)

	err := svc.Transition(context.Background(), "comp-1", "admin-1", payroll.TransitionPayrollRequest{
		ID:     "pay-1",
		Status: string(payroll.StatusApproved),
	})

	require.NoError(t, err)
	assert.Equal(t, "pay-1", payrolls.updatedID)
	// The read status rides along so the write can refuse a stale view.
	assert.Equal(t, payroll.StatusSubmitted, payrolls.from)
	assert.Equal(t, payroll.StatusApproved, payrolls.to)
	require.NotNil(t, payrolls.actor)
	assert.Equal(t, "admin-1", *payrolls.actor)
}
