package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
)

func newBalanceMock(t *testing.T) (pgxmock.PgxPoolIface, context.Context, leave.LeaveBalanceRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	// The mock pool rides in on the context, the same way an open
	// transaction does.
	ctx := WithQuerier(context.Background(), mock)
	return mock, ctx, NewLeaveBalanceRepository(nil)
}

func TestLeaveBalanceRepository_Upsert(t *testing.T) {
	mock, ctx, repo := newBalanceMock(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leave_balances")).
		WithArgs("emp-1", "lt-1", 2025, 12, 0, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "employee_id", "leave_type_id", "year",
			"allocated_days", "used_days", "pending_days", "remaining_days",
			"created_at", "updated_at",
		}).AddRow("bal-1", "emp-1", "lt-1", 2025, 12, 0, 0, 12, now, now))

	out, err := repo.Upsert(ctx, leave.LeaveBalance{
		EmployeeID:    "emp-1",
		LeaveTypeID:   "lt-1",
		Year:          2025,
		AllocatedDays: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, "bal-1", out.ID)
	assert.Equal(t, 12, out.AllocatedDays)
	assert.Equal(t, 12, out.RemainingDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveBalanceRepository_AddPending(t *testing.T) {
	mock, ctx, repo := newBalanceMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE leave_balances")).
		WithArgs("emp-1", "lt-1", 2025, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AddPending(ctx, "emp-1", "lt-1", 2025, 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveBalanceRepository_AddPending_InsufficientBalance(t *testing.T) {
	mock, ctx, repo := newBalanceMock(t)

	// The guarded UPDATE matches no row when remaining days are short.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leave_balances")).
		WithArgs("emp-1", "lt-1", 2025, 30).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.AddPending(ctx, "emp-1", "lt-1", 2025, 30)

	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveBalanceRepository_Get_NotFound(t *testing.T) {
	mock, ctx, repo := newBalanceMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, employee_id, leave_type_id")).
		WithArgs("emp-9", "lt-1", 2025).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "employee_id", "leave_type_id", "year",
			"allocated_days", "used_days", "pending_days", "remaining_days",
			"created_at", "updated_at",
		}))

	_, err := repo.Get(ctx, "emp-9", "lt-1", 2025)

	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
