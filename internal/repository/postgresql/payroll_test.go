package postgresql

import (
	"context"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
)

func newPayrollMock(t *testing.T) (pgxmock.PgxPoolIface, context.Context, payroll.PayrollRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	ctx := WithQuerier(context.Background(), mock)
	return mock, ctx, NewPayrollRepository(nil)
}

func TestPayrollRepository_UpdateStatus(t *testing.T) {
	mock, ctx, repo := newPayrollMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payrolls")).
		WithArgs("pr-1", "comp-1", payroll.StatusProcessing, (*string)(nil), (*string)(nil), payroll.StatusDraft).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(ctx, "pr-1", "comp-1", payroll.StatusDraft, payroll.StatusProcessing, nil, nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_UpdateStatus_StaleRead(t *testing.T) {
	mock, ctx, repo := newPayrollMock(t)

	// The record was already advanced past "submitted" by a concurrent
	// transition, so the status-guarded UPDATE matches no row and the late
	// rejection never lands.
	actor := "admin-1"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payrolls")).
		WithArgs("pr-1", "comp-1", payroll.StatusRejected, &actor, (*string)(nil), payroll.StatusSubmitted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(ctx, "pr-1", "comp-1", payroll.StatusSubmitted, payroll.StatusRejected, &actor, nil)

	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}
