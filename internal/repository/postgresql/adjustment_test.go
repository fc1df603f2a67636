package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
)

func newAdjustmentMock(t *testing.T) (pgxmock.PgxPoolIface, context.Context, adjustment.AdjustmentRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	ctx := WithQuerier(context.Background(), mock)
	return mock, ctx, NewAdjustmentRepository(nil)
}

func TestAdjustmentRepository_RegisterInstallment(t *testing.T) {
	mock, ctx, repo := newAdjustmentMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payroll_adjustments")).
		WithArgs("adj-1", "comp-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.RegisterInstallment(ctx, "adj-1", "comp-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustmentRepository_RegisterInstallment_NotApproved(t *testing.T) {
	mock, ctx, repo := newAdjustmentMock(t)

	// A loan already flipped to processed (or never approved) matches no
	// row, so it can't be counted past its total.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payroll_adjustments")).
		WithArgs("adj-1", "comp-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.RegisterInstallment(ctx, "adj-1", "comp-1")

	assert.ErrorIs(t, err, adjustment.ErrAdjustmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustmentRepository_ListApprovedEffectiveBefore_FiltersStatus(t *testing.T) {
	mock, ctx, repo := newAdjustmentMock(t)

	cutoff := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	// The generation query only ever sees approved rows; processed and
	// pending ones are excluded by the statement itself.
	mock.ExpectQuery(regexp.QuoteMeta("a.status = 'approved'")).
		WithArgs("comp-1", "emp-1", cutoff).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "company_id", "employee_id", "type", "amount", "description", "effective_date",
			"total_loan_amount", "installment_amount", "total_installments", "installments_paid", "status",
			"decided_by", "decided_at", "created_at", "updated_at",
			"full_name", "employee_code",
		}))

	out, err := repo.ListApprovedEffectiveBefore(ctx, "comp-1", "emp-1", cutoff)

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
