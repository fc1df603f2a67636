package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

const adjustmentSelect = `
	SELECT a.id, a.company_id, a.employee_id, a.type, a.amount, a.description, a.effective_date,
		   a.total_loan_amount, a.installment_amount, a.total_installments, a.installments_paid, a.status,
		   a.decided_by, a.decided_at, a.created_at, a.updated_at,
		   e.full_name, e.employee_code
	FROM payroll_adjustments a
	JOIN employees e ON e.id = a.employee_id
`

func scanAdjustment(row pgx.Row) (adjustment.PayrollAdjustment, error) {
	var a adjustment.PayrollAdjustment
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.EmployeeID, &a.Type, &a.Amount, &a.Description, &a.EffectiveDate,
		&a.TotalLoanAmount, &a.InstallmentAmt, &a.TotalInstallments, &a.InstallmentsPaid, &a.Status,
		&a.DecidedBy, &a.DecidedAt, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeeCode,
	)
	return a, err
}

func (r *adjustmentRepository) Create(ctx context.Context, a adjustment.PayrollAdjustment) (adjustment.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_adjustments (company_id, employee_id, type, amount, description, effective_date,
			total_loan_amount, installment_amount, total_installments, installments_paid, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, company_id, employee_id, type, amount, description, effective_date,
			total_loan_amount, installment_amount, total_installments, installments_paid, status,
			decided_by, decided_at, created_at, updated_at
	`

	var created adjustment.PayrollAdjustment
	err := q.QueryRow(ctx, query,
		a.CompanyID, a.EmployeeID, a.Type, a.Amount, a.Description, a.EffectiveDate,
		a.TotalLoanAmount, a.InstallmentAmt, a.TotalInstallments, a.InstallmentsPaid, a.Status,
	).Scan(
		&created.ID, &created.CompanyID, &created.EmployeeID, &created.Type,
		&created.Amount, &created.Description, &created.EffectiveDate,
		&created.TotalLoanAmount, &created.InstallmentAmt, &created.TotalInstallments, &created.InstallmentsPaid, &created.Status,
		&created.DecidedBy, &created.DecidedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return adjustment.PayrollAdjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return created, nil
}

func (r *adjustmentRepository) GetByID(ctx context.Context, id string, companyID string) (adjustment.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := adjustmentSelect + ` WHERE a.id = $1 AND a.company_id = $2`

	a, err := scanAdjustment(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.PayrollAdjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.PayrollAdjustment{}, fmt.Errorf("failed to get adjustment: %w", err)
	}

	return a, nil
}

func (r *adjustmentRepository) List(ctx context.Context, companyID string, filter adjustment.AdjustmentFilter) ([]adjustment.PayrollAdjustment, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"a.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		where = append(where, fmt.Sprintf("a.type = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("a.status = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM payroll_adjustments a WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count adjustments: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf("%s WHERE %s ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d",
		adjustmentSelect, whereClause, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []adjustment.PayrollAdjustment
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	return adjustments, total, rows.Err()
}

func (r *adjustmentRepository) ListApprovedEffectiveBefore(ctx context.Context, companyID, employeeID string, cutoff time.Time) ([]adjustment.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := adjustmentSelect + `
		WHERE a.company_id = $1 AND a.employee_id = $2
		  AND a.status = 'approved'
		  AND a.effective_date <= $3
		ORDER BY a.effective_date
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []adjustment.PayrollAdjustment
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	return adjustments, rows.Err()
}

func (r *adjustmentRepository) UpdateStatus(ctx context.Context, id string, companyID string, status adjustment.Status, decidedBy *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_adjustments SET
			status = $3,
			decided_by = $4,
			decided_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, companyID, status, decidedBy)
	if err != nil {
		return fmt.Errorf("failed to update adjustment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentAlreadyProcessed
	}

	return nil
}

func (r *adjustmentRepository) RegisterInstallment(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	// The final installment flips the loan to processed in the same write,
	// which takes it out of every future generation pass.
	query := `
		UPDATE payroll_adjustments SET
			installments_paid = COALESCE(installments_paid, 0) + 1,
			status = CASE
				WHEN total_installments IS NOT NULL
				 AND COALESCE(installments_paid, 0) + 1 >= total_installments
				THEN 'processed' ELSE status
			END,
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'approved'
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to register loan installment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}

	return nil
}

func (r *adjustmentRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	// Only unprocessed records may be removed.
	query := `DELETE FROM payroll_adjustments WHERE id = $1 AND company_id = $2 AND status = 'pending'`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}

	return nil
}
