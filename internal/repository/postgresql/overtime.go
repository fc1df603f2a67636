package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeSelect = `
	SELECT o.id, o.company_id, o.employee_id, o.date, o.hours, o.type, o.multiplier,
		   o.rate_per_hour, o.total_amount, o.notes, o.status,
		   o.decided_by, o.decided_at, o.created_at, o.updated_at,
		   e.full_name, e.employee_code
	FROM overtimes o
	JOIN employees e ON e.id = o.employee_id
`

func scanOvertime(row pgx.Row) (overtime.Overtime, error) {
	var o overtime.Overtime
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.EmployeeID, &o.Date, &o.Hours, &o.Type, &o.Multiplier,
		&o.RatePerHour, &o.TotalAmount, &o.Notes, &o.Status,
		&o.DecidedBy, &o.DecidedAt, &o.CreatedAt, &o.UpdatedAt,
		&o.EmployeeName, &o.EmployeeCode,
	)
	return o, err
}

func (r *overtimeRepository) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtimes (company_id, employee_id, date, hours, type, multiplier, rate_per_hour, total_amount, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, company_id, employee_id, date, hours, type, multiplier,
			rate_per_hour, total_amount, notes, status, decided_by, decided_at, created_at, updated_at
	`

	var created overtime.Overtime
	err := q.QueryRow(ctx, query,
		o.CompanyID, o.EmployeeID, o.Date, o.Hours, o.Type, o.Multiplier,
		o.RatePerHour, o.TotalAmount, o.Notes, o.Status,
	).Scan(
		&created.ID, &created.CompanyID, &created.EmployeeID, &created.Date,
		&created.Hours, &created.Type, &created.Multiplier,
		&created.RatePerHour, &created.TotalAmount, &created.Notes, &created.Status,
		&created.DecidedBy, &created.DecidedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}

	return created, nil
}

func (r *overtimeRepository) GetByID(ctx context.Context, id string, companyID string) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := overtimeSelect + ` WHERE o.id = $1 AND o.company_id = $2`

	o, err := scanOvertime(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, fmt.Errorf("failed to get overtime: %w", err)
	}

	return o, nil
}

func (r *overtimeRepository) List(ctx context.Context, companyID string, filter overtime.OvertimeFilter) ([]overtime.Overtime, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"o.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("o.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where = append(where, fmt.Sprintf("o.date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where = append(where, fmt.Sprintf("o.date <= $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM overtimes o WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtimes: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf("%s WHERE %s ORDER BY o.date DESC LIMIT $%d OFFSET $%d",
		overtimeSelect, whereClause, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtimes: %w", err)
	}
	defer rows.Close()

	var overtimes []overtime.Overtime
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime: %w", err)
		}
		overtimes = append(overtimes, o)
	}

	return overtimes, total, rows.Err()
}

func (r *overtimeRepository) ListApprovedInRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := overtimeSelect + `
		WHERE o.company_id = $1 AND o.employee_id = $2
		  AND o.status = 'approved'
		  AND o.date BETWEEN $3 AND $4
		ORDER BY o.date
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved overtimes: %w", err)
	}
	defer rows.Close()

	var overtimes []overtime.Overtime
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		overtimes = append(overtimes, o)
	}

	return overtimes, rows.Err()
}

func (r *overtimeRepository) UpdateStatus(ctx context.Context, id string, companyID string, status overtime.Status, decidedBy *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtimes SET
			status = $3,
			decided_by = $4,
			decided_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, companyID, status, decidedBy)
	if err != nil {
		return fmt.Errorf("failed to update overtime status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeAlreadyProcessed
	}

	return nil
}
