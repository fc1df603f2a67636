package postgresql

import (
	"context"
	"fmt"

	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

// remaining_days is recomputed on every write so the
// allocated - used - pending invariant can never drift.

func (r *leaveBalanceRepository) Upsert(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, leave_type_id, year, allocated_days, used_days, pending_days, remaining_days)
		VALUES ($1, $2, $3, $4, $5, $6, $4 - $5 - $6)
		ON CONFLICT (employee_id, leave_type_id, year) DO UPDATE SET
			allocated_days = EXCLUDED.allocated_days,
			remaining_days = EXCLUDED.allocated_days - leave_balances.used_days - leave_balances.pending_days,
			updated_at = NOW()
		RETURNING id, employee_id, leave_type_id, year, allocated_days, used_days, pending_days, remaining_days, created_at, updated_at
	`

	var out leave.LeaveBalance
	err := q.QueryRow(ctx, query,
		b.EmployeeID, b.LeaveTypeID, b.Year, b.AllocatedDays, b.UsedDays, b.PendingDays,
	).Scan(
		&out.ID, &out.EmployeeID, &out.LeaveTypeID, &out.Year,
		&out.AllocatedDays, &out.UsedDays, &out.PendingDays, &out.RemainingDays,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}

	return out, nil
}

func (r *leaveBalanceRepository) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type_id, year, allocated_days, used_days, pending_days, remaining_days, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year,
		&b.AllocatedDays, &b.UsedDays, &b.PendingDays, &b.RemainingDays,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

func (r *leaveBalanceRepository) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.year,
			   b.allocated_days, b.used_days, b.pending_days, b.remaining_days,
			   b.created_at, b.updated_at, lt.code, lt.name
		FROM leave_balances b
		JOIN leave_types lt ON lt.id = b.leave_type_id
		WHERE b.employee_id = $1 AND b.year = $2
		ORDER BY lt.code
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year,
			&b.AllocatedDays, &b.UsedDays, &b.PendingDays, &b.RemainingDays,
			&b.CreatedAt, &b.UpdatedAt, &b.LeaveTypeCode, &b.LeaveTypeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *leaveBalanceRepository) ListByCompany(ctx context.Context, companyID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.year,
			   b.allocated_days, b.used_days, b.pending_days, b.remaining_days,
			   b.created_at, b.updated_at, lt.code, lt.name, e.full_name
		FROM leave_balances b
		JOIN leave_types lt ON lt.id = b.leave_type_id
		JOIN employees e ON e.id = b.employee_id
		WHERE e.company_id = $1 AND b.year = $2
		ORDER BY e.employee_code, lt.code
	`

	rows, err := q.Query(ctx, query, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list company leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year,
			&b.AllocatedDays, &b.UsedDays, &b.PendingDays, &b.RemainingDays,
			&b.CreatedAt, &b.UpdatedAt, &b.LeaveTypeCode, &b.LeaveTypeName, &b.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *leaveBalanceRepository) AddPending(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	return r.moveCounters(ctx, employeeID, leaveTypeID, year, `
		UPDATE leave_balances SET
			pending_days = pending_days + $4,
			remaining_days = allocated_days - used_days - (pending_days + $4),
			updated_at = NOW()
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
		  AND allocated_days - used_days - pending_days >= $4
	`, days)
}

func (r *leaveBalanceRepository) MovePendingToUsed(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	return r.moveCounters(ctx, employeeID, leaveTypeID, year, `
		UPDATE leave_balances SET
			pending_days = pending_days - $4,
			used_days = used_days + $4,
			remaining_days = allocated_days - (used_days + $4) - (pending_days - $4),
			updated_at = NOW()
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3 AND pending_days >= $4
	`, days)
}

func (r *leaveBalanceRepository) ReleasePending(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	return r.moveCounters(ctx, employeeID, leaveTypeID, year, `
		UPDATE leave_balances SET
			pending_days = pending_days - $4,
			remaining_days = allocated_days - used_days - (pending_days - $4),
			updated_at = NOW()
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3 AND pending_days >= $4
	`, days)
}

func (r *leaveBalanceRepository) moveCounters(ctx context.Context, employeeID, leaveTypeID string, year int, query string, days int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, query, employeeID, leaveTypeID, year, days)
	if err != nil {
		return fmt.Errorf("failed to move leave balance counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}
