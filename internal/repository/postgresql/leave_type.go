package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

const leaveTypeColumns = `id, company_id, code, name, description, default_days, proration_policy, is_active, created_at, updated_at`

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var lt leave.LeaveType
	err := row.Scan(
		&lt.ID, &lt.CompanyID, &lt.Code, &lt.Name, &lt.Description,
		&lt.DefaultDays, &lt.ProrationPolicy, &lt.IsActive, &lt.CreatedAt, &lt.UpdatedAt,
	)
	return lt, err
}

func (r *leaveTypeRepository) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (company_id, code, name, description, default_days, proration_policy, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveTypeColumns

	created, err := scanLeaveType(q.QueryRow(ctx, query,
		lt.CompanyID, lt.Code, lt.Name, lt.Description, lt.DefaultDays, lt.ProrationPolicy, lt.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_leave_types_code") {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

func (r *leaveTypeRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE id = $1 AND company_id = $2`

	lt, err := scanLeaveType(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	return lt, nil
}

func (r *leaveTypeRepository) GetByCode(ctx context.Context, code string, companyID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE code = $1 AND company_id = $2`

	lt, err := scanLeaveType(q.QueryRow(ctx, query, code, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type by code: %w", err)
	}

	return lt, nil
}

func (r *leaveTypeRepository) List(ctx context.Context, companyID string, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE company_id = $1`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY code"

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		lt, err := scanLeaveType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}

	return types, rows.Err()
}

func (r *leaveTypeRepository) Update(ctx context.Context, companyID string, req leave.UpdateLeaveTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types SET
			name = COALESCE($3, name),
			description = COALESCE($4, description),
			default_days = COALESCE($5, default_days),
			proration_policy = COALESCE($6, proration_policy),
			is_active = COALESCE($7, is_active),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		req.ID, companyID, req.Name, req.Description, req.DefaultDays, req.ProrationPolicy, req.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}

func (r *leaveTypeRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}
