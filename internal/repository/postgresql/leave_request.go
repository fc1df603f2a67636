package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (company_id, employee_id, leave_type_id, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, company_id, employee_id, leave_type_id, start_date, end_date, days, reason, status,
			decided_by, decided_at, created_at, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		lr.CompanyID, lr.EmployeeID, lr.LeaveTypeID, lr.StartDate, lr.EndDate, lr.Days, lr.Reason, lr.Status,
	).Scan(
		&created.ID, &created.CompanyID, &created.EmployeeID, &created.LeaveTypeID,
		&created.StartDate, &created.EndDate, &created.Days, &created.Reason, &created.Status,
		&created.DecidedBy, &created.DecidedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.company_id, lr.employee_id, lr.leave_type_id,
			   lr.start_date, lr.end_date, lr.days, lr.reason, lr.status,
			   lr.decided_by, lr.decided_at, lr.created_at, lr.updated_at,
			   e.full_name, lt.name, lt.code
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.id = $1 AND lr.company_id = $2
	`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&lr.ID, &lr.CompanyID, &lr.EmployeeID, &lr.LeaveTypeID,
		&lr.StartDate, &lr.EndDate, &lr.Days, &lr.Reason, &lr.Status,
		&lr.DecidedBy, &lr.DecidedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.LeaveTypeName, &lr.LeaveTypeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, companyID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"lr.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}
	if filter.LeaveTypeID != nil {
		args = append(args, *filter.LeaveTypeID)
		where = append(where, fmt.Sprintf("lr.leave_type_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		where = append(where, fmt.Sprintf("EXTRACT(YEAR FROM lr.start_date) = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT lr.id, lr.company_id, lr.employee_id, lr.leave_type_id,
			   lr.start_date, lr.end_date, lr.days, lr.reason, lr.status,
			   lr.decided_by, lr.decided_at, lr.created_at, lr.updated_at,
			   e.full_name, lt.name, lt.code
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.CompanyID, &lr.EmployeeID, &lr.LeaveTypeID,
			&lr.StartDate, &lr.EndDate, &lr.Days, &lr.Reason, &lr.Status,
			&lr.DecidedBy, &lr.DecidedAt, &lr.CreatedAt, &lr.UpdatedAt,
			&lr.EmployeeName, &lr.LeaveTypeName, &lr.LeaveTypeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, total, rows.Err()
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, companyID string, status leave.RequestStatus, decidedBy *string) error {
	q := GetQuerier(ctx, r.db)

	// Guarding on status = 'pending' makes concurrent double-decisions lose.
	query := `
		UPDATE leave_requests SET
			status = $3,
			decided_by = $4,
			decided_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, companyID, status, decidedBy)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}
