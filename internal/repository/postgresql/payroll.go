package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SETTINGS ==========

func (r *payrollRepository) GetSetting(ctx context.Context, companyID string) (payroll.PayrollSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, cutoff_day, created_at, updated_at
		FROM payroll_settings
		WHERE company_id = $1
	`

	var s payroll.PayrollSetting
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.CutoffDay, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollSetting{}, payroll.ErrPayrollSettingNotFound
		}
		return payroll.PayrollSetting{}, fmt.Errorf("failed to get payroll setting: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpsertSetting(ctx context.Context, setting payroll.PayrollSetting) (payroll.PayrollSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (company_id, cutoff_day)
		VALUES ($1, $2)
		ON CONFLICT (company_id) DO UPDATE SET
			cutoff_day = EXCLUDED.cutoff_day,
			updated_at = NOW()
		RETURNING id, company_id, cutoff_day, created_at, updated_at
	`

	var s payroll.PayrollSetting
	err := q.QueryRow(ctx, query, setting.CompanyID, setting.CutoffDay).Scan(
		&s.ID, &s.CompanyID, &s.CutoffDay, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollSetting{}, fmt.Errorf("failed to upsert payroll setting: %w", err)
	}

	return s, nil
}

// ========== RECORDS ==========

const payrollSelect = `
	SELECT p.id, p.company_id, p.employee_id, p.period_key, p.period_start, p.period_end,
		   p.basic_salary, p.total_allowances, p.total_deductions, p.overtime_amount,
		   p.allowances_detail, p.deductions_detail, p.gross_salary, p.net_salary,
		   p.status, p.notes, p.approved_by, p.paid_at, p.created_at, p.updated_at,
		   e.full_name, e.employee_code, e.department
	FROM payrolls p
	JOIN employees e ON e.id = p.employee_id
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	var allowancesDetail, deductionsDetail []byte

	err := row.Scan(
		&p.ID, &p.CompanyID, &p.EmployeeID, &p.PeriodKey, &p.PeriodStart, &p.PeriodEnd,
		&p.BasicSalary, &p.TotalAllowances, &p.TotalDeductions, &p.OvertimeAmount,
		&allowancesDetail, &deductionsDetail, &p.GrossSalary, &p.NetSalary,
		&p.Status, &p.Notes, &p.ApprovedBy, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode, &p.Department,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}

	if len(allowancesDetail) > 0 {
		if err := json.Unmarshal(allowancesDetail, &p.AllowancesDetail); err != nil {
			return payroll.Payroll{}, fmt.Errorf("failed to decode allowances detail: %w", err)
		}
	}
	if len(deductionsDetail) > 0 {
		if err := json.Unmarshal(deductionsDetail, &p.DeductionsDetail); err != nil {
			return payroll.Payroll{}, fmt.Errorf("failed to decode deductions detail: %w", err)
		}
	}

	return p, nil
}

func marshalDetail(detail map[string]decimal.Decimal) ([]byte, error) {
	if detail == nil {
		detail = map[string]decimal.Decimal{}
	}
	return json.Marshal(detail)
}

func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	allowances, err := marshalDetail(p.AllowancesDetail)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to encode allowances detail: %w", err)
	}
	deductions, err := marshalDetail(p.DeductionsDetail)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to encode deductions detail: %w", err)
	}

	query := `
		INSERT INTO payrolls (company_id, employee_id, period_key, period_start, period_end,
			basic_salary, total_allowances, total_deductions, overtime_amount,
			allowances_detail, deductions_detail, gross_salary, net_salary, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	var id string
	err = q.QueryRow(ctx, query,
		p.CompanyID, p.EmployeeID, p.PeriodKey, p.PeriodStart, p.PeriodEnd,
		p.BasicSalary, p.TotalAllowances, p.TotalDeductions, p.OvertimeAmount,
		allowances, deductions, p.GrossSalary, p.NetSalary, p.Status, p.Notes,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payrolls_employee_period") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return r.GetByID(ctx, id, p.CompanyID)
}

func (r *payrollRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + ` WHERE p.id = $1 AND p.company_id = $2`

	p, err := scanPayroll(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID, periodKey, companyID string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + ` WHERE p.employee_id = $1 AND p.period_key = $2 AND p.company_id = $3`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, periodKey, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"p.company_id = $1"}
	args := []interface{}{companyID}

	if filter.PeriodKey != nil {
		args = append(args, *filter.PeriodKey)
		where = append(where, fmt.Sprintf("p.period_key = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("p.employee_id = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf("%s WHERE %s ORDER BY p.period_key DESC, e.employee_code LIMIT $%d OFFSET $%d",
		payrollSelect, whereClause, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, total, rows.Err()
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, companyID string, from, to payroll.Status, actor *string, notes *string) error {
	q := GetQuerier(ctx, r.db)

	// Guarded on the expected current status: a transition racing against
	// another one sees 0 rows instead of overwriting the later state.
	query := `
		UPDATE payrolls SET
			status = $3,
			notes = COALESCE($5, notes),
			approved_by = CASE WHEN $3 = 'approved' THEN $4 ELSE approved_by END,
			paid_at = CASE WHEN $3 = 'paid' THEN NOW() ELSE paid_at END,
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = $6
	`

	tag, err := q.Exec(ctx, query, id, companyID, to, actor, notes, from)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrInvalidStatusTransition
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	// Paid records are immutable.
	query := `DELETE FROM payrolls WHERE id = $1 AND company_id = $2 AND status != 'paid'`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
