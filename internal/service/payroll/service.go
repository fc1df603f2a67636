package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
)

type PayrollService struct {
	db               *database.DB
	payrollRepo      payroll.PayrollRepository
	employeeRepo     employee.EmployeeRepository
	overtimeRepo     overtime.OvertimeRepository
	adjustmentRepo   adjustment.AdjustmentRepository
	defaultCutoffDay int
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	overtimeRepo overtime.OvertimeRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	defaultCutoffDay int,
) *PayrollService {
	return &PayrollService{
		db:               db,
		payrollRepo:      payrollRepo,
		employeeRepo:     employeeRepo,
		overtimeRepo:     overtimeRepo,
		adjustmentRepo:   adjustmentRepo,
		defaultCutoffDay: defaultCutoffDay,
	}
}

// ========== SETTINGS ==========

// GetSetting returns the company's payroll setting, falling back to the
// configured default cutoff day when none has been stored yet.
func (s *PayrollService) GetSetting(ctx context.Context, companyID string) (payroll.PayrollSettingResponse, error) {
	setting, err := s.payrollRepo.GetSetting(ctx, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollSettingNotFound) {
			return payroll.PayrollSettingResponse{
				CompanyID: companyID,
				CutoffDay: s.defaultCutoffDay,
			}, nil
		}
		return payroll.PayrollSettingResponse{}, err
	}
	return toSettingResponse(setting), nil
}

func (s *PayrollService) UpdateSetting(ctx context.Context, companyID string, req payroll.UpdatePayrollSettingRequest) (payroll.PayrollSettingResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingResponse{}, err
	}

	setting, err := s.payrollRepo.UpsertSetting(ctx, payroll.PayrollSetting{
		CompanyID: companyID,
		CutoffDay: req.CutoffDay,
	})
	if err != nil {
		return payroll.PayrollSettingResponse{}, err
	}
	return toSettingResponse(setting), nil
}

func toSettingResponse(setting payroll.PayrollSetting) payroll.PayrollSettingResponse {
	return payroll.PayrollSettingResponse{
		ID:        setting.ID,
		CompanyID: setting.CompanyID,
		CutoffDay: setting.CutoffDay,
	}
}

// ========== GENERATION ==========

// Generate builds draft payroll records for the period. Employees that
// already have a record for the period are skipped, not overwritten; other
// per-employee failures are collected without aborting the batch.
func (s *PayrollService) Generate(ctx context.Context, companyID string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResult{}, err
	}

	cutoffDay := s.defaultCutoffDay
	if setting, err := s.payrollRepo.GetSetting(ctx, companyID); err == nil {
		cutoffDay = setting.CutoffDay
	} else if !errors.Is(err, payroll.ErrPayrollSettingNotFound) {
		return payroll.GeneratePayrollResult{}, err
	}

	period, err := ResolvePeriod(req.PeriodKey, cutoffDay)
	if err != nil {
		return payroll.GeneratePayrollResult{}, err
	}

	targets, err := s.resolveTargets(ctx, companyID, req.EmployeeIDs)
	if err != nil {
		return payroll.GeneratePayrollResult{}, err
	}

	result := payroll.GeneratePayrollResult{Errors: map[string]string{}}
	for _, emp := range targets {
		err := s.generateOne(ctx, companyID, emp, req.PeriodKey, period)
		switch {
		case err == nil:
			result.Generated++
		case errors.Is(err, payroll.ErrPayrollAlreadyExists):
			result.Skipped++
		default:
			result.Errors[emp.ID] = err.Error()
		}
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result, nil
}

func (s *PayrollService) generateOne(ctx context.Context, companyID string, emp employee.Employee, periodKey string, period Period) error {
	if emp.BasicSalary.IsZero() {
		return payroll.ErrEmployeeHasNoBasicSalary
	}

	overtimes, err := s.overtimeRepo.ListApprovedInRange(ctx, companyID, emp.ID, period.Start, period.End)
	if err != nil {
		return err
	}
	overtimeAmount := decimal.Zero
	for _, o := range overtimes {
		overtimeAmount = overtimeAmount.Add(o.TotalAmount)
	}

	adjustments, err := s.adjustmentRepo.ListApprovedEffectiveBefore(ctx, companyID, emp.ID, period.End)
	if err != nil {
		return err
	}

	totalAllowances := decimal.Zero
	totalDeductions := decimal.Zero
	allowancesDetail := map[string]decimal.Decimal{}
	deductionsDetail := map[string]decimal.Decimal{}
	for _, a := range adjustments {
		label := string(a.Type)
		if a.Description != nil && *a.Description != "" {
			label = *a.Description
		}
		if a.Type.IsDeduction() {
			totalDeductions = totalDeductions.Add(a.Amount)
			deductionsDetail[label] = deductionsDetail[label].Add(a.Amount)
		} else {
			totalAllowances = totalAllowances.Add(a.Amount)
			allowancesDetail[label] = allowancesDetail[label].Add(a.Amount)
		}
	}

	gross := emp.BasicSalary.Add(totalAllowances).Add(overtimeAmount)
	net := gross.Sub(totalDeductions)

	created, err := s.payrollRepo.Create(ctx, payroll.Payroll{
		CompanyID:        companyID,
		EmployeeID:       emp.ID,
		PeriodKey:        periodKey,
		PeriodStart:      period.Start,
		PeriodEnd:        period.End,
		BasicSalary:      emp.BasicSalary,
		TotalAllowances:  totalAllowances,
		TotalDeductions:  totalDeductions,
		OvertimeAmount:   overtimeAmount,
		AllowancesDetail: allowancesDetail,
		DeductionsDetail: deductionsDetail,
		GrossSalary:      gross,
		NetSalary:        net,
		Status:           payroll.StatusDraft,
	})
	if err != nil {
		return err
	}

	// Each generated period counts one installment against every loan it
	// deducted; the repository flips a fully collected loan to processed so
	// the next period no longer picks it up. Duplicate periods never get
	// here (Create fails on the unique key first), so a loan is counted at
	// most once per period.
	for _, a := range adjustments {
		if a.Type != adjustment.TypeLoan {
			continue
		}
		if err := s.adjustmentRepo.RegisterInstallment(ctx, a.ID, companyID); err != nil {
			slog.Error("failed to register loan installment",
				"adjustment_id", a.ID, "payroll_id", created.ID, "error", err)
		}
	}

	return nil
}

func (s *PayrollService) resolveTargets(ctx context.Context, companyID string, employeeIDs []string) ([]employee.Employee, error) {
	if len(employeeIDs) == 0 {
		return s.employeeRepo.ListActive(ctx, companyID)
	}

	targets := make([]employee.Employee, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
		if err != nil {
			return nil, err
		}
		targets = append(targets, emp)
	}
	return targets, nil
}

// ========== PIPELINE ==========

// Transition moves a record one step along the approval pipeline, enforcing
// the legal transition table.
func (s *PayrollService) Transition(ctx context.Context, companyID string, actor string, req payroll.TransitionPayrollRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	p, err := s.payrollRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return err
	}

	target := payroll.Status(req.Status)
	if !p.Status.CanTransition(target) {
		return payroll.ErrInvalidStatusTransition
	}

	var actorPtr *string
	if target == payroll.StatusApproved || target == payroll.StatusRejected {
		actorPtr = &actor
	}
	return s.payrollRepo.UpdateStatus(ctx, p.ID, companyID, p.Status, target, actorPtr, req.Notes)
}

// ========== QUERIES ==========

func (s *PayrollService) GetByID(ctx context.Context, id, companyID string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return ToResponse(p), nil
}

func (s *PayrollService) List(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, int64, error) {
	records, total, err := s.payrollRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		out = append(out, ToResponse(p))
	}
	return out, total, nil
}

// Delete removes a record that has not yet been paid, e.g. to regenerate a
// draft after correcting an employee's salary.
func (s *PayrollService) Delete(ctx context.Context, id, companyID string) error {
	return s.payrollRepo.Delete(ctx, id, companyID)
}

// ToResponse converts an entity to its API shape. Exported because the
// export package reuses it when rendering period reports.
func ToResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     p.EmployeeName,
		EmployeeCode:     p.EmployeeCode,
		Department:       p.Department,
		PeriodKey:        p.PeriodKey,
		PeriodStart:      p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        p.PeriodEnd.Format("2006-01-02"),
		BasicSalary:      p.BasicSalary,
		TotalAllowances:  p.TotalAllowances,
		TotalDeductions:  p.TotalDeductions,
		OvertimeAmount:   p.OvertimeAmount,
		AllowancesDetail: p.AllowancesDetail,
		DeductionsDetail: p.DeductionsDetail,
		GrossSalary:      p.GrossSalary,
		NetSalary:        p.NetSalary,
		Status:           string(p.Status),
		Notes:            p.Notes,
		ApprovedBy:       p.ApprovedBy,
	}
	if p.PaidAt != nil {
		paidAt := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
