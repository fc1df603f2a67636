package adjustment

import (
	"context"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

type AdjustmentService struct {
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAdjustmentService(adjustmentRepo adjustment.AdjustmentRepository, employeeRepo employee.EmployeeRepository) *AdjustmentService {
	return &AdjustmentService{adjustmentRepo: adjustmentRepo, employeeRepo: employeeRepo}
}

// Create records a pending adjustment. For loans the per-period amount is the
// installment, and the installment count is derived up front.
func (s *AdjustmentService) Create(ctx context.Context, companyID string, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	effectiveDate, _ := validator.IsValidDate(req.EffectiveDate)

	a := adjustment.PayrollAdjustment{
		CompanyID:     companyID,
		EmployeeID:    emp.ID,
		Type:          adjustment.AdjustmentType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		EffectiveDate: effectiveDate,
		Status:        adjustment.StatusPending,
	}

	if a.Type == adjustment.TypeLoan {
		a.TotalLoanAmount = req.TotalLoanAmount
		a.InstallmentAmt = req.InstallmentAmount
		a.Amount = *req.InstallmentAmount
		// Ceiling division keeps a short final installment as its own period.
		installments := int(req.TotalLoanAmount.Div(*req.InstallmentAmount).Ceil().IntPart())
		a.TotalInstallments = &installments
		paid := 0
		a.InstallmentsPaid = &paid
	}

	created, err := s.adjustmentRepo.Create(ctx, a)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	return toResponse(created), nil
}

func (s *AdjustmentService) Decide(ctx context.Context, companyID string, decidedBy string, req adjustment.DecideAdjustmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	a, err := s.adjustmentRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return err
	}
	if a.Status != adjustment.StatusPending {
		return adjustment.ErrAdjustmentAlreadyProcessed
	}

	var status adjustment.Status
	var actor *string
	switch req.Action {
	case "approve":
		status = adjustment.StatusApproved
		actor = &decidedBy
	case "reject":
		status = adjustment.StatusRejected
		actor = &decidedBy
	case "cancel":
		status = adjustment.StatusCancelled
	}

	return s.adjustmentRepo.UpdateStatus(ctx, a.ID, companyID, status, actor)
}

func (s *AdjustmentService) GetByID(ctx context.Context, id, companyID string) (adjustment.AdjustmentResponse, error) {
	a, err := s.adjustmentRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return toResponse(a), nil
}

func (s *AdjustmentService) List(ctx context.Context, companyID string, filter adjustment.AdjustmentFilter) ([]adjustment.AdjustmentResponse, int64, error) {
	adjustments, total, err := s.adjustmentRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, toResponse(a))
	}
	return out, total, nil
}

// Delete removes a still-pending adjustment.
func (s *AdjustmentService) Delete(ctx context.Context, id, companyID string) error {
	return s.adjustmentRepo.Delete(ctx, id, companyID)
}

func toResponse(a adjustment.PayrollAdjustment) adjustment.AdjustmentResponse {
	resp := adjustment.AdjustmentResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		EmployeeName:      a.EmployeeName,
		EmployeeCode:      a.EmployeeCode,
		Type:              string(a.Type),
		Amount:            a.Amount,
		Description:       a.Description,
		EffectiveDate:     a.EffectiveDate.Format("2006-01-02"),
		TotalLoanAmount:   a.TotalLoanAmount,
		InstallmentAmount: a.InstallmentAmt,
		TotalInstallments: a.TotalInstallments,
		InstallmentsPaid:  a.InstallmentsPaid,
		Status:            string(a.Status),
		DecidedBy:         a.DecidedBy,
	}
	if a.DecidedAt != nil {
		decidedAt := a.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
