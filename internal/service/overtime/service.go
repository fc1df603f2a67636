package overtime

import (
	"context"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

type OvertimeService struct {
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository, employeeRepo employee.EmployeeRepository) *OvertimeService {
	return &OvertimeService{overtimeRepo: overtimeRepo, employeeRepo: employeeRepo}
}

// Submit records an overtime request with the rate and amount frozen at
// submission time, so later salary changes never reprice past overtime.
func (s *OvertimeService) Submit(ctx context.Context, companyID string, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	otType := overtime.OvertimeType(req.Type)
	multiplier, _ := otType.Multiplier()
	date, _ := validator.IsValidDate(req.Date)

	created, err := s.overtimeRepo.Create(ctx, overtime.Overtime{
		CompanyID:   companyID,
		EmployeeID:  emp.ID,
		Date:        date,
		Hours:       req.Hours,
		Type:        otType,
		Multiplier:  multiplier,
		RatePerHour: HourlyRate(emp.BasicSalary),
		TotalAmount: TotalAmount(emp.BasicSalary, req.Hours, multiplier),
		Notes:       req.Notes,
		Status:      overtime.StatusPending,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *OvertimeService) Decide(ctx context.Context, companyID string, decidedBy string, req overtime.DecideOvertimeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	o, err := s.overtimeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return err
	}
	if o.Status.IsTerminal() {
		return overtime.ErrOvertimeAlreadyProcessed
	}

	var status overtime.Status
	var actor *string
	switch req.Action {
	case "approve":
		status = overtime.StatusApproved
		actor = &decidedBy
	case "reject":
		status = overtime.StatusRejected
		actor = &decidedBy
	case "cancel":
		status = overtime.StatusCancelled
	}

	return s.overtimeRepo.UpdateStatus(ctx, o.ID, companyID, status, actor)
}

func (s *OvertimeService) GetByID(ctx context.Context, id, companyID string) (overtime.OvertimeResponse, error) {
	o, err := s.overtimeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	return toResponse(o), nil
}

func (s *OvertimeService) List(ctx context.Context, companyID string, filter overtime.OvertimeFilter) ([]overtime.OvertimeResponse, int64, error) {
	records, total, err := s.overtimeRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]overtime.OvertimeResponse, 0, len(records))
	for _, o := range records {
		out = append(out, toResponse(o))
	}
	return out, total, nil
}

func toResponse(o overtime.Overtime) overtime.OvertimeResponse {
	resp := overtime.OvertimeResponse{
		ID:           o.ID,
		EmployeeID:   o.EmployeeID,
		EmployeeName: o.EmployeeName,
		EmployeeCode: o.EmployeeCode,
		Date:         o.Date.Format("2006-01-02"),
		Hours:        o.Hours,
		Type:         string(o.Type),
		Multiplier:   o.Multiplier,
		RatePerHour:  o.RatePerHour,
		TotalAmount:  o.TotalAmount,
		Notes:        o.Notes,
		Status:       string(o.Status),
		DecidedBy:    o.DecidedBy,
	}
	if o.DecidedAt != nil {
		decidedAt := o.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
