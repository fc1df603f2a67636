package employee

import (
	"context"

	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:    companyID,
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
		Position:     req.Position,
		JoinDate:     joinDate,
		BasicSalary:  req.BasicSalary,
		Status:       employee.EmploymentStatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id, companyID string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

func (s *EmployeeService) List(ctx context.Context, companyID string, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employee.ToResponse(e))
	}
	return out, total, nil
}

func (s *EmployeeService) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, companyID, req)
}

func (s *EmployeeService) Delete(ctx context.Context, id, companyID string) error {
	return s.employeeRepo.Delete(ctx, id, companyID)
}
