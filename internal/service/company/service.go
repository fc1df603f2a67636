package company

import (
	"context"

	"github.com/gajikita/payroll-backend-go/internal/domain/company"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/gajikita/payroll-backend-go/internal/repository/postgresql"
)

// defaultLeaveTypes are seeded for every new company. Annual leave is the
// only type with a proration policy out of the box.
var defaultLeaveTypes = []leave.LeaveType{
	{Code: "AL", Name: "Annual Leave", DefaultDays: 12, ProrationPolicy: leave.ProrationProbation, IsActive: true},
	{Code: "SICK", Name: "Sick Leave", DefaultDays: 12, ProrationPolicy: leave.ProrationNone, IsActive: true},
	{Code: "UNPAID", Name: "Unpaid Leave", DefaultDays: 0, ProrationPolicy: leave.ProrationNone, IsActive: true},
}

type CompanyService struct {
	db               *database.DB
	companyRepo      company.CompanyRepository
	leaveTypeRepo    leave.LeaveTypeRepository
	payrollRepo      payroll.PayrollRepository
	defaultCutoffDay int
}

func NewCompanyService(
	db *database.DB,
	companyRepo company.CompanyRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
	payrollRepo payroll.PayrollRepository,
	defaultCutoffDay int,
) *CompanyService {
	return &CompanyService{
		db:               db,
		companyRepo:      companyRepo,
		leaveTypeRepo:    leaveTypeRepo,
		payrollRepo:      payrollRepo,
		defaultCutoffDay: defaultCutoffDay,
	}
}

// Create inserts the company together with its default leave types and
// payroll setting in one transaction.
func (s *CompanyService) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	var created company.Company
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.companyRepo.Create(txCtx, company.Company{
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
		})
		if err != nil {
			return err
		}

		for _, lt := range defaultLeaveTypes {
			lt.CompanyID = created.ID
			if _, err := s.leaveTypeRepo.Create(txCtx, lt); err != nil {
				return err
			}
		}

		_, err = s.payrollRepo.UpsertSetting(txCtx, payroll.PayrollSetting{
			CompanyID: created.ID,
			CutoffDay: s.defaultCutoffDay,
		})
		return err
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.ToResponse(created), nil
}

func (s *CompanyService) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(c), nil
}

func (s *CompanyService) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, company.ToResponse(c))
	}
	return out, nil
}

func (s *CompanyService) Update(ctx context.Context, req company.UpdateCompanyRequest) error {
	return s.companyRepo.Update(ctx, req)
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.companyRepo.Delete(ctx, id)
}
