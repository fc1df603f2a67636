package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FullName     string
	Email        *string
	Department   *string
	Position     *string
	JoinDate     time.Time
	// BasicSalary is the monthly base salary; the overtime hourly rate and
	// payroll generation both derive from it.
	BasicSalary decimal.Decimal
	Status      EmploymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)
