package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeType enum, fixed mapping to rate multipliers. The type is chosen
// by the submitter, never inferred from the date.
type OvertimeType string

const (
	TypeRegular OvertimeType = "regular"
	TypeWeekday OvertimeType = "weekday"
	TypeWeekend OvertimeType = "weekend"
	TypeHoliday OvertimeType = "holiday"
)

// multipliers is the closed set of legal rate multipliers.
var multipliers = map[OvertimeType]decimal.Decimal{
	TypeRegular: decimal.NewFromFloat(1.0),
	TypeWeekday: decimal.NewFromFloat(1.5),
	TypeWeekend: decimal.NewFromFloat(2.0),
	TypeHoliday: decimal.NewFromFloat(3.0),
}

// Multiplier returns the rate multiplier for the overtime type.
func (t OvertimeType) Multiplier() (decimal.Decimal, bool) {
	m, ok := multipliers[t]
	return m, ok
}

// Status enum: pending -> approved | rejected | cancelled, all terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type Overtime struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Date       time.Time
	Hours      decimal.Decimal
	Type       OvertimeType
	Multiplier decimal.Decimal
	// RatePerHour and TotalAmount are derived at submission time from the
	// employee's basic salary and frozen on the record.
	RatePerHour decimal.Decimal
	TotalAmount decimal.Decimal
	Notes       *string
	Status      Status
	DecidedBy   *string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
