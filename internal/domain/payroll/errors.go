package payroll

import "errors"

var (
	ErrPayrollNotFound          = errors.New("payroll record not found")
	ErrPayrollAlreadyExists     = errors.New("payroll record already exists for this period")
	ErrPayrollSettingNotFound   = errors.New("payroll setting not found")
	ErrInvalidStatusTransition  = errors.New("illegal payroll status transition")
	ErrInvalidPeriodKey         = errors.New("invalid payroll period key")
	ErrInvalidCutoffDay         = errors.New("cutoff day must be between 1 and 31")
	ErrEmployeeHasNoBasicSalary = errors.New("employee has no basic salary configured")
)
