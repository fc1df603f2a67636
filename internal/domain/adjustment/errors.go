package adjustment

import "errors"

var (
	ErrAdjustmentNotFound         = errors.New("payroll adjustment not found")
	ErrAdjustmentAlreadyProcessed = errors.New("payroll adjustment already processed")
)
