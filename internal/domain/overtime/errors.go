package overtime

import "errors"

var (
	ErrOvertimeNotFound         = errors.New("overtime record not found")
	ErrOvertimeAlreadyProcessed = errors.New("overtime record already processed")
)
