package response

import (
	"errors"
	"net/http"

	"github.com/gajikita/payroll-backend-go/internal/domain/adjustment"
	"github.com/gajikita/payroll-backend-go/internal/domain/announcement"
	"github.com/gajikita/payroll-backend-go/internal/domain/auth"
	"github.com/gajikita/payroll-backend-go/internal/domain/company"
	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/gajikita/payroll-backend-go/internal/domain/user"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCompanyIDRequired):
		Forbidden(w, "No company associated with this account")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime record already processed")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Payroll adjustment not found")
	case errors.Is(err, adjustment.ErrAdjustmentAlreadyProcessed):
		Conflict(w, "Payroll adjustment already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrPayrollSettingNotFound):
		NotFound(w, "Payroll setting not found")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Illegal payroll status transition")
	case errors.Is(err, payroll.ErrInvalidPeriodKey):
		BadRequest(w, "Period must match YYYY-MM", nil)
	case errors.Is(err, payroll.ErrInvalidCutoffDay):
		BadRequest(w, "Cutoff day must be between 1 and 31", nil)
	case errors.Is(err, payroll.ErrEmployeeHasNoBasicSalary):
		BadRequest(w, "Employee has no basic salary configured", nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
