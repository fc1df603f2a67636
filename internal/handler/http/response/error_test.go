package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/domain/auth"
	"github.com/gajikita/payroll-backend-go/internal/domain/employee"
	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/gajikita/payroll-backend-go/internal/domain/user"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, 401, "UNAUTHORIZED"},
		{"admin required", user.ErrAdminPrivilegeRequired, 403, "FORBIDDEN"},
		{"employee not found", employee.ErrEmployeeNotFound, 404, "NOT_FOUND"},
		{"duplicate payroll", payroll.ErrPayrollAlreadyExists, 409, "CONFLICT"},
		{"invalid transition", payroll.ErrInvalidStatusTransition, 409, "CONFLICT"},
		{"insufficient balance", leave.ErrInsufficientBalance, 400, "BAD_REQUEST"},
		{"invalid period key", payroll.ErrInvalidPeriodKey, 400, "BAD_REQUEST"},
		{"unknown error", errors.New("boom"), 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "Invalid email format"},
		{Field: "basic_salary", Message: "Must be greater than or equal to 0"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, 422, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "Invalid email format", body.Error.Details["email"])
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 20, 45)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)

	// Defaults kick in for non-positive inputs.
	meta = NewMeta(0, 0, 5)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 1, meta.TotalPages)
}
