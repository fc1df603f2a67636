package overtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

func TestCreateOvertimeRequest_Validate(t *testing.T) {
	valid := func() CreateOvertimeRequest {
		return CreateOvertimeRequest{
			EmployeeID: "emp-1",
			Date:       "2025-03-14",
			Hours:      decimal.NewFromInt(2),
			Type:       "weekday",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("boundary hours accepted", func(t *testing.T) {
		req := valid()
		req.Hours = decimal.NewFromInt(200)
		assert.NoError(t, req.Validate())
	})

	hourTests := []struct {
		name  string
		hours decimal.Decimal
	}{
		{"zero hours", decimal.Zero},
		{"negative hours", decimal.NewFromInt(-1)},
		{"over the cap", decimal.NewFromFloat(200.5)},
	}
	for _, tt := range hourTests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			req.Hours = tt.hours

			err := req.Validate()

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "hours")
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		req := valid()
		req.Type = "double-time"

		err := req.Validate()

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "type")
	})

	t.Run("collects all field errors", func(t *testing.T) {
		err := (&CreateOvertimeRequest{Date: "2025-02-30"}).Validate()

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		fields := errs.ToMap()
		assert.Contains(t, fields, "employee_id")
		assert.Contains(t, fields, "date")
		assert.Contains(t, fields, "hours")
		assert.Contains(t, fields, "type")
	})
}
