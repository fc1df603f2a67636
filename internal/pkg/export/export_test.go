package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
)

func sampleRecords() []payroll.PayrollResponse {
	name := "Budi Santoso"
	code := "EMP-0001"
	return []payroll.PayrollResponse{
		{
			ID:              "pr-1",
			EmployeeID:      "emp-1",
			EmployeeName:    &name,
			EmployeeCode:    &code,
			PeriodKey:       "2025-03",
			PeriodStart:     "2025-02-21",
			PeriodEnd:       "2025-03-20",
			BasicSalary:     decimal.NewFromInt(5000000),
			TotalAllowances: decimal.NewFromInt(500000),
			OvertimeAmount:  decimal.NewFromInt(150000),
			GrossSalary:     decimal.NewFromInt(5650000),
			TotalDeductions: decimal.NewFromInt(200000),
			NetSalary:       decimal.NewFromInt(5450000),
			Status:          "approved",
		},
	}
}

func TestWritePayrolls_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayrolls(&buf, FormatCSV, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "EMP-0001", rows[1][0])
	assert.Equal(t, "Budi Santoso", rows[1][1])
	assert.Equal(t, "", rows[1][2]) // nil department renders empty
	assert.Equal(t, "2025-03", rows[1][3])
	assert.Equal(t, "5450000", rows[1][11])
	assert.Equal(t, "approved", rows[1][12])
}

func TestWritePayrolls_CSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayrolls(&buf, FormatCSV, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestWritePayrolls_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayrolls(&buf, FormatJSON, sampleRecords()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "2025-03", decoded[0]["period"])
	assert.Equal(t, "approved", decoded[0]["status"])
}

func TestFormat(t *testing.T) {
	assert.True(t, FormatCSV.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, Format("xlsx").IsValid())

	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
}
