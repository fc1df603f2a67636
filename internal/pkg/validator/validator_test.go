package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("budi@example.com"))
	assert.True(t, IsValidEmail("a.b+tag@sub.domain.co.id"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), d)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("28-02-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidPeriodKey(t *testing.T) {
	tests := []struct {
		input     string
		wantYear  int
		wantMonth time.Month
		wantOK    bool
	}{
		{"2025-01", 2025, time.January, true},
		{"2024-12", 2024, time.December, true},
		{"2025-13", 0, 0, false},
		{"2025-00", 0, 0, false},
		{"2025-1", 0, 0, false},
		{"202501", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			year, month, ok := IsValidPeriodKey(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantYear, year)
				assert.Equal(t, tt.wantMonth, month)
			}
		})
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-0042"))
	assert.True(t, IsValidEmployeeCode("HR-1234"))
	assert.False(t, IsValidEmployeeCode("emp-0042"))
	assert.False(t, IsValidEmployeeCode("EMP0042"))
	assert.False(t, IsValidEmployeeCode("E-42"))
}

func TestIsValidLeaveTypeCode(t *testing.T) {
	assert.True(t, IsValidLeaveTypeCode("AL"))
	assert.True(t, IsValidLeaveTypeCode("UNPAID"))
	assert.False(t, IsValidLeaveTypeCode("al"))
	assert.False(t, IsValidLeaveTypeCode("TOOLONGCODES"))
	assert.False(t, IsValidLeaveTypeCode(""))
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "is not a valid email"},
	}

	m := errs.ToMap()
	assert.Equal(t, "is required", m["name"])
	assert.Equal(t, "is not a valid email", m["email"])
	assert.NotEmpty(t, errs.Error())
}
