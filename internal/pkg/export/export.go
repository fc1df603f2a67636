package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/gajikita/payroll-backend-go/internal/domain/overtime"
	"github.com/gajikita/payroll-backend-go/internal/domain/payroll"
)

// Format enum for payroll period exports.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func (f Format) IsValid() bool {
	return f == FormatCSV || f == FormatJSON
}

// ContentType returns the response content type for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

var csvHeader = []string{
	"employee_code",
	"employee_name",
	"department",
	"period",
	"period_start",
	"period_end",
	"basic_salary",
	"total_allowances",
	"overtime_amount",
	"gross_salary",
	"total_deductions",
	"net_salary",
	"status",
}

// WritePayrolls renders the records to w in the requested format. CSV rows
// follow csvHeader; JSON is the record array as-is.
func WritePayrolls(w io.Writer, format Format, records []payroll.PayrollResponse) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	return writeCSV(w, records)
}

func writeCSV(w io.Writer, records []payroll.PayrollResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			deref(r.EmployeeCode),
			deref(r.EmployeeName),
			deref(r.Department),
			r.PeriodKey,
			r.PeriodStart,
			r.PeriodEnd,
			r.BasicSalary.String(),
			r.TotalAllowances.String(),
			r.OvertimeAmount.String(),
			r.GrossSalary.String(),
			r.TotalDeductions.String(),
			r.NetSalary.String(),
			r.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

var overtimeCSVHeader = []string{
	"employee_code",
	"employee_name",
	"date",
	"hours",
	"type",
	"multiplier",
	"rate_per_hour",
	"total_amount",
	"status",
}

// WriteOvertimes renders overtime records to w in the requested format.
func WriteOvertimes(w io.Writer, format Format, records []overtime.OvertimeResponse) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(overtimeCSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			deref(r.EmployeeCode),
			deref(r.EmployeeName),
			r.Date,
			r.Hours.String(),
			r.Type,
			r.Multiplier.String(),
			r.RatePerHour.String(),
			r.TotalAmount.String(),
			r.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var leaveRequestCSVHeader = []string{
	"employee_name",
	"leave_type",
	"start_date",
	"end_date",
	"days",
	"status",
}

// WriteLeaveRequests renders leave request records to w in the requested
// format.
func WriteLeaveRequests(w io.Writer, format Format, records []leave.LeaveRequestResponse) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(leaveRequestCSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			deref(r.EmployeeName),
			deref(r.LeaveTypeCode),
			r.StartDate,
			r.EndDate,
			strconv.Itoa(r.Days),
			r.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
