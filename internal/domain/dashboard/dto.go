package dashboard

import "github.com/shopspring/decimal"

// StatusBreakdown - count and share of records in one status.
type StatusBreakdown struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type PayrollSummary struct {
	TotalRecords    int                        `json:"total_records"`
	ByStatus        map[string]StatusBreakdown `json:"by_status"`
	TotalGross      decimal.Decimal            `json:"total_gross"`
	TotalNet        decimal.Decimal            `json:"total_net"`
	TotalDeductions decimal.Decimal            `json:"total_deductions"`
	TotalOvertime   decimal.Decimal            `json:"total_overtime"`
}

type LeaveSummary struct {
	TotalRequests int                        `json:"total_requests"`
	ByStatus      map[string]StatusBreakdown `json:"by_status"`
	TotalDays     int                        `json:"total_days"`
	ApprovedDays  int                        `json:"approved_days"`
}

type OvertimeSummary struct {
	TotalRecords int                        `json:"total_records"`
	ByStatus     map[string]StatusBreakdown `json:"by_status"`
	TotalHours   decimal.Decimal            `json:"total_hours"`
	TotalAmount  decimal.Decimal            `json:"total_amount"`
}

type AdjustmentSummary struct {
	TotalRecords    int                        `json:"total_records"`
	ByStatus        map[string]StatusBreakdown `json:"by_status"`
	TotalAllowances decimal.Decimal            `json:"total_allowances"`
	TotalDeductions decimal.Decimal            `json:"total_deductions"`
}

// Overview is the company dashboard payload.
type Overview struct {
	ActiveEmployees int               `json:"active_employees"`
	Payroll         PayrollSummary    `json:"payroll"`
	Leave           LeaveSummary      `json:"leave"`
	Overtime        OvertimeSummary   `json:"overtime"`
	Adjustments     AdjustmentSummary `json:"adjustments"`
}
