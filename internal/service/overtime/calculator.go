package overtime

import "github.com/shopspring/decimal"

// MonthlyWorkingHours is the statutory average number of working hours per
// month used as the divisor when deriving an hourly rate from a monthly
// salary (Indonesian labor regulation).
const MonthlyWorkingHours = 173

var monthlyWorkingHours = decimal.NewFromInt(MonthlyWorkingHours)

// HourlyRate derives the overtime hourly rate from a monthly basic salary:
// floor(basicSalary / 173).
func HourlyRate(basicSalary decimal.Decimal) decimal.Decimal {
	return basicSalary.Div(monthlyWorkingHours).Floor()
}

// TotalAmount computes the payable overtime amount:
// HourlyRate(basicSalary) * hours * multiplier.
func TotalAmount(basicSalary, hours, multiplier decimal.Decimal) decimal.Decimal {
	return HourlyRate(basicSalary).Mul(hours).Mul(multiplier)
}
