package overtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHourlyRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		basicSalary int64
		want        int64
	}{
		{"floors fractional result", 1731, 10},
		{"round salary", 1730000, 10000},
		{"below divisor", 100, 0},
		{"zero salary", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourlyRate(decimal.NewFromInt(tt.basicSalary))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"HourlyRate(%d) = %s, want %d", tt.basicSalary, got, tt.want)
		})
	}
}

func TestTotalAmount(t *testing.T) {
	t.Parallel()

	// floor(1730000/173) * 2 * 1.5 = 10000 * 3 = 30000
	got := TotalAmount(
		decimal.NewFromInt(1730000),
		decimal.NewFromInt(2),
		decimal.NewFromFloat(1.5),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(30000)), "got %s", got)
}

func TestTotalAmount_FractionalHours(t *testing.T) {
	t.Parallel()

	// 10000 * 1.5h * 2.0 = 30000
	got := TotalAmount(
		decimal.NewFromInt(1730000),
		decimal.NewFromFloat(1.5),
		decimal.NewFromFloat(2.0),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(30000)), "got %s", got)
}

func TestTotalAmount_Idempotent(t *testing.T) {
	t.Parallel()

	salary := decimal.NewFromInt(5190000)
	hours := decimal.NewFromFloat(3.5)
	mult := decimal.NewFromFloat(3.0)

	first := TotalAmount(salary, hours, mult)
	second := TotalAmount(salary, hours, mult)
	assert.True(t, first.Equal(second))
}
