package leave

import (
	"testing"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProratedDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		policy      leave.ProrationPolicy
		joinDate    time.Time
		defaultDays int
		targetYear  int
		now         time.Time
		want        int
	}{
		{
			// Probation ends 2024-04-15; April onward = 9 months;
			// round(12 * 9/12) = 9.
			name:        "probation ends within target year",
			policy:      leave.ProrationProbation,
			joinDate:    date(2024, time.January, 15),
			defaultDays: 12,
			targetYear:  2024,
			now:         date(2024, time.June, 1),
			want:        9,
		},
		{
			// Probation ends 2025-03-01, beyond 2024's Dec 31.
			name:        "probation spans past target year",
			policy:      leave.ProrationProbation,
			joinDate:    date(2024, time.December, 1),
			defaultDays: 12,
			targetYear:  2024,
			now:         date(2024, time.December, 15),
			want:        0,
		},
		{
			// Probation end 2024-08-10 is still ahead of now.
			name:        "still on probation",
			policy:      leave.ProrationProbation,
			joinDate:    date(2024, time.May, 10),
			defaultDays: 12,
			targetYear:  2024,
			now:         date(2024, time.June, 1),
			want:        0,
		},
		{
			name:        "probation completed in prior year",
			policy:      leave.ProrationProbation,
			joinDate:    date(2022, time.March, 1),
			defaultDays: 12,
			targetYear:  2024,
			now:         date(2024, time.June, 1),
			want:        12,
		},
		{
			name:        "no join date fails open",
			policy:      leave.ProrationProbation,
			joinDate:    time.Time{},
			defaultDays: 12,
			targetYear:  2024,
			now:         date(2024, time.June, 1),
			want:        12,
		},
		{
			name:        "non-prorated policy ignores join date",
			policy:      leave.ProrationNone,
			joinDate:    date(2024, time.December, 1),
			defaultDays: 5,
			targetYear:  2024,
			now:         date(2024, time.December, 15),
			want:        5,
		},
		{
			// Probation ends 2024-10-05; Oct onward = 3 months;
			// round(12 * 3/12) = 3.
			name:        "late-year probation end",
			policy:      leave.ProrationProbation,
			joinDate:    date(2024, time.July, 5),
			defaultDays: 12,
			targetYear:  2024,
			now:         date(2024, time.November, 1),
			want:        3,
		},
		{
			// 10 days over 9 remaining months = 7.5, rounds half-up to 8.
			name:        "rounds half up",
			policy:      leave.ProrationProbation,
			joinDate:    date(2024, time.January, 15),
			defaultDays: 10,
			targetYear:  2024,
			now:         date(2024, time.June, 1),
			want:        8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProratedDays(tt.policy, tt.joinDate, tt.defaultDays, tt.targetYear, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProratedDays_Idempotent(t *testing.T) {
	t.Parallel()

	join := date(2024, time.January, 15)
	now := date(2024, time.June, 1)

	first := ProratedDays(leave.ProrationProbation, join, 12, 2024, now)
	second := ProratedDays(leave.ProrationProbation, join, 12, 2024, now)
	assert.Equal(t, first, second)
}
