package payroll

import (
	"fmt"
	"testing"
	"time"

	domain "github.com/gajikita/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod_DefaultCutoff(t *testing.T) {
	t.Parallel()

	p, err := ResolvePeriod("2024-03", 20)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.February, 21, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), p.End)
}

func TestResolvePeriod_JanuaryCrossesYear(t *testing.T) {
	t.Parallel()

	p, err := ResolvePeriod("2024-01", 20)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.December, 21, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), p.End)
}

func TestResolvePeriod_BoundsForAllSafeCutoffs(t *testing.T) {
	t.Parallel()

	// For cutoffs that exist in every month, end lands exactly on the
	// cutoff and start on cutoff+1 of the month before.
	periods := []string{"2023-01", "2023-06", "2024-02", "2024-12", "2025-07"}
	for cutoff := 1; cutoff <= 28; cutoff++ {
		for _, key := range periods {
			t.Run(fmt.Sprintf("cutoff_%d_%s", cutoff, key), func(t *testing.T) {
				p, err := ResolvePeriod(key, cutoff)
				require.NoError(t, err)

				assert.Equal(t, cutoff, p.End.Day())
				assert.Equal(t, cutoff+1, p.Start.Day())

				// Start's month immediately precedes end's month.
				assert.Equal(t, p.End.AddDate(0, -1, 0).Month(), p.Start.Month())
				assert.True(t, p.Start.Before(p.End))
			})
		}
	}
}

func TestResolvePeriod_CutoffClampedInFebruary(t *testing.T) {
	t.Parallel()

	// 2023 is not a leap year: cutoff 30 clamps to Feb 28.
	p, err := ResolvePeriod("2023-02", 30)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC), p.Start)

	// The next period starts the day after the clamped end.
	next, err := ResolvePeriod("2023-03", 30)
	require.NoError(t, err)
	assert.Equal(t, p.End.AddDate(0, 0, 1), next.Start)
	assert.Equal(t, time.Date(2023, time.March, 30, 0, 0, 0, 0, time.UTC), next.End)
}

func TestResolvePeriod_PeriodsTileWithoutGapOrOverlap(t *testing.T) {
	t.Parallel()

	for _, cutoff := range []int{15, 28, 29, 30, 31} {
		prev, err := ResolvePeriod("2024-01", cutoff)
		require.NoError(t, err)

		for month := 2; month <= 12; month++ {
			key := fmt.Sprintf("2024-%02d", month)
			p, err := ResolvePeriod(key, cutoff)
			require.NoError(t, err)

			assert.Equal(t, prev.End.AddDate(0, 0, 1), p.Start,
				"cutoff %d, period %s must start the day after the previous period ends", cutoff, key)
			prev = p
		}
	}
}

func TestResolvePeriod_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ResolvePeriod("2024-13", 20)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriodKey)

	_, err = ResolvePeriod("not-a-period", 20)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriodKey)

	_, err = ResolvePeriod("2024-03", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidCutoffDay)

	_, err = ResolvePeriod("2024-03", 32)
	assert.ErrorIs(t, err, domain.ErrInvalidCutoffDay)
}

func TestResolvePeriod_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := ResolvePeriod("2024-06", 20)
	require.NoError(t, err)
	second, err := ResolvePeriod("2024-06", 20)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
