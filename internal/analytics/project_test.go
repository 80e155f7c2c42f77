package analytics_test

import (
	"testing"

	"weighttrend/internal/analytics"
	"weighttrend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linear builds weight(t) = rate*t + start for t = 0..n-1 days from first.
func linear(first domain.Date, n int, rate, start float64) domain.Series {
	out := make(domain.Series, n)
	for i := range out {
		out[i] = domain.Sample{Day: first.AddDays(i), Weight: rate*float64(i) + start}
	}
	return out
}

func TestProject_RecoversLinearRate(t *testing.T) {
	first := day("2024-01-01")
	s := linear(first, 10, -0.1, 90)

	res := analytics.Project(s, 85, day("2024-01-10"))
	require.True(t, res.Determined)
	assert.InDelta(t, -0.1, res.DailyRate, 1e-9)
	assert.InDelta(t, -0.7, res.WeeklyRate, 1e-9)
	assert.Equal(t, 10, res.Samples)
	require.NotNil(t, res.ETA)
	// 90 - 0.1*t = 85 at t = 50
	assert.Equal(t, "2024-02-20", res.ETA.String())
}

func TestProject_IrregularSampling(t *testing.T) {
	s := series(t,
		"2024-01-01", 90.0,
		"2024-01-04", 89.7,
		"2024-01-20", 88.1,
		"2024-02-09", 86.1,
	)

	res := analytics.Project(s, 80, day("2024-02-09"))
	require.True(t, res.Determined)
	assert.InDelta(t, -0.1, res.DailyRate, 1e-9)
	require.NotNil(t, res.ETA)
	assert.Equal(t, "2024-04-10", res.ETA.String())
}

func TestProject_InsufficientDataIsUndetermined(t *testing.T) {
	for _, s := range []domain.Series{nil, series(t, "2024-01-01", 90)} {
		res := analytics.Project(s, 80, day("2024-01-01"))
		assert.False(t, res.Determined)
		assert.Zero(t, res.DailyRate)
		assert.Zero(t, res.WeeklyRate)
		assert.Nil(t, res.ETA)
		assert.Equal(t, len(s), res.Samples)
	}
}

func TestProject_FlatSeriesHasNoETA(t *testing.T) {
	s := series(t, "2024-01-01", 80.1, "2024-01-02", 80.1, "2024-01-09", 80.1)

	res := analytics.Project(s, 75, day("2024-01-09"))
	require.True(t, res.Determined)
	assert.Equal(t, 0.0, res.DailyRate)
	assert.Nil(t, res.ETA)
}

func TestProject_GoalOnWrongSideOfTrend(t *testing.T) {
	rising := linear(day("2024-01-01"), 5, 0.2, 80)

	res := analytics.Project(rising, 75, day("2024-01-05"))
	require.True(t, res.Determined)
	assert.Greater(t, res.DailyRate, 0.0)
	assert.Nil(t, res.ETA)

	falling := linear(day("2024-01-01"), 5, -0.2, 80)
	res = analytics.Project(falling, 85, day("2024-01-05"))
	assert.Nil(t, res.ETA)
}

func TestProject_GainingTowardHigherGoal(t *testing.T) {
	rising := linear(day("2024-01-01"), 5, 0.5, 60)

	res := analytics.Project(rising, 65, day("2024-01-05"))
	require.NotNil(t, res.ETA)
	// 60 + 0.5*t = 65 at t = 10
	assert.Equal(t, "2024-01-11", res.ETA.String())
}

func TestProject_SolvedDateInThePast(t *testing.T) {
	s := linear(day("2024-01-01"), 10, -0.1, 90)

	// The line crosses 89.05 around 2024-01-10, long before today.
	res := analytics.Project(s, 89.05, day("2024-06-01"))
	require.True(t, res.Determined)
	assert.Nil(t, res.ETA)
}

func TestProject_GoalEqualToLastWeight(t *testing.T) {
	s := linear(day("2024-01-01"), 3, -1, 90)
	res := analytics.Project(s, 88, day("2024-01-03"))
	assert.Nil(t, res.ETA)
}

func TestProject_IsIdempotent(t *testing.T) {
	s := series(t, "2024-01-01", 90, "2024-01-15", 89, "2024-02-01", 87.5)
	a := analytics.Project(s, 80, day("2024-02-01"))
	b := analytics.Project(s, 80, day("2024-02-01"))
	assert.Equal(t, a, b)
}

func TestProject_HalfDaySolutionRoundsToEven(t *testing.T) {
	s := series(t,
		"2024-01-01", 90.0,
		"2024-01-02", 89.0,
	)

	// 87.5 is reached at ordinal 738888.5, between 2024-01-03 and 2024-01-04.
	res := analytics.Project(s, 87.5, day("2024-01-02"))
	require.NotNil(t, res.ETA)
	assert.Equal(t, "2024-01-03", res.ETA.String())
}
