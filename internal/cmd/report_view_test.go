package cmd

import (
	"context"
	"testing"

	"weighttrend/internal/adapter/memory"
	"weighttrend/internal/app"
	"weighttrend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overviewOf(t *testing.T, today string, samples ...domain.Sample) *app.Overview {
	t.Helper()
	db := memory.New(samples...)
	ms := app.NewMetricsService(app.NewWeightService(db), db).WithRandom(func(int) int { return 0 })

	d, err := domain.ParseDate(today)
	require.NoError(t, err)
	ov, err := ms.Overview(context.Background(), d)
	require.NoError(t, err)
	return ov
}

func sample(t *testing.T, day string, w float64) domain.Sample {
	t.Helper()
	d, err := domain.ParseDate(day)
	require.NoError(t, err)
	return domain.Sample{Day: d, Weight: w}
}

func TestRenderReport_Empty(t *testing.T) {
	out := renderReport(overviewOf(t, "2024-03-13"), domain.UnitKg)

	assert.Contains(t, out, "Weight report, 2024-03-13")
	assert.Contains(t, out, "No measurements yet.")
}

func TestRenderReport(t *testing.T) {
	ov := overviewOf(t, "2024-03-13",
		sample(t, "2024-02-26", 90),
		sample(t, "2024-03-04", 89),
		sample(t, "2024-03-11", 88),
	)
	out := renderReport(ov, domain.UnitKg)

	assert.Contains(t, out, "Current  88.0 kg")
	assert.Contains(t, out, "Change   -2.0 kg")
	assert.Contains(t, out, "Per week  -1.0 kg")
	assert.Contains(t, out, "2024-03-17  88.0 kg  -1.0 kg")
	assert.Contains(t, out, "2024-03-31  88.0 kg  -2.0 kg")
	assert.NotContains(t, out, "insufficient data")
	assert.Contains(t, out, "2024-03-11  88.0 kg")
}

func TestRenderReport_Pounds(t *testing.T) {
	ov := overviewOf(t, "2024-03-13", sample(t, "2024-03-11", 100))
	out := renderReport(ov, domain.UnitLb)

	assert.Contains(t, out, "220.5 lb")
	assert.Contains(t, out, "not enough data")
	assert.Contains(t, out, "insufficient data")
}
