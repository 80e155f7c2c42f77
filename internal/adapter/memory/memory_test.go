package memory

import (
	"context"
	"testing"

	"weighttrend/internal/app"
	"weighttrend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	samples, err := db.LoadSamples(ctx)
	require.NoError(t, err)
	assert.Empty(t, samples)

	d, _ := domain.ParseDate("2024-01-01")
	series := domain.Series{{Day: d, Weight: 70}}
	require.NoError(t, db.SaveSamples(ctx, series))

	// caller mutation does not leak into the store
	series[0].Weight = 1
	samples, err = db.LoadSamples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 70.0, samples[0].Weight)

	samples[0].Weight = 2
	again, _ := db.LoadSamples(ctx)
	assert.Equal(t, 70.0, again[0].Weight)
}

func TestSettingsRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	s, err := db.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)

	want := domain.Settings{HeightCm: 165, GoalWeight: 60, SmoothingWindowDays: 3}
	require.NoError(t, db.SaveSettings(ctx, want))
	s, err = db.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, s)
}

func TestWeightServiceOverMemory(t *testing.T) {
	db := New()
	svc := app.NewWeightService(db)
	ctx := context.Background()

	d1, _ := domain.ParseDate("2024-01-02")
	d0, _ := domain.ParseDate("2024-01-01")
	for _, step := range []struct {
		day    domain.Date
		weight float64
	}{{d1, 80}, {d0, 81}, {d1, 79.5}} {
		_, err := svc.RecordWeight(ctx, step.day, step.weight)
		require.NoError(t, err)
	}

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Series{{Day: d0, Weight: 81}, {Day: d1, Weight: 79.5}}, snap)
}
