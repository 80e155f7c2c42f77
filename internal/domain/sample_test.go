package domain_test

import (
	"math"
	"testing"
	"time"

	"weighttrend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSample(t *testing.T) {
	day := domain.NewDate(2024, time.January, 1)
	tests := []struct {
		name    string
		day     domain.Date
		weight  float64
		wantErr bool
	}{
		{"valid", day, 82.5, false},
		{"zero date", domain.Date{}, 82.5, true},
		{"zero weight", day, 0, true},
		{"negative weight", day, -1, true},
		{"nan", day, math.NaN(), true},
		{"inf", day, math.Inf(1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateSample(tc.day, tc.weight)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSeriesAccessors(t *testing.T) {
	var empty domain.Series
	_, ok := empty.Last()
	assert.False(t, ok)
	_, ok = empty.First()
	assert.False(t, ok)

	s := domain.Series{
		{Day: domain.NewDate(2024, 1, 1), Weight: 90},
		{Day: domain.NewDate(2024, 1, 2), Weight: 89},
		{Day: domain.NewDate(2024, 1, 3), Weight: 88},
	}
	first, _ := s.First()
	last, _ := s.Last()
	assert.Equal(t, 90.0, first.Weight)
	assert.Equal(t, 88.0, last.Weight)
	assert.Equal(t, []float64{90, 89, 88}, s.Weights())
	assert.Len(t, s.Tail(2), 2)
	assert.Len(t, s.Tail(10), 3)
	assert.Len(t, s.Tail(0), 3)
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, domain.DefaultSettings().Validate())

	s := domain.DefaultSettings()
	s.HeightCm = 0
	require.ErrorIs(t, s.Validate(), domain.ErrInvalidInput)

	s = domain.DefaultSettings()
	s.GoalWeight = math.NaN()
	require.ErrorIs(t, s.Validate(), domain.ErrInvalidInput)

	s = domain.DefaultSettings()
	s.SmoothingWindowDays = 0
	require.ErrorIs(t, s.Validate(), domain.ErrInvalidInput)
}
