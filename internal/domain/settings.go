package domain

import (
	"context"
	"fmt"
)

// Settings holds the user-editable parameters of the analytics engine.
type Settings struct {
	HeightCm            float64 `json:"heightCm"`
	GoalWeight          float64 `json:"goalWeight"`
	SmoothingWindowDays int     `json:"smoothingWindowDays"`
}

// DefaultSettings is used whenever no settings have been saved yet.
func DefaultSettings() Settings {
	return Settings{
		HeightCm:            183.0,
		GoalWeight:          80.0,
		SmoothingWindowDays: 7,
	}
}

// Validate rejects settings the engine cannot use.
func (s Settings) Validate() error {
	if !(s.HeightCm > 0) {
		return fmt.Errorf("%w: height_cm must be > 0", ErrInvalidInput)
	}
	if !(s.GoalWeight > 0) {
		return fmt.Errorf("%w: goal_weight must be > 0", ErrInvalidInput)
	}
	if s.SmoothingWindowDays < 1 {
		return fmt.Errorf("%w: show_moving_avg_days must be >= 1", ErrInvalidInput)
	}
	return nil
}

// SettingsRepository is the port for settings persistence. A repository
// with nothing stored returns DefaultSettings and no error.
type SettingsRepository interface {
	LoadSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}
