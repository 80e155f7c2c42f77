package app

import (
	"context"
	"fmt"

	"weighttrend/internal/domain"

	log "github.com/sirupsen/logrus"
)

// SettingsService loads and saves the user settings.
type SettingsService struct {
	repo domain.SettingsRepository
}

// NewSettingsService creates a SettingsService backed by the given repository.
func NewSettingsService(repo domain.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the saved settings, or the defaults when none were saved.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.repo.LoadSettings(ctx)
}

// Update validates and persists settings.
func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	log.Debugf("settings saved: %+v", settings)
	return settings, nil
}
