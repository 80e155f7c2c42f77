// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"

	"weighttrend/internal/domain"
)

// DB implements in-memory sample and settings storage.
type DB struct {
	mu       sync.Mutex
	samples  domain.Series
	settings *domain.Settings
}

// New creates a new in-memory database, optionally seeded with samples.
func New(seed ...domain.Sample) *DB {
	db := &DB{}
	db.samples = append(db.samples, seed...)
	return db
}

// Ensure interfaces are met.
var _ domain.SampleRepository = (*DB)(nil)
var _ domain.SettingsRepository = (*DB)(nil)

// --- SampleRepository ---

// LoadSamples returns a copy of the stored samples.
func (db *DB) LoadSamples(ctx context.Context) ([]domain.Sample, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Sample, len(db.samples))
	copy(out, db.samples)
	return out, nil
}

// SaveSamples replaces the stored samples with a copy of series.
func (db *DB) SaveSamples(ctx context.Context, series domain.Series) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.samples = make(domain.Series, len(series))
	copy(db.samples, series)
	return nil
}

// --- SettingsRepository ---

// LoadSettings returns the saved settings or the defaults.
func (db *DB) LoadSettings(ctx context.Context) (domain.Settings, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return *db.settings, nil
}

// SaveSettings stores s.
func (db *DB) SaveSettings(ctx context.Context, s domain.Settings) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.settings = &s
	return nil
}
