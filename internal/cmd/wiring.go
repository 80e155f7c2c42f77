package cmd

import (
	"fmt"

	"weighttrend/internal/adapter/csvfile"
	"weighttrend/internal/adapter/memory"
	"weighttrend/internal/adapter/postgres"
	"weighttrend/internal/adapter/settingsfile"
	"weighttrend/internal/app"
	"weighttrend/internal/config"
	"weighttrend/internal/domain"

	log "github.com/sirupsen/logrus"
)

// services bundles the application services built from one storage backend.
type services struct {
	weight   *app.WeightService
	settings *app.SettingsService
	metrics  *app.MetricsService
	close    func() error
}

func openServices(c *config.Config) (*services, error) {
	var (
		samples  domain.SampleRepository
		settings domain.SettingsRepository
		closeFn  = func() error { return nil }
	)

	switch c.Storage {
	case config.StorageCSV:
		samples = csvfile.New(c.DataFile)
		settings = settingsfile.New(c.SettingsFile)
		log.Debugf("using samples file [%s], settings file [%s]", c.DataFile, c.SettingsFile)
	case config.StoragePostgres:
		db, err := postgres.Open(c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		samples, settings, closeFn = db, db, db.Close
	case config.StorageMemory:
		db := memory.New()
		samples, settings = db, db
		log.Warnln("using in-memory storage, nothing will be persisted")
	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}

	ws := app.NewWeightService(samples)
	return &services{
		weight:   ws,
		settings: app.NewSettingsService(settings),
		metrics:  app.NewMetricsService(ws, settings),
		close:    closeFn,
	}, nil
}
