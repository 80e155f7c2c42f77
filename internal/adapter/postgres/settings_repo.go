package postgres

import (
	"context"
	"fmt"
	"strconv"

	"weighttrend/internal/domain"
)

var _ domain.SettingsRepository = (*DB)(nil)

const (
	keyHeightCm   = "height_cm"
	keyGoalWeight = "goal_weight"
	keyWindowDays = "show_moving_avg_days"
)

// LoadSettings reads the key/value rows over the defaults.
func (d *DB) LoadSettings(ctx context.Context) (domain.Settings, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT key, value FROM settings;")
	if err != nil {
		return domain.Settings{}, err
	}
	defer rows.Close() //nolint:errcheck

	s := domain.DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return domain.Settings{}, err
		}
		if err := applySetting(&s, key, value); err != nil {
			return domain.Settings{}, err
		}
	}
	return s, rows.Err()
}

// SaveSettings upserts every key in one transaction.
func (d *DB) SaveSettings(ctx context.Context, s domain.Settings) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	values := map[string]string{
		keyHeightCm:   strconv.FormatFloat(s.HeightCm, 'f', -1, 64),
		keyGoalWeight: strconv.FormatFloat(s.GoalWeight, 'f', -1, 64),
		keyWindowDays: strconv.Itoa(s.SmoothingWindowDays),
	}
	for key, value := range values {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO settings(key, value) VALUES($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;",
			key, value,
		); err != nil {
			return fmt.Errorf("save setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func applySetting(s *domain.Settings, key, value string) error {
	var err error
	switch key {
	case keyHeightCm:
		s.HeightCm, err = strconv.ParseFloat(value, 64)
	case keyGoalWeight:
		s.GoalWeight, err = strconv.ParseFloat(value, 64)
	case keyWindowDays:
		s.SmoothingWindowDays, err = strconv.Atoi(value)
	}
	if err != nil {
		return fmt.Errorf("setting %s=%q: %w", key, value, err)
	}
	return nil
}
