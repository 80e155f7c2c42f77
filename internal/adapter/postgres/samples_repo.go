package postgres

import (
	"context"
	"fmt"
	"time"

	"weighttrend/internal/domain"
)

var (
	_ domain.SampleRepository = (*DB)(nil)
	_ domain.SampleUpserter   = (*DB)(nil)
)

// LoadSamples returns every stored sample in date order.
func (d *DB) LoadSamples(ctx context.Context) ([]domain.Sample, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT day, weight FROM samples ORDER BY day;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Sample, 0)
	for rows.Next() {
		var (
			day    time.Time
			weight float64
		)
		if err := rows.Scan(&day, &weight); err != nil {
			return nil, err
		}
		out = append(out, domain.Sample{Day: domain.DateOf(day), Weight: weight})
	}
	return out, rows.Err()
}

// SaveSamples replaces the table contents with series in one transaction.
func (d *DB) SaveSamples(ctx context.Context, series domain.Series) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM samples;"); err != nil {
		return fmt.Errorf("clear samples: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO samples(day, weight) VALUES($1, $2);")
	if err != nil {
		return err
	}
	defer stmt.Close() //nolint:errcheck

	for _, s := range series {
		if _, err := stmt.ExecContext(ctx, s.Day.String(), s.Weight); err != nil {
			return fmt.Errorf("insert sample %s: %w", s.Day, err)
		}
	}
	return tx.Commit()
}

// UpsertSample inserts s or replaces the weight stored for its date.
func (d *DB) UpsertSample(ctx context.Context, s domain.Sample) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO samples(day, weight) VALUES($1, $2) ON CONFLICT (day) DO UPDATE SET weight = EXCLUDED.weight;",
		s.Day.String(), s.Weight,
	)
	return err
}
