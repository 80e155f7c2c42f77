// Package analytics is the time-series engine: the measurement store and
// the pure functions that resample, smooth and project a weight series.
package analytics

import (
	"sort"

	"weighttrend/internal/domain"
)

// Store holds the canonical series: one sample per date, ascending.
// A Store is not safe for concurrent use.
type Store struct {
	samples domain.Series
}

// NewStore builds a store by upserting samples in order, so a later sample
// for an already seen date replaces the earlier one.
func NewStore(samples ...domain.Sample) (*Store, error) {
	s := &Store{samples: make(domain.Series, 0, len(samples))}
	for _, smp := range samples {
		if err := s.Upsert(smp.Day, smp.Weight); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Upsert inserts a sample or replaces the one stored for the same date.
// Invalid input is rejected and leaves the store unchanged.
func (s *Store) Upsert(day domain.Date, weight float64) error {
	if err := domain.ValidateSample(day, weight); err != nil {
		return err
	}

	i := sort.Search(len(s.samples), func(i int) bool {
		return !s.samples[i].Day.Before(day)
	})
	if i < len(s.samples) && s.samples[i].Day.Equal(day) {
		s.samples[i].Weight = weight
		return nil
	}

	s.samples = append(s.samples, domain.Sample{})
	copy(s.samples[i+1:], s.samples[i:])
	s.samples[i] = domain.Sample{Day: day, Weight: weight}
	return nil
}

// Snapshot returns a copy of the series, sorted strictly ascending by date.
func (s *Store) Snapshot() domain.Series {
	out := make(domain.Series, len(s.samples))
	copy(out, s.samples)
	return out
}

// Len returns the number of stored samples.
func (s *Store) Len() int { return len(s.samples) }
