// Package app holds the application services that sit between the
// adapters and the analytics engine.
package app

import (
	"context"
	"fmt"
	"sync"

	"weighttrend/internal/analytics"
	"weighttrend/internal/domain"

	log "github.com/sirupsen/logrus"
)

// WeightService owns the measurement series: it loads it from the
// repository, applies upserts through the store and persists the result.
type WeightService struct {
	// mu serialises load-modify-save cycles against the repository.
	mu   sync.Mutex
	repo domain.SampleRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.SampleRepository) *WeightService {
	return &WeightService{repo: repo}
}

// Snapshot returns the current series, sorted and deduplicated.
func (s *WeightService) Snapshot(ctx context.Context) (domain.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return store.Snapshot(), nil
}

// RecordWeight validates and stores a sample for day, replacing any sample
// already stored for that date. Invalid input is rejected before the
// repository is touched.
func (s *WeightService) RecordWeight(ctx context.Context, day domain.Date, weight float64) (domain.Sample, error) {
	if err := domain.ValidateSample(day, weight); err != nil {
		return domain.Sample{}, err
	}
	sample := domain.Sample{Day: day, Weight: weight}

	s.mu.Lock()
	defer s.mu.Unlock()

	if up, ok := s.repo.(domain.SampleUpserter); ok {
		if err := up.UpsertSample(ctx, sample); err != nil {
			return domain.Sample{}, fmt.Errorf("upsert sample: %w", err)
		}
		log.Debugf("sample upserted: [%s] %.2f", day, weight)
		return sample, nil
	}

	store, err := s.load(ctx)
	if err != nil {
		return domain.Sample{}, err
	}
	replaced := store.Len()
	if err := store.Upsert(day, weight); err != nil {
		return domain.Sample{}, err
	}
	if err := s.repo.SaveSamples(ctx, store.Snapshot()); err != nil {
		return domain.Sample{}, fmt.Errorf("save samples: %w", err)
	}
	if replaced == store.Len() {
		log.Debugf("sample replaced: [%s] %.2f", day, weight)
	} else {
		log.Debugf("sample added: [%s] %.2f, total %d", day, weight, store.Len())
	}
	return sample, nil
}

// ListRecent returns up to limit samples, most recent first.
func (s *WeightService) ListRecent(ctx context.Context, limit int) (domain.Series, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	tail := snap.Tail(limit)
	out := make(domain.Series, len(tail))
	for i := range tail {
		out[i] = tail[len(tail)-1-i]
	}
	return out, nil
}

func (s *WeightService) load(ctx context.Context) (*analytics.Store, error) {
	raw, err := s.repo.LoadSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}
	store, err := analytics.NewStore(raw...)
	if err != nil {
		// stored data is not caller input; do not surface it as ErrInvalidInput
		return nil, fmt.Errorf("stored samples: %v", err)
	}
	return store, nil
}
