// Package domain contains the core entities and the persistence ports.
package domain

import (
	"context"
	"fmt"
	"math"
)

// Sample is a single dated body-weight measurement in kilograms.
type Sample struct {
	Day    Date    `json:"date"`
	Weight float64 `json:"weight"`
}

// ValidateSample checks the invariants every stored sample must satisfy.
func ValidateSample(day Date, weight float64) error {
	if day.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("%w: weight must be a finite number > 0, got %v", ErrInvalidInput, weight)
	}
	return nil
}

// Series is a sequence of samples ordered strictly ascending by date.
type Series []Sample

// Weights returns the weight column of s.
func (s Series) Weights() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.Weight
	}
	return out
}

// First returns the oldest sample.
func (s Series) First() (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	return s[0], true
}

// Last returns the most recent sample.
func (s Series) Last() (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	return s[len(s)-1], true
}

// Tail returns the last n samples (all of them if n <= 0 or n >= len).
func (s Series) Tail(n int) Series {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// SampleRepository is the port for sample persistence. LoadSamples may
// return samples in storage order; normalisation belongs to the store.
type SampleRepository interface {
	LoadSamples(ctx context.Context) ([]Sample, error)
	SaveSamples(ctx context.Context, series Series) error
}

// SampleUpserter is implemented by repositories that can write a single
// sample without rewriting the whole series.
type SampleUpserter interface {
	UpsertSample(ctx context.Context, sample Sample) error
}
