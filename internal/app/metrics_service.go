package app

import (
	"context"
	"math/rand/v2"

	"weighttrend/internal/analytics"
	"weighttrend/internal/domain"
)

const (
	// WeeklyRows and MonthlyRows bound the comparison tables.
	WeeklyRows  = 8
	MonthlyRows = 12
	// RecentRows is the number of samples listed in the overview.
	RecentRows = 10
)

// SeriesSource supplies the current measurement series.
type SeriesSource interface {
	Snapshot(ctx context.Context) (domain.Series, error)
}

// MetricsService composes the analytics engine outputs into read-only
// views for the presentation layer. Every call recomputes from a fresh
// snapshot.
type MetricsService struct {
	series   SeriesSource
	settings domain.SettingsRepository
	intn     func(n int) int
}

// NewMetricsService creates a MetricsService over the given series source
// and settings repository.
func NewMetricsService(series SeriesSource, settings domain.SettingsRepository) *MetricsService {
	return &MetricsService{series: series, settings: settings, intn: rand.IntN}
}

// WithRandom replaces the random source used to pick quotes.
func (s *MetricsService) WithRandom(intn func(n int) int) *MetricsService {
	s.intn = intn
	return s
}

// Overview is the dashboard view: current status, comparisons, trend and
// reminder state.
type Overview struct {
	Today            domain.Date           `json:"today"`
	Empty            bool                  `json:"empty"`
	Count            int                   `json:"count"`
	Initial          *domain.Sample        `json:"initial"`
	Current          *domain.Sample        `json:"current"`
	NetDelta         *float64              `json:"netDelta"`
	BMI              *float64              `json:"bmi"`
	BMICategory      domain.Category       `json:"bmiCategory"`
	Weekly           analytics.Comparison  `json:"weekly"`
	Monthly          analytics.Comparison  `json:"monthly"`
	Smoothed         analytics.Smoothed    `json:"smoothed"`
	Trend            analytics.TrendResult `json:"trend"`
	LastEntryAgeDays *int                  `json:"lastEntryAgeDays"`
	Reminder         *Reminder             `json:"reminder"`
	Quote            string                `json:"quote"`
	Recent           domain.Series         `json:"recent"`
	Settings         domain.Settings       `json:"settings"`
}

// Overview builds the dashboard view as of today.
func (s *MetricsService) Overview(ctx context.Context, today domain.Date) (*Overview, error) {
	series, settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		Today:       today,
		Empty:       len(series) == 0,
		Count:       len(series),
		BMICategory: domain.CategoryUnknown,
		Weekly:      analytics.Compare(series, analytics.Week, WeeklyRows),
		Monthly:     analytics.Compare(series, analytics.Month, MonthlyRows),
		Smoothed:    analytics.SmoothSeries(series, settings.SmoothingWindowDays),
		Trend:       analytics.Project(series, settings.GoalWeight, today),
		Quote:       PickQuote(series, s.intn),
		Recent:      series.Tail(RecentRows),
		Settings:    settings,
	}

	if first, ok := series.First(); ok {
		last, _ := series.Last()
		delta := last.Weight - first.Weight
		age := today.DaysSince(last.Day)
		ov.Initial, ov.Current = &first, &last
		ov.NetDelta = &delta
		ov.LastEntryAgeDays = &age

		if bmi, ok := domain.BMI(last.Weight, settings.HeightCm); ok {
			ov.BMI = &bmi
			ov.BMICategory = domain.BMICategory(bmi, ok)
		}
	}
	ov.Reminder = ReminderFor(today, ov.LastEntryAgeDays)

	return ov, nil
}

// Summary returns the comparison table for g, limited to the last limit
// periods when limit > 0.
func (s *MetricsService) Summary(ctx context.Context, g analytics.Granularity, limit int) (analytics.Comparison, error) {
	series, err := s.series.Snapshot(ctx)
	if err != nil {
		return analytics.Comparison{}, err
	}
	return analytics.Compare(series, g, limit), nil
}

// Smooth returns the moving average of the series. A window <= 0 uses the
// configured smoothing window.
func (s *MetricsService) Smooth(ctx context.Context, window int) (analytics.Smoothed, error) {
	series, settings, err := s.load(ctx)
	if err != nil {
		return analytics.Smoothed{}, err
	}
	if window <= 0 {
		window = settings.SmoothingWindowDays
	}
	return analytics.SmoothSeries(series, window), nil
}

// Trend fits the series and projects when goal is reached. A nil goal uses
// the configured goal weight.
func (s *MetricsService) Trend(ctx context.Context, goal *float64, today domain.Date) (analytics.TrendResult, error) {
	series, settings, err := s.load(ctx)
	if err != nil {
		return analytics.TrendResult{}, err
	}
	g := settings.GoalWeight
	if goal != nil {
		g = *goal
	}
	return analytics.Project(series, g, today), nil
}

func (s *MetricsService) load(ctx context.Context) (domain.Series, domain.Settings, error) {
	series, err := s.series.Snapshot(ctx)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	settings, err := s.settings.LoadSettings(ctx)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	return series, settings, nil
}
