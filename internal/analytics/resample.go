package analytics

import (
	"fmt"
	"strings"

	"weighttrend/internal/domain"
)

// Granularity selects the period used by Summarize.
type Granularity string

const (
	// Week periods end on Sunday.
	Week Granularity = "week"
	// Month periods end on the last calendar day of the month.
	Month Granularity = "month"
)

// ParseGranularity accepts "week", "weekly", "month" or "monthly".
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly", "w":
		return Week, nil
	case "month", "monthly", "m":
		return Month, nil
	default:
		return "", fmt.Errorf("%w: granularity must be \"week\" or \"month\", got %q", domain.ErrInvalidInput, s)
	}
}

// PeriodEnd returns the last day of the period containing d.
func (g Granularity) PeriodEnd(d domain.Date) domain.Date {
	switch g {
	case Month:
		return domain.NewDate(d.Year(), d.Month()+1, 1).AddDays(-1)
	default:
		return d.AddDays((7 - int(d.Weekday())) % 7)
	}
}

// PeriodValue is one entry of a summary series.
type PeriodValue struct {
	PeriodEnd domain.Date `json:"periodEnd"`
	Value     float64     `json:"value"`
}

// PeriodDelta is a summary entry with the change from the previous period.
// Delta is nil for the first entry.
type PeriodDelta struct {
	PeriodEnd domain.Date `json:"periodEnd"`
	Value     float64     `json:"value"`
	Delta     *float64    `json:"delta"`
}

// Comparison is the period-over-period table shown to the user.
// Sufficient is false when fewer than two periods contain data.
type Comparison struct {
	Granularity Granularity   `json:"granularity"`
	Rows        []PeriodDelta `json:"rows"`
	Sufficient  bool          `json:"sufficient"`
}

// Summarize reduces series to one value per period: the weight of the
// chronologically last sample in that period. Periods without samples are
// omitted. series must be sorted ascending.
func Summarize(series domain.Series, g Granularity) []PeriodValue {
	out := make([]PeriodValue, 0)
	for _, smp := range series {
		end := g.PeriodEnd(smp.Day)
		if n := len(out); n > 0 && out[n-1].PeriodEnd.Equal(end) {
			out[n-1].Value = smp.Weight
			continue
		}
		out = append(out, PeriodValue{PeriodEnd: end, Value: smp.Weight})
	}
	return out
}

// Changes returns value[i]-value[i-1] for i >= 1. It is empty when the
// summary has fewer than two entries.
func Changes(summary []PeriodValue) []float64 {
	if len(summary) < 2 {
		return []float64{}
	}
	out := make([]float64, len(summary)-1)
	for i := 1; i < len(summary); i++ {
		out[i-1] = summary[i].Value - summary[i-1].Value
	}
	return out
}

// Deltas pairs each summary entry with its change from the previous one.
func Deltas(summary []PeriodValue) []PeriodDelta {
	out := make([]PeriodDelta, len(summary))
	for i, pv := range summary {
		out[i] = PeriodDelta{PeriodEnd: pv.PeriodEnd, Value: pv.Value}
		if i > 0 {
			d := pv.Value - summary[i-1].Value
			out[i].Delta = &d
		}
	}
	return out
}

// Compare builds the comparison table for g, keeping only the last limit
// rows when limit > 0. Deltas are computed before trimming, so the first
// kept row still carries its change.
func Compare(series domain.Series, g Granularity, limit int) Comparison {
	summary := Summarize(series, g)
	rows := Deltas(summary)
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	return Comparison{
		Granularity: g,
		Rows:        rows,
		Sufficient:  len(summary) >= 2,
	}
}
