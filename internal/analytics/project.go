package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"weighttrend/internal/domain"
)

// maxOrdinal is 9999-12-31; solutions beyond it are not projectable.
const maxOrdinal = 3652059

// TrendResult is the linear trend of a series and, when reachable, the date
// the trend line crosses the goal weight. Determined is false when there
// are fewer than two samples; all other fields are then zero.
type TrendResult struct {
	Determined bool         `json:"determined"`
	DailyRate  float64      `json:"dailyRate"`
	WeeklyRate float64      `json:"weeklyRate"`
	Intercept  float64      `json:"intercept"`
	Samples    int          `json:"samples"`
	ETA        *domain.Date `json:"eta"`
}

// Project fits weight = a*t + b by ordinary least squares over every sample
// of series (t is the date ordinal, all samples weighted equally) and solves
// for the day the line reaches goal.
//
// The ETA is set only when the slope is non-zero, the trend moves toward the
// goal from the last observed weight, and the solution is not
// before today.
func Project(series domain.Series, goal float64, today domain.Date) TrendResult {
	if len(series) < 2 {
		return TrendResult{Samples: len(series)}
	}

	xs := make([]float64, len(series))
	for i, smp := range series {
		xs[i] = float64(smp.Day.Ordinal())
	}
	ys := series.Weights()

	b, a := fit(xs, ys)
	res := TrendResult{
		Determined: true,
		DailyRate:  a,
		WeeklyRate: a * 7,
		Intercept:  b,
		Samples:    len(series),
	}

	last := ys[len(ys)-1]
	if a == 0 || math.Signbit(goal-last) != math.Signbit(a) || goal == last {
		return res
	}

	xRaw := (goal - b) / a
	if math.IsNaN(xRaw) || math.IsInf(xRaw, 0) || xRaw < float64(today.Ordinal()) {
		return res
	}
	// Ties go to the even day.
	xGoal := math.RoundToEven(xRaw)
	if xGoal > maxOrdinal {
		return res
	}
	eta := domain.DateFromOrdinal(int64(xGoal))
	res.ETA = &eta
	return res
}

// fit returns the intercept and slope of the least-squares line.
// Identical weights always yield a slope of exactly 0.
func fit(xs, ys []float64) (intercept, slope float64) {
	flat := true
	for _, y := range ys[1:] {
		if y != ys[0] {
			flat = false
			break
		}
	}
	if flat {
		return ys[0], 0
	}
	return stat.LinearRegression(xs, ys, nil, false)
}
