package analytics

import (
	"gonum.org/v1/gonum/stat"

	"weighttrend/internal/domain"
)

// MovingAverage returns the trailing mean of up to window values ending at
// each position. The first window-1 positions average only the values seen
// so far, so the result is defined from the first point on.
//
// ok is false when window <= 1: smoothing is a no-op and the returned slice
// is an unmodified copy of values.
func MovingAverage(values []float64, window int) (_ []float64, ok bool) {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out, false
	}
	for i := range values {
		lo := max(0, i-window+1)
		out[i] = stat.Mean(values[lo:i+1], nil)
	}
	return out, true
}

// SmoothedPoint is one point of the smoothed line.
type SmoothedPoint struct {
	Day   domain.Date `json:"date"`
	Value float64     `json:"value"`
}

// Smoothed is the moving-average line for a series. Applied is false when
// the window makes smoothing meaningless; Points is then empty.
type Smoothed struct {
	Window  int             `json:"window"`
	Applied bool            `json:"applied"`
	Points  []SmoothedPoint `json:"points"`
}

// SmoothSeries applies MovingAverage to the weights of series.
func SmoothSeries(series domain.Series, window int) Smoothed {
	res := Smoothed{Window: window, Points: []SmoothedPoint{}}
	values, ok := MovingAverage(series.Weights(), window)
	if !ok {
		return res
	}
	res.Applied = true
	res.Points = make([]SmoothedPoint, len(values))
	for i, v := range values {
		res.Points[i] = SmoothedPoint{Day: series[i].Day, Value: v}
	}
	return res
}
