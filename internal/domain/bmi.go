package domain

import "math"

// Category is a body-mass-index band.
type Category string

const (
	CategoryUnknown     Category = "unknown"
	CategoryUnderweight Category = "underweight"
	CategoryNormal      Category = "normal"
	CategoryOverweight  Category = "overweight"
	CategoryObese       Category = "obese"
)

var categoryLabels = map[Category]string{
	CategoryUnknown:     "-",
	CategoryUnderweight: "Underweight",
	CategoryNormal:      "Normal",
	CategoryOverweight:  "Overweight",
	CategoryObese:       "Obese",
}

// Label returns the display text of c.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[CategoryUnknown]
}

// BMI returns weight / height^2 with height given in centimetres.
// ok is false when the height is not positive.
func BMI(weightKg, heightCm float64) (bmi float64, ok bool) {
	h := heightCm / 100.0
	if h <= 0 {
		return 0, false
	}
	bmi = weightKg / (h * h)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, false
	}
	return bmi, true
}

// BMICategory classifies a BMI value using the fixed WHO thresholds.
func BMICategory(bmi float64, ok bool) Category {
	switch {
	case !ok:
		return CategoryUnknown
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
