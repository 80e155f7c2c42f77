package domain

import "fmt"

// Unit is a display unit for weights. Samples are always stored in kg.
type Unit string

const (
	UnitKg Unit = "kg"
	UnitLb Unit = "lb"

	kgToLb = 2.2046226218
)

// ParseUnit accepts "kg" or "lb"; the empty string means kg.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case "", UnitKg:
		return UnitKg, nil
	case UnitLb:
		return UnitLb, nil
	default:
		return "", fmt.Errorf("%w: unit must be \"kg\" or \"lb\"", ErrInvalidInput)
	}
}

// ConvertWeight converts v between kg and lb.
// Returns v unchanged if from == to or if a unit is unrecognised.
func ConvertWeight(v float64, from, to Unit) float64 {
	switch {
	case from == to:
		return v
	case from == UnitKg && to == UnitLb:
		return v * kgToLb
	case from == UnitLb && to == UnitKg:
		return v / kgToLb
	default:
		return v
	}
}

// InUnit returns a copy of s with every weight expressed in u.
func (s Series) InUnit(u Unit) Series {
	out := make(Series, len(s))
	for i, smp := range s {
		out[i] = Sample{Day: smp.Day, Weight: ConvertWeight(smp.Weight, UnitKg, u)}
	}
	return out
}
