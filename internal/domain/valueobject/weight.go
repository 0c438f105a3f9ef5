package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// Weight represents a mass expressed in a weight unit.
type Weight struct {
	value float64
	unit  unit.Weight
}

// NewWeight creates a new Weight value object.
//
// Parameters:
//   - value: magnitude in u
//   - u: weight unit
//
// Returns:
//   - Weight: the created Weight
//   - error: unit.ErrUnknownUnit if u is not a weight unit
func NewWeight(value float64, u unit.Weight) (Weight, error) {
	if _, err := unit.ParseWeight(string(u)); err != nil {
		return Weight{}, err
	}
	return Weight{value: value, unit: u}, nil
}

// MustNewWeight is like NewWeight but panics on an invalid unit.
func MustNewWeight(value float64, u unit.Weight) Weight {
	w, err := NewWeight(value, u)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWeight creates a Weight from a unit name such as "KILOGRAM".
func ParseWeight(value float64, name string) (Weight, error) {
	u, err := unit.ParseWeight(name)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: value, unit: u}, nil
}

// Value returns the magnitude.
func (w Weight) Value() float64 { return w.value }

// Unit returns the unit the magnitude is expressed in.
func (w Weight) Unit() unit.Weight { return w.unit }

// ConvertTo returns the same mass expressed in target.
//
// Parameters:
//   - target: the unit to convert to
//
// Returns:
//   - Weight: new Weight in target
//   - error: conversion.ErrUnsupportedConversion if no factor exists
func (w Weight) ConvertTo(target unit.Weight) (Weight, error) {
	v, err := conversion.Weight(w.value, w.unit, target)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, unit: target}, nil
}

// ToKilograms converts the weight to kilograms.
func (w Weight) ToKilograms() (Weight, error) { return w.ConvertTo(unit.Kilogram) }

// ToGrams converts the weight to grams.
func (w Weight) ToGrams() (Weight, error) { return w.ConvertTo(unit.Gram) }

// ToPounds converts the weight to pounds.
func (w Weight) ToPounds() (Weight, error) { return w.ConvertTo(unit.Pound) }

// Add adds another weight, converted to the receiver's unit, and returns a new Weight.
//
// Parameters:
//   - other: the Weight to add
//
// Returns:
//   - Weight: the sum, in the receiver's unit
//   - error: conversion.ErrUnsupportedConversion if other cannot be converted
func (w Weight) Add(other Weight) (Weight, error) {
	o, err := other.ConvertTo(w.unit)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: w.value + o.value, unit: w.unit}, nil
}

// Subtract subtracts another weight, converted to the receiver's unit.
// The result may be negative.
func (w Weight) Subtract(other Weight) (Weight, error) {
	o, err := other.ConvertTo(w.unit)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: w.value - o.value, unit: w.unit}, nil
}

// IsZero checks if the magnitude is zero.
func (w Weight) IsZero() bool { return w.value == 0 }

// IsNegative checks if the magnitude is less than zero.
func (w Weight) IsNegative() bool { return w.value < 0 }

// Equals checks if two weights have the same magnitude and unit.
func (w Weight) Equals(other Weight) bool {
	return w.value == other.value && w.unit == other.unit
}

// String returns a formatted string representation (e.g., "15 POUND").
func (w Weight) String() string {
	return formatQuantity(w.value, string(w.unit))
}

// MarshalJSON encodes the weight as {"value": 15, "unit": "POUND"}.
func (w Weight) MarshalJSON() ([]byte, error) {
	return marshalQuantity(w.value, string(w.unit))
}

// UnmarshalJSON decodes and validates a weight.
func (w *Weight) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParseWeight(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
