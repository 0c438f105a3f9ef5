package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// Length represents a distance expressed in a length unit.
//
// Example usage:
//
//	side := valueobject.MustNewLength(1.5, unit.Meter)
//	cm, _ := side.ToCentimeters() // 150 CENTIMETER
type Length struct {
	value float64
	unit  unit.Length
}

// NewLength creates a new Length value object.
//
// Parameters:
//   - value: magnitude in u
//   - u: length unit
//
// Returns:
//   - Length: the created Length
//   - error: unit.ErrUnknownUnit if u is not a length unit
func NewLength(value float64, u unit.Length) (Length, error) {
	if _, err := unit.ParseLength(string(u)); err != nil {
		return Length{}, err
	}
	return Length{value: value, unit: u}, nil
}

// MustNewLength is like NewLength but panics on an invalid unit.
// Intended for constants and tests.
func MustNewLength(value float64, u unit.Length) Length {
	l, err := NewLength(value, u)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLength creates a Length from a unit name such as "METER".
//
// Parameters:
//   - value: magnitude
//   - name: exact, case-sensitive unit name
//
// Returns:
//   - Length: the created Length
//   - error: unit.ErrUnknownUnit if name is not a length unit
func ParseLength(value float64, name string) (Length, error) {
	u, err := unit.ParseLength(name)
	if err != nil {
		return Length{}, err
	}
	return Length{value: value, unit: u}, nil
}

// Value returns the magnitude.
func (l Length) Value() float64 { return l.value }

// Unit returns the unit the magnitude is expressed in.
func (l Length) Unit() unit.Length { return l.unit }

// ConvertTo returns the same distance expressed in target.
// Converting to the current unit returns an identical Length.
//
// Parameters:
//   - target: the unit to convert to
//
// Returns:
//   - Length: new Length in target
//   - error: conversion.ErrUnsupportedConversion if no factor exists
func (l Length) ConvertTo(target unit.Length) (Length, error) {
	v, err := conversion.Length(l.value, l.unit, target)
	if err != nil {
		return Length{}, err
	}
	return Length{value: v, unit: target}, nil
}

// ToCentimeters converts the length to centimeters.
func (l Length) ToCentimeters() (Length, error) { return l.ConvertTo(unit.Centimeter) }

// ToMeters converts the length to meters.
func (l Length) ToMeters() (Length, error) { return l.ConvertTo(unit.Meter) }

// ToInches converts the length to inches.
func (l Length) ToInches() (Length, error) { return l.ConvertTo(unit.Inch) }

// IsZero checks if the magnitude is zero.
//
// Returns:
//   - bool: true if the magnitude is zero, whatever the unit
func (l Length) IsZero() bool {
	return l.value == 0
}

// Equals checks if two lengths have the same magnitude and unit.
// No conversion is performed.
func (l Length) Equals(other Length) bool {
	return l.value == other.value && l.unit == other.unit
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted length (e.g., "30 CENTIMETER")
func (l Length) String() string {
	return formatQuantity(l.value, string(l.unit))
}

// MarshalJSON encodes the length as {"value": 30, "unit": "CENTIMETER"}.
func (l Length) MarshalJSON() ([]byte, error) {
	return marshalQuantity(l.value, string(l.unit))
}

// UnmarshalJSON decodes and validates a length.
func (l *Length) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParseLength(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
