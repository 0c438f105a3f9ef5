package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// Speed represents a velocity expressed in a speed unit.
type Speed struct {
	value float64
	unit  unit.Speed
}

// NewSpeed creates a new Speed. It fails with unit.ErrUnknownUnit if u is not a speed unit.
func NewSpeed(value float64, u unit.Speed) (Speed, error) {
	if _, err := unit.ParseSpeed(string(u)); err != nil {
		return Speed{}, err
	}
	return Speed{value: value, unit: u}, nil
}

// MustNewSpeed is like NewSpeed but panics on an invalid unit.
func MustNewSpeed(value float64, u unit.Speed) Speed {
	q, err := NewSpeed(value, u)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseSpeed creates a Speed from a unit name.
func ParseSpeed(value float64, name string) (Speed, error) {
	u, err := unit.ParseSpeed(name)
	if err != nil {
		return Speed{}, err
	}
	return Speed{value: value, unit: u}, nil
}

func (s Speed) Value() float64 { return s.value }

func (s Speed) Unit() unit.Speed { return s.unit }

// ConvertTo returns the same speed expressed in target.
func (s Speed) ConvertTo(target unit.Speed) (Speed, error) {
	v, err := conversion.Speed(s.value, s.unit, target)
	if err != nil {
		return Speed{}, err
	}
	return Speed{value: v, unit: target}, nil
}

func (s Speed) ToMetersPerSecond() (Speed, error) { return s.ConvertTo(unit.MeterPerSecond) }

func (s Speed) ToKilometersPerHour() (Speed, error) { return s.ConvertTo(unit.KilometerPerHour) }

func (s Speed) ToMilesPerHour() (Speed, error) { return s.ConvertTo(unit.MilePerHour) }

// Equals checks if two values have the same magnitude and unit.
func (s Speed) Equals(other Speed) bool {
	return s.value == other.value && s.unit == other.unit
}

// String returns the value followed by the unit name (e.g., "100 KILOMETER_PER_HOUR").
func (s Speed) String() string {
	return formatQuantity(s.value, string(s.unit))
}

func (s Speed) MarshalJSON() ([]byte, error) {
	return marshalQuantity(s.value, string(s.unit))
}

func (s *Speed) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParseSpeed(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
