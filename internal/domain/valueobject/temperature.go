package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// Temperature represents a temperature on one of the supported scales.
type Temperature struct {
	value float64
	unit  unit.Temperature
}

// NewTemperature creates a new Temperature. It fails with unit.ErrUnknownUnit if u is not a temperature unit.
func NewTemperature(value float64, u unit.Temperature) (Temperature, error) {
	if _, err := unit.ParseTemperature(string(u)); err != nil {
		return Temperature{}, err
	}
	return Temperature{value: value, unit: u}, nil
}

// MustNewTemperature is like NewTemperature but panics on an invalid unit.
func MustNewTemperature(value float64, u unit.Temperature) Temperature {
	q, err := NewTemperature(value, u)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseTemperature creates a Temperature from a unit name.
func ParseTemperature(value float64, name string) (Temperature, error) {
	u, err := unit.ParseTemperature(name)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{value: value, unit: u}, nil
}

func (t Temperature) Value() float64 { return t.value }

func (t Temperature) Unit() unit.Temperature { return t.unit }

// ConvertTo returns the same temperature expressed in target.
func (t Temperature) ConvertTo(target unit.Temperature) (Temperature, error) {
	v, err := conversion.Temperature(t.value, t.unit, target)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{value: v, unit: target}, nil
}

func (t Temperature) ToCelsius() (Temperature, error) { return t.ConvertTo(unit.Celsius) }

func (t Temperature) ToFahrenheit() (Temperature, error) { return t.ConvertTo(unit.Fahrenheit) }

func (t Temperature) ToKelvin() (Temperature, error) { return t.ConvertTo(unit.Kelvin) }

// Equals checks if two values have the same magnitude and unit.
func (t Temperature) Equals(other Temperature) bool {
	return t.value == other.value && t.unit == other.unit
}

// String returns the value followed by the unit name (e.g., "21.5 CELSIUS").
func (t Temperature) String() string {
	return formatQuantity(t.value, string(t.unit))
}

func (t Temperature) MarshalJSON() ([]byte, error) {
	return marshalQuantity(t.value, string(t.unit))
}

func (t *Temperature) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParseTemperature(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
