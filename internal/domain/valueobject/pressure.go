package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// Pressure represents a pressure expressed in a pressure unit.
type Pressure struct {
	value float64
	unit  unit.Pressure
}

// NewPressure creates a new Pressure. It fails with unit.ErrUnknownUnit if u is not a pressure unit.
func NewPressure(value float64, u unit.Pressure) (Pressure, error) {
	if _, err := unit.ParsePressure(string(u)); err != nil {
		return Pressure{}, err
	}
	return Pressure{value: value, unit: u}, nil
}

// MustNewPressure is like NewPressure but panics on an invalid unit.
func MustNewPressure(value float64, u unit.Pressure) Pressure {
	q, err := NewPressure(value, u)
	if err != nil {
		panic(err)
	}
	return q
}

// ParsePressure creates a Pressure from a unit name.
func ParsePressure(value float64, name string) (Pressure, error) {
	u, err := unit.ParsePressure(name)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: value, unit: u}, nil
}

func (p Pressure) Value() float64 { return p.value }

func (p Pressure) Unit() unit.Pressure { return p.unit }

// ConvertTo returns the same pressure expressed in target.
func (p Pressure) ConvertTo(target unit.Pressure) (Pressure, error) {
	v, err := conversion.Pressure(p.value, p.unit, target)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, unit: target}, nil
}

func (p Pressure) ToPascals() (Pressure, error) { return p.ConvertTo(unit.Pascal) }

func (p Pressure) ToKilopascals() (Pressure, error) { return p.ConvertTo(unit.Kilopascal) }

func (p Pressure) ToBar() (Pressure, error) { return p.ConvertTo(unit.Bar) }

func (p Pressure) ToPSI() (Pressure, error) { return p.ConvertTo(unit.PSI) }

// Equals checks if two values have the same magnitude and unit.
func (p Pressure) Equals(other Pressure) bool {
	return p.value == other.value && p.unit == other.unit
}

// String returns the value followed by the unit name (e.g., "1 BAR").
func (p Pressure) String() string {
	return formatQuantity(p.value, string(p.unit))
}

func (p Pressure) MarshalJSON() ([]byte, error) {
	return marshalQuantity(p.value, string(p.unit))
}

func (p *Pressure) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParsePressure(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
