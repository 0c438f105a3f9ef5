package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// Area represents a surface expressed in an area unit.
type Area struct {
	value float64
	unit  unit.Area
}

// NewArea creates a new Area. It fails with unit.ErrUnknownUnit if u is not a area unit.
func NewArea(value float64, u unit.Area) (Area, error) {
	if _, err := unit.ParseArea(string(u)); err != nil {
		return Area{}, err
	}
	return Area{value: value, unit: u}, nil
}

// MustNewArea is like NewArea but panics on an invalid unit.
func MustNewArea(value float64, u unit.Area) Area {
	q, err := NewArea(value, u)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseArea creates a Area from a unit name.
func ParseArea(value float64, name string) (Area, error) {
	u, err := unit.ParseArea(name)
	if err != nil {
		return Area{}, err
	}
	return Area{value: value, unit: u}, nil
}

func (a Area) Value() float64 { return a.value }

func (a Area) Unit() unit.Area { return a.unit }

// ConvertTo returns the same area expressed in target.
func (a Area) ConvertTo(target unit.Area) (Area, error) {
	v, err := conversion.Area(a.value, a.unit, target)
	if err != nil {
		return Area{}, err
	}
	return Area{value: v, unit: target}, nil
}

func (a Area) ToSquareMeters() (Area, error) { return a.ConvertTo(unit.SquareMeter) }

func (a Area) ToAcres() (Area, error) { return a.ConvertTo(unit.Acre) }

func (a Area) ToHectares() (Area, error) { return a.ConvertTo(unit.Hectare) }

// Equals checks if two values have the same magnitude and unit.
func (a Area) Equals(other Area) bool {
	return a.value == other.value && a.unit == other.unit
}

// String returns the value followed by the unit name (e.g., "10000 SQ_METER").
func (a Area) String() string {
	return formatQuantity(a.value, string(a.unit))
}

func (a Area) MarshalJSON() ([]byte, error) {
	return marshalQuantity(a.value, string(a.unit))
}

func (a *Area) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParseArea(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
