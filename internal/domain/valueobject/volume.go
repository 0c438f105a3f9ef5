package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// Volume represents a liquid volume expressed in a volume unit.
type Volume struct {
	value float64
	unit  unit.Volume
}

// NewVolume creates a new Volume. It fails with unit.ErrUnknownUnit if u is not a volume unit.
func NewVolume(value float64, u unit.Volume) (Volume, error) {
	if _, err := unit.ParseVolume(string(u)); err != nil {
		return Volume{}, err
	}
	return Volume{value: value, unit: u}, nil
}

// MustNewVolume is like NewVolume but panics on an invalid unit.
func MustNewVolume(value float64, u unit.Volume) Volume {
	q, err := NewVolume(value, u)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseVolume creates a Volume from a unit name.
func ParseVolume(value float64, name string) (Volume, error) {
	u, err := unit.ParseVolume(name)
	if err != nil {
		return Volume{}, err
	}
	return Volume{value: value, unit: u}, nil
}

func (v Volume) Value() float64 { return v.value }

func (v Volume) Unit() unit.Volume { return v.unit }

// ConvertTo returns the same volume expressed in target.
func (v Volume) ConvertTo(target unit.Volume) (Volume, error) {
	out, err := conversion.Volume(v.value, v.unit, target)
	if err != nil {
		return Volume{}, err
	}
	return Volume{value: out, unit: target}, nil
}

func (v Volume) ToLiters() (Volume, error) { return v.ConvertTo(unit.Liter) }

func (v Volume) ToMilliliters() (Volume, error) { return v.ConvertTo(unit.Milliliter) }

func (v Volume) ToGallons() (Volume, error) { return v.ConvertTo(unit.Gallon) }

// Equals checks if two values have the same magnitude and unit.
func (v Volume) Equals(other Volume) bool {
	return v.value == other.value && v.unit == other.unit
}

// String returns the value followed by the unit name (e.g., "1.5 L").
func (v Volume) String() string {
	return formatQuantity(v.value, string(v.unit))
}

func (v Volume) MarshalJSON() ([]byte, error) {
	return marshalQuantity(v.value, string(v.unit))
}

func (v *Volume) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParseVolume(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
