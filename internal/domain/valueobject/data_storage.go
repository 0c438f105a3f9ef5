package valueobject

import (
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// DataStorage represents an amount of data expressed in a binary-prefixed unit.
type DataStorage struct {
	value float64
	unit  unit.DataStorage
}

// NewDataStorage creates a new DataStorage. It fails with unit.ErrUnknownUnit if u is not a data storage unit.
func NewDataStorage(value float64, u unit.DataStorage) (DataStorage, error) {
	if _, err := unit.ParseDataStorage(string(u)); err != nil {
		return DataStorage{}, err
	}
	return DataStorage{value: value, unit: u}, nil
}

// MustNewDataStorage is like NewDataStorage but panics on an invalid unit.
func MustNewDataStorage(value float64, u unit.DataStorage) DataStorage {
	q, err := NewDataStorage(value, u)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseDataStorage creates a DataStorage from a unit name.
func ParseDataStorage(value float64, name string) (DataStorage, error) {
	u, err := unit.ParseDataStorage(name)
	if err != nil {
		return DataStorage{}, err
	}
	return DataStorage{value: value, unit: u}, nil
}

func (d DataStorage) Value() float64 { return d.value }

func (d DataStorage) Unit() unit.DataStorage { return d.unit }

// ConvertTo returns the same data storage expressed in target.
func (d DataStorage) ConvertTo(target unit.DataStorage) (DataStorage, error) {
	v, err := conversion.DataStorage(d.value, d.unit, target)
	if err != nil {
		return DataStorage{}, err
	}
	return DataStorage{value: v, unit: target}, nil
}

func (d DataStorage) ToBytes() (DataStorage, error) { return d.ConvertTo(unit.Byte) }

func (d DataStorage) ToKibibytes() (DataStorage, error) { return d.ConvertTo(unit.Kibibyte) }

func (d DataStorage) ToMebibytes() (DataStorage, error) { return d.ConvertTo(unit.Mebibyte) }

func (d DataStorage) ToGibibytes() (DataStorage, error) { return d.ConvertTo(unit.Gibibyte) }

// Equals checks if two values have the same magnitude and unit.
func (d DataStorage) Equals(other DataStorage) bool {
	return d.value == other.value && d.unit == other.unit
}

// String returns the value followed by the unit name (e.g., "512 MEBIBYTE").
func (d DataStorage) String() string {
	return formatQuantity(d.value, string(d.unit))
}

func (d DataStorage) MarshalJSON() ([]byte, error) {
	return marshalQuantity(d.value, string(d.unit))
}

func (d *DataStorage) UnmarshalJSON(data []byte) error {
	q, err := unmarshalQuantity(data)
	if err != nil {
		return err
	}
	parsed, err := ParseDataStorage(q.Value, q.Unit)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
