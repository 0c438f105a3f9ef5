// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Every quantity pairs a float64 magnitude with a unit of its own dimension:
//   - Immutability: conversions return new instances, the receiver never changes.
//   - Self-validation: constructors reject units outside the dimension.
//   - Equality: two quantities are equal when magnitude and unit are equal;
//     1000 METER and 1 KILOMETER are different values.
package valueobject

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidDimension is returned when a geometric or geographic value is out
// of range, such as an inner box dimension that does not fit inside the outer one.
var ErrInvalidDimension = errors.New("invalid dimension")

// quantityJSON is the wire shape shared by every quantity.
type quantityJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// formatQuantity renders a magnitude with the shortest exact decimal form,
// followed by the unit name (e.g., "15 POUND", "2.5 KILOGRAM").
func formatQuantity(value float64, unitName string) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + unitName
}

func marshalQuantity(value float64, unitName string) ([]byte, error) {
	return json.Marshal(quantityJSON{Value: value, Unit: unitName})
}

func unmarshalQuantity(data []byte) (quantityJSON, error) {
	var q quantityJSON
	if err := json.Unmarshal(data, &q); err != nil {
		return quantityJSON{}, err
	}
	return q, nil
}
