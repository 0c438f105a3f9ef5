package entity

import (
	"fmt"

	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// PhysicalObject is anything with a weight and box dimensions.
type PhysicalObject interface {
	Weight() valueobject.Weight
	Dimensions() Box
}

// Density computes the density of obj in kilograms per cubic meter.
//
// Parameters:
//   - obj: any object exposing a weight and box dimensions
//
// Returns:
//   - float64: weight in kilograms divided by volume in cubic meters
//   - error: ErrInvalidState if the volume is not positive
func Density(obj PhysicalObject) (float64, error) {
	volume := obj.Dimensions().Volume()
	if volume <= 0 {
		return 0, fmt.Errorf("%w: volume must be positive to calculate density, got %v m³", ErrInvalidState, volume)
	}

	kg, err := obj.Weight().ToKilograms()
	if err != nil {
		return 0, err
	}
	return kg.Value() / volume, nil
}
