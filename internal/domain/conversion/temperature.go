package conversion

import "github.com/hapkiduki/measure-go/internal/domain/unit"

const kelvinOffset = 273.15

// Temperature converts between temperature scales. The conversion is affine,
// so it always goes through Celsius: source to Celsius, then Celsius to target.
//
// Parameters:
//   - value: temperature expressed in from
//   - from: source scale
//   - to: target scale
//
// Returns:
//   - float64: temperature expressed in to
//   - error: ErrUnsupportedConversion if either scale is unknown
func Temperature(value float64, from, to unit.Temperature) (float64, error) {
	if !from.IsValid() || !to.IsValid() {
		return 0, unsupported(from, to)
	}
	if from == to {
		return value, nil
	}

	var celsius float64
	switch from {
	case unit.Celsius:
		celsius = value
	case unit.Fahrenheit:
		celsius = (value - 32) * 5 / 9
	case unit.Kelvin:
		celsius = value - kelvinOffset
	}

	switch to {
	case unit.Fahrenheit:
		return celsius*9/5 + 32, nil
	case unit.Kelvin:
		return celsius + kelvinOffset, nil
	default:
		return celsius, nil
	}
}
