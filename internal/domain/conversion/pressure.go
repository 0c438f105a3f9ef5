package conversion

import "github.com/hapkiduki/measure-go/internal/domain/unit"

// pressurePerPascal holds how many of each unit make one pascal.
var pressurePerPascal = baseTable[unit.Pressure]{
	unit.Pascal:     1,
	unit.Kilopascal: 0.001,
	unit.Megapascal: 0.000001,
	unit.Bar:        0.00001,
	unit.Millibar:   0.01,
	unit.PSI:        0.0001450377,
	unit.Atmosphere: 9.86923e-6,
	unit.Torr:       0.0075006168,
}

// Pressure converts a pressure between pressure units, pivoting on pascals.
func Pressure(value float64, from, to unit.Pressure) (float64, error) {
	return linear(pressurePerPascal, value, from, to)
}

// PressureFactor returns the multiplier that turns a value in from into a value in to.
func PressureFactor(from, to unit.Pressure) (float64, error) {
	return linearFactor(pressurePerPascal, from, to)
}
