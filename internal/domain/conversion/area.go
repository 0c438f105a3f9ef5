package conversion

import "github.com/hapkiduki/measure-go/internal/domain/unit"

// areaPerSquareMeter holds how many of each unit make one square meter.
var areaPerSquareMeter = baseTable[unit.Area]{
	unit.SquareMeter:      1,
	unit.SquareKilometer:  0.000001,
	unit.SquareCentimeter: 10000,
	unit.SquareMillimeter: 1000000,
	unit.SquareFoot:       10.7639104167,
	unit.SquareYard:       1.1959900463,
	unit.SquareInch:       1550.00310001,
	unit.SquareMile:       3.861021585e-7,
	unit.Acre:             0.00024710538,
	unit.Hectare:          0.0001,
}

// Area converts a surface between area units, pivoting on square meters.
func Area(value float64, from, to unit.Area) (float64, error) {
	return linear(areaPerSquareMeter, value, from, to)
}

// AreaFactor returns the multiplier that turns a value in from into a value in to.
func AreaFactor(from, to unit.Area) (float64, error) {
	return linearFactor(areaPerSquareMeter, from, to)
}
