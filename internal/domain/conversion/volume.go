package conversion

import "github.com/hapkiduki/measure-go/internal/domain/unit"

var volumeTable = directTable[unit.Volume]{
	unit.Milliliter: {
		unit.Milliliter: 1,
		unit.Liter:      0.001,
		unit.FluidOunce: 0.033814,    // 1 / 29.5735
		unit.Gallon:     0.000264172, // 1 / 3785.41
		unit.Pint:       0.00211338,  // 1 / 473.176
		unit.Quart:      0.00105669,  // 1 / 946.353
		unit.Cup:        0.00422675,  // 1 / 236.588
	},
	unit.Liter: {
		unit.Milliliter: 1000,
		unit.Liter:      1,
		unit.FluidOunce: 33.814,
		unit.Gallon:     0.264172,
		unit.Pint:       2.11338,
		unit.Quart:      1.05669,
		unit.Cup:        4.22675,
	},
	unit.FluidOunce: {
		unit.Milliliter: 29.5735,
		unit.Liter:      0.0295735,
		unit.FluidOunce: 1,
		unit.Gallon:     0.0078125,
		unit.Pint:       0.0625,
		unit.Quart:      0.03125,
		unit.Cup:        0.125,
	},
	unit.Gallon: {
		unit.Milliliter: 3785.41,
		unit.Liter:      3.78541,
		unit.FluidOunce: 128,
		unit.Gallon:     1,
		unit.Pint:       8,
		unit.Quart:      4,
		unit.Cup:        16,
	},
	unit.Pint: {
		unit.Milliliter: 473.176,
		unit.Liter:      0.473176,
		unit.FluidOunce: 16,
		unit.Gallon:     0.125,
		unit.Pint:       1,
		unit.Quart:      0.5,
		unit.Cup:        2,
	},
	unit.Quart: {
		unit.Milliliter: 946.353,
		unit.Liter:      0.946353,
		unit.FluidOunce: 32,
		unit.Gallon:     0.25,
		unit.Pint:       2,
		unit.Quart:      1,
		unit.Cup:        4,
	},
	unit.Cup: {
		unit.Milliliter: 236.588,
		unit.Liter:      0.236588,
		unit.FluidOunce: 8,
		unit.Gallon:     0.0625,
		unit.Pint:       0.5,
		unit.Quart:      0.25,
		unit.Cup:        1,
	},
}

// Volume converts a liquid volume between volume units.
func Volume(value float64, from, to unit.Volume) (float64, error) {
	return linear(volumeTable, value, from, to)
}

// VolumeFactor returns the multiplier that turns a value in from into a value in to.
func VolumeFactor(from, to unit.Volume) (float64, error) {
	return linearFactor(volumeTable, from, to)
}
