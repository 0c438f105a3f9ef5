package conversion

import "github.com/hapkiduki/measure-go/internal/domain/unit"

var weightTable = directTable[unit.Weight]{
	unit.Gram: {
		unit.Gram:            1,
		unit.Kilogram:        0.001,
		unit.Ounce:           0.035274,
		unit.Pound:           0.00220462,
		unit.Milligram:       1000,
		unit.Ton:             0.000001,
		unit.Stone:           0.000157473,
		unit.Microgram:       1000000,
		unit.Nanogram:        1000000000,
		unit.HundredthsPound: 0.220462,
	},
	unit.Kilogram: {
		unit.Gram:            1000,
		unit.Kilogram:        1,
		unit.Ounce:           35.274,
		unit.Pound:           2.20462,
		unit.Milligram:       1000000,
		unit.Ton:             0.001,
		unit.Stone:           0.157473,
		unit.Microgram:       1000000000,
		unit.Nanogram:        1000000000000,
		unit.HundredthsPound: 220.462,
	},
	unit.Ounce: {
		unit.Gram:            28.3495,
		unit.Kilogram:        0.0283495,
		unit.Ounce:           1,
		unit.Pound:           0.0625,
		unit.Milligram:       28349.5,
		unit.Ton:             0.0000283495,
		unit.Stone:           0.00446429,
		unit.Microgram:       28349500,
		unit.Nanogram:        28349500000,
		unit.HundredthsPound: 6.25,
	},
	unit.Pound: {
		unit.Gram:            453.592,
		unit.Kilogram:        0.453592,
		unit.Ounce:           16,
		unit.Pound:           1,
		unit.Milligram:       453592,
		unit.Ton:             0.000453592,
		unit.Stone:           0.0714286,
		unit.Microgram:       453592000,
		unit.Nanogram:        453592000000,
		unit.HundredthsPound: 100,
	},
	unit.Milligram: {
		unit.Gram:            0.001,
		unit.Kilogram:        0.000001,
		unit.Ounce:           0.000035274,
		unit.Pound:           0.00000220462,
		unit.Milligram:       1,
		unit.Ton:             0.000000001,
		unit.Stone:           0.000000157473,
		unit.Microgram:       1000,
		unit.Nanogram:        1000000,
		unit.HundredthsPound: 0.000220462,
	},
	unit.Ton: {
		unit.Gram:            1000000,
		unit.Kilogram:        1000,
		unit.Ounce:           35274,
		unit.Pound:           2204.62,
		unit.Milligram:       1000000000,
		unit.Ton:             1,
		unit.Stone:           157.473,
		unit.Microgram:       1000000000000,
		unit.Nanogram:        1000000000000000,
		unit.HundredthsPound: 220462,
	},
	unit.Stone: {
		unit.Gram:            6350.29,
		unit.Kilogram:        6.35029,
		unit.Ounce:           224,
		unit.Pound:           14,
		unit.Milligram:       6350290,
		unit.Ton:             0.00635029,
		unit.Stone:           1,
		unit.Microgram:       6350290000,
		unit.Nanogram:        6350290000000,
		unit.HundredthsPound: 1400,
	},
	unit.Microgram: {
		unit.Gram:            0.000001,
		unit.Kilogram:        0.000000001,
		unit.Ounce:           0.000000035274,
		unit.Pound:           0.00000000220462,
		unit.Milligram:       0.001,
		unit.Ton:             0.000000000001,
		unit.Stone:           0.000000000157473,
		unit.Microgram:       1,
		unit.Nanogram:        1000,
		unit.HundredthsPound: 0.000000220462,
	},
	unit.Nanogram: {
		unit.Gram:            0.000000001,
		unit.Kilogram:        0.000000000001,
		unit.Ounce:           0.000000000035274,
		unit.Pound:           0.00000000000220462,
		unit.Milligram:       0.000001,
		unit.Ton:             0.000000000000001,
		unit.Stone:           0.000000000000157473,
		unit.Microgram:       0.001,
		unit.Nanogram:        1,
		unit.HundredthsPound: 0.000000000220462,
	},
	unit.HundredthsPound: {
		unit.Gram:            4.53592,
		unit.Kilogram:        0.00453592,
		unit.Ounce:           0.16,
		unit.Pound:           0.01,
		unit.Milligram:       4535.92,
		unit.Ton:             0.00000453592,
		unit.Stone:           0.000714286,
		unit.Microgram:       4535920,
		unit.Nanogram:        4535920000,
		unit.HundredthsPound: 1,
	},
}

// Weight converts a mass between weight units.
func Weight(value float64, from, to unit.Weight) (float64, error) {
	return linear(weightTable, value, from, to)
}

// WeightFactor returns the multiplier that turns a value in from into a value in to.
func WeightFactor(from, to unit.Weight) (float64, error) {
	return linearFactor(weightTable, from, to)
}
