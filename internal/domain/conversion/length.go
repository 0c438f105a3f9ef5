package conversion

import "github.com/hapkiduki/measure-go/internal/domain/unit"

var lengthTable = directTable[unit.Length]{
	unit.Inch: {
		unit.Inch:       1,
		unit.Centimeter: 2.54,
		unit.Meter:      0.0254,
		unit.Kilometer:  0.0000254,
		unit.Foot:       0.0833333,
		unit.Yard:       0.0277778,
		unit.Mile:       0.0000157828,
		unit.Millimeter: 25.4,
		unit.Micrometer: 25400,
		unit.Nanometer:  25400000,
		unit.Decimeter:  0.254,
	},
	unit.Centimeter: {
		unit.Inch:       0.393701,
		unit.Centimeter: 1,
		unit.Meter:      0.01,
		unit.Kilometer:  0.00001,
		unit.Foot:       0.0328084,
		unit.Yard:       0.0109361,
		unit.Mile:       0.0000062137,
		unit.Millimeter: 10,
		unit.Micrometer: 10000,
		unit.Nanometer:  10000000,
		unit.Decimeter:  0.1,
	},
	unit.Meter: {
		unit.Inch:       39.3701,
		unit.Centimeter: 100,
		unit.Meter:      1,
		unit.Kilometer:  0.001,
		unit.Foot:       3.28084,
		unit.Yard:       1.09361,
		unit.Mile:       0.000621371,
		unit.Millimeter: 1000,
		unit.Micrometer: 1000000,
		unit.Nanometer:  1000000000,
		unit.Decimeter:  10,
	},
	unit.Kilometer: {
		unit.Inch:       39370.1,
		unit.Centimeter: 100000,
		unit.Meter:      1000,
		unit.Kilometer:  1,
		unit.Foot:       3280.84,
		unit.Yard:       1093.61,
		unit.Mile:       0.621371,
		unit.Millimeter: 1000000,
		unit.Micrometer: 1000000000,
		unit.Nanometer:  1000000000000,
		unit.Decimeter:  10000,
	},
	unit.Foot: {
		unit.Inch:       12,
		unit.Centimeter: 30.48,
		unit.Meter:      0.3048,
		unit.Kilometer:  0.0003048,
		unit.Foot:       1,
		unit.Yard:       0.333333,
		unit.Mile:       0.000189394,
		unit.Millimeter: 304.8,
		unit.Micrometer: 304800,
		unit.Nanometer:  304800000,
		unit.Decimeter:  3.048,
	},
	unit.Yard: {
		unit.Inch:       36,
		unit.Centimeter: 91.44,
		unit.Meter:      0.9144,
		unit.Kilometer:  0.0009144,
		unit.Foot:       3,
		unit.Yard:       1,
		unit.Mile:       0.000568182,
		unit.Millimeter: 914.4,
		unit.Micrometer: 914400,
		unit.Nanometer:  914400000,
		unit.Decimeter:  9.144,
	},
	unit.Mile: {
		unit.Inch:       63360,
		unit.Centimeter: 160934,
		unit.Meter:      1609.34,
		unit.Kilometer:  1.60934,
		unit.Foot:       5280,
		unit.Yard:       1760,
		unit.Mile:       1,
		unit.Millimeter: 1609340,
		unit.Micrometer: 1609340000,
		unit.Nanometer:  1609340000000,
		unit.Decimeter:  16093.4,
	},
	unit.Millimeter: {
		unit.Inch:       0.0393701,
		unit.Centimeter: 0.1,
		unit.Meter:      0.001,
		unit.Kilometer:  0.000001,
		unit.Foot:       0.00328084,
		unit.Yard:       0.00109361,
		unit.Mile:       0.000000621371,
		unit.Millimeter: 1,
		unit.Micrometer: 1000,
		unit.Nanometer:  1000000,
		unit.Decimeter:  0.01,
	},
	unit.Micrometer: {
		unit.Inch:       0.0000393701,
		unit.Centimeter: 0.0001,
		unit.Meter:      0.000001,
		unit.Kilometer:  0.000000001,
		unit.Foot:       0.00000328084,
		unit.Yard:       0.00000109361,
		unit.Mile:       0.000000000621371,
		unit.Millimeter: 0.001,
		unit.Micrometer: 1,
		unit.Nanometer:  1000,
		unit.Decimeter:  0.00001,
	},
	unit.Nanometer: {
		unit.Inch:       0.0000000393701,
		unit.Centimeter: 0.0000001,
		unit.Meter:      0.000000001,
		unit.Kilometer:  0.000000000001,
		unit.Foot:       0.00000000328084,
		unit.Yard:       0.00000000109361,
		unit.Mile:       0.000000000000621371,
		unit.Millimeter: 0.000001,
		unit.Micrometer: 0.001,
		unit.Nanometer:  1,
		unit.Decimeter:  0.00000001,
	},
	unit.Decimeter: {
		unit.Inch:       3.93701,
		unit.Centimeter: 10,
		unit.Meter:      0.1,
		unit.Kilometer:  0.0001,
		unit.Foot:       0.328084,
		unit.Yard:       0.109361,
		unit.Mile:       0.0000621371,
		unit.Millimeter: 100,
		unit.Micrometer: 100000,
		unit.Nanometer:  100000000,
		unit.Decimeter:  1,
	},
}

// Length converts a distance between length units.
//
// Parameters:
//   - value: magnitude expressed in from
//   - from: source unit
//   - to: target unit
//
// Returns:
//   - float64: magnitude expressed in to
//   - error: ErrUnsupportedConversion if either unit is unknown
func Length(value float64, from, to unit.Length) (float64, error) {
	return linear(lengthTable, value, from, to)
}

// LengthFactor returns the multiplier that turns a value in from into a value in to.
func LengthFactor(from, to unit.Length) (float64, error) {
	return linearFactor(lengthTable, from, to)
}
