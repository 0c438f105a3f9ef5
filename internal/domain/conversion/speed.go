package conversion

import "github.com/hapkiduki/measure-go/internal/domain/unit"

// speedPerMeterPerSecond holds how many of each unit make one meter per second.
var speedPerMeterPerSecond = baseTable[unit.Speed]{
	unit.MeterPerSecond:   1,
	unit.KilometerPerHour: 3.6,
	unit.MilePerHour:      2.236936,
	unit.Knot:             1.943844,
	unit.FootPerSecond:    3.28084,
}

// Speed converts a velocity between speed units, pivoting on meters per second.
func Speed(value float64, from, to unit.Speed) (float64, error) {
	return linear(speedPerMeterPerSecond, value, from, to)
}

// SpeedFactor returns the multiplier that turns a value in from into a value in to.
func SpeedFactor(from, to unit.Speed) (float64, error) {
	return linearFactor(speedPerMeterPerSecond, from, to)
}
