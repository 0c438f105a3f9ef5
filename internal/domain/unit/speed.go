package unit

// Speed is a unit of velocity.
type Speed string

// Supported speed units.
const (
	MeterPerSecond   Speed = "METER_PER_SECOND"
	KilometerPerHour Speed = "KILOMETER_PER_HOUR"
	MilePerHour      Speed = "MILE_PER_HOUR"
	Knot             Speed = "KNOT" // Nautical miles per hour
	FootPerSecond    Speed = "FOOT_PER_SECOND"
)

// Speeds returns every speed unit in declaration order.
func Speeds() []Speed {
	return []Speed{MeterPerSecond, KilometerPerHour, MilePerHour, Knot, FootPerSecond}
}

// ParseSpeed returns the speed unit with the given name.
func ParseSpeed(name string) (Speed, error) {
	return parse("speed", name, Speeds())
}

// IsValid reports whether u is one of the declared speed units.
func (u Speed) IsValid() bool {
	return contains(Speeds(), u)
}
