package unit

// Pressure is a unit of pressure.
type Pressure string

// Supported pressure units.
const (
	Pascal     Pressure = "PASCAL" // SI base unit
	Kilopascal Pressure = "KILOPASCAL"
	Megapascal Pressure = "MEGAPASCAL"
	Bar        Pressure = "BAR"
	Millibar   Pressure = "MILLIBAR"
	PSI        Pressure = "PSI"        // Pounds per square inch
	Atmosphere Pressure = "ATMOSPHERE" // Standard atmosphere
	Torr       Pressure = "TORR"       // mmHg
)

// Pressures returns every pressure unit in declaration order.
func Pressures() []Pressure {
	return []Pressure{Pascal, Kilopascal, Megapascal, Bar, Millibar, PSI, Atmosphere, Torr}
}

// ParsePressure returns the pressure unit with the given name.
func ParsePressure(name string) (Pressure, error) {
	return parse("pressure", name, Pressures())
}

// IsValid reports whether u is one of the declared pressure units.
func (u Pressure) IsValid() bool {
	return contains(Pressures(), u)
}
