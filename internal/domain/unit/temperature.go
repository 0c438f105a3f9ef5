package unit

// Temperature is a temperature scale.
type Temperature string

// Supported temperature scales.
const (
	Celsius    Temperature = "CELSIUS"
	Fahrenheit Temperature = "FAHRENHEIT"
	Kelvin     Temperature = "KELVIN"
)

// Temperatures returns every temperature scale in declaration order.
func Temperatures() []Temperature {
	return []Temperature{Celsius, Fahrenheit, Kelvin}
}

// ParseTemperature returns the temperature scale with the given name.
func ParseTemperature(name string) (Temperature, error) {
	return parse("temperature", name, Temperatures())
}

// IsValid reports whether u is one of the declared temperature scales.
func (u Temperature) IsValid() bool {
	return contains(Temperatures(), u)
}
