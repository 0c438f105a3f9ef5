package unit

// Weight is a unit of mass.
type Weight string

// Supported weight units.
const (
	Milligram       Weight = "MILLIGRAM"
	Gram            Weight = "GRAM"             // One thousandth of a kilogram
	Kilogram        Weight = "KILOGRAM"         // Metric unit of mass
	Ounce           Weight = "OUNCE"            // One sixteenth of a pound
	Pound           Weight = "POUND"            // Imperial unit of weight
	Ton             Weight = "TON"              // Metric ton, 1000 kilograms
	Stone           Weight = "STONE"            // Fourteen pounds
	Microgram       Weight = "MICROGRAM"        // One millionth of a gram
	Nanogram        Weight = "NANOGRAM"         // One billionth of a gram
	HundredthsPound Weight = "HUNDREDTHS_POUND" // One hundredth of a pound
)

// Weights returns every weight unit in declaration order.
func Weights() []Weight {
	return []Weight{Milligram, Gram, Kilogram, Ounce, Pound, Ton, Stone, Microgram, Nanogram, HundredthsPound}
}

// ParseWeight returns the weight unit with the given name.
func ParseWeight(name string) (Weight, error) {
	return parse("weight", name, Weights())
}

// IsValid reports whether u is one of the declared weight units.
func (u Weight) IsValid() bool {
	return contains(Weights(), u)
}
