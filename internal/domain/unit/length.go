package unit

// Length is a unit of distance.
type Length string

// Supported length units.
const (
	Inch       Length = "INCH"       // One twelfth of a foot
	Centimeter Length = "CENTIMETER" // One hundredth of a meter
	Meter      Length = "METER"      // Base unit of length
	Kilometer  Length = "KILOMETER"  // One thousand meters
	Foot       Length = "FOOT"       // Twelve inches
	Yard       Length = "YARD"       // Three feet
	Mile       Length = "MILE"       // 5280 feet
	Millimeter Length = "MILLIMETER" // One thousandth of a meter
	Micrometer Length = "MICROMETER" // One millionth of a meter
	Nanometer  Length = "NANOMETER"  // One billionth of a meter
	Decimeter  Length = "DECIMETER"  // One tenth of a meter
)

// Lengths returns every length unit in declaration order.
func Lengths() []Length {
	return []Length{Inch, Centimeter, Meter, Kilometer, Foot, Yard, Mile, Millimeter, Micrometer, Nanometer, Decimeter}
}

// ParseLength returns the length unit with the given name.
//
// Parameters:
//   - name: the exact unit name (e.g., "METER")
//
// Returns:
//   - Length: the matching unit
//   - error: ErrUnknownUnit if no unit has that name
func ParseLength(name string) (Length, error) {
	return parse("length", name, Lengths())
}

// IsValid reports whether u is one of the declared length units.
func (u Length) IsValid() bool {
	return contains(Lengths(), u)
}
