package unit

// Area is a unit of surface.
type Area string

// Supported area units.
const (
	SquareMeter      Area = "SQ_METER"
	SquareKilometer  Area = "SQ_KILOMETER"
	SquareCentimeter Area = "SQ_CENTIMETER"
	SquareMillimeter Area = "SQ_MILLIMETER"
	SquareFoot       Area = "SQ_FOOT"
	SquareYard       Area = "SQ_YARD"
	SquareInch       Area = "SQ_INCH"
	SquareMile       Area = "SQ_MILE"
	Acre             Area = "ACRE"
	Hectare          Area = "HECTARE"
)

// Areas returns every area unit in declaration order.
func Areas() []Area {
	return []Area{
		SquareMeter, SquareKilometer, SquareCentimeter, SquareMillimeter, SquareFoot,
		SquareYard, SquareInch, SquareMile, Acre, Hectare,
	}
}

// ParseArea returns the area unit with the given name.
func ParseArea(name string) (Area, error) {
	return parse("area", name, Areas())
}

// IsValid reports whether u is one of the declared area units.
func (u Area) IsValid() bool {
	return contains(Areas(), u)
}
