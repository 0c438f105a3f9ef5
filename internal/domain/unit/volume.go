package unit

// Volume is a unit of liquid volume.
type Volume string

// Supported liquid volume units. Imperial units are US customary.
const (
	Milliliter Volume = "ML"
	Liter      Volume = "L"
	FluidOunce Volume = "FL_OZ"
	Gallon     Volume = "GAL"
	Pint       Volume = "PT"
	Quart      Volume = "QT"
	Cup        Volume = "C"
)

// Volumes returns every liquid volume unit in declaration order.
func Volumes() []Volume {
	return []Volume{Milliliter, Liter, FluidOunce, Gallon, Pint, Quart, Cup}
}

// ParseVolume returns the liquid volume unit with the given name.
func ParseVolume(name string) (Volume, error) {
	return parse("volume", name, Volumes())
}

// IsValid reports whether u is one of the declared volume units.
func (u Volume) IsValid() bool {
	return contains(Volumes(), u)
}
