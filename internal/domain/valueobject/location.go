package valueobject

import (
	"fmt"
	"strconv"
)

// Location represents geographic coordinates in decimal degrees with an
// optional altitude above sea level.
type Location struct {
	// Latitude in decimal degrees, within [-90, 90].
	Latitude float64 `json:"latitude"`

	// Longitude in decimal degrees, within [-180, 180].
	Longitude float64 `json:"longitude"`

	altitude *Length
}

// NewLocation creates a new Location value object.
//
// Parameters:
//   - latitude: decimal degrees, -90 to 90 inclusive
//   - longitude: decimal degrees, -180 to 180 inclusive
//
// Returns:
//   - Location: new Location without altitude
//   - error: ErrInvalidDimension if a coordinate is out of range
func NewLocation(latitude, longitude float64) (Location, error) {
	if latitude < -90 || latitude > 90 {
		return Location{}, fmt.Errorf("%w: latitude %v must be between -90 and 90 degrees", ErrInvalidDimension, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Location{}, fmt.Errorf("%w: longitude %v must be between -180 and 180 degrees", ErrInvalidDimension, longitude)
	}
	return Location{Latitude: latitude, Longitude: longitude}, nil
}

// WithAltitude returns a copy of the location carrying the given altitude.
func (l Location) WithAltitude(altitude Length) Location {
	l.altitude = &altitude
	return l
}

// Altitude returns the altitude and whether one was set.
func (l Location) Altitude() (Length, bool) {
	if l.altitude == nil {
		return Length{}, false
	}
	return *l.altitude, true
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted coordinates (e.g., "Lat: 45.46, Lon: 9.19, Alt: 120 METER")
func (l Location) String() string {
	s := "Lat: " + strconv.FormatFloat(l.Latitude, 'f', -1, 64) +
		", Lon: " + strconv.FormatFloat(l.Longitude, 'f', -1, 64)
	if l.altitude != nil {
		s += ", Alt: " + l.altitude.String()
	}
	return s
}
