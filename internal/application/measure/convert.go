// Package measure implements the use cases behind the command line:
// converting a single quantity, describing a box and running a packing job
// described by a request document.
package measure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// ErrUnknownDimension is returned when a dimension name is not supported.
var ErrUnknownDimension = errors.New("unknown dimension")

// Dimension names a physical dimension accepted by Convert.
type Dimension string

const (
	DimensionLength      Dimension = "length"
	DimensionWeight      Dimension = "weight"
	DimensionArea        Dimension = "area"
	DimensionVolume      Dimension = "volume"
	DimensionPressure    Dimension = "pressure"
	DimensionSpeed       Dimension = "speed"
	DimensionTemperature Dimension = "temperature"
	DimensionDataStorage Dimension = "data_storage"
)

// Dimensions returns every supported dimension.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionLength, DimensionWeight, DimensionArea, DimensionVolume,
		DimensionPressure, DimensionSpeed, DimensionTemperature, DimensionDataStorage,
	}
}

// ParseDimension parses a dimension name. Matching ignores case, and "-" is
// accepted in place of "_".
func ParseDimension(name string) (Dimension, error) {
	d := Dimension(strings.ReplaceAll(strings.ToLower(name), "-", "_"))
	for _, known := range Dimensions() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// Units returns the unit names of the dimension.
func (d Dimension) Units() []string {
	switch d {
	case DimensionLength:
		return unit.Names(unit.Lengths())
	case DimensionWeight:
		return unit.Names(unit.Weights())
	case DimensionArea:
		return unit.Names(unit.Areas())
	case DimensionVolume:
		return unit.Names(unit.Volumes())
	case DimensionPressure:
		return unit.Names(unit.Pressures())
	case DimensionSpeed:
		return unit.Names(unit.Speeds())
	case DimensionTemperature:
		return unit.Names(unit.Temperatures())
	case DimensionDataStorage:
		return unit.Names(unit.DataStorages())
	}
	return nil
}

// quantity is the read side shared by every value object.
type quantity[U ~string] interface {
	Value() float64
	Unit() U
}

func convertWith[Q quantity[U], U ~string](
	value float64, from, to string,
	parse func(float64, string) (Q, error),
	parseUnit func(string) (U, error),
	convertTo func(Q, U) (Q, error),
) (dto.QuantityResponse, dto.QuantityResponse, error) {
	source, err := parse(value, from)
	if err != nil {
		return dto.QuantityResponse{}, dto.QuantityResponse{}, err
	}
	target, err := parseUnit(to)
	if err != nil {
		return dto.QuantityResponse{}, dto.QuantityResponse{}, err
	}
	converted, err := convertTo(source, target)
	if err != nil {
		return dto.QuantityResponse{}, dto.QuantityResponse{}, err
	}
	return toResponse[Q, U](source), toResponse[Q, U](converted), nil
}

func toResponse[Q quantity[U], U ~string](q Q) dto.QuantityResponse {
	return dto.QuantityResponse{Value: q.Value(), Unit: string(q.Unit())}
}

// Convert converts value from one unit to another within a dimension.
//
// Parameters:
//   - dimension: a dimension name, see ParseDimension
//   - value: the magnitude in the from unit
//   - from, to: canonical unit names (e.g. "METER", "INCH")
//
// Returns:
//   - dto.ConversionResponse: the source and converted quantities
//   - error: ErrUnknownDimension, unit.ErrUnknownUnit or conversion.ErrUnsupportedConversion
func Convert(dimension string, value float64, from, to string) (dto.ConversionResponse, error) {
	d, err := ParseDimension(dimension)
	if err != nil {
		return dto.ConversionResponse{}, err
	}

	var src, dst dto.QuantityResponse
	switch d {
	case DimensionLength:
		src, dst, err = convertWith(value, from, to, valueobject.ParseLength, unit.ParseLength, valueobject.Length.ConvertTo)
	case DimensionWeight:
		src, dst, err = convertWith(value, from, to, valueobject.ParseWeight, unit.ParseWeight, valueobject.Weight.ConvertTo)
	case DimensionArea:
		src, dst, err = convertWith(value, from, to, valueobject.ParseArea, unit.ParseArea, valueobject.Area.ConvertTo)
	case DimensionVolume:
		src, dst, err = convertWith(value, from, to, valueobject.ParseVolume, unit.ParseVolume, valueobject.Volume.ConvertTo)
	case DimensionPressure:
		src, dst, err = convertWith(value, from, to, valueobject.ParsePressure, unit.ParsePressure, valueobject.Pressure.ConvertTo)
	case DimensionSpeed:
		src, dst, err = convertWith(value, from, to, valueobject.ParseSpeed, unit.ParseSpeed, valueobject.Speed.ConvertTo)
	case DimensionTemperature:
		src, dst, err = convertWith(value, from, to, valueobject.ParseTemperature, unit.ParseTemperature, valueobject.Temperature.ConvertTo)
	case DimensionDataStorage:
		src, dst, err = convertWith(value, from, to, valueobject.ParseDataStorage, unit.ParseDataStorage, valueobject.DataStorage.ConvertTo)
	}
	if err != nil {
		return dto.ConversionResponse{}, err
	}
	return dto.ConversionResponse{Dimension: string(d), From: src, To: dst}, nil
}
