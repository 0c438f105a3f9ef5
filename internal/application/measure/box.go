package measure

import (
	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/domain/entity"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// defaultWeightUnit applies to request weights given without a unit.
const defaultWeightUnit = unit.Kilogram

// BuildBox creates a Box from a request. Without a weight the box weight is
// estimated from its surface area.
func BuildBox(req dto.BoxRequest) (entity.Box, error) {
	l, w, h, err := lengths(req.Unit, req.Length, req.Width, req.Height)
	if err != nil {
		return entity.Box{}, err
	}

	var opts []entity.BoxOption
	if req.Weight != nil {
		weight, err := parseWeight(*req.Weight, req.WeightUnit)
		if err != nil {
			return entity.Box{}, err
		}
		opts = append(opts, entity.WithWeight(weight))
	}
	return entity.NewBox(l, w, h, opts...)
}

// DescribeBox builds the box of req and reports its derived geometry.
//
// Returns:
//   - dto.BoxReport: dimensions, inner dimensions, weight, volume and surface area
//   - error: unit.ErrUnknownUnit or entity.ErrInvalidDimension
func DescribeBox(req dto.BoxRequest) (dto.BoxReport, error) {
	box, err := BuildBox(req)
	if err != nil {
		return dto.BoxReport{}, err
	}
	return dto.BoxReport{
		Length:                  toResponse[valueobject.Length, unit.Length](box.Length()),
		Width:                   toResponse[valueobject.Length, unit.Length](box.Width()),
		Height:                  toResponse[valueobject.Length, unit.Length](box.Height()),
		InnerLength:             toResponse[valueobject.Length, unit.Length](box.InnerLength()),
		InnerWidth:              toResponse[valueobject.Length, unit.Length](box.InnerWidth()),
		InnerHeight:             toResponse[valueobject.Length, unit.Length](box.InnerHeight()),
		Weight:                  toResponse[valueobject.Weight, unit.Weight](box.Weight()),
		MaxDimension:            toResponse[valueobject.Length, unit.Length](box.MaxDimension()),
		VolumeCubicMeters:       box.Volume(),
		SurfaceAreaSquareMeters: box.SurfaceArea(),
	}, nil
}

func lengths(unitName string, length, width, height float64) (l, w, h valueobject.Length, err error) {
	if l, err = valueobject.ParseLength(length, unitName); err != nil {
		return
	}
	if w, err = valueobject.ParseLength(width, unitName); err != nil {
		return
	}
	h, err = valueobject.ParseLength(height, unitName)
	return
}

func parseWeight(value float64, unitName string) (valueobject.Weight, error) {
	if unitName == "" {
		return valueobject.NewWeight(value, defaultWeightUnit)
	}
	return valueobject.ParseWeight(value, unitName)
}
