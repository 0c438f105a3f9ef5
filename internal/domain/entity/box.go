package entity

import (
	"fmt"

	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

const (
	// cardboardKilogramsPerSquareMeter estimates the empty weight of a box
	// from its outer surface when no weight is given.
	cardboardKilogramsPerSquareMeter = 0.6

	// wallThicknessCentimeters is subtracted from each outer dimension to
	// derive a missing inner dimension.
	wallThicknessCentimeters = 1.0
)

// Box is the geometric model of a container: outer and inner length, width
// and height, plus the weight of the box itself. A Box is immutable once built.
//
// The zero Box has no dimensions and a volume of zero.
type Box struct {
	length, width, height                valueobject.Length
	innerLength, innerWidth, innerHeight valueobject.Length
	weight                               valueobject.Weight
	empty                                bool

	// outer dimensions in meters, in length, width, height order
	meters [3]float64
}

type boxOptions struct {
	weight      *valueobject.Weight
	innerLength *valueobject.Length
	innerWidth  *valueobject.Length
	innerHeight *valueobject.Length
	empty       bool
}

// BoxOption configures optional Box attributes.
type BoxOption func(*boxOptions)

// WithWeight sets the weight of the box itself.
// Without it the weight is estimated from the outer surface area.
func WithWeight(w valueobject.Weight) BoxOption {
	return func(o *boxOptions) { o.weight = &w }
}

// WithInnerLength sets the inner length. It must be smaller than the outer length.
func WithInnerLength(l valueobject.Length) BoxOption {
	return func(o *boxOptions) { o.innerLength = &l }
}

// WithInnerWidth sets the inner width. It must be smaller than the outer width.
func WithInnerWidth(w valueobject.Length) BoxOption {
	return func(o *boxOptions) { o.innerWidth = &w }
}

// WithInnerHeight sets the inner height. It must be smaller than the outer height.
func WithInnerHeight(h valueobject.Length) BoxOption {
	return func(o *boxOptions) { o.innerHeight = &h }
}

// WithInnerDimensions sets all three inner dimensions at once.
func WithInnerDimensions(length, width, height valueobject.Length) BoxOption {
	return func(o *boxOptions) {
		o.innerLength = &length
		o.innerWidth = &width
		o.innerHeight = &height
	}
}

// WithEmpty marks whether the box is empty. Boxes are empty by default.
func WithEmpty(empty bool) BoxOption {
	return func(o *boxOptions) { o.empty = empty }
}

// NewBox creates a new Box from its outer dimensions.
//
// Missing attributes are derived at construction:
//   - weight: outer surface area in square meters × 0.6, in KILOGRAM
//   - each inner dimension: max(0, outer in centimeters − 1), in CENTIMETER
//
// Parameters:
//   - length, width, height: outer dimensions, in any length units
//   - opts: optional weight, inner dimensions and empty flag
//
// Returns:
//   - Box: the created Box
//   - error: ErrInvalidDimension if a supplied inner dimension is not strictly
//     smaller than its outer counterpart once both are in centimeters
func NewBox(length, width, height valueobject.Length, opts ...BoxOption) (Box, error) {
	o := boxOptions{empty: true}
	for _, opt := range opts {
		opt(&o)
	}

	b := Box{length: length, width: width, height: height, empty: o.empty}
	for i, l := range [3]valueobject.Length{length, width, height} {
		m, err := l.ToMeters()
		if err != nil {
			return Box{}, fmt.Errorf("box outer dimension: %w", err)
		}
		b.meters[i] = m.Value()
	}

	if o.weight != nil {
		b.weight = *o.weight
	} else {
		b.weight = valueobject.MustNewWeight(b.SurfaceArea()*cardboardKilogramsPerSquareMeter, unit.Kilogram)
	}

	var err error
	if b.innerLength, err = innerDimension("length", length, o.innerLength); err != nil {
		return Box{}, err
	}
	if b.innerWidth, err = innerDimension("width", width, o.innerWidth); err != nil {
		return Box{}, err
	}
	if b.innerHeight, err = innerDimension("height", height, o.innerHeight); err != nil {
		return Box{}, err
	}
	return b, nil
}

// innerDimension validates a supplied inner dimension or derives a missing one.
func innerDimension(axis string, outer valueobject.Length, inner *valueobject.Length) (valueobject.Length, error) {
	outerCm, err := outer.ToCentimeters()
	if err != nil {
		return valueobject.Length{}, fmt.Errorf("box outer %s: %w", axis, err)
	}

	if inner == nil {
		return valueobject.MustNewLength(max(0, outerCm.Value()-wallThicknessCentimeters), unit.Centimeter), nil
	}

	innerCm, err := inner.ToCentimeters()
	if err != nil {
		return valueobject.Length{}, fmt.Errorf("box inner %s: %w", axis, err)
	}
	if innerCm.Value() >= outerCm.Value() {
		return valueobject.Length{}, fmt.Errorf("%w: inner %s %s must be smaller than outer %s %s",
			ErrInvalidDimension, axis, *inner, axis, outer)
	}
	return *inner, nil
}

// Length returns the outer length as supplied.
func (b Box) Length() valueobject.Length { return b.length }

// Width returns the outer width as supplied.
func (b Box) Width() valueobject.Length { return b.width }

// Height returns the outer height as supplied.
func (b Box) Height() valueobject.Length { return b.height }

func (b Box) InnerLength() valueobject.Length { return b.innerLength }
func (b Box) InnerWidth() valueobject.Length  { return b.innerWidth }
func (b Box) InnerHeight() valueobject.Length { return b.innerHeight }

// Weight returns the weight of the box itself, supplied or estimated.
func (b Box) Weight() valueobject.Weight { return b.weight }

// IsEmpty reports whether the box was declared empty.
func (b Box) IsEmpty() bool { return b.empty }

// Volume returns the outer volume in cubic meters as a raw scalar.
func (b Box) Volume() float64 {
	return b.meters[0] * b.meters[1] * b.meters[2]
}

// VolumeIn returns the outer volume in cubic base units.
//
// Parameters:
//   - base: the length unit every dimension is converted to first
//
// Returns:
//   - float64: l × w × h in cubic base
//   - error: conversion.ErrUnsupportedConversion if base is not a length unit
func (b Box) VolumeIn(base unit.Length) (float64, error) {
	l, w, h, err := b.outerIn(base)
	if err != nil {
		return 0, err
	}
	return l * w * h, nil
}

// SurfaceArea returns the outer surface area in square meters.
func (b Box) SurfaceArea() float64 {
	return surfaceArea(b.meters[0], b.meters[1], b.meters[2])
}

// SurfaceAreaIn returns the outer surface area, 2(lw + lh + wh), in square base units.
func (b Box) SurfaceAreaIn(base unit.Length) (float64, error) {
	l, w, h, err := b.outerIn(base)
	if err != nil {
		return 0, err
	}
	return surfaceArea(l, w, h), nil
}

func surfaceArea(l, w, h float64) float64 {
	return 2 * (l*w + l*h + w*h)
}

// MaxDimension returns the largest outer dimension exactly as supplied.
// Dimensions are compared in meters, so mixed units are ordered correctly.
// On a tie the first of length, width, height wins.
func (b Box) MaxDimension() valueobject.Length {
	dims := [3]valueobject.Length{b.length, b.width, b.height}
	maxIdx := 0
	for i := 1; i < len(dims); i++ {
		if b.meters[i] > b.meters[maxIdx] {
			maxIdx = i
		}
	}
	return dims[maxIdx]
}

// MaxDimensionIn returns the largest outer dimension converted to target.
// No conversion happens when the dimension is already in target.
func (b Box) MaxDimensionIn(target unit.Length) (valueobject.Length, error) {
	d := b.MaxDimension()
	if d.Unit() == target {
		return d, nil
	}
	return d.ConvertTo(target)
}

// InCentimeters returns a copy of the box with every outer and inner
// dimension expressed in centimeters. Weight and empty flag are kept.
func (b Box) InCentimeters() (Box, error) {
	out := b
	dims := []struct {
		src *valueobject.Length
		dst *valueobject.Length
	}{
		{&b.length, &out.length},
		{&b.width, &out.width},
		{&b.height, &out.height},
		{&b.innerLength, &out.innerLength},
		{&b.innerWidth, &out.innerWidth},
		{&b.innerHeight, &out.innerHeight},
	}
	for _, d := range dims {
		cm, err := d.src.ToCentimeters()
		if err != nil {
			return Box{}, err
		}
		*d.dst = cm
	}
	return out, nil
}

func (b Box) outerIn(base unit.Length) (float64, float64, float64, error) {
	var out [3]float64
	for i, d := range [3]valueobject.Length{b.length, b.width, b.height} {
		c, err := d.ConvertTo(base)
		if err != nil {
			return 0, 0, 0, err
		}
		out[i] = c.Value()
	}
	return out[0], out[1], out[2], nil
}

// String returns a formatted string representation (e.g., "30 CENTIMETER x 20 CENTIMETER x 10 CENTIMETER").
func (b Box) String() string {
	return fmt.Sprintf("%s x %s x %s", b.length, b.width, b.height)
}
