package entity

import (
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// Product is a physical good with box dimensions, a weight and an optional
// liquid content. The SKU identifies it; uniqueness is the caller's concern.
type Product struct {
	sku           string
	name          string
	dimensions    Box
	weight        valueobject.Weight
	liquidVolume  *valueobject.Volume
	referenceID   *int
	referenceType string
}

// ProductOption configures optional Product attributes.
type ProductOption func(*Product)

// WithLiquidVolume sets the liquid content of the product.
func WithLiquidVolume(v valueobject.Volume) ProductOption {
	return func(p *Product) { p.liquidVolume = &v }
}

// WithReference links the product to an external record, for example an
// order line, by id and type.
func WithReference(id int, referenceType string) ProductOption {
	return func(p *Product) {
		p.referenceID = &id
		p.referenceType = referenceType
	}
}

// NewProduct creates a new Product entity.
//
// Parameters:
//   - sku: Stock Keeping Unit identifier (required)
//   - name: display name
//   - dimensions: the product's box dimensions
//   - weight: the product's own weight
//   - opts: optional liquid volume and external reference
//
// Returns:
//   - *Product: newly created Product
//   - error: ErrInvalidProductSKU if sku is empty
func NewProduct(sku, name string, dimensions Box, weight valueobject.Weight, opts ...ProductOption) (*Product, error) {
	if sku == "" {
		return nil, ErrInvalidProductSKU
	}

	p := &Product{
		sku:        sku,
		name:       name,
		dimensions: dimensions,
		weight:     weight,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewProductInUnits creates a Product from plain magnitudes sharing one
// length unit and one weight unit.
func NewProductInUnits(
	sku, name string,
	lengthUnit unit.Length,
	weightUnit unit.Weight,
	length, width, height, weight float64,
	opts ...ProductOption,
) (*Product, error) {
	box, err := boxFromMagnitudes(lengthUnit, length, width, height)
	if err != nil {
		return nil, err
	}
	w, err := valueobject.NewWeight(weight, weightUnit)
	if err != nil {
		return nil, err
	}
	return NewProduct(sku, name, box, w, opts...)
}

// NewMetricProduct creates a Product measured in centimeters and kilograms.
func NewMetricProduct(sku, name string, lengthCm, widthCm, heightCm, weightKg float64, opts ...ProductOption) (*Product, error) {
	return NewProductInUnits(sku, name, unit.Centimeter, unit.Kilogram, lengthCm, widthCm, heightCm, weightKg, opts...)
}

// NewImperialProduct creates a Product measured in inches and pounds.
func NewImperialProduct(sku, name string, lengthIn, widthIn, heightIn, weightLb float64, opts ...ProductOption) (*Product, error) {
	return NewProductInUnits(sku, name, unit.Inch, unit.Pound, lengthIn, widthIn, heightIn, weightLb, opts...)
}

func boxFromMagnitudes(u unit.Length, length, width, height float64) (Box, error) {
	l, err := valueobject.NewLength(length, u)
	if err != nil {
		return Box{}, err
	}
	return NewBox(l, valueobject.MustNewLength(width, u), valueobject.MustNewLength(height, u))
}

func (p *Product) SKU() string  { return p.sku }
func (p *Product) Name() string { return p.name }

// Dimensions returns the product's box dimensions.
func (p *Product) Dimensions() Box { return p.dimensions }

// Weight returns the product's own weight.
func (p *Product) Weight() valueobject.Weight { return p.weight }

// LiquidVolume returns the liquid content and whether one was set.
func (p *Product) LiquidVolume() (valueobject.Volume, bool) {
	if p.liquidVolume == nil {
		return valueobject.Volume{}, false
	}
	return *p.liquidVolume, true
}

// Reference returns the external reference id and type, and whether one was set.
func (p *Product) Reference() (id int, referenceType string, ok bool) {
	if p.referenceID == nil {
		return 0, "", false
	}
	return *p.referenceID, p.referenceType, true
}

// WeightInGrams returns the product weight converted to grams.
func (p *Product) WeightInGrams() (valueobject.Weight, error) {
	return p.weight.ToGrams()
}

// DimensionsInCentimeters returns the product's box with every dimension in centimeters.
func (p *Product) DimensionsInCentimeters() (Box, error) {
	return p.dimensions.InCentimeters()
}

// Density returns the product density in kilograms per cubic meter.
//
// Returns:
//   - float64: density in kg/m³
//   - error: ErrInvalidState if any dimension is zero
func (p *Product) Density() (float64, error) {
	return Density(p)
}
