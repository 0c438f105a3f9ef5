package entity

import (
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// FulfilledBox is a box filled by a packing run: its dimensions, the total
// weight of box and contents, and the products inside. The item list is a
// private copy; changing the slice passed in or returned does not affect it.
type FulfilledBox struct {
	dimensions  Box
	totalWeight valueobject.Weight
	items       []*Product
}

// NewFulfilledBox creates a FulfilledBox holding a copy of items.
func NewFulfilledBox(dimensions Box, totalWeight valueobject.Weight, items ...*Product) FulfilledBox {
	return FulfilledBox{
		dimensions:  dimensions,
		totalWeight: totalWeight,
		items:       append([]*Product(nil), items...),
	}
}

// NewMetricFulfilledBox creates an empty FulfilledBox measured in centimeters and kilograms.
func NewMetricFulfilledBox(lengthCm, widthCm, heightCm, weightKg float64) (FulfilledBox, error) {
	return fulfilledBoxInUnits(unit.Centimeter, unit.Kilogram, lengthCm, widthCm, heightCm, weightKg)
}

// NewImperialFulfilledBox creates an empty FulfilledBox measured in inches and pounds.
func NewImperialFulfilledBox(lengthIn, widthIn, heightIn, weightLb float64) (FulfilledBox, error) {
	return fulfilledBoxInUnits(unit.Inch, unit.Pound, lengthIn, widthIn, heightIn, weightLb)
}

func fulfilledBoxInUnits(lu unit.Length, wu unit.Weight, length, width, height, weight float64) (FulfilledBox, error) {
	box, err := boxFromMagnitudes(lu, length, width, height)
	if err != nil {
		return FulfilledBox{}, err
	}
	w, err := valueobject.NewWeight(weight, wu)
	if err != nil {
		return FulfilledBox{}, err
	}
	return NewFulfilledBox(box, w), nil
}

// Dimensions returns the box the items were packed into.
func (fb FulfilledBox) Dimensions() Box { return fb.dimensions }

// Weight returns the total weight of the box and its contents.
func (fb FulfilledBox) Weight() valueobject.Weight { return fb.totalWeight }

// Items returns a copy of the packed products.
func (fb FulfilledBox) Items() []*Product {
	return append([]*Product(nil), fb.items...)
}

// Len returns the number of packed products.
func (fb FulfilledBox) Len() int { return len(fb.items) }

// Density returns the average density of the filled box in kg/m³.
func (fb FulfilledBox) Density() (float64, error) {
	return Density(fb)
}
