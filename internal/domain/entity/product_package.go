package entity

import (
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// ProductPackage is a product as shipped: the product itself, the package
// around it and the total shipped weight. The product is referenced, not owned.
type ProductPackage struct {
	product            *Product
	packageDimensions  Box
	totalWeight        valueobject.Weight
	emptyPackageWeight *valueobject.Weight
}

// PackageOption configures optional ProductPackage attributes.
type PackageOption func(*ProductPackage)

// WithEmptyPackageWeight sets the known weight of the empty package, which
// then takes precedence over the derived packaging weight.
func WithEmptyPackageWeight(w valueobject.Weight) PackageOption {
	return func(pp *ProductPackage) { pp.emptyPackageWeight = &w }
}

// NewProductPackage creates a new ProductPackage.
//
// Parameters:
//   - product: the packaged product (required)
//   - packageDimensions: outer box of the package
//   - totalWeight: weight of product and package together
//   - opts: optional empty package weight
//
// Returns:
//   - *ProductPackage: the created package
//   - error: ErrNilProduct if product is nil
func NewProductPackage(product *Product, packageDimensions Box, totalWeight valueobject.Weight, opts ...PackageOption) (*ProductPackage, error) {
	if product == nil {
		return nil, ErrNilProduct
	}

	pp := &ProductPackage{
		product:           product,
		packageDimensions: packageDimensions,
		totalWeight:       totalWeight,
	}
	for _, opt := range opts {
		opt(pp)
	}
	return pp, nil
}

func (pp *ProductPackage) Product() *Product               { return pp.product }
func (pp *ProductPackage) PackageDimensions() Box          { return pp.packageDimensions }
func (pp *ProductPackage) TotalWeight() valueobject.Weight { return pp.totalWeight }

// EmptyPackageWeight returns the explicit empty package weight and whether one was set.
func (pp *ProductPackage) EmptyPackageWeight() (valueobject.Weight, bool) {
	if pp.emptyPackageWeight == nil {
		return valueobject.Weight{}, false
	}
	return *pp.emptyPackageWeight, true
}

// CalculatePackagingWeight derives the packaging weight as total weight minus
// product weight, expressed in the unit of the total weight.
//
// Returns:
//   - valueobject.Weight: the packaging weight
//   - bool: false when the product outweighs the total, so no packaging
//     weight can be derived
//   - error: a conversion error if either weight has an unsupported unit
func (pp *ProductPackage) CalculatePackagingWeight() (valueobject.Weight, bool, error) {
	return pp.CalculatePackagingWeightIn(pp.totalWeight.Unit())
}

// CalculatePackagingWeightIn is like CalculatePackagingWeight but returns the
// result in target. The subtraction itself always happens in kilograms.
func (pp *ProductPackage) CalculatePackagingWeightIn(target unit.Weight) (valueobject.Weight, bool, error) {
	totalKg, err := pp.totalWeight.ToKilograms()
	if err != nil {
		return valueobject.Weight{}, false, err
	}
	productKg, err := pp.product.Weight().ToKilograms()
	if err != nil {
		return valueobject.Weight{}, false, err
	}

	packagingKg, err := totalKg.Subtract(productKg)
	if err != nil {
		return valueobject.Weight{}, false, err
	}
	if packagingKg.IsNegative() {
		return valueobject.Weight{}, false, nil
	}

	if target == unit.Kilogram {
		return packagingKg, true, nil
	}
	converted, err := packagingKg.ConvertTo(target)
	if err != nil {
		return valueobject.Weight{}, false, err
	}
	return converted, true, nil
}

// PackagingWeight returns the explicit empty package weight when set,
// otherwise the derived one from CalculatePackagingWeight.
func (pp *ProductPackage) PackagingWeight() (valueobject.Weight, bool, error) {
	if pp.emptyPackageWeight != nil {
		return *pp.emptyPackageWeight, true, nil
	}
	return pp.CalculatePackagingWeight()
}

// PackagingWeightIn is like PackagingWeight but returns the result in target.
func (pp *ProductPackage) PackagingWeightIn(target unit.Weight) (valueobject.Weight, bool, error) {
	if pp.emptyPackageWeight == nil {
		return pp.CalculatePackagingWeightIn(target)
	}
	if pp.emptyPackageWeight.Unit() == target {
		return *pp.emptyPackageWeight, true, nil
	}
	converted, err := pp.emptyPackageWeight.ConvertTo(target)
	if err != nil {
		return valueobject.Weight{}, false, err
	}
	return converted, true, nil
}
