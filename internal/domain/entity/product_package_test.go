package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

func newPackage(t *testing.T, productKg, totalKg float64, opts ...PackageOption) *ProductPackage {
	t.Helper()

	product, err := NewMetricProduct("SKU-1", "Lamp", 10, 20, 5, productKg)
	require.NoError(t, err)
	box, err := NewBox(centimeters(15), centimeters(25), centimeters(10))
	require.NoError(t, err)

	pp, err := NewProductPackage(product, box, kilograms(totalKg), opts...)
	require.NoError(t, err)
	return pp
}

func TestCalculatePackagingWeight(t *testing.T) {
	t.Run("ok/difference in total weight unit", func(t *testing.T) {
		w, ok, err := newPackage(t, 0.5, 0.7).CalculatePackagingWeight()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, unit.Kilogram, w.Unit())
		assert.InDelta(t, 0.2, w.Value(), 1e-9)
	})

	t.Run("ok/requested in grams", func(t *testing.T) {
		w, ok, err := newPackage(t, 0.5, 0.7).CalculatePackagingWeightIn(unit.Gram)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, unit.Gram, w.Unit())
		assert.InDelta(t, 200, w.Value(), 1e-9)
	})

	t.Run("ok/mixed units", func(t *testing.T) {
		product, err := NewImperialProduct("SKU-2", "Kettle", 5, 5, 5, 1)
		require.NoError(t, err)
		pp, err := NewProductPackage(product, product.Dimensions(), valueobject.MustNewWeight(500, unit.Gram))
		require.NoError(t, err)

		w, ok, err := pp.CalculatePackagingWeight()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, unit.Gram, w.Unit())
		assert.InDelta(t, 46.408, w.Value(), 1e-6)
	})

	t.Run("ok/product heavier than total is absent", func(t *testing.T) {
		w, ok, err := newPackage(t, 1.0, 0.7).CalculatePackagingWeight()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, valueobject.Weight{}, w)
	})

	t.Run("ok/equal weights give zero", func(t *testing.T) {
		w, ok, err := newPackage(t, 0.7, 0.7).CalculatePackagingWeight()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, w.IsZero())
	})
}

func TestPackagingWeight(t *testing.T) {
	t.Run("ok/explicit weight wins", func(t *testing.T) {
		pp := newPackage(t, 0.5, 0.7, WithEmptyPackageWeight(valueobject.MustNewWeight(150, unit.Gram)))

		w, ok, err := pp.PackagingWeight()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "150 GRAM", w.String())

		kg, ok, err := pp.PackagingWeightIn(unit.Kilogram)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, 0.15, kg.Value(), 1e-12)

		same, ok, err := pp.PackagingWeightIn(unit.Gram)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 150.0, same.Value())
	})

	t.Run("ok/delegates when no explicit weight", func(t *testing.T) {
		pp := newPackage(t, 0.5, 0.7)

		w, ok, err := pp.PackagingWeightIn(unit.Gram)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, 200, w.Value(), 1e-9)

		_, ok = pp.EmptyPackageWeight()
		assert.False(t, ok)
	})

	t.Run("ok/delegated absence propagates", func(t *testing.T) {
		_, ok, err := newPackage(t, 1.0, 0.7).PackagingWeight()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNewProductPackageRequiresProduct(t *testing.T) {
	_, err := NewProductPackage(nil, Box{}, kilograms(1))
	require.ErrorIs(t, err, ErrNilProduct)
}
