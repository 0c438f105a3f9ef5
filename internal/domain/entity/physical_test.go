package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

func TestDensity(t *testing.T) {
	t.Run("ok/product", func(t *testing.T) {
		p, err := NewMetricProduct("SKU-1", "Mug", 10, 20, 5, 0.5)
		require.NoError(t, err)

		d, err := p.Density()
		require.NoError(t, err)
		assert.InDelta(t, 500, d, 1e-9)
	})

	t.Run("ok/weight in pounds is normalized", func(t *testing.T) {
		box, err := NewBox(meters(1), meters(1), meters(1))
		require.NoError(t, err)
		p, err := NewProduct("SKU-2", "Crate", box, valueobject.MustNewWeight(1, unit.Pound))
		require.NoError(t, err)

		d, err := Density(p)
		require.NoError(t, err)
		assert.InDelta(t, 0.453592, d, 1e-9)
	})

	t.Run("ok/fulfilled box", func(t *testing.T) {
		fb, err := NewMetricFulfilledBox(100, 100, 100, 12)
		require.NoError(t, err)

		d, err := fb.Density()
		require.NoError(t, err)
		assert.InDelta(t, 12, d, 1e-9)
	})

	t.Run("validation/zero axis", func(t *testing.T) {
		p, err := NewMetricProduct("SKU-3", "Sheet", 10, 20, 0, 0.5)
		require.NoError(t, err)

		_, err = p.Density()
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("validation/zero box", func(t *testing.T) {
		_, err := Density(NewFulfilledBox(Box{}, kilograms(1)))
		require.ErrorIs(t, err, ErrInvalidState)
	})
}
