package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

func meters(v float64) valueobject.Length      { return valueobject.MustNewLength(v, unit.Meter) }
func centimeters(v float64) valueobject.Length { return valueobject.MustNewLength(v, unit.Centimeter) }
func kilograms(v float64) valueobject.Weight   { return valueobject.MustNewWeight(v, unit.Kilogram) }

func TestBoxVolumeAndSurfaceArea(t *testing.T) {
	box, err := NewBox(meters(2), meters(1), meters(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, box.Volume(), 1e-12)

	box, err = NewBox(meters(2), meters(1), meters(3))
	require.NoError(t, err)
	assert.InDelta(t, 22.0, box.SurfaceArea(), 1e-12)

	cm3, err := box.VolumeIn(unit.Centimeter)
	require.NoError(t, err)
	assert.InDelta(t, 6_000_000, cm3, 1e-6)

	cm2, err := box.SurfaceAreaIn(unit.Centimeter)
	require.NoError(t, err)
	assert.InDelta(t, 220_000, cm2, 1e-6)

	_, err = box.VolumeIn(unit.Length("CUBIT"))
	require.ErrorIs(t, err, conversion.ErrUnsupportedConversion)
}

func TestBoxMaxDimension(t *testing.T) {
	t.Run("ok/mixed units compare in meters", func(t *testing.T) {
		box, err := NewBox(
			centimeters(10),
			meters(0.5),
			valueobject.MustNewLength(400, unit.Millimeter),
		)
		require.NoError(t, err)

		got := box.MaxDimension()
		assert.True(t, got.Equals(meters(0.5)), "got %s", got)

		cm, err := box.MaxDimensionIn(unit.Centimeter)
		require.NoError(t, err)
		assert.InDelta(t, 50, cm.Value(), 1e-9)
		assert.Equal(t, unit.Centimeter, cm.Unit())
	})

	t.Run("ok/tie keeps the first dimension", func(t *testing.T) {
		box, err := NewBox(meters(1), centimeters(100), meters(0.5))
		require.NoError(t, err)

		got := box.MaxDimension()
		assert.Equal(t, unit.Meter, got.Unit())
		assert.Equal(t, 1.0, got.Value())
	})

	t.Run("ok/same unit is returned untouched", func(t *testing.T) {
		box, err := NewBox(centimeters(10), centimeters(30), centimeters(20))
		require.NoError(t, err)

		got, err := box.MaxDimensionIn(unit.Centimeter)
		require.NoError(t, err)
		assert.True(t, got.Equals(centimeters(30)))
	})
}

func TestNewBoxInnerDimensions(t *testing.T) {
	tests := []struct {
		name      string
		opts      []BoxOption
		wantErr   error
		wantInner float64
	}{
		{
			name:      "ok/derived from outer",
			wantInner: 9,
		},
		{
			name:      "ok/supplied smaller",
			opts:      []BoxOption{WithInnerLength(centimeters(8.5))},
			wantInner: 8.5,
		},
		{
			name:      "ok/supplied in another unit",
			opts:      []BoxOption{WithInnerLength(valueobject.MustNewLength(95, unit.Millimeter))},
			wantInner: 95,
		},
		{
			name:    "validation/supplied equal to outer",
			opts:    []BoxOption{WithInnerLength(centimeters(10))},
			wantErr: ErrInvalidDimension,
		},
		{
			name:    "validation/supplied larger than outer",
			opts:    []BoxOption{WithInnerLength(meters(1))},
			wantErr: ErrInvalidDimension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, err := NewBox(centimeters(10), centimeters(20), centimeters(5), tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantInner, box.InnerLength().Value(), 1e-9)
			assert.InDelta(t, 19, box.InnerWidth().Value(), 1e-9)
			assert.InDelta(t, 4, box.InnerHeight().Value(), 1e-9)
		})
	}
}

func TestNewBoxDerivedInnerIsCentimetersAndClamped(t *testing.T) {
	box, err := NewBox(meters(1), valueobject.MustNewLength(5, unit.Millimeter), centimeters(0))
	require.NoError(t, err)

	assert.Equal(t, unit.Centimeter, box.InnerLength().Unit())
	assert.InDelta(t, 99, box.InnerLength().Value(), 1e-9)
	assert.Equal(t, 0.0, box.InnerWidth().Value())
	assert.Equal(t, 0.0, box.InnerHeight().Value())
}

func TestNewBoxWithInnerDimensions(t *testing.T) {
	_, err := NewBox(centimeters(10), centimeters(10), centimeters(10),
		WithInnerDimensions(centimeters(9), centimeters(9), centimeters(10)))
	require.ErrorIs(t, err, ErrInvalidDimension)
	assert.Contains(t, err.Error(), "height")
}

func TestNewBoxWeight(t *testing.T) {
	t.Run("ok/estimated from surface area", func(t *testing.T) {
		box, err := NewBox(meters(1), meters(1), meters(1))
		require.NoError(t, err)
		assert.Equal(t, unit.Kilogram, box.Weight().Unit())
		assert.InDelta(t, 3.6, box.Weight().Value(), 1e-9)
	})

	t.Run("ok/estimated from centimeters", func(t *testing.T) {
		box, err := NewBox(centimeters(50), centimeters(40), centimeters(30))
		require.NoError(t, err)
		// 2(0.2 + 0.15 + 0.12) m² × 0.6
		assert.InDelta(t, 0.564, box.Weight().Value(), 1e-9)
	})

	t.Run("ok/supplied", func(t *testing.T) {
		box, err := NewBox(meters(1), meters(1), meters(1), WithWeight(valueobject.MustNewWeight(2, unit.Pound)))
		require.NoError(t, err)
		assert.True(t, box.Weight().Equals(valueobject.MustNewWeight(2, unit.Pound)))
	})
}

func TestNewBoxEmptyFlag(t *testing.T) {
	box, err := NewBox(meters(1), meters(1), meters(1))
	require.NoError(t, err)
	assert.True(t, box.IsEmpty())

	box, err = NewBox(meters(1), meters(1), meters(1), WithEmpty(false))
	require.NoError(t, err)
	assert.False(t, box.IsEmpty())
}

func TestNewBoxRejectsInvalidOuterUnit(t *testing.T) {
	_, err := NewBox(valueobject.Length{}, meters(1), meters(1))
	require.ErrorIs(t, err, conversion.ErrUnsupportedConversion)
}

func TestBoxInCentimeters(t *testing.T) {
	in := func(v float64) valueobject.Length { return valueobject.MustNewLength(v, unit.Inch) }

	box, err := NewBox(in(10), in(20), in(5), WithWeight(kilograms(1)))
	require.NoError(t, err)

	cm, err := box.InCentimeters()
	require.NoError(t, err)

	assert.InDelta(t, 25.4, cm.Length().Value(), 1e-9)
	assert.InDelta(t, 50.8, cm.Width().Value(), 1e-9)
	assert.InDelta(t, 12.7, cm.Height().Value(), 1e-9)
	assert.Equal(t, unit.Centimeter, cm.Height().Unit())
	assert.InDelta(t, 24.4, cm.InnerLength().Value(), 1e-9)
	assert.True(t, cm.Weight().Equals(kilograms(1)))
	assert.InDelta(t, box.Volume(), cm.Volume(), 1e-12)

	assert.Equal(t, unit.Inch, box.Length().Unit(), "receiver must not change")
}

func TestBoxString(t *testing.T) {
	box, err := NewBox(centimeters(30), centimeters(20), centimeters(10))
	require.NoError(t, err)
	assert.Equal(t, "30 CENTIMETER x 20 CENTIMETER x 10 CENTIMETER", box.String())
}
