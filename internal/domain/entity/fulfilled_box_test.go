package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

func TestFulfilledBoxItemsAreASnapshot(t *testing.T) {
	a, err := NewMetricProduct("A", "Item A", 5, 5, 5, 0.1)
	require.NoError(t, err)
	b, err := NewMetricProduct("B", "Item B", 5, 5, 5, 0.2)
	require.NoError(t, err)
	box, err := NewBox(centimeters(20), centimeters(20), centimeters(20))
	require.NoError(t, err)

	items := []*Product{a, b}
	fb := NewFulfilledBox(box, kilograms(0.5), items...)

	items[0] = b
	assert.Equal(t, "A", fb.Items()[0].SKU())

	got := fb.Items()
	got[1] = a
	assert.Equal(t, "B", fb.Items()[1].SKU())
	assert.Equal(t, 2, fb.Len())
}

func TestFulfilledBoxFactories(t *testing.T) {
	metric, err := NewMetricFulfilledBox(40, 30, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, unit.Centimeter, metric.Dimensions().Length().Unit())
	assert.Equal(t, "3 KILOGRAM", metric.Weight().String())
	assert.Zero(t, metric.Len())

	imperial, err := NewImperialFulfilledBox(16, 12, 8, 6.5)
	require.NoError(t, err)
	assert.Equal(t, unit.Inch, imperial.Dimensions().Height().Unit())
	assert.Equal(t, "6.5 POUND", imperial.Weight().String())
}
