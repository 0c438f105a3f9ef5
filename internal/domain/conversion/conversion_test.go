package conversion

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

func TestLinearConversions(t *testing.T) {
	tests := []struct {
		name    string
		convert func() (float64, error)
		want    float64
		delta   float64
	}{
		{"ok/kilogram to pound", func() (float64, error) { return Weight(1, unit.Kilogram, unit.Pound) }, 2.20462, 1e-5},
		{"ok/pound to gram", func() (float64, error) { return Weight(1, unit.Pound, unit.Gram) }, 453.592, 1e-5},
		{"ok/ounce to kilogram", func() (float64, error) { return Weight(16, unit.Ounce, unit.Kilogram) }, 0.453592, 1e-5},
		{"ok/stone to hundredths pound", func() (float64, error) { return Weight(2, unit.Stone, unit.HundredthsPound) }, 2800, 1e-5},
		{"ok/meter to centimeter", func() (float64, error) { return Length(1.5, unit.Meter, unit.Centimeter) }, 150, 1e-9},
		{"ok/inch to centimeter", func() (float64, error) { return Length(10, unit.Inch, unit.Centimeter) }, 25.4, 1e-9},
		{"ok/gallon to liter", func() (float64, error) { return Volume(1, unit.Gallon, unit.Liter) }, 3.78541, 1e-9},
		{"ok/cup to fluid ounce", func() (float64, error) { return Volume(2, unit.Cup, unit.FluidOunce) }, 16, 1e-9},
		{"ok/square meter to acre", func() (float64, error) { return Area(10000, unit.SquareMeter, unit.Acre) }, 2.4710538, 1e-6},
		{"ok/hectare to square foot", func() (float64, error) { return Area(1, unit.Hectare, unit.SquareFoot) }, 107639.104167, 1e-3},
		{"ok/square yard to square inch", func() (float64, error) { return Area(1, unit.SquareYard, unit.SquareInch) }, 1296, 1e-2},
		{"ok/bar to psi", func() (float64, error) { return Pressure(1, unit.Bar, unit.PSI) }, 14.50377, 1e-4},
		{"ok/psi to kilopascal", func() (float64, error) { return Pressure(1, unit.PSI, unit.Kilopascal) }, 6.894757, 1e-4},
		{"ok/atmosphere to torr", func() (float64, error) { return Pressure(1, unit.Atmosphere, unit.Torr) }, 760, 1e-2},
		{"ok/torr to millibar", func() (float64, error) { return Pressure(750.06168, unit.Torr, unit.Millibar) }, 1000, 1e-3},
		{"ok/kilometer per hour to mile per hour", func() (float64, error) { return Speed(100, unit.KilometerPerHour, unit.MilePerHour) }, 62.1371, 1e-3},
		{"ok/mile per hour to knot", func() (float64, error) { return Speed(10, unit.MilePerHour, unit.Knot) }, 8.68976, 1e-4},
		{"ok/knot to foot per second", func() (float64, error) { return Speed(1, unit.Knot, unit.FootPerSecond) }, 1.68781, 1e-4},
		{"ok/zero stays zero", func() (float64, error) { return Length(0, unit.Mile, unit.Millimeter) }, 0, 0},
		{"ok/negative converts linearly", func() (float64, error) { return Length(-2, unit.Meter, unit.Centimeter) }, -200, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.convert()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestSelfConversionIsExact(t *testing.T) {
	const value = 10.123456789

	for _, u := range unit.Lengths() {
		got, err := Length(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
	for _, u := range unit.Weights() {
		got, err := Weight(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
	for _, u := range unit.Areas() {
		got, err := Area(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
	for _, u := range unit.Volumes() {
		got, err := Volume(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
	for _, u := range unit.Pressures() {
		got, err := Pressure(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
	for _, u := range unit.Speeds() {
		got, err := Speed(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
	for _, u := range unit.Temperatures() {
		got, err := Temperature(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
	for _, u := range unit.DataStorages() {
		got, err := DataStorage(value, u, u)
		require.NoError(t, err)
		assert.Equal(t, value, got, string(u))
	}
}

func assertRoundTrip[U ~string](t *testing.T, units []U, convert func(float64, U, U) (float64, error), tolerance float64) {
	t.Helper()

	const value = 37.5
	for _, from := range units {
		for _, to := range units {
			there, err := convert(value, from, to)
			require.NoError(t, err)
			back, err := convert(there, to, from)
			require.NoError(t, err)
			assert.InEpsilon(t, value, back, tolerance, "%s -> %s -> %s", from, to, from)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("length", func(t *testing.T) { assertRoundTrip(t, unit.Lengths(), Length, 1e-5) })
	t.Run("weight", func(t *testing.T) { assertRoundTrip(t, unit.Weights(), Weight, 1e-5) })
	t.Run("volume", func(t *testing.T) { assertRoundTrip(t, unit.Volumes(), Volume, 1e-5) })
	t.Run("area", func(t *testing.T) { assertRoundTrip(t, unit.Areas(), Area, 1e-9) })
	t.Run("pressure", func(t *testing.T) { assertRoundTrip(t, unit.Pressures(), Pressure, 1e-9) })
	t.Run("speed", func(t *testing.T) { assertRoundTrip(t, unit.Speeds(), Speed, 1e-9) })
	t.Run("temperature", func(t *testing.T) { assertRoundTrip(t, unit.Temperatures(), Temperature, 1e-9) })
	t.Run("data storage", func(t *testing.T) { assertRoundTrip(t, unit.DataStorages(), DataStorage, 1e-9) })
}

func TestTemperatureFixedPoints(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to unit.Temperature
		want     float64
	}{
		{"ok/freezing celsius to fahrenheit", 0, unit.Celsius, unit.Fahrenheit, 32},
		{"ok/boiling celsius to fahrenheit", 100, unit.Celsius, unit.Fahrenheit, 212},
		{"ok/minus forty is the same on both scales", -40, unit.Celsius, unit.Fahrenheit, -40},
		{"ok/freezing fahrenheit to kelvin", 32, unit.Fahrenheit, unit.Kelvin, 273.15},
		{"ok/absolute zero fahrenheit to kelvin", -459.67, unit.Fahrenheit, unit.Kelvin, 0},
		{"ok/kelvin to celsius", 273.15, unit.Kelvin, unit.Celsius, 0},
		{"ok/warm kelvin to celsius", 300, unit.Kelvin, unit.Celsius, 26.85},
		{"ok/celsius to kelvin", 0, unit.Celsius, unit.Kelvin, 273.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Temperature(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDataStorage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to unit.DataStorage
		want     float64
	}{
		{"ok/kibibytes to mebibyte", 1024, unit.Kibibyte, unit.Mebibyte, 1},
		{"ok/gibibyte to bytes", 1, unit.Gibibyte, unit.Byte, 1073741824},
		{"ok/bytes to tebibyte", 1099511627776, unit.Byte, unit.Tebibyte, 1},
		{"ok/pebibyte to gibibytes", 1, unit.Pebibyte, unit.Gibibyte, 1048576},
		{"ok/fraction of a mebibyte", 0.5, unit.Mebibyte, unit.Kibibyte, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DataStorage(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDataStorageFactor(t *testing.T) {
	f, err := DataStorageFactor(unit.Byte, unit.Pebibyte)
	require.NoError(t, err)
	assert.Equal(t, "0.00000000000000088817841970012523233890533447265625", f.String())

	f, err = DataStorageFactor(unit.Kibibyte, unit.Kibibyte)
	require.NoError(t, err)
	assert.True(t, f.Equal(decimal.NewFromInt(1)))
}

func TestDataStorageNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{name: "validation/positive infinity", value: math.Inf(1)},
		{name: "validation/negative infinity", value: math.Inf(-1)},
		{name: "validation/nan", value: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				_, err := DataStorage(tt.value, unit.Pebibyte, unit.Byte)
				require.ErrorIs(t, err, ErrNonFiniteValue)
			})
		})
	}

	got, err := DataStorage(math.Inf(1), unit.Byte, unit.Byte)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestFactors(t *testing.T) {
	f, err := LengthFactor(unit.Meter, unit.Centimeter)
	require.NoError(t, err)
	assert.Equal(t, 100.0, f)

	f, err = PressureFactor(unit.Pascal, unit.Kilopascal)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, f, 1e-15)

	f, err = SpeedFactor(unit.Knot, unit.Knot)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestUnsupportedConversion(t *testing.T) {
	furlong := unit.Length("FURLONG")

	_, err := Length(1, furlong, unit.Meter)
	require.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = Length(1, furlong, furlong)
	require.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = Area(1, unit.SquareMeter, unit.Area("SQ_FURLONG"))
	require.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = Temperature(1, unit.Temperature("RANKINE"), unit.Celsius)
	require.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = DataStorage(1, unit.Byte, unit.DataStorage("EXBIBYTE"))
	require.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = WeightFactor(unit.Weight("GRAIN"), unit.Gram)
	require.ErrorIs(t, err, ErrUnsupportedConversion)
	assert.Contains(t, err.Error(), "GRAIN")
}
