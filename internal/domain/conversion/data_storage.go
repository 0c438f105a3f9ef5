package conversion

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

const (
	// factorScale is the number of fractional digits kept when dividing two
	// byte counts. 1/1024^5 needs exactly 50.
	factorScale = 50

	// minProductScale is the minimum number of fractional digits kept after
	// multiplying a value by a factor.
	minProductScale = 10
)

var bytesPerUnit = map[unit.DataStorage]int64{
	unit.Byte:     1,
	unit.Kibibyte: 1 << 10,
	unit.Mebibyte: 1 << 20,
	unit.Gibibyte: 1 << 30,
	unit.Tebibyte: 1 << 40,
	unit.Pebibyte: 1 << 50,
}

// DataStorageFactor returns the exact decimal multiplier that turns a value in
// from into a value in to.
func DataStorageFactor(from, to unit.DataStorage) (decimal.Decimal, error) {
	fromBytes, ok := bytesPerUnit[from]
	if !ok {
		return decimal.Zero, unsupported(from, to)
	}
	toBytes, ok := bytesPerUnit[to]
	if !ok {
		return decimal.Zero, unsupported(from, to)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	return decimal.NewFromInt(fromBytes).DivRound(decimal.NewFromInt(toBytes), factorScale), nil
}

// DataStorage converts an amount of data between binary-prefixed units.
// The multiplication runs in decimal arithmetic and is truncated to at least
// ten fractional digits, or more when the value or factor carries more, so
// pebibyte-scale values keep their integral precision.
func DataStorage(value float64, from, to unit.DataStorage) (float64, error) {
	factor, err := DataStorageFactor(from, to)
	if err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v %s", ErrNonFiniteValue, value, from)
	}

	v := decimal.NewFromFloat(value)
	scale := max(int32(minProductScale), fractionDigits(v), fractionDigits(factor))
	return v.Mul(factor).Truncate(scale).InexactFloat64(), nil
}

func fractionDigits(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}
