// Package conversion contains the conversion engines, one per dimension.
//
// Linear dimensions (length, weight, area, volume, pressure, speed, data
// storage) multiply the magnitude by a factor looked up in a table. Length,
// weight and volume keep a direct table holding every ordered pair of units;
// area, pressure and speed keep base-relative factors and derive the pair
// factor by division. Temperature is affine and always goes through Celsius.
// Data storage multiplies in arbitrary-precision decimal arithmetic.
//
// Every engine is a pure function: converting a unit to itself returns the
// input magnitude untouched, and an unknown unit yields ErrUnsupportedConversion.
package conversion

import (
	"errors"
	"fmt"
)

// ErrUnsupportedConversion is returned when no factor exists between two units.
// With the declared unit constants this cannot happen; it signals a unit value
// built outside its enumeration.
var ErrUnsupportedConversion = errors.New("unsupported conversion")

// ErrNonFiniteValue is returned when a magnitude is NaN or infinite and the
// engine cannot represent it.
var ErrNonFiniteValue = errors.New("non-finite value")

// factorTable yields the multiplicative factor between two units.
type factorTable[U ~string] interface {
	has(u U) bool
	factor(from, to U) (float64, error)
}

// directTable stores a factor for every ordered pair: value(to) = value(from) × t[from][to].
type directTable[U ~string] map[U]map[U]float64

func (t directTable[U]) has(u U) bool {
	_, ok := t[u]
	return ok
}

func (t directTable[U]) factor(from, to U) (float64, error) {
	f, ok := t[from][to]
	if !ok {
		return 0, unsupported(from, to)
	}
	return f, nil
}

// baseTable stores how many of each unit make one base unit.
type baseTable[U ~string] map[U]float64

func (t baseTable[U]) has(u U) bool {
	_, ok := t[u]
	return ok
}

func (t baseTable[U]) factor(from, to U) (float64, error) {
	perBaseFrom, ok := t[from]
	if !ok {
		return 0, unsupported(from, to)
	}
	perBaseTo, ok := t[to]
	if !ok {
		return 0, unsupported(from, to)
	}
	return perBaseTo / perBaseFrom, nil
}

// linear converts value using table. Self-conversion skips the multiplication.
func linear[U ~string](table factorTable[U], value float64, from, to U) (float64, error) {
	if from == to {
		if !table.has(from) {
			return 0, unsupported(from, to)
		}
		return value, nil
	}
	f, err := table.factor(from, to)
	if err != nil {
		return 0, err
	}
	return value * f, nil
}

func linearFactor[U ~string](table factorTable[U], from, to U) (float64, error) {
	if from == to {
		if !table.has(from) {
			return 0, unsupported(from, to)
		}
		return 1, nil
	}
	return table.factor(from, to)
}

func unsupported[U ~string](from, to U) error {
	return fmt.Errorf("%w: from %q to %q", ErrUnsupportedConversion, string(from), string(to))
}
