package packing

import (
	"fmt"
	"math"
)

// Rounding decides how converted centimeter and gram values become the
// whole numbers the solver works with.
type Rounding string

const (
	// RoundingTruncate drops the fraction, shrinking values by up to one unit.
	RoundingTruncate Rounding = "truncate"

	// RoundingNearest rounds half away from zero.
	RoundingNearest Rounding = "nearest"

	// RoundingCeil rounds up, so an item is never reported smaller than it is.
	RoundingCeil Rounding = "ceil"
)

// ParseRounding returns the rounding policy with the given name.
func ParseRounding(name string) (Rounding, error) {
	switch r := Rounding(name); r {
	case RoundingTruncate, RoundingNearest, RoundingCeil:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRounding, name)
	}
}

// truncateTolerance absorbs float error from unit conversion before
// truncating, so 0.29 m (28.999999999999996 cm) becomes 29 and not 28.
const truncateTolerance = 1e-9

// apply converts v to an int under the policy. Unknown policies truncate.
func (r Rounding) apply(v float64) int {
	switch r {
	case RoundingNearest:
		return int(math.Round(v))
	case RoundingCeil:
		return int(math.Ceil(v))
	default:
		return int(math.Trunc(v + truncateTolerance))
	}
}
